package database

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureSchema creates the `cars` and `inquiries` tables if they do not
// exist.  It is idempotent and safe to call on every process start.
func EnsureSchema(ctx context.Context, db *sql.DB, d Dialect) error {
	carsDDL := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS cars (
		id %s,
		make TEXT NOT NULL,
		model TEXT NOT NULL,
		year INTEGER NOT NULL,
		price REAL NOT NULL,
		mileage INTEGER,
		transmission TEXT,
		fuel_type TEXT,
		description TEXT,
		image_url TEXT,
		featured BOOLEAN DEFAULT FALSE
	)`, d.AutoIncrementPK())

	inquiriesDDL := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS inquiries (
		id %s,
		car_id INTEGER,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		message TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (car_id) REFERENCES cars (id)
	)`, d.AutoIncrementPK())

	for _, ddl := range []string{carsDDL, inquiriesDDL} {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

// SeedIfEmpty inserts the sample catalog when the `cars` table holds
// exactly zero rows, and reports whether it did.  A non-empty table is
// left untouched, so repeated calls (including the admin reseed
// endpoint) never duplicate or replace rows.
func SeedIfEmpty(ctx context.Context, db *sql.DB, d Dialect) (bool, error) {
	var count int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cars").Scan(&count); err != nil {
		return false, fmt.Errorf("counting cars: %w", err)
	}
	if count != 0 {
		return false, nil
	}

	q := d.Rebind(`INSERT INTO cars
		(make, model, year, price, mileage, transmission, fuel_type, description, image_url, featured)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		return false, fmt.Errorf("preparing seed insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range sampleCars {
		if _, err := stmt.ExecContext(ctx,
			c.make, c.model, c.year, c.price, c.mileage,
			c.transmission, c.fuelType, c.description, c.imageURL, c.featured,
		); err != nil {
			return false, fmt.Errorf("seeding %s %s: %w", c.make, c.model, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing seed: %w", err)
	}
	return true, nil
}

type sampleCar struct {
	make, model  string
	year         int
	price        float64
	mileage      int64
	transmission string
	fuelType     string
	description  string
	imageURL     string
	featured     bool
}

var sampleCars = []sampleCar{
	{"Mercedes-Benz", "S-Class", 2023, 110000, 5000, "Automatic", "Petrol", "The pinnacle of luxury and technology.", "https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8", true},
	{"BMW", "M4 Competition", 2024, 85000, 1200, "Automatic", "Petrol", "Unrivaled performance and precision.", "https://images.unsplash.com/photo-1555215695-3004980ad54e", true},
	{"Audi", "RS7 Sportback", 2023, 125000, 3500, "Automatic", "Petrol", "Elegance meets everyday usability.", "https://images.unsplash.com/photo-1606148632349-5509e51121d5", true},
	{"Porsche", "911 Carrera S", 2024, 135000, 800, "Manual", "Petrol", "The eternal sports car icon.", "https://images.unsplash.com/photo-1503376780353-7e6692767b70", true},
	{"Tesla", "Model S Plaid", 2023, 95000, 10000, "Automatic", "Electric", "Beyond fast. 0-60 in 1.99s.", "https://images.unsplash.com/photo-1617788138017-80ad40651399", false},
	{"Range Rover", "Sport", 2024, 115000, 2000, "Automatic", "Hybrid", "Capable luxury for any terrain.", "https://images.unsplash.com/photo-1550064824-8f993041ffee", false},
	{"Ferrari", "F8 Tributo", 2023, 280000, 500, "Automatic", "Petrol", "A celebration of the excellence of the V8 engine.", "https://images.unsplash.com/photo-1592198084033-aade902d1aae", true},
	{"Lamborghini", "Huracan Evo", 2024, 260000, 300, "Automatic", "Petrol", "Designed to amplify your emotions.", "https://images.unsplash.com/photo-1544636331-e26879cd4d9b", true},
	{"Aston Martin", "DB11", 2023, 205000, 1500, "Automatic", "Petrol", "The most efficient and powerful DB production model.", "https://images.unsplash.com/photo-1619405399517-d7fce0f13302", true},
	{"Bentley", "Continental GT", 2024, 240000, 200, "Automatic", "Petrol", "Unrivaled craftsmanship and breathtaking performance.", "https://images.unsplash.com/photo-1580273916550-e323be2ae537", false},
	{"Mclaren", "720S", 2023, 299000, 900, "Automatic", "Petrol", "Lighter, stronger, and faster than its predecessor.", "https://images.unsplash.com/photo-1621135802920-133df287f89c", false},
	{"Rolls-Royce", "Ghost", 2024, 350000, 100, "Automatic", "Petrol", "The most technologically advanced Rolls-Royce yet.", "https://images.unsplash.com/photo-1631215106517-57945d98ca57", true},
	{"Bugatti", "Chiron Pur Sport", 2023, 3600000, 50, "Automatic", "Petrol", "The purest expression of driving performance.", "https://images.unsplash.com/photo-1517524008436-bbdb53c54434", false},
	{"Maserati", "MC20", 2023, 215000, 1200, "Automatic", "Petrol", "A state-of-the-art super sports car.", "https://images.unsplash.com/photo-1614200187524-dc4b892acf16", false},
	{"Jaguar", "F-Type SVR", 2024, 105000, 4000, "Automatic", "Petrol", "Performance that takes your breath away.", "https://images.unsplash.com/photo-1589133446549-c189c426e831", false},
	{"Lexus", "LC 500", 2023, 98000, 5000, "Automatic", "Petrol", "The ultimate combination of design and engineering.", "https://images.unsplash.com/photo-1552519507-da3b142c6e3d", false},
	{"Audi", "R8 V10 Plus", 2023, 195000, 1000, "Automatic", "Petrol", "A race car for the road.", "https://images.unsplash.com/photo-1511919884226-fd3cad34687c", true},
	{"BMW", "M8 Competition", 2024, 130000, 500, "Automatic", "Petrol", "The peak of BMW performance.", "https://images.unsplash.com/photo-1603386349600-b69677353f4d", false},
	{"Porsche", "Taycan Turbo S", 2024, 185000, 100, "Automatic", "Electric", "Soul, electrified.", "https://images.unsplash.com/photo-1594502184342-2e12f877aa73", true},
	{"Lamborghini", "Urus", 2023, 230000, 2500, "Automatic", "Petrol", "The soul of a super sports car and the functionality of an SUV.", "https://images.unsplash.com/photo-1549399542-7e3f8b79cce9", false},
	{"Mercedes-AMG", "GT R", 2023, 160000, 1500, "Automatic", "Petrol", "Born on the Nurburgring.", "https://images.unsplash.com/photo-1617469767053-d3b508a0d825", true},
	{"Ferrari", "SF90 Stradale", 2024, 510000, 50, "Automatic", "Hybrid", "Pushing the boundaries of performance.", "https://images.unsplash.com/photo-1592198084033-aade902d1aae", false},
	{"Koenigsegg", "Jesko", 2024, 3000000, 10, "Automatic", "Petrol", "The ultimate megacar.", "https://images.unsplash.com/photo-1621135802920-133df287f89c", true},
	{"Pagani", "Huayra", 2023, 2600000, 100, "Automatic", "Petrol", "Art on wheels.", "https://images.unsplash.com/photo-1627454820516-dc707994646a", false},
	{"Ford", "GT", 2022, 500000, 200, "Automatic", "Petrol", "The culmination of Ford specialized engineering.", "https://images.unsplash.com/photo-1593414220436-13004940562e", true},
	{"Chevrolet", "Corvette Z06", 2024, 110000, 50, "Automatic", "Petrol", "The mid-engine icon redefined.", "https://images.unsplash.com/photo-1632766348421-3a05fced4f5e", false},
}
