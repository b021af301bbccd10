package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/car-dealership/internal/database"
	"github.com/iliyamo/car-dealership/internal/model"
)

// CarFilter carries the optional predicates for listing the catalog.
// A nil Featured means "no featured filter"; an empty Make means "no
// make filter".  Supplied predicates are combined with AND.
type CarFilter struct {
	Featured *bool
	Make     string
}

// ParseFeatured maps the `featured` query string onto the tri-state
// filter: absent -> no filter, "true" (case-insensitively) -> true,
// any other non-empty value -> false.
func ParseFeatured(raw string) *bool {
	if raw == "" {
		return nil
	}
	v := strings.EqualFold(raw, "true")
	return &v
}

// CarRepo encapsulates all database queries related to cars.  The
// dialect is fixed at startup; repositories never branch on backend
// type beyond what the dialect value encodes.
type CarRepo struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewCarRepo constructs a CarRepo with the provided DB handle.
func NewCarRepo(db *sql.DB, d database.Dialect) *CarRepo {
	return &CarRepo{db: db, dialect: d}
}

const carColumns = "id, make, model, year, price, mileage, transmission, fuel_type, description, image_url, featured"

// List returns every car satisfying the filter, ordered by id.  The
// result is possibly empty but never nil.  User-supplied values only
// ever flow through bound parameters.
func (r *CarRepo) List(ctx context.Context, f CarFilter) ([]model.Car, error) {
	q := "SELECT " + carColumns + " FROM cars WHERE 1=1"
	args := []any{}

	if f.Featured != nil {
		q += " AND featured = ?"
		args = append(args, *f.Featured)
	}
	if f.Make != "" {
		q += " AND make LIKE ? ESCAPE '|'"
		args = append(args, "%"+escapeLike(f.Make)+"%")
	}
	q += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(q), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Car, 0)
	for rows.Next() {
		var c model.Car
		if err := scanCar(rows, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetByID fetches a car by its primary key.  It returns ErrCarNotFound
// if no row matches.
func (r *CarRepo) GetByID(ctx context.Context, id int64) (*model.Car, error) {
	q := r.dialect.Rebind("SELECT " + carColumns + " FROM cars WHERE id = ?")
	var c model.Car
	if err := scanCar(r.db.QueryRowContext(ctx, q, id), &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}
	return &c, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCar(s scanner, c *model.Car) error {
	return s.Scan(
		&c.ID,
		&c.Make,
		&c.Model,
		&c.Year,
		&c.Price,
		&c.Mileage,
		&c.Transmission,
		&c.FuelType,
		&c.Description,
		&c.ImageURL,
		&c.Featured,
	)
}

// escapeLike neutralizes LIKE wildcards in a user-supplied substring so
// the filter matches `%` and `_` literally.  `|` is used as the escape
// character because a backslash inside a string literal is itself
// backend-dependent; queries using the result must carry an ESCAPE '|'
// clause.
func escapeLike(s string) string {
	r := strings.NewReplacer("|", "||", "%", "|%", "_", "|_")
	return r.Replace(s)
}
