package model

// Car represents one vehicle in the dealership catalog.  This struct
// corresponds to a row in the `cars` table.  Optional columns are
// pointers so that NULL survives the round trip to JSON as `null`.
//
// Fields:
//  ID           – primary key identifier, assigned by the database.
//  Make         – manufacturer name, e.g. "Ferrari".
//  Model        – model name, e.g. "F8 Tributo".
//  Year         – model year.
//  Price        – asking price in the site currency.
//  Mileage      – odometer reading, if known.
//  Transmission – "Automatic" / "Manual", if known.
//  FuelType     – "Petrol" / "Electric" / "Hybrid", if known.
//  Description  – marketing copy shown on the detail page.
//  ImageURL     – hero image for the listing.
//  Featured     – promoted on the landing page when true.
type Car struct {
	ID           int64   `json:"id"`
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	Price        float64 `json:"price"`
	Mileage      *int64  `json:"mileage"`
	Transmission *string `json:"transmission"`
	FuelType     *string `json:"fuel_type"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"image_url"`
	Featured     bool    `json:"featured"`
}
