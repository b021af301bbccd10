package model

// Inquiry is a customer-submitted contact request, optionally about a
// specific car.  Rows are written once and never updated; CreatedAt is
// assigned by the database default at insert time.
//
// CarID is nullable on purpose: general inquiries not tied to a listing
// arrive with no car reference.  Whether a CarID that matches no catalog
// row is accepted is a configuration decision enforced by the repository,
// not by this struct.
type Inquiry struct {
	ID        int64   `json:"id"`
	CarID     *int64  `json:"car_id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Message   *string `json:"message"`
	CreatedAt string  `json:"created_at"` // inquiries.created_at (timestamp in DB timezone)
}
