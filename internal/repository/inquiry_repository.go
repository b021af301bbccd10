package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/car-dealership/internal/database"
	"github.com/iliyamo/car-dealership/internal/model"
)

// InquiryRepo encapsulates all database writes and lookups for customer
// inquiries.  Whether an inquiry may reference a car that does not
// exist in the catalog is decided once at construction time.
type InquiryRepo struct {
	db           *sql.DB
	dialect      database.Dialect
	allowOrphans bool
}

// NewInquiryRepo constructs an InquiryRepo with the provided DB handle.
// When allowOrphans is false, Create rejects inquiries whose car_id
// matches no catalog row.
func NewInquiryRepo(db *sql.DB, d database.Dialect, allowOrphans bool) *InquiryRepo {
	return &InquiryRepo{db: db, dialect: d, allowOrphans: allowOrphans}
}

// Create inserts a new inquiry.  On success the ID and CreatedAt fields
// are populated from the stored row.  Validation of required fields
// happens in the handler before this is called; Create only enforces
// the car reference policy.
func (r *InquiryRepo) Create(ctx context.Context, inq *model.Inquiry) error {
	if !r.allowOrphans && inq.CarID != nil {
		var exists bool
		q := r.dialect.Rebind("SELECT EXISTS (SELECT 1 FROM cars WHERE id = ?)")
		if err := r.db.QueryRowContext(ctx, q, *inq.CarID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrUnknownCar
		}
	}

	const insert = "INSERT INTO inquiries (car_id, name, email, phone, message) VALUES (?, ?, ?, ?, ?)"
	if r.dialect.ReturningID() {
		q := r.dialect.Rebind(insert + " RETURNING id")
		if err := r.db.QueryRowContext(ctx, q,
			inq.CarID, inq.Name, inq.Email, inq.Phone, inq.Message,
		).Scan(&inq.ID); err != nil {
			return err
		}
	} else {
		res, err := r.db.ExecContext(ctx, insert,
			inq.CarID, inq.Name, inq.Email, inq.Phone, inq.Message)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		inq.ID = id
	}

	// Follow-up SELECT to populate the default timestamp assigned by the DB.
	q := r.dialect.Rebind("SELECT created_at FROM inquiries WHERE id = ?")
	return r.db.QueryRowContext(ctx, q, inq.ID).Scan(&inq.CreatedAt)
}

// Count returns the number of stored inquiries.
func (r *InquiryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM inquiries").Scan(&n)
	return n, err
}
