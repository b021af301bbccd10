// Package notifier relays newly stored inquiries to the outside world.
// Delivery is advisory: persistence is authoritative, and callers treat
// any error returned here as non-fatal (logged, never surfaced to the
// HTTP client and never retried).
package notifier

import (
	"context"
	"errors"

	"github.com/iliyamo/car-dealership/internal/model"
)

// Notifier is an interface so the delivery mechanism can change
// (email, message broker, chat webhook) without touching the inquiry
// flow.
type Notifier interface {
	Notify(ctx context.Context, inq model.Inquiry) error
}

// Multi fans an inquiry out to every configured sink.  A failing sink
// never prevents the remaining sinks from being attempted; the
// individual errors are joined into the return value.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, inq model.Inquiry) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, inq); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
