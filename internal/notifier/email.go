package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"

	"github.com/iliyamo/car-dealership/internal/model"
)

// EmailNotifier sends a plain-text message for each inquiry to a single
// fixed operator mailbox over an authenticated SMTP session.  The
// credential comes from configuration; there is no baked-in default.
type EmailNotifier struct {
	host     string
	port     int
	user     string
	password string
	to       string
}

// NewEmail constructs an EmailNotifier.  The authenticated user is also
// used as the From address.
func NewEmail(host string, port int, user, password, to string) *EmailNotifier {
	return &EmailNotifier{host: host, port: port, user: user, password: password, to: to}
}

// Notify composes and sends the operator email.  Errors from the
// transport are returned as-is; this method never panics past its own
// boundary.  The underlying send is bounded by the SMTP transport's own
// timeouts rather than ctx.
func (n *EmailNotifier) Notify(_ context.Context, inq model.Inquiry) error {
	var b strings.Builder
	fmt.Fprintf(&b, "You have received a new message from your website:\n\n")
	fmt.Fprintf(&b, "Name: %s\n", inq.Name)
	fmt.Fprintf(&b, "Email: %s\n", inq.Email)
	if inq.Phone != nil && *inq.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", *inq.Phone)
	}
	if inq.CarID != nil {
		fmt.Fprintf(&b, "Car ID: %d\n", *inq.CarID)
	}
	if inq.Message != nil {
		fmt.Fprintf(&b, "Message: %s\n", *inq.Message)
	}

	e := &email.Email{
		To:      []string{n.to},
		From:    n.user,
		Subject: fmt.Sprintf("New Car Inquiry from %s", inq.Name),
		Text:    []byte(b.String()),
	}
	auth := smtp.PlainAuth("", n.user, n.password, n.host)
	addr := fmt.Sprintf("%s:%d", n.host, n.port)
	if err := e.Send(addr, auth); err != nil {
		return fmt.Errorf("cannot send email: %w", err)
	}
	return nil
}
