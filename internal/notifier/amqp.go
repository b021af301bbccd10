package notifier

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/car-dealership/internal/model"
)

// InquiryCreatedEvent is the payload published to the "inquiry.created"
// queue.  It carries enough information for downstream consumers (CRM
// import, analytics) to act without querying the primary database.
type InquiryCreatedEvent struct {
	InquiryID int64   `json:"inquiry_id"`
	CarID     *int64  `json:"car_id,omitempty"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Message   *string `json:"message,omitempty"`
	CreatedAt string  `json:"created_at"`
}

const inquiryQueue = "inquiry.created"

// AMQPNotifier publishes inquiry events to RabbitMQ.  Publishing is
// best-effort and inline with the request: any error is logged and
// returned so the caller can choose to ignore it, and nothing consumes
// from the queue inside this service.
type AMQPNotifier struct {
	url string
}

func NewAMQP(url string) *AMQPNotifier {
	return &AMQPNotifier{url: url}
}

func (n *AMQPNotifier) Notify(ctx context.Context, inq model.Inquiry) error {
	conn, err := amqp.Dial(n.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent).  Durable so messages survive
	// broker restarts.
	if _, err := ch.QueueDeclare(inquiryQueue, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(InquiryCreatedEvent{
		InquiryID: inq.ID,
		CarID:     inq.CarID,
		Name:      inq.Name,
		Email:     inq.Email,
		Phone:     inq.Phone,
		Message:   inq.Message,
		CreatedAt: inq.CreatedAt,
	})
	if err != nil {
		return err
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err = ch.PublishWithContext(pubCtx, "", inquiryQueue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
