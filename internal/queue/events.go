package queue

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventsExchange = "orava.events"
	EventsQueue    = "orava.events.process"
	EventsDLQ      = "orava.events.dlq"
	EventsDeadRK   = "dead"

	// routing keys published on the events exchange
	PasswordResetRequestedRK = "auth.password_reset.requested"
	OrderStatusUpdatedRK     = "order.status.updated"
)

type PasswordResetRequestedEvent struct {
	Type        string    `json:"type"`
	Email       string    `json:"email"`
	Token       string    `json:"token"`
	RequestedAt time.Time `json:"requestedAt"`
}

type OrderStatusUpdatedEvent struct {
	Type      string    `json:"type"`
	OrderID   uuid.UUID `json:"orderId"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EnsureEventsTopology declares the topic exchange, the processing
// queue bound to both event routing keys, and a dead-letter queue for
// deliveries that exhaust their retries.
func EnsureEventsTopology(ctx context.Context, qc *Client) error {
	if qc == nil {
		return nil
	}

	if err := qc.EnsureExchange(EventsExchange, "topic"); err != nil {
		return err
	}
	if _, err := qc.EnsureQueue(EventsDLQ, nil); err != nil {
		return err
	}
	if err := qc.BindQueue(EventsDLQ, EventsExchange, EventsDeadRK); err != nil {
		return err
	}

	_, err := qc.EnsureQueue(EventsQueue, amqp.Table{
		"x-dead-letter-exchange":    EventsExchange,
		"x-dead-letter-routing-key": EventsDeadRK,
	})
	if err != nil {
		return err
	}
	if err := qc.BindQueue(EventsQueue, EventsExchange, PasswordResetRequestedRK); err != nil {
		return err
	}
	return qc.BindQueue(EventsQueue, EventsExchange, OrderStatusUpdatedRK)
}

// ProcessEventToJobs turns a consumed event into an email_jobs row for
// the external mailer. Unknown event types are acked and dropped.
func ProcessEventToJobs(ctx context.Context, db *pgxpool.Pool, body []byte) error {
	if db == nil {
		return nil
	}

	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return err
	}

	switch envelope.Type {
	case PasswordResetRequestedRK:
		var evt PasswordResetRequestedEvent
		if err := json.Unmarshal(body, &evt); err != nil {
			return err
		}
		if strings.TrimSpace(evt.Email) == "" {
			return nil
		}
		return insertEmailJob(ctx, db, "password_reset", evt.Email, body)

	case OrderStatusUpdatedRK:
		var evt OrderStatusUpdatedEvent
		if err := json.Unmarshal(body, &evt); err != nil {
			return err
		}
		// only completions notify the customer
		if !strings.EqualFold(evt.Status, "COMPLETED") {
			return nil
		}

		var email string
		err := db.QueryRow(ctx,
			`select u.email from orders o join "user" u on u.id = o.user_id where o.id = $1`,
			evt.OrderID.String()).Scan(&email)
		if err != nil {
			return err
		}
		return insertEmailJob(ctx, db, "order_completed", email, body)

	default:
		return nil
	}
}

func insertEmailJob(ctx context.Context, db *pgxpool.Pool, kind, recipient string, payload []byte) error {
	_, err := db.Exec(ctx,
		`insert into email_jobs (id, kind, recipient, payload, status, created_at)
		 values ($1, $2, $3, $4, 'pending', $5)`,
		uuid.New().String(), kind, recipient, payload, time.Now())
	return err
}
