package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	ProductCreated = "product_created"
	ProductUpdated = "product_updated"
	ProductDeleted = "product_deleted"

	CartCreated = "cart_created"
	CartUpdated = "cart_updated"
	CartDeleted = "cart_deleted"
)

// Publisher delivers change events to a topic.
type Publisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

// Event is the payload published after a row is created, updated or deleted.
type Event struct {
	EventID string    `json:"event_id"`
	Type    string    `json:"type"`
	ID      int       `json:"id"`
	At      time.Time `json:"at"`
	Data    any       `json:"data"`
}

func New(eventType string, id int, data any) Event {
	return Event{
		EventID: uuid.NewString(),
		Type:    eventType,
		ID:      id,
		At:      time.Now().UTC(),
		Data:    data,
	}
}

// Nop drops every event. It is used when no brokers are configured.
type Nop struct{}

func (Nop) PublishEvent(context.Context, string, string, any) error { return nil }
