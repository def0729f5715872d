package events

import (
	"context"
	"time"
)

const (
	EntityCategory    = "category"
	EntityProduct     = "product"
	EntityTag         = "tag"
	EntityProductTags = "product_tags"

	ActionCreated    = "created"
	ActionUpdated    = "updated"
	ActionDeleted    = "deleted"
	ActionReconciled = "reconciled"
)

// Event describes one successful catalog mutation.
type Event struct {
	Type       string      `json:"type"`
	Entity     string      `json:"entity"`
	ID         int         `json:"id"`
	Data       interface{} `json:"data,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

func New(entity, action string, id int, data interface{}) Event {
	return Event{
		Type:       entity + "." + action,
		Entity:     entity,
		ID:         id,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type nopPublisher struct{}

func NewNop() Publisher { return nopPublisher{} }

func (nopPublisher) Publish(context.Context, Event) error { return nil }

func (nopPublisher) Close() error { return nil }
