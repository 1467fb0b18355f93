package service

import (
	"context"
	"time"
)

// CatalogEventType names what happened to a catalog record
type CatalogEventType string

const (
	SellerCreated CatalogEventType = "seller.created"
	SellerUpdated CatalogEventType = "seller.updated"
	SellerDeleted CatalogEventType = "seller.deleted"
	BookCreated   CatalogEventType = "book.created"
	BookUpdated   CatalogEventType = "book.updated"
	BookDeleted   CatalogEventType = "book.deleted"
)

// CatalogEvent is published after a catalog write has been committed
type CatalogEvent struct {
	EventID    string           `json:"event_id"`
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	Type       CatalogEventType `json:"type"`
	SellerID   int64            `json:"seller_id"`
	BookID     int64            `json:"book_id,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCatalogEvent publishes a catalog change event
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
