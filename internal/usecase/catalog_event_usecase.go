package usecase

import (
	"context"
	"errors"

	"catalog/internal/domain/service"
)

// ErrMalformedEvent marks an event that can never be processed. Redelivering it would not help.
var ErrMalformedEvent = errors.New("malformed catalog event")

// CatalogEventUsecase consumes catalog events delivered by the message queue.
type CatalogEventUsecase interface {
	// HandleCatalogEvent records the event and runs follow-up maintenance.
	// Errors other than ErrMalformedEvent are transient and the event should be redelivered.
	HandleCatalogEvent(ctx context.Context, event *service.CatalogEvent) error
}
