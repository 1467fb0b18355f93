// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/service"

	"github.com/google/uuid"
)

// eventNotifier publishes catalog events after commit. Failures are logged and never returned.
type eventNotifier struct {
	publisher service.EventPublisher
}

func (n eventNotifier) notify(ctx context.Context, logger *slog.Logger, eventType service.CatalogEventType, sellerID, bookID int64) {
	if n.publisher == nil {
		return
	}

	event := &service.CatalogEvent{
		EventID:    uuid.New().String(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		SellerID:   sellerID,
		BookID:     bookID,
		OccurredAt: time.Now().UTC(),
	}

	if err := n.publisher.PublishCatalogEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish catalog event",
			slog.String("event_type", string(eventType)),
			slog.Int64("seller_id", sellerID),
			slog.Int64("book_id", bookID),
			slog.Any("error", err),
		)
	}
}
