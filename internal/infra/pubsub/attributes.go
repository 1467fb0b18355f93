package pubsub

import (
	"strconv"

	"catalog/internal/domain/service"
)

// eventAttributes builds message attributes used for subscription filtering and tracing.
func eventAttributes(event *service.CatalogEvent) map[string]string {
	attributes := map[string]string{
		"event_type": string(event.Type),
		"seller_id":  strconv.FormatInt(event.SellerID, 10),
	}
	if event.BookID != 0 {
		attributes["book_id"] = strconv.FormatInt(event.BookID, 10)
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
