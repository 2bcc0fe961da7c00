package domain

import "github.com/google/uuid"

// Stream names (должны совпадать с маркетплейсом)
const (
	StreamCatalogUpdated = "stream:catalog:updated"
)

// Catalog entity kinds in update events
const (
	CatalogEntityDestination = "destination"
	CatalogEntityService     = "service"
)

// CatalogUpdateEvent - событие изменения каталога (направление или услуга).
// Публикуется маркетплейсом, по нему сбрасывается кеш планов.
type CatalogUpdateEvent struct {
	EventID       uuid.UUID `json:"event_id"`
	Entity        string    `json:"entity"`
	DestinationID int64     `json:"destination_id,omitempty"`
}

// IsKnownEntity проверяет, что событие относится к известной сущности
func (e *CatalogUpdateEvent) IsKnownEntity() bool {
	return e.Entity == CatalogEntityDestination || e.Entity == CatalogEntityService
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
