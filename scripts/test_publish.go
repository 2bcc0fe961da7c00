//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type CatalogUpdateEvent struct {
	EventID       uuid.UUID `json:"event_id"`
	Entity        string    `json:"entity"`
	DestinationID int64     `json:"destination_id,omitempty"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	entity := flag.String("entity", "service", "Catalog entity: destination or service")
	destinationID := flag.Int64("destination", 0, "Affected destination ID (optional)")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовое событие изменения каталога
	event := CatalogUpdateEvent{
		EventID:       uuid.New(),
		Entity:        *entity,
		DestinationID: *destinationID,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:catalog:updated",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published at %s\n", time.Now().Format(time.RFC3339))
	fmt.Printf("  message_id: %s\n", result)
	fmt.Printf("  event_id:   %s\n", event.EventID)
	fmt.Printf("  entity:     %s\n", event.Entity)
}
