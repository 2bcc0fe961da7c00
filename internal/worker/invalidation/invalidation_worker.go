package invalidation

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/routes-microservice/internal/domain"
	"github.com/routes-microservice/internal/domain/repository"
	"github.com/routes-microservice/internal/worker"
	"go.uber.org/zap"
)

const (
	// planCachePattern - паттерн ключей кэша планов маршрутов
	planCachePattern = "plan:v1:*"

	// retryDelay - пауза между повторными попытками инвалидации
	retryDelay = time.Second
)

// CacheInvalidationWorker слушает события изменения каталога (направления,
// услуги) и сбрасывает кэш планов маршрутов: после смены цены или статуса
// закэшированные планы перестают быть достоверными.
type CacheInvalidationWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	cacheRepo    repository.CacheRepository
	consumerName string
	maxRetries   int
}

// NewCacheInvalidationWorker создает новый CacheInvalidationWorker
func NewCacheInvalidationWorker(
	streamRepo repository.StreamRepository,
	cacheRepo repository.CacheRepository,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *CacheInvalidationWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &CacheInvalidationWorker{
		BaseWorker:   worker.NewBaseWorker("plan-cache-invalidation", consumerGroup, logger),
		streamRepo:   streamRepo,
		cacheRepo:    cacheRepo,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

// Start запускает воркер
func (w *CacheInvalidationWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting CacheInvalidationWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.String("stream", domain.StreamCatalogUpdated))

	// Создаем consumer group
	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamCatalogUpdated, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	msgChan, err := w.streamRepo.ConsumeStream(ctx, domain.StreamCatalogUpdated, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		logger.Error("Failed to start stream consumer", zap.Error(err))
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	// Основной цикл обработки
	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-msgChan:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			w.processMessage(ctx, msg)
		}
	}
}

// processMessage обрабатывает одно событие изменения каталога
func (w *CacheInvalidationWorker) processMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	event, err := w.parseMessage(msg)
	if err != nil {
		logger.Warn("Failed to parse message, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		// ACK битое сообщение чтобы не застревало
		_ = w.streamRepo.AckMessage(ctx, domain.StreamCatalogUpdated, w.ConsumerGroup(), msg.ID)
		return
	}

	logger.Info("Catalog update received",
		zap.String("event_id", event.EventID.String()),
		zap.String("entity", string(event.Entity)),
		zap.Int64("destination_id", event.DestinationID))

	// Инвалидируем весь кэш планов: цены входят в любые закэшированные
	// маршруты, поэтому точечная инвалидация по направлению ненадёжна
	var deleted int
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		deleted, err = w.cacheRepo.DeleteByPattern(ctx, planCachePattern)
		if err == nil {
			break
		}
		logger.Error("Failed to invalidate plan cache",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", w.maxRetries),
			zap.Error(err))
		if attempt < w.maxRetries {
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		// Не ACK-аем: сообщение будет переобработано другим консьюмером
		return
	}

	if err := w.streamRepo.AckMessage(ctx, domain.StreamCatalogUpdated, w.ConsumerGroup(), msg.ID); err != nil {
		logger.Error("Failed to ack message",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		return
	}

	logger.Info("Plan cache invalidated",
		zap.String("event_id", event.EventID.String()),
		zap.Int("keys_deleted", deleted))
}

// parseMessage парсит сообщение из стрима в CatalogUpdateEvent
func (w *CacheInvalidationWorker) parseMessage(msg domain.StreamMessage) (*domain.CatalogUpdateEvent, error) {
	var event domain.CatalogUpdateEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if !event.IsKnownEntity() {
		return nil, fmt.Errorf("unknown catalog entity: %q", event.Entity)
	}

	return &event, nil
}
