package invalidation_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/routes-microservice/internal/domain"
	"github.com/routes-microservice/internal/worker/invalidation"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) DeleteByPattern(ctx context.Context, pattern string) (int, error) {
	args := m.Called(ctx, pattern)
	return args.Int(0), args.Error(1)
}

func catalogEventJSON(t *testing.T, entity string) string {
	t.Helper()
	data, err := json.Marshal(domain.CatalogUpdateEvent{
		EventID:       uuid.New(),
		Entity:        entity,
		DestinationID: 7,
	})
	assert.NoError(t, err)
	return string(data)
}

func TestCacheInvalidationWorker_Name(t *testing.T) {
	worker := invalidation.NewCacheInvalidationWorker(
		&MockStreamRepository{}, &MockCacheRepository{}, "test-group", 3, zap.NewNop(),
	)

	assert.Equal(t, "plan-cache-invalidation", worker.Name())
}

func TestCacheInvalidationWorker_Stop(t *testing.T) {
	worker := invalidation.NewCacheInvalidationWorker(
		&MockStreamRepository{}, &MockCacheRepository{}, "test-group", 3, zap.NewNop(),
	)

	// Stop should not error even if not started
	assert.NoError(t, worker.Stop())

	// Calling stop multiple times should be safe
	assert.NoError(t, worker.Stop())
}

func TestCacheInvalidationWorker_InvalidatesOnCatalogUpdate(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockCache := &MockCacheRepository{}
	logger := zap.NewNop()

	msgChan := make(chan domain.StreamMessage, 1)
	msgChan <- domain.StreamMessage{ID: "1-0", Data: catalogEventJSON(t, "service")}

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamCatalogUpdated, "test-group").Return(nil)
	mockStream.On("ConsumeStream", mock.Anything, domain.StreamCatalogUpdated, "test-group", mock.Anything).
		Return((<-chan domain.StreamMessage)(msgChan), nil)
	mockStream.On("AckMessage", mock.Anything, domain.StreamCatalogUpdated, "test-group", "1-0").Return(nil)
	mockCache.On("DeleteByPattern", mock.Anything, "plan:v1:*").Return(5, nil)

	worker := invalidation.NewCacheInvalidationWorker(mockStream, mockCache, "test-group", 3, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- worker.Start(ctx)
	}()

	// Даём воркеру обработать сообщение
	time.Sleep(200 * time.Millisecond)

	assert.NoError(t, worker.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop in time")
	}

	mockCache.AssertExpectations(t)
	mockStream.AssertExpectations(t)
}

func TestCacheInvalidationWorker_SkipsMalformedMessage(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockCache := &MockCacheRepository{}

	msgChan := make(chan domain.StreamMessage, 1)
	msgChan <- domain.StreamMessage{ID: "2-0", Data: "not json"}

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamCatalogUpdated, "test-group").Return(nil)
	mockStream.On("ConsumeStream", mock.Anything, domain.StreamCatalogUpdated, "test-group", mock.Anything).
		Return((<-chan domain.StreamMessage)(msgChan), nil)
	// Битое сообщение подтверждается, кэш не трогается
	mockStream.On("AckMessage", mock.Anything, domain.StreamCatalogUpdated, "test-group", "2-0").Return(nil)

	worker := invalidation.NewCacheInvalidationWorker(mockStream, mockCache, "test-group", 3, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- worker.Start(ctx)
	}()

	time.Sleep(200 * time.Millisecond)
	assert.NoError(t, worker.Stop())
	<-done

	mockCache.AssertNotCalled(t, "DeleteByPattern", mock.Anything, mock.Anything)
	mockStream.AssertExpectations(t)
}

func TestCacheInvalidationWorker_UnknownEntityRejected(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockCache := &MockCacheRepository{}

	msgChan := make(chan domain.StreamMessage, 1)
	msgChan <- domain.StreamMessage{ID: "3-0", Data: catalogEventJSON(t, "weather")}

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamCatalogUpdated, "test-group").Return(nil)
	mockStream.On("ConsumeStream", mock.Anything, domain.StreamCatalogUpdated, "test-group", mock.Anything).
		Return((<-chan domain.StreamMessage)(msgChan), nil)
	mockStream.On("AckMessage", mock.Anything, domain.StreamCatalogUpdated, "test-group", "3-0").Return(nil)

	worker := invalidation.NewCacheInvalidationWorker(mockStream, mockCache, "test-group", 3, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- worker.Start(ctx)
	}()

	time.Sleep(200 * time.Millisecond)
	assert.NoError(t, worker.Stop())
	<-done

	mockCache.AssertNotCalled(t, "DeleteByPattern", mock.Anything, mock.Anything)
}
