package repository

import (
	"context"

	"github.com/routes-microservice/internal/domain"
)

// DestinationRepository определяет методы для работы с каталогом направлений
type DestinationRepository interface {
	// GetByID возвращает активное направление по ID
	GetByID(ctx context.Context, id int64) (*domain.Destination, error)

	// ListActive возвращает активные направления с координатами.
	// Пустой regions означает "все регионы".
	ListActive(ctx context.Context, regions []domain.Region) ([]*domain.Destination, error)
}
