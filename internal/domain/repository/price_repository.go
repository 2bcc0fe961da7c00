package repository

import (
	"context"

	"github.com/routes-microservice/internal/domain"
)

// ServicePriceFilter - фильтры для выборки транспортных услуг
type ServicePriceFilter struct {
	// Destination - подстрока имени или города направления (опционально)
	Destination string
	// MaxPrice - верхняя граница цены, 0 означает "без ограничения"
	MaxPrice float64
	// Limit - максимум строк, 0 означает дефолтный лимит репозитория
	Limit int
}

// ServicePriceRepository определяет методы для работы с актуальными ценами
// транспортных услуг маркетплейса
type ServicePriceRepository interface {
	// ListTransportPrices возвращает снимок цен всех активных и доступных
	// транспортных услуг. Используется сверкой цен: один вызов на запрос.
	ListTransportPrices(ctx context.Context) ([]domain.ServicePriceRecord, error)

	// ListTransportServices возвращает транспортные услуги с фильтрами
	// для каталожной выдачи
	ListTransportServices(ctx context.Context, filter ServicePriceFilter) ([]domain.ServicePriceRecord, error)
}
