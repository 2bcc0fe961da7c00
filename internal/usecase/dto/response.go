package dto

import (
	"github.com/routes-microservice/internal/domain"
)

// DestinationSummary - краткая карточка направления в ответе планировщика
type DestinationSummary struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	City     string        `json:"city"`
	Region   domain.Region `json:"region"`
	PriceMin float64       `json:"price_min"`
	PriceMax float64       `json:"price_max"`
}

// PlanRouteResponse - упорядоченный список маршрутов для направления
type PlanRouteResponse struct {
	OriginCity  string             `json:"origin_city"`
	Destination DestinationSummary `json:"destination"`
	Itineraries []domain.Itinerary `json:"itineraries"`
}

// ConvertDestinationSummary строит карточку направления из доменной сущности
func ConvertDestinationSummary(d *domain.Destination) DestinationSummary {
	return DestinationSummary{
		ID:       d.ID,
		Name:     d.Name,
		City:     d.CityOrProvince(),
		Region:   d.Region,
		PriceMin: d.PriceMin,
		PriceMax: d.PriceMax,
	}
}

// HubSearchResponse - узлы города, сгруппированные по типу
type HubSearchResponse struct {
	City      string                `json:"city"`
	Terminals []domain.TransportHub `json:"terminals"`
	Airports  []domain.TransportHub `json:"airports"`
	Seaports  []domain.TransportHub `json:"seaports"`
	Total     int                   `json:"total"`
}

// DestinationListResponse - активные направления с координатами
type DestinationListResponse struct {
	Destinations []*domain.Destination `json:"destinations"`
	Total        int                   `json:"total"`
}

// TransportServicesResponse - транспортные услуги с актуальными ценами
type TransportServicesResponse struct {
	Services []domain.ServicePriceRecord `json:"services"`
	Total    int                         `json:"total"`
}
