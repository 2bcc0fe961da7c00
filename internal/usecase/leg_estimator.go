package usecase

import (
	"fmt"
	"math"

	"github.com/routes-microservice/internal/domain"
	"github.com/routes-microservice/internal/pkg/utils"
)

// modeProfile - линейная модель скорости и тарифа для вида транспорта
type modeProfile struct {
	SpeedKmh  float64
	BaseCost  float64
	CostPerKm float64
}

// Константы сохранены из исходного планировщика (USD, км/ч)
var modeProfiles = map[domain.TransportMode]modeProfile{
	domain.ModeTerrestrial: {SpeedKmh: 50, BaseCost: 2, CostPerKm: 0.03},
	domain.ModeAir:         {SpeedKmh: 500, BaseCost: 50, CostPerKm: 0.35},
	domain.ModeMaritime:    {SpeedKmh: 30, BaseCost: 20, CostPerKm: 0.15},
}

// airGroundHandlingHours - фиксированная наземная надбавка для авиасегмента
// (регистрация, посадка, получение багажа)
const airGroundHandlingHours = 2.0

// DurationLabelPending - метка длительности для маршрута-заглушки
const DurationLabelPending = "por definir"

// DistanceDurationHours возвращает длительность сегмента в часах
// для заданной дистанции и вида транспорта
func DistanceDurationHours(distanceKm float64, mode domain.TransportMode) float64 {
	profile, ok := modeProfiles[mode]
	if !ok || profile.SpeedKmh <= 0 {
		return 0
	}
	hours := distanceKm / profile.SpeedKmh
	if mode == domain.ModeAir {
		hours += airGroundHandlingHours
	}
	return hours
}

// DistanceCost возвращает оценочную стоимость сегмента в долларах:
// round(base + dist * perKm)
func DistanceCost(distanceKm float64, mode domain.TransportMode) float64 {
	profile, ok := modeProfiles[mode]
	if !ok {
		return 0
	}
	return math.Round(profile.BaseCost + distanceKm*profile.CostPerKm)
}

// EstimateLeg строит сегмент между двумя узлами с оценочной длительностью
// и стоимостью. Порядок проставляет вызывающий генератор.
func EstimateLeg(from, to domain.TransportHub, mode domain.TransportMode) domain.Leg {
	dist := utils.HaversineDistance(
		from.Location.Latitude, from.Location.Longitude,
		to.Location.Latitude, to.Location.Longitude,
	)
	hours := DistanceDurationHours(dist, mode)

	return domain.Leg{
		FromPlace:        from.City,
		ToPlace:          to.City,
		Mode:             mode,
		OriginHubID:      from.ID,
		DestinationHubID: to.ID,
		DistanceKm:       math.Round(dist*100) / 100,
		DurationLabel:    FormatDuration(hours),
		Cost:             DistanceCost(dist, mode),
		PriceAvailable:   false,
	}
}

// FormatDuration форматирует длительность в часах в человекочитаемую метку:
// до часа - минуты, до суток - "H horas M minutos" (минуты опускаются при
// нуле), от суток - "D días H horas". Формат закреплён за фронтендом,
// менять нельзя.
func FormatDuration(hours float64) string {
	totalMinutes := int(math.Round(hours * 60))
	if totalMinutes < 0 {
		totalMinutes = 0
	}

	if totalMinutes < 60 {
		return fmt.Sprintf("%d %s", totalMinutes, pluralEs(totalMinutes, "minuto", "minutos"))
	}

	if totalMinutes < 24*60 {
		h := totalMinutes / 60
		m := totalMinutes % 60
		label := fmt.Sprintf("%d %s", h, pluralEs(h, "hora", "horas"))
		if m > 0 {
			label += fmt.Sprintf(" %d %s", m, pluralEs(m, "minuto", "minutos"))
		}
		return label
	}

	days := totalMinutes / (24 * 60)
	h := (totalMinutes % (24 * 60)) / 60
	label := fmt.Sprintf("%d %s", days, pluralEs(days, "día", "días"))
	if h > 0 {
		label += fmt.Sprintf(" %d %s", h, pluralEs(h, "hora", "horas"))
	}
	return label
}

func pluralEs(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
