package usecase

import (
	"strings"

	"github.com/routes-microservice/internal/domain"
	"github.com/routes-microservice/internal/pkg/utils"
)

// FindHub подбирает узел для названия города/места. Пустой kind означает
// "любой тип". Сначала точное совпадение нормализованного города, затем
// подстрочное совпадение нормализованного имени узла в обе стороны.
// Подстрочный шаг может зацепить чужой узел на коротких названиях -
// поведение исходного планировщика сохранено намеренно.
// Возвращает nil, если ничего не найдено: это не ошибка, вызывающий
// строит маршрут-заглушку.
func FindHub(cityOrPlace string, hubs []domain.TransportHub, kind domain.HubKind) *domain.TransportHub {
	nameNorm := utils.NormalizeName(cityOrPlace)
	if nameNorm == "" {
		return nil
	}

	// (a) точное совпадение по городу
	for i := range hubs {
		if kind != "" && hubs[i].Kind != kind {
			continue
		}
		if utils.NormalizeName(hubs[i].City) == nameNorm {
			return &hubs[i]
		}
	}

	// (b) подстрочное совпадение по имени узла, в обе стороны
	for i := range hubs {
		if kind != "" && hubs[i].Kind != kind {
			continue
		}
		hubNorm := utils.NormalizeName(hubs[i].Name)
		if hubNorm == "" {
			continue
		}
		if strings.Contains(hubNorm, nameNorm) || strings.Contains(nameNorm, hubNorm) {
			return &hubs[i]
		}
	}

	return nil
}

// FindAirportInCity возвращает аэропорт с точным совпадением города
// (нормализованным), либо nil
func FindAirportInCity(city string, hubs []domain.TransportHub) *domain.TransportHub {
	cityNorm := utils.NormalizeName(city)
	if cityNorm == "" {
		return nil
	}
	for i := range hubs {
		if hubs[i].Kind != domain.HubKindAirport {
			continue
		}
		if utils.NormalizeName(hubs[i].City) == cityNorm {
			return &hubs[i]
		}
	}
	return nil
}

// FindNearestAirport ищет аэропорт для города: сначала точное совпадение
// города, иначе берётся любой узел города и выбирается аэропорт с
// минимальным расстоянием до него. Возвращает nil, если у города нет
// ни одного сопоставимого узла.
func FindNearestAirport(city string, hubs []domain.TransportHub) *domain.TransportHub {
	if airport := FindAirportInCity(city, hubs); airport != nil {
		return airport
	}

	anchor := FindHub(city, hubs, "")
	if anchor == nil {
		return nil
	}

	var nearest *domain.TransportHub
	best := 0.0
	for i := range hubs {
		if hubs[i].Kind != domain.HubKindAirport {
			continue
		}
		dist := utils.HaversineDistance(
			anchor.Location.Latitude, anchor.Location.Longitude,
			hubs[i].Location.Latitude, hubs[i].Location.Longitude,
		)
		if nearest == nil || dist < best {
			nearest = &hubs[i]
			best = dist
		}
	}
	return nearest
}
