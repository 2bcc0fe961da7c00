package usecase

import (
	"fmt"
	"math"

	"github.com/routes-microservice/internal/domain"
	"github.com/routes-microservice/internal/pkg/utils"
)

const (
	// airAdvantageHours - авиаальтернатива предлагается, только если она
	// быстрее наземного маршрута более чем на это число часов
	airAdvantageHours = 3.0

	// airportAccessKm - трансфер терминал-аэропорт добавляется, только
	// если аэропорт дальше этого расстояния
	airportAccessKm = 10.0

	// airportAccessCost - фиксированная стоимость трансфера в аэропорт
	airportAccessCost = 5.0
)

// GenerateItineraries строит маршруты-кандидаты между городом отправления
// и городом направления: наземный прямой всегда, авиаальтернатива - если
// она осмысленно быстрее. Если терминалы не нашлись, возвращает один
// маршрут-заглушку: отсутствие узла не является ошибкой.
func GenerateItineraries(originCity, destinationCity string, hubs []domain.TransportHub) []domain.Itinerary {
	originHub := FindHub(originCity, hubs, domain.HubKindTerrestrialTerminal)
	destHub := FindHub(destinationCity, hubs, domain.HubKindTerrestrialTerminal)

	if originHub == nil || destHub == nil {
		return []domain.Itinerary{placeholderItinerary(originCity, destinationCity)}
	}

	itineraries := []domain.Itinerary{buildGroundItinerary(*originHub, *destHub)}
	groundHours := itineraries[0].TotalDurationHours

	if air, ok := buildAirItinerary(originCity, destinationCity, *originHub, *destHub, hubs); ok {
		if air.TotalDurationHours < groundHours-airAdvantageHours {
			itineraries = append(itineraries, air)
		}
	}

	return itineraries
}

// placeholderItinerary - маршрут низкой уверенности: терминал отправления
// или назначения не найден в каталоге
func placeholderItinerary(originCity, destinationCity string) domain.Itinerary {
	leg := domain.Leg{
		Order:          1,
		FromPlace:      originCity,
		ToPlace:        destinationCity,
		Mode:           domain.ModeTerrestrial,
		DurationLabel:  DurationLabelPending,
		Cost:           0,
		PriceAvailable: false,
	}

	return domain.Itinerary{
		Kind:               domain.ItineraryRecommended,
		Name:               "Ruta por definir",
		Description:        fmt.Sprintf("No se encontraron terminales para %s o %s", originCity, destinationCity),
		Legs:               []domain.Leg{leg},
		TotalDurationLabel: DurationLabelPending,
		TotalDurationHours: 0,
		TotalCost:          0,
	}
}

func buildGroundItinerary(originHub, destHub domain.TransportHub) domain.Itinerary {
	leg := EstimateLeg(originHub, destHub, domain.ModeTerrestrial)
	leg.Order = 1

	hours := DistanceDurationHours(leg.DistanceKm, domain.ModeTerrestrial)

	return domain.Itinerary{
		Kind:               domain.ItineraryRecommended,
		Name:               "Ruta terrestre directa",
		Description:        fmt.Sprintf("Viaje directo en bus de %s a %s", originHub.City, destHub.City),
		Legs:               []domain.Leg{leg},
		TotalDurationLabel: FormatDuration(hours),
		TotalDurationHours: hours,
		TotalCost:          leg.Cost,
	}
}

// buildAirItinerary пытается собрать авиамаршрут: до 3 сегментов
// (трансфер в аэропорт, перелёт, трансфер из аэропорта). Возвращает
// false, если у города отправления нет собственного аэропорта либо
// аэропорты отправления и назначения совпадают.
func buildAirItinerary(
	originCity, destinationCity string,
	originHub, destHub domain.TransportHub,
	hubs []domain.TransportHub,
) (domain.Itinerary, bool) {
	// Авиаальтернатива требует аэропорта в самом городе отправления:
	// наземный подъезд к аэропорту чужого города не предлагается
	originAirport := FindAirportInCity(originCity, hubs)
	if originAirport == nil {
		return domain.Itinerary{}, false
	}

	destAirport := FindNearestAirport(destinationCity, hubs)
	if destAirport == nil || destAirport.ID == originAirport.ID {
		return domain.Itinerary{}, false
	}

	var legs []domain.Leg
	totalHours := 0.0

	if accessLeg, ok := buildAccessLeg(originHub, *originAirport); ok {
		legs = append(legs, accessLeg)
		totalHours += DistanceDurationHours(accessLeg.DistanceKm, domain.ModeTerrestrial)
	}

	airLeg := EstimateLeg(*originAirport, *destAirport, domain.ModeAir)
	legs = append(legs, airLeg)
	totalHours += DistanceDurationHours(airLeg.DistanceKm, domain.ModeAir)

	if egressLeg, ok := buildAccessLeg(*destAirport, destHub); ok {
		legs = append(legs, egressLeg)
		totalHours += DistanceDurationHours(egressLeg.DistanceKm, domain.ModeTerrestrial)
	}

	totalCost := 0.0
	for i := range legs {
		legs[i].Order = i + 1
		totalCost += legs[i].Cost
	}

	return domain.Itinerary{
		Kind:               domain.ItineraryAlternative,
		Name:               "Ruta aérea",
		Description:        fmt.Sprintf("Vuelo de %s a %s con traslados", originAirport.City, destAirport.City),
		Legs:               legs,
		TotalDurationLabel: FormatDuration(totalHours),
		TotalDurationHours: totalHours,
		TotalCost:          totalCost,
	}, true
}

// buildAccessLeg строит наземный трансфер между терминалом и аэропортом.
// Возвращает false, если узлы ближе airportAccessKm друг к другу.
func buildAccessLeg(from, to domain.TransportHub) (domain.Leg, bool) {
	dist := utils.HaversineDistance(
		from.Location.Latitude, from.Location.Longitude,
		to.Location.Latitude, to.Location.Longitude,
	)
	if dist <= airportAccessKm {
		return domain.Leg{}, false
	}

	leg := domain.Leg{
		FromPlace:        from.City,
		ToPlace:          to.City,
		Mode:             domain.ModeTerrestrial,
		OriginHubID:      from.ID,
		DestinationHubID: to.ID,
		DistanceKm:       math.Round(dist*100) / 100,
		DurationLabel:    FormatDuration(DistanceDurationHours(dist, domain.ModeTerrestrial)),
		Cost:             airportAccessCost,
		PriceAvailable:   false,
	}
	return leg, true
}
