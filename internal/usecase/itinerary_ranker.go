package usecase

import (
	"sort"

	"github.com/routes-microservice/internal/domain"
)

// RankItineraries упорядочивает маршруты для выдачи. Для островных
// направлений остаются только маршруты с авиасегментом (первый
// принудительно recommended, остальные alternative); пустой результат
// допустим - наземного пути на архипелаг нет. Для остальных направлений
// стабильная сортировка: recommended раньше alternative, при равенстве
// сохраняется исходный порядок.
func RankItineraries(itineraries []domain.Itinerary, archipelago bool) []domain.Itinerary {
	if archipelago {
		filtered := make([]domain.Itinerary, 0, len(itineraries))
		for _, it := range itineraries {
			if it.HasAirLeg() {
				filtered = append(filtered, it)
			}
		}
		for i := range filtered {
			if i == 0 {
				filtered[i].Kind = domain.ItineraryRecommended
			} else {
				filtered[i].Kind = domain.ItineraryAlternative
			}
		}
		return filtered
	}

	ranked := make([]domain.Itinerary, len(itineraries))
	copy(ranked, itineraries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Kind == domain.ItineraryRecommended &&
			ranked[j].Kind != domain.ItineraryRecommended
	})
	return ranked
}
