package usecase

import (
	"strings"

	"github.com/routes-microservice/internal/domain"
	"github.com/routes-microservice/internal/pkg/utils"
)

// archipelagoTokens - нормализованные названия островных населённых пунктов
// Галапагосов. Живые цены для островов публикуются под разными именами
// (кантоны, острова, "islas"), поэтому совпадение по токену засчитывается
// наравне с точным совпадением названия.
var archipelagoTokens = []string{
	"galapagos",
	"puerto_ayora",
	"puerto_baquerizo_moreno",
	"puerto_villamil",
	"santa_cruz",
	"san_cristobal",
	"isabela",
	"baltra",
	"seymour",
	"islas",
}

// isArchipelagoPlace проверяет, относится ли нормализованное название
// к архипелагу
func isArchipelagoPlace(norm string) bool {
	if norm == "" {
		return false
	}
	for _, token := range archipelagoTokens {
		if strings.Contains(norm, token) {
			return true
		}
	}
	return false
}

// ReconcilePrices накладывает живые цены каталога на оценочные стоимости
// сегментов. Для каждого транспортного сегмента (lodging исключён - его
// цена берётся из диапазона направления) ищутся записи с совпадающим
// нормализованным названием или городом направления; для островных
// направлений дополнительно засчитываются записи с любым островным
// токеном. Из совпадений берётся минимальная цена. Если совпадений нет,
// остаётся оценка с price_available=false: фронтенд показывает
// "precio no disponible", а не потенциально неверное число.
func ReconcilePrices(itineraries []domain.Itinerary, prices []domain.ServicePriceRecord) []domain.Itinerary {
	if len(itineraries) == 0 {
		return itineraries
	}

	for i := range itineraries {
		for j := range itineraries[i].Legs {
			leg := &itineraries[i].Legs[j]
			if leg.Mode == domain.ModeLodging {
				continue
			}
			reconcileLeg(leg, prices)
		}
		itineraries[i].RecomputeTotalCost()
	}

	return itineraries
}

func reconcileLeg(leg *domain.Leg, prices []domain.ServicePriceRecord) {
	destNorm := utils.NormalizeName(leg.ToPlace)
	archipelago := isArchipelagoPlace(destNorm)

	found := false
	bestPrice := 0.0
	bestService := ""

	for _, rec := range prices {
		nameNorm := utils.NormalizeName(rec.DestinationName)
		cityNorm := utils.NormalizeName(rec.DestinationCity)

		matched := (nameNorm != "" && nameNorm == destNorm) ||
			(cityNorm != "" && cityNorm == destNorm)
		if !matched && archipelago {
			matched = isArchipelagoPlace(nameNorm) || isArchipelagoPlace(cityNorm)
		}
		if !matched {
			continue
		}

		if !found || rec.Price < bestPrice {
			found = true
			bestPrice = rec.Price
			bestService = rec.ServiceName
		}
	}

	if found {
		leg.Cost = bestPrice
		leg.MatchedServiceName = bestService
		leg.PriceAvailable = true
	} else {
		leg.PriceAvailable = false
	}
}
