package domain

// TransportMode - вид транспорта для сегмента маршрута
type TransportMode string

const (
	ModeTerrestrial TransportMode = "terrestrial"
	ModeAir         TransportMode = "air"
	ModeMaritime    TransportMode = "maritime"
	ModeLodging     TransportMode = "lodging"
)

// HubKindFor возвращает тип узла, обслуживающий данный вид транспорта.
// Для lodging узлов нет.
func (m TransportMode) HubKindFor() (HubKind, bool) {
	switch m {
	case ModeTerrestrial:
		return HubKindTerrestrialTerminal, true
	case ModeAir:
		return HubKindAirport, true
	case ModeMaritime:
		return HubKindSeaport, true
	default:
		return "", false
	}
}

// IsValidTransportMode checks if transport mode is valid
func IsValidTransportMode(mode TransportMode) bool {
	switch mode {
	case ModeTerrestrial, ModeAir, ModeMaritime, ModeLodging:
		return true
	}
	return false
}

// ItineraryKind - тип маршрута: рекомендуемый или альтернативный
type ItineraryKind string

const (
	ItineraryRecommended ItineraryKind = "recommended"
	ItineraryAlternative ItineraryKind = "alternative"
)

// Leg - один сегмент маршрута. Мутируется только при построении
// Itinerary, после этого неизменяем.
type Leg struct {
	Order              int           `json:"order"`
	FromPlace          string        `json:"from_place"`
	ToPlace            string        `json:"to_place"`
	Mode               TransportMode `json:"mode"`
	OriginHubID        string        `json:"origin_hub_id,omitempty"`
	DestinationHubID   string        `json:"destination_hub_id,omitempty"`
	DistanceKm         float64       `json:"distance_km,omitempty"`
	DurationLabel      string        `json:"duration_label"`
	Cost               float64       `json:"cost"`
	PriceAvailable     bool          `json:"price_available"`
	MatchedServiceName string        `json:"matched_service_name,omitempty"`
}

// Itinerary - упорядоченная последовательность сегментов от отправления
// до направления. Создаётся заново на каждый запрос, не персистится.
type Itinerary struct {
	Kind               ItineraryKind `json:"kind"`
	Name               string        `json:"name"`
	Description        string        `json:"description"`
	Legs               []Leg         `json:"legs"`
	TotalDurationLabel string        `json:"total_duration_label"`
	TotalDurationHours float64       `json:"total_duration_hours"`
	TotalCost          float64       `json:"total_cost"`
}

// HasAirLeg проверяет наличие авиасегмента в маршруте
func (it *Itinerary) HasAirLeg() bool {
	for _, leg := range it.Legs {
		if leg.Mode == ModeAir {
			return true
		}
	}
	return false
}

// RecomputeTotalCost пересчитывает суммарную стоимость по сегментам
func (it *Itinerary) RecomputeTotalCost() {
	total := 0.0
	for _, leg := range it.Legs {
		total += leg.Cost
	}
	it.TotalCost = total
}
