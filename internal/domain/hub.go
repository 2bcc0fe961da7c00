package domain

// HubKind - тип транспортного узла
type HubKind string

const (
	HubKindTerrestrialTerminal HubKind = "terrestrial_terminal"
	HubKindAirport             HubKind = "airport"
	HubKindSeaport             HubKind = "seaport"
)

// TransportHub - транспортный узел (терминал, аэропорт, порт).
// Загружается один раз из статического каталога, read-only при планировании.
type TransportHub struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	City     string   `json:"city"`
	Kind     HubKind  `json:"kind"`
	Location GeoPoint `json:"location"`
}

// ValidHubKinds returns list of valid hub kinds
func ValidHubKinds() []HubKind {
	return []HubKind{
		HubKindTerrestrialTerminal,
		HubKindAirport,
		HubKindSeaport,
	}
}

// IsValidHubKind checks if hub kind is valid
func IsValidHubKind(kind HubKind) bool {
	for _, k := range ValidHubKinds() {
		if k == kind {
			return true
		}
	}
	return false
}
