package domain

// Region - регион Эквадора, к которому относится направление
type Region string

const (
	RegionCosta     Region = "costa"
	RegionSierra    Region = "sierra"
	RegionOriente   Region = "oriente"
	RegionGalapagos Region = "galapagos"
)

// IsArchipelago проверяет, является ли регион островным.
// Для островных направлений обязателен авиаперелёт.
func (r Region) IsArchipelago() bool {
	return r == RegionGalapagos
}

// ValidRegions returns list of valid regions
func ValidRegions() []Region {
	return []Region{RegionCosta, RegionSierra, RegionOriente, RegionGalapagos}
}

// IsValidRegion checks if region is valid
func IsValidRegion(region Region) bool {
	for _, r := range ValidRegions() {
		if r == region {
			return true
		}
	}
	return false
}

// Destination - туристическое направление из каталога маркетплейса.
// Read-only снимок на время одного запроса планирования.
type Destination struct {
	ID       int64    `json:"id" db:"id"`
	Name     string   `json:"name" db:"nombre"`
	Province string   `json:"province" db:"provincia"`
	City     string   `json:"city" db:"ciudad"`
	Region   Region   `json:"region" db:"region"`
	Location GeoPoint `json:"location"`
	PriceMin float64  `json:"price_min" db:"precio_promedio_minimo"`
	PriceMax float64  `json:"price_max" db:"precio_promedio_maximo"`
}

// CityOrProvince возвращает город направления, либо провинцию,
// если город не заполнен (так делает исходный каталог)
func (d *Destination) CityOrProvince() string {
	if d.City != "" {
		return d.City
	}
	return d.Province
}

// ServicePriceRecord - актуальная цена транспортной услуги из каталога.
// Read-only снимок на время одного запроса, сверка всегда берёт минимум.
type ServicePriceRecord struct {
	ServiceName     string  `json:"service_name" db:"nombre"`
	DestinationName string  `json:"destination_name" db:"destino_nombre"`
	DestinationCity string  `json:"destination_city" db:"destino_ciudad"`
	Price           float64 `json:"price" db:"precio"`
}
