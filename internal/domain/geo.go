package domain

// GeoPoint - географическая точка (широта/долгота в градусах)
type GeoPoint struct {
	Latitude  float64 `json:"latitude" db:"latitud"`
	Longitude float64 `json:"longitude" db:"longitud"`
}

// IsValid проверяет, что координаты находятся в допустимых пределах
func (p GeoPoint) IsValid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}
