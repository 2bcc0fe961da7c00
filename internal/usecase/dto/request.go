package dto

// PlanRouteRequest - запрос на планирование маршрута. Город отправления
// можно не указывать, если переданы координаты: тогда берётся город
// ближайшего наземного терминала.
type PlanRouteRequest struct {
	OriginCity     string   `json:"origin_city" validate:"omitempty,min=2"`
	OriginLat      *float64 `json:"origin_lat" validate:"omitempty,min=-90,max=90"`
	OriginLon      *float64 `json:"origin_lon" validate:"omitempty,min=-180,max=180"`
	DestinationID  int64    `json:"destination_id" validate:"required,min=1"`
	IncludeLodging bool     `json:"include_lodging"`
}

// HubSearchRequest - запрос на поиск транспортных узлов города
type HubSearchRequest struct {
	City string `json:"city" validate:"required,min=2"`
	Kind string `json:"kind" validate:"omitempty,oneof=terrestrial air maritime all"`
}

// DestinationListRequest - запрос списка направлений с координатами
type DestinationListRequest struct {
	Regions []string `json:"regions" validate:"omitempty,dive,oneof=costa sierra oriente galapagos"`
}

// TransportServicesRequest - запрос списка транспортных услуг
type TransportServicesRequest struct {
	Destination string  `json:"destination" validate:"omitempty,min=2"`
	MaxPrice    float64 `json:"max_price" validate:"omitempty,min=0"`
	Limit       int     `json:"limit" validate:"omitempty,min=1,max=100"`
}
