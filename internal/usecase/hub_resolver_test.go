package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routes-microservice/internal/domain"
	"github.com/routes-microservice/internal/usecase"
)

func testHubs() []domain.TransportHub {
	return []domain.TransportHub{
		{
			ID:       "uio-terminal-quitumbe",
			Name:     "Terminal Terrestre Quitumbe",
			City:     "Quito",
			Kind:     domain.HubKindTerrestrialTerminal,
			Location: domain.GeoPoint{Latitude: -0.2972, Longitude: -78.5566},
		},
		{
			ID:       "uio-aeropuerto",
			Name:     "Aeropuerto Internacional Mariscal Sucre",
			City:     "Quito",
			Kind:     domain.HubKindAirport,
			Location: domain.GeoPoint{Latitude: -0.1292, Longitude: -78.3575},
		},
		{
			ID:       "gye-terminal",
			Name:     "Terminal Terrestre de Guayaquil",
			City:     "Guayaquil",
			Kind:     domain.HubKindTerrestrialTerminal,
			Location: domain.GeoPoint{Latitude: -2.1391, Longitude: -79.8846},
		},
		{
			ID:       "gye-aeropuerto",
			Name:     "Aeropuerto José Joaquín de Olmedo",
			City:     "Guayaquil",
			Kind:     domain.HubKindAirport,
			Location: domain.GeoPoint{Latitude: -2.1576, Longitude: -79.8836},
		},
		{
			ID:       "bnos-terminal",
			Name:     "Terminal Terrestre de Baños",
			City:     "Baños",
			Kind:     domain.HubKindTerrestrialTerminal,
			Location: domain.GeoPoint{Latitude: -1.3928, Longitude: -78.4269},
		},
	}
}

func TestFindHub(t *testing.T) {
	hubs := testHubs()

	t.Run("exact city match", func(t *testing.T) {
		hub := usecase.FindHub("Quito", hubs, domain.HubKindTerrestrialTerminal)
		assert.NotNil(t, hub)
		assert.Equal(t, "uio-terminal-quitumbe", hub.ID)
	})

	t.Run("diacritics and case ignored", func(t *testing.T) {
		hub := usecase.FindHub("BANOS", hubs, domain.HubKindTerrestrialTerminal)
		assert.NotNil(t, hub)
		assert.Equal(t, "bnos-terminal", hub.ID)
	})

	t.Run("kind filter respected", func(t *testing.T) {
		hub := usecase.FindHub("Quito", hubs, domain.HubKindAirport)
		assert.NotNil(t, hub)
		assert.Equal(t, "uio-aeropuerto", hub.ID)
	})

	t.Run("empty kind matches any", func(t *testing.T) {
		hub := usecase.FindHub("Guayaquil", hubs, "")
		assert.NotNil(t, hub)
		assert.Equal(t, "Guayaquil", hub.City)
	})

	t.Run("substring fallback on hub name", func(t *testing.T) {
		hub := usecase.FindHub("Quitumbe", hubs, domain.HubKindTerrestrialTerminal)
		assert.NotNil(t, hub)
		assert.Equal(t, "uio-terminal-quitumbe", hub.ID)
	})

	t.Run("not found returns nil", func(t *testing.T) {
		assert.Nil(t, usecase.FindHub("Zamora", hubs, domain.HubKindTerrestrialTerminal))
	})

	t.Run("empty name returns nil", func(t *testing.T) {
		assert.Nil(t, usecase.FindHub("  ", hubs, ""))
	})
}

func TestFindAirportInCity(t *testing.T) {
	hubs := testHubs()

	t.Run("city with airport", func(t *testing.T) {
		airport := usecase.FindAirportInCity("Quito", hubs)
		assert.NotNil(t, airport)
		assert.Equal(t, "uio-aeropuerto", airport.ID)
	})

	t.Run("city without airport", func(t *testing.T) {
		assert.Nil(t, usecase.FindAirportInCity("Baños", hubs))
	})
}

func TestFindNearestAirport(t *testing.T) {
	hubs := testHubs()

	t.Run("exact city airport wins", func(t *testing.T) {
		airport := usecase.FindNearestAirport("Guayaquil", hubs)
		assert.NotNil(t, airport)
		assert.Equal(t, "gye-aeropuerto", airport.ID)
	})

	t.Run("falls back to nearest by distance", func(t *testing.T) {
		// У Баньос нет аэропорта; ближайший к терминалу - Кито (~145 км),
		// Гуаякиль заметно дальше
		airport := usecase.FindNearestAirport("Baños", hubs)
		assert.NotNil(t, airport)
		assert.Equal(t, "uio-aeropuerto", airport.ID)
	})

	t.Run("unknown city returns nil", func(t *testing.T) {
		assert.Nil(t, usecase.FindNearestAirport("Zamora", hubs))
	})
}
