package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routes-microservice/internal/domain"
	"github.com/routes-microservice/internal/usecase"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		hours    float64
		expected string
	}{
		{"single minute", 1.0 / 60.0, "1 minuto"},
		{"half hour", 0.5, "30 minutos"},
		{"exact hour", 1.0, "1 hora"},
		{"hour and a half", 1.5, "1 hora 30 minutos"},
		{"plural hours", 2.0, "2 horas"},
		{"hours with minutes", 5.25, "5 horas 15 minutos"},
		{"single day with hours", 30.0, "1 día 6 horas"},
		{"exact days", 48.0, "2 días"},
		{"day and single hour", 25.0, "1 día 1 hora"},
		{"zero", 0, "0 minutos"},
		{"negative clamped", -1, "0 minutos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, usecase.FormatDuration(tt.hours))
		})
	}
}

func TestDistanceDurationHours(t *testing.T) {
	t.Run("terrestrial at 50 km/h", func(t *testing.T) {
		assert.InDelta(t, 2.0, usecase.DistanceDurationHours(100, domain.ModeTerrestrial), 1e-9)
	})

	t.Run("air adds fixed ground handling", func(t *testing.T) {
		// 500 км при 500 км/ч = 1 час + 2 часа наземных процедур
		assert.InDelta(t, 3.0, usecase.DistanceDurationHours(500, domain.ModeAir), 1e-9)
	})

	t.Run("maritime at 30 km/h", func(t *testing.T) {
		assert.InDelta(t, 2.0, usecase.DistanceDurationHours(60, domain.ModeMaritime), 1e-9)
	})

	t.Run("unknown mode", func(t *testing.T) {
		assert.Equal(t, 0.0, usecase.DistanceDurationHours(100, domain.TransportMode("teleport")))
	})
}

func TestDistanceCost(t *testing.T) {
	t.Run("terrestrial rounded to whole dollars", func(t *testing.T) {
		// 2 + 100*0.03 = 5
		assert.Equal(t, 5.0, usecase.DistanceCost(100, domain.ModeTerrestrial))
		// 2 + 270*0.03 = 10.1 -> 10
		assert.Equal(t, 10.0, usecase.DistanceCost(270, domain.ModeTerrestrial))
	})

	t.Run("air", func(t *testing.T) {
		// 50 + 1000*0.35 = 400
		assert.Equal(t, 400.0, usecase.DistanceCost(1000, domain.ModeAir))
	})

	t.Run("maritime", func(t *testing.T) {
		// 20 + 100*0.15 = 35
		assert.Equal(t, 35.0, usecase.DistanceCost(100, domain.ModeMaritime))
	})

	t.Run("unknown mode", func(t *testing.T) {
		assert.Equal(t, 0.0, usecase.DistanceCost(100, domain.TransportMode("teleport")))
	})
}

func TestEstimateLeg(t *testing.T) {
	from := domain.TransportHub{
		ID:   "uio-terminal-quitumbe",
		Name: "Terminal Terrestre Quitumbe",
		City: "Quito",
		Kind: domain.HubKindTerrestrialTerminal,
		Location: domain.GeoPoint{
			Latitude:  -0.2972,
			Longitude: -78.5566,
		},
	}
	to := domain.TransportHub{
		ID:   "gye-terminal",
		Name: "Terminal Terrestre de Guayaquil",
		City: "Guayaquil",
		Kind: domain.HubKindTerrestrialTerminal,
		Location: domain.GeoPoint{
			Latitude:  -2.1391,
			Longitude: -79.8846,
		},
	}

	leg := usecase.EstimateLeg(from, to, domain.ModeTerrestrial)

	assert.Equal(t, "Quito", leg.FromPlace)
	assert.Equal(t, "Guayaquil", leg.ToPlace)
	assert.Equal(t, domain.ModeTerrestrial, leg.Mode)
	assert.Equal(t, "uio-terminal-quitumbe", leg.OriginHubID)
	assert.Equal(t, "gye-terminal", leg.DestinationHubID)
	assert.InDelta(t, 252, leg.DistanceKm, 10)
	assert.NotEmpty(t, leg.DurationLabel)
	assert.Greater(t, leg.Cost, 0.0)
	assert.False(t, leg.PriceAvailable)
}
