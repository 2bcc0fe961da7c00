package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routes-microservice/internal/domain"
	"github.com/routes-microservice/internal/usecase"
)

func TestRankItineraries(t *testing.T) {
	ground := domain.Itinerary{
		Kind: domain.ItineraryRecommended,
		Name: "Ruta terrestre directa",
		Legs: []domain.Leg{{Order: 1, Mode: domain.ModeTerrestrial}},
	}
	air := domain.Itinerary{
		Kind: domain.ItineraryAlternative,
		Name: "Ruta aérea",
		Legs: []domain.Leg{{Order: 1, Mode: domain.ModeAir}},
	}

	t.Run("island destination keeps only air itineraries", func(t *testing.T) {
		ranked := usecase.RankItineraries([]domain.Itinerary{ground, air}, true)

		assert.Len(t, ranked, 1)
		assert.Equal(t, "Ruta aérea", ranked[0].Name)
		assert.Equal(t, domain.ItineraryRecommended, ranked[0].Kind)
	})

	t.Run("island destination without air option is empty", func(t *testing.T) {
		ranked := usecase.RankItineraries([]domain.Itinerary{ground}, true)
		assert.Empty(t, ranked)
	})

	t.Run("island second air itinerary stays alternative", func(t *testing.T) {
		air2 := air
		air2.Name = "Ruta aérea 2"

		ranked := usecase.RankItineraries([]domain.Itinerary{ground, air, air2}, true)

		assert.Len(t, ranked, 2)
		assert.Equal(t, domain.ItineraryRecommended, ranked[0].Kind)
		assert.Equal(t, domain.ItineraryAlternative, ranked[1].Kind)
	})

	t.Run("mainland recommended sorts before alternative", func(t *testing.T) {
		ranked := usecase.RankItineraries([]domain.Itinerary{air, ground}, false)

		assert.Len(t, ranked, 2)
		assert.Equal(t, "Ruta terrestre directa", ranked[0].Name)
		assert.Equal(t, "Ruta aérea", ranked[1].Name)
	})

	t.Run("mainland sort is stable", func(t *testing.T) {
		ground2 := ground
		ground2.Name = "Ruta terrestre 2"

		ranked := usecase.RankItineraries([]domain.Itinerary{ground, ground2, air}, false)

		assert.Equal(t, "Ruta terrestre directa", ranked[0].Name)
		assert.Equal(t, "Ruta terrestre 2", ranked[1].Name)
		assert.Equal(t, "Ruta aérea", ranked[2].Name)
	})

	t.Run("input slice not mutated for mainland", func(t *testing.T) {
		input := []domain.Itinerary{air, ground}
		_ = usecase.RankItineraries(input, false)

		assert.Equal(t, "Ruta aérea", input[0].Name)
	})
}
