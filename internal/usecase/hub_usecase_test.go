package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/routes-microservice/internal/domain"
	"github.com/routes-microservice/internal/usecase"
	"github.com/routes-microservice/internal/usecase/dto"
)

func hubsOfKind(hubs []domain.TransportHub, kind domain.HubKind) []domain.TransportHub {
	filtered := make([]domain.TransportHub, 0)
	for _, h := range hubs {
		if h.Kind == kind {
			filtered = append(filtered, h)
		}
	}
	return filtered
}

func TestHubUseCase_GetHubsByCity(t *testing.T) {
	ctx := context.Background()
	hubs := plannerHubs()

	newUC := func() *usecase.HubUseCase {
		hubRepo := &MockHubRepository{}
		for _, kind := range domain.ValidHubKinds() {
			hubRepo.On("ListHubsByKind", kind).Return(hubsOfKind(hubs, kind))
		}
		return usecase.NewHubUseCase(hubRepo, zap.NewNop())
	}

	t.Run("groups hubs by kind", func(t *testing.T) {
		resp, err := newUC().GetHubsByCity(ctx, dto.HubSearchRequest{City: "Quito", Kind: "all"})

		assert.NoError(t, err)
		assert.Len(t, resp.Terminals, 1)
		assert.Len(t, resp.Airports, 1)
		assert.Empty(t, resp.Seaports)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("kind filter narrows result", func(t *testing.T) {
		hubRepo := &MockHubRepository{}
		hubRepo.On("ListHubsByKind", domain.HubKindAirport).Return(hubsOfKind(hubs, domain.HubKindAirport))
		uc := usecase.NewHubUseCase(hubRepo, zap.NewNop())

		resp, err := uc.GetHubsByCity(ctx, dto.HubSearchRequest{City: "Guayaquil", Kind: "air"})

		assert.NoError(t, err)
		assert.Empty(t, resp.Terminals)
		assert.Len(t, resp.Airports, 1)
		assert.Equal(t, "gye-aeropuerto", resp.Airports[0].ID)
	})

	t.Run("city match ignores case and diacritics", func(t *testing.T) {
		resp, err := newUC().GetHubsByCity(ctx, dto.HubSearchRequest{City: "QUITO", Kind: "all"})

		assert.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("unknown city yields empty groups", func(t *testing.T) {
		resp, err := newUC().GetHubsByCity(ctx, dto.HubSearchRequest{City: "Zamora", Kind: "all"})

		assert.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
		assert.NotNil(t, resp.Terminals)
		assert.NotNil(t, resp.Airports)
		assert.NotNil(t, resp.Seaports)
	})
}
