package usecase

import (
	"context"
	"strings"

	"github.com/routes-microservice/internal/domain"
	"github.com/routes-microservice/internal/domain/repository"
	"github.com/routes-microservice/internal/pkg/utils"
	"github.com/routes-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// HubUseCase - поиск транспортных узлов города для карты планировщика
type HubUseCase struct {
	hubRepo repository.HubRepository
	logger  *zap.Logger
}

func NewHubUseCase(hubRepo repository.HubRepository, logger *zap.Logger) *HubUseCase {
	return &HubUseCase{
		hubRepo: hubRepo,
		logger:  logger,
	}
}

// GetHubsByCity возвращает терминалы, аэропорты и порты города,
// сгруппированные по типу. Совпадение города подстрочное в обе стороны,
// как в исходном планировщике. Пустой результат не является ошибкой.
func (uc *HubUseCase) GetHubsByCity(
	ctx context.Context,
	req dto.HubSearchRequest,
) (*dto.HubSearchResponse, error) {
	cityNorm := utils.NormalizeName(req.City)

	kinds := hubKindsForFilter(req.Kind)

	resp := &dto.HubSearchResponse{
		City:      req.City,
		Terminals: []domain.TransportHub{},
		Airports:  []domain.TransportHub{},
		Seaports:  []domain.TransportHub{},
	}

	for _, kind := range kinds {
		for _, hub := range uc.hubRepo.ListHubsByKind(kind) {
			hubCityNorm := utils.NormalizeName(hub.City)
			if hubCityNorm == "" {
				continue
			}
			if !strings.Contains(hubCityNorm, cityNorm) && !strings.Contains(cityNorm, hubCityNorm) {
				continue
			}
			switch kind {
			case domain.HubKindTerrestrialTerminal:
				resp.Terminals = append(resp.Terminals, hub)
			case domain.HubKindAirport:
				resp.Airports = append(resp.Airports, hub)
			case domain.HubKindSeaport:
				resp.Seaports = append(resp.Seaports, hub)
			}
		}
	}

	resp.Total = len(resp.Terminals) + len(resp.Airports) + len(resp.Seaports)

	uc.logger.Debug("Hub search completed",
		zap.String("city", req.City),
		zap.String("kind", req.Kind),
		zap.Int("total", resp.Total))

	return resp, nil
}

// hubKindsForFilter переводит фильтр запроса в набор типов узлов.
// Пустой фильтр и "all" означают все типы.
func hubKindsForFilter(filter string) []domain.HubKind {
	switch filter {
	case "terrestrial":
		return []domain.HubKind{domain.HubKindTerrestrialTerminal}
	case "air":
		return []domain.HubKind{domain.HubKindAirport}
	case "maritime":
		return []domain.HubKind{domain.HubKindSeaport}
	default:
		return domain.ValidHubKinds()
	}
}
