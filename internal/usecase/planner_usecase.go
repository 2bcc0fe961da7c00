package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/routes-microservice/internal/domain"
	"github.com/routes-microservice/internal/domain/repository"
	"github.com/routes-microservice/internal/pkg/errors"
	"github.com/routes-microservice/internal/pkg/utils"
	"github.com/routes-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// lodgingNightLabel - метка длительности сегмента проживания
const lodgingNightLabel = "1 noche"

// RoutePlannerUseCase - планирование маршрутов: узлы, генерация,
// сверка цен, ранжирование. Вся вычислительная часть чистая и
// синхронная, состояние не переживает один запрос.
type RoutePlannerUseCase struct {
	hubRepo         repository.HubRepository
	destinationRepo repository.DestinationRepository
	priceRepo       repository.ServicePriceRepository
	cacheRepo       repository.CacheRepository
	logger          *zap.Logger
	planCacheTTL    time.Duration
}

func NewRoutePlannerUseCase(
	hubRepo repository.HubRepository,
	destinationRepo repository.DestinationRepository,
	priceRepo repository.ServicePriceRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	planCacheTTL time.Duration,
) *RoutePlannerUseCase {
	return &RoutePlannerUseCase{
		hubRepo:         hubRepo,
		destinationRepo: destinationRepo,
		priceRepo:       priceRepo,
		cacheRepo:       cacheRepo,
		logger:          logger,
		planCacheTTL:    planCacheTTL,
	}
}

// PlanRoute строит упорядоченный список маршрутов до направления.
// Отсутствие узла, аэропорта или живой цены никогда не фатально -
// результат деградирует до заглушек и флагов price_available=false.
func (uc *RoutePlannerUseCase) PlanRoute(
	ctx context.Context,
	req dto.PlanRouteRequest,
) (*dto.PlanRouteResponse, error) {
	originCity, err := uc.resolveOriginCity(req)
	if err != nil {
		return nil, err
	}

	destination, err := uc.destinationRepo.GetByID(ctx, req.DestinationID)
	if err != nil {
		return nil, err
	}

	hubs := uc.hubRepo.ListHubs()
	if len(hubs) == 0 {
		uc.logger.Error("Transport hub catalog is empty")
		return nil, errors.ErrHubCatalogEmpty
	}

	cacheKey := fmt.Sprintf("plan:v1:%s:%d:%t",
		utils.NormalizeName(originCity), destination.ID, req.IncludeLodging)

	if cached := uc.getCachedPlan(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	// Снимок живых цен - одно чтение на запрос. Недоступность источника
	// означает "записей нет", а не ошибку планирования.
	prices, err := uc.priceRepo.ListTransportPrices(ctx)
	if err != nil {
		uc.logger.Warn("Live price catalog unavailable, legs will be marked price_available=false",
			zap.Error(err))
		prices = nil
	}

	destinationCity := destination.CityOrProvince()

	itineraries := GenerateItineraries(originCity, destinationCity, hubs)
	itineraries = ReconcilePrices(itineraries, prices)
	if req.IncludeLodging {
		itineraries = appendLodgingLegs(itineraries, destination)
	}
	itineraries = RankItineraries(itineraries, destination.Region.IsArchipelago())

	if len(itineraries) == 0 {
		uc.logger.Warn("No viable itineraries for destination",
			zap.String("origin_city", originCity),
			zap.Int64("destination_id", destination.ID),
			zap.String("region", string(destination.Region)))
	}

	resp := &dto.PlanRouteResponse{
		OriginCity:  originCity,
		Destination: dto.ConvertDestinationSummary(destination),
		Itineraries: itineraries,
	}

	uc.setCachedPlan(ctx, cacheKey, resp)

	return resp, nil
}

// resolveOriginCity возвращает город отправления из запроса либо
// город ближайшего наземного терминала к переданным координатам
func (uc *RoutePlannerUseCase) resolveOriginCity(req dto.PlanRouteRequest) (string, error) {
	if req.OriginLat != nil && req.OriginLon != nil &&
		!utils.ValidateCoordinates(*req.OriginLat, *req.OriginLon) {
		return "", errors.ErrInvalidCoordinates
	}

	if req.OriginCity != "" {
		return req.OriginCity, nil
	}

	if req.OriginLat == nil || req.OriginLon == nil {
		return "", errors.ErrOriginRequired
	}

	terminals := uc.hubRepo.ListHubsByKind(domain.HubKindTerrestrialTerminal)
	if len(terminals) == 0 {
		return "", errors.ErrHubCatalogEmpty
	}

	var nearest *domain.TransportHub
	best := 0.0
	for i := range terminals {
		dist := utils.HaversineDistance(
			*req.OriginLat, *req.OriginLon,
			terminals[i].Location.Latitude, terminals[i].Location.Longitude,
		)
		if nearest == nil || dist < best {
			nearest = &terminals[i]
			best = dist
		}
	}

	uc.logger.Debug("Origin city resolved from coordinates",
		zap.String("city", nearest.City),
		zap.Float64("distance_km", best))

	return nearest.City, nil
}

// appendLodgingLegs добавляет каждому маршруту завершающий сегмент
// проживания по минимальной средней цене направления. Сегмент не
// участвует в сверке цен.
func appendLodgingLegs(itineraries []domain.Itinerary, destination *domain.Destination) []domain.Itinerary {
	city := destination.CityOrProvince()
	for i := range itineraries {
		leg := domain.Leg{
			Order:          len(itineraries[i].Legs) + 1,
			FromPlace:      city,
			ToPlace:        city,
			Mode:           domain.ModeLodging,
			DurationLabel:  lodgingNightLabel,
			Cost:           destination.PriceMin,
			PriceAvailable: true,
		}
		itineraries[i].Legs = append(itineraries[i].Legs, leg)
		itineraries[i].RecomputeTotalCost()
	}
	return itineraries
}

func (uc *RoutePlannerUseCase) getCachedPlan(ctx context.Context, key string) *dto.PlanRouteResponse {
	if uc.cacheRepo == nil {
		return nil
	}

	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("Plan cache read failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	if data == nil {
		return nil
	}

	var resp dto.PlanRouteResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		uc.logger.Warn("Failed to unmarshal cached plan", zap.String("key", key), zap.Error(err))
		return nil
	}

	uc.logger.Debug("Plan served from cache", zap.String("key", key))
	return &resp
}

func (uc *RoutePlannerUseCase) setCachedPlan(ctx context.Context, key string, resp *dto.PlanRouteResponse) {
	if uc.cacheRepo == nil {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		uc.logger.Warn("Failed to marshal plan for cache", zap.String("key", key), zap.Error(err))
		return
	}

	if err := uc.cacheRepo.Set(ctx, key, data, uc.planCacheTTL); err != nil {
		uc.logger.Warn("Plan cache write failed", zap.String("key", key), zap.Error(err))
	}
}
