package usecase

import (
	"context"

	"github.com/routes-microservice/internal/domain"
	"github.com/routes-microservice/internal/domain/repository"
	"github.com/routes-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// CatalogUseCase - каталожные выборки: направления с координатами
// и транспортные услуги с живыми ценами
type CatalogUseCase struct {
	destinationRepo repository.DestinationRepository
	priceRepo       repository.ServicePriceRepository
	logger          *zap.Logger
}

func NewCatalogUseCase(
	destinationRepo repository.DestinationRepository,
	priceRepo repository.ServicePriceRepository,
	logger *zap.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		destinationRepo: destinationRepo,
		priceRepo:       priceRepo,
		logger:          logger,
	}
}

// ListDestinations возвращает активные направления с координатами,
// опционально отфильтрованные по регионам
func (uc *CatalogUseCase) ListDestinations(
	ctx context.Context,
	req dto.DestinationListRequest,
) (*dto.DestinationListResponse, error) {
	regions := make([]domain.Region, 0, len(req.Regions))
	for _, r := range req.Regions {
		regions = append(regions, domain.Region(r))
	}

	destinations, err := uc.destinationRepo.ListActive(ctx, regions)
	if err != nil {
		uc.logger.Error("Failed to list destinations", zap.Error(err))
		return nil, err
	}

	return &dto.DestinationListResponse{
		Destinations: destinations,
		Total:        len(destinations),
	}, nil
}

// ListTransportServices возвращает транспортные услуги с фильтрами
// по направлению и максимальной цене
func (uc *CatalogUseCase) ListTransportServices(
	ctx context.Context,
	req dto.TransportServicesRequest,
) (*dto.TransportServicesResponse, error) {
	services, err := uc.priceRepo.ListTransportServices(ctx, repository.ServicePriceFilter{
		Destination: req.Destination,
		MaxPrice:    req.MaxPrice,
		Limit:       req.Limit,
	})
	if err != nil {
		uc.logger.Error("Failed to list transport services", zap.Error(err))
		return nil, err
	}

	return &dto.TransportServicesResponse{
		Services: services,
		Total:    len(services),
	}, nil
}
