package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/routes-microservice/internal/pkg/utils"
	"github.com/routes-microservice/internal/pkg/validator"
	"github.com/routes-microservice/internal/usecase"
	"github.com/routes-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// CatalogHandler - обработчик запросов каталога направлений и услуг
type CatalogHandler struct {
	catalogUC *usecase.CatalogUseCase
	logger    *zap.Logger
}

// NewCatalogHandler - создание нового CatalogHandler
func NewCatalogHandler(catalogUC *usecase.CatalogUseCase, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// ListDestinations godoc
// @Summary Список активных направлений
// @Description Возвращает активные туристические направления с координатами и ценовым диапазоном. Можно фильтровать по регионам (costa, sierra, oriente, galapagos) через запятую.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param regions query string false "Регионы через запятую, например costa,galapagos"
// @Success 200 {object} utils.SuccessResponse{data=dto.DestinationListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/destinations [get]
func (h *CatalogHandler) ListDestinations(c *fiber.Ctx) error {
	var req dto.DestinationListRequest
	if raw := c.Query("regions"); raw != "" {
		for _, region := range strings.Split(raw, ",") {
			region = strings.TrimSpace(region)
			if region != "" {
				req.Regions = append(req.Regions, region)
			}
		}
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.catalogUC.ListDestinations(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// ListTransportServices godoc
// @Summary Список транспортных услуг
// @Description Возвращает доступные транспортные услуги с актуальными ценами. Фильтры: направление (частичное совпадение по имени) и максимальная цена.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param destination query string false "Название направления (частичное совпадение)"
// @Param max_price query number false "Максимальная цена, USD"
// @Param limit query int false "Максимальное количество результатов" default(50)
// @Success 200 {object} utils.SuccessResponse{data=dto.TransportServicesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/services/transport [get]
func (h *CatalogHandler) ListTransportServices(c *fiber.Ctx) error {
	var req dto.TransportServicesRequest
	req.Destination = c.Query("destination")
	req.MaxPrice = c.QueryFloat("max_price", 0)
	req.Limit = c.QueryInt("limit", 0)

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.catalogUC.ListTransportServices(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
