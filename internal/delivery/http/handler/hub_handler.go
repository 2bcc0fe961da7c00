package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/routes-microservice/internal/pkg/utils"
	"github.com/routes-microservice/internal/pkg/validator"
	"github.com/routes-microservice/internal/usecase"
	"github.com/routes-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// HubHandler - обработчик запросов каталога транспортных узлов
type HubHandler struct {
	hubUC  *usecase.HubUseCase
	logger *zap.Logger
}

// NewHubHandler - создание нового HubHandler
func NewHubHandler(hubUC *usecase.HubUseCase, logger *zap.Logger) *HubHandler {
	return &HubHandler{
		hubUC:  hubUC,
		logger: logger,
	}
}

// GetHubsByCity godoc
// @Summary Транспортные узлы города
// @Description Возвращает терминалы, аэропорты и морские порты, привязанные к городу. Сопоставление по нормализованному имени города (без диакритики, без учёта регистра), допускается вхождение подстроки.
// @Tags Hubs
// @Accept json
// @Produce json
// @Param city query string true "Город (минимум 2 символа)"
// @Param kind query string false "Тип узла: terrestrial, air, maritime или all" default(all)
// @Success 200 {object} utils.SuccessResponse{data=dto.HubSearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/hubs [get]
func (h *HubHandler) GetHubsByCity(c *fiber.Ctx) error {
	var req dto.HubSearchRequest
	req.City = c.Query("city")
	req.Kind = c.Query("kind", "all")

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.hubUC.GetHubsByCity(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
