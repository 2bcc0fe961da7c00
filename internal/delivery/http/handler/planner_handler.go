package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/routes-microservice/internal/pkg/utils"
	"github.com/routes-microservice/internal/pkg/validator"
	"github.com/routes-microservice/internal/usecase"
	"github.com/routes-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// PlannerHandler - обработчик запросов планирования маршрутов
type PlannerHandler struct {
	plannerUC *usecase.RoutePlannerUseCase
	logger    *zap.Logger
}

// NewPlannerHandler - создание нового PlannerHandler
func NewPlannerHandler(plannerUC *usecase.RoutePlannerUseCase, logger *zap.Logger) *PlannerHandler {
	return &PlannerHandler{
		plannerUC: plannerUC,
		logger:    logger,
	}
}

// PlanRoute godoc
// @Summary Планирование маршрутов до направления
// @Description Строит упорядоченный список маршрутов (рекомендуемый наземный и, если осмысленно быстрее, авиаальтернативу) от города отправления до выбранного направления, со сверкой оценочных цен с живыми ценами каталога услуг. Для островных направлений остаются только маршруты с авиасегментом.
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.PlanRouteRequest true "Параметры планирования"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlanRouteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/routes/plan [post]
func (h *PlannerHandler) PlanRoute(c *fiber.Ctx) error {
	var req dto.PlanRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.plannerUC.PlanRoute(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Itineraries),
	})
}
