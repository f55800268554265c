package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/places-proxy/internal/pkg/errors"
	"github.com/places-proxy/internal/pkg/utils"
	"github.com/places-proxy/internal/pkg/validator"
	"github.com/places-proxy/internal/usecase"
	"github.com/places-proxy/internal/usecase/dto"
	"go.uber.org/zap"
)

// PlacesHandler - обработчик поиска места и карточки места
type PlacesHandler struct {
	placesUC *usecase.PlacesUseCase
	logger   *zap.Logger
}

// NewPlacesHandler - создание нового PlacesHandler
func NewPlacesHandler(placesUC *usecase.PlacesUseCase, logger *zap.Logger) *PlacesHandler {
	return &PlacesHandler{
		placesUC: placesUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Поиск места по тексту
// @Description Разрешает текстовый запрос в идентификатор места и возвращает его полную карточку. Два последовательных вызова upstream: find-from-text, затем details. Payload upstream отдаётся без изменений.
// @Tags Places
// @Accept json
// @Produce json
// @Param query query string true "Текстовый запрос (название места, адрес)"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlaceDetailsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/places/search [get]
func (h *PlacesHandler) Search(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		return utils.SendError(c, errors.ErrMissingQuery)
	}

	req := dto.SearchPlaceRequest{Query: query}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.placesUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// GetDetails godoc
// @Summary Карточка места по идентификатору
// @Description Возвращает полную карточку места по его идентификатору. Payload upstream отдаётся без изменений.
// @Tags Places
// @Accept json
// @Produce json
// @Param place_id path string true "Идентификатор места"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlaceDetailsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/places/{place_id} [get]
func (h *PlacesHandler) GetDetails(c *fiber.Ctx) error {
	placeID := c.Params("place_id")
	if placeID == "" {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.placesUC.Details(c.Context(), dto.PlaceDetailsRequest{PlaceID: placeID})
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
