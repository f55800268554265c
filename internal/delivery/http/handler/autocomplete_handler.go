package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/places-proxy/internal/pkg/errors"
	"github.com/places-proxy/internal/pkg/utils"
	"github.com/places-proxy/internal/usecase"
	"github.com/places-proxy/internal/usecase/dto"
	"go.uber.org/zap"
)

// AutocompleteHandler - обработчик запросов автодополнения мест
type AutocompleteHandler struct {
	autocompleteUC *usecase.AutocompleteUseCase
	logger         *zap.Logger
}

// NewAutocompleteHandler - создание нового AutocompleteHandler
func NewAutocompleteHandler(autocompleteUC *usecase.AutocompleteUseCase, logger *zap.Logger) *AutocompleteHandler {
	return &AutocompleteHandler{
		autocompleteUC: autocompleteUC,
		logger:         logger,
	}
}

// Autocomplete godoc
// @Summary Автодополнение мест
// @Description Возвращает структурированные подсказки мест по введённому тексту. Результаты upstream фильтруются по вхождению запроса в city/state/country, помечаются точным совпадением, сортируются по весу совпадения и дедуплицируются по паре (name, address).
// @Tags Places
// @Accept json
// @Produce json
// @Param input query string true "Введённый пользователем текст"
// @Success 200 {object} utils.SuccessResponse{data=dto.AutocompleteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/places/autocomplete [get]
func (h *AutocompleteHandler) Autocomplete(c *fiber.Ctx) error {
	input := strings.TrimSpace(c.Query("input"))
	if input == "" {
		// преобразование не вызывается с пустым входом
		return utils.SendError(c, errors.ErrMissingInput)
	}

	result, err := h.autocompleteUC.Autocomplete(c.Context(), dto.AutocompleteRequest{Input: input})
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
