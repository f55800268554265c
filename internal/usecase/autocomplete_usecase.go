package usecase

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/places-proxy/internal/domain"
	"github.com/places-proxy/internal/domain/repository"
	"github.com/places-proxy/internal/usecase/dto"
)

// AutocompleteUseCase - use case для автодополнения мест
type AutocompleteUseCase struct {
	placesRepo repository.PlacesRepository
	logger     *zap.Logger
}

// NewAutocompleteUseCase - создание нового AutocompleteUseCase
func NewAutocompleteUseCase(
	placesRepo repository.PlacesRepository,
	logger *zap.Logger,
) *AutocompleteUseCase {
	return &AutocompleteUseCase{
		placesRepo: placesRepo,
		logger:     logger,
	}
}

// Autocomplete - получение предсказаний от upstream и преобразование их
// в отфильтрованный, отсортированный список структурированных подсказок
func (uc *AutocompleteUseCase) Autocomplete(
	ctx context.Context,
	req dto.AutocompleteRequest,
) (*dto.AutocompleteResponse, error) {
	predictions, err := uc.placesRepo.Autocomplete(ctx, req.Input)
	if err != nil {
		uc.logger.Error("Failed to fetch autocomplete predictions", zap.Error(err))
		return nil, err
	}

	suggestions := TransformPredictions(req.Input, predictions)

	uc.logger.Debug("Autocomplete completed",
		zap.Int("predictions", len(predictions)),
		zap.Int("suggestions", len(suggestions)))

	return &dto.AutocompleteResponse{
		Suggestions: suggestions,
		Total:       len(suggestions),
	}, nil
}

// TransformPredictions - чистое преобразование сырых предсказаний в подсказки.
// Конвейер: разбор термов -> фильтр по вхождению запроса -> пометка точного
// совпадения -> стабильная сортировка по весу -> дедупликация.
//
// Запрос сравнивается без учёта регистра. Предполагается непустой input:
// пустой отсекается на HTTP-слое до вызова.
func TransformPredictions(input string, predictions []domain.Prediction) []domain.PlaceSuggestion {
	query := strings.ToLower(input)

	suggestions := make([]domain.PlaceSuggestion, 0, len(predictions))
	for _, p := range predictions {
		s := domain.SuggestionFromTerms(p.TermValues())

		city := strings.ToLower(s.City)
		state := strings.ToLower(s.State)
		country := strings.ToLower(s.Country)

		// Оставляем подсказку только если запрос входит хотя бы в одно
		// из позиционных полей
		if !strings.Contains(city, query) &&
			!strings.Contains(state, query) &&
			!strings.Contains(country, query) {
			continue
		}

		// Порядок проверки country -> state -> city: при нескольких точных
		// совпадениях побеждает country, хотя сортировка ранжирует city выше.
		// Унаследованная особенность, сохраняется намеренно.
		switch query {
		case country:
			s.ExactMatch = domain.MatchCountry
		case state:
			s.ExactMatch = domain.MatchState
		case city:
			s.ExactMatch = domain.MatchCity
		}

		suggestions = append(suggestions, s)
	}

	// Стабильная сортировка: равные веса сохраняют исходный порядок
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].MatchWeight() > suggestions[j].MatchWeight()
	})

	return dedupeSuggestions(suggestions)
}

// dedupeSuggestions оставляет первое вхождение каждой пары (name, address)
func dedupeSuggestions(suggestions []domain.PlaceSuggestion) []domain.PlaceSuggestion {
	type placeKey struct {
		name    string
		address string
	}

	seen := make(map[placeKey]struct{}, len(suggestions))
	result := suggestions[:0]
	for _, s := range suggestions {
		key := placeKey{name: s.Name, address: s.Address}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, s)
	}

	return result
}
