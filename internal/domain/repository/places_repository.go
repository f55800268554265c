package repository

import (
	"context"

	"github.com/places-proxy/internal/domain"
)

// PlacesRepository определяет методы для работы с upstream Places API
type PlacesRepository interface {
	// Autocomplete возвращает предсказания автодополнения для введённого текста.
	// ZERO_RESULTS от upstream отображается в пустой срез, а не в ошибку.
	Autocomplete(ctx context.Context, input string) ([]domain.Prediction, error)

	// FindPlaceFromText находит кандидатов места по произвольному текстовому запросу
	FindPlaceFromText(ctx context.Context, query string) ([]domain.PlaceCandidate, error)

	// PlaceDetails возвращает полную карточку места по его идентификатору
	PlaceDetails(ctx context.Context, placeID string) (domain.PlaceDetails, error)
}
