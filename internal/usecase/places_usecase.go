package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/places-proxy/internal/domain/repository"
	"github.com/places-proxy/internal/pkg/errors"
	"github.com/places-proxy/internal/usecase/dto"
)

// PlacesUseCase - use case для поиска места и получения его карточки
type PlacesUseCase struct {
	placesRepo repository.PlacesRepository
	logger     *zap.Logger
}

// NewPlacesUseCase - создание нового PlacesUseCase
func NewPlacesUseCase(
	placesRepo repository.PlacesRepository,
	logger *zap.Logger,
) *PlacesUseCase {
	return &PlacesUseCase{
		placesRepo: placesRepo,
		logger:     logger,
	}
}

// Search - поиск места по тексту: два последовательных запроса к upstream.
// Сначала текстовый запрос разрешается в идентификатор места,
// затем по идентификатору запрашивается полная карточка.
func (uc *PlacesUseCase) Search(
	ctx context.Context,
	req dto.SearchPlaceRequest,
) (*dto.PlaceDetailsResponse, error) {
	candidates, err := uc.placesRepo.FindPlaceFromText(ctx, req.Query)
	if err != nil {
		uc.logger.Error("Failed to find place from text", zap.Error(err))
		return nil, err
	}

	if len(candidates) == 0 {
		return nil, errors.ErrPlaceNotFound
	}

	// Берём первого кандидата: upstream возвращает их по релевантности
	placeID := candidates[0].PlaceID

	details, err := uc.placesRepo.PlaceDetails(ctx, placeID)
	if err != nil {
		uc.logger.Error("Failed to fetch place details",
			zap.String("place_id", placeID),
			zap.Error(err))
		return nil, err
	}

	return &dto.PlaceDetailsResponse{Place: details}, nil
}

// Details - получение карточки места по уже известному идентификатору
func (uc *PlacesUseCase) Details(
	ctx context.Context,
	req dto.PlaceDetailsRequest,
) (*dto.PlaceDetailsResponse, error) {
	details, err := uc.placesRepo.PlaceDetails(ctx, req.PlaceID)
	if err != nil {
		uc.logger.Error("Failed to fetch place details",
			zap.String("place_id", req.PlaceID),
			zap.Error(err))
		return nil, err
	}

	return &dto.PlaceDetailsResponse{Place: details}, nil
}
