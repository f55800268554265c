package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/places-proxy/internal/domain"
	"github.com/places-proxy/internal/usecase"
	"github.com/places-proxy/internal/usecase/dto"
)

// MockPlacesRepository is a mock of PlacesRepository
type MockPlacesRepository struct {
	mock.Mock
}

func (m *MockPlacesRepository) Autocomplete(ctx context.Context, input string) ([]domain.Prediction, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prediction), args.Error(1)
}

func (m *MockPlacesRepository) FindPlaceFromText(ctx context.Context, query string) ([]domain.PlaceCandidate, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlaceCandidate), args.Error(1)
}

func (m *MockPlacesRepository) PlaceDetails(ctx context.Context, placeID string) (domain.PlaceDetails, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.PlaceDetails), args.Error(1)
}

func prediction(values ...string) domain.Prediction {
	terms := make([]domain.PredictionTerm, len(values))
	offset := 0
	for i, v := range values {
		terms[i] = domain.PredictionTerm{Offset: offset, Value: v}
		offset += len(v) + 2
	}
	return domain.Prediction{Terms: terms}
}

func TestTransformPredictions_Filter(t *testing.T) {
	t.Run("kept when input is substring of a positional field", func(t *testing.T) {
		result := usecase.TransformPredictions("syd", []domain.Prediction{
			prediction("Sydney", "NSW", "Australia"),
		})

		require.Len(t, result, 1)
		assert.Equal(t, "Sydney", result[0].Name)
		assert.Equal(t, "NSW, Australia", result[0].Address)
		assert.Equal(t, "Sydney", result[0].City)
		assert.Equal(t, "NSW", result[0].State)
		assert.Equal(t, "Australia", result[0].Country)
		assert.Empty(t, result[0].ExactMatch)
	})

	t.Run("dropped when input matches no positional field", func(t *testing.T) {
		result := usecase.TransformPredictions("berlin", []domain.Prediction{
			prediction("Sydney", "NSW", "Australia"),
		})

		assert.Empty(t, result)
	})

	t.Run("name alone does not keep a suggestion", func(t *testing.T) {
		// фильтр смотрит только на позиционные поля city/state/country,
		// совпадение с name не учитывается
		result := usecase.TransformPredictions("opera", []domain.Prediction{
			prediction("Opera House", "Sydney", "NSW", "Australia"),
		})

		assert.Empty(t, result)
	})

	t.Run("short term sequences filter on shifted fields", func(t *testing.T) {
		// два терма: city="", state=terms[0], country=terms[1]
		result := usecase.TransformPredictions("australia", []domain.Prediction{
			prediction("Sydney", "Australia"),
		})

		require.Len(t, result, 1)
		assert.Equal(t, "", result[0].City)
		assert.Equal(t, "Sydney", result[0].State)
		assert.Equal(t, "Australia", result[0].Country)
	})
}

func TestTransformPredictions_ExactMatch(t *testing.T) {
	t.Run("state exact match", func(t *testing.T) {
		result := usecase.TransformPredictions("NSW", []domain.Prediction{
			prediction("Sydney", "NSW", "Australia"),
		})

		require.Len(t, result, 1)
		assert.Equal(t, domain.MatchState, result[0].ExactMatch)
	})

	t.Run("case-insensitive country exact match", func(t *testing.T) {
		result := usecase.TransformPredictions("australia", []domain.Prediction{
			prediction("Sydney", "NSW", "Australia"),
		})

		require.Len(t, result, 1)
		assert.Equal(t, domain.MatchCountry, result[0].ExactMatch)
	})

	t.Run("country wins over city when both match exactly", func(t *testing.T) {
		// city=terms[0]="Foo" и country=terms[2]="Foo": проверка идёт в
		// порядке country -> state -> city, поэтому помечается country
		result := usecase.TransformPredictions("foo", []domain.Prediction{
			prediction("Foo", "Bar", "Foo"),
		})

		require.Len(t, result, 1)
		assert.Equal(t, domain.MatchCountry, result[0].ExactMatch)
	})

	t.Run("substring match leaves exactMatch unset", func(t *testing.T) {
		result := usecase.TransformPredictions("aus", []domain.Prediction{
			prediction("Sydney", "NSW", "Australia"),
		})

		require.Len(t, result, 1)
		assert.Empty(t, result[0].ExactMatch)
	})
}

func TestTransformPredictions_Sort(t *testing.T) {
	t.Run("city then country then unset", func(t *testing.T) {
		// входной порядок: country-совпадение, без совпадения, city-совпадение
		result := usecase.TransformPredictions("aus", []domain.Prediction{
			// exact country, substring only, exact city
			prediction("Sydney", "NSW", "Aus"),
			prediction("Austin", "Texas", "USA"),
			prediction("Aus", "NSW", "Australia"),
		})

		require.Len(t, result, 3)
		assert.Equal(t, domain.MatchCity, result[0].ExactMatch)
		assert.Equal(t, "Aus", result[0].City)
		assert.Equal(t, domain.MatchCountry, result[1].ExactMatch)
		assert.Equal(t, "Sydney", result[1].Name)
		assert.Empty(t, result[2].ExactMatch)
		assert.Equal(t, "Austin", result[2].Name)
	})

	t.Run("stable for equal weights", func(t *testing.T) {
		result := usecase.TransformPredictions("aus", []domain.Prediction{
			prediction("Austin", "Texas", "USA"),
			prediction("Augsburg", "Bavaria", "Ausland"),
			prediction("Aussonne", "Occitanie", "France"),
		})

		require.Len(t, result, 3)
		assert.Equal(t, "Austin", result[0].Name)
		assert.Equal(t, "Augsburg", result[1].Name)
		assert.Equal(t, "Aussonne", result[2].Name)
	})
}

func TestTransformPredictions_Dedupe(t *testing.T) {
	t.Run("duplicate name and address pairs collapse to first occurrence", func(t *testing.T) {
		result := usecase.TransformPredictions("nsw", []domain.Prediction{
			prediction("Sydney", "NSW", "Australia"),
			prediction("Newcastle", "NSW", "Australia"),
			prediction("Sydney", "NSW", "Australia"),
		})

		require.Len(t, result, 2)
		assert.Equal(t, "Sydney", result[0].Name)
		assert.Equal(t, "Newcastle", result[1].Name)
	})
}

func TestTransformPredictions_Idempotence(t *testing.T) {
	predictions := []domain.Prediction{
		prediction("Sydney", "NSW", "Australia"),
		prediction("Aus", "NSW", "Australia"),
		prediction("Austin", "Texas", "USA"),
		prediction("Sydney", "NSW", "Australia"),
	}

	first := usecase.TransformPredictions("aus", predictions)
	second := usecase.TransformPredictions("aus", predictions)

	assert.Equal(t, first, second)
}

func TestAutocompleteUseCase_Autocomplete(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockPlaces := &MockPlacesRepository{}
		uc := usecase.NewAutocompleteUseCase(mockPlaces, logger)

		mockPlaces.On("Autocomplete", ctx, "sydney").Return([]domain.Prediction{
			prediction("Sydney", "NSW", "Australia"),
		}, nil)

		resp, err := uc.Autocomplete(ctx, dto.AutocompleteRequest{Input: "sydney"})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, domain.MatchCity, resp.Suggestions[0].ExactMatch)

		mockPlaces.AssertExpectations(t)
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		mockPlaces := &MockPlacesRepository{}
		uc := usecase.NewAutocompleteUseCase(mockPlaces, logger)

		mockPlaces.On("Autocomplete", ctx, "zzz").Return([]domain.Prediction{}, nil)

		resp, err := uc.Autocomplete(ctx, dto.AutocompleteRequest{Input: "zzz"})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 0, resp.Total)
		assert.Empty(t, resp.Suggestions)

		mockPlaces.AssertExpectations(t)
	})

	t.Run("upstream error propagates", func(t *testing.T) {
		mockPlaces := &MockPlacesRepository{}
		uc := usecase.NewAutocompleteUseCase(mockPlaces, logger)

		mockPlaces.On("Autocomplete", ctx, "sydney").
			Return(nil, errors.New("upstream unavailable"))

		resp, err := uc.Autocomplete(ctx, dto.AutocompleteRequest{Input: "sydney"})

		assert.Error(t, err)
		assert.Nil(t, resp)

		mockPlaces.AssertExpectations(t)
	})
}
