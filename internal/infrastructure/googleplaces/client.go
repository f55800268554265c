package googleplaces

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/places-proxy/internal/config"
	"github.com/places-proxy/internal/domain"
	"github.com/places-proxy/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	language     string
	types        string
	detailFields string
	logger       *zap.Logger
}

// NewPlacesClient создает новый клиент для upstream Places API.
// API-ключ никогда не покидает сервис: он подставляется здесь,
// на стороне прокси.
func NewPlacesClient(cfg *config.PlacesConfig, logger *zap.Logger) repository.PlacesRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:      cfg.BaseURL,
		apiKey:       cfg.APIKey,
		language:     cfg.Language,
		types:        cfg.Types,
		detailFields: cfg.DetailFields,
		logger:       logger,
	}
}

// Autocomplete возвращает предсказания автодополнения, ограниченные
// географическими результатами (types=geocode) на языке из конфигурации
func (c *client) Autocomplete(ctx context.Context, input string) ([]domain.Prediction, error) {
	params := url.Values{}
	params.Set("input", input)
	params.Set("types", c.types)
	params.Set("language", c.language)

	var result domain.AutocompleteResult
	if err := c.get(ctx, "/autocomplete/json", params, &result); err != nil {
		return nil, err
	}

	// ZERO_RESULTS - штатный ответ, а не ошибка
	if result.Status == domain.StatusZeroResults {
		return []domain.Prediction{}, nil
	}
	if result.Status != domain.StatusOK {
		c.logger.Error("Places autocomplete returned non-OK status",
			zap.String("status", string(result.Status)))
		return nil, fmt.Errorf("places API returned status: %s", result.Status)
	}

	c.logger.Debug("Places autocomplete call successful",
		zap.Int("predictions_count", len(result.Predictions)))

	return result.Predictions, nil
}

// FindPlaceFromText находит кандидатов места по текстовому запросу
func (c *client) FindPlaceFromText(ctx context.Context, query string) ([]domain.PlaceCandidate, error) {
	params := url.Values{}
	params.Set("input", query)
	params.Set("inputtype", "textquery")
	params.Set("fields", "place_id,name,formatted_address")
	params.Set("language", c.language)

	var result domain.FindPlaceResult
	if err := c.get(ctx, "/findplacefromtext/json", params, &result); err != nil {
		return nil, err
	}

	if result.Status == domain.StatusZeroResults {
		return []domain.PlaceCandidate{}, nil
	}
	if result.Status != domain.StatusOK {
		c.logger.Error("Places find-from-text returned non-OK status",
			zap.String("status", string(result.Status)))
		return nil, fmt.Errorf("places API returned status: %s", result.Status)
	}

	return result.Candidates, nil
}

// PlaceDetails возвращает полную карточку места без изменений payload
func (c *client) PlaceDetails(ctx context.Context, placeID string) (domain.PlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("language", c.language)
	if c.detailFields != "" {
		params.Set("fields", c.detailFields)
	}

	var result domain.PlaceDetailsResult
	if err := c.get(ctx, "/details/json", params, &result); err != nil {
		return nil, err
	}

	if result.Status != domain.StatusOK {
		c.logger.Error("Places details returned non-OK status",
			zap.String("status", string(result.Status)),
			zap.String("place_id", placeID))
		return nil, fmt.Errorf("places API returned status: %s", result.Status)
	}

	return result.Result, nil
}

// get выполняет GET-запрос к upstream, подставляя API-ключ,
// и декодирует JSON-ответ в out
func (c *client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("key", c.apiKey)
	requestURL := c.baseURL + path + "?" + params.Encode()

	c.logger.Debug("Calling Places API", zap.String("path", path))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Places API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("places API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
