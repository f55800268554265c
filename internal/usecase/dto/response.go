package dto

import "github.com/places-proxy/internal/domain"

// AutocompleteResponse - ответ на запрос автодополнения
type AutocompleteResponse struct {
	Suggestions []domain.PlaceSuggestion `json:"suggestions"`
	Total       int                      `json:"total"`
}

// PlaceDetailsResponse - карточка места, полученная от upstream.
// Payload отдаётся без изменений.
type PlaceDetailsResponse struct {
	Place domain.PlaceDetails `json:"place"`
}
