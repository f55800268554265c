package dto

// AutocompleteRequest - запрос на автодополнение мест
type AutocompleteRequest struct {
	Input string `json:"input" validate:"required,min=1"`
}

// SearchPlaceRequest - запрос на поиск места по тексту
type SearchPlaceRequest struct {
	Query string `json:"query" validate:"required,min=1"`
}

// PlaceDetailsRequest - запрос деталей места по идентификатору
type PlaceDetailsRequest struct {
	PlaceID string `json:"place_id" validate:"required,min=1"`
}
