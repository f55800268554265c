package domain

import "encoding/json"

// PlacesStatus - статус ответа upstream Places API
type PlacesStatus string

const (
	StatusOK            PlacesStatus = "OK"
	StatusZeroResults   PlacesStatus = "ZERO_RESULTS"
	StatusInvalidInput  PlacesStatus = "INVALID_REQUEST"
	StatusRequestDenied PlacesStatus = "REQUEST_DENIED"
	StatusOverLimit     PlacesStatus = "OVER_QUERY_LIMIT"
	StatusUnknownError  PlacesStatus = "UNKNOWN_ERROR"
)

// PredictionTerm - один сегмент описания места, разделённого запятыми
type PredictionTerm struct {
	Offset int    `json:"offset"`
	Value  string `json:"value"`
}

// Prediction - сырое предсказание автодополнения от upstream сервиса
type Prediction struct {
	Description string           `json:"description"`
	PlaceID     string           `json:"place_id"`
	Terms       []PredictionTerm `json:"terms"`
}

// TermValues возвращает значения термов в исходном порядке
func (p Prediction) TermValues() []string {
	values := make([]string, len(p.Terms))
	for i, t := range p.Terms {
		values[i] = t.Value
	}
	return values
}

// AutocompleteResult - ответ upstream на запрос автодополнения
type AutocompleteResult struct {
	Status      PlacesStatus `json:"status"`
	Predictions []Prediction `json:"predictions"`
}

// PlaceCandidate - кандидат, найденный поиском места по тексту
type PlaceCandidate struct {
	PlaceID          string `json:"place_id"`
	Name             string `json:"name,omitempty"`
	FormattedAddress string `json:"formatted_address,omitempty"`
}

// FindPlaceResult - ответ upstream на поиск места по тексту
type FindPlaceResult struct {
	Status     PlacesStatus     `json:"status"`
	Candidates []PlaceCandidate `json:"candidates"`
}

// PlaceDetails - полная карточка места от upstream.
// Payload отдаётся клиенту без изменений, поэтому хранится сырым JSON.
type PlaceDetails = json.RawMessage

// PlaceDetailsResult - ответ upstream на запрос деталей места
type PlaceDetailsResult struct {
	Status PlacesStatus `json:"status"`
	Result PlaceDetails `json:"result"`
}
