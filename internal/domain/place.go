package domain

import "strings"

// MatchField - поле подсказки, точно совпавшее с запросом пользователя
type MatchField string

const (
	MatchCity    MatchField = "city"
	MatchState   MatchField = "state"
	MatchCountry MatchField = "country"
)

// PlaceSuggestion - структурированная подсказка автодополнения.
// Поля city/state/country выводятся позиционно из термов предсказания
// и не валидируются семантически: для коротких последовательностей
// термов они могут пересекаться или быть неточными.
type PlaceSuggestion struct {
	Name       string     `json:"name"`
	Address    string     `json:"address"`
	City       string     `json:"city"`
	State      string     `json:"state"`
	Country    string     `json:"country"`
	ExactMatch MatchField `json:"exactMatch,omitempty"`
}

// SuggestionFromTerms строит PlaceSuggestion из термов предсказания
// по позиционным правилам:
//   - name    = первый терм
//   - address = все термы кроме первого, через ", "
//   - city    = третий с конца ("" если термов меньше 3)
//   - state   = второй с конца ("" если термов меньше 2)
//   - country = последний терм ("" если термов нет)
//
// Любая длина последовательности (0, 1, 2, 3+) даёт определённый результат.
func SuggestionFromTerms(terms []string) PlaceSuggestion {
	var s PlaceSuggestion

	n := len(terms)
	if n == 0 {
		return s
	}

	s.Name = terms[0]
	s.Address = strings.Join(terms[1:], ", ")
	s.Country = terms[n-1]
	if n >= 2 {
		s.State = terms[n-2]
	}
	if n >= 3 {
		s.City = terms[n-3]
	}

	return s
}

// MatchWeight - вес подсказки для сортировки по точному совпадению.
// Порядок сортировки (city > state > country) сознательно отличается от
// порядка проверки точного совпадения (country -> state -> city) -
// это унаследованное поведение, сохраняем как есть.
func (s PlaceSuggestion) MatchWeight() int {
	switch s.ExactMatch {
	case MatchCity:
		return 3
	case MatchState:
		return 2
	case MatchCountry:
		return 1
	default:
		return 0
	}
}
