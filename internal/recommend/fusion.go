package recommend

import "errors"

// ErrNoSignals is the one caller-visible failure of recommendation
// building: no preference resolved to an entity id and the user has no
// favorites, so there is nothing to query with.
var ErrNoSignals = errors.New("no resolvable entity identifiers")

// PreferenceSet carries the taste inputs of a recommendation request.
// An empty string means unset.
type PreferenceSet struct {
	BookName  string `json:"book_name,omitempty"`
	MovieName string `json:"movie_name,omitempty"`
	PlaceName string `json:"place_name,omitempty"`
	Age       string `json:"age,omitempty"`
	Gender    string `json:"gender,omitempty"`
}

// DefaultPreferences is the hard-coded last-resort signal set used when
// neither the request nor the user's stored preferences provide a value.
var DefaultPreferences = PreferenceSet{
	BookName:  "Lolita",
	MovieName: "The Wolf of Wall Street",
	PlaceName: "Paris",
	Age:       "24_and_younger",
	Gender:    "female",
}

// ResolvePreferences merges three preference layers per field with
// precedence explicit > stored > fallback. An empty string counts as
// unset and falls through to the next layer.
func ResolvePreferences(explicit, stored, fallback PreferenceSet) PreferenceSet {
	return PreferenceSet{
		BookName:  firstNonEmpty(explicit.BookName, stored.BookName, fallback.BookName),
		MovieName: firstNonEmpty(explicit.MovieName, stored.MovieName, fallback.MovieName),
		PlaceName: firstNonEmpty(explicit.PlaceName, stored.PlaceName, fallback.PlaceName),
		Age:       firstNonEmpty(explicit.Age, stored.Age, fallback.Age),
		Gender:    firstNonEmpty(explicit.Gender, stored.Gender, fallback.Gender),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
