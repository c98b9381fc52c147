package entity

import "time"

// Preference is a user's stored taste profile. Every field is optional;
// an empty string counts as unset when preferences are resolved.
type Preference struct {
	UserID    string    `json:"user_id"`
	BookName  string    `json:"book_name,omitempty"`
	MovieName string    `json:"movie_name,omitempty"`
	PlaceName string    `json:"place_name,omitempty"`
	Age       string    `json:"age,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
