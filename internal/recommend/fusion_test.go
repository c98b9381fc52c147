package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePreferences_Precedence(t *testing.T) {
	explicit := PreferenceSet{BookName: "Neuromancer", Age: ""}
	stored := PreferenceSet{BookName: "Dune", MovieName: "Arrival", Age: "30_to_34"}
	fallback := DefaultPreferences

	resolved := ResolvePreferences(explicit, stored, fallback)

	assert.Equal(t, "Neuromancer", resolved.BookName, "explicit wins")
	assert.Equal(t, "Arrival", resolved.MovieName, "stored fills explicit gaps")
	assert.Equal(t, "30_to_34", resolved.Age, "empty string in explicit counts as unset")
	assert.Equal(t, "Paris", resolved.PlaceName, "fallback fills the rest")
	assert.Equal(t, "female", resolved.Gender)
}

func TestResolvePreferences_AllLayersEmptyField(t *testing.T) {
	resolved := ResolvePreferences(PreferenceSet{}, PreferenceSet{}, PreferenceSet{})
	assert.Equal(t, PreferenceSet{}, resolved)
}

func TestResolvePreferences_FallbackAlone(t *testing.T) {
	resolved := ResolvePreferences(PreferenceSet{}, PreferenceSet{}, DefaultPreferences)
	assert.Equal(t, DefaultPreferences, resolved)
}
