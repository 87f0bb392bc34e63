package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByMood_CaseInsensitive(t *testing.T) {
	c := Default()

	lower := c.ByMood("happy")
	upper := c.ByMood("HAPPY")

	require.NotEmpty(t, lower)
	assert.Equal(t, lower, upper)
	for _, e := range lower {
		assert.True(t, e.HasMood("happy"), "entry %q should have mood happy", e.Title)
	}
}

func TestByMood_UnknownMood(t *testing.T) {
	c := Default()
	assert.Empty(t, c.ByMood("melancholic"))
	assert.Empty(t, c.ByMood(""))
}

func TestByTitle_CaseInsensitive(t *testing.T) {
	c := Default()

	e, ok := c.ByTitle("titanic")
	require.True(t, ok)
	assert.Equal(t, "Titanic", e.Title)
	assert.Equal(t, []string{"sad"}, e.Moods)

	_, ok = c.ByTitle("Unknown Movie")
	assert.False(t, ok)
}

func TestEntry_SharesMood(t *testing.T) {
	e := Entry{Title: "Up", Moods: []string{"happy"}}

	assert.True(t, e.SharesMood([]string{"sad", "happy"}))
	assert.False(t, e.SharesMood([]string{"sad"}))
	assert.False(t, e.SharesMood(nil))
}
