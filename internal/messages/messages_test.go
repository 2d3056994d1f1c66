package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name     string
		language string
		key      string
		expected string
	}{
		{
			name:     "english key",
			language: "en",
			key:      "training.correct",
			expected: `Correct\!`,
		},
		{
			name:     "russian key",
			language: "ru",
			key:      "training.correct",
			expected: `Верно\!`,
		},
		{
			name:     "unknown language falls back to english",
			language: "de",
			key:      "training.correct",
			expected: `Correct\!`,
		},
		{
			name:     "unknown key falls back to the key itself",
			language: "en",
			key:      "no.such.key",
			expected: "no.such.key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Get(tt.language, tt.key))
		})
	}
}

func TestCatalogsCoverSameKeys(t *testing.T) {
	base := catalogs[DefaultLanguage]

	for _, language := range SupportedLanguages {
		catalog, ok := catalogs[language]
		assert.True(t, ok, "missing catalog for %s", language)
		assert.Len(t, catalog, len(base), "catalog %s has a different key count", language)

		for key := range base {
			_, ok := catalog[key]
			assert.True(t, ok, "catalog %s is missing key %s", language, key)
		}
	}
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("en"))
	assert.True(t, IsSupported("ru"))
	assert.True(t, IsSupported("uk"))
	assert.False(t, IsSupported("EN"))
	assert.False(t, IsSupported("fr"))
	assert.False(t, IsSupported(""))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "uk", Resolve("uk"))
	assert.Equal(t, DefaultLanguage, Resolve(""))
	assert.Equal(t, DefaultLanguage, Resolve("xx"))
}
