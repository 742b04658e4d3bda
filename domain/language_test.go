package domain

import (
	"testing"
	"voice-relay/errors"

	"github.com/stretchr/testify/require"
)

func TestLanguageRegistry_Resolve_Known_Language(t *testing.T) {
	req := require.New(t)
	registry := NewLanguageRegistry(DefaultLanguages)

	for i := 0; i < 3; i++ {
		code, err := registry.Resolve("Hindi")
		req.NoError(err)
		req.Equal(LanguageCode("hi"), code)
	}
}

func TestLanguageRegistry_Resolve_Unknown_Language(t *testing.T) {
	req := require.New(t)
	registry := NewLanguageRegistry(DefaultLanguages)

	for i := 0; i < 3; i++ {
		code, err := registry.Resolve("Klingon")
		req.ErrorIs(err, errors.ErrUnknownLanguage)
		req.Empty(code)
	}
}

func TestLanguageRegistry_Resolve_Ignores_Case_And_Spaces(t *testing.T) {
	req := require.New(t)
	registry := NewLanguageRegistry(DefaultLanguages)

	code, err := registry.Resolve("  french ")
	req.NoError(err)
	req.Equal(LanguageCode("fr"), code)
}

func TestLanguageRegistry_Lookups(t *testing.T) {
	req := require.New(t)
	registry := NewLanguageRegistry(map[string]LanguageCode{"Tamil": "ta", "German": "de"})

	req.Equal([]string{"German", "Tamil"}, registry.Names())
	req.True(registry.Supports("ta"))
	req.False(registry.Supports("fr"))
	req.Equal("German", registry.NameOf("de"))
	req.Equal("xx", registry.NameOf("xx"))
}
