package domain

import (
	"fmt"
	"sort"
	"strings"
	"voice-relay/errors"
)

// LanguageCode is an ISO 639-1 code consumed by the translation and synthesis ports.
type LanguageCode string

const UndeterminedLanguage LanguageCode = "und"

func (c LanguageCode) String() string {
	return string(c)
}

// DefaultLanguages is the table the tool ships with.
var DefaultLanguages = map[string]LanguageCode{
	"English":  "en",
	"Hindi":    "hi",
	"Tamil":    "ta",
	"French":   "fr",
	"German":   "de",
	"Spanish":  "es",
	"Japanese": "ja",
}

// LanguageRegistry maps human-readable language names to language codes.
// The table is fixed once built and is safe for concurrent reads.
type LanguageRegistry struct {
	byName map[string]LanguageCode
	byCode map[LanguageCode]string
}

func NewLanguageRegistry(languages map[string]LanguageCode) LanguageRegistry {
	registry := LanguageRegistry{
		byName: make(map[string]LanguageCode, len(languages)),
		byCode: make(map[LanguageCode]string, len(languages)),
	}
	for name, code := range languages {
		registry.byName[strings.ToLower(name)] = code
		registry.byCode[code] = name
	}
	return registry
}

// Resolve returns the code of a language label, ignoring case and surrounding spaces.
func (r LanguageRegistry) Resolve(name string) (LanguageCode, error) {
	code, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownLanguage, name)
	}
	return code, nil
}

// Supports reports whether the code belongs to the table.
func (r LanguageRegistry) Supports(code LanguageCode) bool {
	_, ok := r.byCode[code]
	return ok
}

// NameOf returns the label of a code, or the code itself when it is not in the table.
func (r LanguageRegistry) NameOf(code LanguageCode) string {
	if name, ok := r.byCode[code]; ok {
		return name
	}
	return code.String()
}

// Names returns every label sorted alphabetically.
func (r LanguageRegistry) Names() []string {
	names := make([]string, 0, len(r.byCode))
	for _, name := range r.byCode {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
