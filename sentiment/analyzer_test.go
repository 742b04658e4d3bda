package sentiment

import (
	"testing"
	"voice-relay/domain"

	"github.com/stretchr/testify/require"
)

func TestAnalyzer_Analyze(t *testing.T) {
	analyzer, err := NewDefaultAnalyzer()
	require.NoError(t, err)

	tests := []struct {
		description string
		input       string
		polarity    domain.Polarity
		score       float64
	}{
		{"Should be positive", "This is a GREAT day, thank you!", domain.Positive, 1},
		{"Should be negative", "The train is late, what a terrible problem.", domain.Negative, -1},
		{"Should balance both sides", "Good food but bad service", domain.Neutral, 0},
		{"Should be neutral without lexicon words", "The station is on the left", domain.Neutral, 0},
		{"Should match whole words only", "Goodbye, badger", domain.Neutral, 0},
		{"Should count repeated words", "merci merci, c'est nul", domain.Positive, 1.0 / 3.0},
		{"Should handle accents", "Ich bin so glücklich", domain.Positive, 1},
		{"Should handle empty input", "", domain.Neutral, 0},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)

			got := analyzer.Analyze(tt.input)

			req.Equal(tt.polarity, got.Polarity)
			req.InDelta(tt.score, got.Score, 1e-9)
		})
	}
}

func TestNewAnalyzer_EmptyLexicon(t *testing.T) {
	req := require.New(t)

	_, err := NewAnalyzer(nil, []string{"  "})

	req.Error(err)
}

func TestNewAnalyzer_ConflictingWordIgnored(t *testing.T) {
	req := require.New(t)
	analyzer, err := NewAnalyzer([]string{"fine", "happy"}, []string{"fine"})
	req.NoError(err)

	req.Equal(domain.Neutral, analyzer.Analyze("I am fine").Polarity)
	req.Equal(domain.Positive, analyzer.Analyze("I am happy").Polarity)
}
