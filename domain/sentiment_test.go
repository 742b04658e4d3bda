package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolarityOf(t *testing.T) {
	tests := []struct {
		description string
		score       float64
		expected    Polarity
	}{
		{"Should be positive above zero", 0.4, Positive},
		{"Should be negative below zero", -0.1, Negative},
		{"Should be neutral at zero", 0, Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			require.Equal(t, tt.expected, PolarityOf(tt.score))
		})
	}
}

func TestHistory_Append_Keeps_Insertion_Order(t *testing.T) {
	req := require.New(t)
	history := History{}

	history.Append(HistoryEntry{Input: "first"})
	history.Append(HistoryEntry{Input: "second"})

	entries := history.Entries()
	req.Len(entries, 2)
	req.Equal("first", entries[0].Input)
	req.Equal("second", entries[1].Input)

	// The copy handed out does not alias the list
	entries[0].Input = "changed"
	req.Equal("first", history.Entries()[0].Input)

	history.Clear()
	req.Zero(history.Len())
}
