package sentiment

import (
	"fmt"
	"unicode"
	"voice-relay/domain"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// Analyzer scores a text from the lexicon words it contains.
// The score is (positive - negative) / (positive + negative), zero when nothing matches.
type Analyzer struct {
	matcher  *goahocorasick.Machine
	polarity map[string]int
}

// NewAnalyzer builds one automaton over both lexicons.
// A word listed on both sides is ignored.
func NewAnalyzer(positive, negative []string) (Analyzer, error) {
	polarity := make(map[string]int)
	for _, word := range positive {
		polarity[bounded(word)]++
	}
	for _, word := range negative {
		polarity[bounded(word)]--
	}
	delete(polarity, " ")
	polarity = lo.PickBy(polarity, func(_ string, weight int) bool { return weight != 0 })
	if len(polarity) == 0 {
		return Analyzer{}, fmt.Errorf("sentiment lexicon is empty")
	}

	patterns := lo.Map(lo.Keys(polarity), func(word string, _ int) []rune { return []rune(word) })
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Analyzer{}, err
	}
	return Analyzer{matcher: m, polarity: polarity}, nil
}

func NewDefaultAnalyzer() (Analyzer, error) {
	return NewAnalyzer(DefaultPositive, DefaultNegative)
}

func (a Analyzer) Analyze(text string) domain.Sentiment {
	normalized := []rune(bounded(text))
	if len(normalized) <= 2 {
		return domain.NewSentiment(0)
	}

	var positive, negative int
	for _, term := range a.matcher.MultiPatternSearch(normalized, false) {
		if a.polarity[string(term.Word)] > 0 {
			positive++
		} else {
			negative++
		}
	}
	if positive+negative == 0 {
		return domain.NewSentiment(0)
	}
	return domain.NewSentiment(float64(positive-negative) / float64(positive+negative))
}

// bounded lowercases the input, turns punctuation and symbols into single spaces
// and pads both ends, so that patterns only match whole words.
func bounded(input string) string {
	out := make([]rune, 0, len(input)+2)
	out = append(out, ' ')
	for _, r := range input {
		if isNoise(r) {
			if out[len(out)-1] != ' ' {
				out = append(out, ' ')
			}
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	if out[len(out)-1] != ' ' {
		out = append(out, ' ')
	}
	return string(out)
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
