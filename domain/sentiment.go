package domain

type Polarity string

const (
	Positive Polarity = "Positive"
	Negative Polarity = "Negative"
	Neutral  Polarity = "Neutral"
)

// Sentiment is a display-only classification of an input text.
// Score ranges from -1 (negative) to 1 (positive).
type Sentiment struct {
	Score    float64
	Polarity Polarity
}

// PolarityOf classifies a score: strictly positive, strictly negative, otherwise neutral.
func PolarityOf(score float64) Polarity {
	switch {
	case score > 0:
		return Positive
	case score < 0:
		return Negative
	default:
		return Neutral
	}
}

func NewSentiment(score float64) Sentiment {
	return Sentiment{Score: score, Polarity: PolarityOf(score)}
}
