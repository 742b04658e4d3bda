package detection

import (
	"fmt"
	"strings"
	"voice-relay/domain"

	"github.com/abadojack/whatlanggo"
)

// Detector guesses the language of a text with trigram statistics.
// The result is informational: it never decides where a text gets translated to.
type Detector struct {
	minConfidence float64
}

func NewDetector(minConfidence float64) Detector {
	return Detector{minConfidence: minConfidence}
}

func (d Detector) Detect(text string) (domain.Detection, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Detection{}, fmt.Errorf("nothing to detect")
	}
	info := whatlanggo.Detect(text)
	code := info.Lang.Iso6391()
	if code == "" {
		return domain.Detection{}, fmt.Errorf("no language matched %q", text)
	}
	if info.Confidence < d.minConfidence {
		return domain.Detection{}, fmt.Errorf("confidence %.2f for %s is below %.2f", info.Confidence, code, d.minConfidence)
	}
	return domain.Detection{
		Language:   domain.LanguageCode(code),
		Confidence: info.Confidence,
		Reliable:   info.IsReliable(),
	}, nil
}
