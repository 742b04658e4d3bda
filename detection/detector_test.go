package detection

import (
	"testing"
	"voice-relay/domain"

	"github.com/stretchr/testify/require"
)

func TestDetector_Detect(t *testing.T) {
	detector := NewDetector(0)

	tests := []struct {
		description string
		text        string
		want        domain.LanguageCode
	}{
		{"Should detect French", "Bonjour, je voudrais réserver une table pour deux personnes ce soir.", "fr"},
		{"Should detect German", "Guten Morgen, ich hätte gern einen Kaffee und ein Stück Kuchen, bitte.", "de"},
		{"Should detect Spanish", "Buenos días, ¿dónde está la estación de tren más cercana, por favor?", "es"},
		{"Should detect Japanese", "こんにちは、駅はどこですか？今日はとても暑いですね。", "ja"},
		{"Should detect Hindi", "नमस्ते, आप कैसे हैं? मुझे रेलवे स्टेशन जाना है।", "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)

			detection, err := detector.Detect(tt.text)

			req.NoError(err)
			req.Equal(tt.want, detection.Language)
			req.Greater(detection.Confidence, 0.0)
		})
	}
}

func TestDetector_Detect_Blank(t *testing.T) {
	req := require.New(t)

	_, err := NewDetector(0).Detect("   ")

	req.Error(err)
}

func TestDetector_Detect_BelowThreshold(t *testing.T) {
	req := require.New(t)

	// A threshold above 1 can never be met
	_, err := NewDetector(1.1).Detect("Bonjour tout le monde")

	req.Error(err)
}
