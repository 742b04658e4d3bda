package speech

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"voice-relay/domain"
	"voice-relay/infrastructure/audio"
)

// ScriptedRecognizer replays a fixed script, one line per capture.
// Once the script is exhausted, text/plain clips are read back as their own transcript,
// anything else is heard as silence.
type ScriptedRecognizer struct {
	mu    sync.Mutex
	lines []string
}

func NewScriptedRecognizer(lines ...string) *ScriptedRecognizer {
	return &ScriptedRecognizer{lines: lines}
}

func (r *ScriptedRecognizer) Recognize(ctx context.Context, clip domain.AudioClip) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.lines) > 0 {
		line := r.lines[0]
		r.lines = r.lines[1:]
		return line, nil
	}
	if strings.HasPrefix(clip.MimeType, "text/plain") {
		return string(clip.Data), nil
	}
	return "", nil
}

// DefaultPhrases lets the stub translator answer the phrases used in demos offline.
var DefaultPhrases = map[domain.LanguageCode]map[string]string{
	"fr": {"hello": "bonjour", "thank you": "merci", "good morning": "bonjour", "how are you?": "comment allez-vous ?"},
	"de": {"hello": "hallo", "thank you": "danke", "good morning": "guten Morgen", "how are you?": "wie geht es dir?"},
	"es": {"hello": "hola", "thank you": "gracias", "good morning": "buenos días", "how are you?": "¿cómo estás?"},
	"hi": {"hello": "नमस्ते", "thank you": "धन्यवाद", "bonjour": "नमस्ते"},
	"ta": {"hello": "வணக்கம்", "thank you": "நன்றி"},
	"ja": {"hello": "こんにちは", "thank you": "ありがとう", "good morning": "おはようございます"},
	"en": {"bonjour": "hello", "merci": "thank you", "hola": "hello", "नमस्ते": "hello"},
}

// DictionaryTranslator looks phrases up case-insensitively.
// Unknown phrases come back prefixed with the target code, e.g. "[de] Unknown text.".
type DictionaryTranslator struct {
	phrases map[domain.LanguageCode]map[string]string
}

func NewDictionaryTranslator(phrases map[domain.LanguageCode]map[string]string) DictionaryTranslator {
	if phrases == nil {
		phrases = DefaultPhrases
	}
	return DictionaryTranslator{phrases: phrases}
}

func (t DictionaryTranslator) Translate(ctx context.Context, text string, target domain.LanguageCode) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if translated, ok := t.phrases[target][strings.ToLower(strings.TrimSpace(text))]; ok {
		return translated, nil
	}
	return fmt.Sprintf("[%s] %s", target, text), nil
}

// SilentSynthesizer renders every text as a short silent WAV clip.
type SilentSynthesizer struct{}

func NewSilentSynthesizer() SilentSynthesizer {
	return SilentSynthesizer{}
}

func (SilentSynthesizer) Synthesize(ctx context.Context, text string, language domain.LanguageCode) (domain.AudioArtifact, error) {
	if err := ctx.Err(); err != nil {
		return domain.AudioArtifact{}, err
	}
	if strings.TrimSpace(text) == "" {
		return domain.AudioArtifact{}, fmt.Errorf("nothing to say")
	}
	// 100ms of 8kHz 16-bit mono silence
	return domain.AudioArtifact{
		Data:     audio.EncodeWAV(make([]int16, 800), 8000),
		MimeType: "audio/wav",
		Language: language,
	}, nil
}
