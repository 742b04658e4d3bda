package delivery

import (
	"fmt"
	"io"
	"net/http"
	"voice-relay/domain"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
)

// maxJSONBytes bounds request bodies before validation runs.
const maxJSONBytes = 64 << 10

var validate = validator.New()

type LanguagesRequest struct {
	LanguageA string `json:"languageA" validate:"required,max=64"`
	LanguageB string `json:"languageB" validate:"required,max=64"`
}

type TranslateRequest struct {
	Text     string `json:"text" validate:"required,max=5000"`
	Language string `json:"language" validate:"required,max=64"`
}

// decode reads a bounded JSON body and validates it against its struct tags.
func decode(w http.ResponseWriter, r *http.Request, target any) error {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBytes))
	if err != nil {
		return fmt.Errorf("%w: %v", errInvalidRequest, err)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: %v", errInvalidRequest, err)
	}
	if err := validate.Struct(target); err != nil {
		return fmt.Errorf("%w: %v", errInvalidRequest, err)
	}
	return nil
}

// resolvePair resolves both language names, the first unknown one is reported.
func resolvePair(registry domain.LanguageRegistry, req LanguagesRequest) (domain.LanguageCode, domain.LanguageCode, error) {
	langA, err := registry.Resolve(req.LanguageA)
	if err != nil {
		return "", "", err
	}
	langB, err := registry.Resolve(req.LanguageB)
	if err != nil {
		return "", "", err
	}
	return langA, langB, nil
}
