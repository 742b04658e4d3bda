package errors

import "fmt"

var (
	ErrUnknownLanguage   = fmt.Errorf("unknown language")
	ErrRecognitionFailed = fmt.Errorf("speech recognition failed")
	ErrTranslationFailed = fmt.Errorf("translation failed")
	ErrSynthesisFailed   = fmt.Errorf("speech synthesis failed")

	ErrEmptyInput           = fmt.Errorf("no input text provided")
	ErrSessionNotFound      = fmt.Errorf("conversation session not found")
	ErrNothingToExport      = fmt.Errorf("nothing to export")
	ErrUnsupportedAudio     = fmt.Errorf("unsupported audio format")
	ErrProviderNotSupported = fmt.Errorf("provider not supported")
	ErrUploadFailed         = fmt.Errorf("audio upload failed")
	ErrWorkerPanic          = fmt.Errorf("worker panicked")
)
