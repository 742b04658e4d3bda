package domain

// AudioClip is captured speech handed to a recognizer.
type AudioClip struct {
	Data     []byte
	MimeType string
	// SampleRate is only known for raw PCM input, zero otherwise.
	SampleRate int
}

// AudioArtifact is synthesized speech ready to be played or downloaded.
type AudioArtifact struct {
	Data     []byte
	MimeType string
	Language LanguageCode
	// URL is set once the artifact has been uploaded to an object store.
	URL string
}

// Detection is the informational result of language auto-detection.
type Detection struct {
	Language   LanguageCode
	Confidence float64
	Reliable   bool
}
