package audio

import (
	"encoding/binary"
	"fmt"
	"strings"
	"voice-relay/domain"
	"voice-relay/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
	"github.com/zaf/g711"
)

const (
	// MimePCMU is raw, headerless G.711 µ-law as sent by telephony gateways.
	MimePCMU = "audio/pcmu"

	defaultULawRate = 8000
	auMagic         = ".snd"
	auEncodingULaw  = 1
)

// AcceptedTypes are the containers the speech providers take as-is.
var AcceptedTypes = []string{
	"audio/wav",
	"audio/mpeg",
	"audio/ogg",
	"audio/flac",
	"audio/webm",
	"video/webm",
	"audio/mp4",
	"audio/x-m4a",
}

// Normalizer turns whatever the client uploaded into a clip a recognizer accepts.
// µ-law input, raw or in a Sun .au container, is decoded and re-wrapped as WAV.
type Normalizer struct {
	allowText bool
}

// NewNormalizer builds a normalizer. allowText lets text/plain bodies through for offline recognizers.
func NewNormalizer(allowText bool) Normalizer {
	return Normalizer{allowText: allowText}
}

func (n Normalizer) Normalize(data []byte, declared string) (domain.AudioClip, error) {
	if len(data) == 0 {
		return domain.AudioClip{}, fmt.Errorf("%w: empty body", errors.ErrUnsupportedAudio)
	}
	declared = strings.ToLower(strings.TrimSpace(strings.Split(declared, ";")[0]))

	if declared == MimePCMU {
		return decodeULaw(data, defaultULawRate, 1)
	}

	detected := mimetype.Detect(data)
	switch {
	case detected.Is("audio/basic"):
		return decodeAU(data)
	case lo.ContainsBy(AcceptedTypes, detected.Is):
		return domain.AudioClip{Data: data, MimeType: detected.String()}, nil
	case n.allowText && detected.Is("text/plain"):
		return domain.AudioClip{Data: data, MimeType: "text/plain"}, nil
	}
	return domain.AudioClip{}, fmt.Errorf("%w: detected %s, declared %q", errors.ErrUnsupportedAudio, detected.String(), declared)
}

// decodeAU reads the Sun audio header: magic, data offset, data size, encoding, rate, channels.
// Only µ-law payloads are supported.
func decodeAU(data []byte) (domain.AudioClip, error) {
	if len(data) < 24 || string(data[:4]) != auMagic {
		return domain.AudioClip{}, fmt.Errorf("%w: truncated au header", errors.ErrUnsupportedAudio)
	}
	offset := binary.BigEndian.Uint32(data[4:8])
	size := binary.BigEndian.Uint32(data[8:12])
	encoding := binary.BigEndian.Uint32(data[12:16])
	rate := binary.BigEndian.Uint32(data[16:20])
	channels := binary.BigEndian.Uint32(data[20:24])

	if encoding != auEncodingULaw {
		return domain.AudioClip{}, fmt.Errorf("%w: au encoding %d", errors.ErrUnsupportedAudio, encoding)
	}
	if int(offset) > len(data) {
		return domain.AudioClip{}, fmt.Errorf("%w: au data offset %d out of range", errors.ErrUnsupportedAudio, offset)
	}
	payload := data[offset:]
	// 0xffffffff means unknown size
	if size != 0xffffffff && int(size) < len(payload) {
		payload = payload[:size]
	}
	return decodeULaw(payload, int(rate), int(channels))
}

func decodeULaw(payload []byte, rate, channels int) (domain.AudioClip, error) {
	if len(payload) == 0 {
		return domain.AudioClip{}, fmt.Errorf("%w: no µ-law samples", errors.ErrUnsupportedAudio)
	}
	if channels > 0 {
		payload = payload[:len(payload)-len(payload)%channels]
	}
	wav, err := PCMToWAV(g711.DecodeUlaw(payload), channels, rate)
	if err != nil {
		return domain.AudioClip{}, fmt.Errorf("%w: %v", errors.ErrUnsupportedAudio, err)
	}
	return domain.AudioClip{Data: wav, MimeType: "audio/wav", SampleRate: rate}, nil
}
