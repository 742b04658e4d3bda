package delivery

import (
	"context"
	stderrors "errors"
	"voice-relay/errors"
	"voice-relay/services"
)

// relay normalizes one capture and runs a relay step on the session.
// Shared by the HTTP endpoint and the websocket loop.
func (s *Server) relay(ctx context.Context, session *services.ConversationService, data []byte, contentType string) (RelayResponse, error) {
	clip, err := s.normalizer.Normalize(data, contentType)
	if err != nil {
		return RelayResponse{}, err
	}
	result, err := session.RelayStep(ctx, clip)
	if err != nil {
		s.countFailure(err)
		return RelayResponse{}, err
	}
	s.monitor.IncrRelaySteps()
	if result.AudioErr != nil {
		s.monitor.IncrSynthesisFailures()
	}
	return RelayResponse{
		Speaker:    result.Speaker.String(),
		Spoken:     result.Spoken,
		Translated: result.Translated,
		Audio:      toAudioResponse(result.Audio),
		AudioError: errorText(result.AudioErr),
		State:      toStateResponse(session.ID(), result.State),
	}, nil
}

func (s *Server) countFailure(err error) {
	switch {
	case stderrors.Is(err, errors.ErrRecognitionFailed):
		s.monitor.IncrRecognitionFailures()
	case stderrors.Is(err, errors.ErrTranslationFailed):
		s.monitor.IncrTranslationFailures()
	}
}

func (s *Server) countTranslation(audioErr error) {
	s.monitor.IncrTranslations()
	if audioErr != nil {
		s.monitor.IncrSynthesisFailures()
	}
}
