package delivery

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"voice-relay/domain"
	"voice-relay/infrastructure/storage"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.log, http.StatusOK, s.monitor.GetLatest())
}

func (s *Server) ListLanguages(w http.ResponseWriter, _ *http.Request) {
	languages := lo.Map(s.languages.Names(), func(name string, _ int) LanguageResponse {
		code, _ := s.languages.Resolve(name)
		return LanguageResponse{Name: name, Code: string(code)}
	})
	writeJSON(w, s.log, http.StatusOK, languages)
}

func (s *Server) CreateConversation(w http.ResponseWriter, r *http.Request) {
	var req LanguagesRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, s.log, err)
		return
	}
	langA, langB, err := resolvePair(s.languages, req)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	session, err := s.sessions.Create(langA, langB)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	s.log.Info("Conversation started", "session", session.ID(), "A", langA, "B", langB)
	writeJSON(w, s.log, http.StatusCreated, toStateResponse(session.ID(), session.State()))
}

func (s *Server) GetConversation(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, s.log, http.StatusOK, toStateResponse(session.ID(), session.State()))
}

func (s *Server) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Discard(chi.URLParam(r, "id")); err != nil {
		writeError(w, s.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) ConfigureConversation(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	var req LanguagesRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, s.log, err)
		return
	}
	langA, langB, err := resolvePair(s.languages, req)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	if err := session.Configure(langA, langB); err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, s.log, http.StatusOK, toStateResponse(session.ID(), session.State()))
}

func (s *Server) Relay(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	data, err := s.readAudio(w, r)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	response, err := s.relay(r.Context(), session, data, r.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, s.log, http.StatusOK, response)
}

func (s *Server) ResetConversation(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	session.Reset()
	writeJSON(w, s.log, http.StatusOK, toStateResponse(session.ID(), session.State()))
}

func (s *Server) ExportTranscript(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	var buf bytes.Buffer
	if err := s.exports.ExportTranscript(&buf, session.State()); err != nil {
		writeError(w, s.log, err)
		return
	}
	s.writePDF(w, fmt.Sprintf("transcript-%s.pdf", session.ID()), buf.Bytes())
}

func (s *Server) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, s.log, err)
		return
	}
	target, err := s.languages.Resolve(req.Language)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	result, err := s.translate.Translate(r.Context(), req.Text, target)
	if err != nil {
		s.countFailure(err)
		writeError(w, s.log, err)
		return
	}
	s.countTranslation(result.AudioErr)
	writeJSON(w, s.log, http.StatusOK, TranslationResponse{
		Entry:      toHistoryResponse(result.Entry),
		Audio:      toAudioResponse(result.Audio),
		AudioError: errorText(result.AudioErr),
	})
}

func (s *Server) TranslateSpeech(w http.ResponseWriter, r *http.Request) {
	target, err := s.languages.Resolve(r.URL.Query().Get("language"))
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	data, err := s.readAudio(w, r)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	clip, err := s.normalizer.Normalize(data, r.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	result, err := s.translate.TranslateSpeech(r.Context(), clip, target)
	if err != nil {
		s.countFailure(err)
		writeError(w, s.log, err)
		return
	}
	s.countTranslation(result.AudioErr)
	writeJSON(w, s.log, http.StatusOK, TranslationResponse{
		Entry:      toHistoryResponse(result.Entry),
		Audio:      toAudioResponse(result.Audio),
		AudioError: errorText(result.AudioErr),
	})
}

func (s *Server) ListHistory(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.log, http.StatusOK, lo.Map(s.translate.History(), func(entry domain.HistoryEntry, _ int) HistoryResponse {
		return toHistoryResponse(entry)
	}))
}

func (s *Server) ClearHistory(w http.ResponseWriter, _ *http.Request) {
	s.translate.ClearHistory()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) ExportHistory(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer
	if err := s.exports.ExportHistory(&buf, s.translate.History()); err != nil {
		writeError(w, s.log, err)
		return
	}
	s.writePDF(w, "history.pdf", buf.Bytes())
}

func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, s.log, fmt.Errorf("%w: missing q", errInvalidRequest))
		return
	}
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 100 {
			writeError(w, s.log, fmt.Errorf("%w: limit must be between 1 and 100", errInvalidRequest))
			return
		}
		limit = parsed
	}
	hits, err := s.search.Search(r.Context(), query, limit)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	writeJSON(w, s.log, http.StatusOK, lo.Ternary(hits == nil, []storage.SearchHit{}, hits))
}

// readAudio bounds the upload size, an oversized body is an invalid request.
func (s *Server) readAudio(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxAudioBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidRequest, err)
	}
	s.monitor.AddAudioBytes(len(data))
	return data, nil
}

func (s *Server) writePDF(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.log.Debug("Failed to write pdf", "err", err)
	}
}
