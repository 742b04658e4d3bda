package delivery

import (
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// SocketCommand is a text frame sent by the client. Binary frames are captures.
type SocketCommand struct {
	Action    string `json:"action"`
	LanguageA string `json:"languageA,omitempty"`
	LanguageB string `json:"languageB,omitempty"`
}

// SocketMessage is the only frame shape sent back to the client.
type SocketMessage struct {
	Type   string         `json:"type"`
	Result *RelayResponse `json:"result,omitempty"`
	State  *StateResponse `json:"state,omitempty"`
	Error  string         `json:"error,omitempty"`
	Status int            `json:"status,omitempty"`
}

// RelaySocket keeps a conversation open over a websocket.
// Every binary frame is one capture, text frames carry reset, state and configure commands.
// A failed step is reported on the socket and the connection stays open.
func (s *Server) RelaySocket(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("Websocket upgrade failed", "err", err)
		return
	}
	defer func() { _ = conn.Close() }()
	conn.SetReadLimit(s.cfg.MaxAudioBytes)

	log := s.log.With("session", session.ID(), "remote", r.RemoteAddr)
	log.Debug("Websocket connected")

	for {
		kind, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("Websocket closed unexpectedly", "err", err)
			}
			log.Debug("Websocket disconnected")
			return
		}

		var reply SocketMessage
		switch kind {
		case websocket.BinaryMessage:
			s.monitor.AddAudioBytes(len(payload))
			result, err := s.relay(r.Context(), session, payload, "")
			if err != nil {
				reply = SocketMessage{Type: "error", Error: err.Error(), Status: statusOf(err)}
			} else {
				reply = SocketMessage{Type: "relay", Result: &result}
			}
		case websocket.TextMessage:
			reply = s.command(session.ID(), payload)
		default:
			continue
		}

		if err := s.send(conn, reply); err != nil {
			log.Debug("Websocket write failed", "err", err)
			return
		}
	}
}

func (s *Server) command(id string, payload []byte) SocketMessage {
	var cmd SocketCommand
	if err := sonic.Unmarshal(payload, &cmd); err != nil {
		return SocketMessage{Type: "error", Error: "invalid command", Status: http.StatusBadRequest}
	}
	session, err := s.sessions.Get(id)
	if err != nil {
		return SocketMessage{Type: "error", Error: err.Error(), Status: statusOf(err)}
	}

	switch cmd.Action {
	case "reset":
		session.Reset()
	case "configure":
		langA, langB, err := resolvePair(s.languages, LanguagesRequest{LanguageA: cmd.LanguageA, LanguageB: cmd.LanguageB})
		if err == nil {
			err = session.Configure(langA, langB)
		}
		if err != nil {
			return SocketMessage{Type: "error", Error: err.Error(), Status: statusOf(err)}
		}
	case "state":
	default:
		return SocketMessage{Type: "error", Error: "unknown action " + cmd.Action, Status: http.StatusBadRequest}
	}
	state := toStateResponse(session.ID(), session.State())
	return SocketMessage{Type: "state", State: &state}
}

func (s *Server) send(conn *websocket.Conn, message SocketMessage) error {
	body, err := sonic.Marshal(message)
	if err != nil {
		return err
	}
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, body)
}
