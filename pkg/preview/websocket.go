package preview

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/forms/pkg/render"
)

// codeUnknownTarget is reported when a frame names a HID or event absent
// from the last render.
const codeUnknownTarget = "F061"

// eventFrame is sent by the client for every DOM event it forwards.
type eventFrame struct {
	HID   string `json:"hid"`
	Event string `json:"event"`
	Value string `json:"value"`
}

// renderFrame is the server's answer: the re-rendered form and, when the
// event could not be resolved, an error code.
type renderFrame struct {
	HTML   string              `json:"html"`
	Valid  bool                `json:"valid"`
	Errors map[string][]string `json:"errors,omitempty"`
	Error  string              `json:"error,omitempty"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}
	sess, ok := s.sessions.get(c.Value)
	if !ok {
		http.Error(w, "unknown session", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		s.metrics.RecordWebSocketError("upgrade")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.config.ReadLimit)

	s.metrics.RecordSessionOpen()
	defer s.metrics.RecordSessionClose()
	log := s.logger.With("session_id", sess.id)
	log.Debug("websocket connected")

	// The first frame resynchronises the client with the server's view.
	if err := conn.WriteJSON(s.frame(sess, "")); err != nil {
		s.metrics.RecordWebSocketError("write")
		return
	}

	for {
		var ev eventFrame
		if err := conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read failed", "error", err)
				s.metrics.RecordWebSocketError("read")
			}
			return
		}

		code := s.handleEvent(sess, ev)
		if code != "" {
			log.Debug("event not dispatched", "hid", ev.HID, "event", ev.Event)
		}
		conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := conn.WriteJSON(s.frame(sess, code)); err != nil {
			log.Warn("websocket write failed", "error", err)
			s.metrics.RecordWebSocketError("write")
			return
		}
	}
}

// handleEvent applies ev to the session and returns an error code when
// the event did not resolve to a handler.
func (s *Server) handleEvent(sess *session, ev eventFrame) string {
	def := s.Definition()

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastSeen = s.config.Now()

	if _, ok := sess.dispatch(def, ev.HID, ev.Event, ev.Value, s.config.Now()); !ok {
		s.metrics.RecordEvent(ev.Event, "unknown_target")
		return codeUnknownTarget
	}
	s.metrics.RecordEvent(ev.Event, "applied")
	return ""
}

// frame renders the session's form into a renderFrame.
func (s *Server) frame(sess *session, code string) renderFrame {
	def := s.Definition()

	sess.mu.Lock()
	tree := sess.render(def, s.config.Classes)
	errs := def.Errors(sess.state)
	sess.mu.Unlock()
	s.metrics.RecordRender(len(errs))

	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(tree)
	if err != nil {
		s.logger.Error("render failed", "error", err)
	}
	return renderFrame{HTML: html, Valid: len(errs) == 0, Errors: errs, Error: code}
}
