package preview

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vango-dev/forms/pkg/form"
	"github.com/vango-dev/forms/pkg/schema"
	"github.com/vango-dev/forms/pkg/vdom"
)

const sessionCookie = "formkit_session"

// session is one browser's view of the form. The handler table always
// belongs to the last render so that HIDs sent by the client resolve
// against what the client is showing.
type session struct {
	id       string
	mu       sync.Mutex
	state    schema.State
	handlers vdom.HandlerTable
	lastSeen time.Time
}

// render builds the form for the current state, assigns HIDs and records
// the handlers. HIDs come from element ids and keys, so an event sent
// against an older frame still reaches the same control. Callers hold s.mu.
func (s *session) render(def *schema.Definition, classes form.Classes) *vdom.VNode {
	tree := def.View(s.state, classes)
	vdom.AssignStableHIDs(tree)
	s.handlers = vdom.CollectHandlers(tree)
	return tree
}

// dispatch fires the handler registered for hid/event and applies the
// resulting message. It reports false when no handler matches.
func (s *session) dispatch(def *schema.Definition, hid, event, value string, today time.Time) (schema.Msg, bool) {
	h, ok := s.handlers.Lookup(hid, event)
	if !ok {
		return schema.Msg{}, false
	}
	msg, ok := vdom.Invoke[schema.Msg](h, value)
	if !ok {
		return schema.Msg{}, false
	}
	s.state = def.Apply(s.state, msg, today)
	return msg, true
}

// sessionStore holds live sessions keyed by id.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*session)}
}

func (st *sessionStore) get(id string) (*session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	return s, ok
}

func (st *sessionStore) create(state schema.State, now time.Time) *session {
	s := &session{
		id:       uuid.NewString(),
		state:    state,
		lastSeen: now,
	}
	st.mu.Lock()
	st.sessions[s.id] = s
	st.mu.Unlock()
	return s
}

func (st *sessionStore) len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// each calls fn for every session with the session lock held.
func (st *sessionStore) each(fn func(*session)) {
	st.mu.Lock()
	list := make([]*session, 0, len(st.sessions))
	for _, s := range st.sessions {
		list = append(list, s)
	}
	st.mu.Unlock()

	for _, s := range list {
		s.mu.Lock()
		fn(s)
		s.mu.Unlock()
	}
}

// expire drops sessions not seen since cutoff and returns how many went.
func (st *sessionStore) expire(cutoff time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()
	n := 0
	for id, s := range st.sessions {
		s.mu.Lock()
		stale := s.lastSeen.Before(cutoff)
		s.mu.Unlock()
		if stale {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

// rebase carries the values of old over to a fresh state for def, keeping
// only fields def still declares.
func rebase(def *schema.Definition, old schema.State, today time.Time) schema.State {
	s := schema.NewState(def, today)
	for _, fd := range def.Fields {
		if fd.Slug == "" {
			continue
		}
		if fd.Slug == old.Focused {
			s.Focused = old.Focused
		}
		if v, ok := old.Values[fd.Slug]; ok {
			s.Values[fd.Slug] = v
		}
		if v, ok := old.Filters[fd.Slug]; ok {
			s.Filters[fd.Slug] = v
		}
		if v, ok := old.Flags[fd.Slug]; ok {
			s.Flags[fd.Slug] = v
		}
		for i, c := range s.Checks[fd.Slug] {
			s.Checks[fd.Slug][i].Checked = form.IsChecked(old.Checks[fd.Slug], c.Slug)
		}
		if v, ok := old.Pickers[fd.Slug]; ok {
			s.Pickers[fd.Slug] = v
		}
	}
	return s
}
