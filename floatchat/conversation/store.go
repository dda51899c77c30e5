package conversation

import (
	"sync"

	"github.com/google/uuid"
)

// SessionStore hands out per-session conversation logs. Sessions are
// isolated from each other and live only as long as the store holds them;
// nothing is persisted.
type SessionStore struct {
	resolver Resolver

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionStore(resolver Resolver) *SessionStore {
	return &SessionStore{
		resolver: resolver,
		sessions: make(map[string]*Session),
	}
}

func (st *SessionStore) NewSessionID() string {
	return uuid.New().String()
}

// Get returns the session for the given ID, creating and seeding it on
// first access. Repeated calls with the same ID return the same session;
// the seed is never re-applied.
func (st *SessionStore) Get(sessionID string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	if sess, ok := st.sessions[sessionID]; ok {
		return sess
	}
	sess := newSession(sessionID, st.resolver)
	st.sessions[sessionID] = sess
	return sess
}

// Lookup returns an existing session without creating one.
func (st *SessionStore) Lookup(sessionID string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	sess, ok := st.sessions[sessionID]
	return sess, ok
}

// Delete ends a session and discards its log. Reports whether the session
// existed.
func (st *SessionStore) Delete(sessionID string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[sessionID]; !ok {
		return false
	}
	delete(st.sessions, sessionID)
	return true
}

// All returns the live sessions in no particular order.
func (st *SessionStore) All() []*Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]*Session, 0, len(st.sessions))
	for _, sess := range st.sessions {
		out = append(out, sess)
	}
	return out
}

// QuickQueries exposes the resolver's shortcut list.
func (st *SessionStore) QuickQueries() []string {
	return st.resolver.QuickQueries()
}
