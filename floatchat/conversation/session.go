package conversation

import (
	"strings"
	"sync"
	"time"
)

const greeting = "Hello! I'm your ocean data assistant. How can I help you explore ARGO data today?"

// seedTimestamp is the fixed display time on the greeting message.
const seedTimestamp = "10:00 AM"

// Session owns one user's append-only chat log. The log is seeded with a
// single assistant greeting and only ever grows; messages are never edited
// or removed. Safe for concurrent use.
type Session struct {
	id       string
	resolver Resolver

	mu       sync.Mutex
	messages []Message
	updated  time.Time
}

func newSession(id string, resolver Resolver) *Session {
	return &Session{
		id:       id,
		resolver: resolver,
		messages: []Message{{Role: RoleAssistant, Content: greeting, Timestamp: seedTimestamp}},
		updated:  time.Now(),
	}
}

func (s *Session) ID() string {
	return s.id
}

// Submit appends the user's query and its resolved assistant reply as one
// atomic pair; a reader never observes the user message without its
// response. Blank or whitespace-only input is dropped silently: no
// mutation, no error. Returns the assistant reply and whether the query
// was accepted.
func (s *Session) Submit(query string) (Message, bool) {
	if strings.TrimSpace(query) == "" {
		return Message{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, Message{Role: RoleUser, Content: query, Timestamp: clockStamp()})
	reply := Message{Role: RoleAssistant, Content: s.resolver.Resolve(query), Timestamp: clockStamp()}
	s.messages = append(s.messages, reply)
	s.updated = time.Now()
	return reply, true
}

// Messages returns a defensive copy of the log, oldest first.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// LastActivity reports when the log was last mutated.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updated
}

func clockStamp() string {
	return time.Now().Format("15:04")
}
