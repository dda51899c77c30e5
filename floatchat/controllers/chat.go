package controllers

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"floatchat/floatchat/conversation"
	"floatchat/floatchat/utils/logging"
	types "floatchat/floatchat/utils/types"
)

// ErrSessionNotFound maps to 404 in the routes layer.
var ErrSessionNotFound = errors.New("session not found")

type ChatController struct {
	store      *conversation.SessionStore
	thinkDelay time.Duration
}

// NewChatController wires the session store with a simulated "thinking"
// pause between request and response. The pause is presentation only;
// nothing depends on it for correctness.
func NewChatController(store *conversation.SessionStore, thinkDelay time.Duration) *ChatController {
	return &ChatController{store: store, thinkDelay: thinkDelay}
}

// Chat appends the user's query and its resolved reply to the session log
// and returns the reply. A blank query is dropped silently: the response
// is empty, not an error, and no session is created or mutated.
func (c *ChatController) Chat(ctx context.Context, req types.ChatRequest) (map[string]string, error) {
	defer logging.LogDuration(ctx, "chat_controller_chat")()
	if strings.TrimSpace(req.Content) == "" {
		return map[string]string{"response": "", "session_id": req.SessionID}, nil
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = c.store.NewSessionID()
	}
	sess := c.store.Get(sessionID)
	c.pause()
	reply, _ := sess.Submit(req.Content)
	return map[string]string{"response": reply.Content, "session_id": sessionID}, nil
}

// ChatStream behaves like Chat but delivers the assistant reply over a
// channel in word-sized chunks. The log append itself is still atomic;
// only delivery is chunked.
func (c *ChatController) ChatStream(ctx context.Context, req types.ChatRequest) (chan string, chan error) {
	ch := make(chan string)
	errCh := make(chan error, 1)

	if strings.TrimSpace(req.Content) == "" {
		close(ch)
		close(errCh)
		return ch, errCh
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = c.store.NewSessionID()
	}
	sess := c.store.Get(sessionID)

	go func() {
		defer close(ch)
		defer close(errCh)
		c.pause()
		reply, ok := sess.Submit(req.Content)
		if !ok {
			return
		}
		for _, word := range strings.SplitAfter(reply.Content, " ") {
			select {
			case <-ctx.Done():
				return
			case ch <- word:
			}
		}
	}()

	return ch, errCh
}

// QuickQueries returns the ordered one-click shortcut strings.
func (c *ChatController) QuickQueries(ctx context.Context) []string {
	return c.store.QuickQueries()
}

// GetMessagesForSession returns the full ordered log for one session.
func (c *ChatController) GetMessagesForSession(ctx context.Context, sessionID string) ([]conversation.Message, error) {
	sess, ok := c.store.Lookup(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess.Messages(), nil
}

// ListSessions summarizes every live session, most recently active first.
func (c *ChatController) ListSessions(ctx context.Context) ([]types.ChatSessionSummary, error) {
	sessions := c.store.All()
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].LastActivity().After(sessions[j].LastActivity())
	})
	summaries := make([]types.ChatSessionSummary, 0, len(sessions))
	for _, sess := range sessions {
		msgs := sess.Messages()
		last := msgs[len(msgs)-1]
		summaries = append(summaries, types.ChatSessionSummary{
			SessionID:       sess.ID(),
			LastMessage:     last.Content,
			LastMessageRole: string(last.Role),
			LastActivity:    sess.LastActivity().Format(time.RFC3339),
		})
	}
	return summaries, nil
}

func (c *ChatController) DeleteSession(ctx context.Context, sessionID string) error {
	if !c.store.Delete(sessionID) {
		return ErrSessionNotFound
	}
	return nil
}

func (c *ChatController) pause() {
	if c.thinkDelay > 0 {
		time.Sleep(c.thinkDelay)
	}
}
