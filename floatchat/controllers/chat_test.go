package controllers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"floatchat/floatchat/conversation"
	"floatchat/floatchat/utils/logging"
	types "floatchat/floatchat/utils/types"
)

// --- Helpers ---
func setupChatTest(t *testing.T) *ChatController {
	logging.InitLogger() // ensures loggers aren't nil
	store := conversation.NewSessionStore(conversation.NewCannedResolver())
	return NewChatController(store, 0) // no thinking pause in tests
}

func TestChatCreatesSessionAndReplies(t *testing.T) {
	c := setupChatTest(t)
	resp, err := c.Chat(context.Background(), types.ChatRequest{Content: "Show floats near Hawaii"})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if resp["session_id"] == "" {
		t.Error("expected a generated session_id")
	}
	want := "I found 12 ARGO floats near Hawaii in the last month. Here are their trajectories and data profiles."
	if resp["response"] != want {
		t.Errorf("unexpected response: %q", resp["response"])
	}

	msgs, err := c.GetMessagesForSession(context.Background(), resp["session_id"])
	if err != nil {
		t.Fatalf("GetMessagesForSession: %v", err)
	}
	if len(msgs) != 3 {
		t.Errorf("expected 3 messages, got %d", len(msgs))
	}
}

func TestChatBlankContentLeavesNoState(t *testing.T) {
	c := setupChatTest(t)
	resp, err := c.Chat(context.Background(), types.ChatRequest{Content: "   "})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if resp["response"] != "" {
		t.Errorf("expected empty response, got %q", resp["response"])
	}
	// a rejected query must not materialize a session as a side effect
	summaries, err := c.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("rejected input created %d sessions", len(summaries))
	}
}

func TestChatBlankContentLeavesExistingLogUntouched(t *testing.T) {
	c := setupChatTest(t)
	first, _ := c.Chat(context.Background(), types.ChatRequest{Content: "hello"})
	sessionID := first["session_id"]

	resp, err := c.Chat(context.Background(), types.ChatRequest{SessionID: sessionID, Content: "\t\n"})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if resp["response"] != "" {
		t.Errorf("expected empty response, got %q", resp["response"])
	}
	msgs, err := c.GetMessagesForSession(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("GetMessagesForSession: %v", err)
	}
	if len(msgs) != 3 {
		t.Errorf("expected log unchanged at 3 messages, got %d", len(msgs))
	}
}

func TestChatStreamBlankContentLeavesNoState(t *testing.T) {
	c := setupChatTest(t)
	ch, errCh := c.ChatStream(context.Background(), types.ChatRequest{Content: "  "})
	for range ch {
		t.Error("unexpected chunk for rejected input")
	}
	if err := <-errCh; err != nil {
		t.Fatalf("stream error: %v", err)
	}
	summaries, _ := c.ListSessions(context.Background())
	if len(summaries) != 0 {
		t.Errorf("rejected input created %d sessions", len(summaries))
	}
}

func TestChatReusesSession(t *testing.T) {
	c := setupChatTest(t)
	first, _ := c.Chat(context.Background(), types.ChatRequest{Content: "one"})
	sessionID := first["session_id"]
	c.Chat(context.Background(), types.ChatRequest{SessionID: sessionID, Content: "two"})

	msgs, err := c.GetMessagesForSession(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("GetMessagesForSession: %v", err)
	}
	if len(msgs) != 5 {
		t.Errorf("expected 5 messages after 2 submits, got %d", len(msgs))
	}
}

func TestChatStreamReassemblesReply(t *testing.T) {
	c := setupChatTest(t)
	ch, errCh := c.ChatStream(context.Background(), types.ChatRequest{Content: "Temperature at 200m depth"})
	var sb strings.Builder
	for chunk := range ch {
		sb.WriteString(chunk)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("stream error: %v", err)
	}
	want := "The average temperature at 200m depth is 15.3°C across all ARGO floats. Here's the spatial distribution."
	if sb.String() != want {
		t.Errorf("reassembled stream = %q, want %q", sb.String(), want)
	}
}

func TestQuickQueries(t *testing.T) {
	c := setupChatTest(t)
	quick := c.QuickQueries(context.Background())
	if len(quick) != 4 {
		t.Fatalf("expected 4 quick queries, got %d", len(quick))
	}
	// invoking a quick query is the same as submitting its literal string
	resp, err := c.Chat(context.Background(), types.ChatRequest{Content: quick[0]})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if !strings.Contains(resp["response"], "ARGO floats near Hawaii") {
		t.Errorf("quick query did not hit canned response: %q", resp["response"])
	}
}

func TestListSessionsMostRecentFirst(t *testing.T) {
	c := setupChatTest(t)
	older, _ := c.Chat(context.Background(), types.ChatRequest{Content: "first session"})
	newer, _ := c.Chat(context.Background(), types.ChatRequest{Content: "second session"})

	summaries, err := c.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(summaries))
	}
	if summaries[0].SessionID != newer["session_id"] || summaries[1].SessionID != older["session_id"] {
		t.Error("sessions not ordered most recently active first")
	}
}

func TestListAndDeleteSessions(t *testing.T) {
	c := setupChatTest(t)
	resp, _ := c.Chat(context.Background(), types.ChatRequest{Content: "hello"})
	sessionID := resp["session_id"]

	summaries, err := c.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 session, got %d", len(summaries))
	}
	if summaries[0].SessionID != sessionID {
		t.Errorf("unexpected session id %q", summaries[0].SessionID)
	}
	if summaries[0].LastMessageRole != "assistant" {
		t.Errorf("expected last message from assistant, got %q", summaries[0].LastMessageRole)
	}

	if err := c.DeleteSession(context.Background(), sessionID); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	if err := c.DeleteSession(context.Background(), sessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := c.GetMessagesForSession(context.Background(), sessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}
