package conversation

import (
	"testing"
)

func newTestStore() *SessionStore {
	return NewSessionStore(NewCannedResolver())
}

func TestStoreGetOrCreate(t *testing.T) {
	st := newTestStore()
	id := st.NewSessionID()
	first := st.Get(id)
	first.Submit("hello")
	second := st.Get(id)
	if first != second {
		t.Fatal("Get returned a different session for the same ID")
	}
	// seed applied once, not re-applied on second Get
	if got := len(second.Messages()); got != 3 {
		t.Errorf("expected 3 messages, got %d", got)
	}
}

func TestStoreSessionIsolation(t *testing.T) {
	st := newTestStore()
	a := st.Get(st.NewSessionID())
	b := st.Get(st.NewSessionID())
	a.Submit("only in a")
	if got := len(b.Messages()); got != 1 {
		t.Errorf("session b saw %d messages, expected only its seed", got)
	}
}

func TestStoreDelete(t *testing.T) {
	st := newTestStore()
	id := st.NewSessionID()
	st.Get(id)
	if !st.Delete(id) {
		t.Error("Delete returned false for existing session")
	}
	if _, ok := st.Lookup(id); ok {
		t.Error("session still present after Delete")
	}
	if st.Delete(id) {
		t.Error("Delete returned true for missing session")
	}
}

func TestStoreNewSessionIDUnique(t *testing.T) {
	st := newTestStore()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := st.NewSessionID()
		if seen[id] {
			t.Fatalf("duplicate session ID %q", id)
		}
		seen[id] = true
	}
}
