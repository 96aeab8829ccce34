package session

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSession_AppendOrder(t *testing.T) {
	s := New("test")

	s.Append(RoleUser, "first question")
	s.Append(RoleAssistant, "first answer")
	s.Append(RoleUser, "second question")
	s.Append(RoleAssistant, "second answer")

	turns := s.Turns()
	if len(turns) != 4 {
		t.Fatalf("got %d turns, want 4", len(turns))
	}
	wantRoles := []Role{RoleUser, RoleAssistant, RoleUser, RoleAssistant}
	for i, turn := range turns {
		if turn.Role != wantRoles[i] {
			t.Errorf("turn %d role = %s, want %s", i, turn.Role, wantRoles[i])
		}
	}
	if turns[0].Content != "first question" || turns[3].Content != "second answer" {
		t.Error("turns out of order")
	}
}

func TestSession_GeneratedID(t *testing.T) {
	a, b := New(""), New("")
	if !strings.HasPrefix(a.ID, "sess_") {
		t.Errorf("generated id should carry the sess_ prefix, got %s", a.ID)
	}
	if a.ID == b.ID {
		t.Error("generated ids should be unique")
	}
}

func TestSession_TurnsIsCopy(t *testing.T) {
	s := New("test")
	s.Append(RoleUser, "hello")

	turns := s.Turns()
	turns[0].Content = "mutated"

	if s.Turns()[0].Content != "hello" {
		t.Error("Turns should return a copy, not the backing slice")
	}
}

func TestSession_Transcript(t *testing.T) {
	s := New("tr-1")
	s.Append(RoleUser, "hi")
	s.Append(RoleAssistant, "hello")

	data, err := s.Transcript()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded struct {
		ID    string `json:"id"`
		Turns []Turn `json:"turns"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("transcript is not valid JSON: %v", err)
	}
	if decoded.ID != "tr-1" || len(decoded.Turns) != 2 {
		t.Errorf("transcript content wrong: %+v", decoded)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	s1 := store.GetOrCreate("alpha")
	s2 := store.GetOrCreate("alpha")
	if s1 != s2 {
		t.Error("GetOrCreate should return the same session for the same id")
	}

	if _, ok := store.Get("missing"); ok {
		t.Error("Get should miss for unknown ids")
	}

	generated := store.GetOrCreate("")
	if generated.ID == "" {
		t.Error("empty id should create a session with a generated id")
	}
	if _, ok := store.Get(generated.ID); !ok {
		t.Error("generated session should be retrievable")
	}

	if store.Count() != 2 {
		t.Errorf("count = %d, want 2", store.Count())
	}
	if len(store.List()) != 2 {
		t.Errorf("list has %d ids, want 2", len(store.List()))
	}

	store.Remove("alpha")
	if _, ok := store.Get("alpha"); ok {
		t.Error("removed session should be gone")
	}
	if store.Count() != 1 {
		t.Errorf("count after remove = %d, want 1", store.Count())
	}
}
