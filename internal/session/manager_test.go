package session

import (
	"strings"
	"sync"
	"testing"

	"novacart-support/internal/model"
)

func TestManagerCreateAndAcquire(t *testing.T) {
	m, err := NewManager(16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := m.Create("user_abc123")
	if !strings.HasPrefix(s.ID, "sess_") {
		t.Errorf("expected sess_ prefix, got %q", s.ID)
	}
	if s.UserID != "user_abc123" {
		t.Errorf("unexpected user id: %q", s.UserID)
	}

	e := m.Acquire(s.ID, s.UserID)
	e.Lock()
	got := e.Snapshot()
	e.Unlock()
	if got.ID != s.ID {
		t.Errorf("expected same session back, got %q", got.ID)
	}
}

func TestManagerAcquireRecreatesEvicted(t *testing.T) {
	m, _ := NewManager(16)

	e := m.Acquire("sess_unknown1", "user_x")
	e.Lock()
	s := e.Snapshot()
	e.Unlock()

	if s.ID != "sess_unknown1" || s.UserID != "user_x" {
		t.Errorf("expected fresh session for unknown id, got %+v", s)
	}
	if s.PendingIntent != model.IntentNone || s.ActiveOrderID != "" {
		t.Errorf("expected empty routing state, got %+v", s)
	}
}

func TestManagerSerializesSameSession(t *testing.T) {
	m, _ := NewManager(16)
	s := m.Create("user_y")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e := m.Acquire(s.ID, s.UserID)
			e.Lock()
			cur := e.Snapshot()
			cur.AppendTurn(model.RoleUser, "hello")
			e.Store(cur)
			e.Unlock()
		}()
	}
	wg.Wait()

	e := m.Acquire(s.ID, s.UserID)
	e.Lock()
	got := e.Snapshot()
	e.Unlock()
	if len(got.Turns) != 50 {
		t.Errorf("expected 50 turns after concurrent appends, got %d", len(got.Turns))
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	m, _ := NewManager(16)
	s := m.Create("user_z")

	e := m.Acquire(s.ID, s.UserID)
	e.Lock()
	cur := e.Snapshot()
	cur.AppendTurn(model.RoleUser, "mutation")
	stored := e.Snapshot()
	e.Unlock()

	if len(stored.Turns) != 0 {
		t.Errorf("snapshot mutation leaked into stored session: %d turns", len(stored.Turns))
	}
}
