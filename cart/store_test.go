package cart

import (
	"fmt"
	"sync"
	"testing"
)

func TestSessionIsolation(t *testing.T) {
	s := NewSessionStore()
	s.Add("alice", menuItem("a", "Idli", "40"))
	s.Add("bob", menuItem("b", "Vada", "50"))

	alice := s.Snapshot("alice")
	if len(alice.Lines) != 1 || alice.Lines[0].MenuItemID != "a" {
		t.Errorf("alice's cart leaked: %+v", alice.Lines)
	}
	bob := s.Snapshot("bob")
	if len(bob.Lines) != 1 || bob.Lines[0].MenuItemID != "b" {
		t.Errorf("bob's cart leaked: %+v", bob.Lines)
	}

	s.Clear("alice")
	if len(s.Snapshot("bob").Lines) != 1 {
		t.Error("clearing alice's cart touched bob's")
	}
}

func TestSnapshotOfUnknownSession(t *testing.T) {
	s := NewSessionStore()
	view := s.Snapshot("nobody")
	if len(view.Lines) != 0 {
		t.Errorf("expected empty view, got %+v", view.Lines)
	}
	if !view.Total.IsZero() {
		t.Errorf("expected zero total, got %s", view.Total)
	}
	if items := s.OrderItems("nobody"); len(items) != 0 {
		t.Errorf("expected no order items, got %+v", items)
	}
}

func TestBeginCheckout(t *testing.T) {
	s := NewSessionStore()

	if !s.BeginCheckout("alice") {
		t.Fatal("first BeginCheckout should succeed")
	}
	if s.BeginCheckout("alice") {
		t.Error("second BeginCheckout should be rejected while in flight")
	}
	if !s.BeginCheckout("bob") {
		t.Error("another session's checkout must not be blocked")
	}

	s.EndCheckout("alice")
	if !s.BeginCheckout("alice") {
		t.Error("BeginCheckout should succeed again after EndCheckout")
	}
}

func TestConcurrentSessions(t *testing.T) {
	s := NewSessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			session := fmt.Sprintf("session-%d", n)
			for j := 0; j < 50; j++ {
				s.Add(session, menuItem("a", "Idli", "40"))
				s.Snapshot(session)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		view := s.Snapshot(fmt.Sprintf("session-%d", i))
		if len(view.Lines) != 1 || view.Lines[0].Quantity != 50 {
			t.Errorf("session-%d: expected one line with quantity 50, got %+v", i, view.Lines)
		}
	}
}
