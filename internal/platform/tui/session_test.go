package tui

import (
	"sync"
	"testing"
)

func TestSessionsRemoveStopsGame(t *testing.T) {
	s := NewSessions()
	a, b := &fakeGame{}, &fakeGame{}
	s.Add("a", a)
	s.Add("b", b)

	if s.Count() != 2 {
		t.Fatalf("Count() = %d, expected 2", s.Count())
	}

	s.Remove("a")
	s.Remove("missing")
	if !a.Stopped() || b.Stopped() {
		t.Errorf("stopped a=%v b=%v, expected only a", a.Stopped(), b.Stopped())
	}
	if s.Count() != 1 {
		t.Errorf("Count() = %d, expected 1", s.Count())
	}
}

func TestSessionsStopAll(t *testing.T) {
	s := NewSessions()
	games := make([]*fakeGame, 20)

	var wg sync.WaitGroup
	for i := range games {
		games[i] = &fakeGame{}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Add(string(rune('a'+i)), games[i])
		}(i)
	}
	wg.Wait()

	if n := s.StopAll(); n != len(games) {
		t.Errorf("StopAll() = %d, expected %d", n, len(games))
	}
	for i, g := range games {
		if !g.Stopped() {
			t.Errorf("game %d still running", i)
		}
	}
	if s.Count() != 0 {
		t.Errorf("Count() after StopAll = %d, expected 0", s.Count())
	}
}
