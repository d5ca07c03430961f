package input

import (
	"bytes"
	"testing"
	"time"
)

func hasEvent(events []Event, want Event) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}

func TestActionForByte(t *testing.T) {
	tests := []struct {
		b    byte
		want Action
	}{
		{'q', ActionQuit},
		{'\x03', ActionQuit},
		{'a', ActionLeft},
		{'L', ActionRight},
		{' ', ActionFire},
		{'p', ActionStart},
		{'\r', ActionStart},
		{'x', ActionNone},
	}
	for _, tt := range tests {
		if got := actionForByte(tt.b); got != tt.want {
			t.Errorf("actionForByte(%q) = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func TestHeldKeyProducesDownThenUp(t *testing.T) {
	s := newStream()
	t0 := time.Unix(0, 0)

	events, _ := s.apply([]byte(" "), t0)
	if !hasEvent(events, Press(ActionFire)) {
		t.Fatalf("Expected fire key-down, got %v", events)
	}

	// Still within the initial hold window: no new edges.
	events, _ = s.apply(nil, t0.Add(300*time.Millisecond))
	if len(events) != 0 {
		t.Fatalf("Expected no events while held, got %v", events)
	}

	events, _ = s.apply(nil, t0.Add(600*time.Millisecond))
	if !hasEvent(events, Release(ActionFire)) {
		t.Fatalf("Expected fire key-up after the hold window, got %v", events)
	}
}

func TestRepeatedKeyUsesShortWindow(t *testing.T) {
	s := newStream()
	t0 := time.Unix(0, 0)

	s.apply([]byte("\x1b[C"), t0)
	s.apply([]byte("\x1b[C"), t0.Add(500*time.Millisecond))
	events, _ := s.apply([]byte("\x1b[C"), t0.Add(530*time.Millisecond))
	if len(events) != 0 {
		t.Fatalf("Expected no edges during auto-repeat, got %v", events)
	}

	events, _ = s.apply(nil, t0.Add(700*time.Millisecond))
	if !hasEvent(events, Release(ActionRight)) {
		t.Errorf("Expected right key-up once repeats stop, got %v", events)
	}
}

func TestDiscreteActionsPressImmediately(t *testing.T) {
	s := newStream()
	events, _ := s.apply([]byte("pq"), time.Unix(0, 0))

	if len(events) != 2 || events[0] != Press(ActionStart) || events[1] != Press(ActionQuit) {
		t.Errorf("Expected [start quit] presses, got %v", events)
	}
}

func TestArrowKeysAndSplitSequence(t *testing.T) {
	s := newStream()
	t0 := time.Unix(0, 0)

	events, _ := s.apply([]byte("\x1b"), t0)
	if len(events) != 0 {
		t.Fatalf("Expected lone escape to be held back, got %v", events)
	}
	if !bytes.Equal(s.pending, []byte("\x1b")) {
		t.Fatalf("Expected pending escape, got %q", s.pending)
	}

	buf := append(s.pending, []byte("[D")...)
	s.pending = nil
	events, _ = s.apply(buf, t0)
	if !hasEvent(events, Press(ActionLeft)) {
		t.Errorf("Expected left key-down from split sequence, got %v", events)
	}
}

func TestSGRMouseClick(t *testing.T) {
	s := newStream()
	_, clicks := s.apply([]byte("\x1b[<0;42;17M\x1b[<0;42;17m"), time.Unix(0, 0))

	if len(clicks) != 1 {
		t.Fatalf("Expected 1 click (release ignored), got %d", len(clicks))
	}
	if clicks[0].Col != 42 || clicks[0].Row != 17 {
		t.Errorf("Expected click at (42, 17), got (%d, %d)", clicks[0].Col, clicks[0].Row)
	}
}

func TestSGRMouseIgnoresOtherButtons(t *testing.T) {
	s := newStream()
	_, clicks := s.apply([]byte("\x1b[<2;5;5M"), time.Unix(0, 0))
	if len(clicks) != 0 {
		t.Errorf("Expected right button to be ignored, got %v", clicks)
	}
}

func TestReadEventsReportsClose(t *testing.T) {
	s := newStream()
	s.ch <- 'q'
	close(s.ch)

	events, _ := s.ReadEvents()
	if !hasEvent(events, Press(ActionQuit)) {
		t.Errorf("Expected quit press, got %v", events)
	}
	if !hasEvent(events, Event{Kind: Close}) {
		t.Errorf("Expected close event, got %v", events)
	}
}

func TestStartStreamReadsBytes(t *testing.T) {
	s, err := StartStream(bytes.NewReader([]byte("d")))
	if err != nil {
		t.Fatalf("StartStream: %v", err)
	}
	defer s.Close()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		events, _ := s.ReadEvents()
		if hasEvent(events, Press(ActionRight)) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Error("Expected right key-down from the reader")
}
