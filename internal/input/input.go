package input

import (
	"bufio"
	"io"
	"strconv"
	"time"

	"github.com/muesli/cancelreader"
)

// Terminals only report key presses, repeated while a key is held. A key counts as
// held while presses keep arriving: the first press bridges the terminal's auto-repeat
// delay, later repeats only need to arrive within repeatHoldDuration.
const (
	initialHoldDuration = 550 * time.Millisecond
	repeatHoldDuration  = 80 * time.Millisecond
)

// Mouse reporting control sequences (xterm SGR extended mode).
const (
	EnableMouse  = "\033[?1000h\033[?1006h"
	DisableMouse = "\033[?1006l\033[?1000l"
)

// holdActions are the actions that generate both KeyDown and KeyUp events.
var holdActions = []Action{ActionLeft, ActionRight, ActionFire}

// keyState tracks presses of a single held key.
type keyState struct {
	last    time.Time // Last press seen
	repeats int       // Presses seen since the hold started
	held    bool      // Held as of the last ReadEvents
}

// isHeld reports whether the key still counts as held at now.
func (k *keyState) isHeld(now time.Time) bool {
	if k.last.IsZero() {
		return false
	}
	window := initialHoldDuration
	if k.repeats > 1 {
		window = repeatHoldDuration
	}
	return now.Sub(k.last) < window
}

// press records a key press at now.
func (k *keyState) press(now time.Time) {
	if !k.isHeld(now) {
		k.repeats = 0
	}
	k.repeats++
	k.last = now
}

// TerminalClick is a mouse click in 1-based terminal cell coordinates.
type TerminalClick struct {
	Col, Row int
}

// Stream delivers terminal input bytes via a channel and tracks key state.
type Stream struct {
	ch      chan byte
	reader  cancelreader.CancelReader
	keys    map[Action]*keyState
	pending []byte // Incomplete escape sequence carried to the next read
	now     func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r fails or Close is called.
func StartStream(r io.Reader) (*Stream, error) {
	cr, err := cancelreader.NewReader(r)
	if err != nil {
		return nil, err
	}
	s := newStream()
	s.reader = cr

	go func() {
		br := bufio.NewReader(cr)
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s, nil
}

func newStream() *Stream {
	s := &Stream{
		ch:   make(chan byte, 128),
		keys: make(map[Action]*keyState, len(holdActions)),
		now:  time.Now,
	}
	for _, a := range holdActions {
		s.keys[a] = &keyState{}
	}
	return s
}

// Close stops the reader goroutine.
func (s *Stream) Close() error {
	if s.reader == nil {
		return nil
	}
	s.reader.Cancel()
	return s.reader.Close()
}

// ReadEvents drains all available bytes from the stream (non-blocking) and returns
// the key events and clicks they produced. A closed input yields a Close event.
func (s *Stream) ReadEvents() ([]Event, []TerminalClick) {
	buf := s.pending
	s.pending = nil
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	events, clicks := s.apply(buf, s.now())
	if closed {
		events = append(events, Event{Kind: Close})
	}
	return events, clicks
}

// apply parses buf, updates key state at now and derives events.
func (s *Stream) apply(buf []byte, now time.Time) ([]Event, []TerminalClick) {
	var events []Event
	var clicks []TerminalClick

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			if i+1 >= len(buf) {
				// Lone escape at the end of the read: may be the start of a sequence.
				s.pending = append(s.pending, b)
				break
			}
			if buf[i+1] == '[' {
				n, click, action, complete := parseCSI(buf[i:])
				if !complete {
					s.pending = append(s.pending, buf[i:]...)
					break
				}
				if click != nil {
					clicks = append(clicks, *click)
				}
				if action != ActionNone {
					events = s.pressAction(events, action, now)
				}
				i += n - 1
				continue
			}
		}

		if action := actionForByte(b); action != ActionNone {
			events = s.pressAction(events, action, now)
		}
	}

	// Derive key-up and key-down edges for held actions
	for _, a := range holdActions {
		k := s.keys[a]
		held := k.isHeld(now)
		switch {
		case held && !k.held:
			events = append(events, Press(a))
		case !held && k.held:
			events = append(events, Release(a))
		}
		k.held = held
	}

	return events, clicks
}

// pressAction records a press. Discrete actions emit their event immediately.
func (s *Stream) pressAction(events []Event, a Action, now time.Time) []Event {
	if k, ok := s.keys[a]; ok {
		k.press(now)
		return events
	}
	return append(events, Press(a))
}

// parseCSI parses a CSI sequence at the start of buf (buf[0:2] == ESC [).
// Returns the sequence length and either a click or an action; complete is false if
// buf ends before the sequence does.
func parseCSI(buf []byte) (n int, click *TerminalClick, action Action, complete bool) {
	if len(buf) < 3 {
		return 0, nil, ActionNone, false
	}
	switch buf[2] {
	case 'C': // Right arrow
		return 3, nil, ActionRight, true
	case 'D': // Left arrow
		return 3, nil, ActionLeft, true
	case 'A', 'B': // Up/down arrows are unbound
		return 3, nil, ActionNone, true
	case '<':
		return parseSGRMouse(buf)
	}

	// Skip any other CSI sequence up to its final byte
	for i := 2; i < len(buf); i++ {
		if buf[i] >= 0x40 && buf[i] <= 0x7e {
			return i + 1, nil, ActionNone, true
		}
	}
	return 0, nil, ActionNone, false
}

// parseSGRMouse parses ESC [ < button ; col ; row (M|m).
// Only left button presses produce a click.
func parseSGRMouse(buf []byte) (int, *TerminalClick, Action, bool) {
	end := -1
	for i := 3; i < len(buf); i++ {
		if buf[i] == 'M' || buf[i] == 'm' {
			end = i
			break
		}
	}
	if end < 0 {
		return 0, nil, ActionNone, false
	}

	fields := splitSemicolons(buf[3:end])
	if len(fields) != 3 || buf[end] != 'M' {
		return end + 1, nil, ActionNone, true
	}
	button, err1 := strconv.Atoi(fields[0])
	col, err2 := strconv.Atoi(fields[1])
	row, err3 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil || err3 != nil || button != 0 {
		return end + 1, nil, ActionNone, true
	}
	return end + 1, &TerminalClick{Col: col, Row: row}, ActionNone, true
}

func splitSemicolons(b []byte) []string {
	var fields []string
	start := 0
	for i, c := range b {
		if c == ';' {
			fields = append(fields, string(b[start:i]))
			start = i + 1
		}
	}
	return append(fields, string(b[start:]))
}

// actionForByte maps a single key byte to its action.
func actionForByte(b byte) Action {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl+C arrives as a byte in raw mode
		return ActionQuit
	case 'a', 'A', 'j', 'J':
		return ActionLeft
	case 'd', 'D', 'l', 'L':
		return ActionRight
	case ' ':
		return ActionFire
	case 'p', 'P', '\n', '\r':
		return ActionStart
	}
	return ActionNone
}
