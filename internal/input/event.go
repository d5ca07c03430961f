// Package input turns raw frontend input into game events.
package input

// Action is a game command bound to one or more keys.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionFire
	ActionStart
	ActionQuit
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionFire:
		return "fire"
	case ActionStart:
		return "start"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// EventKind identifies the type of an input event.
type EventKind int

const (
	KeyDown EventKind = iota
	KeyUp
	Click // Pointer press at X, Y
	Close // The OS or the host asked the game to close
)

// Event is a single input event.
type Event struct {
	Kind   EventKind
	Action Action // For KeyDown and KeyUp
	X, Y   int    // For Click, in logical screen coordinates
}

// Press returns a key-down event.
func Press(a Action) Event { return Event{Kind: KeyDown, Action: a} }

// Release returns a key-up event.
func Release(a Action) Event { return Event{Kind: KeyUp, Action: a} }

// ClickAt returns a pointer click event.
func ClickAt(x, y int) Event { return Event{Kind: Click, X: x, Y: y} }
