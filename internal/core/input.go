package core

import "time"

// Key is a logical key whose held state is polled every frame.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
	keyCount
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyFire:
		return "Fire"
	default:
		return "None"
	}
}

// Action is a discrete, edge-triggered command. Each physical press yields
// at most one Action no matter how many frames the key stays down.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Enter - leave the menu
	ActionPause          // P, Escape - toggle pause
	ActionRestart        // R - fresh run after game over
	ActionMenu           // B - back to the menu
	ActionQuit           // Q, Ctrl+C - stop the loop
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionMenu:
		return "Menu"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// InputFrame is the read-only input view for one simulation frame: which
// logical keys are held and which one-shot actions fired since the last frame.
type InputFrame struct {
	held   [keyCount]bool
	events []Action
}

// NewInputFrame creates an input frame with the given held keys and events.
func NewInputFrame(held []Key, events ...Action) InputFrame {
	var f InputFrame
	for _, k := range held {
		if k > KeyNone && k < keyCount {
			f.held[k] = true
		}
	}
	f.events = append(f.events, events...)
	return f
}

// IsPressed reports whether k is held during this frame.
func (f InputFrame) IsPressed(k Key) bool {
	if k <= KeyNone || k >= keyCount {
		return false
	}
	return f.held[k]
}

// Events returns the one-shot actions of this frame in arrival order.
func (f InputFrame) Events() []Action {
	return f.events
}

// Has reports whether action a fired during this frame.
func (f InputFrame) Has(a Action) bool {
	for _, e := range f.events {
		if e == a {
			return true
		}
	}
	return false
}

// DefaultHoldWindow is how long a key counts as held after a repeat.
// Terminals report key repeats but not releases, so held state decays.
const DefaultHoldWindow = 150 * time.Millisecond

// DefaultRepeatDelay covers the pause a terminal leaves between the first
// press of a key and its first auto-repeat.
const DefaultRepeatDelay = 600 * time.Millisecond

// keyPress tracks one burst of presses of a key.
type keyPress struct {
	first time.Time
	last  time.Time
}

// InputState accumulates raw key presses between frames and produces one
// InputFrame per frame. It is the producer side of the input surface.
type InputState struct {
	holdWindow  time.Duration
	repeatDelay time.Duration
	keys        [keyCount]keyPress
	events      []Action
	actionHeld  map[Action]time.Time
}

// NewInputState creates an input producer. A non-positive hold window selects
// DefaultHoldWindow and a non-positive repeat delay selects DefaultRepeatDelay.
// The repeat delay is never shorter than the hold window.
func NewInputState(holdWindow, repeatDelay time.Duration) *InputState {
	if holdWindow <= 0 {
		holdWindow = DefaultHoldWindow
	}
	if repeatDelay <= 0 {
		repeatDelay = DefaultRepeatDelay
	}
	repeatDelay = max(repeatDelay, holdWindow)
	return &InputState{
		holdWindow:  holdWindow,
		repeatDelay: repeatDelay,
		actionHeld:  make(map[Action]time.Time),
	}
}

// window returns how long p stays held after its last press. A key pressed
// once waits out the repeat delay; a repeating key decays quickly.
func (s *InputState) window(p keyPress) time.Duration {
	if p.last.Equal(p.first) {
		return s.repeatDelay
	}
	return s.holdWindow
}

func (s *InputState) heldAt(p keyPress, at time.Time) bool {
	return !p.last.IsZero() && at.Sub(p.last) < s.window(p)
}

// Press records a press (or repeat) of k at time at.
func (s *InputState) Press(k Key, at time.Time) {
	if k <= KeyNone || k >= keyCount {
		return
	}
	p := s.keys[k]
	if !s.heldAt(p, at) {
		p.first = at
	}
	p.last = at
	s.keys[k] = p
}

// Release forgets the held state of k immediately.
func (s *InputState) Release(k Key) {
	if k <= KeyNone || k >= keyCount {
		return
	}
	s.keys[k] = keyPress{}
}

// Trigger records a press of the key bound to action a at time at. The action
// is queued only after the key has been quiet for the repeat delay, so
// auto-repeat of a held key does not fire it again.
func (s *InputState) Trigger(a Action, at time.Time) {
	if a == ActionNone {
		return
	}
	last, held := s.actionHeld[a]
	s.actionHeld[a] = at
	if held && at.Sub(last) < s.repeatDelay {
		return
	}
	s.events = append(s.events, a)
}

// Frame returns the input view for a frame starting at now and drains the
// queued actions so they are delivered exactly once.
func (s *InputState) Frame(now time.Time) InputFrame {
	var f InputFrame
	for k := KeyNone + 1; k < keyCount; k++ {
		f.held[k] = s.heldAt(s.keys[k], now)
	}
	f.events = s.events
	s.events = nil
	return f
}

// Reset drops all held keys and pending actions.
func (s *InputState) Reset() {
	s.keys = [keyCount]keyPress{}
	s.events = nil
	for a := range s.actionHeld {
		delete(s.actionHeld, a)
	}
}
