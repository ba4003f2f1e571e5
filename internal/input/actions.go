package input

// Action is a semantic driving command, decoupled from device key codes.
type Action uint8

const (
	ActionForward Action = iota
	ActionBackward
	ActionLeft
	ActionRight
	ActionCount
)

// DefaultKeyLimit is the most actions that may be held at once.
const DefaultKeyLimit = 3

var actionNames = [ActionCount]string{
	ActionForward:  "forward",
	ActionBackward: "backward",
	ActionLeft:     "left",
	ActionRight:    "right",
}

func (a Action) String() string {
	if !a.Valid() {
		return "unknown"
	}
	return actionNames[a]
}

// Valid reports whether a is one of the four driving actions.
func (a Action) Valid() bool {
	return a < ActionCount
}

// ParseAction maps a config name ("forward", "left", ...) to its Action.
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return ActionCount, false
}

// ActionSet is the pressed state of every action, indexed by Action.
type ActionSet [ActionCount]bool

// Has reports whether a is pressed in the set.
func (s ActionSet) Has(a Action) bool {
	return a.Valid() && s[a]
}

// Count returns how many actions are pressed.
func (s ActionSet) Count() int {
	n := 0
	for _, pressed := range s {
		if pressed {
			n++
		}
	}
	return n
}

// Aggregator is the only writer of the held-action state. Key handlers
// feed it transitions, the movement step samples it once per tick.
type Aggregator struct {
	held ActionSet
}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// SetAction records a key transition. Actions outside the four are ignored.
func (a *Aggregator) SetAction(action Action, pressed bool) {
	if !action.Valid() {
		return
	}
	a.held[action] = pressed
}

// Pressed reports whether the action is currently held.
func (a *Aggregator) Pressed(action Action) bool {
	return a.held.Has(action)
}

// CountPressed returns the number of held actions.
func (a *Aggregator) CountPressed() int {
	return a.held.Count()
}

// ResetAll releases every action.
func (a *Aggregator) ResetAll() {
	a.held = ActionSet{}
}

// Snapshot returns a copy of the held state for use through one tick.
func (a *Aggregator) Snapshot() ActionSet {
	return a.held
}
