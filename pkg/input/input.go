// pkg/input/input.go
package input

import "fmt"

// Action is one of the fixed controls the simulation reads each tick
type Action int

// Available actions
const (
	Forward Action = iota
	Backward
	Left
	Right
	Fire

	actionCount
)

var actionNames = [actionCount]string{
	Forward:  "forward",
	Backward: "backward",
	Left:     "left",
	Right:    "right",
	Fire:     "fire",
}

// String returns the lower-case action name used in config files
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// Actions lists every action in declaration order
func Actions() []Action {
	out := make([]Action, 0, actionCount)
	for a := Forward; a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// ParseAction converts a config name back into an Action
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// MarshalText implements encoding.TextMarshaler so actions can key JSON maps
func (a Action) MarshalText() ([]byte, error) {
	if a < 0 || a >= actionCount {
		return nil, fmt.Errorf("invalid action %d", int(a))
	}
	return []byte(actionNames[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Bindings maps each action to the key codes that trigger it
type Bindings map[Action][]int

// DefaultBindings returns arrow keys plus WASD and space for fire.
// Codes are browser keyCode values.
func DefaultBindings() Bindings {
	return Bindings{
		Forward:  {38, 87},
		Backward: {40, 83},
		Left:     {37, 65},
		Right:    {39, 68},
		Fire:     {32},
	}
}

// Validate rejects codes bound to more than one action
func (b Bindings) Validate() error {
	seen := make(map[int]Action)
	for _, a := range Actions() {
		for _, code := range b[a] {
			if prev, ok := seen[code]; ok {
				return fmt.Errorf("key code %d bound to both %s and %s", code, prev, a)
			}
			seen[code] = a
		}
	}
	return nil
}

// Clone returns a deep copy of the bindings
func (b Bindings) Clone() Bindings {
	if b == nil {
		return nil
	}
	out := make(Bindings, len(b))
	for a, codes := range b {
		out[a] = append([]int(nil), codes...)
	}
	return out
}

// KeyMap resolves key codes to actions
type KeyMap struct {
	codes map[int]Action
}

// NewKeyMap builds a lookup table from bindings
func NewKeyMap(b Bindings) *KeyMap {
	km := &KeyMap{codes: make(map[int]Action)}
	for a, codes := range b {
		for _, code := range codes {
			km.codes[code] = a
		}
	}
	return km
}

// Lookup returns the action bound to code
func (km *KeyMap) Lookup(code int) (Action, bool) {
	a, ok := km.codes[code]
	return a, ok
}

// Inputs is the set of actions currently held down. The simulation only
// reads it; hosts change it through KeyDown and KeyUp. An action stays
// held while any of its keys is down.
type Inputs struct {
	keys    *KeyMap
	down    map[int]bool
	count   [actionCount]int
	pressed [actionCount]bool
}

// NewInputs creates an empty held-key set using the given bindings
func NewInputs(b Bindings) *Inputs {
	return &Inputs{keys: NewKeyMap(b), down: make(map[int]bool)}
}

// IsDown reports whether action is held
func (in *Inputs) IsDown(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return in.pressed[a] || in.count[a] > 0
}

// KeyDown marks the action bound to code as held. Unbound codes are ignored.
func (in *Inputs) KeyDown(code int) bool {
	return in.set(code, true)
}

// KeyUp releases code. The action stays held if another of its keys is down.
func (in *Inputs) KeyUp(code int) bool {
	return in.set(code, false)
}

// Press sets an action directly, bypassing the key map. Releasing also
// lets go of every key bound to the action.
func (in *Inputs) Press(a Action, down bool) {
	if a < 0 || a >= actionCount {
		return
	}
	in.pressed[a] = down
	if down {
		return
	}
	for code := range in.down {
		if bound, _ := in.keys.Lookup(code); bound == a {
			delete(in.down, code)
		}
	}
	in.count[a] = 0
}

// Reset releases every action
func (in *Inputs) Reset() {
	clear(in.down)
	in.count = [actionCount]int{}
	in.pressed = [actionCount]bool{}
}

func (in *Inputs) set(code int, down bool) bool {
	a, ok := in.keys.Lookup(code)
	if !ok {
		return false
	}
	// repeats of a held key and releases of an unheld one change nothing
	if in.down[code] == down {
		return true
	}
	if down {
		in.down[code] = true
		in.count[a]++
	} else {
		delete(in.down, code)
		in.count[a]--
	}
	return true
}
