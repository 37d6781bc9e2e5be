package session

import (
	"fmt"
	"slices"

	serrors "git.home.luguber.info/inful/scratch/internal/errors"
)

// State is a stage of a scratch session.
type State int

const (
	StateCreated State = iota
	StateEditing
	StateDeciding
	StateSaving
	StateDiscarding
	StateCleanup
	StateTerminal
)

var stateNames = map[State]string{
	StateCreated:    "created",
	StateEditing:    "editing",
	StateDeciding:   "deciding",
	StateSaving:     "saving",
	StateDiscarding: "discarding",
	StateCleanup:    "cleanup",
	StateTerminal:   "terminal",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Every working state may fall through to cleanup on failure.
var transitions = map[State][]State{
	StateCreated:    {StateEditing, StateCleanup},
	StateEditing:    {StateDeciding, StateCleanup},
	StateDeciding:   {StateSaving, StateDiscarding, StateCleanup},
	StateSaving:     {StateCleanup},
	StateDiscarding: {StateCleanup},
	StateCleanup:    {StateTerminal},
}

// CanTransition reports whether moving from one state to another is allowed.
func CanTransition(from, to State) bool {
	return slices.Contains(transitions[from], to)
}

func invalidTransition(from, to State) error {
	return serrors.InternalError(fmt.Sprintf("invalid session transition %s -> %s", from, to), nil)
}
