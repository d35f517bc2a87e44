package hostedit

import (
	"errors"
	"fmt"
)

// ActionID identifies an editing action handled by the Backend.
type ActionID uint8

// All actions handled by the Backend.
const (
	ActionPaste ActionID = iota
	ActionInterrupt
	ActionCopyLine
	ActionCopyCwd
	ActionUpDirectory
	ActionExpandEnvVar
	ActionInsertParentRef

	numActions
)

// ErrUnknownAction is returned when dispatching or parsing an action that
// does not exist.
var ErrUnknownAction = errors.New("unknown action")

var actionNames = [numActions]string{
	ActionPaste:           "paste",
	ActionInterrupt:       "interrupt",
	ActionCopyLine:        "copy-line",
	ActionCopyCwd:         "copy-cwd",
	ActionUpDirectory:     "go-up-directory",
	ActionExpandEnvVar:    "expand-env-var",
	ActionInsertParentRef: "insert-parent-ref",
}

// Actions returns all the actions, in declaration order.
func Actions() []ActionID {
	ids := make([]ActionID, numActions)
	for i := range ids {
		ids[i] = ActionID(i)
	}
	return ids
}

func (id ActionID) String() string {
	if id < numActions {
		return actionNames[id]
	}
	return fmt.Sprintf("action(%d)", uint8(id))
}

// ParseActionID parses the name of an action, as returned by String.
func ParseActionID(name string) (ActionID, error) {
	for i, s := range actionNames {
		if s == name {
			return ActionID(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}
