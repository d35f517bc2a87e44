// Package hostedit implements the editing actions a shell front-end adds on
// top of a line editor: clipboard interchange, interrupting the line, directory
// shortcuts and expansion of environment variables under the cursor.
//
// The Backend translates an ActionID into mutations of a LineBuffer and a
// Signal for the host. Key chords are resolved to actions by the host; the
// Backend only declares which chords it wants, through BindInput.
package hostedit

import (
	"errors"
	"fmt"

	"src.hostline.sh/pkg/env"
	"src.hostline.sh/pkg/fsutil"
	"src.hostline.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[hostedit] ")

// BackendSpec specifies the collaborators of a Backend. Nil fields are
// replaced with defaults by NewBackend.
type BackendSpec struct {
	// Clipboard used by paste and copy actions. Defaults to a clipboard that
	// is always unavailable.
	Clipboard Clipboard
	// Returns the current paste policy; called on every paste. Defaults to
	// returning DefaultPasteCRLF.
	PasteCRLF func() PasteCRLF
	// Returns the working directory. Defaults to fsutil.Getwd.
	Getwd func() (string, error)
	// Expands environment variables in a word. Defaults to env.Expand.
	ExpandEnv func(string) (string, error)
}

// Backend handles the actions declared by Bindings.
type Backend struct {
	BackendSpec
}

// NewBackend creates a new Backend from the given spec.
func NewBackend(spec BackendSpec) *Backend {
	if spec.Clipboard == nil {
		spec.Clipboard = noClipboard{}
	}
	if spec.PasteCRLF == nil {
		spec.PasteCRLF = func() PasteCRLF { return DefaultPasteCRLF }
	}
	if spec.Getwd == nil {
		spec.Getwd = fsutil.Getwd
	}
	if spec.ExpandEnv == nil {
		spec.ExpandEnv = env.Expand
	}
	return &Backend{spec}
}

// BindInput registers the chords of all actions in the default group of the
// binder.
func (b *Backend) BindInput(binder Binder) {
	group := binder.DefaultGroup()
	for _, binding := range bindings {
		binder.Bind(group, binding.Chord, binding.Action)
	}
}

// BeginLine is called by the host before a new line is edited.
func (b *Backend) BeginLine(prompt string, ctx Context) {
	logger.Printf("begin line, prompt %q", prompt)
}

// EndLine is called by the host after a line has been submitted.
func (b *Backend) EndLine() {
	logger.Println("end line")
}

// OnInput handles an action. Failures of the clipboard and the OS are absorbed
// and leave the buffer untouched; the only error returned is
// ErrUnknownAction.
func (b *Backend) OnInput(id ActionID, result *Result, ctx Context) error {
	switch id {
	case ActionPaste:
		b.paste(ctx.Buffer)
	case ActionInterrupt:
		interrupt(result, ctx)
	case ActionCopyLine:
		b.copyLine(ctx.Buffer)
	case ActionCopyCwd:
		b.copyCwd()
	case ActionUpDirectory:
		upDirectory(result, ctx.Buffer)
	case ActionExpandEnvVar:
		b.expandEnvVar(ctx.Buffer)
	case ActionInsertParentRef:
		insertParentRef(ctx.Buffer)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownAction, id)
	}
	return nil
}

var errNoClipboard = errors.New("no clipboard")

type noClipboard struct{}

func (noClipboard) Text() (string, error) { return "", errNoClipboard }
func (noClipboard) SetText(string) error { return errNoClipboard }
