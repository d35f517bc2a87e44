package shell

import (
	"fmt"
	"io"

	"src.hostline.sh/pkg/clipboard"
	"src.hostline.sh/pkg/hostedit"
	"src.hostline.sh/pkg/prog"
	"src.hostline.sh/pkg/settings"
	"src.hostline.sh/pkg/store"
)

// Runtime keeps everything a subprogram needs to serve editing actions.
type Runtime struct {
	Settings  *settings.Provider
	Clipboard clipboard.Clipboard
	Backend   *hostedit.Backend
	// Nil if the database could not be opened.
	Store store.DBStore
}

// InitRuntime loads settings, opens the database and builds a Backend wired to
// them. Problems with the settings file or the database are reported to
// stderr as warnings, and hostline carries on with defaults.
//
// If clipboardKind is non-empty, it overrides the clipboard of the settings
// file; an invalid value is a usage error.
//
// The caller should call Close when the Runtime is no longer needed.
func InitRuntime(stderr io.Writer, p prog.Paths, clipboardKind string) (*Runtime, error) {
	var override settings.ClipboardKind
	if clipboardKind != "" {
		kind, err := settings.ParseClipboardKind(clipboardKind)
		if err != nil {
			return nil, prog.BadUsage(err.Error())
		}
		override = kind
	}

	p, err := ResolvePaths(p)
	if err != nil {
		fmt.Fprintln(stderr, "Warning:", err)
	}

	s := settings.Default()
	if p.Settings != "" {
		loaded, err := settings.Load(p.Settings)
		if err != nil {
			fmt.Fprintln(stderr, "Warning:", err)
			fmt.Fprintln(stderr, "Using default settings.")
		} else {
			s = loaded
		}
	}
	if override != "" {
		s.Clipboard = override
	}

	var st store.DBStore
	if p.DB != "" {
		st, err = store.NewStore(p.DB)
		if err != nil {
			fmt.Fprintln(stderr, "Warning: cannot open database:", err)
			fmt.Fprintln(stderr, "Clip history will not be kept.")
			st = nil
		}
	}

	provider := settings.NewProvider(s)
	cb := newClipboard(s.Clipboard, st)
	logger.Printf("runtime ready: clipboard %v, paste policy %v", s.Clipboard, s.PasteCRLF)
	return &Runtime{
		Settings:  provider,
		Clipboard: cb,
		Backend: hostedit.NewBackend(hostedit.BackendSpec{
			Clipboard: cb,
			PasteCRLF: provider.PasteCRLF,
		}),
		Store: st,
	}, nil
}

func newClipboard(kind settings.ClipboardKind, st store.DBStore) clipboard.Clipboard {
	var backup clipboard.Clipboard = &clipboard.Memory{}
	if st != nil {
		backup = clipboard.FromStore(st)
	}
	switch kind {
	case settings.ClipboardStore:
		return backup
	case settings.ClipboardMemory:
		return &clipboard.Memory{}
	default:
		return clipboard.Fallback(clipboard.System(), backup)
	}
}

// Close releases the resources of the Runtime.
func (rt *Runtime) Close() error {
	if rt.Store == nil {
		return nil
	}
	return rt.Store.Close()
}
