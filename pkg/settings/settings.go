// Package settings keeps the user-configurable settings of hostline and loads
// them from a YAML file.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
	"src.hostline.sh/pkg/env"
	"src.hostline.sh/pkg/fsutil"
	"src.hostline.sh/pkg/hostedit"
	"src.hostline.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[settings] ")

// ClipboardKind selects the clipboard used by the editing actions.
type ClipboardKind string

// Possible values of ClipboardKind.
const (
	// The OS clipboard, falling back to the store when unavailable.
	ClipboardSystem ClipboardKind = "system"
	// The clip history in the store.
	ClipboardStore ClipboardKind = "store"
	// A clipboard in memory, lost when the program exits.
	ClipboardMemory ClipboardKind = "memory"
)

var clipboardKinds = []ClipboardKind{ClipboardSystem, ClipboardStore, ClipboardMemory}

// ParseClipboardKind parses the name of a ClipboardKind.
func ParseClipboardKind(s string) (ClipboardKind, error) {
	for _, kind := range clipboardKinds {
		if string(kind) == s {
			return kind, nil
		}
	}
	return "", fmt.Errorf("bad clipboard value %q, must be one of %v", s, clipboardKinds)
}

// Settings holds all settings.
type Settings struct {
	PasteCRLF hostedit.PasteCRLF
	Clipboard ClipboardKind
}

// Default returns the settings in effect when nothing is configured.
func Default() Settings {
	return Settings{PasteCRLF: hostedit.DefaultPasteCRLF, Clipboard: ClipboardSystem}
}

// Option describes a setting.
type Option struct {
	Name    string
	Short   string
	Long    string
	Values  []string
	Default string
}

// Options describes all settings, in the order they are documented.
var Options = []Option{
	{
		Name:  "paste_crlf",
		Short: "Strips CR and LF chars on paste",
		Long: "Setting this to delete strips CR and LF characters from text\n" +
			"pasted into the current line; space replaces each run of them\n" +
			"with a single space. unchanged leaves pasted text alone.",
		Values:  hostedit.PasteCRLFNames(),
		Default: hostedit.DefaultPasteCRLF.String(),
	},
	{
		Name:    "clipboard",
		Short:   "Clipboard used by copy and paste",
		Long:    "The store keeps a history of copied text across sessions.",
		Values:  []string{string(ClipboardSystem), string(ClipboardStore), string(ClipboardMemory)},
		Default: string(ClipboardSystem),
	},
}

// Describe writes the documentation of all settings.
func Describe(w io.Writer) {
	for _, opt := range Options {
		fmt.Fprintf(w, "  %s: %s\n", opt.Name, opt.Short)
		fmt.Fprintf(w, "      one of %s (default %s)\n", strings.Join(opt.Values, ", "), opt.Default)
		for _, line := range strings.Split(opt.Long, "\n") {
			fmt.Fprintf(w, "      %s\n", line)
		}
	}
}

// The layout of the settings file. Absent keys keep their defaults.
type file struct {
	PasteCRLF *pasteCRLF `yaml:"paste_crlf"`
	Clipboard *string    `yaml:"clipboard"`
}

type pasteCRLF hostedit.PasteCRLF

func (p *pasteCRLF) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: paste_crlf must be a scalar", node.Line)
	}
	v, err := hostedit.ParsePasteCRLF(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*p = pasteCRLF(v)
	return nil
}

// Parse parses settings from YAML. Unknown keys are errors.
func Parse(data []byte) (Settings, error) {
	s := Default()
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return s, err
	}
	if f.PasteCRLF != nil {
		s.PasteCRLF = hostedit.PasteCRLF(*f.PasteCRLF)
	}
	if f.Clipboard != nil {
		kind, err := ParseClipboardKind(*f.Clipboard)
		if err != nil {
			return s, err
		}
		s.Clipboard = kind
	}
	return s, nil
}

// Load reads settings from a file. A file that does not exist yields the
// default settings.
func Load(fname string) (Settings, error) {
	data, err := os.ReadFile(fname)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Printf("%s does not exist, using defaults", fname)
		return Default(), nil
	} else if err != nil {
		return Default(), err
	}
	s, err := Parse(data)
	if err != nil {
		return s, fmt.Errorf("%s: %w", fname, err)
	}
	return s, nil
}

// Marshal encodes settings in the format read by Parse.
func Marshal(s Settings) ([]byte, error) {
	return yaml.Marshal(map[string]string{
		"paste_crlf": s.PasteCRLF.String(),
		"clipboard":  string(s.Clipboard),
	})
}

// DefaultPath returns the path of the settings file: $HOSTLINE_CONFIG if set,
// otherwise settings.yaml in the configuration directory of hostline.
func DefaultPath() (string, error) {
	if p := os.Getenv(env.HOSTLINE_CONFIG); p != "" {
		return p, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hostline", "settings.yaml"), nil
}

func configDir() (string, error) {
	if dir := os.Getenv(env.XDG_CONFIG_HOME); dir != "" {
		return dir, nil
	}
	if runtime.GOOS == "windows" {
		if dir := os.Getenv(env.APPDATA); dir != "" {
			return dir, nil
		}
	}
	home, err := fsutil.GetHome("")
	if err != nil {
		return "", fmt.Errorf("cannot find configuration directory: %w", err)
	}
	return filepath.Join(home, ".config"), nil
}

// Provider holds the settings of the running process. Settings are read
// whenever they are needed, so changes take effect on the next read. It is
// safe for concurrent use.
type Provider struct {
	mu sync.RWMutex
	s  Settings
}

// NewProvider creates a Provider with initial settings.
func NewProvider(s Settings) *Provider {
	return &Provider{s: s}
}

// PasteCRLF returns the current paste policy.
func (p *Provider) PasteCRLF() hostedit.PasteCRLF {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.s.PasteCRLF
}

// SetPasteCRLF changes the paste policy.
func (p *Provider) SetPasteCRLF(v hostedit.PasteCRLF) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.s.PasteCRLF = v
}

// Settings returns a copy of the current settings.
func (p *Provider) Settings() Settings {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.s
}
