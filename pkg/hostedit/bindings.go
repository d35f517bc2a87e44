package hostedit

// Binding associates a key chord with an action.
//
// Chords use readline notation: ^x is Ctrl-x, \M- is the Meta (Alt) prefix,
// \M-C- is Meta-Ctrl, and \e is a literal escape.
type Binding struct {
	Chord  string
	Action ActionID
}

var bindings = []Binding{
	{`^v`, ActionPaste},
	{`^c`, ActionInterrupt},
	{`\M-C-c`, ActionCopyLine},
	{`\M-C`, ActionCopyCwd},
	{`\eO5`, ActionUpDirectory},
	{`\M-C-e`, ActionExpandEnvVar},
	{`\M-a`, ActionInsertParentRef},
}

// Bindings returns the chords the Backend registers in BindInput, in
// registration order.
func Bindings() []Binding {
	return append([]Binding(nil), bindings...)
}
