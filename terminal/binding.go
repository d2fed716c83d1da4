package terminal

// Binding abstracts the platform terminal calls a Session depends on.
// All fallible calls return the underlying OS error; the Session wraps
// them as *OSCallError.
type Binding interface {
	// IsTTY reports whether the input is an interactive terminal
	IsTTY() bool

	// GetAttrs returns a snapshot of the current terminal attributes
	GetAttrs() (*Attrs, error)

	// SetAttrs installs attributes immediately
	SetAttrs(a *Attrs) error

	// WindowSize queries the current window dimensions
	WindowSize() (WindowSize, error)

	// OnResize registers fn to run on every window resize notification.
	// The returned stop function unregisters it and is safe to call twice.
	OnResize(fn func()) (stop func())
}

// WindowSize is a terminal size in character cells
type WindowSize struct {
	Rows    int
	Columns int
}
