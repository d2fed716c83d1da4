//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import "os"

// Attrs is empty on platforms without termios
type Attrs struct{}

func (a Attrs) raw() Attrs { return a }

// nullBinding reports every call as unsupported
type nullBinding struct{}

// NewBinding returns a binding that is never a terminal on this platform
func NewBinding(*os.File) Binding {
	return nullBinding{}
}

func (nullBinding) IsTTY() bool                     { return false }
func (nullBinding) GetAttrs() (*Attrs, error)       { return nil, ErrPlatformNotSupported }
func (nullBinding) SetAttrs(*Attrs) error           { return ErrPlatformNotSupported }
func (nullBinding) WindowSize() (WindowSize, error) { return WindowSize{}, ErrPlatformNotSupported }
func (nullBinding) OnResize(func()) func()          { return func() {} }

func fdReadable(int) bool { return false }

func resetTerminalMode() {}
