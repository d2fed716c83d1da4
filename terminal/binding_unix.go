//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Attrs is a snapshot of termios settings
type Attrs struct {
	termios unix.Termios
}

// raw derives raw-mode attributes, leaving the receiver untouched
func (a Attrs) raw() Attrs {
	t := a.termios
	t.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Iflag &^= unix.IXON | unix.IXANY | unix.ICRNL | unix.ISTRIP
	t.Oflag &^= unix.OPOST
	return Attrs{termios: t}
}

// fdBinding implements Binding over a terminal file descriptor
type fdBinding struct {
	fd int
}

// NewBinding returns the platform binding for f.
// A nil file yields a binding that is never a terminal.
func NewBinding(f *os.File) Binding {
	if f == nil {
		return &fdBinding{fd: -1}
	}
	return &fdBinding{fd: int(f.Fd())}
}

func (b *fdBinding) IsTTY() bool {
	return b.fd >= 0 && term.IsTerminal(b.fd)
}

func (b *fdBinding) GetAttrs() (*Attrs, error) {
	t, err := unix.IoctlGetTermios(b.fd, ioctlReadTermios)
	if err != nil {
		return nil, err
	}
	return &Attrs{termios: *t}, nil
}

func (b *fdBinding) SetAttrs(a *Attrs) error {
	t := a.termios
	return unix.IoctlSetTermios(b.fd, ioctlWriteTermios, &t)
}

// WindowSize uses TIOCGWINSZ; x/sys/unix carries the per-platform request code
func (b *fdBinding) WindowSize() (WindowSize, error) {
	ws, err := unix.IoctlGetWinsize(b.fd, unix.TIOCGWINSZ)
	if err != nil {
		return WindowSize{}, err
	}
	return WindowSize{Rows: int(ws.Row), Columns: int(ws.Col)}, nil
}

func (b *fdBinding) OnResize(fn func()) func() {
	w := newResizeWatcher(fn)
	w.start()
	return w.stop
}

// fdReadable reports whether a read on fd would not block
func fdReadable(fd int) bool {
	fds := []unix.PollFd{
		{Fd: int32(fd), Events: unix.POLLIN},
	}
	n, err := unix.Poll(fds, 0)
	return err == nil && n > 0
}

// resetTerminalMode attempts to restore terminal to cooked mode
// Best-effort for crash recovery; errors ignored
func resetTerminalMode() {
	// Try to restore via /dev/tty (works even if stdin redirected)
	if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		defer tty.Close()
		fd := int(tty.Fd())
		if t, err := unix.IoctlGetTermios(fd, ioctlReadTermios); err == nil {
			t.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
			t.Iflag |= unix.ICRNL | unix.IXON
			t.Oflag |= unix.OPOST
			unix.IoctlSetTermios(fd, ioctlWriteTermios, t)
		}
	}
}
