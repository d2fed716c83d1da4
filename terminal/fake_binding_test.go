//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"io"
	"sync"

	"golang.org/x/sys/unix"
)

// cookedAttrs is a typical interactive termios
func cookedAttrs() Attrs {
	var t unix.Termios
	t.Iflag = unix.ICRNL | unix.IXON | unix.IXANY | unix.ISTRIP | unix.BRKINT
	t.Oflag = unix.OPOST | unix.ONLCR
	t.Cflag = unix.CS8 | unix.CREAD
	t.Lflag = unix.ECHO | unix.ECHOE | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VINTR] = 3
	return Attrs{termios: t}
}

// fakeBinding records terminal calls in memory
type fakeBinding struct {
	mu sync.Mutex

	tty     bool
	current Attrs
	getErr  error
	setErr  error
	size    WindowSize
	sizeErr error

	getCalls int
	setCalls int

	resizeFn      func()
	resizeStopped bool
}

func newFakeBinding() *fakeBinding {
	return &fakeBinding{
		tty:     true,
		current: cookedAttrs(),
		size:    WindowSize{Rows: 24, Columns: 80},
	}
}

func (f *fakeBinding) IsTTY() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tty
}

func (f *fakeBinding) GetAttrs() (*Attrs, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	a := f.current
	return &a, nil
}

func (f *fakeBinding) SetAttrs(a *Attrs) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.current = *a
	return nil
}

func (f *fakeBinding) WindowSize() (WindowSize, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.size, f.sizeErr
}

func (f *fakeBinding) OnResize(fn func()) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resizeFn = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.resizeStopped = true
	}
}

// fireResize simulates a SIGWINCH
func (f *fakeBinding) fireResize() {
	f.mu.Lock()
	fn := f.resizeFn
	f.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (f *fakeBinding) attrs() Attrs {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

// chunkReader returns one chunk per Read, like a terminal delivering one key per read
type chunkReader struct {
	mu     sync.Mutex
	chunks [][]byte
}

func newChunkReader(chunks ...string) *chunkReader {
	c := &chunkReader{}
	for _, s := range chunks {
		c.chunks = append(c.chunks, []byte(s))
	}
	return c
}

func (c *chunkReader) Read(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, c.chunks[0])
	if n < len(c.chunks[0]) {
		c.chunks[0] = c.chunks[0][n:]
	} else {
		c.chunks = c.chunks[1:]
	}
	return n, nil
}

// Len reports unread bytes, which makes the reader pollable
func (c *chunkReader) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, ch := range c.chunks {
		n += len(ch)
	}
	return n
}
