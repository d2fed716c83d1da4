package terminal

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding"
)

// keyReader assembles key runs from the input stream.
// A run is the first rune plus whatever arrived with it, up to maxRun.
type keyReader struct {
	mu    sync.Mutex
	src   *bufio.Reader
	ready func() bool // reports pending input below the buffer
}

// newKeyReader wraps in, decoding it from enc when enc is not nil
func newKeyReader(in io.Reader, enc encoding.Encoding) *keyReader {
	r := &keyReader{ready: readinessOf(in)}
	if enc != nil {
		in = enc.NewDecoder().Reader(in)
	}
	r.src = bufio.NewReader(in)
	return r
}

// readinessOf picks a non-blocking availability check for in
func readinessOf(in io.Reader) func() bool {
	switch v := in.(type) {
	case *os.File:
		fd := int(v.Fd())
		return func() bool { return fdReadable(fd) }
	case interface{ Len() int }:
		// bytes.Reader, bytes.Buffer, strings.Reader
		return func() bool { return v.Len() > 0 }
	default:
		return func() bool { return false }
	}
}

// pending reports whether a whole rune can be read without blocking.
// While the buffer holds only the start of a multi-byte rune, it pulls
// what the source already has and reports false if the rune is still cut.
func (r *keyReader) pending() bool {
	for !r.runeBuffered() {
		if !r.ready() {
			return false
		}
		// One underlying read: the source is ready, so this does not wait
		if _, err := r.src.Peek(r.src.Buffered() + 1); err != nil {
			// EOF or a read error surfaces from readRun
			return true
		}
	}
	return true
}

// runeBuffered reports whether the buffer starts with a complete rune
func (r *keyReader) runeBuffered() bool {
	n := r.src.Buffered()
	if n == 0 {
		return false
	}
	b, err := r.src.Peek(n)
	if err != nil {
		return false
	}
	return utf8.FullRune(b)
}

// readKey reads one run and decodes it.
// Non-blocking calls return false immediately when no input is pending.
func (r *keyReader) readKey(blocking bool) (KeyStroke, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !blocking && !r.pending() {
		return KeyStroke{}, false, nil
	}

	run, err := r.readRun()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return KeyStroke{Type: KeyEOF}, true, nil
		}
		return KeyStroke{}, false, err
	}

	ks, ok := Decode(run)
	return ks, ok, nil
}

// readRun blocks for the first rune, then drains buffered runes up to maxRun.
// A cut rune at the end of the buffer is left for the next run.
func (r *keyReader) readRun() ([]rune, error) {
	run := make([]rune, 0, maxRun)

	c, _, err := r.src.ReadRune()
	if err != nil {
		return nil, err
	}
	run = append(run, c)

	for len(run) < maxRun && r.runeBuffered() {
		c, _, err = r.src.ReadRune()
		if err != nil {
			// Keep what was read; the error resurfaces on the next read
			break
		}
		run = append(run, c)
	}
	return run, nil
}
