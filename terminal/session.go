package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
)

// Session lifecycle states
const (
	stateNew int32 = iota
	stateActive
	stateRestored
)

// Session owns a terminal for the span between Begin and End:
// raw mode, key input, buffered output and resize tracking.
//
// A Session is used by one caller goroutine; writes, End and the
// resize/exit notifications may run concurrently with it.
type Session struct {
	opts    Options
	binding Binding
	logger  *zap.Logger

	lifeMu   sync.Mutex
	state    atomic.Int32
	original Attrs // captured once by Begin, reinstalled by End

	reader *keyReader
	poller *poller

	outMu   sync.Mutex
	out     *bufio.Writer
	encoder *encoding.Encoder // nil for UTF-8

	resized    atomic.Bool
	stopResize func()
	guard      *exitGuard
}

// New creates a session; the terminal is untouched until Begin
func New(opts Options) *Session {
	opts = opts.withDefaults()

	s := &Session{
		opts:    opts,
		binding: opts.Binding,
		logger:  opts.Logger,
		reader:  newKeyReader(opts.In, opts.Encoding),
		out:     bufio.NewWriterSize(opts.Out, 32768),
	}
	if opts.Encoding != nil {
		s.encoder = encoding.ReplaceUnsupported(opts.Encoding.NewEncoder())
	}
	return s
}

// Begin enters raw mode.
// Fails with ErrNotATerminal, *OSCallError or ErrAlreadyBegun; on failure
// the terminal attributes are left as they were.
func (s *Session) Begin() error {
	s.lifeMu.Lock()
	defer s.lifeMu.Unlock()

	if s.state.Load() != stateNew {
		return ErrAlreadyBegun
	}
	if !s.binding.IsTTY() {
		return ErrNotATerminal
	}

	orig, err := s.binding.GetAttrs()
	if err != nil {
		return osCallError("tcgetattr", err)
	}
	raw := orig.raw()
	if err := s.binding.SetAttrs(&raw); err != nil {
		return osCallError("tcsetattr", err)
	}
	s.original = *orig

	s.guard = newExitGuard(s.End, s.logger)
	s.guard.start()

	if s.opts.HandleResize {
		s.stopResize = s.binding.OnResize(s.onResize)
	}
	if s.opts.Async {
		s.poller = newPoller(s.reader, s.opts.PollInterval, s.logger)
		s.poller.start()
	}

	s.state.Store(stateActive)
	s.logger.Debug("terminal session begun",
		zap.Bool("async", s.opts.Async),
		zap.Bool("handle_resize", s.opts.HandleResize))
	return nil
}

// End resets rendition, clears the screen, shows the cursor and reinstalls
// the attributes captured by Begin. Safe to call multiple times.
func (s *Session) End() error {
	s.lifeMu.Lock()
	defer s.lifeMu.Unlock()

	if s.state.Load() != stateActive {
		return nil
	}
	// Writers see ErrNotInitialized from here on
	s.state.Store(stateRestored)

	var errs []error

	if s.poller != nil {
		if err := s.poller.stop(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.stopResize != nil {
		s.stopResize()
	}
	s.guard.stop()

	s.outMu.Lock()
	s.out.Write(csiSGR0)
	s.out.Write(csiClear)
	s.out.Write(csiCursorShow)
	s.out.Write(csiHome)
	if err := s.out.Flush(); err != nil {
		errs = append(errs, fmt.Errorf("flush output: %w", err))
	}
	s.outMu.Unlock()

	if err := s.binding.SetAttrs(&s.original); err != nil {
		errs = append(errs, osCallError("tcsetattr", err))
	}

	s.logger.Debug("terminal session ended")
	return errors.Join(errs...)
}

// Recover restores the terminal if the calling goroutine is panicking,
// then re-panics. Use as: defer s.Recover()
func (s *Session) Recover() {
	r := recover()
	if r == nil {
		return
	}
	s.logger.Error("panic, restoring terminal", zap.Any("panic", r))
	if err := s.End(); err != nil {
		s.logger.Error("terminal restore failed", zap.Error(err))
		EmergencyReset(s.opts.Out)
	}
	panic(r)
}

// Active reports whether the session is between Begin and End
func (s *Session) Active() bool {
	return s.state.Load() == stateActive
}

// ReadKey returns the next keystroke.
// In async mode it pops the oldest queued key and never blocks. In sync mode
// a non-blocking call returns false when no input is pending; a blocking call
// waits for input. A run that is not a recognizable key also returns false.
func (s *Session) ReadKey(blocking bool) (KeyStroke, bool, error) {
	if s.state.Load() != stateActive {
		return KeyStroke{}, false, ErrNotInitialized
	}
	if s.poller != nil {
		ks, ok := s.poller.next()
		return ks, ok, nil
	}
	return s.reader.readKey(blocking)
}

// SizeChanged reports whether a resize happened since the previous call
func (s *Session) SizeChanged() bool {
	return s.resized.Swap(false)
}

func (s *Session) onResize() {
	s.resized.Store(true)
	s.logger.Debug("terminal resized")
}

// TerminalSize queries the current window size
func (s *Session) TerminalSize() (WindowSize, error) {
	ws, err := s.binding.WindowSize()
	if err != nil {
		return WindowSize{}, osCallError("ioctl(TIOCGWINSZ)", err)
	}
	return ws, nil
}

// QueryColors returns the supported color count, or -1 with an error
// wrapping ErrCapabilityQuery
func (s *Session) QueryColors(ctx context.Context) (int, error) {
	return QueryColors(ctx, s.opts.ColorHelper)
}

// Colors returns the supported color count, -1 when unknown
func (s *Session) Colors(ctx context.Context) int {
	n, err := s.QueryColors(ctx)
	if err != nil {
		s.logger.Debug("color query failed", zap.Error(err))
	}
	return n
}

// HasColor reports whether the terminal supports color
func (s *Session) HasColor(ctx context.Context) bool {
	return s.Colors(ctx) != -1
}

// write runs fn against the output buffer under the output lock
func (s *Session) write(fn func(w *bufio.Writer) error) error {
	if s.state.Load() != stateActive {
		return ErrNotInitialized
	}
	s.outMu.Lock()
	defer s.outMu.Unlock()
	return fn(s.out)
}

// writeText encodes str with the session encoding; caller holds outMu
func (s *Session) writeText(w *bufio.Writer, str string) error {
	if s.encoder == nil {
		_, err := w.WriteString(str)
		return err
	}
	b, err := s.encoder.String(str)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = w.WriteString(b)
	return err
}

func (s *Session) writeStyled(w *bufio.Writer, str string, rs []Rendition) error {
	for _, r := range rs {
		w.WriteString(r.seq)
	}
	if err := s.writeText(w, str); err != nil {
		return err
	}
	_, err := w.Write(csiSGR0)
	return err
}

// Put buffers a single character
func (s *Session) Put(r rune) error {
	return s.PutString(string(r))
}

// PutString buffers text
func (s *Session) PutString(str string) error {
	return s.write(func(w *bufio.Writer) error {
		return s.writeText(w, str)
	})
}

// PutStyled buffers text wrapped in the renditions and a full reset
func (s *Session) PutStyled(str string, rs ...Rendition) error {
	return s.write(func(w *bufio.Writer) error {
		return s.writeStyled(w, str, rs)
	})
}

// PutAt moves the cursor (0-indexed) and buffers styled text
func (s *Session) PutAt(row, col int, str string, rs ...Rendition) error {
	return s.write(func(w *bufio.Writer) error {
		writeCursorPos(w, row, col)
		return s.writeStyled(w, str, rs)
	})
}

// SetTextRendition applies renditions to subsequent output
func (s *Session) SetTextRendition(rs ...Rendition) error {
	return s.write(func(w *bufio.Writer) error {
		_, err := w.WriteString(Join(rs...))
		return err
	})
}

// ResetTextRendition restores default colors and attributes
func (s *Session) ResetTextRendition() error {
	return s.SetTextRendition(ResetAll)
}

// SetCursorPosition moves the cursor (0-indexed)
func (s *Session) SetCursorPosition(row, col int) error {
	return s.write(func(w *bufio.Writer) error {
		writeCursorPos(w, row, col)
		return nil
	})
}

// SetCursorVisibility shows or hides the cursor
func (s *Session) SetCursorVisibility(visible bool) error {
	return s.write(func(w *bufio.Writer) error {
		if visible {
			_, err := w.Write(csiCursorShow)
			return err
		}
		_, err := w.Write(csiCursorHide)
		return err
	})
}

// SetTitle sets the window title and flushes
func (s *Session) SetTitle(title string) error {
	return s.write(func(w *bufio.Writer) error {
		writeTitle(w, title)
		return w.Flush()
	})
}

// Clear erases the screen; the cursor does not move
func (s *Session) Clear() error {
	return s.write(func(w *bufio.Writer) error {
		_, err := w.Write(csiClear)
		return err
	})
}

// SetTerminalSize asks the terminal to resize its window.
// Many terminals ignore it or only change the reported size; verify with TerminalSize.
func (s *Session) SetTerminalSize(rows, cols int) error {
	return s.write(func(w *bufio.Writer) error {
		writeResizeRequest(w, rows, cols)
		return nil
	})
}

// Flush writes buffered output to the terminal
func (s *Session) Flush() error {
	return s.write(func(w *bufio.Writer) error {
		return w.Flush()
	})
}

var _ io.Writer = (*sessionWriter)(nil)

// sessionWriter adapts PutString to io.Writer
type sessionWriter struct {
	s *Session
}

func (sw sessionWriter) Write(p []byte) (int, error) {
	if err := sw.s.PutString(string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Writer returns an io.Writer that buffers through PutString
func (s *Session) Writer() io.Writer {
	return sessionWriter{s: s}
}
