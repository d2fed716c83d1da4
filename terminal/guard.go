package terminal

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"

	"go.uber.org/zap"
)

// exitSignals terminate the process; the guard restores the terminal first.
// SIGQUIT is left to the runtime so it still dumps goroutines.
var exitSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}

// exitFunc and crashOut are swapped in tests
var (
	exitFunc           = os.Exit
	crashOut io.Writer = os.Stderr
)

// exitGuard restores the terminal when the process is told to terminate
type exitGuard struct {
	restore func() error
	logger  *zap.Logger

	sigCh  chan os.Signal
	stopCh chan struct{}
	once   sync.Once
}

func newExitGuard(restore func() error, logger *zap.Logger) *exitGuard {
	return &exitGuard{
		restore: restore,
		logger:  logger,
		sigCh:   make(chan os.Signal, 1),
		stopCh:  make(chan struct{}),
	}
}

func (g *exitGuard) start() {
	signal.Notify(g.sigCh, exitSignals...)
	go g.watchLoop()
}

// stop does not wait for the loop: restore itself stops the guard
func (g *exitGuard) stop() {
	g.once.Do(func() {
		signal.Stop(g.sigCh)
		close(g.stopCh)
	})
}

func (g *exitGuard) watchLoop() {
	select {
	case <-g.stopCh:
		return
	case sig := <-g.sigCh:
		g.logger.Debug("termination signal, restoring terminal", zap.Stringer("signal", sig))
		if err := g.restore(); err != nil {
			g.logger.Error("terminal restore on exit failed", zap.Error(err))
		}
		code := 1
		if s, ok := sig.(syscall.Signal); ok {
			code = 128 + int(s)
		}
		exitFunc(code)
	}
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if End() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiCursorShow)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}

// Go runs fn in a new goroutine. A panic in fn restores the terminal,
// prints the stack trace to stderr and exits with status 1.
func (s *Session) Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.crash(r)
			}
		}()
		fn()
	}()
}

func (s *Session) crash(r any) {
	s.logger.Error("goroutine panic, restoring terminal", zap.Any("panic", r))
	if err := s.End(); err != nil {
		s.logger.Error("terminal restore failed", zap.Error(err))
		EmergencyReset(s.opts.Out)
	}

	// Raw mode is gone, plain newlines are safe again
	fmt.Fprintf(crashOut, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\n%s\n", debug.Stack())
	exitFunc(1)
}
