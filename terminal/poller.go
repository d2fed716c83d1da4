package terminal

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultPollInterval is the async poll period (200 polls per second)
const DefaultPollInterval = 5 * time.Millisecond

// keyQueueSize bounds decoded keys waiting for ReadKey in async mode
const keyQueueSize = 256

// pollerStopTimeout bounds how long End waits for the poll loop
const pollerStopTimeout = 250 * time.Millisecond

// errPollerStuck reports a poll loop that did not exit in time
var errPollerStuck = errors.New("input poller did not stop")

// poller decodes input in the background and queues keystrokes in FIFO order
type poller struct {
	reader   *keyReader
	interval time.Duration
	logger   *zap.Logger

	keys   chan KeyStroke
	cancel context.CancelFunc
	group  *errgroup.Group
}

func newPoller(reader *keyReader, interval time.Duration, logger *zap.Logger) *poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &poller{
		reader:   reader,
		interval: interval,
		logger:   logger,
		keys:     make(chan KeyStroke, keyQueueSize),
	}
}

// start launches the poll loop
func (p *poller) start() {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.group, ctx = errgroup.WithContext(ctx)
	p.group.Go(func() error {
		return p.pollLoop(ctx)
	})
	p.logger.Debug("input poller started", zap.Duration("interval", p.interval))
}

// stop cancels the loop and waits up to pollerStopTimeout for it to exit.
// A loop stuck in a read is abandoned so terminal restore can proceed.
func (p *poller) stop() error {
	if p.cancel == nil {
		return nil
	}
	p.cancel()
	p.cancel = nil

	done := make(chan error, 1)
	go func() {
		done <- p.group.Wait()
	}()

	select {
	case err := <-done:
		p.logger.Debug("input poller stopped", zap.Error(err))
		return err
	case <-time.After(pollerStopTimeout):
		p.logger.Error("input poller blocked in read, abandoning it")
		return errPollerStuck
	}
}

// next pops the oldest queued keystroke without blocking
func (p *poller) next() (KeyStroke, bool) {
	select {
	case ks := <-p.keys:
		return ks, true
	default:
		return KeyStroke{}, false
	}
}

// pollLoop reads input events until the context is cancelled
func (p *poller) pollLoop(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("input poller crashed",
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
			err = fmt.Errorf("input poller panic: %v", r)
		}
	}()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		ks, ok, err := p.reader.readKey(false)
		if err != nil {
			p.logger.Error("input poller read failed", zap.Error(err))
			return fmt.Errorf("poll input: %w", err)
		}
		if !ok {
			continue
		}

		select {
		case p.keys <- ks:
		case <-ctx.Done():
			return nil
		}

		if ks.Type == KeyEOF {
			// Nothing follows end of input
			return nil
		}
	}
}
