//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// resizeWatcher delivers SIGWINCH to a callback
type resizeWatcher struct {
	fn     func()
	sigCh  chan os.Signal
	stopCh chan struct{}
	doneCh chan struct{}
	once   sync.Once
}

func newResizeWatcher(fn func()) *resizeWatcher {
	return &resizeWatcher{
		fn:     fn,
		sigCh:  make(chan os.Signal, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// start begins listening for SIGWINCH
func (r *resizeWatcher) start() {
	signal.Notify(r.sigCh, syscall.SIGWINCH)
	go r.watchLoop()
}

// stop unregisters the signal and waits for the loop to exit
func (r *resizeWatcher) stop() {
	r.once.Do(func() {
		signal.Stop(r.sigCh)
		close(r.stopCh)
		<-r.doneCh
	})
}

func (r *resizeWatcher) watchLoop() {
	defer close(r.doneCh)

	for {
		select {
		case <-r.stopCh:
			return
		case <-r.sigCh:
			r.fn()
		}
	}
}
