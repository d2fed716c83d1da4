//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func drain(p *poller, want int) []KeyStroke {
	var got []KeyStroke
	deadline := time.Now().Add(2 * time.Second)
	for len(got) < want && time.Now().Before(deadline) {
		if ks, ok := p.next(); ok {
			got = append(got, ks)
			continue
		}
		time.Sleep(time.Millisecond)
	}
	return got
}

func TestPollerQueuesInOrder(t *testing.T) {
	r := newKeyReader(newChunkReader("x", "\x1bOP", "\x1b[5~", "\x1bq"), nil)
	p := newPoller(r, time.Millisecond, zap.NewNop())
	p.start()
	defer p.stop()

	got := drain(p, 4)
	assert.Equal(t, []KeyStroke{
		{Char: 'x', Type: KeyCharacter},
		{Type: KeyF1},
		{Type: KeyPageUp},
		{Char: 'q', Type: KeyCharacter, Alt: true},
	}, got)
}

func TestPollerSkipsUndecodableRuns(t *testing.T) {
	r := newKeyReader(newChunkReader("\x1b[999~", "z"), nil)
	p := newPoller(r, time.Millisecond, zap.NewNop())
	p.start()
	defer p.stop()

	got := drain(p, 1)
	require.Len(t, got, 1)
	assert.True(t, got[0].IsChar('z'))
}

func TestPollerEOF(t *testing.T) {
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	defer pr.Close()

	r := newKeyReader(pr, nil)
	p := newPoller(r, time.Millisecond, zap.NewNop())
	p.start()

	_, err = pw.Write([]byte("k"))
	require.NoError(t, err)
	require.NoError(t, pw.Close())

	got := drain(p, 2)
	require.Len(t, got, 2)
	assert.True(t, got[0].IsChar('k'))
	assert.Equal(t, KeyEOF, got[1].Type)

	// Loop has exited on its own; stop only collects it
	assert.NoError(t, p.stop())
	_, ok := p.next()
	assert.False(t, ok)
}

// stuckReader claims data is available but blocks in Read until released
type stuckReader struct {
	release chan struct{}
}

func (s stuckReader) Read([]byte) (int, error) {
	<-s.release
	return 0, io.EOF
}

func (s stuckReader) Len() int { return 1 }

func TestPollerStopAbandonsBlockedRead(t *testing.T) {
	src := stuckReader{release: make(chan struct{})}
	defer close(src.release)

	p := newPoller(newKeyReader(src, nil), time.Millisecond, zap.NewNop())
	p.start()
	time.Sleep(20 * time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- p.stop() }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, errPollerStuck)
	case <-time.After(2 * time.Second):
		t.Fatal("stop waited on a blocked read")
	}
}

func TestPollerStop(t *testing.T) {
	p := newPoller(newKeyReader(newChunkReader(), nil), 0, zap.NewNop())
	assert.Equal(t, DefaultPollInterval, p.interval)

	assert.NoError(t, p.stop(), "stop before start")

	p.start()
	assert.NoError(t, p.stop())
	assert.NoError(t, p.stop(), "second stop")
}
