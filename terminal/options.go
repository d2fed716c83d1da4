package terminal

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
)

// Options configures a Session
type Options struct {
	// HandleResize installs the resize notification that feeds SizeChanged
	HandleResize bool

	// Async decodes input on a background poller; ReadKey then pops from its queue
	Async bool

	// In and Out default to os.Stdin and os.Stdout
	In  io.Reader
	Out io.Writer

	// Encoding of the terminal streams; nil means UTF-8
	Encoding encoding.Encoding

	// Binding defaults to NewBinding on In when In is a file
	Binding Binding

	// PollInterval of the async poller (default: DefaultPollInterval)
	PollInterval time.Duration

	// ColorHelper is the capability query command (default: DefaultColorHelper)
	ColorHelper string

	// Logger defaults to a no-op logger
	Logger *zap.Logger
}

// DefaultOptions returns options for a synchronous session on stdin/stdout
// with resize handling enabled
func DefaultOptions() Options {
	return Options{
		HandleResize: true,
		In:           os.Stdin,
		Out:          os.Stdout,
	}
}

// withDefaults fills unset fields
func (o Options) withDefaults() Options {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Binding == nil {
		f, _ := o.In.(*os.File)
		o.Binding = NewBinding(f)
	}
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.ColorHelper == "" {
		o.ColorHelper = DefaultColorHelper
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
