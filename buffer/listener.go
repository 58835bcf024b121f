// Package buffer: the Listener, adapting sample streams onto Ingest.
package buffer

import (
	"context"
	"errors"

	"github.com/maretto/framebuf/transform"
)

// ErrNilBuffer is returned when a Listener is built without a Buffer.
var ErrNilBuffer = errors.New("buffer: listener needs a buffer")

// Listener drains two channel-shaped streams of sample batches — one
// dynamic, one static — into a Buffer. The transport that fills the
// channels stays outside this module.
type Listener struct {
	buf     *Buffer
	dynamic <-chan []transform.TransformStamped
	static  <-chan []transform.TransformStamped
}

// NewListener wires the two streams to buf. Either channel may be nil
// if the process only consumes one stream.
func NewListener(buf *Buffer, dynamic, static <-chan []transform.TransformStamped) (*Listener, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	return &Listener{buf: buf, dynamic: dynamic, static: static}, nil
}

// Run ingests batches until ctx is done or both channels are closed.
// It returns ctx.Err() on cancellation and nil on stream exhaustion.
func (l *Listener) Run(ctx context.Context) error {
	dynamic, static := l.dynamic, l.static
	for dynamic != nil || static != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case batch, ok := <-dynamic:
			if !ok {
				dynamic = nil
				continue
			}
			l.buf.Ingest(batch, false)
		case batch, ok := <-static:
			if !ok {
				static = nil
				continue
			}
			l.buf.Ingest(batch, true)
		}
	}
	return nil
}
