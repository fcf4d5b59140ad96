package nrp

import (
	"bufio"
	"errors"
	"io"
	"net"

	"github.com/brindle/wingnrp/internal/protocol"
)

// minBufferSize is the smallest read-ahead chunk the source will
// request from the transport, amortising syscalls per §4.1.
const minBufferSize = 2 * 1024

// KeepAliveFunc is invoked whenever the source is about to block on an
// empty buffer, or has just observed a read timeout. It is the source's
// only hook into connection-level liveness; it never blocks for long
// and never returns a fatal error for a plain "nothing to send yet".
type KeepAliveFunc func() error

// Source owns the blocking read side of the transport. NextByte returns
// one byte at a time; timeouts are transparently retried after invoking
// KeepAlive, so callers only ever see ErrConnectionClosed, an IoError,
// or an error returned by the keep-alive hook itself.
type Source struct {
	r        *bufio.Reader
	keepAlive KeepAliveFunc
}

// NewSource wraps r in a buffered reader sized minBufferSize. keepAlive
// may be nil, in which case timeouts are retried with no side effect. r
// is typically a net.Conn wrapped by the connection package so that
// read deadlines can drive the timeout branch below.
func NewSource(r io.Reader, keepAlive KeepAliveFunc) *Source {
	return NewSourceSize(r, minBufferSize, keepAlive)
}

// NewSourceSize is NewSource with an explicit buffer size; bufSize
// below minBufferSize is raised to minBufferSize.
func NewSourceSize(r io.Reader, bufSize int, keepAlive KeepAliveFunc) *Source {
	if bufSize < minBufferSize {
		bufSize = minBufferSize
	}
	return &Source{
		r:         bufio.NewReaderSize(r, bufSize),
		keepAlive: keepAlive,
	}
}

// NextByte returns the next raw byte from the transport, transparently
// retrying on receive timeout after giving the keep-alive hook a chance
// to fire.
func (s *Source) NextByte() (byte, error) {
	for {
		if s.r.Buffered() == 0 {
			if err := s.fireKeepAlive(); err != nil {
				return 0, err
			}
		}

		b, err := s.r.ReadByte()
		if err == nil {
			return b, nil
		}

		if errors.Is(err, io.EOF) {
			return 0, protocol.ErrConnectionClosed
		}

		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			if err := s.fireKeepAlive(); err != nil {
				return 0, err
			}
			continue
		}

		return 0, &protocol.IoError{Op: "recv", Err: err}
	}
}

func (s *Source) fireKeepAlive() error {
	if s.keepAlive == nil {
		return nil
	}
	return s.keepAlive()
}
