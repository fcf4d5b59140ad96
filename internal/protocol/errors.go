package protocol

import "errors"

var (
	// ErrConnectionClosed is an orderly EOF on the reader side. It never
	// propagates out of Connection.Read; it terminates the read loop.
	ErrConnectionClosed = errors.New("protocol: connection closed")

	// ErrMalformed is a truncated or impossible opcode sequence inside a
	// node-definition record. It propagates out of Connection.Read.
	ErrMalformed = errors.New("protocol: malformed node definition")

	// ErrStringTooLong is returned by the encoder when asked to write a
	// string longer than 256 bytes. The connection remains usable.
	ErrStringTooLong = errors.New("protocol: string exceeds 256 bytes")

	// ErrClosed is returned by any operation performed on a handle after
	// Close has been called.
	ErrClosed = errors.New("protocol: handle closed")

	// ErrDiscoveryParse marks a malformed discovery response datagram.
	// The caller drops that response and keeps scanning.
	ErrDiscoveryParse = errors.New("protocol: malformed discovery response")

	// ErrShortWrite marks a send that wrote fewer bytes than requested.
	// Per §4.5 every send is atomic; a short write is a hard failure.
	ErrShortWrite = errors.New("protocol: short write")
)

// IoError wraps a transport-level failure from send/recv/setsockopt/bind.
type IoError struct {
	Op  string
	Err error
}

func (e *IoError) Error() string {
	return "protocol: io(" + e.Op + "): " + e.Err.Error()
}

func (e *IoError) Unwrap() error {
	return e.Err
}
