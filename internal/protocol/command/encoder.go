package command

import (
	"io"
	"sync"

	"github.com/brindle/wingnrp/internal/protocol"
	"github.com/brindle/wingnrp/internal/protocol/nrp"
)

// Encoder serializes set/get/traversal operations back onto the wire,
// re-applying the id-field escape-stuffing rule from §4.5. Writes are
// serialized with an internal mutex so encoder-side calls are safe to
// make concurrently with the connection's single reader goroutine.
type Encoder struct {
	mu sync.Mutex
	w  io.Writer
}

// NewEncoder wraps w (typically the connection's net.Conn).
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// SetString emits 0xD7 <id> followed by the length-appropriate string
// opcode. Strings longer than 256 bytes fail with ErrStringTooLong
// without touching the connection.
func (e *Encoder) SetString(id protocol.NodeID, s string) error {
	buf := appendStuffedID(nil, id)
	switch n := len(s); {
	case n == 0:
		buf = append(buf, protocol.OpEmptyString)
	case n <= 64:
		buf = append(buf, protocol.OpShortStringMin+byte(n-1))
		buf = append(buf, s...)
	case n <= 256:
		buf = append(buf, protocol.OpLongString, byte(n-1))
		buf = append(buf, s...)
	default:
		return protocol.ErrStringTooLong
	}
	return e.send(buf)
}

// SetFloat emits 0xD7 <id> 0xD5 <f32 v>.
func (e *Encoder) SetFloat(id protocol.NodeID, v float32) error {
	buf := appendStuffedID(nil, id)
	buf = append(buf, protocol.OpSetFloat)
	buf = nrp.PutF32(buf, v)
	return e.send(buf)
}

// SetInt emits 0xD7 <id> followed by the narrowest integer opcode that
// represents v.
func (e *Encoder) SetInt(id protocol.NodeID, v int32) error {
	buf := appendStuffedID(nil, id)
	switch {
	case v >= 0 && v <= 0x3F:
		buf = append(buf, byte(v))
	case v >= 0 && v <= 0xFFFF:
		buf = append(buf, protocol.OpSetIntU16)
		buf = nrp.PutU16(buf, uint16(v))
	default:
		buf = append(buf, protocol.OpSetIntU32)
		buf = nrp.PutI32(buf, v)
	}
	return e.send(buf)
}

// RequestNodeData requests the current value of id. Requesting the
// root (id 0) uses the root-relative "go to root" + "data" pair.
func (e *Encoder) RequestNodeData(id protocol.NodeID) error {
	return e.requestAt(id, protocol.OpRequestData)
}

// RequestNodeDefinition requests the definition record of id.
func (e *Encoder) RequestNodeDefinition(id protocol.NodeID) error {
	return e.requestAt(id, protocol.OpRequestDef)
}

func (e *Encoder) requestAt(id protocol.NodeID, trailingOp byte) error {
	var buf []byte
	if id == 0 {
		buf = append(buf, protocol.OpGotoRoot, trailingOp)
	} else {
		buf = appendStuffedID(nil, id)
		buf = append(buf, trailingOp)
	}
	return e.send(buf)
}

func (e *Encoder) send(buf []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, err := e.w.Write(buf)
	if err != nil {
		return &protocol.IoError{Op: "send", Err: err}
	}
	if n != len(buf) {
		return protocol.ErrShortWrite
	}
	return nil
}

// appendStuffedID appends 0xD7 followed by the four big-endian bytes of
// id, each escape-stuffed per §4.5: a byte equal to ESC is emitted as
// ESC 0xDE, every other byte is emitted verbatim.
func appendStuffedID(buf []byte, id protocol.NodeID) []byte {
	buf = append(buf, protocol.OpSetCursor)
	raw := []byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)}
	for _, b := range raw {
		if b == protocol.Esc {
			buf = append(buf, protocol.Esc, protocol.EscLiteral)
		} else {
			buf = append(buf, b)
		}
	}
	return buf
}
