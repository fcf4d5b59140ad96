package command

import (
	"github.com/rs/zerolog"

	"github.com/brindle/wingnrp/internal/protocol"
	"github.com/brindle/wingnrp/internal/protocol/node"
	"github.com/brindle/wingnrp/internal/protocol/nrp"
)

// Decoder is the single-threaded opcode state machine described by the
// wire contract's command grammar. It owns the current-node cursor and
// the per-node last-known-value map; both live on the Decoder instance
// rather than as process globals, so two Decoders never share state.
type Decoder struct {
	src    nrp.ByteSupplier
	cursor protocol.NodeID
	values map[protocol.NodeID]*node.Data
	log    zerolog.Logger
}

// DecoderOption configures a Decoder at construction time.
type DecoderOption func(*Decoder)

// WithDecoderLogger attaches a logger used for informational and
// unknown-opcode diagnostics (§4.4: "log/ignore").
func WithDecoderLogger(log zerolog.Logger) DecoderOption {
	return func(d *Decoder) {
		d.log = log
	}
}

// NewDecoder builds a Decoder reading opcodes from src, which is
// expected to already be pinned to the control channel (see
// nrp.ChannelFilter).
func NewDecoder(src nrp.ByteSupplier, opts ...DecoderOption) *Decoder {
	d := &Decoder{
		src:    src,
		values: make(map[protocol.NodeID]*node.Data),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Cursor returns the decoder's current-node cursor.
func (d *Decoder) Cursor() protocol.NodeID {
	return d.cursor
}

// Snapshot returns a copy of the last-known value for every node the
// decoder has observed a write for. State lives on the Decoder
// instance, never in a package-level map.
func (d *Decoder) Snapshot() map[protocol.NodeID]node.Data {
	out := make(map[protocol.NodeID]node.Data, len(d.values))
	for id, v := range d.values {
		out[id] = *v
	}
	return out
}

// Next consumes opcodes until one produces an Event, or the transport
// fails. A clean ErrConnectionClosed is returned verbatim; callers (the
// connection read loop) are expected to treat it as a clean stop.
func (d *Decoder) Next() (Event, error) {
	for {
		opcode, err := d.src.NextByte()
		if err != nil {
			return Event{}, err
		}
		ev, ok, err := d.dispatch(opcode)
		if err != nil {
			return Event{}, err
		}
		if ok {
			return ev, nil
		}
	}
}

func (d *Decoder) dispatch(opcode byte) (Event, bool, error) {
	switch {
	case opcode == protocol.OpSmallIntZero:
		ev, ok := d.applyInt(0)
		return ev, ok, nil

	case opcode == protocol.OpSmallIntOne:
		ev, ok := d.applyInt(1)
		return ev, ok, nil

	case opcode >= protocol.OpSmallIntLoMin && opcode <= protocol.OpSmallIntLoMax:
		ev, ok := d.applyInt(int32(opcode))
		return ev, ok, nil

	case opcode >= protocol.OpFastIndexMin && opcode <= protocol.OpFastIndexMax:
		d.log.Debug().Int("opcode", int(opcode)).Msg("fast node index echo")
		return Event{}, false, nil

	case opcode >= protocol.OpShortStringMin && opcode <= protocol.OpShortStringMax:
		n := int(opcode-protocol.OpShortStringMin) + 1
		raw, err := nrp.ReadBytes(d.src, n)
		if err != nil {
			return Event{}, false, protocol.ErrMalformed
		}
		ev, ok := d.applyString(string(raw))
		return ev, ok, nil

	case opcode >= protocol.OpFastNameMin && opcode <= protocol.OpFastNameMax:
		d.log.Debug().Int("opcode", int(opcode)).Msg("fast node name echo")
		return Event{}, false, nil

	case opcode == protocol.OpEmptyString:
		ev, ok := d.applyString("")
		return ev, ok, nil

	case opcode == protocol.OpLongString:
		l, err := nrp.ReadU8(d.src)
		if err != nil {
			return Event{}, false, protocol.ErrMalformed
		}
		raw, err := nrp.ReadBytes(d.src, int(l)+1)
		if err != nil {
			return Event{}, false, protocol.ErrMalformed
		}
		ev, ok := d.applyString(string(raw))
		return ev, ok, nil

	case opcode == protocol.OpNodeIndex:
		n, err := nrp.ReadU16(d.src)
		if err != nil {
			return Event{}, false, protocol.ErrMalformed
		}
		d.log.Debug().Uint16("index", n+1).Msg("node index echo")
		return Event{}, false, nil

	case opcode == protocol.OpSetIntU16:
		v, err := nrp.ReadU16(d.src)
		if err != nil {
			return Event{}, false, protocol.ErrMalformed
		}
		ev, ok := d.applyInt(int32(v))
		return ev, ok, nil

	case opcode == protocol.OpSetIntU32:
		v, err := nrp.ReadI32(d.src)
		if err != nil {
			return Event{}, false, protocol.ErrMalformed
		}
		ev, ok := d.applyInt(v)
		return ev, ok, nil

	case opcode == protocol.OpSetFloat || opcode == protocol.OpSetFloatAlias:
		v, err := nrp.ReadF32(d.src)
		if err != nil {
			return Event{}, false, protocol.ErrMalformed
		}
		ev, ok := d.applyFloat(v)
		return ev, ok, nil

	case opcode == protocol.OpSetCursor:
		id, err := nrp.ReadU32(d.src)
		if err != nil {
			return Event{}, false, protocol.ErrMalformed
		}
		d.cursor = protocol.NodeID(id)
		return Event{}, false, nil

	case opcode == protocol.OpClick:
		d.log.Debug().Msg("click")
		return Event{}, false, nil

	case opcode == protocol.OpStep:
		if _, err := nrp.ReadU8(d.src); err != nil {
			return Event{}, false, protocol.ErrMalformed
		}
		d.log.Debug().Msg("step")
		return Event{}, false, nil

	case opcode == protocol.OpGotoRoot:
		d.log.Debug().Msg("goto root")
		return Event{}, false, nil

	case opcode == protocol.OpGotoUp:
		d.log.Debug().Msg("goto up")
		return Event{}, false, nil

	case opcode == protocol.OpRequestData:
		d.log.Debug().Msg("request data")
		return Event{}, false, nil

	case opcode == protocol.OpRequestDef:
		d.log.Debug().Msg("request definition")
		return Event{}, false, nil

	case opcode == protocol.OpRequestEnd:
		return Event{Kind: EventRequestEnd}, true, nil

	case opcode == protocol.OpNodeDefinition:
		def, err := decodeDefinition(d.src)
		if err != nil {
			return Event{}, false, err
		}
		return Event{Kind: EventNodeDefinition, NodeID: def.ID, Definition: def}, true, nil

	default:
		d.log.Debug().Int("opcode", int(opcode)).Msg("unknown opcode")
		return Event{}, false, nil
	}
}

func (d *Decoder) applyInt(v int32) (Event, bool) {
	dv := d.valueFor(d.cursor)
	if !dv.SetInt(v) {
		return Event{}, false
	}
	return Event{Kind: EventNodeData, NodeID: d.cursor, Data: *dv}, true
}

func (d *Decoder) applyFloat(v float32) (Event, bool) {
	dv := d.valueFor(d.cursor)
	if !dv.SetFloat(v) {
		return Event{}, false
	}
	return Event{Kind: EventNodeData, NodeID: d.cursor, Data: *dv}, true
}

func (d *Decoder) applyString(v string) (Event, bool) {
	dv := d.valueFor(d.cursor)
	if !dv.SetString(v) {
		return Event{}, false
	}
	return Event{Kind: EventNodeData, NodeID: d.cursor, Data: *dv}, true
}

func (d *Decoder) valueFor(id protocol.NodeID) *node.Data {
	dv, ok := d.values[id]
	if !ok {
		dv = &node.Data{}
		d.values[id] = dv
	}
	return dv
}
