package command

import (
	"github.com/brindle/wingnrp/internal/protocol"
	"github.com/brindle/wingnrp/internal/protocol/node"
	"github.com/brindle/wingnrp/internal/protocol/nrp"
)

// decodeDefinition parses one node-definition record (the opcode 0xDF
// payload) per the fixed field order in the wire contract. Any
// truncation anywhere in the record is reported as ErrMalformed; the
// record is never emitted partially.
func decodeDefinition(src nrp.ByteSupplier) (node.Definition, error) {
	l, err := nrp.ReadU16(src)
	if err != nil {
		return node.Definition{}, protocol.ErrMalformed
	}
	length := uint32(l)
	if length == 0 {
		length, err = nrp.ReadU32(src)
		if err != nil {
			return node.Definition{}, protocol.ErrMalformed
		}
	}
	_ = length // the record's own internal field lengths are authoritative

	parentID, err := nrp.ReadU32(src)
	if err != nil {
		return node.Definition{}, protocol.ErrMalformed
	}
	id, err := nrp.ReadU32(src)
	if err != nil {
		return node.Definition{}, protocol.ErrMalformed
	}
	index, err := nrp.ReadU16(src)
	if err != nil {
		return node.Definition{}, protocol.ErrMalformed
	}

	name, err := readShortString(src)
	if err != nil {
		return node.Definition{}, protocol.ErrMalformed
	}
	longName, err := readShortString(src)
	if err != nil {
		return node.Definition{}, protocol.ErrMalformed
	}

	flags, err := nrp.ReadU16(src)
	if err != nil {
		return node.Definition{}, protocol.ErrMalformed
	}

	def := node.Definition{
		ParentID: protocol.NodeID(parentID),
		ID:       protocol.NodeID(id),
		Index:    index,
		Name:     name,
		LongName: longName,
		Type:     protocol.TypeFromFlags(flags),
		Unit:     protocol.UnitFromFlags(flags),
		ReadOnly: protocol.ReadOnlyFromFlags(flags),
	}

	switch def.Type {
	case protocol.NodeTypeString:
		v, err := nrp.ReadU16(src)
		if err != nil {
			return node.Definition{}, protocol.ErrMalformed
		}
		def.MaxStringLen = v

	case protocol.NodeTypeLinearFloat, protocol.NodeTypeLogarithmicFloat:
		minF, err := nrp.ReadF32(src)
		if err != nil {
			return node.Definition{}, protocol.ErrMalformed
		}
		maxF, err := nrp.ReadF32(src)
		if err != nil {
			return node.Definition{}, protocol.ErrMalformed
		}
		steps, err := nrp.ReadU32(src)
		if err != nil {
			return node.Definition{}, protocol.ErrMalformed
		}
		def.MinFloat, def.MaxFloat, def.Steps = minF, maxF, steps

	case protocol.NodeTypeInteger:
		minI, err := nrp.ReadI32(src)
		if err != nil {
			return node.Definition{}, protocol.ErrMalformed
		}
		maxI, err := nrp.ReadI32(src)
		if err != nil {
			return node.Definition{}, protocol.ErrMalformed
		}
		def.MinInt, def.MaxInt = minI, maxI

	case protocol.NodeTypeStringEnum:
		n, err := nrp.ReadU16(src)
		if err != nil {
			return node.Definition{}, protocol.ErrMalformed
		}
		items := make([]node.StringEnumItem, 0, n)
		for i := 0; i < int(n); i++ {
			item, err := readShortString(src)
			if err != nil {
				return node.Definition{}, protocol.ErrMalformed
			}
			longItem, err := readShortString(src)
			if err != nil {
				return node.Definition{}, protocol.ErrMalformed
			}
			items = append(items, node.StringEnumItem{Item: item, LongItem: longItem})
		}
		def.StringEnum = items

	case protocol.NodeTypeFloatEnum:
		n, err := nrp.ReadU16(src)
		if err != nil {
			return node.Definition{}, protocol.ErrMalformed
		}
		items := make([]node.FloatEnumItem, 0, n)
		for i := 0; i < int(n); i++ {
			item, err := nrp.ReadF32(src)
			if err != nil {
				return node.Definition{}, protocol.ErrMalformed
			}
			longItem, err := readShortString(src)
			if err != nil {
				return node.Definition{}, protocol.ErrMalformed
			}
			items = append(items, node.FloatEnumItem{Item: item, LongItem: longItem})
		}
		def.FloatEnum = items

	case protocol.NodeTypeFaderLevel:
		// No confirmed tail shape for FADER_LEVEL; treated as NODE
		// (no tail) unless device observation proves otherwise.

	default:
		// NodeTypeNode and any value outside the known range: no tail.
	}

	return def, nil
}

// readShortString reads a u8 length-prefixed string: the "u8 + that
// many bytes" shape used for name, longName, and enum items.
func readShortString(src nrp.ByteSupplier) (string, error) {
	n, err := nrp.ReadU8(src)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	raw, err := nrp.ReadBytes(src, int(n))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
