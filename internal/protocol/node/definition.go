package node

import "github.com/brindle/wingnrp/internal/protocol"

// StringEnumItem is one member of a STRING_ENUM definition's ordered
// item list.
type StringEnumItem struct {
	Item     string
	LongItem string
}

// FloatEnumItem is one member of a FLOAT_ENUM definition's ordered item
// list.
type FloatEnumItem struct {
	Item     float32
	LongItem string
}

// Definition is the metadata record emitted on the wire by opcode
// 0xDF. The type-dependent tail fields are populated according to Type;
// fields not applicable to Type are left at their zero value.
type Definition struct {
	ParentID protocol.NodeID
	ID       protocol.NodeID
	Index    uint16
	Name     string
	LongName string
	Type     protocol.NodeType
	Unit     protocol.NodeUnit
	ReadOnly bool

	// STRING tail.
	MaxStringLen uint16

	// LINEAR_FLOAT / LOGARITHMIC_FLOAT tail. FADER_LEVEL has no confirmed
	// tail shape and is parsed as NODE (no tail); these fields stay zero
	// for FADER_LEVEL.
	MinFloat float32
	MaxFloat float32
	Steps    uint32

	// INTEGER tail.
	MinInt int32
	MaxInt int32

	// STRING_ENUM tail.
	StringEnum []StringEnumItem

	// FLOAT_ENUM tail.
	FloatEnum []FloatEnumItem
}
