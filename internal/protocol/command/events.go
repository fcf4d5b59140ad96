package command

import (
	"github.com/brindle/wingnrp/internal/protocol"
	"github.com/brindle/wingnrp/internal/protocol/node"
)

// EventKind tags which field of Event is populated.
type EventKind int

const (
	EventNodeData EventKind = iota
	EventNodeDefinition
	EventRequestEnd
)

// Event is the tagged union the decoder's read loop produces.
// Connection layers a callback adapter (EventSink) on top of it rather
// than exposing this type directly.
type Event struct {
	Kind       EventKind
	NodeID     protocol.NodeID
	Data       node.Data
	Definition node.Definition
}
