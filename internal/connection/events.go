package connection

import (
	"github.com/brindle/wingnrp/internal/protocol"
	"github.com/brindle/wingnrp/internal/protocol/command"
	"github.com/brindle/wingnrp/internal/protocol/node"
)

// EventSink is a thin callback adapter over the decoder's native Event
// enum (internal/protocol/command). Implementations must not call back
// into any read-side operation of the Connection that is dispatching to
// them; encoder-side calls (SetInt, SetFloat, ...) are fine.
type EventSink interface {
	OnNodeData(id protocol.NodeID, data node.Data)
	OnNodeDefinition(def node.Definition)
	OnRequestEnd()
}

// dispatch adapts a single decoder Event onto sink.
func dispatch(sink EventSink, ev command.Event) {
	if sink == nil {
		return
	}
	switch ev.Kind {
	case command.EventNodeData:
		sink.OnNodeData(ev.NodeID, ev.Data)
	case command.EventNodeDefinition:
		sink.OnNodeDefinition(ev.Definition)
	case command.EventRequestEnd:
		sink.OnRequestEnd()
	}
}

// eventKindLabel names an event kind for metrics, without importing
// observability into the hot decode path's event type itself.
func eventKindLabel(k command.EventKind) string {
	switch k {
	case command.EventNodeData:
		return "node_data"
	case command.EventNodeDefinition:
		return "node_definition"
	case command.EventRequestEnd:
		return "request_end"
	default:
		return "unknown"
	}
}
