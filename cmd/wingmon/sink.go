package main

import (
	"github.com/rs/zerolog/log"

	"github.com/brindle/wingnrp"
)

// logSink is the default EventSink: it logs node data and node
// definitions at info level and request-end markers at debug level. It
// satisfies wingnrp.EventSink.
type logSink struct{}

func (logSink) OnNodeData(id wingnrp.NodeID, data wingnrp.NodeData) {
	log.Info().
		Uint32("node", uint32(id)).
		Str("tag", data.Tag().String()).
		Str("value", data.AsString()).
		Msg("node data")
}

func (logSink) OnNodeDefinition(def wingnrp.NodeDefinition) {
	log.Info().
		Uint32("node", uint32(def.ID)).
		Str("name", def.Name).
		Msg("node definition")
}

func (logSink) OnRequestEnd() {
	log.Debug().Msg("request end")
}
