package connection

import (
	"github.com/brindle/wingnrp/internal/protocol"
	"github.com/brindle/wingnrp/internal/protocol/node"
)

// Snapshot returns a copy of the last-known value for every node this
// connection has observed a write for. Values live on the Connection
// instance, never in a package-level map, so two connections never
// share state.
func (c *Connection) Snapshot() map[protocol.NodeID]node.Data {
	return c.dec.Snapshot()
}
