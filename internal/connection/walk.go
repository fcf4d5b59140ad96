package connection

import (
	"context"
	"errors"

	"github.com/brindle/wingnrp/internal/protocol"
	"github.com/brindle/wingnrp/internal/protocol/command"
	"github.com/brindle/wingnrp/internal/protocol/node"
)

// WalkTree requests the definition and current data for rootID and
// every node beneath it, and drains the decoder until the matching
// RequestEnd marks the dump complete. This is an alternative to Read
// for a one-shot "dump this subtree" use, and must not be called
// concurrently with Read on the same Connection — both consume the
// same decoder. Cancelling ctx aborts the pending receive.
func (c *Connection) WalkTree(ctx context.Context, rootID protocol.NodeID) ([]node.Definition, map[protocol.NodeID]node.Data, error) {
	if c.closed.Load() {
		return nil, nil, protocol.ErrClosed
	}

	if err := c.RequestNodeDefinition(rootID); err != nil {
		return nil, nil, err
	}
	if err := c.RequestNodeData(rootID); err != nil {
		return nil, nil, err
	}

	stop := make(chan struct{})
	if ctx != nil {
		go func() {
			select {
			case <-ctx.Done():
				c.conn.Close()
			case <-stop:
			}
		}()
		defer close(stop)
	}

	var defs []node.Definition
	data := make(map[protocol.NodeID]node.Data)

	for {
		ev, err := c.dec.Next()
		if err != nil {
			if errors.Is(err, protocol.ErrConnectionClosed) {
				return defs, data, nil
			}
			if ctx != nil && ctx.Err() != nil {
				return defs, data, ctx.Err()
			}
			return defs, data, err
		}

		switch ev.Kind {
		case command.EventNodeDefinition:
			defs = append(defs, ev.Definition)
		case command.EventNodeData:
			data[ev.NodeID] = ev.Data
		case command.EventRequestEnd:
			return defs, data, nil
		}
	}
}
