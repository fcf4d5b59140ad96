// Package wingnrp is a client library for a networked digital audio
// mixing console's proprietary NRP wire protocol: TCP parameter-tree
// traversal and live updates on port 2222, plus UDP broadcast
// discovery on the same port. It turns the raw byte stream into a
// sequence of typed events (node data, node definitions, request-end
// markers) consumable by monitors, bridges, or schema extractors.
package wingnrp

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/brindle/wingnrp/internal/connection"
	"github.com/brindle/wingnrp/internal/discovery"
	"github.com/brindle/wingnrp/internal/protocol"
	"github.com/brindle/wingnrp/internal/protocol/node"
	"github.com/brindle/wingnrp/internal/schema"
)

// NodeID is the device-assigned handle for a node in the parameter
// tree. The zero value denotes the tree root.
type NodeID = protocol.NodeID

// NodeData is a node's current value, tagged by whichever of
// string/int/float was last observed on the wire.
type NodeData = node.Data

// NodeDefinition describes a node's type, unit, and valid range/enum,
// as delivered by a 0xDF node-definition record.
type NodeDefinition = node.Definition

// Connection is one live TCP session to a device.
type Connection = connection.Connection

// ConnOption configures a Connection at Connect time.
type ConnOption = connection.ConnOption

// EventSink receives callbacks from a Connection's read loop. Callbacks
// run synchronously on the goroutine calling Read; implementations must
// not call Read-side operations back into the same Connection, but may
// call SetInt/SetFloat/SetString/RequestNodeData/RequestNodeDefinition.
type EventSink = connection.EventSink

// DiscoveredDevice is one device's response to a discovery probe.
type DiscoveredDevice = discovery.Result

// Schema is a loaded name<->id table for one device generation, built
// from the console's name-table dump (one "path,id" pair per line).
type Schema = schema.Table

// LoadSchema parses a name-table dump from r into a Schema. Use
// Schema.NameToID and Schema.IDToName to translate between the dotted
// parameter paths used in configuration/CLI surfaces and the u32 node
// IDs carried on the wire.
func LoadSchema(r io.Reader) (*Schema, error) {
	return schema.Load(r)
}

// Discover broadcasts a UDP discovery probe and collects device
// responses for up to ~5s. With stopOnFirst it returns as soon as one
// well-formed response arrives.
func Discover(ctx context.Context, stopOnFirst bool) ([]DiscoveredDevice, error) {
	return discovery.Scan(ctx, stopOnFirst)
}

// DiscoverWithLogger is Discover with a logger for dropped/malformed
// discovery responses.
func DiscoverWithLogger(ctx context.Context, stopOnFirst bool, log zerolog.Logger) ([]DiscoveredDevice, error) {
	return discovery.Scan(ctx, stopOnFirst, discovery.WithScanLogger(log))
}

// Connect dials a device at addr (host or host:port; port defaults to
// 2222) and performs the channel-switch handshake.
func Connect(ctx context.Context, addr string, opts ...ConnOption) (*Connection, error) {
	return connection.Connect(ctx, addr, opts...)
}

// WithKeepAlivePeriod overrides the default 7s keep-alive/liveness
// window.
func WithKeepAlivePeriod(d time.Duration) ConnOption {
	return connection.WithKeepAlivePeriod(d)
}

// WithReceiveBufferSize overrides the connection's read-ahead buffer.
func WithReceiveBufferSize(n int) ConnOption {
	return connection.WithReceiveBufferSize(n)
}

// WithLogger attaches a logger used for decoder diagnostics.
func WithLogger(log zerolog.Logger) ConnOption {
	return connection.WithLogger(log)
}

// WithEventSink registers the callback adapter Connection.Read
// dispatches decoded events to.
func WithEventSink(sink EventSink) ConnOption {
	return connection.WithEventSink(sink)
}
