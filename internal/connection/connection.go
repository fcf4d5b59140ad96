package connection

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/brindle/wingnrp/internal/observability"
	"github.com/brindle/wingnrp/internal/protocol"
	"github.com/brindle/wingnrp/internal/protocol/command"
	"github.com/brindle/wingnrp/internal/protocol/nrp"
)

const devicePort = "2222"

// handshake is the two-byte channel-switch escape sequence that pins
// this connection to the control channel, sent once at connect and
// again on every keep-alive.
var handshake = []byte{protocol.Esc, protocol.ControlChannelSwitchByte}

// Connection owns one TCP session to a device: the channel-switch
// handshake, the keep-alive discipline, and the single reader
// goroutine's event loop. All decoder/demux/cursor state belongs to
// whichever goroutine calls Read; encoder-side calls are safe to make
// concurrently because command.Encoder serializes writes internally.
type Connection struct {
	addr  string
	conn  net.Conn
	enc   *command.Encoder
	dec   *command.Decoder
	demux *nrp.Demux
	ka    *keepAlive
	sink  EventSink
	log   zerolog.Logger

	closed     atomic.Bool
	seenQuirks int
}

// ConnOption configures a Connection at Connect time.
type ConnOption func(*connOptions)

type connOptions struct {
	keepAlivePeriod   time.Duration
	receiveBufferSize int
	logger            zerolog.Logger
	sink              EventSink
}

// WithKeepAlivePeriod overrides the default 7s keep-alive/liveness
// window from §4.6.
func WithKeepAlivePeriod(d time.Duration) ConnOption {
	return func(o *connOptions) { o.keepAlivePeriod = d }
}

// WithReceiveBufferSize overrides the byte source's read-ahead buffer.
func WithReceiveBufferSize(n int) ConnOption {
	return func(o *connOptions) { o.receiveBufferSize = n }
}

// WithLogger attaches a logger used for decoder diagnostics.
func WithLogger(log zerolog.Logger) ConnOption {
	return func(o *connOptions) { o.logger = log }
}

// WithEventSink registers the callback adapter Read dispatches to.
func WithEventSink(sink EventSink) ConnOption {
	return func(o *connOptions) { o.sink = sink }
}

// deadlineReader sets a fresh read deadline before every Read call so
// that the blocking byte source observes the 7s timeout §4.6 requires
// rather than blocking indefinitely.
type deadlineReader struct {
	conn    net.Conn
	timeout time.Duration
}

func (r *deadlineReader) Read(p []byte) (int, error) {
	if err := r.conn.SetReadDeadline(time.Now().Add(r.timeout)); err != nil {
		return 0, err
	}
	return r.conn.Read(p)
}

// Connect dials addr (host:port, or bare host defaulting to :2222),
// performs the channel-switch handshake, and returns a ready
// Connection. Any failure at any step closes the socket and returns an
// error, per §4.6.
func Connect(ctx context.Context, addr string, opts ...ConnOption) (*Connection, error) {
	o := connOptions{
		keepAlivePeriod:   7 * time.Second,
		receiveBufferSize: 2048,
		logger:            zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	target := addr
	if _, _, err := net.SplitHostPort(addr); err != nil {
		target = net.JoinHostPort(addr, devicePort)
	}

	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", target)
	if err != nil {
		return nil, &protocol.IoError{Op: "connect", Err: err}
	}

	c := &Connection{
		addr: target,
		conn: conn,
		sink: o.sink,
		log:  o.logger,
	}
	c.ka = newKeepAlive(o.keepAlivePeriod, c.sendHandshake)

	dr := &deadlineReader{conn: conn, timeout: o.keepAlivePeriod}
	src := nrp.NewSourceSize(dr, o.receiveBufferSize, c.touchKeepAlive)
	c.demux = nrp.NewDemux(src)
	filter := nrp.NewChannelFilter(c.demux, protocol.ControlChannel)

	c.dec = command.NewDecoder(filter, command.WithDecoderLogger(o.logger))
	c.enc = command.NewEncoder(conn)

	if err := c.sendHandshake(); err != nil {
		conn.Close()
		return nil, err
	}
	c.ka.reset()

	return c, nil
}

func (c *Connection) sendHandshake() error {
	n, err := c.conn.Write(handshake)
	if err != nil {
		return &protocol.IoError{Op: "send", Err: err}
	}
	if n != len(handshake) {
		return protocol.ErrShortWrite
	}
	observability.RecordKeepAlive(c.addr)
	return nil
}

func (c *Connection) touchKeepAlive() error {
	return c.ka.touch()
}

// Read runs the blocking event loop: it is the only caller of the
// decoder for this connection and the only producer of EventSink
// callbacks, which execute synchronously on the calling goroutine. A
// clean ErrConnectionClosed, or ctx being cancelled while a receive is
// pending, both return nil rather than an error.
func (c *Connection) Read(ctx context.Context) error {
	if c.closed.Load() {
		return protocol.ErrClosed
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

	for {
		ev, err := c.dec.Next()
		if err != nil {
			if errors.Is(err, protocol.ErrConnectionClosed) {
				return nil
			}
			if ctx != nil && ctx.Err() != nil {
				return nil
			}
			return err
		}

		if n := c.demux.QuirkCount(); n > c.seenQuirks {
			for ; c.seenQuirks < n; c.seenQuirks++ {
				observability.RecordEscapeQuirk(c.addr)
			}
		}

		kind := eventKindLabel(ev.Kind)
		observability.RecordEvent(c.addr, kind)
		start := time.Now()
		dispatch(c.sink, ev)
		observability.RecordEventDispatch(c.addr, kind, time.Since(start))
	}
}

// Close shuts the socket down and marks the handle closed; subsequent
// operations fail with ErrClosed.
func (c *Connection) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if tcp, ok := c.conn.(*net.TCPConn); ok {
		_ = tcp.CloseWrite()
	}
	return c.conn.Close()
}

// SetInt, SetFloat, SetString, RequestNodeData, and RequestNodeDefinition
// are encoder-side calls, safe to invoke concurrently with Read from
// another goroutine.

func (c *Connection) SetInt(id protocol.NodeID, v int32) error {
	if c.closed.Load() {
		return protocol.ErrClosed
	}
	return c.enc.SetInt(id, v)
}

func (c *Connection) SetFloat(id protocol.NodeID, v float32) error {
	if c.closed.Load() {
		return protocol.ErrClosed
	}
	return c.enc.SetFloat(id, v)
}

func (c *Connection) SetString(id protocol.NodeID, v string) error {
	if c.closed.Load() {
		return protocol.ErrClosed
	}
	return c.enc.SetString(id, v)
}

func (c *Connection) RequestNodeData(id protocol.NodeID) error {
	if c.closed.Load() {
		return protocol.ErrClosed
	}
	return c.enc.RequestNodeData(id)
}

func (c *Connection) RequestNodeDefinition(id protocol.NodeID) error {
	if c.closed.Load() {
		return protocol.ErrClosed
	}
	return c.enc.RequestNodeDefinition(id)
}

// Cursor returns the decoder's current-node cursor.
func (c *Connection) Cursor() protocol.NodeID {
	return c.dec.Cursor()
}
