package discovery

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/brindle/wingnrp/internal/observability"
	"github.com/brindle/wingnrp/internal/protocol"
)

const (
	probePayload  = "WING?"
	devicePort    = 2222
	pollInterval  = 500 * time.Millisecond
	pollCount     = 10
	broadcastAddr = "255.255.255.255"
)

// Result is one device's response to a discovery probe.
type Result struct {
	IP       string
	Name     string
	Model    string
	Serial   string
	Firmware string
	Addr     string // IP, devicePort joined for direct use with connection.Connect
}

// Scan sends a single "WING?" broadcast and polls for responses for up
// to pollInterval*pollCount (≈5s). With stopOnFirst it returns as soon
// as one well-formed response arrives; otherwise it collects every
// response seen before the deadline. Malformed responses are dropped
// and the scan continues, per §4.7/§7 (DiscoveryParse).
func Scan(ctx context.Context, stopOnFirst bool, opts ...ScanOption) ([]Result, error) {
	o := scanOptions{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	conn, err := net.ListenUDP("udp4", &net.UDPAddr{Port: 0})
	if err != nil {
		return nil, &protocol.IoError{Op: "bind", Err: err}
	}
	defer conn.Close()

	if err := enableBroadcast(conn); err != nil {
		return nil, &protocol.IoError{Op: "setsockopt", Err: err}
	}

	dst := &net.UDPAddr{IP: net.ParseIP(broadcastAddr), Port: devicePort}
	if _, err := conn.WriteTo([]byte(probePayload), dst); err != nil {
		return nil, &protocol.IoError{Op: "send", Err: err}
	}

	var results []Result
	buf := make([]byte, 512)

	for i := 0; i < pollCount; i++ {
		if ctx != nil && ctx.Err() != nil {
			return results, nil
		}

		if err := conn.SetReadDeadline(time.Now().Add(pollInterval)); err != nil {
			return results, &protocol.IoError{Op: "setsockopt", Err: err}
		}

		n, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			return results, &protocol.IoError{Op: "recv", Err: err}
		}

		res, perr := parseResponse(buf[:n])
		if perr != nil {
			o.log.Debug().Err(perr).Msg("dropped malformed discovery response")
			continue
		}

		results = append(results, res)
		if stopOnFirst {
			return results, nil
		}
	}

	return results, nil
}

// ScanOption configures Scan.
type ScanOption func(*scanOptions)

type scanOptions struct {
	log zerolog.Logger
}

// WithScanLogger attaches a logger for dropped/malformed responses.
func WithScanLogger(log zerolog.Logger) ScanOption {
	return func(o *scanOptions) { o.log = log }
}

func parseResponse(raw []byte) (Result, error) {
	fields := strings.Split(string(raw), ",")
	if len(fields) != 6 || fields[0] != "WING" {
		observability.RecordOpcodeIgnored("discovery", "malformed-response")
		return Result{}, protocol.ErrDiscoveryParse
	}
	ip := fields[1]
	return Result{
		IP:       ip,
		Name:     fields[2],
		Model:    fields[3],
		Serial:   fields[4],
		Firmware: fields[5],
		Addr:     net.JoinHostPort(ip, "2222"),
	}, nil
}
