package nrp

import "github.com/brindle/wingnrp/internal/protocol"

// ChannelFilter adapts a Demux into a ByteSupplier/ByteReader that only
// surfaces bytes tagged with the target channel, silently discarding
// bytes that arrive on any other channel until the next channel switch
// brings the stream back to target. This is the decoder's channel
// pinning behavior (§3: "the decoder tolerates bytes arriving on other
// channels by ignoring them until the next channel switch").
type ChannelFilter struct {
	demux  *Demux
	target protocol.Channel
}

// NewChannelFilter returns a filter that only yields bytes on target.
func NewChannelFilter(demux *Demux, target protocol.Channel) *ChannelFilter {
	return &ChannelFilter{demux: demux, target: target}
}

// NextByte returns the next byte on the target channel, skipping any
// number of bytes on other channels first.
func (f *ChannelFilter) NextByte() (byte, error) {
	for {
		ch, b, err := f.demux.Next()
		if err != nil {
			return 0, err
		}
		if ch == f.target {
			return b, nil
		}
	}
}
