package nrp

import "github.com/brindle/wingnrp/internal/protocol"

// ByteReader is anything that can hand back one raw byte at a time.
// Source implements it; tests also feed a plain byte slice through it.
type ByteReader interface {
	NextByte() (byte, error)
}

// Demux applies the NRP escape-byte framing rules and yields
// (channel, byte) pairs. No pair is yielded until the first
// channel-switch escape sequence has been observed on the wire.
type Demux struct {
	src ByteReader

	channel    protocol.Channel
	channelSet bool

	pendingByte byte
	havePending bool

	quirks int
}

// NewDemux wraps src. src is typically a *Source but any ByteReader
// works, which keeps the framing rules testable without a socket.
func NewDemux(src ByteReader) *Demux {
	return &Demux{src: src}
}

// QuirkCount returns the number of times Next has hit the rule-4
// escape pass-through quirk so far.
func (d *Demux) QuirkCount() int {
	return d.quirks
}

// Next returns the next (channel, data byte) pair. It blocks on src for
// as many raw bytes as it needs to resolve one data byte, which may be
// more than one when crossing an escape sequence.
func (d *Demux) Next() (protocol.Channel, byte, error) {
	for {
		if d.havePending {
			b := d.pendingByte
			d.havePending = false
			if d.channelSet {
				return d.channel, b, nil
			}
			continue
		}

		b, err := d.src.NextByte()
		if err != nil {
			return 0, 0, err
		}

		if b != protocol.Esc {
			if d.channelSet {
				return d.channel, b, nil
			}
			continue
		}

		e, err := d.src.NextByte()
		if err != nil {
			return 0, 0, err
		}

		switch {
		case e == protocol.Esc:
			if d.channelSet {
				return d.channel, protocol.Esc, nil
			}
		case e == protocol.EscLiteral:
			if d.channelSet {
				return d.channel, protocol.Esc, nil
			}
		case e >= protocol.ChannelSwitchBase && int(e) < int(protocol.ChannelSwitchBase)+protocol.NumChannels:
			d.channel = protocol.Channel(e - protocol.ChannelSwitchBase)
			d.channelSet = true
			// Channel switches emit nothing.
		default:
			// Protocol quirk (§4.2 rule 4, open question in the design
			// notes): preserve the ESC as a literal data byte on the
			// current channel and defer e as the next data byte, rather
			// than silently dropping either.
			d.pendingByte = e
			d.havePending = true
			d.quirks++
			if d.channelSet {
				return d.channel, protocol.Esc, nil
			}
		}
	}
}
