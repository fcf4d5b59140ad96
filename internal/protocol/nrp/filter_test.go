package nrp

import (
	"testing"

	"github.com/brindle/wingnrp/internal/protocol"
	"github.com/brindle/wingnrp/internal/testutil/testlog"
)

func TestChannelFilterDiscardsOtherChannels(t *testing.T) {
	testlog.Start(t)
	src := &sliceSource{bytes: []byte{
		protocol.Esc, 0xD0, 0xAA, // channel 0
		protocol.Esc, 0xD2, 0xBB, // channel 2, target
		protocol.Esc, 0xD0, 0xCC, // back to channel 0
		protocol.Esc, 0xD2, 0xDD, // channel 2 again
	}}
	f := NewChannelFilter(NewDemux(src), protocol.Channel(2))

	want := []byte{0xBB, 0xDD}
	for i, w := range want {
		b, err := f.NextByte()
		if err != nil {
			t.Fatalf("NextByte(%d): %v", i, err)
		}
		if b != w {
			t.Fatalf("NextByte(%d) = %#x, want %#x", i, b, w)
		}
	}
}
