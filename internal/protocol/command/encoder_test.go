package command

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/brindle/wingnrp/internal/protocol"
	"github.com/brindle/wingnrp/internal/testutil/testlog"
)

func TestEncoderSetIntSmallBoundary(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if err := e.SetInt(1, 0x3F); err != nil {
		t.Fatalf("SetInt: %v", err)
	}
	want := append(cursorBytes(1), 0x3F)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % X, want % X", buf.Bytes(), want)
	}
}

func TestEncoderSetIntU16Boundary(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if err := e.SetInt(1, 0x40); err != nil {
		t.Fatalf("SetInt: %v", err)
	}
	want := append(cursorBytes(1), protocol.OpSetIntU16, 0x00, 0x40)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % X, want % X", buf.Bytes(), want)
	}
}

func TestEncoderSetIntU32Boundary(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if err := e.SetInt(1, 0x10000); err != nil {
		t.Fatalf("SetInt: %v", err)
	}
	want := append(cursorBytes(1), protocol.OpSetIntU32, 0x00, 0x01, 0x00, 0x00)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % X, want % X", buf.Bytes(), want)
	}
}

func TestEncoderSetIntNegativeOne(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if err := e.SetInt(1, -1); err != nil {
		t.Fatalf("SetInt: %v", err)
	}
	want := append(cursorBytes(1), protocol.OpSetIntU32, 0xFF, 0xFF, 0xFF, 0xFF)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % X, want % X", buf.Bytes(), want)
	}
}

func TestEncoderSetStringShortBoundary(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	s64 := strings.Repeat("x", 64)
	if err := e.SetString(1, s64); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	want := append(cursorBytes(1), protocol.OpShortStringMax)
	want = append(want, s64...)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got len %d, want len %d with leading opcode 0xBF", len(buf.Bytes()), len(want))
	}
}

func TestEncoderSetStringLongBoundary65(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	s65 := strings.Repeat("x", 65)
	if err := e.SetString(1, s65); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	want := append(cursorBytes(1), protocol.OpLongString, 0x40)
	want = append(want, s65...)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % X, want prefix 0xD1 0x40", buf.Bytes()[:8])
	}
}

func TestEncoderSetStringLongBoundary256(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	s256 := strings.Repeat("x", 256)
	if err := e.SetString(1, s256); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	want := append(cursorBytes(1), protocol.OpLongString, 0xFF)
	want = append(want, s256...)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got prefix % X, want 0xD1 0xFF", buf.Bytes()[5:7])
	}
}

func TestEncoderSetStringTooLongFails(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	s257 := strings.Repeat("x", 257)
	err := e.SetString(1, s257)
	if !errors.Is(err, protocol.ErrStringTooLong) {
		t.Fatalf("SetString(257 bytes) err = %v, want ErrStringTooLong", err)
	}
	if buf.Len() != 0 {
		t.Errorf("a failed SetString must not touch the connection; wrote %d bytes", buf.Len())
	}
}

func TestEncoderSetStringEmpty(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if err := e.SetString(1, ""); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	want := append(cursorBytes(1), protocol.OpEmptyString)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % X, want % X", buf.Bytes(), want)
	}
}

func TestEncoderIdStuffing(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if err := e.SetInt(protocol.NodeID(0xDF000000), 0); err != nil {
		t.Fatalf("SetInt: %v", err)
	}
	want := []byte{protocol.OpSetCursor, protocol.Esc, protocol.EscLiteral, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % X, want % X", buf.Bytes(), want)
	}
}

func TestEncoderRequestNodeDataAtRoot(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if err := e.RequestNodeData(0); err != nil {
		t.Fatalf("RequestNodeData: %v", err)
	}
	want := []byte{protocol.OpGotoRoot, protocol.OpRequestData}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % X, want % X", buf.Bytes(), want)
	}
}

func TestEncoderRequestNodeDefinitionAtId(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if err := e.RequestNodeDefinition(7); err != nil {
		t.Fatalf("RequestNodeDefinition: %v", err)
	}
	want := append(cursorBytes(7), protocol.OpRequestDef)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % X, want % X", buf.Bytes(), want)
	}
}

// cursorBytes builds the expected 0xD7 <u32 id> prefix for an id with
// no bytes equal to ESC, so no stuffing applies.
func cursorBytes(id protocol.NodeID) []byte {
	return []byte{protocol.OpSetCursor, byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)}
}
