package nrp

import "math"

// ByteSupplier is the minimal shape the codec needs to pull bytes from
// — usually a channel-filtering wrapper around a Demux.
type ByteSupplier interface {
	NextByte() (byte, error)
}

// ReadU8 reads a single byte.
func ReadU8(r ByteSupplier) (uint8, error) {
	return r.NextByte()
}

// ReadU16 reads a big-endian uint16.
func ReadU16(r ByteSupplier) (uint16, error) {
	hi, err := r.NextByte()
	if err != nil {
		return 0, err
	}
	lo, err := r.NextByte()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// ReadU32 reads a big-endian uint32.
func ReadU32(r ByteSupplier) (uint32, error) {
	var v uint32
	for i := 0; i < 4; i++ {
		b, err := r.NextByte()
		if err != nil {
			return 0, err
		}
		v = v<<8 | uint32(b)
	}
	return v, nil
}

// ReadI32 reads a big-endian int32 (two's complement reinterpretation
// of the same four bytes ReadU32 reads).
func ReadI32(r ByteSupplier) (int32, error) {
	v, err := ReadU32(r)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// ReadF32 reads a big-endian IEEE-754 float32 via a documented bitcast
// of the four bytes ReadU32 reads.
func ReadF32(r ByteSupplier) (float32, error) {
	v, err := ReadU32(r)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadBytes reads n raw bytes.
func ReadBytes(r ByteSupplier, n int) ([]byte, error) {
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		b, err := r.NextByte()
		if err != nil {
			return nil, err
		}
		buf[i] = b
	}
	return buf, nil
}

// PutU16 appends v big-endian to buf.
func PutU16(buf []byte, v uint16) []byte {
	return append(buf, byte(v>>8), byte(v))
}

// PutU32 appends v big-endian to buf.
func PutU32(buf []byte, v uint32) []byte {
	return append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// PutI32 appends v big-endian to buf via its uint32 reinterpretation.
func PutI32(buf []byte, v int32) []byte {
	return PutU32(buf, uint32(v))
}

// PutF32 appends v big-endian to buf via a documented IEEE-754 bitcast.
func PutF32(buf []byte, v float32) []byte {
	return PutU32(buf, math.Float32bits(v))
}
