package wireform

import (
	"encoding/binary"
	"math"
)

// Endianness selects the byte order used when reading or writing a
// multi-byte scalar. 8-bit reads are endianness no-ops (spec.md §4.1).
type Endianness uint8

const (
	LittleEndian Endianness = iota
	BigEndian
)

func (e Endianness) order() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// takeChecked slices off the first n bytes of buf, failing with
// NOT_ENOUGH_DATA if buf is too short. This is the only length check any
// codec in this package performs; once a Parse has proven a buffer long
// enough, every corresponding Render call on the same bytes is unchecked
// (spec.md §4.1, §4.4, and the "render is an internal helper" contract
// in the Open Questions of spec.md §9).
func takeChecked(buf []byte, n int) (head, tail []byte, err error) {
	if len(buf) < n {
		return nil, nil, ErrNotEnoughData
	}
	return buf[:n], buf[n:], nil
}

// The get*/put* functions below are the unchecked byte-buffer primitives
// of spec.md §4.1/component 1: typed, endianness-aware access over an
// untyped byte span, with no bounds checking beyond what the caller's
// prior Parse already established.

func getUint8(buf []byte) uint8 { return buf[0] }

func putUint8(out []byte, v uint8) []byte {
	out[0] = v
	return out[1:]
}

func getUint16(buf []byte, e Endianness) uint16 { return e.order().Uint16(buf) }

func putUint16(out []byte, v uint16, e Endianness) []byte {
	e.order().PutUint16(out, v)
	return out[2:]
}

func getUint32(buf []byte, e Endianness) uint32 { return e.order().Uint32(buf) }

func putUint32(out []byte, v uint32, e Endianness) []byte {
	e.order().PutUint32(out, v)
	return out[4:]
}

func getUint64(buf []byte, e Endianness) uint64 { return e.order().Uint64(buf) }

func putUint64(out []byte, v uint64, e Endianness) []byte {
	e.order().PutUint64(out, v)
	return out[8:]
}

// Signed reads are performed as unsigned, then reinterpreted (two's
// complement), per spec.md §4.1.

func getInt8(buf []byte) int8   { return int8(getUint8(buf)) }
func getInt16(buf []byte, e Endianness) int16 { return int16(getUint16(buf, e)) }
func getInt32(buf []byte, e Endianness) int32 { return int32(getUint32(buf, e)) }
func getInt64(buf []byte, e Endianness) int64 { return int64(getUint64(buf, e)) }

func putInt8(out []byte, v int8) []byte { return putUint8(out, uint8(v)) }
func putInt16(out []byte, v int16, e Endianness) []byte { return putUint16(out, uint16(v), e) }
func putInt32(out []byte, v int32, e Endianness) []byte { return putUint32(out, uint32(v), e) }
func putInt64(out []byte, v int64, e Endianness) []byte { return putUint64(out, uint64(v), e) }

// Float widths are 32 and 64 only; f32 aliases u32 and f64 aliases u64
// for endianness purposes, per spec.md §4.1.

func getFloat32(buf []byte, e Endianness) float32 {
	return math.Float32frombits(getUint32(buf, e))
}

func putFloat32(out []byte, v float32, e Endianness) []byte {
	return putUint32(out, math.Float32bits(v), e)
}

func getFloat64(buf []byte, e Endianness) float64 {
	return math.Float64frombits(getUint64(buf, e))
}

func putFloat64(out []byte, v float64, e Endianness) []byte {
	return putUint64(out, math.Float64bits(v), e)
}
