package wireform

// The primitive codec constructors below instantiate Codec[T, T] for
// every fixed-width integer and float, per spec.md §4.4: Rendered and
// Built coincide for a scalar, parse checks length before decoding, and
// SizeBytes is the compile-time constant SIZE_BYTES. Grounded on the
// teacher's FUInt64/FUInt32/FUInt16/FInt64/Float64 (this file, previously
// package vpack), generalized from big-endian-only, in-place *Buffer
// mutation to a parameterized Endianness returning a Codec[T,T] value.

func Uint8() Codec[uint8, uint8] {
	const size = 1
	return Codec[uint8, uint8]{
		FixedSize: size,
		Parse: func(buf []byte) (ParseInfo[uint8], error) {
			head, tail, err := takeChecked(buf, size)
			if err != nil {
				return ParseInfo[uint8]{}, err
			}
			return ParseInfo[uint8]{Rendered: getUint8(head), Tail: tail}, nil
		},
		Render:        func(buf []byte) uint8 { return getUint8(buf) },
		Build:         func(r uint8) uint8 { return r },
		SerializeInto: func(b uint8, out []byte) []byte { return putUint8(out, b) },
		SizeBytes:     func(uint8) int { return size },
	}
}

func Int8() Codec[int8, int8] {
	const size = 1
	return Codec[int8, int8]{
		FixedSize: size,
		Parse: func(buf []byte) (ParseInfo[int8], error) {
			head, tail, err := takeChecked(buf, size)
			if err != nil {
				return ParseInfo[int8]{}, err
			}
			return ParseInfo[int8]{Rendered: getInt8(head), Tail: tail}, nil
		},
		Render:        func(buf []byte) int8 { return getInt8(buf) },
		Build:         func(r int8) int8 { return r },
		SerializeInto: func(b int8, out []byte) []byte { return putInt8(out, b) },
		SizeBytes:     func(int8) int { return size },
	}
}

// Bool serializes as a single byte, 0 for false and 1 for true.
func Bool() Codec[bool, bool] {
	const size = 1
	return Codec[bool, bool]{
		FixedSize: size,
		Parse: func(buf []byte) (ParseInfo[bool], error) {
			head, tail, err := takeChecked(buf, size)
			if err != nil {
				return ParseInfo[bool]{}, err
			}
			return ParseInfo[bool]{Rendered: getUint8(head) != 0, Tail: tail}, nil
		},
		Render: func(buf []byte) bool { return getUint8(buf) != 0 },
		Build:  func(r bool) bool { return r },
		SerializeInto: func(b bool, out []byte) []byte {
			var v uint8
			if b {
				v = 1
			}
			return putUint8(out, v)
		},
		SizeBytes: func(bool) int { return size },
	}
}

func Uint16(e Endianness) Codec[uint16, uint16] {
	const size = 2
	return Codec[uint16, uint16]{
		FixedSize: size,
		Parse: func(buf []byte) (ParseInfo[uint16], error) {
			head, tail, err := takeChecked(buf, size)
			if err != nil {
				return ParseInfo[uint16]{}, err
			}
			return ParseInfo[uint16]{Rendered: getUint16(head, e), Tail: tail}, nil
		},
		Render:        func(buf []byte) uint16 { return getUint16(buf, e) },
		Build:         func(r uint16) uint16 { return r },
		SerializeInto: func(b uint16, out []byte) []byte { return putUint16(out, b, e) },
		SizeBytes:     func(uint16) int { return size },
	}
}

func Int16(e Endianness) Codec[int16, int16] {
	const size = 2
	return Codec[int16, int16]{
		FixedSize: size,
		Parse: func(buf []byte) (ParseInfo[int16], error) {
			head, tail, err := takeChecked(buf, size)
			if err != nil {
				return ParseInfo[int16]{}, err
			}
			return ParseInfo[int16]{Rendered: getInt16(head, e), Tail: tail}, nil
		},
		Render:        func(buf []byte) int16 { return getInt16(buf, e) },
		Build:         func(r int16) int16 { return r },
		SerializeInto: func(b int16, out []byte) []byte { return putInt16(out, b, e) },
		SizeBytes:     func(int16) int { return size },
	}
}

func Uint32(e Endianness) Codec[uint32, uint32] {
	const size = 4
	return Codec[uint32, uint32]{
		FixedSize: size,
		Parse: func(buf []byte) (ParseInfo[uint32], error) {
			head, tail, err := takeChecked(buf, size)
			if err != nil {
				return ParseInfo[uint32]{}, err
			}
			return ParseInfo[uint32]{Rendered: getUint32(head, e), Tail: tail}, nil
		},
		Render:        func(buf []byte) uint32 { return getUint32(buf, e) },
		Build:         func(r uint32) uint32 { return r },
		SerializeInto: func(b uint32, out []byte) []byte { return putUint32(out, b, e) },
		SizeBytes:     func(uint32) int { return size },
	}
}

func Int32(e Endianness) Codec[int32, int32] {
	const size = 4
	return Codec[int32, int32]{
		FixedSize: size,
		Parse: func(buf []byte) (ParseInfo[int32], error) {
			head, tail, err := takeChecked(buf, size)
			if err != nil {
				return ParseInfo[int32]{}, err
			}
			return ParseInfo[int32]{Rendered: getInt32(head, e), Tail: tail}, nil
		},
		Render:        func(buf []byte) int32 { return getInt32(buf, e) },
		Build:         func(r int32) int32 { return r },
		SerializeInto: func(b int32, out []byte) []byte { return putInt32(out, b, e) },
		SizeBytes:     func(int32) int { return size },
	}
}

func Uint64(e Endianness) Codec[uint64, uint64] {
	const size = 8
	return Codec[uint64, uint64]{
		FixedSize: size,
		Parse: func(buf []byte) (ParseInfo[uint64], error) {
			head, tail, err := takeChecked(buf, size)
			if err != nil {
				return ParseInfo[uint64]{}, err
			}
			return ParseInfo[uint64]{Rendered: getUint64(head, e), Tail: tail}, nil
		},
		Render:        func(buf []byte) uint64 { return getUint64(buf, e) },
		Build:         func(r uint64) uint64 { return r },
		SerializeInto: func(b uint64, out []byte) []byte { return putUint64(out, b, e) },
		SizeBytes:     func(uint64) int { return size },
	}
}

func Int64(e Endianness) Codec[int64, int64] {
	const size = 8
	return Codec[int64, int64]{
		FixedSize: size,
		Parse: func(buf []byte) (ParseInfo[int64], error) {
			head, tail, err := takeChecked(buf, size)
			if err != nil {
				return ParseInfo[int64]{}, err
			}
			return ParseInfo[int64]{Rendered: getInt64(head, e), Tail: tail}, nil
		},
		Render:        func(buf []byte) int64 { return getInt64(buf, e) },
		Build:         func(r int64) int64 { return r },
		SerializeInto: func(b int64, out []byte) []byte { return putInt64(out, b, e) },
		SizeBytes:     func(int64) int { return size },
	}
}

func Float32(e Endianness) Codec[float32, float32] {
	const size = 4
	return Codec[float32, float32]{
		FixedSize: size,
		Parse: func(buf []byte) (ParseInfo[float32], error) {
			head, tail, err := takeChecked(buf, size)
			if err != nil {
				return ParseInfo[float32]{}, err
			}
			return ParseInfo[float32]{Rendered: getFloat32(head, e), Tail: tail}, nil
		},
		Render:        func(buf []byte) float32 { return getFloat32(buf, e) },
		Build:         func(r float32) float32 { return r },
		SerializeInto: func(b float32, out []byte) []byte { return putFloat32(out, b, e) },
		SizeBytes:     func(float32) int { return size },
	}
}

func Float64(e Endianness) Codec[float64, float64] {
	const size = 8
	return Codec[float64, float64]{
		FixedSize: size,
		Parse: func(buf []byte) (ParseInfo[float64], error) {
			head, tail, err := takeChecked(buf, size)
			if err != nil {
				return ParseInfo[float64]{}, err
			}
			return ParseInfo[float64]{Rendered: getFloat64(head, e), Tail: tail}, nil
		},
		Render:        func(buf []byte) float64 { return getFloat64(buf, e) },
		Build:         func(r float64) float64 { return r },
		SerializeInto: func(b float64, out []byte) []byte { return putFloat64(out, b, e) },
		SizeBytes:     func(float64) int { return size },
	}
}
