package wireform

// StringCodec builds a Codec[string, string] over an integer length
// prefix followed by that many 8-bit code units, per spec.md §6's
// "a record with an integer len and a len-element vector of 8-bit code
// units". Widths of 8, 16, and 32 bits are all just instantiations of
// this same generic constructor over different L.
func StringCodec[L Integer](lenCodec Codec[L, L]) Codec[string, string] {
	return Codec[string, string]{
		Parse: func(buf []byte) (ParseInfo[string], error) {
			lp, err := lenCodec.Parse(buf)
			if err != nil {
				return ParseInfo[string]{}, err
			}
			n := int(lp.Rendered)
			if n < 0 {
				return ParseInfo[string]{}, Malformedf("negative string length %d", n)
			}
			head, tail, err := takeChecked(lp.Tail, n)
			if err != nil {
				return ParseInfo[string]{}, err
			}
			return ParseInfo[string]{Rendered: string(head), Tail: tail}, nil
		},
		Render: func(buf []byte) string {
			n := int(lenCodec.Render(buf))
			off := lenCodec.SizeBytes(L(n))
			return string(buf[off : off+n])
		},
		Build: func(r string) string { return r },
		SerializeInto: func(b string, out []byte) []byte {
			tail := lenCodec.SerializeInto(L(len(b)), out)
			n := copy(tail, b)
			return tail[n:]
		},
		SizeBytes: func(b string) int {
			return lenCodec.SizeBytes(L(len(b))) + len(b)
		},
	}
}

// MaxStringLen returns the largest string length a length prefix of the
// given byte width can carry.
func MaxStringLen(prefixWidthBytes int) int {
	switch prefixWidthBytes {
	case 1:
		return 1<<8 - 1
	case 2:
		return 1<<16 - 1
	case 4:
		return 1<<32 - 1
	default:
		panic("wireform: unsupported string length prefix width")
	}
}

// EncodeString serializes s with codec, first checking s does not exceed
// the length prefix's range — spec.md §6's "attempting to construct one
// whose logical length exceeds the prefix's range fails with a
// 'too long' error", which the bare Codec[string,string] contract has no
// room to report since SerializeInto does not return an error.
func EncodeString[L Integer](codec Codec[string, string], prefixWidthBytes int, s string) ([]byte, error) {
	if len(s) > MaxStringLen(prefixWidthBytes) {
		return nil, Malformedf("string length %d exceeds the %d-byte length prefix's range", len(s), prefixWidthBytes)
	}
	return ToBytes(codec, s), nil
}
