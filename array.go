package wireform

// parseN walks n back-to-back instances of elem off the front of buf,
// the shared stepping logic behind FixedArray's Parse and Render (and
// reused by vector.go for FixedVector), grounded on
// original_source's parse_vector<T> helper (tako.hh) shared across
// ArrayView/VectorView/ListView.
func parseN[R any, B any](elem Codec[R, B], n int, buf []byte) (ParseInfo[[]R], error) {
	rs := make([]R, n)
	tail := buf
	for i := 0; i < n; i++ {
		pi, err := elem.Parse(tail)
		if err != nil {
			return ParseInfo[[]R]{}, WrapIndex(err, i)
		}
		rs[i] = pi.Rendered
		tail = pi.Tail
	}
	return ParseInfo[[]R]{Rendered: rs, Tail: tail}, nil
}

// FixedArray builds a Codec for a compile-time-known-length sequence of
// N elements of a uniform inner codec, mirroring original_source's
// ArrayView<T, N> (tako.hh): unlike Vector there is no runtime length
// prefix, so FixedSize is elem.FixedSize*n whenever elem itself has a
// fixed size, and parsing simply walks the elements back to back.
func FixedArray[R any, B any](n int, elem Codec[R, B]) Codec[[]R, []B] {
	fixed := 0
	if elem.FixedSize > 0 {
		fixed = elem.FixedSize * n
	}
	return Codec[[]R, []B]{
		FixedSize: fixed,
		Parse: func(buf []byte) (ParseInfo[[]R], error) {
			return parseN(elem, n, buf)
		},
		Render: func(buf []byte) []R {
			// Render assumes buf was already validated by a prior Parse,
			// so the error path here is unreachable in practice.
			pi, _ := parseN(elem, n, buf)
			return pi.Rendered
		},
		Build: func(r []R) []B {
			bs := make([]B, len(r))
			for i, v := range r {
				bs[i] = elem.Build(v)
			}
			return bs
		},
		SerializeInto: func(b []B, out []byte) []byte {
			tail := out
			for _, v := range b {
				tail = elem.SerializeInto(v, tail)
			}
			return tail
		},
		SizeBytes: func(b []B) int {
			if fixed > 0 {
				return fixed
			}
			total := 0
			for _, v := range b {
				total += elem.SizeBytes(v)
			}
			return total
		},
	}
}
