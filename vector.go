package wireform

// FixedVector builds a Codec for a runtime-length, length-prefixed
// sequence of uniform elements: lenCodec reads/writes the count, elem
// reads/writes each element. This mirrors original_source's VectorView<T>
// (tako.hh) — a length prefix followed by build_vector's back-to-back
// element layout, the counterpart to FixedArray with the length carried
// on the wire instead of fixed by the schema.
func FixedVector[L Integer, R any, B any](lenCodec Codec[L, L], elem Codec[R, B]) Codec[[]R, []B] {
	return Codec[[]R, []B]{
		Parse: func(buf []byte) (ParseInfo[[]R], error) {
			lp, err := lenCodec.Parse(buf)
			if err != nil {
				return ParseInfo[[]R]{}, err
			}
			n := int(lp.Rendered)
			if n < 0 {
				return ParseInfo[[]R]{}, Malformedf("negative vector length %d", n)
			}
			return parseN(elem, n, lp.Tail)
		},
		Render: func(buf []byte) []R {
			n := int(lenCodec.Render(buf))
			pi, _ := parseN(elem, n, buf[lenCodec.SizeBytes(L(n)):])
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
			tail := lenCodec.SerializeInto(L(len(b)), out)
			for _, v := range b {
				tail = elem.SerializeInto(v, tail)
			}
			return tail
		},
		SizeBytes: func(b []B) int {
			total := lenCodec.SizeBytes(L(len(b)))
			for _, v := range b {
				total += elem.SizeBytes(v)
			}
			return total
		},
	}
}

// HeterogeneousListCodec length-prefixes a sequence whose elements are
// parsed one at a time by parseItem, which receives the tail remaining
// after the previous element and must return the parsed item alongside
// its own tail. This generalizes FixedVector to per-index-varying element
// shape (spec.md §4.5's "heterogeneous list": each position's decoded
// type may differ, e.g. list-of-variants), matching original_source's
// ListView<T> being built from parts of possibly differing rendered kind.
func HeterogeneousListCodec[L Integer, Item any](
	lenCodec Codec[L, L],
	parseItem func(tail []byte) (Item, []byte, error),
	serializeItem func(item Item, out []byte) []byte,
	sizeItem func(item Item) int,
) Codec[[]Item, []Item] {
	return Codec[[]Item, []Item]{
		Parse: func(buf []byte) (ParseInfo[[]Item], error) {
			lp, err := lenCodec.Parse(buf)
			if err != nil {
				return ParseInfo[[]Item]{}, err
			}
			n := int(lp.Rendered)
			if n < 0 {
				return ParseInfo[[]Item]{}, Malformedf("negative list length %d", n)
			}
			items := make([]Item, n)
			tail := lp.Tail
			for i := 0; i < n; i++ {
				item, next, err := parseItem(tail)
				if err != nil {
					return ParseInfo[[]Item]{}, WrapIndex(err, i)
				}
				items[i] = item
				tail = next
			}
			return ParseInfo[[]Item]{Rendered: items, Tail: tail}, nil
		},
		Render: func(buf []byte) []Item {
			n := int(lenCodec.Render(buf))
			tail := buf[lenCodec.SizeBytes(L(n)):]
			items := make([]Item, n)
			for i := 0; i < n; i++ {
				item, next, err := parseItem(tail)
				if err != nil {
					break
				}
				items[i] = item
				tail = next
			}
			return items
		},
		Build: func(r []Item) []Item { return r },
		SerializeInto: func(b []Item, out []byte) []byte {
			tail := lenCodec.SerializeInto(L(len(b)), out)
			for _, item := range b {
				tail = serializeItem(item, tail)
			}
			return tail
		},
		SizeBytes: func(b []Item) int {
			total := lenCodec.SizeBytes(L(len(b)))
			for _, item := range b {
				total += sizeItem(item)
			}
			return total
		},
	}
}
