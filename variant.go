package wireform

// Alternative is one arm of a tagged variant: its own erased parse/
// render/build/serialize/size quartet plus Matches, which tests whether
// a Built value belongs to this arm. B is the variant's shared "oneof"
// Built type — every alternative's own Built struct implements it as a
// marker interface, the idiom generated protobuf code uses for sum types
// (gogo/protobuf, a dependency of multiversx-mx-chain-go) — rather than
// the runtime carrying a closed Go union of concrete types.
type Alternative[B any] struct {
	Parse         func(buf []byte) (ParseInfo[any], error)
	Render        func(buf []byte) any
	Build         func(rendered any) B
	SerializeInto func(b B, out []byte) []byte
	SizeBytes     func(b B) int
	Matches       func(b B) bool
}

// VariantSpec is the schema-declared tag-to-alternative table for a
// tagged union, spec.md §4.7's "variant". Grounded on
// original_source/c/src/runtime/tako/tako.hh's overloaded/Unified visitor
// pattern, translated to a runtime dispatch table since Go has no
// std::variant-style closed sum type to visit.
type VariantSpec[Tag comparable, B any] struct {
	TagCodec     Codec[Tag, Tag]
	Alternatives map[Tag]Alternative[B]
}

// TagFor finds the declared tag for a Built value by probing each
// alternative's Matches predicate, used when serializing a variant whose
// caller only has the Built value in hand.
func (s VariantSpec[Tag, B]) TagFor(b B) (Tag, bool) {
	for tag, alt := range s.Alternatives {
		if alt.Matches(b) {
			return tag, true
		}
	}
	var zero Tag
	return zero, false
}

// Rendered is a parsed-but-not-yet-built variant view: the tag has been
// validated against the spec's alternative table, and tail holds the raw
// payload bytes for Match to dispatch on (or Build to parse) — matching
// spec.md §4.7's "the payload's shape depends on the tag" deferral of the
// *build* step. When VariantCodec.Parse produced the value, the payload
// has already been parsed and its result and length are cached
// (payloadParsed, payload, payloadSize), so Build and SizeBytes need not
// parse twice. VariantCodec.Render only reads the tag and keeps the bytes
// after it; Build and SizeBytes then parse the payload on demand.
type Rendered[Tag comparable, B any] struct {
	Tag  Tag
	tail []byte
	spec VariantSpec[Tag, B]

	payloadParsed bool
	payload       any
	payloadSize   int
}

// Build produces the shared oneof Built value for the selected
// alternative. If VariantCodec.Parse already parsed the payload (the
// common case), Build reuses that result rather than parsing again;
// otherwise (a Rendered produced by the unchecked Render path) it parses
// now, propagating any error.
func (r Rendered[Tag, B]) Build() (B, error) {
	alt := r.spec.Alternatives[r.Tag]
	if r.payloadParsed {
		return alt.Build(r.payload), nil
	}
	pi, err := alt.Parse(r.tail)
	if err != nil {
		var zero B
		return zero, err
	}
	return alt.Build(pi.Rendered), nil
}

// SizeBytes reports the total number of wire bytes this variant occupied
// — tag plus payload — so a composite Render/Parse walking several
// back-to-back fields can advance past it without re-Building.
func (r Rendered[Tag, B]) SizeBytes() int {
	tagSize := r.spec.TagCodec.SizeBytes(r.Tag)
	if r.payloadParsed {
		return tagSize + r.payloadSize
	}
	alt := r.spec.Alternatives[r.Tag]
	pi, _ := alt.Parse(r.tail) // Render's "already validated" contract
	return tagSize + (len(r.tail) - len(pi.Tail))
}

// Match dispatches to the handler registered for r's tag, passing the
// raw payload tail for the handler to parse with whatever codec it
// already knows statically — the runtime-dispatch-table analogue of
// original_source's compile-time overloaded visitor. Returns a Malformed
// error if no handler is registered for the tag (which should not happen
// for a Rendered value that passed VariantCodec's Parse, since that
// already validated tag membership).
func (r Rendered[Tag, B]) Match(handlers map[Tag]func(tail []byte) error) error {
	h, ok := handlers[r.Tag]
	if !ok {
		return Malformedf("no match handler registered for variant tag %v", r.Tag)
	}
	return h(r.tail)
}

// VariantCodec builds a Codec[Rendered[Tag,B], B] from spec: Parse reads
// the tag, validates it against the alternative table, then parses the
// selected alternative's payload so the returned tail sits immediately
// after the whole tag-plus-payload consumed region (spec.md §3's tail
// contract, §4.7's tag ‖ payload wire form); SerializeInto looks up the
// alternative by probing TagFor and writes the tag followed by the
// payload.
func VariantCodec[Tag comparable, B any](spec VariantSpec[Tag, B]) Codec[Rendered[Tag, B], B] {
	return Codec[Rendered[Tag, B], B]{
		Parse: func(buf []byte) (ParseInfo[Rendered[Tag, B]], error) {
			tp, err := spec.TagCodec.Parse(buf)
			if err != nil {
				return ParseInfo[Rendered[Tag, B]]{}, err
			}
			alt, ok := spec.Alternatives[tp.Rendered]
			if !ok {
				return ParseInfo[Rendered[Tag, B]]{}, Malformedf("tag %v has no registered variant alternative", tp.Rendered)
			}
			pi, err := alt.Parse(tp.Tail)
			if err != nil {
				return ParseInfo[Rendered[Tag, B]]{}, WrapField(err, "payload")
			}
			rendered := Rendered[Tag, B]{
				Tag: tp.Rendered, tail: tp.Tail, spec: spec,
				payloadParsed: true, payload: pi.Rendered, payloadSize: len(tp.Tail) - len(pi.Tail),
			}
			return ParseInfo[Rendered[Tag, B]]{Rendered: rendered, Tail: pi.Tail}, nil
		},
		Render: func(buf []byte) Rendered[Tag, B] {
			tag := spec.TagCodec.Render(buf)
			tail := buf[spec.TagCodec.SizeBytes(tag):]
			return Rendered[Tag, B]{Tag: tag, tail: tail, spec: spec}
		},
		Build: func(r Rendered[Tag, B]) B {
			b, _ := r.Build()
			return b
		},
		SerializeInto: func(b B, out []byte) []byte {
			tag, ok := spec.TagFor(b)
			if !ok {
				panic("wireform: built value does not match any registered variant alternative")
			}
			tail := spec.TagCodec.SerializeInto(tag, out)
			return spec.Alternatives[tag].SerializeInto(b, tail)
		},
		SizeBytes: func(b B) int {
			tag, ok := spec.TagFor(b)
			if !ok {
				panic("wireform: built value does not match any registered variant alternative")
			}
			return spec.TagCodec.SizeBytes(tag) + spec.Alternatives[tag].SizeBytes(b)
		},
	}
}

// BuildNested resolves r the same way Build does, but first checks depth
// against opts.MaxVariantDepth, returning a Malformed error instead of
// recursing further. A nested-variant alternative's Build closure (one
// whose payload is itself a Rendered[...] variant) should call this with
// depth+1 rather than calling Build directly, so a pathological chain of
// nested tags cannot recurse without bound (spec.md §4.7, options.go).
func BuildNested[Tag comparable, B any](r Rendered[Tag, B], depth int, opts Options) (B, error) {
	if depth > opts.MaxVariantDepth {
		var zero B
		return zero, Malformedf("variant nesting exceeded MaxVariantDepth (%d)", opts.MaxVariantDepth)
	}
	return r.Build()
}

// GetAs type-asserts a variant's Built oneof value to one alternative's
// concrete type, the Built-side counterpart to Rendered.Match: generated
// code reaches for this when it already expects a particular alternative
// and wants a plain bool-ok check rather than a full dispatch.
func GetAs[T any, B any](b B) (T, bool) {
	v, ok := any(b).(T)
	return v, ok
}
