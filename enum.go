package wireform

import "fmt"

// Integer is the set of Go types a closed enum's underlying wire
// representation may take, generalizing the teacher's IntBased
// constraint (primitives.go) beyond int/int64 to every fixed-width
// integer width spec.md §4.2 allows for an enum's storage type.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// EnumBound describes the dense range [Min, Max] a closed enum's declared
// values span, mirroring original_source's EnumBound<Enum> (enum_util.hh):
// Min/Max are computed once from the schema's value list, and every other
// enum operation (fixed-width parse, EnumSet indexing) is expressed in
// terms of the zero-based encoding this range induces.
type EnumBound[E Integer] struct {
	Min E
	Max E
}

// Width is the number of representable positions from Min through Max,
// i.e. original_source's EnumBound::end().
func (b EnumBound[E]) Width() int {
	return int(b.Max-b.Min) + 1
}

// Encode maps a value inside [Min, Max] onto its zero-based offset,
// original_source's EnumBound::encode.
func (b EnumBound[E]) Encode(v E) int {
	return int(v - b.Min)
}

// Decode is the inverse of Encode, original_source's EnumBound::decode.
func (b EnumBound[E]) Decode(off int) E {
	return b.Min + E(off)
}

// Contains reports whether v falls inside the declared bound. It does not
// by itself prove v is one of the enum's declared values when the domain
// is sparse (spec.md §4.2's "closed, possibly sparse" enums) — callers
// needing full validation should use EnumDescriptor.Contains instead.
func (b EnumBound[E]) Contains(v E) bool {
	return v >= b.Min && v <= b.Max
}

// EnumDescriptor is the schema-declared domain of a closed enum: the
// exact set of valid underlying values (which may be sparse within their
// bound, per spec.md §4.2) plus the bound derived from them.
type EnumDescriptor[E Integer] struct {
	Bound  EnumBound[E]
	Values map[E]struct{}
	Names  map[E]string
}

// NewEnumDescriptor computes an EnumDescriptor's bound from the given
// values, mirroring original_source's find_enum_bound<Enum>() which scans
// Enum::VALUES once at startup.
func NewEnumDescriptor[E Integer](values map[E]string) EnumDescriptor[E] {
	if len(values) == 0 {
		panic("wireform: enum descriptor needs at least one value")
	}
	set := make(map[E]struct{}, len(values))
	var min, max E
	first := true
	for v := range values {
		set[v] = struct{}{}
		if first || v < min {
			min = v
		}
		if first || v > max {
			max = v
		}
		first = false
	}
	return EnumDescriptor[E]{
		Bound:  EnumBound[E]{Min: min, Max: max},
		Values: set,
		Names:  values,
	}
}

// Contains reports whether v is one of the enum's declared values.
func (d EnumDescriptor[E]) Contains(v E) bool {
	_, ok := d.Values[v]
	return ok
}

// Name returns the schema name for v, or "" if v is not declared.
func (d EnumDescriptor[E]) Name(v E) string {
	return d.Names[v]
}

// IntegerCodec adapts a fixed-width scalar codec over its raw underlying
// type U (uint8, int32, ...) to a Codec[E, E] over a distinct declared
// type E sharing that same width — the glue between the plain
// Uint8/Int32/... constructors in primitives.go and a schema's own named
// enum/newtype types, since Go generics treat E and U as unrelated types
// even when E's underlying type is U.
func IntegerCodec[E Integer, U Integer](underlying Codec[U, U]) Codec[E, E] {
	return Codec[E, E]{
		FixedSize: underlying.FixedSize,
		Parse: func(buf []byte) (ParseInfo[E], error) {
			pi, err := underlying.Parse(buf)
			if err != nil {
				return ParseInfo[E]{}, err
			}
			return ParseInfo[E]{Rendered: E(pi.Rendered), Tail: pi.Tail}, nil
		},
		Render: func(buf []byte) E { return E(underlying.Render(buf)) },
		Build:  func(r E) E { return r },
		SerializeInto: func(b E, out []byte) []byte {
			return underlying.SerializeInto(U(b), out)
		},
		SizeBytes: func(b E) int { return underlying.SizeBytes(U(b)) },
	}
}

// EnumCodec builds a Codec[E, E] over an underlying fixed-width scalar
// codec, checking domain membership at Parse time and returning a
// Malformed error for any undeclared value, inside or outside the bound
// (spec.md §4.2's
// "on parse, an out-of-domain value is MALFORMED" rule) — the fixed-width
// counterpart of the teacher's varint-based IntEnum[T IntBased].
func EnumCodec[E Integer](desc EnumDescriptor[E], underlying Codec[E, E]) Codec[E, E] {
	return Codec[E, E]{
		FixedSize: underlying.FixedSize,
		Parse: func(buf []byte) (ParseInfo[E], error) {
			pi, err := underlying.Parse(buf)
			if err != nil {
				return ParseInfo[E]{}, err
			}
			if !desc.Contains(pi.Rendered) {
				return ParseInfo[E]{}, Malformedf("value %v is not a declared enum member", pi.Rendered)
			}
			return pi, nil
		},
		Render:        underlying.Render,
		Build:         func(r E) E { return r },
		SerializeInto: underlying.SerializeInto,
		SizeBytes:     underlying.SizeBytes,
	}
}

// String renders v using its schema name if declared, falling back to the
// raw underlying value otherwise — used by demo package String() methods.
func (d EnumDescriptor[E]) String(v E) string {
	if name := d.Names[v]; name != "" {
		return name
	}
	return fmt.Sprintf("%v", v)
}
