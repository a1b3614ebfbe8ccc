/*
Package wireform is a schema-driven binary serialization runtime: given a
description of a message shape built out of primitives, fixed arrays,
length-prefixed vectors, closed enums, tagged variants, and nested
records, it produces a Codec able to parse bytes into a borrowed
Rendered view, materialize an owned Built value from that view, and
serialize a Built value back to bytes.

# Codec, Rendered, and Built

Every shape in this package is expressed as a Codec[R, B]: R is the
Rendered type, a possibly zero-copy view over the original input buffer,
and B is the Built type, an owned value safe to keep after the buffer it
came from is gone. For scalars R and B coincide (Uint32 is a
Codec[uint32, uint32]); for a record with a vector field, Rendered might
still reference the input slice while Built holds its own copy.

	c := wireform.Uint32(wireform.LittleEndian)
	built, err := wireform.FromBytes(c, data)
	out := wireform.ToBytes(c, built)

Composite shapes are built by combining smaller Codecs: FixedArray wraps
an element Codec N times, FixedVector prepends a runtime length, and
VariantCodec dispatches on a leading tag to one of several registered
Alternatives.

# Versioning

A schema's message evolves by adding a new version rather than mutating
the old one in place: each version's Built type stays around, and a
Step links one version to the next with a Forward (promote, always
total) and a Reverse (demote, may fail if the newer value cannot be
represented in the older schema).

Example: a bakery's third version added a CARMEL flavor its first
version's schema has no slot for.

	type FlavorV1 int
	const (
	    VanillaV1 FlavorV1 = iota
	    ChocolateV1
	)

	type FlavorV3 int
	const (
	    VanillaV3 FlavorV3 = iota
	    ChocolateV3
	    CarmelV3
	)

	flavorStep := wireform.Step{
	    Forward: func(prior any) (any, error) {
	        return FlavorV3(prior.(FlavorV1)), nil
	    },
	    Reverse: func(next any) (any, bool) {
	        f := next.(FlavorV3)
	        if f == CarmelV3 {
	            return nil, false // not representable in v1
	        }
	        return FlavorV1(f), true
	    },
	}

A Chain strings several such Steps together; callers (see the demo
package's bakery example) use Chain.Promote to walk a request forward
to the latest version, handle it once, and Chain.Demote to walk the
response back down to the version the original sender declared —
substituting a schema error alternative if a Reverse step along the way
turns out not to have a representation, so the sender still gets a
well-formed reply at its own version.
*/
package wireform
