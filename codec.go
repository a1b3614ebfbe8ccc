package wireform

// ParseInfo is the pair {rendered, tail} returned by a successful parse:
// tail is the slice of the input immediately after the consumed region
// (spec.md §3).
type ParseInfo[R any] struct {
	Rendered R
	Tail     []byte
}

// Codec is a statically-known description of a message shape (spec.md
// §3). It is expressed as a struct of closures rather than an interface
// so that a single generic constructor (Uint32, FixedArray, Variant, ...)
// can build one without a matching named type for every instantiation —
// the direct generalization of the teacher's PackFn[T] single-function
// idiom to the four-operation contract this spec requires.
//
//   - Parse checks the buffer is long enough (and, for enums/variants/
//     records, that its contents are in-domain) before returning.
//   - Render assumes the buffer was already validated by a prior Parse
//     and never fails.
//   - Build materializes an owned value from a borrowed Rendered view.
//   - SerializeInto writes Built into the front of out and returns the
//     remaining tail.
//   - SizeBytes computes the serialized length of a Built value without
//     writing it.
//
// FixedSize is the compile-time-known size in bytes for codecs whose
// wire size does not depend on the value being encoded (scalars, fixed
// arrays of fixed-size elements); it is 0 for variable-size codecs
// (strings, length-prefixed vectors, heterogeneous lists, variants,
// records with vectors) where callers must use SizeBytes instead.
type Codec[R any, B any] struct {
	FixedSize     int
	Parse         func(buf []byte) (ParseInfo[R], error)
	Render        func(buf []byte) R
	Build         func(r R) B
	SerializeInto func(b B, out []byte) []byte
	SizeBytes     func(b B) int
}

// ToBytes serializes a Built value into a freshly allocated buffer sized
// by codec.SizeBytes, generalizing the teacher's ToBytes(obj, PackFn)
// helper to the split Rendered/Built model.
func ToBytes[R any, B any](codec Codec[R, B], b B) []byte {
	out := make([]byte, codec.SizeBytes(b))
	codec.SerializeInto(b, out)
	return out
}

// FromBytes parses data with codec and immediately builds an owned
// value, returning an error rather than the teacher's "returns nil on
// failure" convention (idiomatic Go error propagation, spec.md §7).
func FromBytes[R any, B any](codec Codec[R, B], data []byte) (B, error) {
	pi, err := codec.Parse(data)
	if err != nil {
		var zero B
		return zero, err
	}
	return codec.Build(pi.Rendered), nil
}
