package wireform

// Virtual is a deferred field handle: a record whose layout declares a
// field's byte span before its interpretation is known (spec.md §4.6)
// captures the tail slice at that offset and the caller decides the
// codec to apply later, rather than the record composer needing to know
// every possible interpretation up front. Grounded on the teacher's
// doc.go worked example of hand-composing serializers field by field,
// generalized to the "come back later" access pattern spec.md §4.6
// describes.
type Virtual[R any, B any] struct {
	tail  []byte
	codec Codec[R, B]
}

// NewVirtual captures tail for later interpretation with codec.
func NewVirtual[R any, B any](tail []byte, codec Codec[R, B]) Virtual[R, B] {
	return Virtual[R, B]{tail: tail, codec: codec}
}

// Resolve parses the deferred field now, returning its Rendered view and
// the tail immediately after it — the field(tail_slice) -> ParseResult
// contract of spec.md §4.6.
func (v Virtual[R, B]) Resolve() (ParseInfo[R], error) {
	return v.codec.Parse(v.tail)
}

// Build resolves and builds the deferred field in one step.
func (v Virtual[R, B]) Build() (B, error) {
	pi, err := v.Resolve()
	if err != nil {
		var zero B
		return zero, err
	}
	return v.codec.Build(pi.Rendered), nil
}
