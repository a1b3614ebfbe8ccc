package wireform

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Kind is the exhaustive taxonomy of parse failures: a codec operation
// either ran off the end of the buffer, or saw data that is present but
// invalid for the target type.
type Kind int

const (
	// NotEnoughData means the next codec step would read past the end of
	// the buffer.
	NotEnoughData Kind = iota
	// Malformed means an enum saw an out-of-domain value (checked path),
	// a numeric literal exceeded its target range during textual parsing,
	// or a container's length did not match a declared length.
	Malformed
)

func (k Kind) String() string {
	switch k {
	case NotEnoughData:
		return "NOT_ENOUGH_DATA"
	case Malformed:
		return "MALFORMED"
	default:
		return "UNKNOWN_KIND"
	}
}

// ParseError is the single error type every fallible codec operation in
// this package returns. Its Kind is one of the two exhaustive values
// above; callers should switch on Kind (or use IsNotEnoughData/
// IsMalformed) rather than compare messages.
type ParseError struct {
	Kind Kind
	msg  string
}

func (e *ParseError) Error() string {
	if e.msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

// ErrNotEnoughData is returned verbatim (never wrapped with new context by
// the leaf primitive codecs) when a buffer is shorter than a field needs.
var ErrNotEnoughData = &ParseError{Kind: NotEnoughData, msg: "buffer too short"}

// Malformedf builds a MALFORMED parse error with a formatted message.
func Malformedf(format string, args ...any) error {
	return &ParseError{Kind: Malformed, msg: fmt.Sprintf(format, args...)}
}

// KindOf recovers the Kind carried by err, walking any pkg/errors wrapping
// applied while the error propagated up through record/array/variant
// composition. Returns false if err is not (or does not wrap) a
// *ParseError, which should not happen on any path exercised by this
// package but is handled defensively at the boundary with caller code.
func KindOf(err error) (Kind, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}

// IsNotEnoughData reports whether err is, or wraps, a NOT_ENOUGH_DATA
// parse error.
func IsNotEnoughData(err error) bool {
	k, ok := KindOf(err)
	return ok && k == NotEnoughData
}

// IsMalformed reports whether err is, or wraps, a MALFORMED parse error.
func IsMalformed(err error) bool {
	k, ok := KindOf(err)
	return ok && k == Malformed
}

// WrapField adds "field <name>" context to err as it bubbles out of a
// record's sequential composition, preserving the original Kind for
// KindOf/IsMalformed/IsNotEnoughData.
func WrapField(err error, name string) error {
	if err == nil {
		return nil
	}
	return pkgerrors.Wrapf(err, "field %s", name)
}

// WrapIndex adds "index <i>" context to err as it bubbles out of an
// array/vector/list element, preserving the original Kind.
func WrapIndex(err error, i int) error {
	if err == nil {
		return nil
	}
	return pkgerrors.Wrapf(err, "index %d", i)
}
