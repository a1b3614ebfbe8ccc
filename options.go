package wireform

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Options configures runtime limits that guard against
// attacker-controlled schema recursion. Grounded on
// multiversx-mx-chain-go's direct dependency on go-playground/validator
// for exactly this kind of struct-tag-declared bound.
type Options struct {
	// MaxVariantDepth is the largest depth BuildNested accepts before
	// giving up with a Malformed error (spec.md §4.7's "nested variants
	// dispatch recursively"). The depth is whatever the caller passes to
	// BuildNested; Rendered.Match and Rendered.Build do not consult it.
	MaxVariantDepth int `validate:"gte=1,lte=64"`
}

// DefaultOptions returns the options this package uses when none are
// supplied explicitly.
func DefaultOptions() Options {
	return Options{MaxVariantDepth: 16}
}

// Validate checks o against its declared constraints, returning the
// validator's own error type wrapped with field-name context.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return WrapField(err, "Options")
	}
	return nil
}
