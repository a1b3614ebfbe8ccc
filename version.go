package wireform

import "go.uber.org/zap"

// Step is one adjacent-version edge in a schema's version chain: Forward
// is the always-total promotion from a value at this version to the
// value one version newer, and Reverse is the possibly-partial demotion
// back down, which fails when the newer version's value is not
// representable in the older schema (spec.md §4.8). Built values are
// carried as any because each version has its own distinct Go type;
// grounded on original_source's EnumConversion/StructConversion/
// VariantConversion shapes (python/test_types/conversions.py), which are
// likewise pairs of forward-total/reverse-partial functions between two
// adjacent concrete types.
type Step struct {
	Forward func(prior any) (any, error)
	Reverse func(next any) (any, bool)
}

// Chain is an ordered sequence of adjacent-version Steps, step i
// converting between version i and version i+1. Grounded on
// original_source/python/test_types/bakery/v3.py's
// ConversionsFromPrior(Prior, ...) chaining (each version only ever
// declares its conversion to/from its immediate predecessor) and on
// other_examples/luxfi-codec__codec.go's Manager (a version-keyed
// dispatch table), generalized here to a linear walk rather than a flat
// map since every hop must pass through its intermediate versions.
type Chain struct {
	steps []Step
}

// NewChain builds a Chain over steps, where len(steps) is the number of
// version boundaries (one less than the number of versions).
func NewChain(steps ...Step) Chain {
	return Chain{steps: steps}
}

// Latest returns the version index one past the last boundary, i.e. the
// newest version this chain knows how to promote to.
func (c Chain) Latest() int {
	return len(c.steps)
}

// Promote walks value, understood as being at version from, forward
// through every remaining step to the latest version. This is total: a
// forward conversion never fails to find a representation, though an
// individual step's Forward may still report a schema error for reasons
// unrelated to representability (e.g. resource exhaustion), which
// Promote propagates rather than swallows.
func (c Chain) Promote(from int, value any) (any, error) {
	cur := value
	for i := from; i < len(c.steps); i++ {
		next, err := c.steps[i].Forward(cur)
		if err != nil {
			return nil, WrapIndex(err, i)
		}
		cur = next
	}
	return cur, nil
}

// Demote walks a latest-version value down to version to, using each
// step's Reverse in turn. If a Reverse step reports the value is not
// representable at its target version, demotion restarts from scratch
// using errorAlternative(latest) — the "substitute the schema error
// alternative" policy of spec.md §4.8 — since the original sender must
// still receive a well-formed response at its own declared version even
// when its request's response cannot be expressed there. errorAlternative
// is substituted at most len(steps)+1 times to guarantee termination even
// if the error alternative itself is not fully representable at every
// older version; if that bound is exceeded Demote returns the last
// attempted value along with false.
func (c Chain) Demote(to int, value any, errorAlternative func(latest int) any) (any, bool) {
	logger := Logger()
	maxRestarts := len(c.steps) + 1
	cur := value
	ver := c.Latest()
	restarts := 0
	for ver > to {
		next, ok := c.steps[ver-1].Reverse(cur)
		if !ok {
			restarts++
			if restarts > maxRestarts {
				return cur, false
			}
			logger.Warn("demotion failed, substituting schema error alternative",
				zap.Int("failed_at_version", ver),
				zap.Int("target_version", to),
				zap.Int("restart", restarts),
			)
			cur = errorAlternative(c.Latest())
			ver = c.Latest()
			continue
		}
		cur = next
		ver--
	}
	return cur, true
}
