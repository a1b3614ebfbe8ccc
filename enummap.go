package wireform

// EnumMap is a total map from an enum's declared domain to values of type
// V, stored as a dense slice indexed by EnumBound.Encode rather than a Go
// map — the sibling dense-array container spec.md §4.3 describes
// alongside EnumSet. Per spec.md §3/§4.3 there is no per-key presence
// bit: every slot exists from construction, holding V's zero value until
// Set overwrites it, and "empty" means every slot still equals that zero
// value — so V must be comparable to tell the two states apart.
type EnumMap[E Integer, V comparable] struct {
	bound EnumBound[E]
	slots []V
}

// NewEnumMap returns an EnumMap over bound with every slot at V's zero
// value.
func NewEnumMap[E Integer, V comparable](bound EnumBound[E]) EnumMap[E, V] {
	return EnumMap[E, V]{
		bound: bound,
		slots: make([]V, bound.Width()),
	}
}

// Set stores value at key.
func (m *EnumMap[E, V]) Set(key E, value V) {
	m.slots[m.bound.Encode(key)] = value
}

// Get returns the value stored at key and whether it differs from V's
// zero value.
func (m EnumMap[E, V]) Get(key E) (V, bool) {
	v := m.slots[m.bound.Encode(key)]
	var zero V
	return v, v != zero
}

// Unset resets the slot at key back to V's zero value.
func (m *EnumMap[E, V]) Unset(key E) {
	var zero V
	m.slots[m.bound.Encode(key)] = zero
}

// IsEmpty reports whether every slot still holds V's zero value.
func (m EnumMap[E, V]) IsEmpty() bool {
	var zero V
	for _, v := range m.slots {
		if v != zero {
			return false
		}
	}
	return true
}

// Len returns the number of slots that differ from V's zero value.
func (m EnumMap[E, V]) Len() int {
	var zero V
	n := 0
	for _, v := range m.slots {
		if v != zero {
			n++
		}
	}
	return n
}

// Keys returns the keys whose slot differs from V's zero value, in
// ascending order.
func (m EnumMap[E, V]) Keys() []E {
	var zero V
	var out []E
	for i, v := range m.slots {
		if v != zero {
			out = append(out, m.bound.Decode(i))
		}
	}
	return out
}
