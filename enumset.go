package wireform

import "math/bits"

// EnumSet is a set of enum values backed by a dense word-array bitset
// indexed by EnumBound.Encode, mirroring original_source's
// EnumSet<KeyEnum> (enum_set.hh): a std::bitset<BOUND.end()> there, a
// []uint64 word array here since Go generics cannot size an array by a
// runtime-computed bound. No bitset library appears anywhere in the
// retrieval pack, so this word array plus math/bits is the justified
// standard-library rendition of that concern (see DESIGN.md).
type EnumSet[E Integer] struct {
	bound EnumBound[E]
	words []uint64
}

// NewEnumSet returns an empty set over bound's domain.
func NewEnumSet[E Integer](bound EnumBound[E]) EnumSet[E] {
	n := (bound.Width() + 63) / 64
	return EnumSet[E]{bound: bound, words: make([]uint64, n)}
}

func (s *EnumSet[E]) wordBit(v E) (word, bit int) {
	off := s.bound.Encode(v)
	return off / 64, off % 64
}

// Insert adds v to the set. v must lie within the set's bound.
func (s *EnumSet[E]) Insert(v E) {
	w, b := s.wordBit(v)
	s.words[w] |= 1 << uint(b)
}

// Erase removes v from the set, a no-op if v was absent.
func (s *EnumSet[E]) Erase(v E) {
	w, b := s.wordBit(v)
	s.words[w] &^= 1 << uint(b)
}

// Contains reports whether v is a member.
func (s EnumSet[E]) Contains(v E) bool {
	if !s.bound.Contains(v) {
		return false
	}
	off := s.bound.Encode(v)
	return s.words[off/64]&(1<<uint(off%64)) != 0
}

// Count returns the number of set members, original_source's size().
func (s EnumSet[E]) Count() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether the set has no members.
func (s EnumSet[E]) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Clear removes every member.
func (s *EnumSet[E]) Clear() {
	for i := range s.words {
		s.words[i] = 0
	}
}

// Values returns the set's members in ascending declared-value order,
// original_source's const_iterator advance_to_set_bit() semantics.
func (s EnumSet[E]) Values() []E {
	out := make([]E, 0, s.Count())
	for wi, w := range s.words {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			off := wi*64 + bit
			out = append(out, s.bound.Decode(off))
			w &^= 1 << uint(bit)
		}
	}
	return out
}

// Equal reports whether s and o contain exactly the same members.
func (s EnumSet[E]) Equal(o EnumSet[E]) bool {
	if len(s.words) != len(o.words) {
		return false
	}
	for i := range s.words {
		if s.words[i] != o.words[i] {
			return false
		}
	}
	return true
}

// HasULLongRepr reports whether this set's bound fits the "unshifted
// external ullong encoding" of spec.md §4.3, mirroring original_source's
// compile-time HAS_ULLONG_REPR = (BOUND.max < 64) && (BOUND.min >= 0)
// exactly: the check is on Max, not on Width, since a set whose Min sits
// above 0 needs room for the external left-shift by Min on top of its
// own bits — a bound like {16, 70} has Width() == 55 (<= 64) but Max
// == 70, so shifting left by 16 would push bit 54 out past bit 63 and
// silently lose that member.
func (s EnumSet[E]) HasULLongRepr() bool {
	return int64(s.bound.Max) < 64 && int64(s.bound.Min) >= 0
}

// ToULLong packs the set into a single uint64 for wire transmission. Per
// spec.md §4.3 and Testable Property 4, the encoding is deliberately
// *unshifted*: bit i of the result is set iff the enum value whose
// underlying integer is i is a member, i.e. the external representation
// is shifted left by bound.Min relative to the internal word array (where
// bit i stands for the value bound.Min + i) — original_source's
// to_ullong() returning bitset_.to_ullong() << ULLONG_EXTERNAL_SHIFT.
// Panics if HasULLongRepr is false; callers must check first.
func (s EnumSet[E]) ToULLong() uint64 {
	if !s.HasULLongRepr() {
		panic("wireform: enum bound too wide for a ullong representation")
	}
	var out uint64
	if len(s.words) > 0 {
		out = s.words[0]
	}
	return out << uint(s.bound.Min)
}

// FromULLong is the inverse of ToULLong: it right-shifts by bound.Min
// before storing, undoing the external unshifted encoding, matching
// original_source's constructor bitset_(val >> ULLONG_EXTERNAL_SHIFT).
func FromULLong[E Integer](bound EnumBound[E], val uint64) EnumSet[E] {
	s := NewEnumSet(bound)
	if !s.HasULLongRepr() {
		panic("wireform: enum bound too wide for a ullong representation")
	}
	s.words[0] = val >> uint(bound.Min)
	// mask off any bits beyond the declared width so a malformed wire
	// value cannot report spurious membership past bound.Max.
	if w := bound.Width(); w < 64 {
		s.words[0] &= (uint64(1) << uint(w)) - 1
	}
	return s
}

// EnumSetCodec builds a Codec[uint64, EnumSet[E]] over an underlying
// uint64 codec, for schemas that transmit an EnumSet via its ullong
// representation (spec.md §4.3).
func EnumSetCodec[E Integer](bound EnumBound[E], underlying Codec[uint64, uint64]) Codec[uint64, EnumSet[E]] {
	return Codec[uint64, EnumSet[E]]{
		FixedSize: underlying.FixedSize,
		Parse:     underlying.Parse,
		Render:    underlying.Render,
		Build: func(r uint64) EnumSet[E] {
			return FromULLong(bound, r)
		},
		SerializeInto: func(b EnumSet[E], out []byte) []byte {
			return underlying.SerializeInto(b.ToULLong(), out)
		},
		SizeBytes: func(b EnumSet[E]) int {
			return underlying.SizeBytes(b.ToULLong())
		},
	}
}
