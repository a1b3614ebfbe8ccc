package wireform_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wireform/wireform"
)

// person and box are the two alternatives used by TestVariantScenarioB,
// matching spec.md §8 Scenario B's ThingMsg{tag, body: variant{0->Person,
// 1->Box, 2->Pencil}} (Pencil omitted here as a third alternative would
// not exercise anything Box doesn't already).
type thing interface{ isThing() }

type person struct {
	Name string
	Age  int16
}

type box struct{ Volume int32 }

func (person) isThing() {}
func (box) isThing()    {}

func personCodec() wireform.Codec[person, person] {
	name := wireform.StringCodec(wireform.Int32(wireform.LittleEndian))
	age := wireform.Int16(wireform.LittleEndian)
	return wireform.Codec[person, person]{
		Parse: func(buf []byte) (wireform.ParseInfo[person], error) {
			np, err := name.Parse(buf)
			if err != nil {
				return wireform.ParseInfo[person]{}, err
			}
			ap, err := age.Parse(np.Tail)
			if err != nil {
				return wireform.ParseInfo[person]{}, err
			}
			return wireform.ParseInfo[person]{Rendered: person{Name: np.Rendered, Age: ap.Rendered}, Tail: ap.Tail}, nil
		},
		Render: func(buf []byte) person {
			n := name.Render(buf)
			off := name.SizeBytes(n)
			a := age.Render(buf[off:])
			return person{Name: n, Age: a}
		},
		Build: func(r person) person { return r },
		SerializeInto: func(b person, out []byte) []byte {
			tail := name.SerializeInto(b.Name, out)
			return age.SerializeInto(b.Age, tail)
		},
		SizeBytes: func(b person) int { return name.SizeBytes(b.Name) + age.SizeBytes(b.Age) },
	}
}

func boxCodec() wireform.Codec[box, box] {
	vol := wireform.Int32(wireform.LittleEndian)
	return wireform.Codec[box, box]{
		FixedSize: vol.FixedSize,
		Parse: func(buf []byte) (wireform.ParseInfo[box], error) {
			pi, err := vol.Parse(buf)
			if err != nil {
				return wireform.ParseInfo[box]{}, err
			}
			return wireform.ParseInfo[box]{Rendered: box{Volume: pi.Rendered}, Tail: pi.Tail}, nil
		},
		Render:        func(buf []byte) box { return box{Volume: vol.Render(buf)} },
		Build:         func(r box) box { return r },
		SerializeInto: func(b box, out []byte) []byte { return vol.SerializeInto(b.Volume, out) },
		SizeBytes:     func(b box) int { return vol.SizeBytes(b.Volume) },
	}
}

func thingSpec() wireform.VariantSpec[uint8, thing] {
	p := personCodec()
	b := boxCodec()
	return wireform.VariantSpec[uint8, thing]{
		TagCodec: wireform.Uint8(),
		Alternatives: map[uint8]wireform.Alternative[thing]{
			0: {
				Parse:         func(buf []byte) (wireform.ParseInfo[any], error) { pi, err := p.Parse(buf); return wireform.ParseInfo[any]{Rendered: pi.Rendered, Tail: pi.Tail}, err },
				Render:        func(buf []byte) any { return p.Render(buf) },
				Build:         func(r any) thing { return p.Build(r.(person)) },
				SerializeInto: func(v thing, out []byte) []byte { return p.SerializeInto(v.(person), out) },
				SizeBytes:     func(v thing) int { return p.SizeBytes(v.(person)) },
				Matches:       func(v thing) bool { _, ok := v.(person); return ok },
			},
			1: {
				Parse:         func(buf []byte) (wireform.ParseInfo[any], error) { pi, err := b.Parse(buf); return wireform.ParseInfo[any]{Rendered: pi.Rendered, Tail: pi.Tail}, err },
				Render:        func(buf []byte) any { return b.Render(buf) },
				Build:         func(r any) thing { return b.Build(r.(box)) },
				SerializeInto: func(v thing, out []byte) []byte { return b.SerializeInto(v.(box), out) },
				SizeBytes:     func(v thing) int { return b.SizeBytes(v.(box)) },
				Matches:       func(v thing) bool { _, ok := v.(box); return ok },
			},
		},
	}
}

// TestVariantScenarioB reproduces spec.md §8 Scenario B: wire
// `00 03 00 00 00 'b' 'o' 'b' 04 00` parses to Person{name:"bob", age:4}.
func TestVariantScenarioB(t *testing.T) {
	codec := wireform.VariantCodec(thingSpec())
	wire := []byte{0x00, 0x03, 0x00, 0x00, 0x00, 'b', 'o', 'b', 0x04, 0x00}

	built, err := wireform.FromBytes(codec, wire)
	require.NoError(t, err)

	p, ok := wireform.GetAs[person](built)
	require.True(t, ok)
	require.Equal(t, person{Name: "bob", Age: 4}, p)

	roundTrip := wireform.ToBytes(codec, built)
	require.Equal(t, wire, roundTrip)
}

// TestVariantScenarioE reproduces spec.md §8 Scenario E: a variant wire
// buffer with only the tag byte and no payload is NOT_ENOUGH_DATA.
func TestVariantScenarioE(t *testing.T) {
	codec := wireform.VariantCodec(thingSpec())
	_, err := wireform.FromBytes(codec, []byte{0x00})
	require.True(t, wireform.IsNotEnoughData(err))
}

func TestVariantUnknownTagIsMalformed(t *testing.T) {
	codec := wireform.VariantCodec(thingSpec())
	_, err := wireform.FromBytes(codec, []byte{0xFF})
	require.True(t, wireform.IsMalformed(err))
}

func TestVariantMatch(t *testing.T) {
	codec := wireform.VariantCodec(thingSpec())
	var boxThing thing = box{Volume: 99}
	wire := wireform.ToBytes(codec, boxThing)

	pi, err := codec.Parse(wire)
	require.NoError(t, err)

	var seenVolume int32
	err = pi.Rendered.Match(map[uint8]func([]byte) error{
		1: func(tail []byte) error {
			bp, err := boxCodec().Parse(tail)
			if err != nil {
				return err
			}
			seenVolume = bp.Rendered.Volume
			return nil
		},
	})
	require.NoError(t, err)
	require.Equal(t, int32(99), seenVolume)
}
