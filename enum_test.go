package wireform_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wireform/wireform"
)

type simpleThing uint8

const (
	thingA simpleThing = 0
	thingB simpleThing = 1
	thingC simpleThing = 2
)

var thingDescriptor = wireform.NewEnumDescriptor(map[simpleThing]string{
	thingA: "A", thingB: "B", thingC: "C",
})

// TestEnumRangeScenarioF is spec.md §8 Scenario F.
func TestEnumRangeScenarioF(t *testing.T) {
	codec := wireform.EnumCodec(thingDescriptor, wireform.IntegerCodec[simpleThing](wireform.Uint8()))

	_, err := wireform.FromBytes(codec, []byte{0xFF})
	require.True(t, wireform.IsMalformed(err))

	require.Equal(t, simpleThing(0xFF), codec.Render([]byte{0xFF}))
}

func TestEnumBoundEncodeDecode(t *testing.T) {
	type offsetEnum int32
	bound := wireform.EnumBound[offsetEnum]{Min: 16, Max: 20}
	require.Equal(t, 5, bound.Width())
	require.Equal(t, 0, bound.Encode(16))
	require.Equal(t, 4, bound.Encode(20))
	require.Equal(t, offsetEnum(18), bound.Decode(2))
}

func TestEnumCodecAcceptsDeclaredValues(t *testing.T) {
	codec := wireform.EnumCodec(thingDescriptor, wireform.IntegerCodec[simpleThing](wireform.Uint8()))
	for _, v := range []simpleThing{thingA, thingB, thingC} {
		wire := wireform.ToBytes(codec, v)
		got, err := wireform.FromBytes(codec, wire)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}
