package wireform_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wireform/wireform"
)

// TestTextualRoundTrip is spec.md §8 Testable Property 7, at the
// primitive/array granularity the core owns (records/variants are
// schema-specific and exercised in demo instead).
func TestTextualRoundTrip(t *testing.T) {
	v := wireform.ToTreeArray([]int32{1, -2, 3}, wireform.ToTreeInt[int32])
	back, err := wireform.FromTreeArray(v, wireform.FromTreeInt[int32])
	require.NoError(t, err)
	require.Equal(t, []int32{1, -2, 3}, back)
}

func TestValueJSONRoundTrip(t *testing.T) {
	v := wireform.NewObject(
		wireform.Field("name", wireform.String_("bob")),
		wireform.Field("age", wireform.Number(4)),
	)
	data, err := json.Marshal(v)
	require.NoError(t, err)

	var back wireform.Value
	require.NoError(t, json.Unmarshal(data, &back))

	name, ok := back.Field("name")
	require.True(t, ok)
	s, ok := name.AsString()
	require.True(t, ok)
	require.Equal(t, "bob", s)
}

func TestFromTreeIntWrongKind(t *testing.T) {
	_, err := wireform.FromTreeInt[int32](wireform.String_("nope"))
	require.True(t, wireform.IsMalformed(err))
}

// TestFromTreeIntOutOfRange guards spec.md §4.9's "unsigned/signed fit is
// checked on parse; out-of-range -> MALFORMED": 300 does not fit a uint8.
func TestFromTreeIntOutOfRange(t *testing.T) {
	_, err := wireform.FromTreeInt[uint8](wireform.Number(300))
	require.True(t, wireform.IsMalformed(err))

	_, err = wireform.FromTreeInt[int8](wireform.Number(-200))
	require.True(t, wireform.IsMalformed(err))

	got, err := wireform.FromTreeInt[uint8](wireform.Number(255))
	require.NoError(t, err)
	require.Equal(t, uint8(255), got)
}

// TestEnumTreeRoundTrip is spec.md §4.9's "enumerations map to their
// name()", using enum_test.go's simpleThing/thingDescriptor.
func TestEnumTreeRoundTrip(t *testing.T) {
	v := wireform.ToTreeEnum(thingDescriptor, thingB)
	s, ok := v.AsString()
	require.True(t, ok)
	require.Equal(t, "B", s)

	got, err := wireform.FromTreeEnum(thingDescriptor, v)
	require.NoError(t, err)
	require.Equal(t, thingB, got)
}

func TestFromTreeEnumUnknownName(t *testing.T) {
	_, err := wireform.FromTreeEnum(thingDescriptor, wireform.String_("nope"))
	require.True(t, wireform.IsMalformed(err))
}
