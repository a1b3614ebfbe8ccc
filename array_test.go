package wireform_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wireform/wireform"
)

func TestFixedArrayRoundTrip(t *testing.T) {
	c := wireform.FixedArray(4, wireform.Uint16(wireform.LittleEndian))
	values := []uint16{1, 2, 3, 4}
	wire := wireform.ToBytes(c, values)
	require.Len(t, wire, 8)

	got, err := wireform.FromBytes(c, wire)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestFixedArrayTruncated(t *testing.T) {
	c := wireform.FixedArray(4, wireform.Uint16(wireform.LittleEndian))
	wire := wireform.ToBytes(c, []uint16{1, 2, 3, 4})
	_, err := wireform.FromBytes(c, wire[:len(wire)-1])
	require.True(t, wireform.IsNotEnoughData(err))
}

func TestFixedVectorRoundTrip(t *testing.T) {
	c := wireform.FixedVector(wireform.Uint32(wireform.LittleEndian), wireform.Int8())
	values := []int8{1, -2, 3, -4, 5}
	wire := wireform.ToBytes(c, values)
	got, err := wireform.FromBytes(c, wire)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestFixedVectorEmpty(t *testing.T) {
	c := wireform.FixedVector(wireform.Uint8(), wireform.Uint8())
	wire := wireform.ToBytes(c, []uint8{})
	got, err := wireform.FromBytes(c, wire)
	require.NoError(t, err)
	require.Empty(t, got)
}
