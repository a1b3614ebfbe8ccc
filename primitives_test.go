package wireform_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wireform/wireform"
)

// TestPrimitiveScenarioA reproduces spec.md §8 Scenario A: a little-
// endian and a big-endian int32 sharing the same underlying value
// 0x87654321 serialize to their respective byte orders.
func TestPrimitiveScenarioA(t *testing.T) {
	le := wireform.Int32(wireform.LittleEndian)
	be := wireform.Int32(wireform.BigEndian)

	var raw uint32 = 0x87654321
	want := int32(raw)

	leWire := wireform.ToBytes(le, want)
	beWire := wireform.ToBytes(be, want)

	require.Equal(t, []byte{0x21, 0x43, 0x65, 0x87}, leWire)
	require.Equal(t, []byte{0x87, 0x65, 0x43, 0x21}, beWire)

	gotLE, err := wireform.FromBytes(le, leWire)
	require.NoError(t, err)
	require.Equal(t, want, gotLE)

	gotBE, err := wireform.FromBytes(be, beWire)
	require.NoError(t, err)
	require.Equal(t, want, gotBE)
}

// TestEndiannessIdempotence is spec.md §8 Testable Property 3.
func TestEndiannessIdempotence(t *testing.T) {
	for _, e := range []wireform.Endianness{wireform.LittleEndian, wireform.BigEndian} {
		c := wireform.Uint64(e)
		for _, v := range []uint64{0, 1, 0xFFFFFFFFFFFFFFFF, 0x0123456789ABCDEF} {
			wire := wireform.ToBytes(c, v)
			got, err := wireform.FromBytes(c, wire)
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
	}
}

// TestTruncationDiagnostics is spec.md §8 Testable Property 8.
func TestTruncationDiagnostics(t *testing.T) {
	c := wireform.Uint32(wireform.LittleEndian)
	wire := wireform.ToBytes(c, uint32(12345))
	_, err := wireform.FromBytes(c, wire[:len(wire)-1])
	require.True(t, wireform.IsNotEnoughData(err))
}

func TestEmptyBufferNotEnoughData(t *testing.T) {
	c := wireform.Uint8()
	_, err := wireform.FromBytes(c, nil)
	require.True(t, wireform.IsNotEnoughData(err))
}

func TestFloatRoundTrip(t *testing.T) {
	c := wireform.Float64(wireform.LittleEndian)
	wire := wireform.ToBytes(c, 3.14159265358979)
	got, err := wireform.FromBytes(c, wire)
	require.NoError(t, err)
	require.Equal(t, 3.14159265358979, got)
}

func TestBoolCodec(t *testing.T) {
	c := wireform.Bool()
	require.Equal(t, []byte{0x01}, wireform.ToBytes(c, true))
	require.Equal(t, []byte{0x00}, wireform.ToBytes(c, false))
}
