package wireform_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wireform/wireform"
)

func TestStringCodecRoundTrip(t *testing.T) {
	c := wireform.StringCodec(wireform.Uint16(wireform.LittleEndian))
	wire := wireform.ToBytes(c, "hello")
	got, err := wireform.FromBytes(c, wire)
	require.NoError(t, err)
	require.Equal(t, "hello", got)
}

func TestEncodeStringTooLong(t *testing.T) {
	c := wireform.StringCodec(wireform.Uint8())
	long := strings.Repeat("x", 300)
	_, err := wireform.EncodeString[uint8](c, 1, long)
	require.True(t, wireform.IsMalformed(err))
}

func TestEncodeStringFits(t *testing.T) {
	c := wireform.StringCodec(wireform.Uint8())
	data, err := wireform.EncodeString[uint8](c, 1, "ok")
	require.NoError(t, err)
	got, err := wireform.FromBytes(c, data)
	require.NoError(t, err)
	require.Equal(t, "ok", got)
}
