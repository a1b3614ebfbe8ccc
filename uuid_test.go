package wireform_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wireform/wireform"
)

func TestUUIDCodecRoundTrip(t *testing.T) {
	u := wireform.GenerateUUID()
	codec := wireform.UUIDCodec()
	wire := wireform.ToBytes(codec, u)
	require.Len(t, wire, 16)

	got, err := wireform.FromBytes(codec, wire)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestUUIDStringRoundTrip(t *testing.T) {
	u := wireform.GenerateUUID()
	back, err := wireform.UUIDFromString(u.String())
	require.NoError(t, err)
	require.Equal(t, u, back)
}

func TestUUIDFromStringInvalid(t *testing.T) {
	_, err := wireform.UUIDFromString("not-valid-base64!!")
	require.Error(t, err)
}
