package demo

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wireform/wireform"
)

func TestCmdSeqRoundTrip(t *testing.T) {
	codec := CmdSeqCodec()
	cmds := []baseCmd{
		MoveCmd{Direction: North, Distance: 10},
		RotateCmd{Direction: Clockwise, Degrees: 90},
		MoveCmd{Direction: West, Distance: 3},
	}

	wire := wireform.ToBytes(codec, cmds)
	got, err := wireform.FromBytes(codec, wire)
	require.NoError(t, err)
	require.Equal(t, cmds, got)
}

func TestCmdSeqEmpty(t *testing.T) {
	codec := CmdSeqCodec()
	wire := wireform.ToBytes(codec, []baseCmd{})
	got, err := wireform.FromBytes(codec, wire)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestCmdVariantNestedDispatch(t *testing.T) {
	codec := wireform.VariantCodec(CmdVariantSpec())

	var single outerCmd = SingleCmd{Cmd: MoveCmd{Direction: East, Distance: 12}}
	wire := wireform.ToBytes(codec, single)
	got, err := wireform.FromBytes(codec, wire)
	require.NoError(t, err)
	require.Equal(t, single, got)

	var batch outerCmd = BatchCmd{Cmds: []baseCmd{RotateCmd{Direction: CounterClockwise, Degrees: 45}}}
	wire = wireform.ToBytes(codec, batch)
	got, err = wireform.FromBytes(codec, wire)
	require.NoError(t, err)
	require.Equal(t, batch, got)
}

func TestRequestIDIsUnique(t *testing.T) {
	a := NewRequestID()
	b := NewRequestID()
	require.NotEqual(t, a.String(), b.String())
}
