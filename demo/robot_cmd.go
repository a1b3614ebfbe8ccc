package demo

import (
	"github.com/segmentio/ksuid"
	"github.com/wireform/wireform"
)

// Direction and RotateDirection are small closed enums, grounded on
// original_source/python/test_types/robot_cmd.py's Direction/
// RotateDirection.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

var directionDescriptor = wireform.NewEnumDescriptor(map[Direction]string{
	North: "NORTH", South: "SOUTH", East: "EAST", West: "WEST",
})

func directionCodec() wireform.Codec[Direction, Direction] {
	return wireform.EnumCodec(directionDescriptor, wireform.IntegerCodec[Direction](wireform.Uint8()))
}

type RotateDirection uint8

const (
	Clockwise RotateDirection = iota
	CounterClockwise
)

var rotateDirectionDescriptor = wireform.NewEnumDescriptor(map[RotateDirection]string{
	Clockwise: "CLOCKWISE", CounterClockwise: "COUNTER_CLOCKWISE",
})

func rotateDirectionCodec() wireform.Codec[RotateDirection, RotateDirection] {
	return wireform.EnumCodec(rotateDirectionDescriptor, wireform.IntegerCodec[RotateDirection](wireform.Uint8()))
}

// MoveCmd and RotateCmd are the two alternatives of BaseCmd, grounded on
// robot_cmd.py's MoveCmd/RotateCmd records.
type MoveCmd struct {
	Direction Direction
	Distance  int32
}

type RotateCmd struct {
	Direction RotateDirection
	Degrees   int32
}

type baseCmd interface{ isBaseCmd() }

func (MoveCmd) isBaseCmd()   {}
func (RotateCmd) isBaseCmd() {}

const (
	baseCmdTagMove   uint8 = 0
	baseCmdTagRotate uint8 = 1
)

func moveCmdCodec() wireform.Codec[MoveCmd, MoveCmd] {
	dir := directionCodec()
	dist := wireform.Int32(wireform.LittleEndian)
	return wireform.Codec[MoveCmd, MoveCmd]{
		Parse: func(buf []byte) (wireform.ParseInfo[MoveCmd], error) {
			dp, err := dir.Parse(buf)
			if err != nil {
				return wireform.ParseInfo[MoveCmd]{}, wireform.WrapField(err, "direction")
			}
			sp, err := dist.Parse(dp.Tail)
			if err != nil {
				return wireform.ParseInfo[MoveCmd]{}, wireform.WrapField(err, "distance")
			}
			return wireform.ParseInfo[MoveCmd]{Rendered: MoveCmd{Direction: dp.Rendered, Distance: sp.Rendered}, Tail: sp.Tail}, nil
		},
		Render: func(buf []byte) MoveCmd {
			d := dir.Render(buf)
			off := dir.SizeBytes(d)
			s := dist.Render(buf[off:])
			return MoveCmd{Direction: d, Distance: s}
		},
		Build: func(r MoveCmd) MoveCmd { return r },
		SerializeInto: func(b MoveCmd, out []byte) []byte {
			tail := dir.SerializeInto(b.Direction, out)
			return dist.SerializeInto(b.Distance, tail)
		},
		SizeBytes: func(b MoveCmd) int { return dir.SizeBytes(b.Direction) + dist.SizeBytes(b.Distance) },
	}
}

func rotateCmdCodec() wireform.Codec[RotateCmd, RotateCmd] {
	dir := rotateDirectionCodec()
	deg := wireform.Int32(wireform.LittleEndian)
	return wireform.Codec[RotateCmd, RotateCmd]{
		Parse: func(buf []byte) (wireform.ParseInfo[RotateCmd], error) {
			dp, err := dir.Parse(buf)
			if err != nil {
				return wireform.ParseInfo[RotateCmd]{}, wireform.WrapField(err, "direction")
			}
			gp, err := deg.Parse(dp.Tail)
			if err != nil {
				return wireform.ParseInfo[RotateCmd]{}, wireform.WrapField(err, "degrees")
			}
			return wireform.ParseInfo[RotateCmd]{Rendered: RotateCmd{Direction: dp.Rendered, Degrees: gp.Rendered}, Tail: gp.Tail}, nil
		},
		Render: func(buf []byte) RotateCmd {
			d := dir.Render(buf)
			off := dir.SizeBytes(d)
			g := deg.Render(buf[off:])
			return RotateCmd{Direction: d, Degrees: g}
		},
		Build: func(r RotateCmd) RotateCmd { return r },
		SerializeInto: func(b RotateCmd, out []byte) []byte {
			tail := dir.SerializeInto(b.Direction, out)
			return deg.SerializeInto(b.Degrees, tail)
		},
		SizeBytes: func(b RotateCmd) int { return dir.SizeBytes(b.Direction) + deg.SizeBytes(b.Degrees) },
	}
}

// BaseCmdSpec is the two-alternative variant robot_cmd.py calls
// BaseCmdVariant.
func BaseCmdSpec() wireform.VariantSpec[uint8, baseCmd] {
	move := moveCmdCodec()
	rotate := rotateCmdCodec()
	return wireform.VariantSpec[uint8, baseCmd]{
		TagCodec: wireform.Uint8(),
		Alternatives: map[uint8]wireform.Alternative[baseCmd]{
			baseCmdTagMove: {
				Parse:         func(buf []byte) (wireform.ParseInfo[any], error) { pi, err := move.Parse(buf); return wireform.ParseInfo[any]{Rendered: pi.Rendered, Tail: pi.Tail}, err },
				Render:        func(buf []byte) any { return move.Render(buf) },
				Build:         func(r any) baseCmd { return move.Build(r.(MoveCmd)) },
				SerializeInto: func(b baseCmd, out []byte) []byte { return move.SerializeInto(b.(MoveCmd), out) },
				SizeBytes:     func(b baseCmd) int { return move.SizeBytes(b.(MoveCmd)) },
				Matches:       func(b baseCmd) bool { _, ok := b.(MoveCmd); return ok },
			},
			baseCmdTagRotate: {
				Parse:         func(buf []byte) (wireform.ParseInfo[any], error) { pi, err := rotate.Parse(buf); return wireform.ParseInfo[any]{Rendered: pi.Rendered, Tail: pi.Tail}, err },
				Render:        func(buf []byte) any { return rotate.Render(buf) },
				Build:         func(r any) baseCmd { return rotate.Build(r.(RotateCmd)) },
				SerializeInto: func(b baseCmd, out []byte) []byte { return rotate.SerializeInto(b.(RotateCmd), out) },
				SizeBytes:     func(b baseCmd) int { return rotate.SizeBytes(b.(RotateCmd)) },
				Matches:       func(b baseCmd) bool { _, ok := b.(RotateCmd); return ok },
			},
		},
	}
}

func baseCmdCodec() wireform.Codec[wireform.Rendered[uint8, baseCmd], baseCmd] {
	return wireform.VariantCodec(BaseCmdSpec())
}

// CmdSeq is robot_cmd.py's `Struct(length=li32, cmds=Seq(BaseCmd,
// this.length))`: a length prefix followed by that many variable-size
// BaseCmd items, i.e. wireform's HeterogeneousListCodec.
func CmdSeqCodec() wireform.Codec[[]baseCmd, []baseCmd] {
	cmd := baseCmdCodec()
	return wireform.HeterogeneousListCodec[int32, baseCmd](
		wireform.Int32(wireform.LittleEndian),
		func(tail []byte) (baseCmd, []byte, error) {
			pi, err := cmd.Parse(tail)
			if err != nil {
				return nil, nil, err
			}
			built, err := pi.Rendered.Build()
			if err != nil {
				return nil, nil, err
			}
			return built, pi.Tail, nil
		},
		func(item baseCmd, out []byte) []byte { return cmd.SerializeInto(item, out) },
		func(item baseCmd) int { return cmd.SizeBytes(item) },
	)
}

// outerCmd, SingleCmd, and BatchCmd demonstrate spec.md §4.7's "a variant
// whose alternatives are themselves variants dispatches recursively":
// CmdVariant's first alternative is not a plain record but the BaseCmd
// variant itself, so parsing/building it recurses one extra level,
// grounded on robot_cmd.py's CmdVariant being "3-way, including nested
// CmdSeq".
type outerCmd interface{ isOuterCmd() }

type SingleCmd struct{ Cmd baseCmd }
type BatchCmd struct{ Cmds []baseCmd }

func (SingleCmd) isOuterCmd() {}
func (BatchCmd) isOuterCmd()  {}

const (
	cmdVariantTagSingle uint8 = 0
	cmdVariantTagBatch  uint8 = 1
)

func CmdVariantSpec() wireform.VariantSpec[uint8, outerCmd] {
	single := baseCmdCodec() // the nested variant
	batch := CmdSeqCodec()
	return wireform.VariantSpec[uint8, outerCmd]{
		TagCodec: wireform.Uint8(),
		Alternatives: map[uint8]wireform.Alternative[outerCmd]{
			cmdVariantTagSingle: {
				Parse: func(buf []byte) (wireform.ParseInfo[any], error) {
					pi, err := single.Parse(buf) // recurse into the inner variant's own tag+payload
					if err != nil {
						return wireform.ParseInfo[any]{}, err
					}
					return wireform.ParseInfo[any]{Rendered: pi.Rendered, Tail: pi.Tail}, nil
				},
				Render: func(buf []byte) any { return single.Render(buf) },
				Build: func(r any) outerCmd {
					// CmdVariant's single arm is itself the BaseCmd variant
					// (spec.md §4.7's nested-variant dispatch), so its Build
					// goes through BuildNested rather than Rendered.Build
					// directly. The depth passed is always 1, since this
					// schema nests exactly one variant inside another, so
					// the MaxVariantDepth check does not reject it.
					built, err := wireform.BuildNested(r.(wireform.Rendered[uint8, baseCmd]), 1, wireform.DefaultOptions())
					if err != nil {
						panic(err) // Build's contract assumes r already passed Parse
					}
					return SingleCmd{Cmd: built}
				},
				SerializeInto: func(v outerCmd, out []byte) []byte {
					return single.SerializeInto(v.(SingleCmd).Cmd, out)
				},
				SizeBytes: func(v outerCmd) int { return single.SizeBytes(v.(SingleCmd).Cmd) },
				Matches:   func(v outerCmd) bool { _, ok := v.(SingleCmd); return ok },
			},
			cmdVariantTagBatch: {
				Parse:         func(buf []byte) (wireform.ParseInfo[any], error) { pi, err := batch.Parse(buf); return wireform.ParseInfo[any]{Rendered: pi.Rendered, Tail: pi.Tail}, err },
				Render:        func(buf []byte) any { return batch.Render(buf) },
				Build:         func(r any) outerCmd { return BatchCmd{Cmds: batch.Build(r.([]baseCmd))} },
				SerializeInto: func(v outerCmd, out []byte) []byte { return batch.SerializeInto(v.(BatchCmd).Cmds, out) },
				SizeBytes:     func(v outerCmd) int { return batch.SizeBytes(v.(BatchCmd).Cmds) },
				Matches:       func(v outerCmd) bool { _, ok := v.(BatchCmd); return ok },
			},
		},
	}
}

// RequestID is an out-of-band identifier attached to a robot command
// batch for tracing/log correlation; it never appears inside a
// round-trip-tested wire struct, so it carries no Codec of its own.
// Grounded on ssargent-freyjadb's direct dependency on segmentio/ksuid.
func NewRequestID() ksuid.KSUID {
	return ksuid.New()
}
