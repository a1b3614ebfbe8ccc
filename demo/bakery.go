// Package demo is a hand-written stand-in for what a schema compiler
// would emit from a .schema file, exercising wireform's runtime the way
// generated code would: a bakery ordering protocol with two payload
// schema versions, and a variant-carrying command protocol for a toy
// robot (robot_cmd.go). Neither the schema language nor the compiler
// that would normally produce this file exists here — spec.md §1 puts
// both out of scope — this package plays the role of their output.
package demo

import (
	"github.com/wireform/wireform"
)

// --- Flavor: the schema element whose domain widens across versions ---

type FlavorV1 uint8

const (
	VanillaV1 FlavorV1 = iota
	ChocolateV1
)

var flavorV1Descriptor = wireform.NewEnumDescriptor(map[FlavorV1]string{
	VanillaV1:   "VANILLA",
	ChocolateV1: "CHOCOLATE",
})

func flavorV1Codec() wireform.Codec[FlavorV1, FlavorV1] {
	return wireform.EnumCodec(flavorV1Descriptor, wireform.IntegerCodec[FlavorV1](wireform.Uint8()))
}

// FlavorLatest adds CARMEL, the enum value original_source's bakery/v3.py
// introduces (spec.md §4.8's "adding a new enum value in vk+1 is
// permitted... shows up as out-of-domain at vk"). The original protocol
// has four payload versions (v1..v4); only v3.py of that chain was
// retrievable, and it is the version that introduces CARMEL, so this
// package collapses the chain to the two versions whose difference
// spec.md §8 Scenario D and Testable Property 6 actually exercise. The
// Chain/Step machinery in version.go itself is not limited to two hops —
// robot_cmd.go's command protocol below is unversioned, but nothing about
// Chain assumes fewer than N steps.
type FlavorLatest uint8

const (
	VanillaLatest FlavorLatest = iota
	ChocolateLatest
	CarmelLatest
)

var flavorLatestDescriptor = wireform.NewEnumDescriptor(map[FlavorLatest]string{
	VanillaLatest:   "VANILLA",
	ChocolateLatest: "CHOCOLATE",
	CarmelLatest:    "CARMEL",
})

func flavorLatestCodec() wireform.Codec[FlavorLatest, FlavorLatest] {
	return wireform.EnumCodec(flavorLatestDescriptor, wireform.IntegerCodec[FlavorLatest](wireform.Uint8()))
}

// Shape is unchanged across versions.
type Shape uint8

const (
	Round Shape = iota
	Square
)

var shapeDescriptor = wireform.NewEnumDescriptor(map[Shape]string{
	Round:  "ROUND",
	Square: "SQUARE",
})

func shapeCodec() wireform.Codec[Shape, Shape] {
	return wireform.EnumCodec(shapeDescriptor, wireform.IntegerCodec[Shape](wireform.Uint8()))
}

// --- Order: a two-alternative variant, present at both versions ---

// orderV1 / orderLatest are the Built-side oneof marker interfaces
// implemented by each version's CupcakeOrder/CakeOrder, per variant.go's
// "every alternative implements the shared Built interface" convention.
type orderV1 interface{ isOrderV1() }
type orderLatest interface{ isOrderLatest() }

type CupcakeOrderV1 struct{ Flavor FlavorV1 }
type CakeOrderV1 struct {
	Layers int32
	Shape  Shape
	Flavor FlavorV1
}

func (CupcakeOrderV1) isOrderV1() {}
func (CakeOrderV1) isOrderV1()    {}

type CupcakeOrderLatest struct{ Flavor FlavorLatest }
type CakeOrderLatest struct {
	Layers int32
	Shape  Shape
	Flavor FlavorLatest
}

func (CupcakeOrderLatest) isOrderLatest() {}
func (CakeOrderLatest) isOrderLatest()    {}

const (
	orderTagCupcake uint8 = 0
	orderTagCake    uint8 = 1
)

func cupcakeOrderV1Codec() wireform.Codec[CupcakeOrderV1, CupcakeOrderV1] {
	inner := flavorV1Codec()
	return wireform.Codec[CupcakeOrderV1, CupcakeOrderV1]{
		FixedSize: inner.FixedSize,
		Parse: func(buf []byte) (wireform.ParseInfo[CupcakeOrderV1], error) {
			pi, err := inner.Parse(buf)
			if err != nil {
				return wireform.ParseInfo[CupcakeOrderV1]{}, wireform.WrapField(err, "flavor")
			}
			return wireform.ParseInfo[CupcakeOrderV1]{Rendered: CupcakeOrderV1{Flavor: pi.Rendered}, Tail: pi.Tail}, nil
		},
		Render: func(buf []byte) CupcakeOrderV1 { return CupcakeOrderV1{Flavor: inner.Render(buf)} },
		Build:  func(r CupcakeOrderV1) CupcakeOrderV1 { return r },
		SerializeInto: func(b CupcakeOrderV1, out []byte) []byte {
			return inner.SerializeInto(b.Flavor, out)
		},
		SizeBytes: func(b CupcakeOrderV1) int { return inner.SizeBytes(b.Flavor) },
	}
}

func cakeOrderV1Codec() wireform.Codec[CakeOrderV1, CakeOrderV1] {
	layers := wireform.Int32(wireform.LittleEndian)
	shape := shapeCodec()
	flavor := flavorV1Codec()
	return wireform.Codec[CakeOrderV1, CakeOrderV1]{
		Parse: func(buf []byte) (wireform.ParseInfo[CakeOrderV1], error) {
			lp, err := layers.Parse(buf)
			if err != nil {
				return wireform.ParseInfo[CakeOrderV1]{}, wireform.WrapField(err, "layers")
			}
			sp, err := shape.Parse(lp.Tail)
			if err != nil {
				return wireform.ParseInfo[CakeOrderV1]{}, wireform.WrapField(err, "shape")
			}
			fp, err := flavor.Parse(sp.Tail)
			if err != nil {
				return wireform.ParseInfo[CakeOrderV1]{}, wireform.WrapField(err, "flavor")
			}
			return wireform.ParseInfo[CakeOrderV1]{
				Rendered: CakeOrderV1{Layers: lp.Rendered, Shape: sp.Rendered, Flavor: fp.Rendered},
				Tail:     fp.Tail,
			}, nil
		},
		Render: func(buf []byte) CakeOrderV1 {
			l := layers.Render(buf)
			off := layers.SizeBytes(l)
			s := shape.Render(buf[off:])
			off += shape.SizeBytes(s)
			f := flavor.Render(buf[off:])
			return CakeOrderV1{Layers: l, Shape: s, Flavor: f}
		},
		Build: func(r CakeOrderV1) CakeOrderV1 { return r },
		SerializeInto: func(b CakeOrderV1, out []byte) []byte {
			tail := layers.SerializeInto(b.Layers, out)
			tail = shape.SerializeInto(b.Shape, tail)
			return flavor.SerializeInto(b.Flavor, tail)
		},
		SizeBytes: func(b CakeOrderV1) int {
			return layers.SizeBytes(b.Layers) + shape.SizeBytes(b.Shape) + flavor.SizeBytes(b.Flavor)
		},
	}
}

func orderV1Spec() wireform.VariantSpec[uint8, orderV1] {
	cupcake := cupcakeOrderV1Codec()
	cake := cakeOrderV1Codec()
	return wireform.VariantSpec[uint8, orderV1]{
		TagCodec: wireform.Uint8(),
		Alternatives: map[uint8]wireform.Alternative[orderV1]{
			orderTagCupcake: {
				Parse:         func(buf []byte) (wireform.ParseInfo[any], error) { pi, err := cupcake.Parse(buf); return wireform.ParseInfo[any]{Rendered: pi.Rendered, Tail: pi.Tail}, err },
				Render:        func(buf []byte) any { return cupcake.Render(buf) },
				Build:         func(r any) orderV1 { return cupcake.Build(r.(CupcakeOrderV1)) },
				SerializeInto: func(b orderV1, out []byte) []byte { return cupcake.SerializeInto(b.(CupcakeOrderV1), out) },
				SizeBytes:     func(b orderV1) int { return cupcake.SizeBytes(b.(CupcakeOrderV1)) },
				Matches:       func(b orderV1) bool { _, ok := b.(CupcakeOrderV1); return ok },
			},
			orderTagCake: {
				Parse:         func(buf []byte) (wireform.ParseInfo[any], error) { pi, err := cake.Parse(buf); return wireform.ParseInfo[any]{Rendered: pi.Rendered, Tail: pi.Tail}, err },
				Render:        func(buf []byte) any { return cake.Render(buf) },
				Build:         func(r any) orderV1 { return cake.Build(r.(CakeOrderV1)) },
				SerializeInto: func(b orderV1, out []byte) []byte { return cake.SerializeInto(b.(CakeOrderV1), out) },
				SizeBytes:     func(b orderV1) int { return cake.SizeBytes(b.(CakeOrderV1)) },
				Matches:       func(b orderV1) bool { _, ok := b.(CakeOrderV1); return ok },
			},
		},
	}
}

func cupcakeOrderLatestCodec() wireform.Codec[CupcakeOrderLatest, CupcakeOrderLatest] {
	inner := flavorLatestCodec()
	return wireform.Codec[CupcakeOrderLatest, CupcakeOrderLatest]{
		FixedSize: inner.FixedSize,
		Parse: func(buf []byte) (wireform.ParseInfo[CupcakeOrderLatest], error) {
			pi, err := inner.Parse(buf)
			if err != nil {
				return wireform.ParseInfo[CupcakeOrderLatest]{}, wireform.WrapField(err, "flavor")
			}
			return wireform.ParseInfo[CupcakeOrderLatest]{Rendered: CupcakeOrderLatest{Flavor: pi.Rendered}, Tail: pi.Tail}, nil
		},
		Render: func(buf []byte) CupcakeOrderLatest { return CupcakeOrderLatest{Flavor: inner.Render(buf)} },
		Build:  func(r CupcakeOrderLatest) CupcakeOrderLatest { return r },
		SerializeInto: func(b CupcakeOrderLatest, out []byte) []byte {
			return inner.SerializeInto(b.Flavor, out)
		},
		SizeBytes: func(b CupcakeOrderLatest) int { return inner.SizeBytes(b.Flavor) },
	}
}

func cakeOrderLatestCodec() wireform.Codec[CakeOrderLatest, CakeOrderLatest] {
	layers := wireform.Int32(wireform.LittleEndian)
	shape := shapeCodec()
	flavor := flavorLatestCodec()
	return wireform.Codec[CakeOrderLatest, CakeOrderLatest]{
		Parse: func(buf []byte) (wireform.ParseInfo[CakeOrderLatest], error) {
			lp, err := layers.Parse(buf)
			if err != nil {
				return wireform.ParseInfo[CakeOrderLatest]{}, wireform.WrapField(err, "layers")
			}
			sp, err := shape.Parse(lp.Tail)
			if err != nil {
				return wireform.ParseInfo[CakeOrderLatest]{}, wireform.WrapField(err, "shape")
			}
			fp, err := flavor.Parse(sp.Tail)
			if err != nil {
				return wireform.ParseInfo[CakeOrderLatest]{}, wireform.WrapField(err, "flavor")
			}
			return wireform.ParseInfo[CakeOrderLatest]{
				Rendered: CakeOrderLatest{Layers: lp.Rendered, Shape: sp.Rendered, Flavor: fp.Rendered},
				Tail:     fp.Tail,
			}, nil
		},
		Render: func(buf []byte) CakeOrderLatest {
			l := layers.Render(buf)
			off := layers.SizeBytes(l)
			s := shape.Render(buf[off:])
			off += shape.SizeBytes(s)
			f := flavor.Render(buf[off:])
			return CakeOrderLatest{Layers: l, Shape: s, Flavor: f}
		},
		Build: func(r CakeOrderLatest) CakeOrderLatest { return r },
		SerializeInto: func(b CakeOrderLatest, out []byte) []byte {
			tail := layers.SerializeInto(b.Layers, out)
			tail = shape.SerializeInto(b.Shape, tail)
			return flavor.SerializeInto(b.Flavor, tail)
		},
		SizeBytes: func(b CakeOrderLatest) int {
			return layers.SizeBytes(b.Layers) + shape.SizeBytes(b.Shape) + flavor.SizeBytes(b.Flavor)
		},
	}
}

func orderLatestSpec() wireform.VariantSpec[uint8, orderLatest] {
	cupcake := cupcakeOrderLatestCodec()
	cake := cakeOrderLatestCodec()
	return wireform.VariantSpec[uint8, orderLatest]{
		TagCodec: wireform.Uint8(),
		Alternatives: map[uint8]wireform.Alternative[orderLatest]{
			orderTagCupcake: {
				Parse:         func(buf []byte) (wireform.ParseInfo[any], error) { pi, err := cupcake.Parse(buf); return wireform.ParseInfo[any]{Rendered: pi.Rendered, Tail: pi.Tail}, err },
				Render:        func(buf []byte) any { return cupcake.Render(buf) },
				Build:         func(r any) orderLatest { return cupcake.Build(r.(CupcakeOrderLatest)) },
				SerializeInto: func(b orderLatest, out []byte) []byte { return cupcake.SerializeInto(b.(CupcakeOrderLatest), out) },
				SizeBytes:     func(b orderLatest) int { return cupcake.SizeBytes(b.(CupcakeOrderLatest)) },
				Matches:       func(b orderLatest) bool { _, ok := b.(CupcakeOrderLatest); return ok },
			},
			orderTagCake: {
				Parse:         func(buf []byte) (wireform.ParseInfo[any], error) { pi, err := cake.Parse(buf); return wireform.ParseInfo[any]{Rendered: pi.Rendered, Tail: pi.Tail}, err },
				Render:        func(buf []byte) any { return cake.Render(buf) },
				Build:         func(r any) orderLatest { return cake.Build(r.(CakeOrderLatest)) },
				SerializeInto: func(b orderLatest, out []byte) []byte { return cake.SerializeInto(b.(CakeOrderLatest), out) },
				SizeBytes:     func(b orderLatest) int { return cake.SizeBytes(b.(CakeOrderLatest)) },
				Matches:       func(b orderLatest) bool { _, ok := b.(CakeOrderLatest); return ok },
			},
		},
	}
}

// --- Message: NewOrderRequest / NewOrderResponse / ErrorResponse ---

type NewOrderRequestV1 struct{ Order orderV1 }
type NewOrderResponseV1 struct{ OrderID uint64 }
type ErrorResponseV1 struct{ Message string }

type NewOrderRequestLatest struct{ Order orderLatest }
type NewOrderResponseLatest struct{ OrderID uint64 }
type ErrorResponseLatest struct{ Message string }

// flavorForward and flavorReverse convert a single order's flavor field
// between versions.
// original_source/python/test_types/bakery/v3.py's ConversionsFromPrior
// remaps CARMEL down to CHOCOLATE rather than rejecting it — the
// schema's own directive per spec.md §4.8 ("... or remapped, per the
// schema's directive"). A hop with no remapping directive at all (the
// case spec.md's other clause, "must be rejected", covers) is exercised
// separately by TestChainDemoteFallback in the root package's
// version_test.go, whose toy v2 value has no v1 representation.
func flavorForward(f FlavorV1) FlavorLatest { return FlavorLatest(f) }

func flavorReverse(f FlavorLatest) (FlavorV1, bool) {
	switch f {
	case VanillaLatest:
		return VanillaV1, true
	case ChocolateLatest:
		return ChocolateV1, true
	case CarmelLatest:
		return ChocolateV1, true // schema directive: remap, never reject
	default:
		return 0, false
	}
}

func orderForward(o orderV1) orderLatest {
	switch v := o.(type) {
	case CupcakeOrderV1:
		return CupcakeOrderLatest{Flavor: flavorForward(v.Flavor)}
	case CakeOrderV1:
		return CakeOrderLatest{Layers: v.Layers, Shape: v.Shape, Flavor: flavorForward(v.Flavor)}
	default:
		panic("wireform/demo: unreachable order alternative")
	}
}

func orderReverse(o orderLatest) (orderV1, bool) {
	switch v := o.(type) {
	case CupcakeOrderLatest:
		f, ok := flavorReverse(v.Flavor)
		if !ok {
			return nil, false
		}
		return CupcakeOrderV1{Flavor: f}, true
	case CakeOrderLatest:
		f, ok := flavorReverse(v.Flavor)
		if !ok {
			return nil, false
		}
		return CakeOrderV1{Layers: v.Layers, Shape: v.Shape, Flavor: f}, true
	default:
		panic("wireform/demo: unreachable order alternative")
	}
}

// MessageStep is the single adjacent-version Step wireform.Chain walks
// for this schema. Because NewOrderResponse/ErrorResponse are structurally
// identical across versions, only the request's Order needs conversion;
// the rest is a type-level relabeling.
var MessageStep = wireform.Step{
	Forward: func(prior any) (any, error) {
		switch m := prior.(type) {
		case NewOrderRequestV1:
			return NewOrderRequestLatest{Order: orderForward(m.Order)}, nil
		case NewOrderResponseV1:
			return NewOrderResponseLatest{OrderID: m.OrderID}, nil
		case ErrorResponseV1:
			return ErrorResponseLatest{Message: m.Message}, nil
		default:
			return nil, wireform.Malformedf("unrecognized v1 message type %T", prior)
		}
	},
	Reverse: func(next any) (any, bool) {
		switch m := next.(type) {
		case NewOrderRequestLatest:
			o, ok := orderReverse(m.Order)
			if !ok {
				return nil, false
			}
			return NewOrderRequestV1{Order: o}, true
		case NewOrderResponseLatest:
			return NewOrderResponseV1{OrderID: m.OrderID}, true
		case ErrorResponseLatest:
			return ErrorResponseV1{Message: m.Message}, true
		default:
			return nil, false
		}
	},
}

// BakeryChain is the two-version chain (v1 -> latest) this package
// demonstrates; wireform.Chain itself imposes no limit on step count.
var BakeryChain = wireform.NewChain(MessageStep)

// ErrorAlternativeAtLatest builds the schema error-response substituted
// when a Demote step fails partway, per spec.md §4.8 step 5. It matches
// wireform.Chain.Demote's errorAlternative signature, which passes the
// chain's own Latest() version rather than any message text; the
// returned ErrorResponseLatest carries a fixed message.
func ErrorAlternativeAtLatest(latest int) any {
	return ErrorResponseLatest{Message: "order could not be represented at the requested version"}
}

// AssignCakeOrder is the external business-logic collaborator of
// spec.md §4.8 step 4: it looks only at the latest-version request and
// returns the latest-version response.
func AssignCakeOrder(req NewOrderRequestLatest, nextID uint64) NewOrderResponseLatest {
	return NewOrderResponseLatest{OrderID: nextID}
}
