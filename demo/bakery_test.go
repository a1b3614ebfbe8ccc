package demo

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wireform/wireform"
)

// TestScenarioD reproduces spec.md §8 Scenario D: a v1 NewOrderRequest
// carrying a CakeOrder{layers=900, shape=ROUND, flavor=CHOCOLATE} is
// promoted to the latest version, handled (business logic assigns order
// id 42), and demoted back to v1. The response bytes equal the
// byte-for-byte v1 serialization of NewOrderResponse{order_id=42}.
func TestScenarioD(t *testing.T) {
	request := NewOrderRequestV1{
		Order: CakeOrderV1{Layers: 900, Shape: Round, Flavor: ChocolateV1},
	}

	promoted, err := BakeryChain.Promote(0, request)
	require.NoError(t, err)

	latestRequest, ok := promoted.(NewOrderRequestLatest)
	require.True(t, ok)

	response := AssignCakeOrder(latestRequest, 42)

	demoted, ok := BakeryChain.Demote(0, response, ErrorAlternativeAtLatest)
	require.True(t, ok)

	v1Response, ok := demoted.(NewOrderResponseV1)
	require.True(t, ok)
	require.Equal(t, uint64(42), v1Response.OrderID)

	expectedWire := wireform.ToBytes(wireform.Uint64(wireform.LittleEndian), uint64(42))
	actualWire := wireform.ToBytes(wireform.Uint64(wireform.LittleEndian), v1Response.OrderID)
	require.Equal(t, expectedWire, actualWire)
}

// TestCarmelRemapsOnDemote exercises the schema's explicit remap
// directive (spec.md §4.8's "or remapped, per the schema's directive"):
// a latest-version CARMEL order demotes to CHOCOLATE at v1 rather than
// failing, since flavorReverse maps it directly.
func TestCarmelRemapsOnDemote(t *testing.T) {
	request := NewOrderRequestLatest{
		Order: CakeOrderLatest{Layers: 3, Shape: Square, Flavor: CarmelLatest},
	}
	demoted, ok := BakeryChain.Demote(0, request, ErrorAlternativeAtLatest)
	require.True(t, ok)
	v1Request := demoted.(NewOrderRequestV1)
	require.Equal(t, ChocolateV1, v1Request.Order.(CakeOrderV1).Flavor)
}

func TestOrderVariantRoundTrip(t *testing.T) {
	spec := orderV1Spec()
	codec := wireform.VariantCodec(spec)

	var order orderV1 = CakeOrderV1{Layers: 900, Shape: Round, Flavor: ChocolateV1}
	wire := wireform.ToBytes(codec, order)

	built, err := wireform.FromBytes(codec, wire)
	require.NoError(t, err)
	require.Equal(t, order, built)
}
