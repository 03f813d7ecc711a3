package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// radaNode returns the Rada Coffee & Rösterei node, a fully tagged café
// in the Heidelberg old town.
func radaNode() OsmNode {
	return OsmNode{
		NodeID: 5589879349,
		Lat:    49.4130716,
		Lon:    8.6911353,
		Tags: map[string]string{
			"name":             "Rada Coffee & Rösterei",
			"amenity":          "cafe",
			"cuisine":          "coffee_shop",
			"addr:street":      "Untere Straße",
			"addr:housenumber": "21",
			"addr:postcode":    "69117",
			"addr:city":        "Heidelberg",
		},
	}
}

// bakeryNode returns a minimal bakery node on the Neuenheimer Feld campus
// without description or cuisine tags.
func bakeryNode() OsmNode {
	return OsmNode{
		NodeID: 42,
		Lat:    49.4177,
		Lon:    8.6695,
		Tags: map[string]string{
			"name":             "Backhaus im Feld",
			"amenity":          "bakery",
			"addr:street":      "Im Neuenheimer Feld",
			"addr:housenumber": "304",
			"addr:postcode":    "69120",
			"addr:city":        "Heidelberg",
		},
	}
}

// TestPosFromOsmNode_FullyTaggedCafe tests converting a complete café node.
func TestPosFromOsmNode_FullyTaggedCafe(t *testing.T) {
	pos, err := PosFromOsmNode(radaNode())
	require.NoError(t, err)

	assert.Equal(t, "Rada Coffee & Rösterei", pos.Name)
	assert.Equal(t, PosTypeCafe, pos.Type)
	assert.Equal(t, CampusAltstadt, pos.Campus)
	assert.Equal(t, "Untere Straße", pos.Street)
	assert.Equal(t, "21", pos.HouseNumber)
	assert.Equal(t, 69117, pos.PostalCode)
	assert.Equal(t, "Heidelberg", pos.City)
	assert.Contains(t, pos.Description, "coffee_shop")
	assert.Equal(t, "A cafe serving coffee_shop cuisine", pos.Description)

	// Identity and timestamps belong to the store.
	assert.Zero(t, pos.ID)
	assert.True(t, pos.CreatedAt.IsZero())
	assert.True(t, pos.UpdatedAt.IsZero())
}

// TestPosFromOsmNode_ValidDraft tests that a successful conversion always
// yields a draft passing domain validation.
func TestPosFromOsmNode_ValidDraft(t *testing.T) {
	for _, node := range []OsmNode{radaNode(), bakeryNode()} {
		pos, err := PosFromOsmNode(node)
		require.NoError(t, err)
		assert.NoError(t, pos.Validate())
	}
}

// TestPosFromOsmNode_MissingName tests that an absent or blank name fails.
func TestPosFromOsmNode_MissingName(t *testing.T) {
	tests := []struct {
		name string
		tag  *string
	}{
		{name: "absent name tag", tag: nil},
		{name: "empty name tag", tag: strPtr("")},
		{name: "whitespace only name tag", tag: strPtr("   \t")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := radaNode()
			if tt.tag == nil {
				delete(node.Tags, "name")
			} else {
				node.Tags["name"] = *tt.tag
			}

			_, err := PosFromOsmNode(node)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOsmNodeMissingFields)
			assert.Contains(t, err.Error(), "name")
		})
	}
}

// TestPosFromOsmNode_AmenityMapping tests the amenity to POS type table.
func TestPosFromOsmNode_AmenityMapping(t *testing.T) {
	tests := []struct {
		amenity string
		want    PosType
	}{
		{amenity: "cafe", want: PosTypeCafe},
		{amenity: "restaurant", want: PosTypeCafe},
		{amenity: "bakery", want: PosTypeBakery},
		{amenity: "CaFe", want: PosTypeCafe},
		{amenity: "RESTAURANT", want: PosTypeCafe},
	}

	for _, tt := range tests {
		t.Run(tt.amenity, func(t *testing.T) {
			node := radaNode()
			node.Tags["amenity"] = tt.amenity

			pos, err := PosFromOsmNode(node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pos.Type)
		})
	}
}

// TestPosFromOsmNode_UnsupportedAmenity tests that unknown, blank and
// absent amenities all fail the same way.
func TestPosFromOsmNode_UnsupportedAmenity(t *testing.T) {
	tests := []struct {
		name    string
		amenity *string
	}{
		{name: "bank", amenity: strPtr("bank")},
		{name: "fast_food", amenity: strPtr("fast_food")},
		{name: "blank", amenity: strPtr("  ")},
		{name: "absent", amenity: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := radaNode()
			if tt.amenity == nil {
				delete(node.Tags, "amenity")
			} else {
				node.Tags["amenity"] = *tt.amenity
			}

			_, err := PosFromOsmNode(node)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOsmNodeMissingFields)
		})
	}
}

// TestPosFromOsmNode_MissingAddressTags tests that each absent address tag
// fails conversion and is named in the message.
func TestPosFromOsmNode_MissingAddressTags(t *testing.T) {
	for _, key := range []string{"addr:street", "addr:housenumber", "addr:postcode", "addr:city"} {
		t.Run(key, func(t *testing.T) {
			node := radaNode()
			delete(node.Tags, key)

			_, err := PosFromOsmNode(node)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOsmNodeMissingFields)
			assert.Contains(t, err.Error(), key)
		})
	}
}

// TestPosFromOsmNode_BlankAddressTag tests that a whitespace-only address
// value counts as missing.
func TestPosFromOsmNode_BlankAddressTag(t *testing.T) {
	node := radaNode()
	node.Tags["addr:street"] = "   "

	_, err := PosFromOsmNode(node)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOsmNodeMissingFields)
	assert.Contains(t, err.Error(), "addr:street")
}

// TestPosFromOsmNode_PostalCodeParsing tests that non-integer postal codes
// fail with the same missing-fields kind.
func TestPosFromOsmNode_PostalCodeParsing(t *testing.T) {
	tests := []string{"ABC", "69117a", "6 9117", "69117.0"}

	for _, postcode := range tests {
		t.Run(postcode, func(t *testing.T) {
			node := radaNode()
			node.Tags["addr:postcode"] = postcode

			_, err := PosFromOsmNode(node)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOsmNodeMissingFields)
		})
	}
}

// TestPosFromOsmNode_CampusDerivation tests the postal code to campus table.
func TestPosFromOsmNode_CampusDerivation(t *testing.T) {
	tests := []struct {
		postcode string
		want     Campus
	}{
		{postcode: "69117", want: CampusAltstadt},
		{postcode: "69120", want: CampusINF},
	}

	for _, tt := range tests {
		t.Run(tt.postcode, func(t *testing.T) {
			node := radaNode()
			node.Tags["addr:postcode"] = tt.postcode

			pos, err := PosFromOsmNode(node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pos.Campus)
		})
	}
}

// TestPosFromOsmNode_UnsupportedPostalCode tests that a postal code outside
// the campus table fails conversion.
func TestPosFromOsmNode_UnsupportedPostalCode(t *testing.T) {
	node := radaNode()
	node.Tags["addr:postcode"] = "10000"
	node.Tags["addr:city"] = "Elsewhere"

	_, err := PosFromOsmNode(node)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOsmNodeMissingFields)
	assert.Contains(t, err.Error(), "10000")
}

// TestPosFromOsmNode_DescriptionPrecedence tests that the description tag
// wins over cuisine synthesis, which wins over the city fallback.
func TestPosFromOsmNode_DescriptionPrecedence(t *testing.T) {
	tests := []struct {
		name        string
		description string
		cuisine     string
		want        string
	}{
		{
			name:        "explicit description wins",
			description: "Third wave roastery on the main drag",
			cuisine:     "coffee_shop",
			want:        "Third wave roastery on the main drag",
		},
		{
			name:    "cuisine synthesis",
			cuisine: "coffee_shop",
			want:    "A cafe serving coffee_shop cuisine",
		},
		{
			name: "city fallback",
			want: "A cafe in Heidelberg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := radaNode()
			delete(node.Tags, "description")
			delete(node.Tags, "cuisine")
			if tt.description != "" {
				node.Tags["description"] = tt.description
			}
			if tt.cuisine != "" {
				node.Tags["cuisine"] = tt.cuisine
			}

			pos, err := PosFromOsmNode(node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pos.Description)
		})
	}
}

// TestPosFromOsmNode_BakeryFallbackDescription tests the generic description
// for a bakery without description and cuisine tags.
func TestPosFromOsmNode_BakeryFallbackDescription(t *testing.T) {
	pos, err := PosFromOsmNode(bakeryNode())
	require.NoError(t, err)

	assert.Equal(t, PosTypeBakery, pos.Type)
	assert.Equal(t, CampusINF, pos.Campus)
	assert.Equal(t, "A bakery in Heidelberg", pos.Description)
}

// TestPosFromOsmNode_Deterministic tests that converting the same node twice
// yields identical drafts.
func TestPosFromOsmNode_Deterministic(t *testing.T) {
	node := radaNode()

	first, err := PosFromOsmNode(node)
	require.NoError(t, err)
	second, err := PosFromOsmNode(node)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestPosFromOsmNode_DoesNotMutateInput tests that conversion leaves the
// node's tags untouched.
func TestPosFromOsmNode_DoesNotMutateInput(t *testing.T) {
	node := radaNode()
	want := make(map[string]string, len(node.Tags))
	for k, v := range node.Tags {
		want[k] = v
	}

	_, err := PosFromOsmNode(node)
	require.NoError(t, err)
	assert.Equal(t, want, node.Tags)
}

// TestPosFromOsmNode_FailFastOrder tests that the first unmet rule in the
// fixed order decides the error message.
func TestPosFromOsmNode_FailFastOrder(t *testing.T) {
	node := radaNode()
	delete(node.Tags, "name")
	delete(node.Tags, "amenity")
	delete(node.Tags, "addr:street")

	_, err := PosFromOsmNode(node)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
	assert.NotContains(t, err.Error(), "amenity")
}

// TestPosFromOsmNode_ErrorCarriesNodeID tests that every failure names the
// offending node.
func TestPosFromOsmNode_ErrorCarriesNodeID(t *testing.T) {
	node := radaNode()
	node.Tags["amenity"] = "bank"

	_, err := PosFromOsmNode(node)
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf("%d", node.NodeID))
	assert.True(t, errors.Is(err, ErrOsmNodeMissingFields))
	assert.False(t, errors.Is(err, ErrOsmNodeNotFound))
}

// TestDescribe_PlaceFallback tests that the description generator degrades
// to "place" for a blank amenity instead of relying on earlier checks.
func TestDescribe_PlaceFallback(t *testing.T) {
	tests := []struct {
		name string
		tags map[string]string
		want string
	}{
		{
			name: "no amenity with cuisine",
			tags: map[string]string{"cuisine": "coffee_shop"},
			want: "A place serving coffee_shop cuisine",
		},
		{
			name: "no amenity with city",
			tags: map[string]string{"addr:city": "Heidelberg"},
			want: "A place in Heidelberg",
		},
		{
			name: "blank amenity",
			tags: map[string]string{"amenity": "  ", "addr:city": "Heidelberg"},
			want: "A place in Heidelberg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(tt.tags))
		})
	}
}

func strPtr(s string) *string {
	return &s
}
