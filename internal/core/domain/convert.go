package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Tag keys read during conversion.
const (
	tagName        = "name"
	tagAmenity     = "amenity"
	tagStreet      = "addr:street"
	tagHouseNumber = "addr:housenumber"
	tagPostcode    = "addr:postcode"
	tagCity        = "addr:city"
	tagDescription = "description"
	tagCuisine     = "cuisine"
)

// amenityPosTypes maps lowercased amenity tag values to POS types.
// No cuisine check gates the restaurant mapping.
var amenityPosTypes = map[string]PosType{
	"cafe":       PosTypeCafe,
	"restaurant": PosTypeCafe,
	"bakery":     PosTypeBakery,
}

// campusPostalCodes maps the supported postal codes to campuses.
var campusPostalCodes = map[int]Campus{
	69117: CampusAltstadt,
	69120: CampusINF,
}

// addressTags must all be present and non-blank for a node to convert.
var addressTags = []string{tagStreet, tagHouseNumber, tagPostcode, tagCity}

// PosFromOsmNode converts a raw OSM node into a POS ready for persistence.
// It is pure: no I/O, deterministic, safe for concurrent use.
//
// Rules are applied in fixed order and fail fast: name tag, amenity type,
// address tags, postal code, campus, description. An unsupported amenity or
// postal code fails the same way as an absent one. Every failure is reported
// as ErrOsmNodeMissingFields carrying the node id; only the message names
// the unmet rule. The returned Pos has no ID and no timestamps.
func PosFromOsmNode(node OsmNode) (Pos, error) {
	name := node.Tags[tagName]
	if blank(name) {
		return Pos{}, missingFields(node.NodeID, "missing or blank 'name' tag")
	}

	posType, ok := amenityPosTypes[strings.ToLower(node.Tags[tagAmenity])]
	if !ok {
		return Pos{}, missingFields(node.NodeID, fmt.Sprintf("unsupported amenity %q", node.Tags[tagAmenity]))
	}

	var missing []string
	for _, key := range addressTags {
		if blank(node.Tags[key]) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return Pos{}, missingFields(node.NodeID, fmt.Sprintf("missing address tags %v", missing))
	}

	postalCode, err := strconv.Atoi(node.Tags[tagPostcode])
	if err != nil {
		return Pos{}, missingFields(node.NodeID, fmt.Sprintf("postal code %q is not an integer", node.Tags[tagPostcode]))
	}

	campus, ok := campusPostalCodes[postalCode]
	if !ok {
		return Pos{}, missingFields(node.NodeID, fmt.Sprintf("no campus for postal code %d", postalCode))
	}

	return Pos{
		Name:        name,
		Description: describe(node.Tags),
		Type:        posType,
		Campus:      campus,
		Street:      node.Tags[tagStreet],
		HouseNumber: node.Tags[tagHouseNumber],
		PostalCode:  postalCode,
		City:        node.Tags[tagCity],
	}, nil
}

// describe resolves the POS description: the description tag verbatim if
// non-blank, else a synthesis from the cuisine tag, else a generic fallback
// naming the city. The amenity placeholder degrades to "place" when the tag
// is blank; describe does not assume earlier validation succeeded.
func describe(tags map[string]string) string {
	if d := tags[tagDescription]; !blank(d) {
		return d
	}
	amenity := tags[tagAmenity]
	if blank(amenity) {
		amenity = "place"
	}
	if c := tags[tagCuisine]; !blank(c) {
		return fmt.Sprintf("A %s serving %s cuisine", amenity, c)
	}
	return fmt.Sprintf("A %s in %s", amenity, tags[tagCity])
}

func missingFields(nodeID int64, detail string) error {
	return fmt.Errorf("osm node %d: %s: %w", nodeID, detail, ErrOsmNodeMissingFields)
}

// blank reports whether s is empty or whitespace only.
func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
