package domain

// OsmNode is a raw OpenStreetMap node as returned by the map provider:
// an identifier, coordinates and an open-ended set of string tags.
// A node is fetched fresh per import request and discarded after
// conversion; nothing caches it.
type OsmNode struct {
	// NodeID is the OSM node identifier.
	NodeID int64

	// Lat and Lon are the node's coordinates. Their range is not
	// validated here; conversion does not depend on them.
	Lat float64
	Lon float64

	// Tags holds the node's key/value tags. A key being absent is a
	// valid state distinct from an empty value. Never nil after a
	// successful fetch.
	Tags map[string]string
}
