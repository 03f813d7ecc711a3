// Package domain defines the core business entities for Campus Coffee.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Pos: A point of sale (café or bakery) in the directory
//   - OsmNode: A raw OpenStreetMap node with coordinates and tags
//   - PosType, Campus: Closed enumerations derived during conversion
//
// The OSM-to-POS conversion rules live here as pure functions so that
// they stay free of I/O and trivially testable.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
