package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrPosNotFound indicates a requested POS does not exist.
	ErrPosNotFound = errors.New("pos not found")

	// ErrDuplicatePosName indicates another POS already uses the same name.
	// Name uniqueness is enforced by the persistence layer, which acts as
	// the single point of truth: first writer wins.
	ErrDuplicatePosName = errors.New("duplicate pos name")

	// ErrOsmNodeNotFound indicates an OSM node id did not resolve to data.
	// The fetcher collapses transport failures, error statuses, unparseable
	// bodies and empty responses into this one kind.
	ErrOsmNodeNotFound = errors.New("osm node not found")

	// ErrOsmNodeMissingFields indicates an OSM node's tags do not satisfy
	// the POS mapping rules. Absent, blank, unparseable and unsupported
	// values all collapse into this one kind; the wrapped message names
	// the unmet rule, the kind does not.
	ErrOsmNodeMissingFields = errors.New("osm node missing required fields")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")
)
