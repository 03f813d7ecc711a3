package driven

import (
	"context"

	"github.com/seuhd/campus-coffee/internal/core/domain"
)

// OsmGateway fetches raw nodes from the external map provider.
type OsmGateway interface {
	// FetchNode retrieves the node with the given id. Any failure to
	// produce a usable node (transport error, error status, unparseable
	// or empty response) is reported as domain.ErrOsmNodeNotFound.
	FetchNode(ctx context.Context, nodeID int64) (*domain.OsmNode, error)
}
