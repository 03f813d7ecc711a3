package osm

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"

	osmdata "github.com/paulmach/osm"
	"go.uber.org/zap"

	"github.com/seuhd/campus-coffee/internal/core/domain"
	"github.com/seuhd/campus-coffee/internal/core/ports/driven"
)

// Ensure FileGateway implements the interface.
var _ driven.OsmGateway = (*FileGateway)(nil)

// FileGateway implements driven.OsmGateway against a local .osm XML
// extract instead of the live API, for offline imports and fixtures.
// The extract is parsed on every lookup; extracts of campus size make
// that cheap enough.
type FileGateway struct {
	path   string
	logger *zap.Logger
}

// NewFileGateway creates a gateway reading nodes from the extract at path.
// A nil logger disables logging.
func NewFileGateway(path string, logger *zap.Logger) *FileGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileGateway{
		path:   path,
		logger: logger,
	}
}

// FetchNode looks the node up in the extract. Unreadable or unparseable
// extracts and absent nodes collapse into domain.ErrOsmNodeNotFound, the
// same contract the API client has.
func (g *FileGateway) FetchNode(_ context.Context, nodeID int64) (*domain.OsmNode, error) {
	data, err := os.ReadFile(g.path)
	if err != nil {
		return nil, fmt.Errorf("reading osm extract %s: %v: %w", g.path, err, domain.ErrOsmNodeNotFound)
	}

	var doc osmdata.OSM
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing osm extract %s: %v: %w", g.path, err, domain.ErrOsmNodeNotFound)
	}

	g.logger.Debug("searching osm extract",
		zap.String("path", g.path),
		zap.Int64("node_id", nodeID),
		zap.Int("nodes", len(doc.Nodes)))

	for _, node := range doc.Nodes {
		if int64(node.ID) != nodeID {
			continue
		}
		tags := make(map[string]string, len(node.Tags))
		for _, tag := range node.Tags {
			tags[tag.Key] = tag.Value
		}
		return &domain.OsmNode{
			NodeID: int64(node.ID),
			Lat:    node.Lat,
			Lon:    node.Lon,
			Tags:   tags,
		}, nil
	}

	return nil, fmt.Errorf("node %d not in extract %s: %w", nodeID, g.path, domain.ErrOsmNodeNotFound)
}
