// Package osm implements the OsmGateway port against OpenStreetMap data:
// the public OSM API 0.6 for live lookups and local XML extracts for
// offline imports.
package osm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/seuhd/campus-coffee/internal/core/domain"
	"github.com/seuhd/campus-coffee/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.OsmGateway = (*Client)(nil)

// DefaultBaseURL is the public OSM API 0.6 root.
const DefaultBaseURL = "https://api.openstreetmap.org/api/0.6"

// Client implements driven.OsmGateway against the OSM API 0.6.
// Requests carry an identifying User-Agent and are throttled with a token
// bucket; the public API expects clients to stay around one request per
// second. There are no retries: a failed fetch surfaces immediately.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewClient creates an OSM API client. An empty baseURL selects the public
// API; a nil logger disables logging.
func NewClient(baseURL, userAgent string, timeout time.Duration, rps float64, burst int, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:   baseURL,
		userAgent: userAgent,
		limiter:   rate.NewLimiter(rate.Limit(rps), burst),
		logger:    logger,
	}
}

// FetchNode retrieves a single node. Transport errors, error statuses,
// unparseable bodies and empty element lists all collapse into
// domain.ErrOsmNodeNotFound; the wrapped message keeps the detail.
func (c *Client) FetchNode(ctx context.Context, nodeID int64) (*domain.OsmNode, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fetchFailed(nodeID, err)
	}

	url := fmt.Sprintf("%s/node/%d.json", c.baseURL, nodeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fetchFailed(nodeID, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("fetching osm node",
		zap.Int64("node_id", nodeID),
		zap.String("url", url))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fetchFailed(nodeID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("osm api returned status %d for node %d: %w",
			resp.StatusCode, nodeID, domain.ErrOsmNodeNotFound)
	}

	var nodeResp nodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&nodeResp); err != nil {
		return nil, fmt.Errorf("decoding osm response for node %d: %v: %w",
			nodeID, err, domain.ErrOsmNodeNotFound)
	}
	if len(nodeResp.Elements) == 0 {
		return nil, fmt.Errorf("osm response for node %d has no elements: %w",
			nodeID, domain.ErrOsmNodeNotFound)
	}

	element := nodeResp.Elements[0]
	tags := element.Tags
	if tags == nil {
		tags = map[string]string{}
	}

	c.logger.Debug("fetched osm node",
		zap.Int64("node_id", element.ID),
		zap.Float64("lat", element.Lat),
		zap.Float64("lon", element.Lon),
		zap.Int("tags", len(tags)))

	return &domain.OsmNode{
		NodeID: element.ID,
		Lat:    element.Lat,
		Lon:    element.Lon,
		Tags:   tags,
	}, nil
}

func fetchFailed(nodeID int64, err error) error {
	return fmt.Errorf("fetching osm node %d: %v: %w", nodeID, err, domain.ErrOsmNodeNotFound)
}

// OSM API 0.6 response types.

type nodeResponse struct {
	Version   string        `json:"version"`
	Generator string        `json:"generator"`
	Elements  []nodeElement `json:"elements"`
}

type nodeElement struct {
	Type string            `json:"type"`
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}
