package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/seuhd/campus-coffee/internal/core/domain"
	"github.com/seuhd/campus-coffee/internal/core/ports/driven"
	"github.com/seuhd/campus-coffee/internal/core/ports/driving"
)

// Ensure PosService implements the interface.
var _ driving.PosService = (*PosService)(nil)

// PosService manages the POS directory.
type PosService struct {
	store   driven.PosStore
	gateway driven.OsmGateway
	logger  *zap.Logger
}

// NewPosService creates a new POS service. A nil logger disables logging.
func NewPosService(store driven.PosStore, gateway driven.OsmGateway, logger *zap.Logger) *PosService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PosService{
		store:   store,
		gateway: gateway,
		logger:  logger,
	}
}

// Create persists a new POS. The POS must not carry an ID.
func (s *PosService) Create(ctx context.Context, pos domain.Pos) (*domain.Pos, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if pos.ID != 0 {
		return nil, fmt.Errorf("create must not carry an id: %w", domain.ErrInvalidInput)
	}
	if err := pos.Validate(); err != nil {
		return nil, err
	}
	created, err := s.store.Create(ctx, pos)
	if err != nil {
		return nil, err
	}
	s.logger.Info("created pos",
		zap.Int64("id", created.ID),
		zap.String("name", created.Name))
	return created, nil
}

// Update modifies an existing POS identified by its ID. The record is
// looked up first so a missing ID fails before any write is attempted.
func (s *PosService) Update(ctx context.Context, pos domain.Pos) (*domain.Pos, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if pos.ID == 0 {
		return nil, fmt.Errorf("update requires an id: %w", domain.ErrInvalidInput)
	}
	if err := pos.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.store.GetByID(ctx, pos.ID); err != nil {
		return nil, err
	}
	updated, err := s.store.Update(ctx, pos)
	if err != nil {
		return nil, err
	}
	s.logger.Info("updated pos",
		zap.Int64("id", updated.ID),
		zap.String("name", updated.Name))
	return updated, nil
}

// Upsert creates the POS when it has no ID and updates it otherwise.
func (s *PosService) Upsert(ctx context.Context, pos domain.Pos) (*domain.Pos, error) {
	if pos.ID == 0 {
		return s.Create(ctx, pos)
	}
	return s.Update(ctx, pos)
}

// GetByID retrieves a POS by ID.
func (s *PosService) GetByID(ctx context.Context, id int64) (*domain.Pos, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.GetByID(ctx, id)
}

// GetAll returns all POS in the directory.
func (s *PosService) GetAll(ctx context.Context) ([]domain.Pos, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.GetAll(ctx)
}

// Clear removes every POS from the directory.
func (s *PosService) Clear(ctx context.Context) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	s.logger.Warn("clearing all pos records")
	return s.store.Clear(ctx)
}

// ImportFromOsmNode fetches an OSM node, converts it into a POS and
// persists it as a new record. Fetch, convert and insert run as one
// linear sequence: any failure aborts the import with nothing persisted
// and propagates to the caller unretried.
func (s *PosService) ImportFromOsmNode(ctx context.Context, nodeID int64) (*domain.Pos, error) {
	if s.store == nil || s.gateway == nil {
		return nil, domain.ErrNotImplemented
	}
	s.logger.Info("importing pos from osm node", zap.Int64("node_id", nodeID))

	node, err := s.gateway.FetchNode(ctx, nodeID)
	if err != nil {
		s.logger.Error("osm node fetch failed",
			zap.Int64("node_id", nodeID),
			zap.Error(err))
		return nil, err
	}
	s.logger.Debug("fetched osm node",
		zap.Int64("node_id", node.NodeID),
		zap.Float64("lat", node.Lat),
		zap.Float64("lon", node.Lon),
		zap.Int("tags", len(node.Tags)))

	pos, err := domain.PosFromOsmNode(*node)
	if err != nil {
		s.logger.Error("osm node conversion failed",
			zap.Int64("node_id", nodeID),
			zap.Error(err))
		return nil, err
	}

	created, err := s.Create(ctx, pos)
	if err != nil {
		s.logger.Error("persisting imported pos failed",
			zap.Int64("node_id", nodeID),
			zap.String("name", pos.Name),
			zap.Error(err))
		return nil, err
	}
	s.logger.Info("imported pos from osm node",
		zap.Int64("node_id", nodeID),
		zap.Int64("id", created.ID),
		zap.String("name", created.Name))
	return created, nil
}
