package driving

import (
	"context"

	"github.com/seuhd/campus-coffee/internal/core/domain"
)

// PosService manages the POS directory.
type PosService interface {
	// Create persists a new POS. The POS must not carry an ID.
	Create(ctx context.Context, pos domain.Pos) (*domain.Pos, error)

	// Update modifies an existing POS identified by its ID.
	Update(ctx context.Context, pos domain.Pos) (*domain.Pos, error)

	// Upsert creates the POS when it has no ID and updates it otherwise.
	Upsert(ctx context.Context, pos domain.Pos) (*domain.Pos, error)

	// GetByID retrieves a POS by ID.
	GetByID(ctx context.Context, id int64) (*domain.Pos, error)

	// GetAll returns all POS in the directory.
	GetAll(ctx context.Context) ([]domain.Pos, error)

	// Clear removes every POS from the directory.
	Clear(ctx context.Context) error

	// ImportFromOsmNode fetches an OSM node, converts it into a POS and
	// persists it as a new record.
	ImportFromOsmNode(ctx context.Context, nodeID int64) (*domain.Pos, error)
}
