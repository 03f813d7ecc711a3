package driven

import (
	"context"

	"github.com/seuhd/campus-coffee/internal/core/domain"
)

// PosStore persists points of sale and enforces name uniqueness.
type PosStore interface {
	// Create inserts a new POS, assigning its ID and timestamps.
	// Returns domain.ErrDuplicatePosName when the name is already taken.
	Create(ctx context.Context, pos domain.Pos) (*domain.Pos, error)

	// Update overwrites an existing POS and refreshes UpdatedAt.
	// Returns domain.ErrPosNotFound when the ID does not exist and
	// domain.ErrDuplicatePosName when the new name belongs to another POS.
	Update(ctx context.Context, pos domain.Pos) (*domain.Pos, error)

	// GetByID retrieves a POS by ID.
	GetByID(ctx context.Context, id int64) (*domain.Pos, error)

	// GetAll returns all POS ordered by ID.
	GetAll(ctx context.Context) ([]domain.Pos, error)

	// Clear removes all POS records.
	Clear(ctx context.Context) error
}
