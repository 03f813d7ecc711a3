package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/seuhd/campus-coffee/internal/core/domain"
	"github.com/seuhd/campus-coffee/internal/core/ports/driven"
)

// Ensure PosStore implements the interface.
var _ driven.PosStore = (*PosStore)(nil)

// PosStore is an in-memory implementation of driven.PosStore.
// It mirrors the relational stores' semantics, including name uniqueness
// and timestamp stamping, and backs tests and ephemeral dev runs.
type PosStore struct {
	mu     sync.RWMutex
	pos    map[int64]domain.Pos
	nextID int64
	clock  clockwork.Clock
}

// NewPosStore creates a new in-memory POS store using the wall clock.
func NewPosStore() *PosStore {
	return NewPosStoreWithClock(clockwork.NewRealClock())
}

// NewPosStoreWithClock creates a store stamping timestamps from clock.
func NewPosStoreWithClock(clock clockwork.Clock) *PosStore {
	return &PosStore{
		pos:   make(map[int64]domain.Pos),
		clock: clock,
	}
}

// Create inserts a new POS, assigning its ID and timestamps.
func (s *PosStore) Create(_ context.Context, pos domain.Pos) (*domain.Pos, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nameTaken(pos.Name, 0) {
		return nil, domain.ErrDuplicatePosName
	}
	s.nextID++
	now := s.clock.Now().UTC()
	pos.ID = s.nextID
	pos.CreatedAt = now
	pos.UpdatedAt = now
	s.pos[pos.ID] = pos
	return &pos, nil
}

// Update overwrites an existing POS and refreshes UpdatedAt.
// CreatedAt is preserved from the stored record.
func (s *PosStore) Update(_ context.Context, pos domain.Pos) (*domain.Pos, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.pos[pos.ID]
	if !ok {
		return nil, domain.ErrPosNotFound
	}
	if s.nameTaken(pos.Name, pos.ID) {
		return nil, domain.ErrDuplicatePosName
	}
	pos.CreatedAt = existing.CreatedAt
	pos.UpdatedAt = s.clock.Now().UTC()
	s.pos[pos.ID] = pos
	return &pos, nil
}

// GetByID retrieves a POS by ID.
func (s *PosStore) GetByID(_ context.Context, id int64) (*domain.Pos, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, ok := s.pos[id]
	if !ok {
		return nil, domain.ErrPosNotFound
	}
	return &pos, nil
}

// GetAll returns all POS ordered by ID.
func (s *PosStore) GetAll(_ context.Context) ([]domain.Pos, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Pos, 0, len(s.pos))
	for _, pos := range s.pos {
		result = append(result, pos)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Clear removes all POS records. IDs are not reused afterwards.
func (s *PosStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = make(map[int64]domain.Pos)
	return nil
}

// nameTaken reports whether a POS other than selfID uses name.
// Callers must hold the lock.
func (s *PosStore) nameTaken(name string, selfID int64) bool {
	for _, p := range s.pos {
		if p.Name == name && p.ID != selfID {
			return true
		}
	}
	return false
}
