package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/seuhd/campus-coffee/internal/core/domain"
	"github.com/seuhd/campus-coffee/internal/core/ports/driven"
)

// uniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const uniqueViolation = "23505"

// posStore implements driven.PosStore.
type posStore struct {
	store *Store
}

var _ driven.PosStore = (*posStore)(nil)

const posColumns = "id, name, description, type, campus, street, house_number, postal_code, city, created_at, updated_at"

// Create inserts a new pos and returns it with the id the sequence
// assigned. The UNIQUE constraint on name surfaces as
// domain.ErrDuplicatePosName.
func (s *posStore) Create(ctx context.Context, pos domain.Pos) (*domain.Pos, error) {
	now := s.store.clock.Now().UTC()
	pos.CreatedAt = now
	pos.UpdatedAt = now

	err := s.store.pool.QueryRow(ctx, `
		INSERT INTO pos (name, description, type, campus, street, house_number, postal_code, city, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, pos.Name, pos.Description, string(pos.Type), string(pos.Campus),
		pos.Street, pos.HouseNumber, pos.PostalCode, pos.City,
		pos.CreatedAt, pos.UpdatedAt).Scan(&pos.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("pos named %q already exists: %w", pos.Name, domain.ErrDuplicatePosName)
		}
		return nil, fmt.Errorf("inserting pos: %w", err)
	}

	return &pos, nil
}

// Update overwrites an existing pos. CreatedAt keeps its stored value,
// UpdatedAt moves to now.
func (s *posStore) Update(ctx context.Context, pos domain.Pos) (*domain.Pos, error) {
	pos.UpdatedAt = s.store.clock.Now().UTC()

	tag, err := s.store.pool.Exec(ctx, `
		UPDATE pos
		SET name = $1, description = $2, type = $3, campus = $4, street = $5,
			house_number = $6, postal_code = $7, city = $8, updated_at = $9
		WHERE id = $10
	`, pos.Name, pos.Description, string(pos.Type), string(pos.Campus),
		pos.Street, pos.HouseNumber, pos.PostalCode, pos.City,
		pos.UpdatedAt, pos.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("pos named %q already exists: %w", pos.Name, domain.ErrDuplicatePosName)
		}
		return nil, fmt.Errorf("updating pos: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("pos %d: %w", pos.ID, domain.ErrPosNotFound)
	}

	return s.GetByID(ctx, pos.ID)
}

// GetByID retrieves a pos by its id.
func (s *posStore) GetByID(ctx context.Context, id int64) (*domain.Pos, error) {
	var pos domain.Pos
	var posType, campus string

	err := s.store.pool.QueryRow(ctx,
		"SELECT "+posColumns+" FROM pos WHERE id = $1", id,
	).Scan(&pos.ID, &pos.Name, &pos.Description, &posType, &campus,
		&pos.Street, &pos.HouseNumber, &pos.PostalCode, &pos.City,
		&pos.CreatedAt, &pos.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("pos %d: %w", id, domain.ErrPosNotFound)
		}
		return nil, fmt.Errorf("scanning pos: %w", err)
	}

	pos.Type = domain.PosType(posType)
	pos.Campus = domain.Campus(campus)
	return &pos, nil
}

// GetAll returns every pos ordered by id. The result is empty, never
// nil, when the table is.
func (s *posStore) GetAll(ctx context.Context) ([]domain.Pos, error) {
	rows, err := s.store.pool.Query(ctx,
		"SELECT "+posColumns+" FROM pos ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying pos: %w", err)
	}
	defer rows.Close()

	all := make([]domain.Pos, 0)
	for rows.Next() {
		var pos domain.Pos
		var posType, campus string
		if err := rows.Scan(&pos.ID, &pos.Name, &pos.Description, &posType, &campus,
			&pos.Street, &pos.HouseNumber, &pos.PostalCode, &pos.City,
			&pos.CreatedAt, &pos.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning pos: %w", err)
		}
		pos.Type = domain.PosType(posType)
		pos.Campus = domain.Campus(campus)
		all = append(all, pos)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pos: %w", err)
	}

	return all, nil
}

// Clear deletes every pos. The id sequence keeps its high water mark.
func (s *posStore) Clear(ctx context.Context) error {
	if _, err := s.store.pool.Exec(ctx, "DELETE FROM pos"); err != nil {
		return fmt.Errorf("clearing pos: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a unique constraint failure.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
