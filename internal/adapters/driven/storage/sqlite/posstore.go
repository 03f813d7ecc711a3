package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/seuhd/campus-coffee/internal/core/domain"
	"github.com/seuhd/campus-coffee/internal/core/ports/driven"
)

// posStore implements driven.PosStore.
type posStore struct {
	store *Store
}

var _ driven.PosStore = (*posStore)(nil)

const posColumns = "id, name, description, type, campus, street, house_number, postal_code, city, created_at, updated_at"

// Create inserts a new pos and returns it with its assigned id. The
// UNIQUE index on name surfaces as domain.ErrDuplicatePosName.
func (s *posStore) Create(ctx context.Context, pos domain.Pos) (*domain.Pos, error) {
	now := s.store.clock.Now().UTC()
	pos.CreatedAt = now
	pos.UpdatedAt = now

	result, err := s.store.db.ExecContext(ctx, `
		INSERT INTO pos (name, description, type, campus, street, house_number, postal_code, city, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, pos.Name, pos.Description, string(pos.Type), string(pos.Campus),
		pos.Street, pos.HouseNumber, pos.PostalCode, pos.City,
		pos.CreatedAt, pos.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("pos named %q already exists: %w", pos.Name, domain.ErrDuplicatePosName)
		}
		return nil, fmt.Errorf("inserting pos: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted pos id: %w", err)
	}
	pos.ID = id

	return &pos, nil
}

// Update overwrites an existing pos. CreatedAt keeps its stored value,
// UpdatedAt moves to now.
func (s *posStore) Update(ctx context.Context, pos domain.Pos) (*domain.Pos, error) {
	pos.UpdatedAt = s.store.clock.Now().UTC()

	result, err := s.store.db.ExecContext(ctx, `
		UPDATE pos
		SET name = ?, description = ?, type = ?, campus = ?, street = ?,
			house_number = ?, postal_code = ?, city = ?, updated_at = ?
		WHERE id = ?
	`, pos.Name, pos.Description, string(pos.Type), string(pos.Campus),
		pos.Street, pos.HouseNumber, pos.PostalCode, pos.City,
		pos.UpdatedAt, pos.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("pos named %q already exists: %w", pos.Name, domain.ErrDuplicatePosName)
		}
		return nil, fmt.Errorf("updating pos: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("reading affected rows: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("pos %d: %w", pos.ID, domain.ErrPosNotFound)
	}

	return s.GetByID(ctx, pos.ID)
}

// GetByID retrieves a pos by its id.
func (s *posStore) GetByID(ctx context.Context, id int64) (*domain.Pos, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT "+posColumns+" FROM pos WHERE id = ?", id)

	pos, err := scanPos(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("pos %d: %w", id, domain.ErrPosNotFound)
		}
		return nil, err
	}
	return &pos, nil
}

// GetAll returns every pos ordered by id. The result is empty, never
// nil, when the table is.
func (s *posStore) GetAll(ctx context.Context) ([]domain.Pos, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT "+posColumns+" FROM pos ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying pos: %w", err)
	}
	defer rows.Close()

	all := make([]domain.Pos, 0)
	for rows.Next() {
		pos, err := scanPosRows(rows)
		if err != nil {
			return nil, err
		}
		all = append(all, pos)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pos: %w", err)
	}

	return all, nil
}

// Clear deletes every pos. The AUTOINCREMENT sequence keeps its high
// water mark, so ids are never handed out twice.
func (s *posStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM pos"); err != nil {
		return fmt.Errorf("clearing pos: %w", err)
	}
	return nil
}

// scanPos scans a single pos row.
func scanPos(row *sql.Row) (domain.Pos, error) {
	var pos domain.Pos
	var posType, campus string

	if err := row.Scan(&pos.ID, &pos.Name, &pos.Description, &posType, &campus,
		&pos.Street, &pos.HouseNumber, &pos.PostalCode, &pos.City,
		&pos.CreatedAt, &pos.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Pos{}, err
		}
		return domain.Pos{}, fmt.Errorf("scanning pos: %w", err)
	}

	pos.Type = domain.PosType(posType)
	pos.Campus = domain.Campus(campus)
	return pos, nil
}

// scanPosRows scans a pos from *sql.Rows.
func scanPosRows(rows *sql.Rows) (domain.Pos, error) {
	var pos domain.Pos
	var posType, campus string

	if err := rows.Scan(&pos.ID, &pos.Name, &pos.Description, &posType, &campus,
		&pos.Street, &pos.HouseNumber, &pos.PostalCode, &pos.City,
		&pos.CreatedAt, &pos.UpdatedAt); err != nil {
		return domain.Pos{}, fmt.Errorf("scanning pos: %w", err)
	}

	pos.Type = domain.PosType(posType)
	pos.Campus = domain.Campus(campus)
	return pos, nil
}

// isUniqueViolation reports whether err is a SQLite unique constraint
// failure.
func isUniqueViolation(err error) bool {
	var serr *sqlite.Error
	return errors.As(err, &serr) && serr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
