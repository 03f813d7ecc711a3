package domain

import (
	"fmt"
	"strings"
	"time"
)

// PosType classifies a point of sale.
type PosType string

const (
	// PosTypeCafe covers cafés. Restaurants serving coffee are modelled
	// as cafés as well.
	PosTypeCafe PosType = "CAFE"
	// PosTypeBakery covers bakeries.
	PosTypeBakery PosType = "BAKERY"
)

// ParsePosType converts a string into a PosType. Matching is
// case-insensitive; unknown values return ErrInvalidInput.
func ParsePosType(s string) (PosType, error) {
	switch t := PosType(strings.ToUpper(strings.TrimSpace(s))); t {
	case PosTypeCafe, PosTypeBakery:
		return t, nil
	}
	return "", fmt.Errorf("unknown pos type %q: %w", s, ErrInvalidInput)
}

// Campus identifies the university site a POS belongs to.
// It is always derived from the postal code, never supplied directly.
type Campus string

const (
	// CampusAltstadt is the old town campus (postal code 69117).
	CampusAltstadt Campus = "ALTSTADT"
	// CampusINF is the Neuenheimer Feld campus (postal code 69120).
	CampusINF Campus = "INF"
)

// ParseCampus converts a string into a Campus. Matching is
// case-insensitive; unknown values return ErrInvalidInput.
func ParseCampus(s string) (Campus, error) {
	switch c := Campus(strings.ToUpper(strings.TrimSpace(s))); c {
	case CampusAltstadt, CampusINF:
		return c, nil
	}
	return "", fmt.Errorf("unknown campus %q: %w", s, ErrInvalidInput)
}

// Pos represents a point of sale in the campus coffee directory.
type Pos struct {
	// ID is the unique identifier, assigned by the store. Zero until persisted.
	ID int64

	// Name is the display name. Unique across the directory.
	Name string

	// Description is a short human-readable summary. Never blank.
	Description string

	// Type classifies the POS.
	Type PosType

	// Campus is the site the POS belongs to, derived from PostalCode.
	Campus Campus

	// Street and HouseNumber locate the POS within the city.
	Street      string
	HouseNumber string

	// PostalCode is the numeric postal code.
	PostalCode int

	// City is the municipality.
	City string

	// CreatedAt is when the POS was first persisted. Stamped by the store.
	CreatedAt time.Time

	// UpdatedAt is when the POS was last written. Stamped by the store.
	UpdatedAt time.Time
}

// Validate checks that all required fields are populated and enum values
// are members of their closed sets. ID and timestamps are excluded: they
// belong to the store.
func (p *Pos) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name must not be blank: %w", ErrInvalidInput)
	}
	switch p.Type {
	case PosTypeCafe, PosTypeBakery:
	default:
		return fmt.Errorf("unknown pos type %q: %w", p.Type, ErrInvalidInput)
	}
	switch p.Campus {
	case CampusAltstadt, CampusINF:
	default:
		return fmt.Errorf("unknown campus %q: %w", p.Campus, ErrInvalidInput)
	}
	if strings.TrimSpace(p.Street) == "" {
		return fmt.Errorf("street must not be blank: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(p.HouseNumber) == "" {
		return fmt.Errorf("house number must not be blank: %w", ErrInvalidInput)
	}
	if p.PostalCode <= 0 {
		return fmt.Errorf("postal code must be positive: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(p.City) == "" {
		return fmt.Errorf("city must not be blank: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Description) == "" {
		return fmt.Errorf("description must not be blank: %w", ErrInvalidInput)
	}
	return nil
}

// Address returns the street address as a single display line.
func (p *Pos) Address() string {
	return fmt.Sprintf("%s %s, %d %s", p.Street, p.HouseNumber, p.PostalCode, p.City)
}
