package rest

import (
	"time"

	"github.com/seuhd/campus-coffee/internal/core/domain"
)

// posDTO is the wire shape of a POS. Type and campus travel as their
// uppercase enum names (CAFE, BAKERY, ALTSTADT, INF).
type posDTO struct {
	ID          int64     `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Campus      string    `json:"campus"`
	Street      string    `json:"street"`
	HouseNumber string    `json:"house_number"`
	PostalCode  int       `json:"postal_code"`
	City        string    `json:"city"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error string `json:"error"`
}

func toPosDTO(p domain.Pos) posDTO {
	return posDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Type:        string(p.Type),
		Campus:      string(p.Campus),
		Street:      p.Street,
		HouseNumber: p.HouseNumber,
		PostalCode:  p.PostalCode,
		City:        p.City,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// toPosDTOs never returns nil so an empty directory serializes as [].
func toPosDTOs(list []domain.Pos) []posDTO {
	dtos := make([]posDTO, 0, len(list))
	for _, p := range list {
		dtos = append(dtos, toPosDTO(p))
	}
	return dtos
}

// toDomain validates the enum fields while mapping. Timestamps are
// dropped: the store owns them.
func (d posDTO) toDomain() (domain.Pos, error) {
	posType, err := domain.ParsePosType(d.Type)
	if err != nil {
		return domain.Pos{}, err
	}
	campus, err := domain.ParseCampus(d.Campus)
	if err != nil {
		return domain.Pos{}, err
	}
	return domain.Pos{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Type:        posType,
		Campus:      campus,
		Street:      d.Street,
		HouseNumber: d.HouseNumber,
		PostalCode:  d.PostalCode,
		City:        d.City,
	}, nil
}
