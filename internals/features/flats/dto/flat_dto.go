// file: internals/features/flats/dto/flat_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "societyhub_backend/internals/features/flats/model"
)

type FlatDTO struct {
	ID         uuid.UUID `json:"id"`
	FlatNumber string    `json:"flat_number"`
	Block      *string   `json:"block,omitempty"`
	Floor      *int      `json:"floor,omitempty"`
	AreaSqft   *float64  `json:"area_sqft,omitempty"`
	OwnerName  *string   `json:"owner_name,omitempty"`
	OwnerPhone *string   `json:"owner_phone,omitempty"`
	OwnerEmail *string   `json:"owner_email,omitempty"`
	IsOccupied bool      `json:"is_occupied"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromModel(f m.FlatModel) FlatDTO {
	return FlatDTO{
		ID:         f.FlatID,
		FlatNumber: f.FlatNumber,
		Block:      f.FlatBlock,
		Floor:      f.FlatFloor,
		AreaSqft:   f.FlatAreaSqft,
		OwnerName:  f.FlatOwnerName,
		OwnerPhone: f.FlatOwnerPhone,
		OwnerEmail: f.FlatOwnerEmail,
		IsOccupied: f.FlatIsOccupied,
		CreatedAt:  f.FlatCreatedAt,
	}
}

func FromModelSlice(rows []m.FlatModel) []FlatDTO {
	out := make([]FlatDTO, 0, len(rows))
	for _, f := range rows {
		out = append(out, FromModel(f))
	}
	return out
}

type CreateFlatRequest struct {
	FlatNumber string   `json:"flat_number" validate:"required,max=20"`
	Block      *string  `json:"block" validate:"omitempty,max=10"`
	Floor      *int     `json:"floor" validate:"omitempty,gte=0"`
	AreaSqft   *float64 `json:"area_sqft" validate:"omitempty,gt=0"`
	OwnerName  *string  `json:"owner_name" validate:"omitempty,max=100"`
	OwnerPhone *string  `json:"owner_phone" validate:"omitempty,max=20"`
	OwnerEmail *string  `json:"owner_email" validate:"omitempty,email,max=120"`
	IsOccupied *bool    `json:"is_occupied"`
}

func (r CreateFlatRequest) ToModel() m.FlatModel {
	flat := m.FlatModel{
		FlatNumber:     strings.ToUpper(strings.TrimSpace(r.FlatNumber)),
		FlatBlock:      r.Block,
		FlatFloor:      r.Floor,
		FlatAreaSqft:   r.AreaSqft,
		FlatOwnerName:  r.OwnerName,
		FlatOwnerPhone: r.OwnerPhone,
		FlatOwnerEmail: r.OwnerEmail,
	}
	if r.IsOccupied != nil {
		flat.FlatIsOccupied = *r.IsOccupied
	}
	return flat
}

type UpdateFlatRequest struct {
	FlatNumber *string  `json:"flat_number" validate:"omitempty,max=20"`
	Block      *string  `json:"block" validate:"omitempty,max=10"`
	Floor      *int     `json:"floor" validate:"omitempty,gte=0"`
	AreaSqft   *float64 `json:"area_sqft" validate:"omitempty,gt=0"`
	OwnerName  *string  `json:"owner_name" validate:"omitempty,max=100"`
	OwnerPhone *string  `json:"owner_phone" validate:"omitempty,max=20"`
	OwnerEmail *string  `json:"owner_email" validate:"omitempty,email,max=120"`
	IsOccupied *bool    `json:"is_occupied"`
}

func (r UpdateFlatRequest) ApplyToModel(f *m.FlatModel) {
	if r.FlatNumber != nil {
		f.FlatNumber = strings.ToUpper(strings.TrimSpace(*r.FlatNumber))
	}
	if r.Block != nil {
		f.FlatBlock = r.Block
	}
	if r.Floor != nil {
		f.FlatFloor = r.Floor
	}
	if r.AreaSqft != nil {
		f.FlatAreaSqft = r.AreaSqft
	}
	if r.OwnerName != nil {
		f.FlatOwnerName = r.OwnerName
	}
	if r.OwnerPhone != nil {
		f.FlatOwnerPhone = r.OwnerPhone
	}
	if r.OwnerEmail != nil {
		f.FlatOwnerEmail = r.OwnerEmail
	}
	if r.IsOccupied != nil {
		f.FlatIsOccupied = *r.IsOccupied
	}
}
