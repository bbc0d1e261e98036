// Package mapper converts between persisted entities and transfer models.
package mapper

import (
	"villa-api-backend/dto"
	"villa-api-backend/internal/model"
)

// VillaToDTO maps a villa entity to its read model.
func VillaToDTO(v model.Villa) dto.VillaDTO {
	return dto.VillaDTO{
		ID:        v.ID,
		Name:      v.Name,
		Details:   v.Details,
		Rate:      v.Rate,
		Occupancy: v.Occupancy,
		Sqft:      v.Sqft,
		ImageURL:  v.ImageURL,
		Amenity:   v.Amenity,
	}
}

// VillasToDTO maps a slice of villas, preserving order.
func VillasToDTO(villas []model.Villa) []dto.VillaDTO {
	out := make([]dto.VillaDTO, 0, len(villas))
	for _, v := range villas {
		out = append(out, VillaToDTO(v))
	}
	return out
}

// VillaFromCreate builds a new, unsaved villa entity.
func VillaFromCreate(d dto.VillaCreateDTO) model.Villa {
	return model.Villa{
		Name:      d.Name,
		Details:   d.Details,
		Rate:      d.Rate,
		Occupancy: d.Occupancy,
		Sqft:      d.Sqft,
		ImageURL:  d.ImageURL,
		Amenity:   d.Amenity,
	}
}

// VillaFromUpdate builds the replacement entity for a full update.
func VillaFromUpdate(d dto.VillaUpdateDTO) model.Villa {
	return model.Villa{
		ID:        d.ID,
		Name:      d.Name,
		Details:   d.Details,
		Rate:      d.Rate,
		Occupancy: d.Occupancy,
		Sqft:      d.Sqft,
		ImageURL:  d.ImageURL,
		Amenity:   d.Amenity,
	}
}

// VillaToUpdate exposes the patchable surface of a stored villa.
func VillaToUpdate(v model.Villa) dto.VillaUpdateDTO {
	return dto.VillaUpdateDTO{
		ID:        v.ID,
		Name:      v.Name,
		Details:   v.Details,
		Rate:      v.Rate,
		Occupancy: v.Occupancy,
		Sqft:      v.Sqft,
		ImageURL:  v.ImageURL,
		Amenity:   v.Amenity,
	}
}
