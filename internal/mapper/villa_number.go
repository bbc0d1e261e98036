package mapper

import (
	"villa-api-backend/dto"
	"villa-api-backend/internal/model"
)

// VillaNumberToDTO maps a stored villa number to its read model.
func VillaNumberToDTO(n model.VillaNumber) dto.VillaNumberDTO {
	return dto.VillaNumberDTO{
		VillaNo:        n.VillaNo,
		VillaID:        n.VillaID,
		SpecialDetails: n.SpecialDetails,
	}
}

// VillaNumbersToDTO maps a list; the result is never nil.
func VillaNumbersToDTO(numbers []model.VillaNumber) []dto.VillaNumberDTO {
	out := make([]dto.VillaNumberDTO, 0, len(numbers))
	for _, n := range numbers {
		out = append(out, VillaNumberToDTO(n))
	}
	return out
}

// VillaNumberFromCreate builds the entity for a create request.
func VillaNumberFromCreate(d dto.VillaNumberCreateDTO) model.VillaNumber {
	return model.VillaNumber{
		VillaNo:        d.VillaNo,
		VillaID:        d.VillaID,
		SpecialDetails: d.SpecialDetails,
	}
}

// VillaNumberFromUpdate builds the replacement entity for an update request.
func VillaNumberFromUpdate(d dto.VillaNumberUpdateDTO) model.VillaNumber {
	return model.VillaNumber{
		VillaNo:        d.VillaNo,
		VillaID:        d.VillaID,
		SpecialDetails: d.SpecialDetails,
	}
}
