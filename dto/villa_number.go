package dto

// VillaNumberDTO is the read model returned for a villa number.
type VillaNumberDTO struct {
	VillaNo        int64  `json:"villaNo"`
	VillaID        int64  `json:"villaId"`
	SpecialDetails string `json:"specialDetails"`
}

// VillaNumberCreateDTO is the body of POST /api/villa-numbers.
type VillaNumberCreateDTO struct {
	VillaNo        int64  `json:"villaNo" binding:"required,gt=0"`
	VillaID        int64  `json:"villaId" binding:"required,gt=0"`
	SpecialDetails string `json:"specialDetails"`
}

// VillaNumberUpdateDTO is the body of PUT /api/villa-numbers/{villaNo}.
type VillaNumberUpdateDTO struct {
	VillaNo        int64  `json:"villaNo" binding:"required,gt=0"`
	VillaID        int64  `json:"villaId" binding:"required,gt=0"`
	SpecialDetails string `json:"specialDetails"`
}
