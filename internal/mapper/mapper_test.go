package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"villa-api-backend/dto"
	"villa-api-backend/internal/model"
)

func TestVillaRoundTripThroughUpdateDTO(t *testing.T) {
	stored := model.Villa{
		ID:        7,
		Name:      "Sunset Villa",
		Details:   "Ocean view",
		Rate:      200,
		Sqft:      1200,
		Occupancy: 4,
		ImageURL:  "https://img.example/7.jpg",
		Amenity:   "pool",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	back := VillaFromUpdate(VillaToUpdate(stored))

	// Timestamps are not part of the transfer surface.
	stored.CreatedAt, stored.UpdatedAt = time.Time{}, time.Time{}
	assert.Equal(t, stored, back)
}

func TestVillaFromCreateLeavesIDUnset(t *testing.T) {
	v := VillaFromCreate(dto.VillaCreateDTO{Name: "A", Rate: 1.5, Occupancy: 2, Sqft: 30, ImageURL: "u", Amenity: "x", Details: "d"})

	assert.Zero(t, v.ID)
	assert.Equal(t, "A", v.Name)
	assert.Equal(t, 1.5, v.Rate)
	assert.Equal(t, 2, v.Occupancy)
	assert.Equal(t, 30, v.Sqft)
	assert.Equal(t, "u", v.ImageURL)
	assert.Equal(t, "x", v.Amenity)
	assert.Equal(t, "d", v.Details)
}

func TestVillasToDTOPreservesOrder(t *testing.T) {
	out := VillasToDTO([]model.Villa{{ID: 3, Name: "c"}, {ID: 1, Name: "a"}})

	assert.Equal(t, []dto.VillaDTO{{ID: 3, Name: "c"}, {ID: 1, Name: "a"}}, out)
	assert.NotNil(t, VillasToDTO(nil), "empty input should still encode as []")
}

func TestVillaNumberMapping(t *testing.T) {
	n := VillaNumberFromCreate(dto.VillaNumberCreateDTO{VillaNo: 101, VillaID: 2, SpecialDetails: "corner"})
	assert.Equal(t, model.VillaNumber{VillaNo: 101, VillaID: 2, SpecialDetails: "corner"}, n)

	d := VillaNumberToDTO(model.VillaNumber{VillaNo: 101, VillaID: 2, SpecialDetails: "corner", CreatedAt: time.Now()})
	assert.Equal(t, dto.VillaNumberDTO{VillaNo: 101, VillaID: 2, SpecialDetails: "corner"}, d)

	u := VillaNumberFromUpdate(dto.VillaNumberUpdateDTO{VillaNo: 5, VillaID: 9})
	assert.Equal(t, int64(5), u.VillaNo)
	assert.Equal(t, int64(9), u.VillaID)
}
