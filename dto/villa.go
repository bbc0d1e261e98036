// Package dto holds the request and response shapes exposed by the villa API.
// They are shared by the HTTP handlers and the client package.
package dto

// VillaDTO is the read model returned for a villa.
type VillaDTO struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Details   string  `json:"details"`
	Rate      float64 `json:"rate"`
	Occupancy int     `json:"occupancy"`
	Sqft      int     `json:"sqft"`
	ImageURL  string  `json:"imageUrl"`
	Amenity   string  `json:"amenity"`
}

// VillaCreateDTO is the body of POST /api/villas.
type VillaCreateDTO struct {
	Name      string  `json:"name" binding:"required,max=128"`
	Details   string  `json:"details"`
	Rate      float64 `json:"rate" binding:"gte=0"`
	Occupancy int     `json:"occupancy" binding:"gte=0"`
	Sqft      int     `json:"sqft" binding:"gte=0"`
	ImageURL  string  `json:"imageUrl"`
	Amenity   string  `json:"amenity"`
}

// VillaUpdateDTO is the body of PUT /api/villas/{id} and the document that
// PATCH operations are applied to. Only fields listed here can be patched.
type VillaUpdateDTO struct {
	ID        int64   `json:"id" binding:"required,gt=0"`
	Name      string  `json:"name" binding:"required,max=128"`
	Details   string  `json:"details"`
	Rate      float64 `json:"rate" binding:"gte=0"`
	Occupancy int     `json:"occupancy" binding:"gte=0"`
	Sqft      int     `json:"sqft" binding:"gte=0"`
	ImageURL  string  `json:"imageUrl"`
	Amenity   string  `json:"amenity"`
}
