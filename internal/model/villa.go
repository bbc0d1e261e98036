package model

import "time"

// Villa represents a rentable villa listing.
type Villa struct {
	ID        int64   `gorm:"primaryKey"`
	Name      string  `gorm:"size:128;not null"`
	Details   string  `gorm:"type:text"`
	Rate      float64 `gorm:"not null;default:0"`
	Sqft      int     `gorm:"not null;default:0"`
	Occupancy int     `gorm:"not null;default:0"`
	ImageURL  string  `gorm:"size:512"`
	Amenity   string  `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
