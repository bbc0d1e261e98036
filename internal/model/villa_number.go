package model

import "time"

// VillaNumber is a physical unit number assigned to a villa.
type VillaNumber struct {
	VillaNo        int64  `gorm:"primaryKey;autoIncrement:false"` // Caller-assigned
	VillaID        int64  `gorm:"index;not null"`
	SpecialDetails string `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Associations
	Villa Villa `gorm:"constraint:OnDelete:CASCADE"`
}
