package models

import (
	"time"

	"gorm.io/gorm"
)

// Show is a single booking of one artist at one venue. Shows are never
// updated; they disappear only when their venue or artist is deleted.
type Show struct {
	ID        uint      `gorm:"primaryKey"`
	StartTime time.Time `gorm:"not null;index"`
	ArtistID  uint      `gorm:"not null;index"`
	Artist    Artist
	VenueID   uint `gorm:"not null;index"`
	Venue     Venue
	CreatedAt time.Time
}

func (show *Show) BeforeCreate(tx *gorm.DB) (err error) {
	show.StartTime = show.StartTime.UTC()
	return
}
