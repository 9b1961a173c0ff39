package models

import (
	"time"

	"gorm.io/gorm"
)

type Artist struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"not null"`
	SearchName         string `gorm:"size:255;index"`
	City               string `gorm:"size:120"`
	State              string `gorm:"size:120"`
	Phone              string `gorm:"size:120"`
	ImageLink          string `gorm:"size:500"`
	FacebookLink       string `gorm:"size:120"`
	Website            string `gorm:"size:120"`
	SeekingVenue       bool   `gorm:"not null;default:false"`
	SeekingDescription string
	Genres             []Genre `gorm:"many2many:artist_genre;constraint:OnDelete:CASCADE"`
	Shows              []Show  `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (a *Artist) GenreNames() []string {
	return genreNames(a.Genres)
}

// BeforeSave keeps SearchName as the Unicode lower-case form of Name; name
// searches match against it.
func (a *Artist) BeforeSave(tx *gorm.DB) (err error) {
	a.SearchName = FoldName(a.Name)
	return
}
