package models

import (
	"time"

	"gorm.io/gorm"
)

type Venue struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"not null"`
	SearchName         string `gorm:"size:255;index"`
	City               string `gorm:"size:120;index"`
	State              string `gorm:"size:120"`
	Address            string `gorm:"size:120"`
	Phone              string `gorm:"size:120"`
	ImageLink          string `gorm:"size:500"`
	FacebookLink       string `gorm:"size:120"`
	Website            string `gorm:"size:120"`
	SeekingTalent      bool   `gorm:"not null;default:false"`
	SeekingDescription string
	Genres             []Genre `gorm:"many2many:venue_genre;constraint:OnDelete:CASCADE"`
	Shows              []Show  `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// GenreNames returns the names of the loaded genres in association order.
func (v *Venue) GenreNames() []string {
	return genreNames(v.Genres)
}

// BeforeSave keeps SearchName as the Unicode lower-case form of Name; name
// searches match against it.
func (v *Venue) BeforeSave(tx *gorm.DB) (err error) {
	v.SearchName = FoldName(v.Name)
	return
}
