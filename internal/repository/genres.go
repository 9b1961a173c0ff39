package repository

import (
	"strings"

	"github.com/farellandr/fyyur/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxGenreNameLength = 120

// resolveGenres returns one Genre per distinct submitted name, inserting the
// names that do not exist yet. Existing rows are left untouched, so two
// concurrent requests tagging the same new name both end up referencing a
// single row.
func resolveGenres(tx *gorm.DB, names []string) ([]models.Genre, error) {
	seen := make(map[string]bool, len(names))
	genres := make([]models.Genre, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		if len(name) > maxGenreNameLength {
			return nil, Invalid("genre %q is longer than %d characters", name, maxGenreNameLength)
		}
		seen[name] = true
		genres = append(genres, models.Genre{Name: name})
	}
	if len(genres) == 0 {
		return genres, nil
	}

	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&genres).Error; err != nil {
		return nil, translate(err)
	}
	return genres, nil
}

func replaceGenres(tx *gorm.DB, owner any, genres []models.Genre) error {
	association := tx.Model(owner).Association("Genres")
	if len(genres) == 0 {
		return translate(association.Clear())
	}
	return translate(association.Replace(genres))
}

func orderGenres(db *gorm.DB) *gorm.DB {
	return db.Order("genres.name")
}
