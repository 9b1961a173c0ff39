package repository

import (
	"strings"

	"github.com/farellandr/fyyur/internal/models"
	"gorm.io/gorm"
)

const likeEscape = "!"

var likeReplacer = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// nameContains filters rows whose name contains term, ignoring case. The
// term is matched literally: LIKE wildcards in it are escaped. Matching runs
// against search_name, folded in Go when the row is saved, so non-ASCII
// letters compare the same on every dialect.
func nameContains(db *gorm.DB, term string) *gorm.DB {
	pattern := "%" + likeReplacer.Replace(models.FoldName(term)) + "%"
	return db.Where("search_name LIKE ? ESCAPE '"+likeEscape+"'", pattern)
}
