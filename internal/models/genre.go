package models

import "strings"

// Genre is identified by its label. Rows are shared by every venue and
// artist tagged with the same name.
type Genre struct {
	Name string `gorm:"primaryKey;size:120"`
}

func genreNames(genres []Genre) []string {
	names := make([]string, 0, len(genres))
	for _, genre := range genres {
		names = append(names, genre.Name)
	}
	return names
}

// FoldName is the case-folded form used for name searches. SQL LOWER is
// ASCII-only on some dialects, so folding happens here.
func FoldName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
