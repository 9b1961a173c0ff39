// Package views shapes query results into the structures the pages render.
// Every type marshals to the JSON served when a client asks for
// application/json.
package views

import (
	"time"

	"github.com/farellandr/fyyur/internal/models"
	"github.com/farellandr/fyyur/internal/repository"
)

// StartTimeLayout renders show times in UTC with millisecond precision and
// a literal Z suffix.
const StartTimeLayout = "2006-01-02T15:04:05.000Z"

func FormatStartTime(t time.Time) string {
	return t.UTC().Format(StartTimeLayout)
}

type Summary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

type VenueArea struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

type SearchResults struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

type ArtistListItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewVenueArea(area repository.Area, venues []models.Venue, upcoming map[uint]int64) VenueArea {
	summaries := make([]Summary, 0, len(venues))
	for _, venue := range venues {
		summaries = append(summaries, Summary{ID: venue.ID, Name: venue.Name, NumUpcomingShows: upcoming[venue.ID]})
	}
	return VenueArea{City: area.City, State: area.State, Venues: summaries}
}

func NewVenueSearchResults(venues []models.Venue, upcoming map[uint]int64) SearchResults {
	data := make([]Summary, 0, len(venues))
	for _, venue := range venues {
		data = append(data, Summary{ID: venue.ID, Name: venue.Name, NumUpcomingShows: upcoming[venue.ID]})
	}
	return SearchResults{Count: len(data), Data: data}
}

func NewArtistSearchResults(artists []models.Artist, upcoming map[uint]int64) SearchResults {
	data := make([]Summary, 0, len(artists))
	for _, artist := range artists {
		data = append(data, Summary{ID: artist.ID, Name: artist.Name, NumUpcomingShows: upcoming[artist.ID]})
	}
	return SearchResults{Count: len(data), Data: data}
}

func NewArtistList(artists []models.Artist) []ArtistListItem {
	items := make([]ArtistListItem, 0, len(artists))
	for _, artist := range artists {
		items = append(items, ArtistListItem{ID: artist.ID, Name: artist.Name})
	}
	return items
}

func VenueIDs(venues []models.Venue) []uint {
	ids := make([]uint, 0, len(venues))
	for _, venue := range venues {
		ids = append(ids, venue.ID)
	}
	return ids
}

func ArtistIDs(artists []models.Artist) []uint {
	ids := make([]uint, 0, len(artists))
	for _, artist := range artists {
		ids = append(ids, artist.ID)
	}
	return ids
}
