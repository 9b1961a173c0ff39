package views

import "github.com/farellandr/fyyur/internal/models"

type ShowListing struct {
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

func NewShowListings(shows []models.Show) []ShowListing {
	listings := make([]ShowListing, 0, len(shows))
	for _, show := range shows {
		listings = append(listings, ShowListing{
			VenueID:         show.Venue.ID,
			VenueName:       show.Venue.Name,
			ArtistID:        show.Artist.ID,
			ArtistName:      show.Artist.Name,
			ArtistImageLink: show.Artist.ImageLink,
			StartTime:       FormatStartTime(show.StartTime),
		})
	}
	return listings
}
