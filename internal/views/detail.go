package views

import "github.com/farellandr/fyyur/internal/models"

// ArtistShow is a show as listed on a venue page.
type ArtistShow struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueShow is a show as listed on an artist page.
type VenueShow struct {
	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// VenueForm carries the current values used to pre-fill the edit form.
type VenueForm struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Website            string   `json:"website"`
	FacebookLink       string   `json:"facebook_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
	ImageLink          string   `json:"image_link"`
}

type VenueDetail struct {
	VenueForm
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

type ArtistForm struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Website            string   `json:"website"`
	FacebookLink       string   `json:"facebook_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
	ImageLink          string   `json:"image_link"`
}

type ArtistDetail struct {
	ArtistForm
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

func NewVenueForm(venue *models.Venue) VenueForm {
	return VenueForm{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             venue.GenreNames(),
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		Website:            venue.Website,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
	}
}

// NewVenueDetail expects past and upcoming to be partitioned already and
// each show to carry its artist.
func NewVenueDetail(venue *models.Venue, past, upcoming []models.Show) VenueDetail {
	detail := VenueDetail{
		VenueForm:     NewVenueForm(venue),
		PastShows:     artistShows(past),
		UpcomingShows: artistShows(upcoming),
	}
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)
	return detail
}

func NewArtistForm(artist *models.Artist) ArtistForm {
	return ArtistForm{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             artist.GenreNames(),
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Website:            artist.Website,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
	}
}

func NewArtistDetail(artist *models.Artist, past, upcoming []models.Show) ArtistDetail {
	detail := ArtistDetail{
		ArtistForm:    NewArtistForm(artist),
		PastShows:     venueShows(past),
		UpcomingShows: venueShows(upcoming),
	}
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)
	return detail
}

func artistShows(shows []models.Show) []ArtistShow {
	out := make([]ArtistShow, 0, len(shows))
	for _, show := range shows {
		out = append(out, ArtistShow{
			ArtistID:        show.Artist.ID,
			ArtistName:      show.Artist.Name,
			ArtistImageLink: show.Artist.ImageLink,
			StartTime:       FormatStartTime(show.StartTime),
		})
	}
	return out
}

func venueShows(shows []models.Show) []VenueShow {
	out := make([]VenueShow, 0, len(shows))
	for _, show := range shows {
		out = append(out, VenueShow{
			VenueID:        show.Venue.ID,
			VenueName:      show.Venue.Name,
			VenueImageLink: show.Venue.ImageLink,
			StartTime:      FormatStartTime(show.StartTime),
		})
	}
	return out
}
