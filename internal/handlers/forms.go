package handlers

import (
	"strings"

	"github.com/farellandr/fyyur/internal/helpers"
	"github.com/farellandr/fyyur/internal/models"
)

type VenueForm struct {
	Name               string           `form:"name"`
	City               string           `form:"city"`
	State              string           `form:"state"`
	Address            string           `form:"address"`
	Phone              string           `form:"phone"`
	ImageLink          string           `form:"image_link"`
	FacebookLink       string           `form:"facebook_link"`
	WebsiteLink        string           `form:"website_link"`
	SeekingTalent      helpers.Checkbox `form:"seeking_talent"`
	SeekingDescription string           `form:"seeking_description"`
	Genres             []string         `form:"genres"`
}

func (f VenueForm) venue() models.Venue {
	return models.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.WebsiteLink,
		SeekingTalent:      bool(f.SeekingTalent),
		SeekingDescription: f.SeekingDescription,
	}
}

type ArtistForm struct {
	Name               string           `form:"name"`
	City               string           `form:"city"`
	State              string           `form:"state"`
	Phone              string           `form:"phone"`
	ImageLink          string           `form:"image_link"`
	FacebookLink       string           `form:"facebook_link"`
	WebsiteLink        string           `form:"website_link"`
	SeekingVenue       helpers.Checkbox `form:"seeking_venue"`
	SeekingDescription string           `form:"seeking_description"`
	Genres             []string         `form:"genres"`
}

func (f ArtistForm) artist() models.Artist {
	return models.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.WebsiteLink,
		SeekingVenue:       bool(f.SeekingVenue),
		SeekingDescription: f.SeekingDescription,
	}
}

type ShowForm struct {
	ArtistID  string `form:"artist_id"`
	VenueID   string `form:"venue_id"`
	StartTime string `form:"start_time"`
}

// splitGenres accepts repeated genres values as well as one value holding
// a genre per line.
func splitGenres(values []string) []string {
	var names []string
	for _, value := range values {
		for _, line := range strings.Split(value, "\n") {
			if name := strings.TrimSpace(line); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}
