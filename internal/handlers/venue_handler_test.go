package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/farellandr/fyyur/internal/queue"
	"github.com/farellandr/fyyur/internal/views"
)

type venuesPage struct {
	Areas []views.VenueArea `json:"areas"`
}

type venuePage struct {
	Venue views.VenueDetail `json:"venue"`
}

type searchPage struct {
	Results    views.SearchResults `json:"results"`
	SearchTerm string              `json:"search_term"`
}

func TestListVenuesGroupsByCity(t *testing.T) {
	tc := newTestClient(t)
	tc.createVenue("The Musical Hop", "San Francisco", "CA", "Jazz", "Reggae")
	tc.createVenue("The Dueling Pianos Bar", "New York", "NY", "Classical")
	tc.createVenue("Park Square Live Music & Coffee", "San Francisco", "CA", "Jazz")
	tc.createArtist("Guns N Petals", "Rock n Roll")
	tc.messages(tc.createShow("1", "3", "2035-04-01T20:00:00.000Z"))

	var page venuesPage
	tc.decode(tc.do(http.MethodGet, "/venues", nil), http.StatusOK, &page)

	if len(page.Areas) != 2 {
		t.Fatalf("areas = %+v, want 2", page.Areas)
	}
	ny, sf := page.Areas[0], page.Areas[1]
	if ny.City != "New York" || ny.State != "NY" || len(ny.Venues) != 1 {
		t.Fatalf("areas[0] = %+v, want New York with one venue", ny)
	}
	if sf.City != "San Francisco" || len(sf.Venues) != 2 {
		t.Fatalf("areas[1] = %+v, want San Francisco with two venues", sf)
	}
	if sf.Venues[0].NumUpcomingShows != 0 || sf.Venues[1].NumUpcomingShows != 1 {
		t.Fatalf("upcoming counts = %d, %d, want 0, 1", sf.Venues[0].NumUpcomingShows, sf.Venues[1].NumUpcomingShows)
	}
}

func TestSearchVenues(t *testing.T) {
	tc := newTestClient(t)
	tc.createVenue("The Musical Hop", "San Francisco", "CA")
	tc.createVenue("The Dueling Pianos Bar", "New York", "NY")
	tc.createVenue("Park Square Live Music & Coffee", "San Francisco", "CA")

	tests := []struct {
		term string
		want int
	}{
		{term: "Hop", want: 1},
		{term: "Music", want: 2},
		{term: "", want: 3},
		{term: "opera", want: 0},
	}
	for _, tt := range tests {
		var page searchPage
		tc.decode(tc.do(http.MethodPost, "/venues/search", url.Values{"search_term": {tt.term}}), http.StatusOK, &page)
		if page.Results.Count != tt.want || len(page.Results.Data) != tt.want {
			t.Errorf("search %q count = %d (%d rows), want %d", tt.term, page.Results.Count, len(page.Results.Data), tt.want)
		}
		if page.SearchTerm != tt.term {
			t.Errorf("search_term = %q, want %q", page.SearchTerm, tt.term)
		}
	}
}

func TestGetVenue(t *testing.T) {
	tc := newTestClient(t)
	tc.createVenue("The Musical Hop", "San Francisco", "CA", "Jazz", "Reggae")
	tc.createArtist("Guns N Petals", "Rock n Roll")
	tc.messages(tc.createShow("1", "1", "2019-05-21T21:30:00.000Z"))
	tc.messages(tc.createShow("1", "1", "2035-04-01T20:00:00.000Z"))

	var page venuePage
	tc.decode(tc.do(http.MethodGet, "/venues/1", nil), http.StatusOK, &page)
	venue := page.Venue

	if venue.Name != "The Musical Hop" || venue.Website != "https://www.themusicalhop.com" || !venue.SeekingTalent {
		t.Fatalf("venue = %+v", venue.VenueForm)
	}
	if len(venue.Genres) != 2 || venue.Genres[0] != "Jazz" || venue.Genres[1] != "Reggae" {
		t.Fatalf("genres = %v, want [Jazz Reggae]", venue.Genres)
	}
	if venue.PastShowsCount != 1 || venue.UpcomingShowsCount != 1 {
		t.Fatalf("counts = %d past, %d upcoming, want 1 and 1", venue.PastShowsCount, venue.UpcomingShowsCount)
	}
	want := views.ArtistShow{ArtistID: 1, ArtistName: "Guns N Petals", StartTime: "2035-04-01T20:00:00.000Z"}
	if venue.UpcomingShows[0] != want {
		t.Fatalf("upcoming[0] = %+v, want %+v", venue.UpcomingShows[0], want)
	}
}

func TestGetVenueNotFound(t *testing.T) {
	tc := newTestClient(t)

	for _, target := range []string{"/venues/42", "/venues/abc", "/venues/42/edit"} {
		if w := tc.do(http.MethodGet, target, nil); w.Code != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want %d", target, w.Code, http.StatusNotFound)
		}
	}
}

func TestCreateVenueWithoutName(t *testing.T) {
	tc := newTestClient(t)

	w := tc.do(http.MethodPost, "/venues/create", url.Values{"city": {"San Francisco"}})
	tc.expectMessagePrefix(w, "An error occurred. Venue")

	var page venuesPage
	tc.decode(tc.do(http.MethodGet, "/venues", nil), http.StatusOK, &page)
	if len(page.Areas) != 0 {
		t.Fatalf("areas = %+v, want none", page.Areas)
	}
}

func TestUpdateVenue(t *testing.T) {
	tc := newTestClient(t)
	tc.createVenue("The Musical Hop", "San Francisco", "CA", "Jazz")

	var form struct {
		Venue views.VenueForm `json:"venue"`
	}
	tc.decode(tc.do(http.MethodGet, "/venues/1/edit", nil), http.StatusOK, &form)
	if !form.Venue.SeekingTalent || len(form.Venue.Genres) != 1 || form.Venue.Genres[0] != "Jazz" {
		t.Fatalf("edit form = %+v, want seeking talent with [Jazz]", form.Venue)
	}

	w := tc.do(http.MethodPost, "/venues/1/edit", url.Values{
		"name":   {"The Musical Hop"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"genres": {"Classical"},
	})
	tc.expectRedirect(w, "/venues/1")

	var page venuePage
	w = tc.do(http.MethodGet, "/venues/1", nil)
	tc.expectMessage(w, "Venue The Musical Hop has been updated.")
	tc.decode(w, http.StatusOK, &page)
	if page.Venue.SeekingTalent {
		t.Fatalf("seeking talent = true, want false")
	}
	if len(page.Venue.Genres) != 1 || page.Venue.Genres[0] != "Classical" {
		t.Fatalf("genres = %v, want [Classical]", page.Venue.Genres)
	}
	if page.Venue.Address != "" {
		t.Fatalf("address = %q, want cleared", page.Venue.Address)
	}
}

func TestUpdateVenueMissing(t *testing.T) {
	tc := newTestClient(t)

	w := tc.do(http.MethodPost, "/venues/9/edit", url.Values{"name": {"Ghost"}})
	tc.expectRedirect(w, "/venues/9")

	w = tc.do(http.MethodGet, "/", nil)
	tc.expectMessage(w, "An error occurred. Venue could not be updated: it does not exist.")
}

func TestDeleteVenue(t *testing.T) {
	tc := newTestClient(t)
	tc.createVenue("The Musical Hop", "San Francisco", "CA", "Jazz")
	tc.createVenue("Park Square Live Music & Coffee", "San Francisco", "CA", "Jazz")
	tc.createArtist("Guns N Petals")
	tc.messages(tc.createShow("1", "1", "2035-04-01T20:00:00.000Z"))
	tc.messages(tc.createShow("1", "1", "2035-04-08T20:00:00.000Z"))
	tc.messages(tc.createShow("1", "2", "2035-04-15T20:00:00.000Z"))

	tc.expectRedirect(tc.do(http.MethodDelete, "/venues/1", nil), "/")
	tc.expectMessage(tc.do(http.MethodGet, "/", nil), "The Musical Hop venue has been deleted.")

	var shows showsPage
	tc.decode(tc.do(http.MethodGet, "/shows", nil), http.StatusOK, &shows)
	if len(shows.Shows) != 1 || shows.Shows[0].VenueID != 2 {
		t.Fatalf("shows = %+v, want only the show at venue 2", shows.Shows)
	}

	queues, events := tc.publisher.published()
	last := len(queues) - 1
	if last < 0 || queues[last] != queue.VenueDeletedQueue {
		t.Fatalf("published queues = %v, want %s last", queues, queue.VenueDeletedQueue)
	}
	event := events[last].(queue.VenueDeletedEvent)
	if event.VenueID != 1 || event.ShowsRemoved != 2 || event.VenueName != "The Musical Hop" {
		t.Fatalf("event = %+v", event)
	}

	tc.expectRedirect(tc.do(http.MethodDelete, "/venues/1", nil), "/")
	tc.expectMessage(tc.do(http.MethodGet, "/", nil), "This venue doesn't exist.")
}
