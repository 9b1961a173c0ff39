// Package queue defines the events published when bookings change and the
// publishers that deliver them.
package queue

const (
	ShowListedQueue   = "show.listed"
	VenueDeletedQueue = "venue.deleted"
)

// ShowListedEvent is published after a show has been committed.
type ShowListedEvent struct {
	EventID   string `json:"event_id"`
	ShowID    uint   `json:"show_id"`
	ArtistID  uint   `json:"artist_id"`
	VenueID   uint   `json:"venue_id"`
	StartTime string `json:"start_time"`
	ListedAt  string `json:"listed_at"`
}

// VenueDeletedEvent is published after a venue and its shows are gone.
type VenueDeletedEvent struct {
	EventID      string `json:"event_id"`
	VenueID      uint   `json:"venue_id"`
	VenueName    string `json:"venue_name"`
	ShowsRemoved int64  `json:"shows_removed"`
	DeletedAt    string `json:"deleted_at"`
}
