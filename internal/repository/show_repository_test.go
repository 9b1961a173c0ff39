package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/farellandr/fyyur/internal/models"
	"github.com/farellandr/fyyur/internal/repository"
	"github.com/farellandr/fyyur/internal/testkit"
)

func TestShowPartitionsAroundNow(t *testing.T) {
	db := testkit.NewDB(t)
	ctx := context.Background()
	repo := repository.NewShowRepo(db)

	venue := createVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	artist := createArtist(t, db, "Guns N Petals")

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	past := createShow(t, db, artist.ID, venue.ID, now.Add(-time.Hour))
	createShow(t, db, artist.ID, venue.ID, now)
	upcoming := createShow(t, db, artist.ID, venue.ID, now.Add(time.Hour))

	tests := []struct {
		name string
		list func(context.Context, uint, time.Time) ([]models.Show, error)
		id   uint
		want uint
	}{
		{name: "past for venue", list: repo.PastForVenue, id: venue.ID, want: past.ID},
		{name: "upcoming for venue", list: repo.UpcomingForVenue, id: venue.ID, want: upcoming.ID},
		{name: "past for artist", list: repo.PastForArtist, id: artist.ID, want: past.ID},
		{name: "upcoming for artist", list: repo.UpcomingForArtist, id: artist.ID, want: upcoming.ID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shows, err := tt.list(ctx, tt.id, now)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(shows) != 1 || shows[0].ID != tt.want {
				t.Fatalf("shows = %v, want only show %d", shows, tt.want)
			}
		})
	}

	counts, err := repo.CountUpcomingByVenue(ctx, []uint{venue.ID}, now)
	if err != nil {
		t.Fatalf("count upcoming: %v", err)
	}
	if counts[venue.ID] != 1 {
		t.Fatalf("upcoming count = %d, want 1", counts[venue.ID])
	}
}

func TestShowDetailsCarryCounterpart(t *testing.T) {
	db := testkit.NewDB(t)
	ctx := context.Background()
	repo := repository.NewShowRepo(db)

	venue := createVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	artist := createArtist(t, db, "Guns N Petals")
	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	createShow(t, db, artist.ID, venue.ID, start)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	byArtist, err := repo.UpcomingForArtist(ctx, artist.ID, now)
	if err != nil {
		t.Fatalf("upcoming for artist: %v", err)
	}
	if len(byArtist) != 1 || byArtist[0].Venue.Name != "The Musical Hop" {
		t.Fatalf("upcoming for artist = %v, want one show at The Musical Hop", byArtist)
	}
	if !byArtist[0].StartTime.Equal(start) {
		t.Fatalf("start time = %v, want %v", byArtist[0].StartTime, start)
	}

	byVenue, err := repo.UpcomingForVenue(ctx, venue.ID, now)
	if err != nil {
		t.Fatalf("upcoming for venue: %v", err)
	}
	if len(byVenue) != 1 || byVenue[0].Artist.Name != "Guns N Petals" {
		t.Fatalf("upcoming for venue = %v, want one show by Guns N Petals", byVenue)
	}

	counts, err := repo.CountUpcomingByArtist(ctx, []uint{artist.ID, artist.ID + 1}, now)
	if err != nil {
		t.Fatalf("count upcoming: %v", err)
	}
	if counts[artist.ID] != 1 || counts[artist.ID+1] != 0 {
		t.Fatalf("counts = %v, want 1 for artist %d only", counts, artist.ID)
	}
}

func TestShowCreateConvertsToUTC(t *testing.T) {
	db := testkit.NewDB(t)
	ctx := context.Background()

	venue := createVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	artist := createArtist(t, db, "Guns N Petals")

	pacific := time.FixedZone("PDT", -7*60*60)
	start := time.Date(2035, 4, 1, 13, 0, 0, 0, pacific)
	createShow(t, db, artist.ID, venue.ID, start)

	shows, err := repository.NewShowRepo(db).List(ctx)
	if err != nil {
		t.Fatalf("list shows: %v", err)
	}
	if len(shows) != 1 {
		t.Fatalf("shows = %d, want 1", len(shows))
	}
	if want := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC); !shows[0].StartTime.Equal(want) {
		t.Fatalf("start time = %v, want %v", shows[0].StartTime, want)
	}
	if shows[0].Artist.Name != "Guns N Petals" || shows[0].Venue.Name != "The Musical Hop" {
		t.Fatalf("joined names = %q, %q", shows[0].Artist.Name, shows[0].Venue.Name)
	}
}

func TestShowCreateRejectsUnknownReferences(t *testing.T) {
	db := testkit.NewDB(t)
	ctx := context.Background()
	repo := repository.NewShowRepo(db)

	venue := createVenue(t, db, "The Musical Hop", "San Francisco", "CA")

	err := repo.Create(ctx, &models.Show{ArtistID: 99, VenueID: venue.ID, StartTime: time.Now()})
	if err == nil {
		t.Fatalf("create show with unknown artist succeeded")
	}

	shows, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list shows: %v", err)
	}
	if len(shows) != 0 {
		t.Fatalf("shows = %d, want 0", len(shows))
	}
}

func TestShowCreateRequiresStartTime(t *testing.T) {
	db := testkit.NewDB(t)

	err := repository.NewShowRepo(db).Create(context.Background(), &models.Show{ArtistID: 1, VenueID: 1})
	if repository.KindOf(err) != repository.KindValidation {
		t.Fatalf("KindOf(err) = %v, want %v", repository.KindOf(err), repository.KindValidation)
	}
}
