package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/farellandr/fyyur/internal/models"
	"gorm.io/gorm"
)

// ShowRepo reads and books shows. Every time-relative query takes the
// instant to compare against so a whole request sees the same "now".
// Comparisons are strict on both sides: a show starting exactly at now is
// neither past nor upcoming.
type ShowRepo struct {
	db *gorm.DB
}

func NewShowRepo(db *gorm.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// List returns every show joined with its venue and artist.
func (r *ShowRepo) List(ctx context.Context) ([]models.Show, error) {
	var shows []models.Show
	err := r.db.WithContext(ctx).
		InnerJoins("Venue").
		InnerJoins("Artist").
		Order("shows.start_time, shows.id").
		Find(&shows).Error
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	return shows, nil
}

// Create books a show. The artist and venue are not looked up first; the
// foreign keys reject unknown ids and the error is reported as ErrConstraint.
func (r *ShowRepo) Create(ctx context.Context, show *models.Show) error {
	if show.StartTime.IsZero() {
		return Invalid("start time is required")
	}
	if err := r.db.WithContext(ctx).Omit("Artist", "Venue").Create(show).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *ShowRepo) PastForVenue(ctx context.Context, venueID uint, now time.Time) ([]models.Show, error) {
	return r.forOwner(ctx, "venue_id", venueID, "<", now, "Artist")
}

func (r *ShowRepo) UpcomingForVenue(ctx context.Context, venueID uint, now time.Time) ([]models.Show, error) {
	return r.forOwner(ctx, "venue_id", venueID, ">", now, "Artist")
}

func (r *ShowRepo) PastForArtist(ctx context.Context, artistID uint, now time.Time) ([]models.Show, error) {
	return r.forOwner(ctx, "artist_id", artistID, "<", now, "Venue")
}

func (r *ShowRepo) UpcomingForArtist(ctx context.Context, artistID uint, now time.Time) ([]models.Show, error) {
	return r.forOwner(ctx, "artist_id", artistID, ">", now, "Venue")
}

// CountUpcomingByVenue returns the number of upcoming shows per venue id.
// Venues without upcoming shows are absent from the map.
func (r *ShowRepo) CountUpcomingByVenue(ctx context.Context, venueIDs []uint, now time.Time) (map[uint]int64, error) {
	return r.countUpcoming(ctx, "venue_id", venueIDs, now)
}

func (r *ShowRepo) CountUpcomingByArtist(ctx context.Context, artistIDs []uint, now time.Time) (map[uint]int64, error) {
	return r.countUpcoming(ctx, "artist_id", artistIDs, now)
}

func (r *ShowRepo) forOwner(ctx context.Context, column string, id uint, op string, now time.Time, counterpart string) ([]models.Show, error) {
	var shows []models.Show
	err := r.db.WithContext(ctx).
		InnerJoins(counterpart).
		Where("shows."+column+" = ? AND shows.start_time "+op+" ?", id, now.UTC()).
		Order("shows.start_time, shows.id").
		Find(&shows).Error
	if err != nil {
		return nil, fmt.Errorf("list shows by %s %d: %w", column, id, err)
	}
	return shows, nil
}

func (r *ShowRepo) countUpcoming(ctx context.Context, column string, ids []uint, now time.Time) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []struct {
		OwnerID uint
		Total   int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Show{}).
		Select(column+" AS owner_id, COUNT(*) AS total").
		Where(column+" IN ? AND start_time > ?", ids, now.UTC()).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count upcoming shows by %s: %w", column, err)
	}
	for _, row := range rows {
		counts[row.OwnerID] = row.Total
	}
	return counts, nil
}
