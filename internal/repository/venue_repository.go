package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/farellandr/fyyur/internal/models"
	"gorm.io/gorm"
)

// Area is one distinct city among the venues. State comes from the
// lowest-id venue in that city; venues sharing a city name across states
// are grouped together.
type Area struct {
	City  string
	State string
}

type VenueRepo struct {
	db *gorm.DB
}

func NewVenueRepo(db *gorm.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Areas returns every distinct venue city ordered by name.
func (r *VenueRepo) Areas(ctx context.Context) ([]Area, error) {
	firstPerCity := r.db.Model(&models.Venue{}).Select("MIN(id)").Group("city")

	var areas []Area
	err := r.db.WithContext(ctx).
		Model(&models.Venue{}).
		Select("city, state").
		Where("id IN (?)", firstPerCity).
		Order("city").
		Scan(&areas).Error
	if err != nil {
		return nil, fmt.Errorf("list venue areas: %w", err)
	}
	return areas, nil
}

func (r *VenueRepo) ListByCity(ctx context.Context, city string) ([]models.Venue, error) {
	var venues []models.Venue
	if err := r.db.WithContext(ctx).Where("city = ?", city).Order("id").Find(&venues).Error; err != nil {
		return nil, fmt.Errorf("list venues in %q: %w", city, err)
	}
	return venues, nil
}

func (r *VenueRepo) Search(ctx context.Context, term string) ([]models.Venue, error) {
	var venues []models.Venue
	if err := nameContains(r.db.WithContext(ctx), term).Order("id").Find(&venues).Error; err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	return venues, nil
}

// Get loads a venue with its genres. It returns ErrNotFound when no venue
// has the given id.
func (r *VenueRepo) Get(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	err := r.db.WithContext(ctx).Preload("Genres", orderGenres).Where("id = ?", id).First(&venue).Error
	if err != nil {
		return nil, translate(err)
	}
	return &venue, nil
}

// Create stores venue and tags it with genreNames in one transaction.
func (r *VenueRepo) Create(ctx context.Context, venue *models.Venue, genreNames []string) error {
	if err := validateName(venue.Name); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		genres, err := resolveGenres(tx, genreNames)
		if err != nil {
			return err
		}
		venue.Genres = genres
		return translate(tx.Create(venue).Error)
	})
}

// Update overwrites every mutable field of the venue with id and replaces its
// genre set. Fields left empty in changes are stored empty.
func (r *VenueRepo) Update(ctx context.Context, id uint, changes models.Venue, genreNames []string) (*models.Venue, error) {
	if err := validateName(changes.Name); err != nil {
		return nil, err
	}
	var venue models.Venue
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&venue).Error; err != nil {
			return translate(err)
		}

		venue.Name = changes.Name
		venue.City = changes.City
		venue.State = changes.State
		venue.Address = changes.Address
		venue.Phone = changes.Phone
		venue.ImageLink = changes.ImageLink
		venue.FacebookLink = changes.FacebookLink
		venue.Website = changes.Website
		venue.SeekingTalent = changes.SeekingTalent
		venue.SeekingDescription = changes.SeekingDescription
		if err := tx.Omit("Genres", "Shows").Save(&venue).Error; err != nil {
			return translate(err)
		}

		genres, err := resolveGenres(tx, genreNames)
		if err != nil {
			return err
		}
		if err := replaceGenres(tx, &venue, genres); err != nil {
			return err
		}
		venue.Genres = genres
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

// Delete removes the venue with id together with its shows and genre links.
// The deleted venue and the number of shows removed are returned; a missing
// venue yields ErrNotFound.
func (r *VenueRepo) Delete(ctx context.Context, id uint) (*models.Venue, int64, error) {
	var (
		venue   models.Venue
		removed int64
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&venue).Error; err != nil {
			return translate(err)
		}
		shows := tx.Where("venue_id = ?", venue.ID).Delete(&models.Show{})
		if shows.Error != nil {
			return translate(shows.Error)
		}
		removed = shows.RowsAffected
		if err := tx.Model(&venue).Association("Genres").Clear(); err != nil {
			return translate(err)
		}
		return translate(tx.Delete(&venue).Error)
	})
	if err != nil {
		return nil, 0, err
	}
	return &venue, removed, nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return Invalid("name is required")
	}
	return nil
}
