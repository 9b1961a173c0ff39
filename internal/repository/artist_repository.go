package repository

import (
	"context"
	"fmt"

	"github.com/farellandr/fyyur/internal/models"
	"gorm.io/gorm"
)

type ArtistRepo struct {
	db *gorm.DB
}

func NewArtistRepo(db *gorm.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

func (r *ArtistRepo) List(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.db.WithContext(ctx).Select("id", "name").Order("id").Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return artists, nil
}

func (r *ArtistRepo) Search(ctx context.Context, term string) ([]models.Artist, error) {
	var artists []models.Artist
	if err := nameContains(r.db.WithContext(ctx), term).Order("id").Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	return artists, nil
}

func (r *ArtistRepo) Get(ctx context.Context, id uint) (*models.Artist, error) {
	var artist models.Artist
	err := r.db.WithContext(ctx).Preload("Genres", orderGenres).Where("id = ?", id).First(&artist).Error
	if err != nil {
		return nil, translate(err)
	}
	return &artist, nil
}

func (r *ArtistRepo) Create(ctx context.Context, artist *models.Artist, genreNames []string) error {
	if err := validateName(artist.Name); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		genres, err := resolveGenres(tx, genreNames)
		if err != nil {
			return err
		}
		artist.Genres = genres
		return translate(tx.Create(artist).Error)
	})
}

func (r *ArtistRepo) Update(ctx context.Context, id uint, changes models.Artist, genreNames []string) (*models.Artist, error) {
	if err := validateName(changes.Name); err != nil {
		return nil, err
	}
	var artist models.Artist
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&artist).Error; err != nil {
			return translate(err)
		}

		artist.Name = changes.Name
		artist.City = changes.City
		artist.State = changes.State
		artist.Phone = changes.Phone
		artist.ImageLink = changes.ImageLink
		artist.FacebookLink = changes.FacebookLink
		artist.Website = changes.Website
		artist.SeekingVenue = changes.SeekingVenue
		artist.SeekingDescription = changes.SeekingDescription
		if err := tx.Omit("Genres", "Shows").Save(&artist).Error; err != nil {
			return translate(err)
		}

		genres, err := resolveGenres(tx, genreNames)
		if err != nil {
			return err
		}
		if err := replaceGenres(tx, &artist, genres); err != nil {
			return err
		}
		artist.Genres = genres
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &artist, nil
}
