package database

import (
	"errors"

	"github.com/tcgcombos/combo-backend/models"
	"gorm.io/gorm"
)

type DeckRepo struct {
	db *gorm.DB
}

func NewDeckRepo(db *gorm.DB) *DeckRepo {
	return &DeckRepo{db}
}

// FindPage returns one page of decks ordered by combo count, each row
// carrying its combos_count.
func (r *DeckRepo) FindPage(page, limit int) (*models.DeckPage, error) {
	var total int64
	if err := r.db.Model(&models.Deck{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * limit
	var decks []models.DeckListing
	err := r.db.Model(&models.Deck{}).
		Select("decks.*, COUNT(combos.id) AS combos_count").
		Joins("LEFT JOIN combos ON combos.deck_id = decks.id").
		Group("decks.id").
		Order("combos_count DESC, decks.name ASC").
		Limit(limit).
		Offset(offset).
		Scan(&decks).Error
	if err != nil {
		return nil, err
	}
	if decks == nil {
		decks = []models.DeckListing{}
	}

	return &models.DeckPage{Total: total, Page: page, Limit: limit, Decks: decks}, nil
}

// FindByID returns a deck by its ID, or nil when absent
func (r *DeckRepo) FindByID(id int64) (*models.Deck, error) {
	var deck models.Deck
	err := r.db.First(&deck, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &deck, nil
}

// Add inserts a new deck into the database
func (r *DeckRepo) Add(deck *models.Deck) error {
	return r.db.Create(deck).Error
}

// Update overwrites a deck's flat fields and reports how many rows matched.
func (r *DeckRepo) Update(id int64, name, description, imageURL string) (int64, error) {
	result := r.db.Model(&models.Deck{}).Where("id = ?", id).Updates(map[string]any{
		"name":        name,
		"description": description,
		"image_url":   imageURL,
	})
	return result.RowsAffected, result.Error
}

// Delete removes a deck by id and reports how many rows matched.
func (r *DeckRepo) Delete(id int64) (int64, error) {
	result := r.db.Delete(&models.Deck{}, id)
	return result.RowsAffected, result.Error
}
