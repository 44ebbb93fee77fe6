package database

import (
	"errors"

	"github.com/tcgcombos/combo-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CardRepo struct {
	db *gorm.DB
}

func NewCardRepo(db *gorm.DB) *CardRepo {
	return &CardRepo{db}
}

// FindByID returns a card by its ID, or nil when absent
func (r *CardRepo) FindByID(id int64) (*models.Card, error) {
	var card models.Card
	err := r.db.First(&card, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// Upsert inserts the given cards if absent (ON CONFLICT DO NOTHING). Card ids
// come from the caller, so an already-present card keeps its stored name.
func (r *CardRepo) Upsert(cards []models.Card) error {
	return upsertCards(r.db, cards)
}

func upsertCards(db *gorm.DB, cards []models.Card) error {
	if len(cards) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&cards).Error
}
