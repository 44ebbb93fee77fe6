package database

import (
	"github.com/tcgcombos/combo-backend/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ComboLinkRepo covers the association rows hanging off a combo: tag links
// and the ordered starting-hand / final-board card slots.
type ComboLinkRepo struct {
	db *gorm.DB
}

func NewComboLinkRepo(db *gorm.DB) *ComboLinkRepo {
	return &ComboLinkRepo{db}
}

// AddTag links a tag to a combo.
func (r *ComboLinkRepo) AddTag(comboID, tagID int64) (*models.ComboTag, error) {
	link := models.ComboTag{ComboID: comboID, TagID: tagID}
	if err := r.db.Create(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// AddStartingHand upserts the referenced cards and records one ordered slot
// per card, position being the array index.
func (r *ComboLinkRepo) AddStartingHand(comboID int64, cards []models.CardRef) error {
	return r.addSlots(comboID, cards, func(comboID, cardID int64, position int) error {
		return r.db.Create(&models.StartingHandCard{ComboID: comboID, CardID: cardID, Position: position}).Error
	})
}

// AddFinalBoard is the final-board counterpart of AddStartingHand.
func (r *ComboLinkRepo) AddFinalBoard(comboID int64, cards []models.CardRef) error {
	return r.addSlots(comboID, cards, func(comboID, cardID int64, position int) error {
		return r.db.Create(&models.FinalBoardCard{ComboID: comboID, CardID: cardID, Position: position}).Error
	})
}

// addSlots runs the card upserts concurrently, then the slot inserts
// concurrently. The two phases stay ordered: a slot row must never be
// written before its card exists.
func (r *ComboLinkRepo) addSlots(comboID int64, cards []models.CardRef, insert func(comboID, cardID int64, position int) error) error {
	var upserts errgroup.Group
	for _, card := range cards {
		card := card
		upserts.Go(func() error {
			return upsertCards(r.db, []models.Card{{ID: card.CardID, Name: card.CardName}})
		})
	}
	if err := upserts.Wait(); err != nil {
		return err
	}

	var inserts errgroup.Group
	for i, card := range cards {
		i, card := i, card
		inserts.Go(func() error {
			return insert(comboID, card.CardID, i)
		})
	}
	return inserts.Wait()
}
