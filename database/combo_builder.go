package database

import (
	"errors"

	"github.com/tcgcombos/combo-backend/errs"
	"github.com/tcgcombos/combo-backend/models"
	"gorm.io/gorm"
)

// ComboBuilder persists nested combo and deck-info payloads as single atomic
// units. Statement order inside each transaction is load-bearing: cards are
// upserted before anything references them, parents are written before
// children, and children are deleted before their parents on replacement.
type ComboBuilder struct {
	db *gorm.DB
}

func NewComboBuilder(db *gorm.DB) *ComboBuilder {
	return &ComboBuilder{db}
}

// CreateFullCombo validates the payload and writes the combo with all of its
// children in one transaction. Returns the created combo row (flat fields
// only); nested collections are not echoed back.
func (b *ComboBuilder) CreateFullCombo(input models.FullComboInput) (*models.Combo, error) {
	if err := validateFullCombo(input); err != nil {
		return nil, err
	}

	combo := models.Combo{
		Author:     input.Author,
		Title:      input.Title,
		Difficulty: input.Difficulty,
		DeckID:     input.DeckID,
	}

	err := b.db.Transaction(func(tx *gorm.DB) error {
		if err := upsertCards(tx, collectComboCards(input)); err != nil {
			return err
		}
		if err := tx.Create(&combo).Error; err != nil {
			return err
		}
		return insertComboChildren(tx, combo.ID, input)
	})
	if err != nil {
		return nil, errs.NewTransactionFailedError("create full combo", err)
	}
	return &combo, nil
}

// UpdateFullCombo replaces a combo and every child collection with the
// payload. This is full replacement, not patching: children absent from the
// payload are gone afterwards, and surviving children get new surrogate ids.
func (b *ComboBuilder) UpdateFullCombo(comboID int64, input models.FullComboInput) error {
	if comboID == 0 {
		return errs.NewMissingRequiredFieldError("comboId")
	}
	if err := validateFullCombo(input); err != nil {
		return err
	}

	err := b.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Combo{}).Where("id = ?", comboID).Updates(map[string]any{
			"author":     input.Author,
			"title":      input.Title,
			"difficulty": input.Difficulty,
			"deck_id":    input.DeckID,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewNotFound("combo")
		}

		if err := tx.Where("combo_id = ?", comboID).Delete(&models.ComboTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("combo_id = ?", comboID).Delete(&models.StartingHandCard{}).Error; err != nil {
			return err
		}
		if err := tx.Where("combo_id = ?", comboID).Delete(&models.FinalBoardCard{}).Error; err != nil {
			return err
		}

		// step targets first, then the steps they hang off
		var stepIDs []int64
		if err := tx.Model(&models.Step{}).Where("combo_id = ?", comboID).Pluck("id", &stepIDs).Error; err != nil {
			return err
		}
		if len(stepIDs) > 0 {
			if err := tx.Where("step_id IN ?", stepIDs).Delete(&models.StepTarget{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("combo_id = ?", comboID).Delete(&models.Step{}).Error; err != nil {
			return err
		}

		if err := upsertCards(tx, collectComboCards(input)); err != nil {
			return err
		}
		return insertComboChildren(tx, comboID, input)
	})
	if err != nil {
		var apiErr *errs.ApiErr
		if errors.As(err, &apiErr) {
			return apiErr
		}
		return errs.NewTransactionFailedError("update full combo", err)
	}
	return nil
}

// SetDeckInfo replaces a deck's note, key-card annotations and danger
// annotations (with their nested responses) in one transaction.
func (b *ComboBuilder) SetDeckInfo(deckID int64, input models.DeckInfoInput) error {
	if deckID == 0 {
		return errs.NewMissingRequiredFieldError("deckId")
	}

	err := b.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Deck{}).Where("id = ?", deckID).Update("note", input.Note)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewNotFound("deck")
		}

		// danger responses before dangers (child of child)
		var dangerIDs []int64
		if err := tx.Model(&models.DeckDanger{}).Where("deck_id = ?", deckID).Pluck("id", &dangerIDs).Error; err != nil {
			return err
		}
		if len(dangerIDs) > 0 {
			if err := tx.Where("deck_main_danger_id IN ?", dangerIDs).Delete(&models.DeckDangerResponse{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("deck_id = ?", deckID).Delete(&models.DeckDanger{}).Error; err != nil {
			return err
		}
		if err := tx.Where("deck_id = ?", deckID).Delete(&models.DeckKeyCard{}).Error; err != nil {
			return err
		}

		if err := upsertCards(tx, collectDeckInfoCards(input)); err != nil {
			return err
		}

		for _, keyCard := range input.KeyCards {
			row := models.DeckKeyCard{DeckID: deckID, CardID: keyCard.CardID, Description: keyCard.Description}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		for _, dangerInput := range input.Dangers {
			danger := models.DeckDanger{DeckID: deckID, CardID: dangerInput.CardID, ExtraNotes: dangerInput.ExtraNotes}
			if err := tx.Create(&danger).Error; err != nil {
				return err
			}
			for _, response := range dangerInput.Responses {
				row := models.DeckDangerResponse{DangerID: danger.ID, CardID: response.CardID}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		var apiErr *errs.ApiErr
		if errors.As(err, &apiErr) {
			return apiErr
		}
		return errs.NewTransactionFailedError("set deck info", err)
	}
	return nil
}

func validateFullCombo(input models.FullComboInput) error {
	switch {
	case input.DeckID == 0:
		return errs.NewMissingRequiredFieldError("deckId")
	case input.Author == "":
		return errs.NewMissingRequiredFieldError("author")
	case input.Title == "":
		return errs.NewMissingRequiredFieldError("title")
	case input.Difficulty == "":
		return errs.NewMissingRequiredFieldError("difficulty")
	}
	return nil
}

// insertComboChildren writes tag links, ordered hand/board slots and steps
// with their targets for an already-persisted combo id.
func insertComboChildren(tx *gorm.DB, comboID int64, input models.FullComboInput) error {
	for _, tagID := range input.Tags {
		if err := tx.Create(&models.ComboTag{ComboID: comboID, TagID: tagID}).Error; err != nil {
			return err
		}
	}
	for i, ref := range input.StartingHand {
		row := models.StartingHandCard{ComboID: comboID, CardID: ref.CardID, Position: i}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	for i, ref := range input.FinalBoard {
		row := models.FinalBoardCard{ComboID: comboID, CardID: ref.CardID, Position: i}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	for _, stepInput := range input.Steps {
		step := models.Step{
			CardID:     stepInput.CardID,
			ActionText: stepInput.ActionText,
			StepOrder:  stepInput.StepOrder,
			ComboID:    comboID,
		}
		if err := tx.Create(&step).Error; err != nil {
			return err
		}
		for _, target := range stepInput.TargetCards {
			row := models.StepTarget{StepID: step.ID, TargetCardID: target.CardID}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// collectComboCards gathers every embedded card reference into one card per
// distinct id. The first name seen for an id wins; references missing an id
// or a name are skipped.
func collectComboCards(input models.FullComboInput) []models.Card {
	collector := newCardCollector()
	for _, ref := range input.StartingHand {
		collector.add(ref.CardID, ref.CardName)
	}
	for _, ref := range input.FinalBoard {
		collector.add(ref.CardID, ref.CardName)
	}
	for _, step := range input.Steps {
		for _, ref := range step.TargetCards {
			collector.add(ref.CardID, ref.CardName)
		}
	}
	return collector.cards
}

func collectDeckInfoCards(input models.DeckInfoInput) []models.Card {
	collector := newCardCollector()
	for _, keyCard := range input.KeyCards {
		collector.add(keyCard.CardID, keyCard.CardName)
	}
	for _, danger := range input.Dangers {
		collector.add(danger.CardID, danger.CardName)
		for _, response := range danger.Responses {
			collector.add(response.CardID, response.CardName)
		}
	}
	return collector.cards
}

type cardCollector struct {
	seen  map[int64]bool
	cards []models.Card
}

func newCardCollector() *cardCollector {
	return &cardCollector{seen: make(map[int64]bool)}
}

func (c *cardCollector) add(id int64, name string) {
	if id == 0 || name == "" || c.seen[id] {
		return
	}
	c.seen[id] = true
	c.cards = append(c.cards, models.Card{ID: id, Name: name})
}
