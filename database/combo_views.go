package database

import (
	"errors"

	"github.com/tcgcombos/combo-backend/errs"
	"github.com/tcgcombos/combo-backend/models"
	"gorm.io/gorm"
)

// ComboViews reassembles nested JSON views from normalized rows. Child rows
// are fetched in one query per child kind regardless of parent count
// (set-membership filtering), then grouped by parent id in memory.
type ComboViews struct {
	db *gorm.DB
}

func NewComboViews(db *gorm.DB) *ComboViews {
	return &ComboViews{db}
}

// GetCombo returns one combo with its tags and ordered hand/board attached.
func (v *ComboViews) GetCombo(id int64) (*models.ComboDetail, error) {
	var combo models.Combo
	err := v.db.First(&combo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("combo")
	}
	if err != nil {
		return nil, err
	}

	ids := []int64{combo.ID}
	tags, err := v.tagsByCombo(ids)
	if err != nil {
		return nil, err
	}
	hands, err := v.slotsByCombo("combo_starting_hand", ids)
	if err != nil {
		return nil, err
	}
	boards, err := v.slotsByCombo("combo_final_board", ids)
	if err != nil {
		return nil, err
	}

	detail := assembleCombo(combo, tags, hands, boards)
	return &detail, nil
}

// GetCombosByDeck returns every combo of a deck with children attached. A
// deck without combos yields an empty list, and no child queries are issued.
func (v *ComboViews) GetCombosByDeck(deckID int64) ([]models.ComboDetail, error) {
	var combos []models.Combo
	if err := v.db.Where("deck_id = ?", deckID).Find(&combos).Error; err != nil {
		return nil, err
	}
	if len(combos) == 0 {
		return []models.ComboDetail{}, nil
	}

	ids := make([]int64, len(combos))
	for i, combo := range combos {
		ids[i] = combo.ID
	}

	tags, err := v.tagsByCombo(ids)
	if err != nil {
		return nil, err
	}
	hands, err := v.slotsByCombo("combo_starting_hand", ids)
	if err != nil {
		return nil, err
	}
	boards, err := v.slotsByCombo("combo_final_board", ids)
	if err != nil {
		return nil, err
	}

	details := make([]models.ComboDetail, len(combos))
	for i, combo := range combos {
		details[i] = assembleCombo(combo, tags, hands, boards)
	}
	return details, nil
}

// GetComboSteps returns a combo's steps in play order, each with its resolved
// target cards. Targets for all steps are fetched in one query.
func (v *ComboViews) GetComboSteps(comboID int64) ([]models.StepWithTargets, error) {
	var steps []models.Step
	if err := v.db.Where("combo_id = ?", comboID).Order("step_order").Find(&steps).Error; err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return []models.StepWithTargets{}, nil
	}

	stepIDs := make([]int64, len(steps))
	for i, step := range steps {
		stepIDs[i] = step.ID
	}

	var targets []models.StepTargetView
	err := v.db.Table("step_targets AS st").
		Select("st.id, st.step_id, st.target_card_id AS card_id, c.name AS card_name").
		Joins("JOIN cards c ON c.id = st.target_card_id").
		Where("st.step_id IN ?", stepIDs).
		Scan(&targets).Error
	if err != nil {
		return nil, err
	}

	grouped := groupBy(targets, func(t models.StepTargetView) int64 { return t.StepID })
	result := make([]models.StepWithTargets, len(steps))
	for i, step := range steps {
		stepTargets := grouped[step.ID]
		if stepTargets == nil {
			stepTargets = []models.StepTargetView{}
		}
		result[i] = models.StepWithTargets{Step: step, StepTargets: stepTargets}
	}
	return result, nil
}

// GetDeckInfo returns a deck's note plus its key-card and danger annotations.
// Danger responses are fetched for all dangers in one query and grouped in
// memory.
func (v *ComboViews) GetDeckInfo(deckID int64) (*models.DeckInfo, error) {
	var deck models.Deck
	err := v.db.First(&deck, deckID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("deck")
	}
	if err != nil {
		return nil, err
	}

	keyCards := []models.KeyCardInfo{}
	err = v.db.Table("deck_key_cards AS kc").
		Select("kc.card_id, c.name AS card_name, kc.description").
		Joins("JOIN cards c ON c.id = kc.card_id").
		Where("kc.deck_id = ?", deckID).
		Scan(&keyCards).Error
	if err != nil {
		return nil, err
	}

	type dangerRow struct {
		ID         int64
		CardID     int64
		CardName   string
		ExtraNotes string
	}
	var dangerRows []dangerRow
	err = v.db.Table("deck_main_dangers AS d").
		Select("d.id, d.card_id, c.name AS card_name, d.extra_notes").
		Joins("JOIN cards c ON c.id = d.card_id").
		Where("d.deck_id = ?", deckID).
		Order("d.id").
		Scan(&dangerRows).Error
	if err != nil {
		return nil, err
	}

	dangers := make([]models.DangerInfo, len(dangerRows))
	responses := map[int64][]models.CardRef{}
	if len(dangerRows) > 0 {
		dangerIDs := make([]int64, len(dangerRows))
		for i, row := range dangerRows {
			dangerIDs[i] = row.ID
		}

		type responseRow struct {
			DangerID int64
			CardID   int64
			CardName string
		}
		var responseRows []responseRow
		err = v.db.Table("deck_main_danger_responses AS r").
			Select("r.deck_main_danger_id AS danger_id, r.card_id, c.name AS card_name").
			Joins("JOIN cards c ON c.id = r.card_id").
			Where("r.deck_main_danger_id IN ?", dangerIDs).
			Scan(&responseRows).Error
		if err != nil {
			return nil, err
		}

		grouped := groupBy(responseRows, func(r responseRow) int64 { return r.DangerID })
		for dangerID, rows := range grouped {
			refs := make([]models.CardRef, len(rows))
			for i, row := range rows {
				refs[i] = models.CardRef{CardID: row.CardID, CardName: row.CardName}
			}
			responses[dangerID] = refs
		}
	}

	for i, row := range dangerRows {
		dangerResponses := responses[row.ID]
		if dangerResponses == nil {
			dangerResponses = []models.CardRef{}
		}
		dangers[i] = models.DangerInfo{
			ID:         row.ID,
			CardID:     row.CardID,
			CardName:   row.CardName,
			ExtraNotes: row.ExtraNotes,
			Responses:  dangerResponses,
		}
	}

	return &models.DeckInfo{
		ID:       deck.ID,
		Name:     deck.Name,
		Note:     deck.Note,
		KeyCards: keyCards,
		Dangers:  dangers,
	}, nil
}

type comboTagRow struct {
	ComboID int64
	ID      int64
	Name    string
}

func (v *ComboViews) tagsByCombo(comboIDs []int64) (map[int64][]models.Tag, error) {
	var rows []comboTagRow
	err := v.db.Table("combo_tags AS ct").
		Select("ct.combo_id, t.id, t.name").
		Joins("JOIN tags t ON ct.tag_id = t.id").
		Where("ct.combo_id IN ?", comboIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	grouped := groupBy(rows, func(r comboTagRow) int64 { return r.ComboID })
	result := make(map[int64][]models.Tag, len(grouped))
	for comboID, tagRows := range grouped {
		tags := make([]models.Tag, len(tagRows))
		for i, row := range tagRows {
			tags[i] = models.Tag{ID: row.ID, Name: row.Name}
		}
		result[comboID] = tags
	}
	return result, nil
}

type cardSlotRow struct {
	ComboID  int64
	CardID   int64
	CardName string
}

// slotsByCombo reads the ordered card slots of one slot table (starting hand
// or final board), joined to card names. ORDER BY position restores the
// submitted array order per combo.
func (v *ComboViews) slotsByCombo(table string, comboIDs []int64) (map[int64][]models.CardRef, error) {
	var rows []cardSlotRow
	err := v.db.Table(table+" AS s").
		Select("s.combo_id, c.id AS card_id, c.name AS card_name").
		Joins("JOIN cards c ON s.card_id = c.id").
		Where("s.combo_id IN ?", comboIDs).
		Order("s.combo_id, s.position").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	grouped := groupBy(rows, func(r cardSlotRow) int64 { return r.ComboID })
	result := make(map[int64][]models.CardRef, len(grouped))
	for comboID, slotRows := range grouped {
		refs := make([]models.CardRef, len(slotRows))
		for i, row := range slotRows {
			refs[i] = models.CardRef{CardID: row.CardID, CardName: row.CardName}
		}
		result[comboID] = refs
	}
	return result, nil
}

func assembleCombo(combo models.Combo, tags map[int64][]models.Tag, hands, boards map[int64][]models.CardRef) models.ComboDetail {
	detail := models.ComboDetail{
		Combo:        combo,
		Tags:         tags[combo.ID],
		StartingHand: hands[combo.ID],
		FinalBoard:   boards[combo.ID],
	}
	if detail.Tags == nil {
		detail.Tags = []models.Tag{}
	}
	if detail.StartingHand == nil {
		detail.StartingHand = []models.CardRef{}
	}
	if detail.FinalBoard == nil {
		detail.FinalBoard = []models.CardRef{}
	}
	return detail
}
