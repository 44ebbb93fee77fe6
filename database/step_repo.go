package database

import (
	"github.com/tcgcombos/combo-backend/models"
	"gorm.io/gorm"
)

type StepRepo struct {
	db *gorm.DB
}

func NewStepRepo(db *gorm.DB) *StepRepo {
	return &StepRepo{db}
}

// FindByComboID returns a combo's steps ordered by step_order.
func (r *StepRepo) FindByComboID(comboID int64) ([]models.Step, error) {
	var steps []models.Step
	err := r.db.Where("combo_id = ?", comboID).Order("step_order").Find(&steps).Error
	return steps, err
}

// Add inserts a new step into the database
func (r *StepRepo) Add(step *models.Step) error {
	return r.db.Create(step).Error
}

// Update overwrites a step's fields and reports how many rows matched.
func (r *StepRepo) Update(id int64, cardID int64, actionText string, stepOrder int) (int64, error) {
	result := r.db.Model(&models.Step{}).Where("id = ?", id).Updates(map[string]any{
		"card_id":     cardID,
		"action_text": actionText,
		"step_order":  stepOrder,
	})
	return result.RowsAffected, result.Error
}

// Delete removes a step by id and reports how many rows matched.
func (r *StepRepo) Delete(id int64) (int64, error) {
	result := r.db.Delete(&models.Step{}, id)
	return result.RowsAffected, result.Error
}
