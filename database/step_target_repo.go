package database

import (
	"github.com/tcgcombos/combo-backend/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type StepTargetRepo struct {
	db *gorm.DB
}

func NewStepTargetRepo(db *gorm.DB) *StepTargetRepo {
	return &StepTargetRepo{db}
}

// FindByStepID returns all targets recorded for a step.
func (r *StepTargetRepo) FindByStepID(stepID int64) ([]models.StepTarget, error) {
	var targets []models.StepTarget
	err := r.db.Where("step_id = ?", stepID).Find(&targets).Error
	return targets, err
}

// Add inserts a new step target into the database
func (r *StepTargetRepo) Add(target *models.StepTarget) error {
	return r.db.Create(target).Error
}

// AddMany inserts one target row per card id. The inserts are independent
// single-row statements, so they are issued concurrently and the first
// failure is reported.
func (r *StepTargetRepo) AddMany(stepID int64, cardIDs []int64) error {
	var g errgroup.Group
	for _, cardID := range cardIDs {
		cardID := cardID
		g.Go(func() error {
			return r.db.Create(&models.StepTarget{StepID: stepID, TargetCardID: cardID}).Error
		})
	}
	return g.Wait()
}

// Update repoints a target at another card and reports how many rows matched.
func (r *StepTargetRepo) Update(id int64, targetCardID int64) (int64, error) {
	result := r.db.Model(&models.StepTarget{}).Where("id = ?", id).Update("target_card_id", targetCardID)
	return result.RowsAffected, result.Error
}

// Delete removes a step target by id and reports how many rows matched.
func (r *StepTargetRepo) Delete(id int64) (int64, error) {
	result := r.db.Delete(&models.StepTarget{}, id)
	return result.RowsAffected, result.Error
}
