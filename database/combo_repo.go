package database

import (
	"errors"

	"github.com/tcgcombos/combo-backend/models"
	"gorm.io/gorm"
)

type ComboRepo struct {
	db *gorm.DB
}

func NewComboRepo(db *gorm.DB) *ComboRepo {
	return &ComboRepo{db}
}

// FindByID returns a combo by its ID, or nil when absent
func (r *ComboRepo) FindByID(id int64) (*models.Combo, error) {
	var combo models.Combo
	err := r.db.First(&combo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &combo, nil
}

// FindByDeckID returns all combos owned by a deck (flat rows only).
func (r *ComboRepo) FindByDeckID(deckID int64) ([]models.Combo, error) {
	var combos []models.Combo
	err := r.db.Where("deck_id = ?", deckID).Find(&combos).Error
	return combos, err
}

// Add inserts a new combo into the database
func (r *ComboRepo) Add(combo *models.Combo) error {
	return r.db.Create(combo).Error
}

// Update overwrites a combo's title and difficulty and reports how many rows
// matched.
func (r *ComboRepo) Update(id int64, title, difficulty string) (int64, error) {
	result := r.db.Model(&models.Combo{}).Where("id = ?", id).Updates(map[string]any{
		"title":      title,
		"difficulty": difficulty,
	})
	return result.RowsAffected, result.Error
}

// Delete removes a combo by id and reports how many rows matched.
func (r *ComboRepo) Delete(id int64) (int64, error) {
	result := r.db.Delete(&models.Combo{}, id)
	return result.RowsAffected, result.Error
}
