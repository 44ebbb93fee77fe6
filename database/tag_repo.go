package database

import (
	"errors"

	"github.com/tcgcombos/combo-backend/models"
	"gorm.io/gorm"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// FindAll returns all tags from the database
func (r *TagRepo) FindAll() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Find(&tags).Error
	return tags, err
}

// FindByComboID returns the tags associated with a combo.
func (r *TagRepo) FindByComboID(comboID int64) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.
		Joins("JOIN combo_tags ON combo_tags.tag_id = tags.id").
		Where("combo_tags.combo_id = ?", comboID).
		Find(&tags).Error
	return tags, err
}

// FindByName returns a tag by its unique name, or nil when absent
func (r *TagRepo) FindByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Add inserts a new tag into the database
func (r *TagRepo) Add(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// Update renames a tag and reports how many rows matched.
func (r *TagRepo) Update(id int64, name string) (int64, error) {
	result := r.db.Model(&models.Tag{}).Where("id = ?", id).Update("name", name)
	return result.RowsAffected, result.Error
}

// Delete removes a tag by id and reports how many rows matched.
func (r *TagRepo) Delete(id int64) (int64, error) {
	result := r.db.Delete(&models.Tag{}, id)
	return result.RowsAffected, result.Error
}
