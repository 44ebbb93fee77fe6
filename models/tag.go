package models

// Tag is a strategy label shared across combos. Names are unique.
type Tag struct {
	ID   int64  `json:"id" db:"id" gorm:"primaryKey"`
	Name string `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex"`
}
