package models

// Deck groups combos under a shared archetype
type Deck struct {
	ID          int64   `json:"id" db:"id" gorm:"primaryKey"`
	Name        string  `json:"name" db:"name" gorm:"type:text;not null"`
	Description string  `json:"description" db:"description" gorm:"type:text;not null"`
	ImageURL    string  `json:"image_url" db:"image_url" gorm:"type:text;not null"`
	Note        *string `json:"note,omitempty" db:"note" gorm:"type:text"`
}

// DeckListing is a deck row plus its combo count, as returned by the
// paginated deck list.
type DeckListing struct {
	Deck
	CombosCount int64 `json:"combos_count"`
}

// DeckPage is the envelope for the paginated deck list.
type DeckPage struct {
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Decks []DeckListing `json:"decks"`
}
