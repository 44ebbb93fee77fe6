package models

// Combo is a reusable sequence of plays belonging to a deck.
type Combo struct {
	ID         int64  `json:"id" db:"id" gorm:"primaryKey"`
	Author     string `json:"author" db:"author" gorm:"type:text;not null"`
	Title      string `json:"title" db:"title" gorm:"type:text;not null"`
	Difficulty string `json:"difficulty" db:"difficulty" gorm:"type:text;not null"`
	DeckID     int64  `json:"deck_id" db:"deck_id" gorm:"not null;index"`

	Deck Deck `json:"-" gorm:"foreignKey:DeckID;references:ID;constraint:OnDelete:CASCADE"`
}

// ComboTag links a combo to a tag (many-to-many).
type ComboTag struct {
	ComboID int64 `json:"combo_id" db:"combo_id" gorm:"primaryKey;autoIncrement:false"`
	TagID   int64 `json:"tag_id" db:"tag_id" gorm:"primaryKey;autoIncrement:false"`

	Combo Combo `json:"-" gorm:"foreignKey:ComboID;references:ID;constraint:OnDelete:CASCADE"`
	Tag   Tag   `json:"-" gorm:"foreignKey:TagID;references:ID;constraint:OnDelete:CASCADE"`
}

// StartingHandCard is an ordered slot in a combo's starting hand. Position
// is the zero-based index of the card in the submitted array; reads rely on
// ORDER BY position to reproduce that order.
type StartingHandCard struct {
	ComboID  int64 `json:"combo_id" db:"combo_id" gorm:"not null;index"`
	CardID   int64 `json:"card_id" db:"card_id" gorm:"not null"`
	Position int   `json:"position" db:"position" gorm:"not null"`

	Combo Combo `json:"-" gorm:"foreignKey:ComboID;references:ID;constraint:OnDelete:CASCADE"`
	Card  Card  `json:"-" gorm:"foreignKey:CardID;references:ID"`
}

func (StartingHandCard) TableName() string { return "combo_starting_hand" }

// FinalBoardCard is an ordered slot in a combo's final board state.
type FinalBoardCard struct {
	ComboID  int64 `json:"combo_id" db:"combo_id" gorm:"not null;index"`
	CardID   int64 `json:"card_id" db:"card_id" gorm:"not null"`
	Position int   `json:"position" db:"position" gorm:"not null"`

	Combo Combo `json:"-" gorm:"foreignKey:ComboID;references:ID;constraint:OnDelete:CASCADE"`
	Card  Card  `json:"-" gorm:"foreignKey:CardID;references:ID"`
}

func (FinalBoardCard) TableName() string { return "combo_final_board" }

// ComboDetail is a combo with its tag list and ordered hand/board attached,
// as assembled by the read side.
type ComboDetail struct {
	Combo
	Tags         []Tag     `json:"tags"`
	StartingHand []CardRef `json:"starting_hand"`
	FinalBoard   []CardRef `json:"final_board"`
}
