package models

// DeckKeyCard annotates a card that is central to a deck's plan.
type DeckKeyCard struct {
	DeckID      int64  `json:"deck_id" db:"deck_id" gorm:"not null;index"`
	CardID      int64  `json:"card_id" db:"card_id" gorm:"not null"`
	Description string `json:"description" db:"description" gorm:"type:text;not null"`

	Deck Deck `json:"-" gorm:"foreignKey:DeckID;references:ID;constraint:OnDelete:CASCADE"`
	Card Card `json:"-" gorm:"foreignKey:CardID;references:ID"`
}

// DeckDanger annotates an opposing card the deck should play around.
type DeckDanger struct {
	ID         int64  `json:"id" db:"id" gorm:"primaryKey"`
	DeckID     int64  `json:"deck_id" db:"deck_id" gorm:"not null;index"`
	CardID     int64  `json:"card_id" db:"card_id" gorm:"not null"`
	ExtraNotes string `json:"extra_notes" db:"extra_notes" gorm:"type:text"`

	Deck Deck `json:"-" gorm:"foreignKey:DeckID;references:ID;constraint:OnDelete:CASCADE"`
	Card Card `json:"-" gorm:"foreignKey:CardID;references:ID"`
}

func (DeckDanger) TableName() string { return "deck_main_dangers" }

// DeckDangerResponse records a card that answers a danger.
type DeckDangerResponse struct {
	DangerID int64 `json:"deck_main_danger_id" db:"deck_main_danger_id" gorm:"column:deck_main_danger_id;not null;index"`
	CardID   int64 `json:"card_id" db:"card_id" gorm:"not null"`

	Danger DeckDanger `json:"-" gorm:"foreignKey:DangerID;references:ID;constraint:OnDelete:CASCADE"`
}

func (DeckDangerResponse) TableName() string { return "deck_main_danger_responses" }

// KeyCardInfo is a key-card annotation joined to its card name.
type KeyCardInfo struct {
	CardID      int64  `json:"card_id"`
	CardName    string `json:"card_name"`
	Description string `json:"description"`
}

// DangerInfo is a danger annotation with its resolved response cards.
type DangerInfo struct {
	ID         int64     `json:"id"`
	CardID     int64     `json:"card_id"`
	CardName   string    `json:"card_name"`
	ExtraNotes string    `json:"extra_notes"`
	Responses  []CardRef `json:"responses"`
}

// DeckInfo is the assembled deck-info view: note plus annotations.
type DeckInfo struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	Note     *string       `json:"note"`
	KeyCards []KeyCardInfo `json:"key_cards"`
	Dangers  []DangerInfo  `json:"dangers"`
}
