package models

// Card is a shared card reference. IDs are supplied by the caller (they come
// from the external card database), so rows are upserted by value and an
// existing card is never renamed by a combo write.
type Card struct {
	ID   int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement:false"`
	Name string `json:"name" db:"name" gorm:"type:text;not null"`
}

// CardRef is the wire shape of a card embedded in starting hands, final
// boards, step targets and danger responses.
type CardRef struct {
	CardID   int64  `json:"card_id"`
	CardName string `json:"card_name"`
}
