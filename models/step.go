package models

// Step is one action in a combo's play sequence, ordered by StepOrder.
type Step struct {
	ID         int64  `json:"id" db:"id" gorm:"primaryKey"`
	CardID     int64  `json:"card_id" db:"card_id" gorm:"not null"`
	ActionText string `json:"action_text" db:"action_text" gorm:"type:text;not null"`
	StepOrder  int    `json:"step_order" db:"step_order" gorm:"not null"`
	ComboID    int64  `json:"combo_id" db:"combo_id" gorm:"not null;index"`

	Combo Combo `json:"-" gorm:"foreignKey:ComboID;references:ID;constraint:OnDelete:CASCADE"`
	Card  Card  `json:"-" gorm:"foreignKey:CardID;references:ID"`
}

// StepTarget records a card targeted by a step.
type StepTarget struct {
	ID           int64 `json:"id" db:"id" gorm:"primaryKey"`
	StepID       int64 `json:"step_id" db:"step_id" gorm:"not null;index"`
	TargetCardID int64 `json:"target_card_id" db:"target_card_id" gorm:"not null"`

	Step Step `json:"-" gorm:"foreignKey:StepID;references:ID;constraint:OnDelete:CASCADE"`
}

// StepTargetView is a step target joined to its card name.
type StepTargetView struct {
	ID       int64  `json:"id"`
	StepID   int64  `json:"step_id"`
	CardID   int64  `json:"card_id"`
	CardName string `json:"card_name"`
}

// StepWithTargets is a step with its resolved target cards attached.
type StepWithTargets struct {
	Step
	StepTargets []StepTargetView `json:"step_targets"`
}
