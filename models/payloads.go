package models

// FullComboInput is the nested payload accepted by the full-combo create and
// update endpoints. DeckID, Author, Title and Difficulty are required; the
// collections may be nil.
type FullComboInput struct {
	DeckID       int64       `json:"deckId"`
	Author       string      `json:"author"`
	Title        string      `json:"title"`
	Difficulty   string      `json:"difficulty"`
	Tags         []int64     `json:"tags"`
	StartingHand []CardRef   `json:"starting_hand"`
	FinalBoard   []CardRef   `json:"final_board"`
	Steps        []StepInput `json:"steps"`
}

// StepInput is one step inside a FullComboInput.
type StepInput struct {
	CardID      int64     `json:"card_id"`
	ActionText  string    `json:"action_text"`
	StepOrder   int       `json:"step_order"`
	TargetCards []CardRef `json:"target_cards"`
}

// DeckInfoInput is the payload accepted by the set-deck-info endpoint. The
// whole bundle replaces whatever was stored before.
type DeckInfoInput struct {
	Note     *string        `json:"note"`
	KeyCards []KeyCardInput `json:"key_cards"`
	Dangers  []DangerInput  `json:"dangers"`
}

// KeyCardInput is one key-card annotation inside a DeckInfoInput.
type KeyCardInput struct {
	CardID      int64  `json:"card_id"`
	CardName    string `json:"card_name"`
	Description string `json:"description"`
}

// DangerInput is one danger annotation inside a DeckInfoInput.
type DangerInput struct {
	CardID     int64     `json:"card_id"`
	CardName   string    `json:"card_name"`
	ExtraNotes string    `json:"extra_notes"`
	Responses  []CardRef `json:"responses"`
}
