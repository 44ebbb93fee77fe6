package api

import (
	"github.com/tcgcombos/combo-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database) *routeHandlers {
	return &routeHandlers{
		deckHandler:       newDeckHandler(database.DeckRepo(), database.ComboBuilder(), database.ComboViews()),
		comboHandler:      newComboHandler(database.ComboRepo(), database.ComboLinkRepo(), database.ComboBuilder(), database.ComboViews()),
		stepHandler:       newStepHandler(database.StepRepo(), database.StepTargetRepo(), database.ComboViews()),
		stepTargetHandler: newStepTargetHandler(database.StepTargetRepo()),
		tagHandler:        newTagHandler(database.TagRepo()),
		comboLinkHandler:  newComboLinkHandler(database.ComboLinkRepo()),
	}
}
