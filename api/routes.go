package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every endpoint to its handler.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(RequestLoggingMiddleware)

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Write([]byte(`{"status":"ok"}`))
		})

		r.Route("/decks", func(r chi.Router) {
			r.Get("/", handlers.deckHandler.getAllDecks())
			r.Post("/", handlers.deckHandler.createDeck())
			r.Get("/info/{id}", handlers.deckHandler.getDeckInfo())
			r.Post("/info/{id}", handlers.deckHandler.setDeckInfo())
			r.Get("/{id}", handlers.deckHandler.getDeck())
			r.Put("/{id}", handlers.deckHandler.updateDeck())
			r.Delete("/{id}", handlers.deckHandler.deleteDeck())
		})

		r.Route("/combos", func(r chi.Router) {
			r.Post("/create-full-combo", handlers.comboHandler.createFullCombo())
			r.Put("/update-full-combo/{comboId}", handlers.comboHandler.updateFullCombo())
			r.Get("/deck/{deckId}", handlers.comboHandler.getCombosByDeck())
			r.Post("/deck/{deckId}", handlers.comboHandler.createCombo())
			r.Put("/{comboId}/assign-tag/{tagId}", handlers.comboHandler.assignTag())
			r.Get("/{comboId}", handlers.comboHandler.getCombo())
			r.Put("/{comboId}", handlers.comboHandler.updateCombo())
			r.Delete("/{comboId}", handlers.comboHandler.deleteCombo())
		})

		r.Route("/steps", func(r chi.Router) {
			r.Get("/combo/{comboId}", handlers.stepHandler.getComboSteps())
			r.Post("/combo/{comboId}", handlers.stepHandler.createStep())
			r.Put("/{stepId}", handlers.stepHandler.updateStep())
			r.Delete("/{stepId}", handlers.stepHandler.deleteStep())
		})

		r.Route("/stepTargets", func(r chi.Router) {
			r.Get("/step/{stepId}", handlers.stepTargetHandler.getStepTargets())
			r.Post("/step/{stepId}", handlers.stepTargetHandler.createStepTarget())
			r.Put("/{targetId}", handlers.stepTargetHandler.updateStepTarget())
			r.Delete("/{targetId}", handlers.stepTargetHandler.deleteStepTarget())
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", handlers.tagHandler.getAllTags())
			r.Post("/", handlers.tagHandler.createTag())
			r.Get("/combo/{comboId}", handlers.tagHandler.getTagsByCombo())
			r.Put("/{tagId}", handlers.tagHandler.updateTag())
			r.Delete("/{tagId}", handlers.tagHandler.deleteTag())
		})

		r.Post("/comboTags", handlers.comboLinkHandler.createComboTag())
		r.Post("/comboStartingHand", handlers.comboLinkHandler.createStartingHand())
		r.Post("/comboFinalBoard", handlers.comboLinkHandler.createFinalBoard())
	})
}
