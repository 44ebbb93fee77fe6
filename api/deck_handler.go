package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tcgcombos/combo-backend/database"
	"github.com/tcgcombos/combo-backend/errs"
	"github.com/tcgcombos/combo-backend/models"
)

type deckHandler struct {
	responder    Responder
	logger       zerolog.Logger
	deckRepo     *database.DeckRepo
	comboBuilder *database.ComboBuilder
	comboViews   *database.ComboViews
}

func newDeckHandler(deckRepo *database.DeckRepo, comboBuilder *database.ComboBuilder, comboViews *database.ComboViews) deckHandler {
	logger := log.With().Str("handlerName", "deckHandler").Logger()

	return deckHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		deckRepo:     deckRepo,
		comboBuilder: comboBuilder,
		comboViews:   comboViews,
	}
}

// getAllDecks returns one page of decks ordered by combo count.
func (h deckHandler) getAllDecks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := parseQueryInt(r, "page", 1)
		limit := parseQueryInt(r, "limit", 10)

		deckPage, err := h.deckRepo.FindPage(page, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find decks", "decks", err))
			return
		}

		h.responder.WriteJSON(w, deckPage)
	}
}

func (h deckHandler) createDeck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var deck models.Deck
		if err := json.NewDecoder(r.Body).Decode(&deck); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode deck request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("deck", err))
			return
		}

		if deck.Name == "" || deck.Description == "" || deck.ImageURL == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Missing required fields"))
			return
		}

		if err := h.deckRepo.Add(&deck); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create deck", "deck", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusCreated, "Deck created successfully")
	}
}

func (h deckHandler) getDeck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deckID, err := parseIDParam(r, "id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		deck, err := h.deckRepo.FindByID(deckID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find deck", "deck", err))
			return
		}
		if deck == nil {
			h.responder.WriteError(w, errs.NewNotFound("deck"))
			return
		}

		h.responder.WriteJSON(w, deck)
	}
}

func (h deckHandler) updateDeck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deckID, err := parseIDParam(r, "id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var deck models.Deck
		if err := json.NewDecoder(r.Body).Decode(&deck); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode deck request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("deck", err))
			return
		}

		affected, err := h.deckRepo.Update(deckID, deck.Name, deck.Description, deck.ImageURL)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update deck", "deck", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFound("deck"))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Deck updated successfully")
	}
}

func (h deckHandler) deleteDeck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deckID, err := parseIDParam(r, "id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		affected, err := h.deckRepo.Delete(deckID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete deck", "deck", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFound("deck"))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Deck removed successfully")
	}
}

// getDeckInfo returns the deck's note plus key-card and danger annotations.
func (h deckHandler) getDeckInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deckID, err := parseIDParam(r, "id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		info, err := h.comboViews.GetDeckInfo(deckID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, info)
	}
}

// setDeckInfo replaces the deck's note and annotation bundle wholesale.
func (h deckHandler) setDeckInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deckID, err := parseIDParam(r, "id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input models.DeckInfoInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode deck info request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("deck info", err))
			return
		}

		if err := h.comboBuilder.SetDeckInfo(deckID, input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Deck info saved successfully")
	}
}
