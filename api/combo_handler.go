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

type comboHandler struct {
	responder     Responder
	logger        zerolog.Logger
	comboRepo     *database.ComboRepo
	comboLinkRepo *database.ComboLinkRepo
	comboBuilder  *database.ComboBuilder
	comboViews    *database.ComboViews
}

func newComboHandler(comboRepo *database.ComboRepo, comboLinkRepo *database.ComboLinkRepo, comboBuilder *database.ComboBuilder, comboViews *database.ComboViews) comboHandler {
	logger := log.With().Str("handlerName", "comboHandler").Logger()

	return comboHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		comboRepo:     comboRepo,
		comboLinkRepo: comboLinkRepo,
		comboBuilder:  comboBuilder,
		comboViews:    comboViews,
	}
}

// fullComboResponse echoes the created combo row alongside a confirmation.
type fullComboResponse struct {
	Message string       `json:"message"`
	Combo   models.Combo `json:"combo"`
}

// getCombo returns one combo with tags, starting hand and final board.
func (h comboHandler) getCombo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comboID, err := parseIDParam(r, "comboId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		detail, err := h.comboViews.GetCombo(comboID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, detail)
	}
}

// getCombosByDeck returns every combo of a deck with children attached. An
// empty deck yields an empty list, not an error.
func (h comboHandler) getCombosByDeck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deckID, err := parseIDParam(r, "deckId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		details, err := h.comboViews.GetCombosByDeck(deckID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find combos", "combos", err))
			return
		}

		h.responder.WriteJSON(w, details)
	}
}

func (h comboHandler) createCombo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deckID, err := parseIDParam(r, "deckId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var combo models.Combo
		if err := json.NewDecoder(r.Body).Decode(&combo); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode combo request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("combo", err))
			return
		}

		if combo.Author == "" || combo.Title == "" || combo.Difficulty == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Missing required fields"))
			return
		}

		combo.ID = 0
		combo.DeckID = deckID
		if err := h.comboRepo.Add(&combo); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create combo", "combo", err))
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, combo)
	}
}

func (h comboHandler) updateCombo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comboID, err := parseIDParam(r, "comboId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var combo models.Combo
		if err := json.NewDecoder(r.Body).Decode(&combo); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode combo request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("combo", err))
			return
		}

		if combo.Title == "" || combo.Difficulty == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Missing required fields"))
			return
		}

		affected, err := h.comboRepo.Update(comboID, combo.Title, combo.Difficulty)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update combo", "combo", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFound("combo"))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Combo updated successfully")
	}
}

func (h comboHandler) deleteCombo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comboID, err := parseIDParam(r, "comboId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		affected, err := h.comboRepo.Delete(comboID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete combo", "combo", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFound("combo"))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Combo removed successfully")
	}
}

func (h comboHandler) assignTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comboID, err := parseIDParam(r, "comboId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		tagID, err := parseIDParam(r, "tagId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.comboLinkRepo.AddTag(comboID, tagID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("assign tag", "combo tag", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Tag assigned to combo successfully")
	}
}

// createFullCombo persists a nested combo payload as one atomic unit.
func (h comboHandler) createFullCombo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.FullComboInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode full combo request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("full combo", err))
			return
		}

		combo, err := h.comboBuilder.CreateFullCombo(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, fullComboResponse{
			Message: "Combo created successfully",
			Combo:   *combo,
		})
	}
}

// updateFullCombo replaces a combo and all of its children with the payload.
func (h comboHandler) updateFullCombo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comboID, err := parseIDParam(r, "comboId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input models.FullComboInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode full combo request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("full combo", err))
			return
		}

		if err := h.comboBuilder.UpdateFullCombo(comboID, input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Combo updated successfully")
	}
}
