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

// comboLinkHandler serves the bulk association endpoints: tag links and the
// ordered starting-hand / final-board slots.
type comboLinkHandler struct {
	responder     Responder
	logger        zerolog.Logger
	comboLinkRepo *database.ComboLinkRepo
}

func newComboLinkHandler(comboLinkRepo *database.ComboLinkRepo) comboLinkHandler {
	logger := log.With().Str("handlerName", "comboLinkHandler").Logger()

	return comboLinkHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		comboLinkRepo: comboLinkRepo,
	}
}

type comboTagRequest struct {
	ComboID int64 `json:"combo_id"`
	TagID   int64 `json:"tag_id"`
}

// bulkSlotRequest carries cards in the {id, name} shape used by the bulk
// endpoints; array order becomes the stored position.
type bulkSlotRequest struct {
	ComboID int64         `json:"combo_id"`
	Cards   []models.Card `json:"cards"`
}

func (h comboLinkHandler) createComboTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request comboTagRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode combo tag request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("combo tag", err))
			return
		}

		if request.ComboID == 0 || request.TagID == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("Missing required fields"))
			return
		}

		link, err := h.comboLinkRepo.AddTag(request.ComboID, request.TagID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create combo tag", "combo tag", err))
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, link)
	}
}

func (h comboLinkHandler) createStartingHand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		request, ok := h.decodeSlotRequest(w, r, "starting hand")
		if !ok {
			return
		}

		if err := h.comboLinkRepo.AddStartingHand(request.ComboID, cardRefs(request.Cards)); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create starting hand", "starting hand", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusCreated, "Starting hand added successfully.")
	}
}

func (h comboLinkHandler) createFinalBoard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		request, ok := h.decodeSlotRequest(w, r, "final board")
		if !ok {
			return
		}

		if err := h.comboLinkRepo.AddFinalBoard(request.ComboID, cardRefs(request.Cards)); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create final board", "final board", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusCreated, "Final board added successfully.")
	}
}

func (h comboLinkHandler) decodeSlotRequest(w http.ResponseWriter, r *http.Request, payloadType string) (bulkSlotRequest, bool) {
	var request bulkSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.logger.Error().Err(err).Msg("Failed to decode card slot request body")
		h.responder.WriteError(w, errs.NewMalformedPayloadError(payloadType, err))
		return request, false
	}

	if request.ComboID == 0 || request.Cards == nil {
		h.responder.WriteError(w, errs.NewBadRequestError("Missing combo_id or cards array."))
		return request, false
	}
	return request, true
}

func cardRefs(cards []models.Card) []models.CardRef {
	refs := make([]models.CardRef, len(cards))
	for i, card := range cards {
		refs[i] = models.CardRef{CardID: card.ID, CardName: card.Name}
	}
	return refs
}
