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

type stepTargetHandler struct {
	responder      Responder
	logger         zerolog.Logger
	stepTargetRepo *database.StepTargetRepo
}

func newStepTargetHandler(stepTargetRepo *database.StepTargetRepo) stepTargetHandler {
	logger := log.With().Str("handlerName", "stepTargetHandler").Logger()

	return stepTargetHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		stepTargetRepo: stepTargetRepo,
	}
}

type stepTargetRequest struct {
	TargetCardID int64 `json:"target_card_id"`
}

func (h stepTargetHandler) getStepTargets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stepID, err := parseIDParam(r, "stepId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		targets, err := h.stepTargetRepo.FindByStepID(stepID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find step targets", "step targets", err))
			return
		}
		if targets == nil {
			targets = []models.StepTarget{}
		}

		h.responder.WriteJSON(w, targets)
	}
}

func (h stepTargetHandler) createStepTarget() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stepID, err := parseIDParam(r, "stepId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var request stepTargetRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode step target request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("step target", err))
			return
		}

		if request.TargetCardID == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("Missing required fields"))
			return
		}

		target := models.StepTarget{StepID: stepID, TargetCardID: request.TargetCardID}
		if err := h.stepTargetRepo.Add(&target); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create step target", "step target", err))
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, target)
	}
}

func (h stepTargetHandler) updateStepTarget() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetID, err := parseIDParam(r, "targetId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var request stepTargetRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode step target request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("step target", err))
			return
		}

		if request.TargetCardID == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("Missing required fields"))
			return
		}

		affected, err := h.stepTargetRepo.Update(targetID, request.TargetCardID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update step target", "step target", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFound("step target"))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Step target updated successfully")
	}
}

func (h stepTargetHandler) deleteStepTarget() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetID, err := parseIDParam(r, "targetId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		affected, err := h.stepTargetRepo.Delete(targetID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete step target", "step target", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFound("step target"))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Step target removed successfully")
	}
}
