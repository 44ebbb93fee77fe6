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

type stepHandler struct {
	responder      Responder
	logger         zerolog.Logger
	stepRepo       *database.StepRepo
	stepTargetRepo *database.StepTargetRepo
	comboViews     *database.ComboViews
}

func newStepHandler(stepRepo *database.StepRepo, stepTargetRepo *database.StepTargetRepo, comboViews *database.ComboViews) stepHandler {
	logger := log.With().Str("handlerName", "stepHandler").Logger()

	return stepHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		stepRepo:       stepRepo,
		stepTargetRepo: stepTargetRepo,
		comboViews:     comboViews,
	}
}

type createStepRequest struct {
	CardID        int64   `json:"card_id"`
	ActionText    string  `json:"action_text"`
	StepOrder     *int    `json:"step_order"`
	TargetCardIDs []int64 `json:"target_card_ids"`
}

type createStepResponse struct {
	Message string      `json:"message"`
	Step    models.Step `json:"step"`
}

// getComboSteps returns a combo's steps in play order with targets attached.
func (h stepHandler) getComboSteps() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comboID, err := parseIDParam(r, "comboId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		steps, err := h.comboViews.GetComboSteps(comboID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find steps", "steps", err))
			return
		}

		h.responder.WriteJSON(w, steps)
	}
}

func (h stepHandler) createStep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comboID, err := parseIDParam(r, "comboId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var request createStepRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode step request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("step", err))
			return
		}

		// step_order 0 is valid; only an absent value is rejected
		if request.CardID == 0 || request.ActionText == "" || request.StepOrder == nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Missing required fields"))
			return
		}

		step := models.Step{
			CardID:     request.CardID,
			ActionText: request.ActionText,
			StepOrder:  *request.StepOrder,
			ComboID:    comboID,
		}
		if err := h.stepRepo.Add(&step); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create step", "step", err))
			return
		}

		if len(request.TargetCardIDs) > 0 {
			if err := h.stepTargetRepo.AddMany(step.ID, request.TargetCardIDs); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("create step targets", "step targets", err))
				return
			}
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, createStepResponse{
			Message: "Step created",
			Step:    step,
		})
	}
}

func (h stepHandler) updateStep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stepID, err := parseIDParam(r, "stepId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var request createStepRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode step request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("step", err))
			return
		}

		if request.CardID == 0 || request.ActionText == "" || request.StepOrder == nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Missing required fields"))
			return
		}

		affected, err := h.stepRepo.Update(stepID, request.CardID, request.ActionText, *request.StepOrder)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update step", "step", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFound("step"))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Step updated successfully")
	}
}

func (h stepHandler) deleteStep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stepID, err := parseIDParam(r, "stepId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		affected, err := h.stepRepo.Delete(stepID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete step", "step", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFound("step"))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Step removed successfully")
	}
}
