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

type tagHandler struct {
	responder Responder
	logger    zerolog.Logger
	tagRepo   *database.TagRepo
}

func newTagHandler(tagRepo *database.TagRepo) tagHandler {
	logger := log.With().Str("handlerName", "tagHandler").Logger()

	return tagHandler{
		responder: NewResponder(logger),
		logger:    logger,
		tagRepo:   tagRepo,
	}
}

func (h tagHandler) getAllTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.tagRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tags", "tags", err))
			return
		}
		if tags == nil {
			tags = []models.Tag{}
		}

		h.responder.WriteJSON(w, tags)
	}
}

func (h tagHandler) getTagsByCombo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comboID, err := parseIDParam(r, "comboId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tags, err := h.tagRepo.FindByComboID(comboID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tags", "tags", err))
			return
		}
		if tags == nil {
			tags = []models.Tag{}
		}

		h.responder.WriteJSON(w, tags)
	}
}

// createTag rejects duplicate names with a conflict; the tag table gains no
// new row in that case.
func (h tagHandler) createTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var tag models.Tag
		if err := json.NewDecoder(r.Body).Decode(&tag); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode tag request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("tag", err))
			return
		}

		if tag.Name == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Missing required fields"))
			return
		}

		existing, err := h.tagRepo.FindByName(tag.Name)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tag", "tag", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewAlreadyExists("tag"))
			return
		}

		tag.ID = 0
		if err := h.tagRepo.Add(&tag); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create tag", "tag", err))
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, tag)
	}
}

func (h tagHandler) updateTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, err := parseIDParam(r, "tagId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var tag models.Tag
		if err := json.NewDecoder(r.Body).Decode(&tag); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode tag request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("tag", err))
			return
		}

		if tag.Name == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Missing required fields"))
			return
		}

		affected, err := h.tagRepo.Update(tagID, tag.Name)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update tag", "tag", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFound("tag"))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Tag updated successfully")
	}
}

func (h tagHandler) deleteTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, err := parseIDParam(r, "tagId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		affected, err := h.tagRepo.Delete(tagID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete tag", "tag", err))
			return
		}
		if affected == 0 {
			h.responder.WriteError(w, errs.NewNotFound("tag"))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Tag deleted successfully")
	}
}
