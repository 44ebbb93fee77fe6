package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcgcombos/combo-backend/models"
)

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestDeckLifecycle(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/decks", map[string]any{
		"name":        "Burn",
		"description": "all face",
		"image_url":   "burn.png",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	var created MessageResponse
	decodeBody(t, recorder, &created)
	assert.Equal(t, "Deck created successfully", created.Message)

	recorder = doJSON(t, router, http.MethodGet, "/decks", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var page models.DeckPage
	decodeBody(t, recorder, &page)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Decks, 1)
	deckID := page.Decks[0].ID
	assert.Equal(t, "Burn", page.Decks[0].Name)
	assert.Zero(t, page.Decks[0].CombosCount)

	recorder = doJSON(t, router, http.MethodGet, "/decks/1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var deck models.Deck
	decodeBody(t, recorder, &deck)
	assert.Equal(t, deckID, deck.ID)
	assert.Equal(t, "burn.png", deck.ImageURL)

	recorder = doJSON(t, router, http.MethodPut, "/decks/1", map[string]any{
		"name":        "Burn v2",
		"description": "still all face",
		"image_url":   "burn2.png",
	})
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodDelete, "/decks/1", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/decks/1", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCreateDeckMissingFields(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/decks", map[string]any{
		"name": "incomplete",
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	var response MessageResponse
	decodeBody(t, recorder, &response)
	assert.Equal(t, "Missing required fields", response.Message)
}

func TestGetMissingDeckAndCombo(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodGet, "/decks/42", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/combos/42", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/decks/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestFullComboEndToEnd(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/decks", map[string]any{
		"name":        "Storm",
		"description": "chain spells",
		"image_url":   "storm.png",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/combos/deck/1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String(), "a deck without combos lists as empty, not null")

	recorder = doJSON(t, router, http.MethodPost, "/combos/create-full-combo", map[string]any{
		"deckId":     1,
		"author":     "alice",
		"title":      "storm off",
		"difficulty": "hard",
		"starting_hand": []map[string]any{
			{"card_id": 1, "card_name": "Bolt"},
			{"card_id": 2, "card_name": "Ritual"},
		},
		"final_board": []map[string]any{},
		"steps": []map[string]any{
			{
				"card_id":      2,
				"action_text":  "cast ritual",
				"step_order":   0,
				"target_cards": []map[string]any{{"card_id": 1, "card_name": "Bolt"}},
			},
		},
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	var created struct {
		Message string       `json:"message"`
		Combo   models.Combo `json:"combo"`
	}
	decodeBody(t, recorder, &created)
	assert.Equal(t, "Combo created successfully", created.Message)
	require.NotZero(t, created.Combo.ID)
	assert.Equal(t, int64(1), created.Combo.DeckID)

	recorder = doJSON(t, router, http.MethodGet, "/combos/1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var detail models.ComboDetail
	decodeBody(t, recorder, &detail)
	assert.Equal(t, "storm off", detail.Title)
	require.Len(t, detail.StartingHand, 2)
	assert.Equal(t, "Bolt", detail.StartingHand[0].CardName)
	assert.Equal(t, "Ritual", detail.StartingHand[1].CardName)
	assert.NotNil(t, detail.FinalBoard)
	assert.Empty(t, detail.FinalBoard)
	assert.NotNil(t, detail.Tags)

	recorder = doJSON(t, router, http.MethodGet, "/steps/combo/1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var steps []models.StepWithTargets
	decodeBody(t, recorder, &steps)
	require.Len(t, steps, 1)
	assert.Equal(t, "cast ritual", steps[0].ActionText)
	require.Len(t, steps[0].StepTargets, 1)
	assert.Equal(t, "Bolt", steps[0].StepTargets[0].CardName)

	recorder = doJSON(t, router, http.MethodPost, "/combos/create-full-combo", map[string]any{
		"deckId": 1,
		"title":  "missing author",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateFullComboOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/decks", map[string]any{
		"name": "d", "description": "d", "image_url": "d.png",
	})
	recorder := doJSON(t, router, http.MethodPost, "/combos/create-full-combo", map[string]any{
		"deckId":        1,
		"author":        "alice",
		"title":         "v1",
		"difficulty":    "easy",
		"starting_hand": []map[string]any{{"card_id": 1, "card_name": "Bolt"}},
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	recorder = doJSON(t, router, http.MethodPut, "/combos/update-full-combo/1", map[string]any{
		"deckId":        1,
		"author":        "bob",
		"title":         "v2",
		"difficulty":    "medium",
		"starting_hand": []map[string]any{{"card_id": 2, "card_name": "Imp"}},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	recorder = doJSON(t, router, http.MethodGet, "/combos/1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var detail models.ComboDetail
	decodeBody(t, recorder, &detail)
	assert.Equal(t, "v2", detail.Title)
	assert.Equal(t, "bob", detail.Author)
	require.Len(t, detail.StartingHand, 1)
	assert.Equal(t, "Imp", detail.StartingHand[0].CardName)

	recorder = doJSON(t, router, http.MethodPut, "/combos/update-full-combo/99", map[string]any{
		"deckId": 1, "author": "x", "title": "y", "difficulty": "z",
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestComboFlatCrud(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/decks", map[string]any{
		"name": "d", "description": "d", "image_url": "d.png",
	})

	recorder := doJSON(t, router, http.MethodPost, "/combos/deck/1", map[string]any{
		"author":     "alice",
		"title":      "simple",
		"difficulty": "easy",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	var combo models.Combo
	decodeBody(t, recorder, &combo)
	assert.Equal(t, int64(1), combo.DeckID)
	require.NotZero(t, combo.ID)

	recorder = doJSON(t, router, http.MethodPut, "/combos/1", map[string]any{
		"title":      "renamed",
		"difficulty": "hard",
	})
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodPut, "/combos/99", map[string]any{
		"title":      "renamed",
		"difficulty": "hard",
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doJSON(t, router, http.MethodDelete, "/combos/1", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodDelete, "/combos/1", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCreateTagConflict(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/tags", map[string]any{"name": "infinite"})
	require.Equal(t, http.StatusCreated, recorder.Code)
	var tag models.Tag
	decodeBody(t, recorder, &tag)
	assert.NotZero(t, tag.ID)

	recorder = doJSON(t, router, http.MethodPost, "/tags", map[string]any{"name": "infinite"})
	assert.Equal(t, http.StatusConflict, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/tags", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var tags []models.Tag
	decodeBody(t, recorder, &tags)
	assert.Len(t, tags, 1, "conflicting create must not add a row")
}

func TestAssignTagAndListByCombo(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/decks", map[string]any{
		"name": "d", "description": "d", "image_url": "d.png",
	})
	doJSON(t, router, http.MethodPost, "/combos/deck/1", map[string]any{
		"author": "a", "title": "t", "difficulty": "easy",
	})
	doJSON(t, router, http.MethodPost, "/tags", map[string]any{"name": "budget"})

	recorder := doJSON(t, router, http.MethodPut, "/combos/1/assign-tag/1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/tags/combo/1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var tags []models.Tag
	decodeBody(t, recorder, &tags)
	require.Len(t, tags, 1)
	assert.Equal(t, "budget", tags[0].Name)
}

func TestBulkStartingHandEndpoint(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/decks", map[string]any{
		"name": "d", "description": "d", "image_url": "d.png",
	})
	doJSON(t, router, http.MethodPost, "/combos/deck/1", map[string]any{
		"author": "a", "title": "t", "difficulty": "easy",
	})

	recorder := doJSON(t, router, http.MethodPost, "/comboStartingHand", map[string]any{
		"combo_id": 1,
		"cards": []map[string]any{
			{"id": 1, "name": "Bolt"},
			{"id": 2, "name": "Imp"},
		},
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	var response MessageResponse
	decodeBody(t, recorder, &response)
	assert.Equal(t, "Starting hand added successfully.", response.Message)

	recorder = doJSON(t, router, http.MethodGet, "/combos/1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var detail models.ComboDetail
	decodeBody(t, recorder, &detail)
	require.Len(t, detail.StartingHand, 2)
	assert.Equal(t, "Bolt", detail.StartingHand[0].CardName)

	recorder = doJSON(t, router, http.MethodPost, "/comboStartingHand", map[string]any{
		"combo_id": 1,
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	decodeBody(t, recorder, &response)
	assert.Equal(t, "Missing combo_id or cards array.", response.Message)
}

func TestStepEndpoints(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/decks", map[string]any{
		"name": "d", "description": "d", "image_url": "d.png",
	})
	doJSON(t, router, http.MethodPost, "/combos/deck/1", map[string]any{
		"author": "a", "title": "t", "difficulty": "easy",
	})
	doJSON(t, router, http.MethodPost, "/comboStartingHand", map[string]any{
		"combo_id": 1,
		"cards":    []map[string]any{{"id": 1, "name": "Bolt"}, {"id": 2, "name": "Imp"}},
	})

	// step_order 0 must be accepted
	recorder := doJSON(t, router, http.MethodPost, "/steps/combo/1", map[string]any{
		"card_id":         1,
		"action_text":     "bolt the imp",
		"step_order":      0,
		"target_card_ids": []int64{2},
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	var created createStepResponse
	decodeBody(t, recorder, &created)
	assert.Equal(t, "Step created", created.Message)
	require.NotZero(t, created.Step.ID)

	recorder = doJSON(t, router, http.MethodPost, "/steps/combo/1", map[string]any{
		"card_id":     1,
		"action_text": "no order given",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/steps/combo/1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var steps []models.StepWithTargets
	decodeBody(t, recorder, &steps)
	require.Len(t, steps, 1)
	require.Len(t, steps[0].StepTargets, 1)
	assert.Equal(t, "Imp", steps[0].StepTargets[0].CardName)

	recorder = doJSON(t, router, http.MethodPut, "/steps/1", map[string]any{
		"card_id":     2,
		"action_text": "attack instead",
		"step_order":  0,
	})
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodDelete, "/steps/1", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodDelete, "/steps/1", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestDeckInfoEndpoints(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/decks", map[string]any{
		"name": "d", "description": "d", "image_url": "d.png",
	})

	recorder := doJSON(t, router, http.MethodPost, "/decks/info/1", map[string]any{
		"note": "mulligan hard",
		"key_cards": []map[string]any{
			{"card_id": 1, "card_name": "Bolt", "description": "removal"},
		},
		"dangers": []map[string]any{
			{
				"card_id":     2,
				"card_name":   "Duress",
				"extra_notes": "hold lands",
				"responses":   []map[string]any{{"card_id": 3, "card_name": "Leyline"}},
			},
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	recorder = doJSON(t, router, http.MethodGet, "/decks/info/1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var info models.DeckInfo
	decodeBody(t, recorder, &info)
	require.NotNil(t, info.Note)
	assert.Equal(t, "mulligan hard", *info.Note)
	require.Len(t, info.KeyCards, 1)
	assert.Equal(t, "Bolt", info.KeyCards[0].CardName)
	require.Len(t, info.Dangers, 1)
	require.Len(t, info.Dangers[0].Responses, 1)
	assert.Equal(t, "Leyline", info.Dangers[0].Responses[0].CardName)

	recorder = doJSON(t, router, http.MethodGet, "/decks/info/99", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doJSON(t, router, http.MethodPost, "/decks/info/99", map[string]any{"note": "x"})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
