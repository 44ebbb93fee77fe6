package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	deckHandler       deckHandler
	comboHandler      comboHandler
	stepHandler       stepHandler
	stepTargetHandler stepTargetHandler
	tagHandler        tagHandler
	comboLinkHandler  comboLinkHandler
}

// MessageResponse is the flat envelope used for confirmations and errors.
type MessageResponse struct {
	Message string `json:"message"`
}
