package client

import "github.com/registroapp/conciliador/pkg/suggest"

type LinkRequest struct {
	MovementID string `json:"movementId"`
	DocumentID string `json:"documentId"`
}

type SuggestionsResponse struct {
	MovementID  string               `json:"movementId"`
	Suggestions []suggest.Suggestion `json:"suggestions"`
	Total       int                  `json:"total"`
}
