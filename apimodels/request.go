package apimodels

type AskRequest struct {
	// Question is the visitor's natural language question
	Question string `json:"question"`

	// History of the chat so far. Accepted for compatibility with the
	// website widget; not used when answering.
	History []map[string]interface{} `json:"history,omitempty"`

	// Preferences chosen by the visitor in the widget; not used when answering.
	Preferences map[string]interface{} `json:"preferences,omitempty"`
}
