package apimodels

type AskResponse struct {
	// The answer shown to the visitor
	Answer string `json:"answer"`

	// Model confidence in [0,1]; 1.0 for currency conversions
	Score float64 `json:"score"`

	// Model used to answer FAQ questions, or why it is unavailable
	Model string `json:"model"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
