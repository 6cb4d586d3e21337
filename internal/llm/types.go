package llm

import (
	"context"
	"errors"
)

var (
	ErrNoAPIKey       = errors.New("OpenAI API key not configured")
	ErrEmptyResponse  = errors.New("model returned no choices")
	ErrMalformedReply = errors.New("model reply is not a valid answer")
)

// Model extracts an answer to question from the supplied passage. It is
// treated as a black box by callers.
type Model interface {
	Infer(ctx context.Context, question, passage string) (*Inference, error)
	Name() string
}

// Inference is an extracted answer span and the model's confidence in it.
type Inference struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
}
