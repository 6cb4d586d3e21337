package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"

	"github.com/gisusafaris/faq-bot/internal/config"
)

const SystemPrompt = `You are an extractive question-answering model for Gisu Safaris.
You are given a CONTEXT and a QUESTION. Copy the shortest span of the CONTEXT that answers the QUESTION, word for word.
Never add information that is not in the CONTEXT. If the CONTEXT does not contain the answer, pick the closest span and give it a low score.
Reply with a single JSON object and nothing else: {"answer": "<span>", "score": <confidence between 0 and 1>}`

// Answer spans are short; this only bounds runaway replies.
const maxAnswerTokens int64 = 200

// OpenAI answers questions with a chat completion model prompted to behave
// as an extractive reader.
type OpenAI struct {
	client *openai.Client
	cfg    *config.OpenAIConfig
}

func NewOpenAI(cfg *config.OpenAIConfig, extra ...option.RequestOption) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	var opts []option.RequestOption
	switch cfg.Provider {
	case "azure":
		opts = append(opts,
			azure.WithEndpoint(cfg.APIEndpoint, cfg.APIVersion),
			azure.WithAPIKey(cfg.APIKey),
		)
	default: // "openai"
		opts = append(opts,
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.APIEndpoint),
		)
	}
	opts = append(opts, extra...)

	slog.Info("Created QA model client", "provider", cfg.Provider, "model", cfg.Model)
	return &OpenAI{
		client: openai.NewClient(opts...),
		cfg:    cfg,
	}, nil
}

func (o *OpenAI) Name() string {
	return o.cfg.Model
}

func (o *OpenAI) Infer(ctx context.Context, question, passage string) (*Inference, error) {
	if o.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.Timeout)
		defer cancel()
	}

	resp, err := o.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Model: openai.F(openai.ChatModel(o.cfg.Model)),
			Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(SystemPrompt),
				openai.UserMessage(fmt.Sprintf("CONTEXT:\n%s\n\nQUESTION: %s", passage, question)),
			}),
			Temperature: openai.F(0.0),
			MaxTokens:   openai.F(maxAnswerTokens),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	slog.Debug("QA model replied", "model", resp.Model, "totalTokens", resp.Usage.TotalTokens)

	return ParseReply(resp.Choices[0].Message.Content)
}

// ParseReply decodes the JSON answer object from a model reply, tolerating
// markdown code fences or prose around it.
func ParseReply(content string) (*Inference, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no JSON object in %q", ErrMalformedReply, truncate(content, 200))
	}

	var inf Inference
	if err := json.Unmarshal([]byte(content[start:end+1]), &inf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	inf.Answer = strings.TrimSpace(inf.Answer)
	return &inf, nil
}

func truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}
