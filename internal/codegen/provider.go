// Package codegen builds the natural-language prompt for an external
// code-generating model out of a PaperAnalysis and runs the completion.
package codegen

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/avast/retry-go/v4"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Provider defines the interface for code-generation model backends.
type Provider interface {
	// Complete sends a prompt and returns the raw response text.
	Complete(ctx context.Context, prompt string) (string, error)

	// Model returns the model identifier being used.
	Model() string
}

const systemPrompt = `You are an expert programmer. You implement algorithms described in research papers as clean, runnable, well-commented code. Respond with a single fenced code block and nothing else.`

// OpenAIProvider implements Provider using the official OpenAI SDK.
type OpenAIProvider struct {
	model      string
	maxRetries uint
	retryDelay time.Duration
	client     openai.Client
}

// NewOpenAIProvider creates a provider for the given model. The API key is
// read from OPENAI_API_KEY.
func NewOpenAIProvider(model string) (*OpenAIProvider, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	return &OpenAIProvider{
		model:      model,
		maxRetries: 3,
		retryDelay: 2 * time.Second,
		client:     openai.NewClient(option.WithAPIKey(apiKey)),
	}, nil
}

// Model returns the model identifier.
func (p *OpenAIProvider) Model() string {
	return p.model
}

// Complete sends the prompt and returns the model's response, retrying
// transient failures with backoff.
func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	var content string

	err := retry.Do(
		func() error {
			resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
				Model: openai.ChatModel(p.model),
				Messages: []openai.ChatCompletionMessageParamUnion{
					openai.SystemMessage(systemPrompt),
					openai.UserMessage(prompt),
				},
				Temperature: openai.Float(0.2),
			})
			if err != nil {
				return err
			}
			if len(resp.Choices) == 0 {
				return fmt.Errorf("no choices in response")
			}
			content = resp.Choices[0].Message.Content
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(p.maxRetries),
		retry.Delay(p.retryDelay),
	)
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}

	return content, nil
}
