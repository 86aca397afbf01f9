// README: Gemini implementation of the completion client.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-2.0-flash"

// GeminiClient implements CompletionClient using Google's Gemini models.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient initializes a Gemini client with the given generation
// options. apiKey should come from environment configuration.
func NewGeminiClient(ctx context.Context, apiKey string, opts Options) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	if opts.Model == "" {
		opts.Model = defaultModel
	}
	model := client.GenerativeModel(opts.Model)

	// Force JSON responses so the output can be decoded directly.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(opts.Temperature)
	model.SetMaxOutputTokens(opts.MaxOutputTokens)

	return &GeminiClient{client: client, model: model}, nil
}

// Close releases the underlying client resources.
func (c *GeminiClient) Close() {
	c.client.Close()
}

// Complete sends the exchange and returns the raw response text. Any failure,
// including an empty candidate set, surfaces as a *CallError; the client
// never retries on its own.
func (c *GeminiClient) Complete(ctx context.Context, messages []Message) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(flattenMessages(messages)))
	if err != nil {
		return "", &CallError{Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &CallError{Err: errors.New("no response candidates")}
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}

	// JSON mode should prevent markdown fences, but strip them to be safe.
	return cleanJSONString(text.String()), nil
}

// flattenMessages serializes the role-tagged exchange into a single prompt.
// Gemini exposes SystemInstruction on the model, but that field is shared
// client state; inlining the system text keeps each call independent.
func flattenMessages(messages []Message) string {
	var b strings.Builder
	for i, m := range messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch m.Role {
		case RoleUser:
			b.WriteString("User request: ")
			b.WriteString(m.Content)
		case RoleAssistant:
			b.WriteString("Assistant: ")
			b.WriteString(m.Content)
		default:
			b.WriteString(m.Content)
		}
	}
	return b.String()
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
