package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	openAIRequestTimeout = 60 * time.Second
	openAIRetryAttempts  = 3
	defaultOpenAIModel   = openai.GPT3Dot5Turbo1106
)

const classifySystemPrompt = `You analyze citizen feedback about a policy document.
Respond with a single JSON object of the shape
{"sentiment": "positive"|"negative"|"neutral", "key_points": [short strings], "category": short lowercase label}.
Do not include any text outside the JSON object.`

// OpenAI classifies feedback through a chat-completion call. Responses are
// free-form model output, so callers must treat every field as unreliable.
type OpenAI struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewOpenAI creates an OpenAI-backed classifier. An empty model selects a
// sensible default.
func NewOpenAI(apiKey, model string, logger *zap.Logger) *OpenAI {
	if logger == nil {
		logger = zap.NewNop()
	}
	if model == "" {
		model = defaultOpenAIModel
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.HTTPClient = &http.Client{Timeout: openAIRequestTimeout}

	return &OpenAI{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		logger: logger.Named("openai-classifier"),
	}
}

// cleanResponse strips markdown code fences the model sometimes wraps
// around JSON despite the response-format hint.
func cleanResponse(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

// Classify asks the model for a sentiment/key-point/category verdict,
// retrying transient completion failures.
func (o *OpenAI) Classify(ctx context.Context, text, feedbackType string) (Result, error) {
	userPrompt := fmt.Sprintf("Feedback type: %s\nFeedback text: %s", feedbackType, text)

	var resp openai.ChatCompletionResponse
	var completionErr error

	for attempt := 1; attempt <= openAIRetryAttempts; attempt++ {
		resp, completionErr = o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: o.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: classifySystemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		})
		if completionErr == nil {
			break
		}
		o.logger.Warn("completion attempt failed",
			zap.Int("attempt", attempt),
			zap.Error(completionErr))
	}
	if completionErr != nil {
		return Result{}, fmt.Errorf("openai classify: %w", completionErr)
	}
	if len(resp.Choices) == 0 {
		return Result{}, fmt.Errorf("openai classify: empty response")
	}

	var result Result
	cleaned := cleanResponse(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		o.logger.Warn("unparseable classifier response",
			zap.String("raw", resp.Choices[0].Message.Content),
			zap.Error(err))
		return Result{}, fmt.Errorf("openai classify: decode response: %w", err)
	}

	if result.Category == "" {
		result.Category = DefaultCategory
	}
	return result, nil
}
