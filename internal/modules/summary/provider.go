package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	anthropicclient "github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"

	"github.com/Rohit273848/travel-notes-app/internal/config"
)

const (
	systemPrompt = "You summarize travel notes in simple, clear English."
	// Summaries hit a paid API with unbounded latency: hard timeout, zero retries.
	requestTimeout = 30 * time.Second
	maxTokens      = 300
)

// Summarizer turns the combined text of matched notes into a short summary.
// Implementations must not retry on failure.
type Summarizer interface {
	Summarize(ctx context.Context, notesText string) (string, error)
}

// NewSummarizer builds the provider selected by config. Defaults to OpenAI.
func NewSummarizer(cfg config.AIConfig) Summarizer {
	switch normalizeProviderType(cfg.Provider) {
	case "anthropic":
		return newAnthropicSummarizer(cfg)
	case "openai-compatible", "openaicompatible":
		return &compatibleSummarizer{
			endpoint: strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/"),
			apiKey:   cfg.APIKey,
			model:    cfg.Model,
			client:   &http.Client{Timeout: requestTimeout},
		}
	default:
		return newOpenAISummarizer(cfg)
	}
}

func normalizeProviderType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	t = strings.ReplaceAll(t, "_", "-")
	return strings.ReplaceAll(t, " ", "")
}

func userPrompt(notesText string) string {
	return "Summarize these travel notes:\n" + notesText
}

type openaiSummarizer struct {
	client openaiclient.Client
	model  string
}

func newOpenAISummarizer(cfg config.AIConfig) *openaiSummarizer {
	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(cfg.APIKey),
		openaioption.WithMaxRetries(0),
		openaioption.WithRequestTimeout(requestTimeout),
	}
	if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
		opts = append(opts, openaioption.WithBaseURL(strings.TrimRight(endpoint, "/")))
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &openaiSummarizer{client: openaiclient.NewClient(opts...), model: model}
}

func (s *openaiSummarizer) Summarize(ctx context.Context, notesText string) (string, error) {
	resp, err := s.client.Chat.Completions.New(ctx, openaiclient.ChatCompletionNewParams{
		Model: openaiclient.ChatModel(s.model),
		Messages: []openaiclient.ChatCompletionMessageParamUnion{
			openaiclient.SystemMessage(systemPrompt),
			openaiclient.UserMessage(userPrompt(notesText)),
		},
		MaxTokens: openaiclient.Int(maxTokens),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from provider")
	}
	return resp.Choices[0].Message.Content, nil
}

type anthropicSummarizer struct {
	client anthropicclient.Client
	model  string
}

func newAnthropicSummarizer(cfg config.AIConfig) *anthropicSummarizer {
	opts := []anthropicoption.RequestOption{
		anthropicoption.WithAPIKey(cfg.APIKey),
		anthropicoption.WithMaxRetries(0),
		anthropicoption.WithRequestTimeout(requestTimeout),
	}
	if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
		opts = append(opts, anthropicoption.WithBaseURL(strings.TrimRight(endpoint, "/")))
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "claude-haiku-4-5-20251001"
	}
	return &anthropicSummarizer{client: anthropicclient.NewClient(opts...), model: model}
}

func (s *anthropicSummarizer) Summarize(ctx context.Context, notesText string) (string, error) {
	msg, err := s.client.Messages.New(ctx, anthropicclient.MessageNewParams{
		Model:     anthropicclient.Model(s.model),
		MaxTokens: maxTokens,
		System: []anthropicclient.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropicclient.MessageParam{
			anthropicclient.NewUserMessage(anthropicclient.NewTextBlock(userPrompt(notesText))),
		},
	})
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("empty response from provider")
	}
	return sb.String(), nil
}

// compatibleSummarizer speaks the plain chat-completions wire format for self-hosted
// OpenAI-compatible endpoints.
type compatibleSummarizer struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
}

func (s *compatibleSummarizer) Summarize(ctx context.Context, notesText string) (string, error) {
	endpoint := s.endpoint
	if endpoint == "" {
		endpoint = "https://api.openai.com"
	}
	model := strings.TrimSpace(s.model)
	if model == "" {
		model = "gpt-4o-mini"
	}

	body, _ := json.Marshal(map[string]interface{}{
		"model": model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt(notesText)},
		},
		"max_tokens": maxTokens,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(s.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("provider error: %s", strings.TrimSpace(string(respBody)))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}
	if len(result.Choices) == 0 {
		return "", errors.New("empty response from provider")
	}
	return result.Choices[0].Message.Content, nil
}
