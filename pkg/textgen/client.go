package textgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/workseed/workseed/pkg/config"
	"github.com/workseed/workseed/pkg/metrics"
)

// Client calls an OpenAI-style chat completions API for content. Every
// failure path degrades to the template generator, so callers always get
// text back.
type Client struct {
	http     *resty.Client
	model    string
	fallback *TemplateGenerator
	cache    Cache
	logger   *zap.Logger
}

func NewClient(cfg *config.LLMConfig, cache Cache, fallback *TemplateGenerator, logger *zap.Logger) *Client {
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Client{
		http: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(cfg.Timeout).
			SetAuthToken(cfg.APIKey),
		model:    cfg.Model,
		fallback: fallback,
		cache:    cache,
		logger:   logger,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) Generate(ctx context.Context, req Request) string {
	if req.CacheKey != "" {
		if cached, ok := c.cache.Get(ctx, req.CacheKey); ok {
			return cached
		}
	}

	text, err := c.complete(ctx, req)
	if err != nil {
		c.logger.Warn("llm generation failed, using template fallback",
			zap.String("kind", string(req.Kind)), zap.Error(err))
		metrics.TextFallbacksTotal.WithLabelValues(string(req.Kind)).Inc()
		return c.fallback.Generate(ctx, req)
	}

	if req.CacheKey != "" {
		c.cache.Set(ctx, req.CacheKey, text)
	}
	return text
}

func (c *Client) complete(ctx context.Context, req Request) (string, error) {
	var result chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(chatRequest{
			Model:       c.model,
			Messages:    []chatMessage{{Role: "user", Content: buildPrompt(req)}},
			Temperature: req.Temperature,
			MaxTokens:   req.MaxTokens,
		}).
		SetResult(&result).
		Post("/chat/completions")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("llm api returned status %d", resp.StatusCode())
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("llm api returned no choices")
	}

	text := strings.TrimSpace(result.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("llm api returned empty content")
	}
	return text, nil
}

func buildPrompt(req Request) string {
	if req.Kind == KindDescription {
		return descriptionPrompt(req)
	}
	return namePrompt(req)
}

func namePrompt(req Request) string {
	switch CategoryFor(req.ProjectType) {
	case CategoryMarketing:
		return fmt.Sprintf(`Generate a realistic marketing task name for the %q campaign.
The task should follow the pattern of this template: %q.
Examples:
- "Q4 Product Launch - Design email template"
- "Black Friday Campaign - Write social media copy"
Generate ONE task name only, no explanation.`, req.ProjectName, req.Template)
	case CategoryOperations:
		return fmt.Sprintf(`Generate a realistic operations/admin task name based on this template: %q.
Examples:
- "Renew SSL certificates for production domains"
- "Schedule Q1 budget planning sessions"
Generate ONE task name only, no explanation.`, req.Template)
	default:
		return fmt.Sprintf(`Generate a realistic software engineering task name based on this template: %q.
Examples:
- "API Client - Add retry logic - Exponential backoff implementation"
- "Auth Service - Fix bug - JWT token validation on refresh"
Project type: %s.
Generate ONE task name only, no explanation.`, req.Template, req.ProjectType)
	}
}

func descriptionPrompt(req Request) string {
	switch req.Tier {
	case "short":
		return fmt.Sprintf("Create a brief 1-sentence task description for:\n%s\nKeep it under 100 characters.", req.TaskName)
	case "long":
		return fmt.Sprintf(`Create a detailed task description with 2-4 sentences of context and clear acceptance criteria as bullet points.
Task name: %s
Project: %s
Generate ONLY the description, no task name.`, req.TaskName, req.ProjectName)
	default:
		return fmt.Sprintf("Create a task description with a 1 sentence overview and 2-3 bullet points for acceptance criteria.\nTask: %s\nGenerate ONLY the description.", req.TaskName)
	}
}
