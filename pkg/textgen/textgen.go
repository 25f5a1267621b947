package textgen

import (
	"context"
	"math/rand"

	"go.uber.org/zap"

	"github.com/workseed/workseed/pkg/config"
	"github.com/workseed/workseed/pkg/model"
)

// Kind identifies what a content request is for.
type Kind string

const (
	KindTaskName    Kind = "task_name"
	KindDescription Kind = "task_description"
)

// Request describes one content-generation call. It carries the structured
// inputs both implementations need, so call sites never branch on which
// provider is behind the interface.
type Request struct {
	Kind        Kind
	Template    string
	ProjectType model.ProjectType
	ProjectName string
	TaskName    string
	Tier        string // short, medium or long, for descriptions
	Temperature float64
	MaxTokens   int
	CacheKey    string
}

// Generator produces textual content for generated entities. Implementations
// must always return usable text: any internal failure degrades to the
// deterministic template path instead of surfacing an error.
type Generator interface {
	Generate(ctx context.Context, req Request) string
}

// New selects the live client when an API key is configured, the template
// generator otherwise.
func New(cfg *config.LLMConfig, cache Cache, rng *rand.Rand, logger *zap.Logger) Generator {
	templates := NewTemplateGenerator(rng)
	if cfg == nil || cfg.APIKey == "" {
		logger.Info("no llm api key configured, using template content generation")
		return templates
	}
	logger.Info("llm content generation enabled",
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Model))
	return NewClient(cfg, cache, templates, logger)
}
