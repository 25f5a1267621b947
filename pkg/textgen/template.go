package textgen

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/workseed/workseed/pkg/model"
)

// Task name template categories.
const (
	CategoryEngineering = "engineering"
	CategoryMarketing   = "marketing"
	CategoryOperations  = "operations"
)

var nameTemplates = map[string][]string{
	CategoryEngineering: {
		"Implement [feature]",
		"Fix [bug] in [component]",
		"Refactor [module] for [goal]",
		"Optimize [system] - [improvement]",
		"Add [capability] to [component]",
		"Update [component] to [spec]",
		"Research [topic] for [goal]",
		"Write tests for [component]",
		"Document [feature]",
		"Review PR for [feature]",
	},
	CategoryMarketing: {
		"[Campaign] - Create [asset]",
		"[Campaign] - Write [content]",
		"[Campaign] - Design [deliverable]",
		"[Campaign] - Review [document]",
		"[Campaign] - Schedule [post]",
		"[Campaign] - Analyze [metric]",
		"[Campaign] - Plan [phase]",
		"[Campaign] - Launch [initiative]",
	},
	CategoryOperations: {
		"Renew [service] credentials",
		"Update [system] configuration",
		"Schedule [meeting]",
		"Process [request] for [team]",
		"Review [policy] compliance",
		"Coordinate [initiative]",
		"Plan [event]",
		"Update documentation for [process]",
	},
}

var substitutions = map[string]map[string][]string{
	CategoryEngineering: {
		"[feature]":     {"user authentication", "mobile support", "caching layer", "API endpoints"},
		"[bug]":         {"race condition", "memory leak", "null pointer exception", "API timeout"},
		"[component]":   {"database", "API client", "UI component", "service layer"},
		"[module]":      {"authentication", "payment processing", "data models", "utilities"},
		"[goal]":        {"performance", "maintainability", "scalability", "readability"},
		"[system]":      {"database queries", "API responses", "image processing", "cache"},
		"[improvement]": {"indexing", "lazy loading", "batching", "compression"},
		"[capability]":  {"error handling", "logging", "metrics", "notifications"},
		"[spec]":        {"new requirements", "design specs", "API contract", "interface"},
		"[topic]":       {"scaling strategies", "architecture patterns", "framework options", "tools"},
	},
	CategoryMarketing: {
		"[Campaign]":    {"Q4 Product Launch", "Black Friday", "Brand Refresh", "Partner Program"},
		"[asset]":       {"email template", "social media post", "landing page", "promotional banner"},
		"[content]":     {"blog post", "whitepaper", "case study", "newsletter"},
		"[deliverable]": {"presentation deck", "video script", "infographic", "campaign plan"},
		"[document]":    {"campaign brief", "content calendar", "brand guidelines", "strategy doc"},
		"[post]":        {"tweets", "LinkedIn updates", "Instagram posts", "email campaign"},
		"[metric]":      {"CTR", "conversion rate", "engagement", "impressions"},
		"[phase]":       {"phase 1", "phase 2", "final push", "launch"},
		"[initiative]":  {"webinar", "campaign", "partnership", "promotion"},
	},
	CategoryOperations: {
		"[service]":    {"SSL certificate", "payroll system", "VPN", "cloud hosting"},
		"[system]":     {"CI pipeline", "HR portal", "expense tracker", "asset inventory"},
		"[meeting]":    {"quarterly planning session", "all-hands", "vendor review", "retro"},
		"[request]":    {"access request", "hardware order", "travel booking", "license renewal"},
		"[team]":       {"engineering", "finance", "sales", "support"},
		"[policy]":     {"security", "data retention", "expense", "remote work"},
		"[initiative]": {"office move", "tooling migration", "audit prep", "onboarding revamp"},
		"[event]":      {"team offsite", "product launch", "annual review cycle", "hackathon"},
		"[process]":    {"incident response", "deployment", "procurement", "onboarding"},
	},
}

// CategoryFor maps a project archetype onto a template category.
func CategoryFor(projectType model.ProjectType) string {
	switch projectType {
	case model.ProjectMarketing:
		return CategoryMarketing
	case model.ProjectOperational:
		return CategoryOperations
	default:
		return CategoryEngineering
	}
}

// PickTemplate draws one bracketed name template for a category. Unknown
// categories fall back to engineering templates.
func PickTemplate(rng *rand.Rand, category string) string {
	templates, ok := nameTemplates[category]
	if !ok {
		templates = nameTemplates[CategoryEngineering]
	}
	return templates[rng.Intn(len(templates))]
}

// TemplateGenerator produces content by substituting bracketed placeholders
// with category-specific option lists. It never fails, which makes it the
// terminal fallback for every other implementation.
type TemplateGenerator struct {
	rng *rand.Rand
}

func NewTemplateGenerator(rng *rand.Rand) *TemplateGenerator {
	return &TemplateGenerator{rng: rng}
}

func (g *TemplateGenerator) Generate(_ context.Context, req Request) string {
	switch req.Kind {
	case KindDescription:
		return g.description(req)
	default:
		return g.Substitute(req.Template, CategoryFor(req.ProjectType))
	}
}

// Substitute replaces every known bracketed placeholder in template with a
// random option from the category's lists.
func (g *TemplateGenerator) Substitute(template, category string) string {
	options, ok := substitutions[category]
	if !ok {
		options = substitutions[CategoryEngineering]
	}
	result := template
	for placeholder, choices := range options {
		if strings.Contains(result, placeholder) {
			result = strings.ReplaceAll(result, placeholder, choices[g.rng.Intn(len(choices))])
		}
	}
	return result
}

func (g *TemplateGenerator) description(req Request) string {
	switch req.Tier {
	case "short":
		return fmt.Sprintf("Work on %s.", req.TaskName)
	case "long":
		return fmt.Sprintf("Complete %s with the following criteria:\n- Ensure quality standards\n- Document the process\n- Get team review\n- Update project tracking", req.TaskName)
	default:
		return fmt.Sprintf("Complete %s according to project requirements. This task is part of %s.", req.TaskName, req.ProjectName)
	}
}
