// Package openai turns an orchestrated result set into a narrative career
// plan via an OpenAI-compatible chat completion API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/pathwise-io/pathwise/internal/domain"
	"github.com/pathwise-io/pathwise/internal/domain/dispatch"
)

const systemPrompt = "You are a practical career advisor. Using only the courses, " +
	"job listings, and project ideas provided, write a concise step-by-step career " +
	"plan for the stated goal. Do not invent courses or jobs that are not listed."

// Advisor renders an envelope into a prompt and asks the model for a plan.
type Advisor struct {
	client    *openai.Client
	model     string
	maxTokens int
	logger    *zap.Logger
}

// Config holds the advisor provider settings.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Logger    *zap.Logger
}

// NewAdvisor creates a chat-completion backed advisor.
func NewAdvisor(cfg *Config) (*Advisor, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("advisor api key: %w", domain.ErrMissingCredential)
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Advisor{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		logger:    cfg.Logger,
	}, nil
}

// Advise produces a narrative plan from the envelope contents.
func (a *Advisor) Advise(ctx context.Context, env dispatch.Envelope) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: renderPrompt(env)},
		},
	})
	if err != nil {
		return "", parseAPIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// renderPrompt flattens the envelope into a plain-text context block.
func renderPrompt(env dispatch.Envelope) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Career goal: %s\n", env.Query())

	if res, ok := env.Result(domain.CourseSearch); ok && res.Status() == dispatch.StatusOK {
		b.WriteString("\nCourses:\n")
		for _, c := range res.Courses() {
			fmt.Fprintf(&b, "- %s %s (%s credit hours): %s\n", c.Code(), c.Title, c.CreditHours, c.Description)
		}
	}

	if res, ok := env.Result(domain.JobSearch); ok && res.Status() == dispatch.StatusOK {
		b.WriteString("\nJob listings:\n")
		for _, j := range res.Jobs() {
			fmt.Fprintf(&b, "- %s at %s (%s): %s\n", j.Title, j.Company, j.Location, j.Description)
		}
	}

	if res, ok := env.Result(domain.ProjectSearch); ok && res.Status() == dispatch.StatusOK {
		b.WriteString("\nProject ideas:\n")
		for _, p := range res.Projects() {
			fmt.Fprintf(&b, "- %s (%s, %s, portfolio value %s): %s\n",
				p.Name, p.Difficulty, p.Duration, p.Value, p.Description)
		}
		if skills := res.Skills(); len(skills) > 0 {
			b.WriteString("\nSkills to develop:\n")
			for category, names := range skills {
				fmt.Fprintf(&b, "- %s: %s\n", category, strings.Join(names, ", "))
			}
		}
	}

	return b.String()
}

// parseAPIError extracts a readable message from the provider error.
func parseAPIError(err error) error {
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("advisor API error %d: %s", reqErr.HTTPStatusCode, string(reqErr.Body))
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("advisor API error %d: %s", apiErr.HTTPStatusCode, apiErr.Message)
	}
	return fmt.Errorf("advisor request failed: %w", err)
}
