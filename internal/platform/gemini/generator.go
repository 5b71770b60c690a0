package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"text/template"
	"time"

	"google.golang.org/genai"

	"github.com/mkurosawa/kotoba-api/internal/config"
	"github.com/mkurosawa/kotoba-api/internal/domain"
	"github.com/mkurosawa/kotoba-api/internal/generation"
)

// responseSchema constrains the model to the mnemonic JSON shape.
var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"mnemonic":         {Type: genai.TypeString},
		"example_sentence": {Type: genai.TypeString},
		"translation":      {Type: genai.TypeString},
	},
	Required: []string{"mnemonic"},
}

// Generator implements generation.Generator against the Gemini API.
type Generator struct {
	logger         *slog.Logger
	cfg            config.LLMConfig
	promptTemplate *template.Template
	client         *genai.Client
	model          string
}

// NewGenerator creates a Gemini-backed mnemonic generator. The prompt
// template is loaded from cfg.PromptTemplatePath when set, otherwise the
// built-in template is used.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	templateContent := defaultPromptTemplate
	if cfg.PromptTemplatePath != "" {
		raw, err := os.ReadFile(cfg.PromptTemplatePath)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
				generation.ErrInvalidConfig, cfg.PromptTemplatePath, err)
		}
		templateContent = string(raw)
	}

	promptTemplate, err := template.New("mnemonic").Parse(templateContent)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			generation.ErrInvalidConfig, err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger:         logger.With(slog.String("component", "gemini_generator")),
		cfg:            cfg,
		promptTemplate: promptTemplate,
		client:         client,
		model:          cfg.ModelName,
	}, nil
}

// GenerateMnemonic produces a mnemonic for the item, retrying transient
// failures with exponential backoff and jitter. Authentication failures,
// blocked content, and malformed responses are returned immediately.
func (g *Generator) GenerateMnemonic(ctx context.Context, item domain.LearnableItem) (*domain.Mnemonic, error) {
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrInvalidConfig, err)
	}

	prompt, err := buildPrompt(g.promptTemplate, item)
	if err != nil {
		return nil, err
	}

	schema, err := g.callWithRetry(ctx, prompt, item.ID)
	if err != nil {
		return nil, err
	}

	return &domain.Mnemonic{
		Character:       item.DisplayForm,
		Mnemonic:        schema.Mnemonic,
		ExampleSentence: schema.ExampleSentence,
		Translation:     schema.Translation,
	}, nil
}

func (g *Generator) callWithRetry(ctx context.Context, prompt, itemID string) (*mnemonicSchema, error) {
	maxRetries := g.cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	baseDelaySeconds := g.cfg.RetryDelaySeconds
	if baseDelaySeconds < 1 {
		baseDelaySeconds = 2
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		g.logger.DebugContext(ctx, "calling Gemini API",
			slog.String("item_id", itemID),
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", maxRetries+1))

		schema, err := g.callOnce(ctx, prompt)
		if err == nil {
			return schema, nil
		}
		lastErr = err

		if !retryable(err) || attempt == maxRetries {
			g.logger.ErrorContext(ctx, "Gemini API call failed",
				slog.String("item_id", itemID),
				slog.Int("attempt", attempt+1),
				slog.String("error", err.Error()))
			return nil, err
		}

		// delay = base * 2^attempt scaled by jitter in [0.5, 1.0).
		backoff := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		jitter := 0.5 + rng.Float64()*0.5
		delay := time.Duration(backoff * jitter * float64(time.Second))

		g.logger.DebugContext(ctx, "retrying Gemini API call",
			slog.String("item_id", itemID),
			slog.Duration("delay", delay))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", generation.ErrTransientFailure, ctx.Err())
		}
	}

	return nil, fmt.Errorf("%w: exceeded %d attempts: %v",
		generation.ErrTransientFailure, maxRetries+1, lastErr)
}

func (g *Generator) callOnce(ctx context.Context, prompt string) (*mnemonicSchema, error) {
	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}
	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema,
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, genConfig)
	if err != nil {
		return nil, classifyAPIError(err)
	}
	return parseResponse(result)
}

// parseResponse extracts and validates the mnemonic JSON from the response.
func parseResponse(result *genai.GenerateContentResponse) (*mnemonicSchema, error) {
	if result == nil || len(result.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}
	if result.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return nil, fmt.Errorf("%w: safety filter triggered", generation.ErrContentBlocked)
	}

	text := result.Text()
	if text == "" {
		return nil, fmt.Errorf("%w: empty response text", generation.ErrInvalidResponse)
	}

	var schema mnemonicSchema
	if err := json.Unmarshal([]byte(text), &schema); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON response: %v",
			generation.ErrInvalidResponse, err)
	}
	if schema.Mnemonic == "" {
		return nil, fmt.Errorf("%w: missing mnemonic field", generation.ErrInvalidResponse)
	}
	return &schema, nil
}

var _ generation.Generator = (*Generator)(nil)
