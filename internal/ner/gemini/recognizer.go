package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"resume-sift/internal/logger"
	"resume-sift/internal/ner"

	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Recognizer asks Gemini to find named entities in a text span.
type Recognizer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

func NewRecognizer(generator contentGenerator, maxLogLength int, log *zap.Logger) *Recognizer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &Recognizer{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

func (r *Recognizer) Recognize(ctx context.Context, span string) ([]ner.Entity, error) {
	span = strings.TrimSpace(span)
	if span == "" {
		return nil, nil
	}

	prompt := buildPrompt(span)

	r.logger.Debug("gemini recognize request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("span_preview", logger.TruncateForLog(span, r.maxLogLen)),
	)

	raw, err := r.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("gemini recognize response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, r.maxLogLen)),
	)

	return parseEntities(raw)
}

func buildPrompt(span string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Find named entities in:\n{{SPAN}}\n\nJSON Response:"
	}
	return strings.ReplaceAll(template, "{{SPAN}}", span)
}

func parseEntities(raw string) ([]ner.Entity, error) {
	cleaned := extractJSON(raw)

	var items []struct {
		Text  string `json:"text"`
		Label string `json:"label"`
	}

	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		// Some responses wrap the array in an object.
		var wrapped struct {
			Entities []struct {
				Text  string `json:"text"`
				Label string `json:"label"`
			} `json:"entities"`
		}
		if werr := json.Unmarshal([]byte(cleaned), &wrapped); werr != nil {
			return nil, fmt.Errorf("parse gemini response: %w", err)
		}
		items = wrapped.Entities
	}

	entities := make([]ner.Entity, 0, len(items))
	for _, item := range items {
		text := strings.TrimSpace(item.Text)
		if text == "" {
			continue
		}
		entities = append(entities, ner.Entity{
			Text:  text,
			Label: strings.ToUpper(strings.TrimSpace(item.Label)),
		})
	}

	return entities, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
