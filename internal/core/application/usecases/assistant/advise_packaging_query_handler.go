package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cargofresh/internal/core/ports"
)

// PackagingAdvice is the advisor's answer for one product.
type PackagingAdvice struct {
	Temperature string `json:"temperature"`
	Packaging   string `json:"packaging"`
	Tips        string `json:"tips"`
}

// Advice wraps the outcome of one advisor call. Advice is nil unless Outcome is ports.Success.
type Advice struct {
	Outcome ports.Outcome
	Advice  *PackagingAdvice
}

var errAdviceIsEmpty = errors.New("advice has no fields")

// AdvisePackagingQueryHandler asks the text generator for a JSON packaging recommendation.
type AdvisePackagingQueryHandler struct {
	generator ports.TextGenerator
	logger    *slog.Logger
}

// NewAdvisePackagingQueryHandler creates the advisor handler.
func NewAdvisePackagingQueryHandler(generator ports.TextGenerator, logger *slog.Logger) AdvisePackagingQueryHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return AdvisePackagingQueryHandler{
		generator: generator,
		logger:    logger.With("component", "packaging-advisor"),
	}
}

// Handle returns advice or a non-success outcome; unreadable answers count as failures.
func (h AdvisePackagingQueryHandler) Handle(ctx context.Context, query AdvisePackagingQuery) (Advice, error) {
	if err := query.Validate(); err != nil {
		return Advice{}, err
	}

	generation := h.generator.Generate(ctx, packagingPrompt(query.Product()))
	if generation.Outcome != ports.Success {
		h.logger.WarnContext(ctx, "no packaging advice",
			"product", query.Product(),
			"outcome", generation.Outcome.String(),
			"error", generation.Err)
		return Advice{Outcome: generation.Outcome}, nil
	}

	advice, err := ParsePackagingAdvice(generation.Text)
	if err != nil {
		h.logger.ErrorContext(ctx, "unreadable packaging advice",
			"product", query.Product(),
			"error", err)
		return Advice{Outcome: ports.Failure}, nil
	}

	return Advice{Outcome: ports.Success, Advice: &advice}, nil
}

// ParsePackagingAdvice decodes a model answer, ignoring ```json fences around it.
func ParsePackagingAdvice(text string) (PackagingAdvice, error) {
	cleaned := strings.NewReplacer("```json", "", "```", "").Replace(text)
	cleaned = strings.TrimSpace(cleaned)

	var advice PackagingAdvice
	if err := json.Unmarshal([]byte(cleaned), &advice); err != nil {
		return PackagingAdvice{}, fmt.Errorf("decode advice: %w", err)
	}
	if advice == (PackagingAdvice{}) {
		return PackagingAdvice{}, errAdviceIsEmpty
	}

	return advice, nil
}

func packagingPrompt(product string) string {
	return fmt.Sprintf(
		`Experto logístico. Producto: %q. JSON output: { "temperature": "-18°C", "packaging": "Caja", "tips": "Tip breve" }`,
		product,
	)
}
