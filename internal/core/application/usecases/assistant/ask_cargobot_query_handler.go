package assistant

import (
	"context"
	"log/slog"

	"cargofresh/internal/core/ports"
)

const cargoBotPrompt = "Eres CargoBot, asistente de Cargo Fresh. Responde breve en español. Usuario: "

// FallbackReply is what the chat shows when the text service gives no answer.
const FallbackReply = "Lo siento, en este momento no puedo responder. Escríbenos a ventas@cargofresh.mx."

// Reply is the bot answer. Text is FallbackReply unless Outcome is ports.Success.
type Reply struct {
	Outcome ports.Outcome
	Text    string
}

// AskCargoBotQueryHandler forwards chat messages to the text generator.
type AskCargoBotQueryHandler struct {
	generator ports.TextGenerator
	logger    *slog.Logger
}

// NewAskCargoBotQueryHandler creates the chat handler.
func NewAskCargoBotQueryHandler(generator ports.TextGenerator, logger *slog.Logger) AskCargoBotQueryHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return AskCargoBotQueryHandler{
		generator: generator,
		logger:    logger.With("component", "cargobot"),
	}
}

// Handle asks the generator and never fails because of it.
func (h AskCargoBotQueryHandler) Handle(ctx context.Context, query AskCargoBotQuery) (Reply, error) {
	if err := query.Validate(); err != nil {
		return Reply{}, err
	}

	generation := h.generator.Generate(ctx, cargoBotPrompt+query.Message())
	if generation.Outcome != ports.Success {
		h.logger.WarnContext(ctx, "no chat answer",
			"outcome", generation.Outcome.String(),
			"error", generation.Err)
		return Reply{Outcome: generation.Outcome, Text: FallbackReply}, nil
	}

	return Reply{Outcome: ports.Success, Text: generation.Text}, nil
}
