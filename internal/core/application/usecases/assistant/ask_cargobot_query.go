// Package assistant contains the generative-text helpers of the marketing site:
// the CargoBot chat and the packaging advisor. Both treat the text service as
// optional; its failures come back as an Outcome, never as an error.
package assistant

import (
	"errors"
	"strings"

	"cargofresh/internal/pkg/errs"
	"cargofresh/internal/pkg/guard"
)

var (
	ErrAskCargoBotQueryIsNotConstructed = errors.New(
		"AskCargoBotQuery must be created via NewAskCargoBotQuery constructor",
	)
)

// AskCargoBotQuery is one message typed into the chat widget.
//
// Example:
//
//	query, err := NewAskCargoBotQuery("¿Llegan a Los Cabos?")
//	if err != nil {
//	    return err
//	}
//
//	reply, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if reply.Outcome != ports.Success {
//	    // show the fallback line instead
//	}
type AskCargoBotQuery struct {
	message string

	guard guard.ConstructorGuard
}

// NewAskCargoBotQuery rejects blank messages.
func NewAskCargoBotQuery(message string) (AskCargoBotQuery, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return AskCargoBotQuery{}, errs.NewValueIsRequiredError("message")
	}

	return AskCargoBotQuery{
		message: message,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AskCargoBotQuery) Validate() error {
	return q.guard.Validate(ErrAskCargoBotQueryIsNotConstructed)
}

// Message returns the trimmed visitor message.
func (q AskCargoBotQuery) Message() string {
	return q.message
}
