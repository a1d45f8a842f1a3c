package ports

import "context"

// Outcome classifies a text generation attempt.
type Outcome int

const (
	// Failure means the call failed or the response could not be read.
	Failure Outcome = iota
	// Empty means the service answered without text.
	Empty
	// Success means Text holds the answer.
	Success
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Empty:
		return "empty"
	case Failure:
		return "failure"
	}
	return "unknown"
}

// Generation is the result of one prompt. Err is set only for Failure.
type Generation struct {
	Outcome Outcome
	Text    string
	Err     error
}

// TextGenerator submits a prompt to a generative-language service.
// Implementations never return errors to callers; failures come back as a Failure Generation.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) Generation
}
