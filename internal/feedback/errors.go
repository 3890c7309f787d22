package feedback

import "fmt"

// PromptError represents a failure to render a generator prompt
type PromptError struct {
	Message string
	Cause   error
}

func (e *PromptError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("prompt error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("prompt error: %s", e.Message)
}

func (e *PromptError) Unwrap() error {
	return e.Cause
}

// GenerationError represents a failure of the text generator
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
