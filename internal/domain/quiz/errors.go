package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks recoverable input problems; the session is unchanged.
	ErrValidation = errors.New("invalid answer")
	// ErrProtocol marks a transition requested in the wrong state.
	ErrProtocol = errors.New("invalid session transition")

	ErrUnknownMode = errors.New("unknown mode")
)

var (
	ErrNoSelection = fmt.Errorf("%w: no option selected", ErrValidation)

	ErrAlreadySubmitted = fmt.Errorf("%w: answer already submitted", ErrProtocol)
	ErrNotSubmitted     = fmt.Errorf("%w: no answer submitted yet", ErrProtocol)
	ErrFinished         = fmt.Errorf("%w: session finished", ErrProtocol)
)
