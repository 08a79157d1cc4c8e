package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition signals an operation invoked in a game state
	// that does not permit it. Callers recover by re-fetching the game.
	ErrInvalidTransition = errors.New("invalid game state transition")

	// ErrUnknownSession signals that neither the session key nor the
	// backing user account could be resolved.
	ErrUnknownSession = errors.New("unknown session")

	// ErrContentUnavailable signals that the content source could not
	// supply candidates for a question.
	ErrContentUnavailable = errors.New("content source unavailable")
)

// ErrQuestionNotOnBoard is an ErrInvalidTransition sub-case: the chosen
// question is not an unplayed question on this session's board.
var ErrQuestionNotOnBoard = fmt.Errorf("question not on board or already played: %w", ErrInvalidTransition)
