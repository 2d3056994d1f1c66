package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoWords means the user has no word pairs to train on.
	ErrNoWords = errors.New("no word pairs stored for user")

	// ErrSessionExpired means the training state is present but the active
	// translation set is gone (TTL lapsed or data lost).
	ErrSessionExpired = errors.New("training session expired")

	// ErrStateMismatch means the requested action is not legal in the
	// chat's current state.
	ErrStateMismatch = errors.New("action not allowed in current state")

	// ErrCorruptState means the stored state value is not a recognized
	// member of ConversationState.
	ErrCorruptState = errors.New("stored conversation state is not recognized")
)

// ValidationError reports malformed user input, such as a word pair without
// a separator. The user keeps their state and may retry.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}
