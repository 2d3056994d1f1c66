package domain

// ConversationState is what the user is doing right now in a chat. It lives
// in the session store under a TTL; an absent value is a distinct condition
// and not the same as StateIdle.
type ConversationState string

const (
	StateIdle             ConversationState = "idle"
	StateAwaitingWordPair ConversationState = "awaiting_word_pair"
	StateTraining         ConversationState = "training"
	StateSwitchLanguage   ConversationState = "switch_language"
)

// ParseState maps a stored value back to a known state. A non-member value
// means the stored data is corrupt.
func ParseState(raw string) (ConversationState, error) {
	switch state := ConversationState(raw); state {
	case StateIdle, StateAwaitingWordPair, StateTraining, StateSwitchLanguage:
		return state, nil
	}
	return "", ErrCorruptState
}
