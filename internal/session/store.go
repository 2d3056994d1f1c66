package session

import (
	"context"

	"vocadrill/internal/domain"
)

// Store holds the transient per-chat data: the conversation state scalar,
// the translation list for the word currently being drilled, and the clue
// counter. Keys are namespaced by chat id; only the state key carries the
// TTL. No guarantee spans two operations: a reader racing a writer between
// a clear and a push sees a transiently inconsistent view.
type Store interface {
	// SetState writes the state scalar and restarts its TTL. The TTL is
	// refreshed on write only; reads never extend a session.
	SetState(ctx context.Context, chatID int64, state domain.ConversationState) error

	// GetState returns the stored raw value, or "" when the key is absent
	// or expired. Callers parse it; an unknown value means corruption.
	GetState(ctx context.Context, chatID int64) (string, error)

	// Clear deletes the state scalar and the translation list. The clue
	// counter stays; callers that want it gone clear it explicitly.
	Clear(ctx context.Context, chatID int64) error

	PushTranslations(ctx context.Context, chatID int64, translations []string) error
	Translations(ctx context.Context, chatID int64) ([]string, error)
	ClearTranslations(ctx context.Context, chatID int64) error

	// IncrementClue bumps the clue counter and returns the new value. The
	// read-modify-write is not a single round trip; events for one chat
	// must arrive sequentially or increments can be lost.
	IncrementClue(ctx context.Context, chatID int64) (int, error)
	ClueCount(ctx context.Context, chatID int64) (int, error)
	ClearClue(ctx context.Context, chatID int64) error
}
