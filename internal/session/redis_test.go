package session

import (
	"context"
	"testing"
	"time"

	"vocadrill/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(client, "test:", ttl), mr
}

func TestRedisStore_State(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	ctx := context.Background()
	chatID := int64(42)

	// Absent key reads as empty, not as an error.
	state, err := store.GetState(ctx, chatID)
	assert.NoError(t, err)
	assert.Empty(t, state)

	err = store.SetState(ctx, chatID, domain.StateTraining)
	assert.NoError(t, err)

	state, err = store.GetState(ctx, chatID)
	assert.NoError(t, err)
	assert.Equal(t, string(domain.StateTraining), state)

	// Distinct chats do not share state.
	state, err = store.GetState(ctx, chatID+1)
	assert.NoError(t, err)
	assert.Empty(t, state)
}

func TestRedisStore_StateExpires(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()
	chatID := int64(42)

	assert.NoError(t, store.SetState(ctx, chatID, domain.StateTraining))

	mr.FastForward(30 * time.Second)

	// A read does not extend the TTL.
	state, err := store.GetState(ctx, chatID)
	assert.NoError(t, err)
	assert.Equal(t, string(domain.StateTraining), state)

	mr.FastForward(31 * time.Second)

	state, err = store.GetState(ctx, chatID)
	assert.NoError(t, err)
	assert.Empty(t, state)
}

func TestRedisStore_SetStateRefreshesTTL(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()
	chatID := int64(42)

	assert.NoError(t, store.SetState(ctx, chatID, domain.StateTraining))
	mr.FastForward(45 * time.Second)

	// The write restarts the clock.
	assert.NoError(t, store.SetState(ctx, chatID, domain.StateTraining))
	mr.FastForward(45 * time.Second)

	state, err := store.GetState(ctx, chatID)
	assert.NoError(t, err)
	assert.Equal(t, string(domain.StateTraining), state)
}

func TestRedisStore_Translations(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	ctx := context.Background()
	chatID := int64(42)

	translations, err := store.Translations(ctx, chatID)
	assert.NoError(t, err)
	assert.Empty(t, translations)

	err = store.PushTranslations(ctx, chatID, []string{"кот", "кошка"})
	assert.NoError(t, err)

	translations, err = store.Translations(ctx, chatID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"кот", "кошка"}, translations)

	// Pushing appends, order preserved.
	assert.NoError(t, store.PushTranslations(ctx, chatID, []string{"котик"}))
	translations, err = store.Translations(ctx, chatID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"кот", "кошка", "котик"}, translations)

	assert.NoError(t, store.ClearTranslations(ctx, chatID))
	translations, err = store.Translations(ctx, chatID)
	assert.NoError(t, err)
	assert.Empty(t, translations)
}

func TestRedisStore_ClueCounter(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	ctx := context.Background()
	chatID := int64(42)

	count, err := store.ClueCount(ctx, chatID)
	assert.NoError(t, err)
	assert.Equal(t, 0, count)

	for want := 1; want <= 3; want++ {
		count, err = store.IncrementClue(ctx, chatID)
		assert.NoError(t, err)
		assert.Equal(t, want, count)
	}

	assert.NoError(t, store.ClearClue(ctx, chatID))

	count, err = store.ClueCount(ctx, chatID)
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRedisStore_ClearKeepsClueCounter(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	ctx := context.Background()
	chatID := int64(42)

	assert.NoError(t, store.SetState(ctx, chatID, domain.StateTraining))
	assert.NoError(t, store.PushTranslations(ctx, chatID, []string{"кот"}))
	_, err := store.IncrementClue(ctx, chatID)
	assert.NoError(t, err)

	assert.NoError(t, store.Clear(ctx, chatID))

	state, err := store.GetState(ctx, chatID)
	assert.NoError(t, err)
	assert.Empty(t, state)

	translations, err := store.Translations(ctx, chatID)
	assert.NoError(t, err)
	assert.Empty(t, translations)

	// The counter is cleared explicitly, never by Clear.
	count, err := store.ClueCount(ctx, chatID)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}
