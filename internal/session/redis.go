package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"vocadrill/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on a single Redis database.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a session store with the given key prefix and
// state TTL.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// SetState writes the state scalar with a fresh TTL
func (s *RedisStore) SetState(ctx context.Context, chatID int64, state domain.ConversationState) error {
	return s.client.Set(ctx, s.stateKey(chatID), string(state), s.ttl).Err()
}

// GetState returns the raw stored state, "" when absent
func (s *RedisStore) GetState(ctx context.Context, chatID int64) (string, error) {
	value, err := s.client.Get(ctx, s.stateKey(chatID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Clear deletes the state scalar and the translation list
func (s *RedisStore) Clear(ctx context.Context, chatID int64) error {
	return s.client.Del(ctx, s.stateKey(chatID), s.translationsKey(chatID)).Err()
}

// PushTranslations appends translations to the chat's active list
func (s *RedisStore) PushTranslations(ctx context.Context, chatID int64, translations []string) error {
	if len(translations) == 0 {
		return nil
	}
	values := make([]interface{}, len(translations))
	for i, t := range translations {
		values[i] = t
	}
	return s.client.RPush(ctx, s.translationsKey(chatID), values...).Err()
}

// Translations returns the chat's active translation list in push order
func (s *RedisStore) Translations(ctx context.Context, chatID int64) ([]string, error) {
	return s.client.LRange(ctx, s.translationsKey(chatID), 0, -1).Result()
}

// ClearTranslations drops the chat's active translation list
func (s *RedisStore) ClearTranslations(ctx context.Context, chatID int64) error {
	return s.client.Del(ctx, s.translationsKey(chatID)).Err()
}

// IncrementClue bumps the clue counter and returns the new value. A plain
// GET/SET pair, not INCR: events for one chat are handled sequentially, so
// the extra round trip is harmless.
func (s *RedisStore) IncrementClue(ctx context.Context, chatID int64) (int, error) {
	count, err := s.ClueCount(ctx, chatID)
	if err != nil {
		return 0, err
	}

	count++
	if err := s.client.Set(ctx, s.clueKey(chatID), count, 0).Err(); err != nil {
		return 0, err
	}
	return count, nil
}

// ClueCount returns the clue counter, 0 when absent
func (s *RedisStore) ClueCount(ctx context.Context, chatID int64) (int, error) {
	value, err := s.client.Get(ctx, s.clueKey(chatID)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	count, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("clue counter for chat %d is not a number: %w", chatID, err)
	}
	return count, nil
}

// ClearClue deletes the clue counter
func (s *RedisStore) ClearClue(ctx context.Context, chatID int64) error {
	return s.client.Del(ctx, s.clueKey(chatID)).Err()
}

func (s *RedisStore) stateKey(chatID int64) string {
	return fmt.Sprintf("%suser:%d", s.prefix, chatID)
}

func (s *RedisStore) translationsKey(chatID int64) string {
	return s.stateKey(chatID) + ":translations"
}

func (s *RedisStore) clueKey(chatID int64) string {
	return s.stateKey(chatID) + ":clue"
}
