package testutil

import (
	"context"

	"vocadrill/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetOrCreate(telegramID int64) (*domain.User, bool, error) {
	args := m.Called(telegramID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Bool(1), args.Error(2)
}

func (m *MockUserRepository) SetLanguage(userID int64, language string) error {
	args := m.Called(userID, language)
	return args.Error(0)
}

func (m *MockUserRepository) GetLanguage(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

// MockWordRepository is a mock for repository.WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) GetOrCreate(left, right string, userID int64) (*domain.WordPair, bool, error) {
	args := m.Called(left, right, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.WordPair), args.Bool(1), args.Error(2)
}

func (m *MockWordRepository) AllTranslations(left string, userID int64) ([]string, error) {
	args := m.Called(left, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockWordRepository) GetRandomPair(userID int64) (*domain.TrainingWord, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainingWord), args.Error(1)
}

// MockSessionStore is a mock for session.Store
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) SetState(ctx context.Context, chatID int64, state domain.ConversationState) error {
	args := m.Called(ctx, chatID, state)
	return args.Error(0)
}

func (m *MockSessionStore) GetState(ctx context.Context, chatID int64) (string, error) {
	args := m.Called(ctx, chatID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Clear(ctx context.Context, chatID int64) error {
	args := m.Called(ctx, chatID)
	return args.Error(0)
}

func (m *MockSessionStore) PushTranslations(ctx context.Context, chatID int64, translations []string) error {
	args := m.Called(ctx, chatID, translations)
	return args.Error(0)
}

func (m *MockSessionStore) Translations(ctx context.Context, chatID int64) ([]string, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSessionStore) ClearTranslations(ctx context.Context, chatID int64) error {
	args := m.Called(ctx, chatID)
	return args.Error(0)
}

func (m *MockSessionStore) IncrementClue(ctx context.Context, chatID int64) (int, error) {
	args := m.Called(ctx, chatID)
	return args.Int(0), args.Error(1)
}

func (m *MockSessionStore) ClueCount(ctx context.Context, chatID int64) (int, error) {
	args := m.Called(ctx, chatID)
	return args.Int(0), args.Error(1)
}

func (m *MockSessionStore) ClearClue(ctx context.Context, chatID int64) error {
	args := m.Called(ctx, chatID)
	return args.Error(0)
}
