package testutil

import (
	"time"

	"vocadrill/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(id, telegramID int64, language string) *domain.User {
	return &domain.User{
		ID:         id,
		TelegramID: telegramID,
		Language:   language,
		CreatedAt:  time.Now(),
	}
}

// NewTestPair creates a test word pair
func NewTestPair(id, userID int64, left, right string) *domain.WordPair {
	return &domain.WordPair{
		ID:        id,
		UserID:    userID,
		LeftWord:  left,
		RightWord: right,
		AddedAt:   time.Now(),
	}
}

// NewTestTrainingWord creates a test pair decorated with translations
func NewTestTrainingWord(id, userID int64, left string, translations ...string) *domain.TrainingWord {
	right := ""
	if len(translations) > 0 {
		right = translations[0]
	}
	return &domain.TrainingWord{
		WordPair:     *NewTestPair(id, userID, left, right),
		Translations: translations,
	}
}
