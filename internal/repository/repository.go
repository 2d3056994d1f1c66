package repository

import (
	"vocadrill/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	GetOrCreate(telegramID int64) (*domain.User, bool, error)
	SetLanguage(userID int64, language string) error
	GetLanguage(userID int64) (string, error)
}

// WordRepository defines word pair data operations
type WordRepository interface {
	GetOrCreate(left, right string, userID int64) (*domain.WordPair, bool, error)
	AllTranslations(left string, userID int64) ([]string, error)
	GetRandomPair(userID int64) (*domain.TrainingWord, error)
}
