package service

import (
	"vocadrill/internal/domain"
	"vocadrill/internal/messages"
	"vocadrill/internal/repository"

	"go.uber.org/zap"
)

// LanguageService persists per-user interface language selection.
type LanguageService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

// NewLanguageService creates a new language service
func NewLanguageService(users repository.UserRepository, logger *zap.Logger) *LanguageService {
	return &LanguageService{
		users:  users,
		logger: logger,
	}
}

// Switch validates the requested language against the supported set and
// persists it. Validation happens before any write: an unsupported code is
// never stored.
func (s *LanguageService) Switch(userID int64, language string) error {
	if !messages.IsSupported(language) {
		return &domain.ValidationError{Reason: "unsupported language: " + language}
	}

	if err := s.users.SetLanguage(userID, language); err != nil {
		return err
	}

	s.logger.Info("user switched language",
		zap.Int64("user_id", userID),
		zap.String("language", language),
	)
	return nil
}
