package service

import (
	"strings"

	"vocadrill/internal/domain"
	"vocadrill/internal/repository"
)

// PairSeparator splits the prompt word from its translation in user input.
const PairSeparator = "-"

// WordService handles word pair registration.
type WordService struct {
	words repository.WordRepository
}

// NewWordService creates a new word service
func NewWordService(words repository.WordRepository) *WordService {
	return &WordService{words: words}
}

// ParseWordPair splits raw input into the two trimmed sides. The input must
// contain the separator and both sides must be non-empty. The split happens
// at the first separator, so translations may themselves contain dashes.
func ParseWordPair(text string) (left, right string, err error) {
	if !strings.Contains(text, PairSeparator) {
		return "", "", &domain.ValidationError{
			Reason: "the message must contain a '" + PairSeparator + "' separator",
		}
	}

	parts := strings.SplitN(text, PairSeparator, 2)
	left = strings.TrimSpace(parts[0])
	right = strings.TrimSpace(parts[1])
	if left == "" || right == "" {
		return "", "", &domain.ValidationError{
			Reason: "both sides of the pair must be non-empty",
		}
	}

	return left, right, nil
}

// AddWordPair parses and stores a pair for the user. The bool reports
// whether the pair was newly created; an existing identical pair is not an
// error.
func (s *WordService) AddWordPair(userID int64, text string) (*domain.WordPair, bool, error) {
	left, right, err := ParseWordPair(text)
	if err != nil {
		return nil, false, err
	}
	return s.words.GetOrCreate(left, right, userID)
}
