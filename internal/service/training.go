package service

import (
	"context"
	"strings"

	"vocadrill/internal/domain"
	"vocadrill/internal/repository"
	"vocadrill/internal/session"

	"go.uber.org/zap"
)

// MaskRune is the placeholder for letters a clue has not revealed yet.
const MaskRune = '*'

// TrainingService orchestrates draw, answer check and clue reveal. It keeps
// no state of its own: everything lives in the session store and the word
// repository.
type TrainingService struct {
	words    repository.WordRepository
	sessions session.Store
	logger   *zap.Logger
}

// NewTrainingService creates a new training service
func NewTrainingService(words repository.WordRepository, sessions session.Store, logger *zap.Logger) *TrainingService {
	return &TrainingService{
		words:    words,
		sessions: sessions,
		logger:   logger,
	}
}

// StartSession draws a random pair and arms the chat for training: the
// stale translation list is dropped and the lowercased translation set of
// the new word is pushed. Calling it while a word is already in flight
// silently replaces that word. Returns domain.ErrNoWords when the user has
// nothing to train on; the chat is then parked in Idle.
func (s *TrainingService) StartSession(ctx context.Context, chatID, userID int64) (string, error) {
	word, err := s.words.GetRandomPair(userID)
	if err != nil {
		return "", err
	}
	if word == nil {
		if err := s.sessions.SetState(ctx, chatID, domain.StateIdle); err != nil {
			return "", err
		}
		return "", domain.ErrNoWords
	}

	if err := s.sessions.SetState(ctx, chatID, domain.StateTraining); err != nil {
		return "", err
	}
	if err := s.sessions.ClearTranslations(ctx, chatID); err != nil {
		return "", err
	}

	lowered := make([]string, len(word.Translations))
	for i, t := range word.Translations {
		lowered[i] = strings.ToLower(t)
	}
	if err := s.sessions.PushTranslations(ctx, chatID, lowered); err != nil {
		return "", err
	}

	s.logger.Debug("training word drawn",
		zap.Int64("chat_id", chatID),
		zap.Int("translations", len(lowered)),
	)

	return word.LeftWord, nil
}

// AnswerResult is the outcome of judging one answer.
type AnswerResult struct {
	Correct bool
	// Others lists the remaining accepted translations after a correct
	// answer to a word that has more than one.
	Others []string
	// All lists every accepted translation after a wrong answer.
	All []string
}

// CheckAnswer judges a free-text answer against the active translation set.
// The answer is trimmed and case-folded before the membership test. Returns
// domain.ErrSessionExpired when no set is active; the chat is then parked
// in Idle. Whatever the outcome, the caller is expected to start the next
// session right after: this engine does not chain on its own.
func (s *TrainingService) CheckAnswer(ctx context.Context, chatID int64, rawAnswer string) (*AnswerResult, error) {
	translations, err := s.sessions.Translations(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if len(translations) == 0 {
		if err := s.sessions.SetState(ctx, chatID, domain.StateIdle); err != nil {
			return nil, err
		}
		return nil, domain.ErrSessionExpired
	}

	answer := strings.ToLower(strings.TrimSpace(rawAnswer))
	for _, t := range translations {
		if t != answer {
			continue
		}
		if len(translations) > 1 {
			others := make([]string, 0, len(translations)-1)
			for _, other := range translations {
				if other != answer {
					others = append(others, other)
				}
			}
			// More correct forms stay undisclosed, so the clue
			// counter survives.
			return &AnswerResult{Correct: true, Others: others}, nil
		}
		if err := s.sessions.ClearClue(ctx, chatID); err != nil {
			return nil, err
		}
		return &AnswerResult{Correct: true}, nil
	}

	if err := s.sessions.ClearClue(ctx, chatID); err != nil {
		return nil, err
	}
	return &AnswerResult{Correct: false, All: translations}, nil
}

// ClueResult carries either a masked rendering of the target word or, once
// the counter would reveal every letter, the full translation set.
type ClueResult struct {
	Masked string
	// Exhausted is set when all letters would be revealed; All then
	// holds the translations and the caller should chain to the next
	// word.
	Exhausted bool
	All       []string
}

// RequestClue reveals one more letter of the first active translation.
// Only legal while the chat is training, otherwise domain.ErrStateMismatch.
// An expired translation set is reported as domain.ErrSessionExpired so
// the caller can start a fresh session instead of erroring at the user.
func (s *TrainingService) RequestClue(ctx context.Context, chatID int64) (*ClueResult, error) {
	raw, err := s.sessions.GetState(ctx, chatID)
	if err != nil {
		return nil, err
	}
	state, err := domain.ParseState(raw)
	if err != nil || state != domain.StateTraining {
		return nil, domain.ErrStateMismatch
	}

	translations, err := s.sessions.Translations(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if len(translations) == 0 {
		return nil, domain.ErrSessionExpired
	}

	// The first translation is always the clue target.
	target := translations[0]

	count, err := s.sessions.IncrementClue(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if count >= len([]rune(target)) {
		if err := s.sessions.ClearClue(ctx, chatID); err != nil {
			return nil, err
		}
		return &ClueResult{Exhausted: true, All: translations}, nil
	}

	return &ClueResult{Masked: MaskWord(target, count)}, nil
}

// MaskWord renders the word with count letters revealed: the first letter
// alone at count 1, then letters from both ends, the tail growing at half
// the rate of the head. Operates on runes so non-ASCII words keep their
// length. count must be at least 1; at len(word) or above the word comes
// back unmasked.
func MaskWord(word string, count int) string {
	runes := []rune(word)
	n := len(runes)

	if count >= n {
		return word
	}
	if count == 1 {
		return string(runes[0]) + strings.Repeat(string(MaskRune), n-1)
	}

	head := count - count/2
	tail := count / 2
	return string(runes[:head]) +
		strings.Repeat(string(MaskRune), n-count) +
		string(runes[n-tail:])
}
