package postgres

import (
	"database/sql"
	"errors"

	"vocadrill/internal/domain"

	"github.com/lib/pq"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// GetOrCreate stores a word pair for the user, keyed on the
// (left_word, right_word, user_id) uniqueness invariant. An identical pair
// that already exists is returned as-is with created=false; a unique
// violation during insert falls back to a re-fetch.
func (r *WordRepo) GetOrCreate(left, right string, userID int64) (*domain.WordPair, bool, error) {
	pair, err := r.getByTriple(left, right, userID)
	if err == nil {
		return pair, false, nil
	}
	if err != sql.ErrNoRows {
		return nil, false, err
	}

	query := `
		INSERT INTO words (left_word, right_word, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, left_word, right_word, added_at
	`
	var w domain.WordPair
	err = r.db.QueryRow(query, left, right, userID).Scan(
		&w.ID, &w.UserID, &w.LeftWord, &w.RightWord, &w.AddedAt,
	)
	if err == nil {
		return &w, true, nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		pair, err = r.getByTriple(left, right, userID)
		return pair, false, err
	}

	return nil, false, err
}

// AllTranslations returns every right side the user stored for the left
// word, in insertion order and with the case as originally stored.
func (r *WordRepo) AllTranslations(left string, userID int64) ([]string, error) {
	query := `
		SELECT right_word
		FROM words
		WHERE left_word = $1 AND user_id = $2
		ORDER BY id
	`
	rows, err := r.db.Query(query, left, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var translations []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		translations = append(translations, t)
	}

	return translations, rows.Err()
}

// GetRandomPair draws one of the user's pairs uniformly at random and
// decorates it with the full translation set for its left word. Returns
// nil when the user has no pairs.
func (r *WordRepo) GetRandomPair(userID int64) (*domain.TrainingWord, error) {
	var w domain.TrainingWord
	query := `
		SELECT id, user_id, left_word, right_word, added_at
		FROM words
		WHERE user_id = $1
		ORDER BY RANDOM()
		LIMIT 1
	`
	err := r.db.QueryRow(query, userID).Scan(
		&w.ID, &w.UserID, &w.LeftWord, &w.RightWord, &w.AddedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	translations, err := r.AllTranslations(w.LeftWord, userID)
	if err != nil {
		return nil, err
	}
	w.Translations = translations

	return &w, nil
}

func (r *WordRepo) getByTriple(left, right string, userID int64) (*domain.WordPair, error) {
	var w domain.WordPair
	query := `
		SELECT id, user_id, left_word, right_word, added_at
		FROM words
		WHERE left_word = $1 AND right_word = $2 AND user_id = $3
	`
	err := r.db.QueryRow(query, left, right, userID).Scan(
		&w.ID, &w.UserID, &w.LeftWord, &w.RightWord, &w.AddedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
