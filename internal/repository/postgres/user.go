package postgres

import (
	"database/sql"
	"errors"

	"vocadrill/internal/domain"

	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetOrCreate returns the user for the Telegram account, inserting the row
// on first contact. Concurrent first contacts converge on the same row: a
// unique violation during insert falls back to a re-fetch by key.
func (r *UserRepo) GetOrCreate(telegramID int64) (*domain.User, bool, error) {
	user, err := r.getByTelegramID(telegramID)
	if err == nil {
		return user, false, nil
	}
	if err != sql.ErrNoRows {
		return nil, false, err
	}

	query := `
		INSERT INTO users (telegram_id, best_score)
		VALUES ($1, 0)
		RETURNING id, telegram_id, best_score, language, created_at
	`
	var u domain.User
	err = r.db.QueryRow(query, telegramID).Scan(
		&u.ID, &u.TelegramID, &u.BestScore, &u.Language, &u.CreatedAt,
	)
	if err == nil {
		return &u, true, nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		user, err = r.getByTelegramID(telegramID)
		return user, false, err
	}

	return nil, false, err
}

// SetLanguage persists the user's language selection
func (r *UserRepo) SetLanguage(userID int64, language string) error {
	query := `UPDATE users SET language = $1 WHERE id = $2`
	_, err := r.db.Exec(query, language, userID)
	return err
}

// GetLanguage returns the stored language code, empty when unset or when
// the user row is missing. Callers apply the fallback.
func (r *UserRepo) GetLanguage(userID int64) (string, error) {
	var language sql.NullString
	query := `SELECT language FROM users WHERE id = $1`
	err := r.db.QueryRow(query, userID).Scan(&language)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return language.String, nil
}

func (r *UserRepo) getByTelegramID(telegramID int64) (*domain.User, error) {
	var u domain.User
	query := `
		SELECT id, telegram_id, best_score, language, created_at
		FROM users
		WHERE telegram_id = $1
	`
	err := r.db.QueryRow(query, telegramID).Scan(
		&u.ID, &u.TelegramID, &u.BestScore, &u.Language, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
