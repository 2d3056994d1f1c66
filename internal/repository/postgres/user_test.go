package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

const userColumns = "id, telegram_id, best_score, language, created_at"

func userRow(id, telegramID int64, language string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "telegram_id", "best_score", "language", "created_at"}).
		AddRow(id, telegramID, 0, language, time.Now())
}

func TestUserRepo_GetOrCreate_Existing(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)
	telegramID := int64(123)

	mock.ExpectQuery("SELECT " + userColumns + " FROM users WHERE telegram_id").
		WithArgs(telegramID).
		WillReturnRows(userRow(1, telegramID, "en"))

	user, created, err := repo.GetOrCreate(telegramID)

	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, telegramID, user.TelegramID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetOrCreate_New(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)
	telegramID := int64(123)

	mock.ExpectQuery("SELECT " + userColumns + " FROM users WHERE telegram_id").
		WithArgs(telegramID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(telegramID).
		WillReturnRows(userRow(1, telegramID, "en"))

	user, created, err := repo.GetOrCreate(telegramID)

	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(1), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetOrCreate_ConcurrentInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)
	telegramID := int64(123)

	// Another writer wins the insert race; the unique violation falls
	// back to a re-fetch and both callers converge on the same row.
	mock.ExpectQuery("SELECT " + userColumns + " FROM users WHERE telegram_id").
		WithArgs(telegramID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(telegramID).
		WillReturnError(&pq.Error{Code: uniqueViolation})
	mock.ExpectQuery("SELECT " + userColumns + " FROM users WHERE telegram_id").
		WithArgs(telegramID).
		WillReturnRows(userRow(1, telegramID, "en"))

	user, created, err := repo.GetOrCreate(telegramID)

	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(1), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_SetLanguage(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectExec("UPDATE users SET language").
		WithArgs("ru", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SetLanguage(1, "ru")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetLanguage(t *testing.T) {
	tests := []struct {
		name     string
		rows     *sqlmock.Rows
		noRows   bool
		expected string
	}{
		{
			name:     "language set",
			rows:     sqlmock.NewRows([]string{"language"}).AddRow("uk"),
			expected: "uk",
		},
		{
			name:     "missing user reads as unset",
			noRows:   true,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			expectation := mock.ExpectQuery("SELECT language FROM users").WithArgs(int64(1))
			if tt.noRows {
				expectation.WillReturnError(sql.ErrNoRows)
			} else {
				expectation.WillReturnRows(tt.rows)
			}

			language, err := repo.GetLanguage(1)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, language)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
