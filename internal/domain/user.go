package domain

import "time"

// User represents a bot user, created lazily on first interaction.
type User struct {
	ID         int64
	TelegramID int64
	BestScore  int
	Language   string
	CreatedAt  time.Time
}
