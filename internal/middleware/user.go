package middleware

import (
	"vocadrill/internal/repository"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// UserMiddleware lazily creates the user row on first contact and stashes
// the loaded user in the update context for the handlers. Every update
// re-reads the row, so the reply language always reflects what is
// persisted.
func UserMiddleware(users repository.UserRepository, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			user, created, err := users.GetOrCreate(c.Sender().ID)
			if err != nil {
				logger.Error("failed to get or create user",
					zap.Error(err),
					zap.Int64("telegram_id", c.Sender().ID),
				)
				return c.Send("Something went wrong. Please try again later.")
			}

			if created {
				logger.Info("new user registered",
					zap.Int64("telegram_id", c.Sender().ID),
					zap.Int64("user_id", user.ID),
				)
			}

			c.Set("user", user)
			return next(c)
		}
	}
}
