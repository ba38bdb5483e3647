package middleware

import (
	"studjournal/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// EnsureProfile creates the sender's profile with the default group on
// first contact, so every screen handler can rely on it existing
func EnsureProfile(userService *service.UserService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil {
				return next(c)
			}

			if _, err := userService.EnsureUser(c.Sender().ID); err != nil {
				logger.Error("Failed to ensure user exists in middleware",
					zap.Int64("user_id", c.Sender().ID),
					zap.Error(err),
				)
				return c.Send("Произошла ошибка. Попробуйте позже.")
			}

			return next(c)
		}
	}
}
