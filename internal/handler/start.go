package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	return h.showProfile(c, userID)
}

// handleGroupCommand handles /group command
func (h *Handler) handleGroupCommand(c tele.Context) error {
	return h.showGroupMenu(c, c.Chat().ID, c.Sender().ID)
}
