package handler

import (
	"errors"
	"strconv"
	"strings"

	"studjournal/internal/callback"
	"studjournal/internal/service"
	"studjournal/internal/translit"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText consumes the pending free-text capture of the sender, if any,
// and resumes the suspended screen on its anchor message
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	p := h.takePending(userID)
	if p == nil {
		return c.Send("Отправьте /start, чтобы открыть меню.")
	}

	// The answer itself is consumed, the anchor message carries the result
	if err := c.Delete(); err != nil {
		h.logger.Debug("Failed to delete user reply", zap.Error(err))
	}

	switch p.Field {
	case fieldGroupName:
		return h.resumeGroupName(c, p, userID, text)
	case fieldCourseName:
		return h.resumeCourseName(c, p, userID, text)
	case fieldDescription:
		return h.resumeDescription(c, p, userID, text)
	case fieldCaptain, fieldDeputies, fieldMembers:
		return h.resumeGroupRoster(c, p, userID, text)
	}
	return nil
}

func (h *Handler) resumeGroupName(c tele.Context, p *pendingInput, userID int64, text string) error {
	if err := h.userService.ChangeGroup(userID, text); err != nil {
		h.logger.Error("Failed to change group", zap.Error(err))
		return h.editAnchor(c, p, "⚠️ Не удалось сменить группу. Попробуйте позже.", nil)
	}

	markup, err := backMarkup(callback.MenuToken{Action: callback.MenuProfile, UserID: userID})
	if err != nil {
		return h.editAnchor(c, p, internalError, nil)
	}
	return h.editAnchor(c, p, "✅ Группа успешно изменена!", markup)
}

func (h *Handler) resumeCourseName(c tele.Context, p *pendingInput, userID int64, text string) error {
	courseASCII := translit.ToASCII(text)

	// Probe the widest token the course will ride in before accepting it
	probe := callback.CourseToken{
		UserID:    userID,
		Action:    callback.CourseDeleteConfirm,
		Course:    courseASCII,
		Timestamp: 1 << 32,
		Count:     10,
		BackTo:    callback.PointsToken{Action: callback.PointsDelete, UserID: userID},
	}
	if _, err := callback.Encode(probe); err != nil {
		h.setPending(userID, p)
		return h.editAnchor(c, p, "⚠️ Название не подходит: слишком длинное или содержит недопустимые символы. Попробуйте другое:", nil)
	}

	kb := newKeyboard(5)
	for i := 1; i <= 10; i++ {
		kb.button(strconv.Itoa(i), callback.CourseToken{
			UserID: userID,
			Action: callback.CourseInc,
			Course: courseASCII,
			Count:  i,
		})
	}
	kb.back(callback.PointsToken{Action: callback.PointsAdd, UserID: userID})
	markup, err := kb.done()
	if err != nil {
		h.logger.Error("Failed to build count picker", zap.Error(err))
		return h.editAnchor(c, p, internalError, nil)
	}

	return h.editAnchor(c, p, "📊 Выберите количество баллов по предмету "+text+":", markup)
}

func (h *Handler) resumeDescription(c tele.Context, p *pendingInput, userID int64, text string) error {
	course := translit.FromASCII(p.Course)

	if err := h.pointsService.SetDescription(userID, course, p.Timestamp, text); err != nil {
		h.logger.Error("Failed to set description",
			zap.Int64("user_id", userID),
			zap.String("course", course),
			zap.Error(err),
		)
		return h.editAnchor(c, p, "⚠️ Не удалось сохранить описание.", nil)
	}

	backTo := p.BackTo
	if backTo == nil {
		backTo = callback.PointsToken{Action: callback.PointsAdd, UserID: userID}
	}
	markup, err := backMarkup(backTo)
	if err != nil {
		return h.editAnchor(c, p, internalError, nil)
	}
	return h.editAnchor(c, p, "✅ Описание успешно добавлено!", markup)
}

func (h *Handler) resumeGroupRoster(c tele.Context, p *pendingInput, userID int64, text string) error {
	chatID := c.Chat().ID

	var err error
	switch p.Field {
	case fieldCaptain:
		var newCaptain int64
		newCaptain, err = strconv.ParseInt(text, 10, 64)
		if err != nil {
			h.setPending(userID, p)
			return h.editAnchor(c, p, "⚠️ Отправьте один числовой ID:", nil)
		}
		err = h.groupService.SetCaptain(chatID, userID, newCaptain)
	case fieldDeputies:
		err = h.groupService.SetDeputies(chatID, userID, parseIDLines(text))
	case fieldMembers:
		err = h.groupService.SetMembers(chatID, userID, parseIDLines(text))
	}

	if errors.Is(err, service.ErrNotCaptain) {
		return h.editAnchor(c, p, "⚠️ Только староста может это сделать.", nil)
	}
	if err != nil {
		h.logger.Error("Failed to update group record", zap.Error(err))
		return h.editAnchor(c, p, internalError, nil)
	}

	text, markup, err := h.groupMenuView(chatID, userID)
	if err != nil {
		return h.editAnchor(c, p, internalError, nil)
	}
	return h.editAnchor(c, p, text, markup)
}

// editAnchor resumes the suspended screen by editing its anchor message
func (h *Handler) editAnchor(c tele.Context, p *pendingInput, text string, markup *tele.ReplyMarkup) error {
	if p.Anchor == nil {
		if markup != nil {
			return c.Send(text, markup)
		}
		return c.Send(text)
	}

	var err error
	if markup != nil {
		_, err = h.bot.Edit(p.Anchor, text, markup)
	} else {
		_, err = h.bot.Edit(p.Anchor, text)
	}
	if err != nil {
		h.logger.Warn("Failed to edit anchor message, sending new", zap.Error(err))
		if markup != nil {
			return c.Send(text, markup)
		}
		return c.Send(text)
	}
	return nil
}

func parseIDLines(text string) []int64 {
	var ids []int64
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if id, err := strconv.ParseInt(line, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
