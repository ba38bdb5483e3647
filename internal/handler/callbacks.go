package handler

import (
	"studjournal/internal/callback"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	deniedText    = "⚠️ Кнопка не распознана"
	notYoursText  = "⚠️ Это не твоя кнопка"
	internalError = "Произошла ошибка. Попробуйте позже."
)

// handleNav decodes the pressed button's token and dispatches to the screen
// it addresses. A malformed or tampered token is answered with a denial and
// mutates nothing.
func (h *Handler) handleNav(c tele.Context) error {
	data := cleanCallbackData(c.Data())

	token, err := callback.Decode(data)
	if err != nil {
		h.logger.Warn("Failed to decode callback token",
			zap.String("data", data),
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{Text: deniedText})
	}

	senderID := c.Sender().ID

	switch t := token.(type) {
	case callback.MenuToken:
		if t.UserID != senderID {
			return c.Respond(&tele.CallbackResponse{Text: notYoursText})
		}
		switch t.Action {
		case callback.MenuProfile:
			return h.showProfile(c, senderID)
		case callback.MenuPoints:
			return h.showPoints(c, senderID)
		case callback.MenuMoreDetails:
			return h.showDetailsCourses(c, senderID)
		case callback.MenuChangeGroup:
			return h.showFacultyPicker(c, senderID)
		}

	case callback.PointsToken:
		if t.UserID != senderID {
			return c.Respond(&tele.CallbackResponse{Text: notYoursText})
		}
		return h.showCoursePicker(c, senderID, t.Action)

	case callback.CourseToken:
		if t.UserID != senderID {
			return c.Respond(&tele.CallbackResponse{Text: notYoursText})
		}
		return h.handleCourse(c, t)

	case callback.GroupSelectToken:
		if t.UserID != senderID {
			return c.Respond(&tele.CallbackResponse{Text: notYoursText})
		}
		return h.handleGroupSelect(c, t)

	case callback.GroupMenuToken:
		if t.ChatID != c.Chat().ID {
			return c.Respond(&tele.CallbackResponse{Text: notYoursText})
		}
		return h.handleGroupMenu(c, t)
	}

	return c.Respond(&tele.CallbackResponse{Text: deniedText})
}

// handleCourse routes per-course actions
func (h *Handler) handleCourse(c tele.Context, t callback.CourseToken) error {
	switch t.Action {
	case callback.CourseAddPoints:
		return h.showCountPicker(c, t.UserID, t.Course)
	case callback.CourseAddCourse:
		return h.promptCourseName(c, t.UserID)
	case callback.CourseInc:
		return h.addPoint(c, t)
	case callback.CourseDelete:
		return h.showDeleteList(c, t)
	case callback.CourseDeleteConfirm:
		return h.deletePoint(c, t)
	case callback.CourseDeleteAll:
		return h.deleteAllForCourse(c, t)
	case callback.CourseDesc:
		return h.promptDescription(c, t)
	case callback.CourseMoreDetails:
		return h.showDetailsRecords(c, t)
	case callback.CourseMoreDetailsConfirm:
		return h.showRecordCard(c, t)
	}
	return c.Respond(&tele.CallbackResponse{Text: deniedText})
}

// handleUnknownCallback acknowledges button presses that carry no
// recognizable navigation payload
func (h *Handler) handleUnknownCallback(c tele.Context) error {
	h.logger.Warn("Unhandled callback",
		zap.String("data", c.Data()),
		zap.Int64("user_id", c.Sender().ID),
	)
	return c.Respond(&tele.CallbackResponse{Text: deniedText})
}
