package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"studjournal/internal/callback"
	"studjournal/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// showProfile renders the profile screen: group plus the upcoming study day
func (h *Handler) showProfile(c tele.Context, userID int64) error {
	user, err := h.userService.EnsureUser(userID)
	if err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return h.respondError(c, internalError)
	}

	kb := newKeyboard(1)
	kb.button("📊 Мои баллы", callback.MenuToken{Action: callback.MenuPoints, UserID: userID})
	kb.button("👥 Сменить группу", callback.MenuToken{Action: callback.MenuChangeGroup, UserID: userID})
	markup, err := kb.done()
	if err != nil {
		h.logger.Error("Failed to build profile keyboard", zap.Error(err))
		return h.respondError(c, internalError)
	}

	return h.render(c, profileText(*user, h.scheduleLine(user)), markup)
}

// scheduleLine fetches the user's timetable, degrading to a fixed line when
// the group is unset or the upstream is down
func (h *Handler) scheduleLine(user *domain.User) string {
	if !user.HasGroup() {
		return "📅 Выберите группу, чтобы видеть расписание"
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.scheduleService.FetchBudget())
	defer cancel()

	text, err := h.scheduleService.UpcomingForGroup(ctx, user.Group)
	if err != nil {
		return "📅 Расписание недоступно"
	}
	return text
}

func profileText(user domain.User, scheduleText string) string {
	return fmt.Sprintf("👤 Профиль:\n👥 Группа: %s\n\n%s", user.Group, scheduleText)
}

// showPoints renders the points overview screen
func (h *Handler) showPoints(c tele.Context, userID int64) error {
	overview, err := h.pointsService.Overview(userID)
	if err != nil {
		h.logger.Error("Failed to get points overview", zap.Error(err))
		return h.respondError(c, "Ошибка при загрузке данных")
	}

	kb := newKeyboard(1)
	kb.button("➕ Добавить баллы", callback.PointsToken{Action: callback.PointsAdd, UserID: userID})
	kb.button("➖ Удалить баллы", callback.PointsToken{Action: callback.PointsDelete, UserID: userID})
	kb.button("🔍 Подробнее", callback.MenuToken{Action: callback.MenuMoreDetails, UserID: userID})
	kb.back(callback.MenuToken{Action: callback.MenuProfile, UserID: userID})
	markup, err := kb.done()
	if err != nil {
		h.logger.Error("Failed to build points keyboard", zap.Error(err))
		return h.respondError(c, "Произошла ошибка")
	}

	return h.render(c, pointsOverviewText(overview), markup)
}

func pointsOverviewText(overview []domain.CoursePoints) string {
	var b strings.Builder
	b.WriteString("📊 Мои баллы:\n\n")
	if len(overview) == 0 {
		b.WriteString("📚 Нет данных")
		return b.String()
	}
	for _, course := range overview {
		counts := make([]string, 0, len(course.Counts))
		for _, n := range course.Counts {
			counts = append(counts, strconv.Itoa(n))
		}
		fmt.Fprintf(&b, "📚 %s: %s | %d\n", course.Course, strings.Join(counts, " "), course.Total())
	}
	return strings.TrimRight(b.String(), "\n")
}

// respondError answers a callback with an alert, or replies in chat when
// the event was not a button press
func (h *Handler) respondError(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text})
	}
	return c.Send(text)
}
