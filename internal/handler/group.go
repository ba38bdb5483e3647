package handler

import (
	"context"
	"fmt"

	"studjournal/internal/callback"
	"studjournal/internal/domain"
	"studjournal/internal/translit"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// showFacultyPicker renders the first level of the group picker from the
// timetable directory, degrading to manual entry when the directory is down
func (h *Handler) showFacultyPicker(c tele.Context, userID int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), h.scheduleService.FetchBudget())
	defer cancel()

	backTo := callback.MenuToken{Action: callback.MenuProfile, UserID: userID}

	faculties, err := h.scheduleService.Faculties(ctx)
	if err != nil {
		h.logger.Warn("Faculty directory unavailable", zap.Error(err))

		kb := newKeyboard(1)
		kb.button("✏️ Ввести вручную", callback.GroupSelectToken{UserID: userID})
		kb.back(backTo)
		markup, err := kb.done()
		if err != nil {
			return h.respondError(c, internalError)
		}
		return h.render(c, "⚠️ Справочник групп недоступен.", markup)
	}

	kb := newKeyboard(1)
	for _, faculty := range faculties {
		kb.button(faculty.Name, callback.GroupSelectToken{UserID: userID, Faculty: faculty.ID})
	}
	kb.button("✏️ Ввести вручную", callback.GroupSelectToken{UserID: userID})
	kb.back(backTo)
	markup, err := kb.done()
	if err != nil {
		h.logger.Error("Failed to build faculty picker", zap.Error(err))
		return h.respondError(c, internalError)
	}

	return h.render(c, "🏛️ Выберите факультет:", markup)
}

// handleGroupSelect walks the two-level group picker: no faculty yet means
// manual entry, a faculty without a group opens its group list, and a leaf
// selection persists the group onto the profile
func (h *Handler) handleGroupSelect(c tele.Context, t callback.GroupSelectToken) error {
	switch {
	case t.Group != "":
		return h.selectGroup(c, t.UserID, translit.FromASCII(t.Group))
	case t.Faculty > 0:
		return h.showGroupPicker(c, t.UserID, t.Faculty)
	default:
		return h.promptGroupName(c, t.UserID)
	}
}

// showGroupPicker renders the groups of one faculty
func (h *Handler) showGroupPicker(c tele.Context, userID int64, facultyID int) error {
	ctx, cancel := context.WithTimeout(context.Background(), h.scheduleService.FetchBudget())
	defer cancel()

	backTo := callback.MenuToken{Action: callback.MenuChangeGroup, UserID: userID}

	groups, err := h.scheduleService.Groups(ctx, facultyID)
	if err != nil {
		h.logger.Warn("Group directory unavailable",
			zap.Int("faculty", facultyID),
			zap.Error(err),
		)
		markup, err := backMarkup(backTo)
		if err != nil {
			return h.respondError(c, internalError)
		}
		return h.render(c, "⚠️ Справочник групп недоступен.", markup)
	}

	kb := newKeyboard(2)
	for _, group := range groups {
		kb.button(group, callback.GroupSelectToken{
			UserID:  userID,
			Faculty: facultyID,
			Group:   translit.ToASCII(group),
		})
	}
	kb.back(backTo)
	markup, err := kb.done()
	if err != nil {
		h.logger.Error("Failed to build group picker", zap.Error(err))
		return h.respondError(c, internalError)
	}

	return h.render(c, "👥 Выберите группу:", markup)
}

// selectGroup persists a picked group onto the profile
func (h *Handler) selectGroup(c tele.Context, userID int64, group string) error {
	if err := h.userService.ChangeGroup(userID, group); err != nil {
		h.logger.Error("Failed to change group", zap.Error(err))
		return h.respondError(c, "Не удалось сменить группу")
	}

	h.logger.Info("Group changed",
		zap.Int64("user_id", userID),
		zap.String("group", group),
	)

	markup, err := backMarkup(callback.MenuToken{Action: callback.MenuProfile, UserID: userID})
	if err != nil {
		return h.respondError(c, internalError)
	}
	return h.render(c, "✅ Группа успешно изменена!", markup)
}

// promptGroupName suspends the menu until the user types a group name
func (h *Handler) promptGroupName(c tele.Context, userID int64) error {
	h.setPending(userID, &pendingInput{
		Field:  fieldGroupName,
		Anchor: c.Message(),
	})
	return h.render(c, "✏️ Введите новую группу:", &tele.ReplyMarkup{})
}

// showGroupMenu renders the shared per-chat group record
func (h *Handler) showGroupMenu(c tele.Context, chatID, openerID int64) error {
	text, markup, err := h.groupMenuView(chatID, openerID)
	if err != nil {
		h.logger.Error("Failed to open group record", zap.Error(err))
		return h.respondError(c, internalError)
	}
	return h.render(c, text, markup)
}

// groupMenuView builds the group menu screen content
func (h *Handler) groupMenuView(chatID, openerID int64) (string, *tele.ReplyMarkup, error) {
	group, err := h.groupService.Open(chatID, openerID)
	if err != nil {
		return "", nil, err
	}

	kb := newKeyboard(1)
	kb.button("👑 Передать старосту", callback.GroupMenuToken{ChatID: chatID, Action: callback.GroupMenuSetCaptain})
	kb.button("🙋 Назначить заместителей", callback.GroupMenuToken{ChatID: chatID, Action: callback.GroupMenuSetDeputy})
	kb.button("👥 Задать состав", callback.GroupMenuToken{ChatID: chatID, Action: callback.GroupMenuSetMembers})
	markup, err := kb.done()
	if err != nil {
		return "", nil, err
	}

	return groupMenuText(*group), markup, nil
}

func groupMenuText(group domain.StudyGroup) string {
	return fmt.Sprintf(
		"👥 Группа чата:\n\n👑 Староста: %d\n🙋 Заместители: %d\n👥 Участники: %d",
		group.Captain, len(group.DeputyIDs()), len(group.MemberIDs()),
	)
}

// handleGroupMenu routes shared-group actions into text captures
func (h *Handler) handleGroupMenu(c tele.Context, t callback.GroupMenuToken) error {
	senderID := c.Sender().ID

	switch t.Action {
	case callback.GroupMenuOpen:
		return h.showGroupMenu(c, t.ChatID, senderID)
	case callback.GroupMenuSetCaptain:
		h.setPending(senderID, &pendingInput{Field: fieldCaptain, Anchor: c.Message()})
		return h.render(c, "✏️ Отправьте ID нового старосты:", &tele.ReplyMarkup{})
	case callback.GroupMenuSetDeputy:
		h.setPending(senderID, &pendingInput{Field: fieldDeputies, Anchor: c.Message()})
		return h.render(c, "✏️ Отправьте ID заместителей, по одному в строке:", &tele.ReplyMarkup{})
	case callback.GroupMenuSetMembers:
		h.setPending(senderID, &pendingInput{Field: fieldMembers, Anchor: c.Message()})
		return h.render(c, "✏️ Отправьте ID участников, по одному в строке:", &tele.ReplyMarkup{})
	}
	return c.Respond(&tele.CallbackResponse{Text: deniedText})
}
