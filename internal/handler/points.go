package handler

import (
	"fmt"
	"strconv"

	"studjournal/internal/callback"
	"studjournal/internal/domain"
	"studjournal/internal/translit"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// showCoursePicker renders the course list for the add or delete branch
func (h *Handler) showCoursePicker(c tele.Context, userID int64, action callback.PointsAction) error {
	overview, err := h.pointsService.Overview(userID)
	if err != nil {
		h.logger.Error("Failed to get courses", zap.Error(err))
		return h.respondError(c, "Ошибка при загрузке данных")
	}

	courseAction := callback.CourseAddPoints
	if action == callback.PointsDelete {
		courseAction = callback.CourseDelete
	}

	text := "📚 Выберите предмет:"
	if len(overview) == 0 {
		text = "📚 Вы еще не заносили ни одного балла."
	}

	kb := newKeyboard(1)
	for _, course := range overview {
		kb.button(course.Course, callback.CourseToken{
			UserID: userID,
			Action: courseAction,
			Course: translit.ToASCII(course.Course),
		})
	}
	if action == callback.PointsAdd {
		kb.button("➕ Добавить предмет", callback.CourseToken{
			UserID: userID,
			Action: callback.CourseAddCourse,
		})
	}
	kb.back(callback.MenuToken{Action: callback.MenuPoints, UserID: userID})
	markup, err := kb.done()
	if err != nil {
		h.logger.Error("Failed to build course picker", zap.Error(err))
		return h.respondError(c, internalError)
	}

	return h.render(c, text, markup)
}

// showCountPicker renders the 1-10 count palette for a course
func (h *Handler) showCountPicker(c tele.Context, userID int64, courseASCII string) error {
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
		return h.respondError(c, internalError)
	}

	text := fmt.Sprintf("📊 Выберите количество баллов по предмету %s:", translit.FromASCII(courseASCII))
	return h.render(c, text, markup)
}

// addPoint inserts the picked count and offers to describe the new record
func (h *Handler) addPoint(c tele.Context, t callback.CourseToken) error {
	course := translit.FromASCII(t.Course)

	point, err := h.pointsService.AddPoint(t.UserID, course, t.Count)
	if err != nil {
		h.logger.Error("Failed to add point",
			zap.Int64("user_id", t.UserID),
			zap.String("course", course),
			zap.Error(err),
		)
		return h.respondError(c, "Не удалось сохранить балл")
	}

	h.logger.Info("Point added",
		zap.Int64("user_id", t.UserID),
		zap.String("course", course),
		zap.Int("count", t.Count),
		zap.Int64("timestamp", point.Timestamp),
	)

	kb := newKeyboard(1)
	kb.button("✏️ Добавить описание", callback.CourseToken{
		UserID:    t.UserID,
		Action:    callback.CourseDesc,
		Course:    t.Course,
		Timestamp: point.Timestamp,
		BackTo:    callback.PointsToken{Action: callback.PointsAdd, UserID: t.UserID},
	})
	kb.back(callback.PointsToken{Action: callback.PointsAdd, UserID: t.UserID})
	markup, err := kb.done()
	if err != nil {
		h.logger.Error("Failed to build add-point keyboard", zap.Error(err))
		return h.respondError(c, internalError)
	}

	return h.render(c, "✅ Балл успешно добавлен!", markup)
}

// showDeleteList renders the per-record delete list of a course
func (h *Handler) showDeleteList(c tele.Context, t callback.CourseToken) error {
	course := translit.FromASCII(t.Course)

	points, err := h.pointsService.CoursePoints(t.UserID, course)
	if err != nil {
		h.logger.Error("Failed to get course points", zap.Error(err))
		return h.respondError(c, "Ошибка при загрузке данных")
	}

	backTo := callback.Token(callback.PointsToken{Action: callback.PointsDelete, UserID: t.UserID})

	if len(points) == 0 {
		markup, err := backMarkup(backTo)
		if err != nil {
			return h.respondError(c, internalError)
		}
		return h.render(c, "📚 Нет баллов для удаления по этому предмету.", markup)
	}

	kb := newKeyboard(1)
	for _, point := range points {
		kb.button(recordLabel(point), callback.CourseToken{
			UserID:    t.UserID,
			Action:    callback.CourseDeleteConfirm,
			Course:    t.Course,
			Timestamp: point.Timestamp,
			Count:     point.Count,
			BackTo:    backTo,
		})
	}
	kb.button("❌ Удалить все", callback.CourseToken{
		UserID: t.UserID,
		Action: callback.CourseDeleteAll,
		Course: t.Course,
		BackTo: backTo,
	})
	kb.back(backTo)
	markup, err := kb.done()
	if err != nil {
		h.logger.Error("Failed to build delete list", zap.Error(err))
		return h.respondError(c, internalError)
	}

	return h.render(c, "🗑️ Выберите балл для удаления:", markup)
}

// deletePoint removes one record by its exact key
func (h *Handler) deletePoint(c tele.Context, t callback.CourseToken) error {
	course := translit.FromASCII(t.Course)

	if err := h.pointsService.DeletePoint(t.UserID, course, t.Timestamp); err != nil {
		h.logger.Error("Failed to delete point", zap.Error(err))
		return h.respondError(c, "Не удалось удалить балл")
	}

	markup, err := backMarkup(h.backOrDefault(t))
	if err != nil {
		return h.respondError(c, internalError)
	}
	return h.render(c, "✅ Балл успешно удален!", markup)
}

// deleteAllForCourse removes every record of the course. Irreversible.
func (h *Handler) deleteAllForCourse(c tele.Context, t callback.CourseToken) error {
	course := translit.FromASCII(t.Course)

	if err := h.pointsService.DeleteAllForCourse(t.UserID, course); err != nil {
		h.logger.Error("Failed to delete course points", zap.Error(err))
		return h.respondError(c, "Не удалось удалить баллы")
	}

	h.logger.Info("All course points deleted",
		zap.Int64("user_id", t.UserID),
		zap.String("course", course),
	)

	markup, err := backMarkup(h.backOrDefault(t))
	if err != nil {
		return h.respondError(c, internalError)
	}
	return h.render(c, fmt.Sprintf("✅ Все баллы по предмету %s успешно удалены!", course), markup)
}

// promptDescription suspends the menu until the user sends description text
func (h *Handler) promptDescription(c tele.Context, t callback.CourseToken) error {
	h.setPending(t.UserID, &pendingInput{
		Field:     fieldDescription,
		Course:    t.Course,
		Timestamp: t.Timestamp,
		BackTo:    t.BackTo,
		Anchor:    c.Message(),
	})
	return h.render(c, "✏️ Введите описание:", &tele.ReplyMarkup{})
}

// promptCourseName suspends the menu until the user names the new course
func (h *Handler) promptCourseName(c tele.Context, userID int64) error {
	h.setPending(userID, &pendingInput{
		Field:  fieldCourseName,
		Anchor: c.Message(),
	})
	return h.render(c, "✏️ Введите название предмета:", &tele.ReplyMarkup{})
}

// showDetailsCourses renders the course list of the more-details branch
func (h *Handler) showDetailsCourses(c tele.Context, userID int64) error {
	overview, err := h.pointsService.Overview(userID)
	if err != nil {
		h.logger.Error("Failed to get courses", zap.Error(err))
		return h.respondError(c, "Ошибка при загрузке данных")
	}

	backTo := callback.MenuToken{Action: callback.MenuPoints, UserID: userID}

	if len(overview) == 0 {
		markup, err := backMarkup(backTo)
		if err != nil {
			return h.respondError(c, internalError)
		}
		return h.render(c, "📚 Нет данных для отображения.", markup)
	}

	kb := newKeyboard(1)
	for _, course := range overview {
		kb.button(course.Course, callback.CourseToken{
			UserID: userID,
			Action: callback.CourseMoreDetails,
			Course: translit.ToASCII(course.Course),
		})
	}
	kb.back(backTo)
	markup, err := kb.done()
	if err != nil {
		h.logger.Error("Failed to build details course list", zap.Error(err))
		return h.respondError(c, internalError)
	}

	return h.render(c, "📚 Выберите предмет:", markup)
}

// showDetailsRecords renders the record list of one course
func (h *Handler) showDetailsRecords(c tele.Context, t callback.CourseToken) error {
	course := translit.FromASCII(t.Course)

	points, err := h.pointsService.CoursePoints(t.UserID, course)
	if err != nil {
		h.logger.Error("Failed to get course points", zap.Error(err))
		return h.respondError(c, "Ошибка при загрузке данных")
	}

	backTo := callback.MenuToken{Action: callback.MenuMoreDetails, UserID: t.UserID}

	if len(points) == 0 {
		markup, err := backMarkup(backTo)
		if err != nil {
			return h.respondError(c, internalError)
		}
		return h.render(c, "📚 Нет данных для отображения по этому предмету.", markup)
	}

	kb := newKeyboard(1)
	for _, point := range points {
		kb.button(recordLabel(point), callback.CourseToken{
			UserID:    t.UserID,
			Action:    callback.CourseMoreDetailsConfirm,
			Course:    t.Course,
			Timestamp: point.Timestamp,
		})
	}
	kb.back(backTo)
	markup, err := kb.done()
	if err != nil {
		h.logger.Error("Failed to build record list", zap.Error(err))
		return h.respondError(c, internalError)
	}

	return h.render(c, "📚 Выберите балл для просмотра:", markup)
}

// showRecordCard renders one record with edit and delete actions
func (h *Handler) showRecordCard(c tele.Context, t callback.CourseToken) error {
	course := translit.FromASCII(t.Course)

	point, err := h.pointsService.Record(t.UserID, course, t.Timestamp)
	if err != nil {
		h.logger.Error("Failed to get point", zap.Error(err))
		return h.respondError(c, "Ошибка при загрузке данных")
	}

	backTo := callback.Token(callback.CourseToken{
		UserID: t.UserID,
		Action: callback.CourseMoreDetails,
		Course: t.Course,
	})

	if point == nil {
		markup, err := backMarkup(backTo)
		if err != nil {
			return h.respondError(c, internalError)
		}
		return h.render(c, "📚 Запись не найдена.", markup)
	}

	kb := newKeyboard(1)
	kb.button("✏️ Изменить описание", callback.CourseToken{
		UserID:    t.UserID,
		Action:    callback.CourseDesc,
		Course:    t.Course,
		Timestamp: t.Timestamp,
		BackTo:    backTo,
	})
	kb.button("🗑️ Удалить балл", callback.CourseToken{
		UserID:    t.UserID,
		Action:    callback.CourseDeleteConfirm,
		Course:    t.Course,
		Timestamp: t.Timestamp,
		BackTo:    backTo,
	})
	kb.back(backTo)
	markup, err := kb.done()
	if err != nil {
		h.logger.Error("Failed to build record card", zap.Error(err))
		return h.respondError(c, internalError)
	}

	return h.render(c, recordCardText(*point), markup)
}

func recordLabel(point domain.Point) string {
	return fmt.Sprintf("%s | %d", point.DateString(), point.Count)
}

func recordCardText(point domain.Point) string {
	description := point.Description
	if description == "" {
		description = "не указано"
	}
	return fmt.Sprintf(
		"📚 Подробности:\n\n📅 Дата занесения: %s\n📊 Балл: %d\n✏️ Описание: %s",
		point.DateString(), point.Count, description,
	)
}

// backOrDefault resumes the carried back reference, falling back to the
// delete branch when the token carried none
func (h *Handler) backOrDefault(t callback.CourseToken) callback.Token {
	if t.BackTo != nil {
		return t.BackTo
	}
	return callback.PointsToken{Action: callback.PointsDelete, UserID: t.UserID}
}
