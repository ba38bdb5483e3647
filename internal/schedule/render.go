package schedule

import (
	"fmt"
	"strings"
	"time"

	"studjournal/internal/domain"
)

// RenderDay formats the lessons of one weekday as display text
func RenderDay(week domain.Week, day time.Weekday) string {
	lessons := week.Day(day)
	if len(lessons) == 0 {
		return "Занятий нет"
	}

	var b strings.Builder
	for _, l := range lessons {
		b.WriteString("🕐 ")
		b.WriteString(l.Start)
		if l.End != "" {
			b.WriteString("–")
			b.WriteString(l.End)
		}
		b.WriteString(" ")
		b.WriteString(l.Subject)
		if l.Room != "" {
			fmt.Fprintf(&b, " (ауд. %s)", l.Room)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderUpcoming shows today's lessons until the last one ends, then
// switches to tomorrow
func RenderUpcoming(week domain.Week, now time.Time) string {
	day := now.Weekday()
	lessons := week.Day(day)

	over := len(lessons) > 0
	for _, l := range lessons {
		if !l.EndedBy(now) {
			over = false
			break
		}
	}

	if len(lessons) == 0 || over {
		tomorrow := now.AddDate(0, 0, 1).Weekday()
		return fmt.Sprintf("📅 Завтра (%s):\n%s", domain.DayName(tomorrow), RenderDay(week, tomorrow))
	}
	return fmt.Sprintf("📅 Сегодня (%s):\n%s", domain.DayName(day), RenderDay(week, day))
}
