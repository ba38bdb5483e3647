package domain

import "time"

// Lesson is one slot of a group timetable. Start and End are HH:MM strings
// as published by the timetable site.
type Lesson struct {
	Subject string
	Room    string
	Start   string
	End     string
}

// EndedBy reports whether the lesson is over at the given time of day
func (l Lesson) EndedBy(now time.Time) bool {
	end, err := time.Parse("15:04", l.End)
	if err != nil {
		return false
	}
	minutes := now.Hour()*60 + now.Minute()
	return minutes >= end.Hour()*60+end.Minute()
}

// Week is a full timetable: seven days of lessons, Monday first
type Week [7][]Lesson

// Day returns the lessons of the given weekday
func (w Week) Day(d time.Weekday) []Lesson {
	return w[DayIndex(d)]
}

// DayIndex maps time.Weekday to the Monday-first week layout
func DayIndex(d time.Weekday) int {
	if d == time.Sunday {
		return 6
	}
	return int(d) - 1
}

// DayName returns the Russian weekday name used in rendered schedules
func DayName(d time.Weekday) string {
	names := []string{
		"воскресенье", "понедельник", "вторник", "среда",
		"четверг", "пятница", "суббота",
	}
	return names[d]
}
