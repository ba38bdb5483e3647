package testutil

import (
	"time"

	"studjournal/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, group string) *domain.User {
	return &domain.User{
		ID:    userID,
		Group: group,
	}
}

// NewTestPoint creates a test point record
func NewTestPoint(userID int64, course string, count int, timestamp int64) domain.Point {
	return domain.Point{
		UserID:    userID,
		Course:    course,
		Count:     count,
		Timestamp: timestamp,
	}
}

// NewTestWeek creates a week with the given lessons on one weekday
func NewTestWeek(day time.Weekday, lessons ...domain.Lesson) domain.Week {
	var week domain.Week
	week[domain.DayIndex(day)] = lessons
	return week
}
