package service

import (
	"context"
	"time"

	"studjournal/internal/domain"
	"studjournal/internal/schedule"

	"go.uber.org/zap"
)

// TimetableSource is the read-only upstream consumed by ScheduleService
type TimetableSource interface {
	Faculties(ctx context.Context) ([]schedule.Faculty, error)
	Groups(ctx context.Context, facultyID int) ([]string, error)
	Week(ctx context.Context, group string) (domain.Week, error)
}

// ScheduleService fetches and renders group timetables
type ScheduleService struct {
	source TimetableSource
	logger *zap.Logger

	// now is swapped in tests
	now func() time.Time
}

// NewScheduleService creates a new schedule service
func NewScheduleService(source TimetableSource, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{
		source: source,
		logger: logger,
		now:    time.Now,
	}
}

// FetchBudget bounds one timetable fetch including retries
func (s *ScheduleService) FetchBudget() time.Duration {
	return 15 * time.Second
}

// UpcomingForGroup renders the current or next study day of a group.
// Upstream failures propagate; the caller degrades the screen text.
func (s *ScheduleService) UpcomingForGroup(ctx context.Context, group string) (string, error) {
	week, err := s.source.Week(ctx, group)
	if err != nil {
		s.logger.Warn("Failed to fetch week timetable",
			zap.String("group", group),
			zap.Error(err),
		)
		return "", err
	}
	return schedule.RenderUpcoming(week, s.now()), nil
}

// Faculties lists the faculty directory
func (s *ScheduleService) Faculties(ctx context.Context) ([]schedule.Faculty, error) {
	return s.source.Faculties(ctx)
}

// Groups lists the group names of a faculty
func (s *ScheduleService) Groups(ctx context.Context, facultyID int) ([]string, error) {
	return s.source.Groups(ctx, facultyID)
}
