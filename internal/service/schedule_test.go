package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"studjournal/internal/domain"
	"studjournal/internal/schedule"
	"studjournal/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestScheduleService_UpcomingForGroup(t *testing.T) {
	week := testutil.NewTestWeek(time.Monday,
		domain.Lesson{Subject: "Матанализ", Room: "302", Start: "09:00", End: "10:35"},
	)

	// 2025-03-03 is a Monday
	monday9am := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

	mockSource := new(testutil.MockTimetableSource)
	mockSource.On("Week", mock.Anything, "23101").Return(week, nil)

	service := NewScheduleService(mockSource, testutil.NewTestLogger())
	service.now = func() time.Time { return monday9am }

	text, err := service.UpcomingForGroup(context.Background(), "23101")
	assert.NoError(t, err)
	assert.Contains(t, text, "Сегодня")
	assert.Contains(t, text, "Матанализ")

	mockSource.AssertExpectations(t)
}

func TestScheduleService_UpcomingForGroup_UpstreamError(t *testing.T) {
	mockSource := new(testutil.MockTimetableSource)
	mockSource.On("Week", mock.Anything, "23101").Return(domain.Week{}, fmt.Errorf("upstream down"))

	service := NewScheduleService(mockSource, testutil.NewTestLogger())

	text, err := service.UpcomingForGroup(context.Background(), "23101")
	assert.Error(t, err)
	assert.Empty(t, text)

	mockSource.AssertExpectations(t)
}

func TestScheduleService_Directory(t *testing.T) {
	faculties := []schedule.Faculty{{ID: 1, Name: "Механико-математический"}}
	groups := []string{"23101", "23102"}

	mockSource := new(testutil.MockTimetableSource)
	mockSource.On("Faculties", mock.Anything).Return(faculties, nil)
	mockSource.On("Groups", mock.Anything, 1).Return(groups, nil)

	service := NewScheduleService(mockSource, testutil.NewTestLogger())

	gotFaculties, err := service.Faculties(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, faculties, gotFaculties)

	gotGroups, err := service.Groups(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, groups, gotGroups)

	mockSource.AssertExpectations(t)
}
