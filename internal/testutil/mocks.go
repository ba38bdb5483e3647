package testutil

import (
	"context"

	"studjournal/internal/domain"
	"studjournal/internal/schedule"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUser(userID int64) (*domain.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) AddUser(user domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateGroup(userID int64, group string) error {
	args := m.Called(userID, group)
	return args.Error(0)
}

// MockPointRepository is a mock for repository.PointRepository
type MockPointRepository struct {
	mock.Mock
}

func (m *MockPointRepository) GetSortedPoints(userID int64) ([]domain.CoursePoints, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CoursePoints), args.Error(1)
}

func (m *MockPointRepository) AddPoint(point domain.Point) (domain.Point, error) {
	args := m.Called(point)
	return args.Get(0).(domain.Point), args.Error(1)
}

func (m *MockPointRepository) DeletePoint(userID int64, course string, timestamp int64) error {
	args := m.Called(userID, course, timestamp)
	return args.Error(0)
}

func (m *MockPointRepository) DeleteAllForCourse(userID int64, course string) error {
	args := m.Called(userID, course)
	return args.Error(0)
}

func (m *MockPointRepository) EditDescription(userID int64, course string, timestamp int64, description string) error {
	args := m.Called(userID, course, timestamp, description)
	return args.Error(0)
}

func (m *MockPointRepository) PointsByCourse(userID int64, course string) ([]domain.Point, error) {
	args := m.Called(userID, course)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Point), args.Error(1)
}

func (m *MockPointRepository) GetPoint(userID int64, course string, timestamp int64) (*domain.Point, error) {
	args := m.Called(userID, course, timestamp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Point), args.Error(1)
}

// MockGroupRepository is a mock for repository.GroupRepository
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) GetGroup(chatID int64) (*domain.StudyGroup, error) {
	args := m.Called(chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudyGroup), args.Error(1)
}

func (m *MockGroupRepository) UpsertGroup(group domain.StudyGroup) error {
	args := m.Called(group)
	return args.Error(0)
}

// MockTimetableSource is a mock for service.TimetableSource
type MockTimetableSource struct {
	mock.Mock
}

func (m *MockTimetableSource) Faculties(ctx context.Context) ([]schedule.Faculty, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schedule.Faculty), args.Error(1)
}

func (m *MockTimetableSource) Groups(ctx context.Context, facultyID int) ([]string, error) {
	args := m.Called(ctx, facultyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTimetableSource) Week(ctx context.Context, group string) (domain.Week, error) {
	args := m.Called(ctx, group)
	return args.Get(0).(domain.Week), args.Error(1)
}
