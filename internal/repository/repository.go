package repository

import (
	"studjournal/internal/domain"
)

// UserRepository defines user profile data operations
type UserRepository interface {
	GetUser(userID int64) (*domain.User, error)
	AddUser(user domain.User) error
	UpdateGroup(userID int64, group string) error
}

// PointRepository defines point record data operations
type PointRepository interface {
	GetSortedPoints(userID int64) ([]domain.CoursePoints, error)
	AddPoint(point domain.Point) (domain.Point, error)
	DeletePoint(userID int64, course string, timestamp int64) error
	DeleteAllForCourse(userID int64, course string) error
	EditDescription(userID int64, course string, timestamp int64, description string) error
	PointsByCourse(userID int64, course string) ([]domain.Point, error)
	GetPoint(userID int64, course string, timestamp int64) (*domain.Point, error)
}

// GroupRepository defines shared study-group data operations
type GroupRepository interface {
	GetGroup(chatID int64) (*domain.StudyGroup, error)
	UpsertGroup(group domain.StudyGroup) error
}
