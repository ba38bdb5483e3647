package service

import (
	"fmt"
	"strings"

	"studjournal/internal/domain"
	"studjournal/internal/repository"
)

// MaxCount bounds the count palette: points are added 1-10 at a time
const MaxCount = 10

// PointsService handles point record business logic
type PointsService struct {
	pointRepo repository.PointRepository
}

// NewPointsService creates a new points service
func NewPointsService(pointRepo repository.PointRepository) *PointsService {
	return &PointsService{pointRepo: pointRepo}
}

// Overview returns per-course counts for the points overview screen
func (s *PointsService) Overview(userID int64) ([]domain.CoursePoints, error) {
	return s.pointRepo.GetSortedPoints(userID)
}

// AddPoint inserts a record and returns it with the assigned timestamp
func (s *PointsService) AddPoint(userID int64, course string, count int) (domain.Point, error) {
	course = strings.TrimSpace(course)
	if course == "" {
		return domain.Point{}, fmt.Errorf("course name cannot be empty")
	}
	if count < 1 || count > MaxCount {
		return domain.Point{}, fmt.Errorf("count must be between 1 and %d, got %d", MaxCount, count)
	}
	return s.pointRepo.AddPoint(domain.Point{
		UserID: userID,
		Course: course,
		Count:  count,
	})
}

// DeletePoint removes one record by its exact key
func (s *PointsService) DeletePoint(userID int64, course string, timestamp int64) error {
	return s.pointRepo.DeletePoint(userID, course, timestamp)
}

// DeleteAllForCourse removes every record of the course
func (s *PointsService) DeleteAllForCourse(userID int64, course string) error {
	return s.pointRepo.DeleteAllForCourse(userID, course)
}

// SetDescription stores the free-text description of one record
func (s *PointsService) SetDescription(userID int64, course string, timestamp int64, description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return fmt.Errorf("description cannot be empty")
	}
	return s.pointRepo.EditDescription(userID, course, timestamp, description)
}

// CoursePoints lists all records of one course
func (s *PointsService) CoursePoints(userID int64, course string) ([]domain.Point, error) {
	return s.pointRepo.PointsByCourse(userID, course)
}

// Record returns one record, or nil if it no longer exists
func (s *PointsService) Record(userID int64, course string, timestamp int64) (*domain.Point, error) {
	return s.pointRepo.GetPoint(userID, course, timestamp)
}
