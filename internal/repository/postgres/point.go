package postgres

import (
	"database/sql"
	"errors"
	"time"

	"studjournal/internal/domain"

	"github.com/lib/pq"
)

// uniqueViolation is the Postgres error code for a duplicate key
const uniqueViolation = "23505"

// PointRepo implements repository.PointRepository
type PointRepo struct {
	db *sql.DB

	// now is swapped in tests
	now func() time.Time
}

// NewPointRepo creates a new point repository
func NewPointRepo(db *sql.DB) *PointRepo {
	return &PointRepo{db: db, now: time.Now}
}

// GetSortedPoints returns counts grouped per course, courses sorted by name
// and counts by insertion time, so re-rendering the overview is stable
func (r *PointRepo) GetSortedPoints(userID int64) ([]domain.CoursePoints, error) {
	query := `
		SELECT course, count
		FROM points
		WHERE id = $1
		ORDER BY course, timestamp
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CoursePoints
	for rows.Next() {
		var course string
		var count int
		if err := rows.Scan(&course, &count); err != nil {
			return nil, err
		}
		if len(result) == 0 || result[len(result)-1].Course != course {
			result = append(result, domain.CoursePoints{Course: course})
		}
		last := &result[len(result)-1]
		last.Counts = append(last.Counts, count)
	}

	return result, rows.Err()
}

// AddPoint inserts a record, assigning the insertion timestamp. Timestamps
// key records within (user, course), so a same-second collision bumps the
// key forward until the insert lands.
func (r *PointRepo) AddPoint(point domain.Point) (domain.Point, error) {
	query := `
		INSERT INTO points (id, count, course, timestamp, description)
		VALUES ($1, $2, $3, $4, $5)
	`

	point.Timestamp = r.now().Unix()
	const maxBumps = 10
	for i := 0; i < maxBumps; i++ {
		_, err := r.db.Exec(query, point.UserID, point.Count, point.Course, point.Timestamp, nullable(point.Description))
		if err == nil {
			return point, nil
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			point.Timestamp++
			continue
		}
		return domain.Point{}, err
	}
	return domain.Point{}, errors.New("could not assign a unique timestamp")
}

// DeletePoint removes one record by its exact (user, course, timestamp) key
func (r *PointRepo) DeletePoint(userID int64, course string, timestamp int64) error {
	query := `
		DELETE FROM points
		WHERE id = $1 AND course = $2 AND timestamp = $3
	`
	_, err := r.db.Exec(query, userID, course, timestamp)
	return err
}

// DeleteAllForCourse removes every record of the course. Irreversible.
func (r *PointRepo) DeleteAllForCourse(userID int64, course string) error {
	query := `
		DELETE FROM points
		WHERE id = $1 AND course = $2
	`
	_, err := r.db.Exec(query, userID, course)
	return err
}

// EditDescription sets the free-text description of one record
func (r *PointRepo) EditDescription(userID int64, course string, timestamp int64, description string) error {
	query := `
		UPDATE points
		SET description = $4
		WHERE id = $1 AND course = $2 AND timestamp = $3
	`
	_, err := r.db.Exec(query, userID, course, timestamp, description)
	return err
}

// PointsByCourse returns all records of one course, oldest first
func (r *PointRepo) PointsByCourse(userID int64, course string) ([]domain.Point, error) {
	query := `
		SELECT id, count, course, timestamp, description
		FROM points
		WHERE id = $1 AND course = $2
		ORDER BY timestamp
	`
	rows, err := r.db.Query(query, userID, course)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []domain.Point
	for rows.Next() {
		p, err := scanPoint(rows)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	return points, rows.Err()
}

// GetPoint returns one record by its key, or nil if there is none
func (r *PointRepo) GetPoint(userID int64, course string, timestamp int64) (*domain.Point, error) {
	query := `
		SELECT id, count, course, timestamp, description
		FROM points
		WHERE id = $1 AND course = $2 AND timestamp = $3
	`
	row := r.db.QueryRow(query, userID, course, timestamp)

	p, err := scanPoint(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPoint(s scanner) (domain.Point, error) {
	var p domain.Point
	var description sql.NullString
	err := s.Scan(&p.UserID, &p.Count, &p.Course, &p.Timestamp, &description)
	if err != nil {
		return domain.Point{}, err
	}
	p.Description = description.String
	return p, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
