package domain

import "time"

// Point is a single score record. Timestamp is assigned at insert time and
// together with (UserID, Course) forms the record key.
type Point struct {
	UserID      int64
	Course      string
	Count       int
	Timestamp   int64
	Description string
}

// Date returns the insertion time of the record
func (p Point) Date() time.Time {
	return time.Unix(p.Timestamp, 0)
}

// DateString returns the insertion date in dd.mm format for button labels
func (p Point) DateString() string {
	return p.Date().Format("02.01")
}

// CoursePoints groups counts of one course for the points overview
type CoursePoints struct {
	Course string
	Counts []int
}

// Total sums all counts of the course
func (c CoursePoints) Total() int {
	total := 0
	for _, n := range c.Counts {
		total += n
	}
	return total
}
