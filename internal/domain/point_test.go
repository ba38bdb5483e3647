package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoint_DateString(t *testing.T) {
	tests := []struct {
		name     string
		point    Point
		expected string
	}{
		{
			name:     "mid december",
			point:    Point{Timestamp: time.Date(2024, 12, 12, 10, 0, 0, 0, time.Local).Unix()},
			expected: "12.12",
		},
		{
			name:     "first of june",
			point:    Point{Timestamp: time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local).Unix()},
			expected: "01.06",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.point.DateString())
		})
	}
}

func TestCoursePoints_Total(t *testing.T) {
	tests := []struct {
		name     string
		counts   []int
		expected int
	}{
		{
			name:     "several counts",
			counts:   []int{5, 7, 9},
			expected: 21,
		},
		{
			name:     "single count",
			counts:   []int{10},
			expected: 10,
		},
		{
			name:     "no counts",
			counts:   nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CoursePoints{Course: "Математика", Counts: tt.counts}
			assert.Equal(t, tt.expected, c.Total())
		})
	}
}

func TestUser_HasGroup(t *testing.T) {
	assert.False(t, User{ID: 1, Group: DefaultGroup}.HasGroup())
	assert.False(t, User{ID: 1, Group: ""}.HasGroup())
	assert.True(t, User{ID: 1, Group: "23101"}.HasGroup())
}
