package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBeginningOfDay(t *testing.T) {
	in := time.Date(2024, time.June, 10, 14, 35, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), BeginningOfDay(in))
}

func TestEndOfDay(t *testing.T) {
	in := time.Date(2024, time.June, 10, 8, 0, 0, 0, time.UTC)
	got := EndOfDay(in)

	assert.True(t, got.After(in))
	assert.True(t, got.Before(time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC)))
	assert.True(t, SameDay(in, got))
}

func TestDaysBetween(t *testing.T) {
	testData := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "same day",
			start: time.Date(2024, time.June, 10, 23, 0, 0, 0, time.UTC),
			end:   time.Date(2024, time.June, 10, 1, 0, 0, 0, time.UTC),
			want:  0,
		},
		{
			name:  "time of day is ignored",
			start: time.Date(2024, time.June, 10, 23, 59, 0, 0, time.UTC),
			end:   time.Date(2024, time.June, 11, 0, 1, 0, 0, time.UTC),
			want:  1,
		},
		{
			name:  "across a month",
			start: time.Date(2024, time.May, 25, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, time.June, 4, 0, 0, 0, 0, time.UTC),
			want:  10,
		},
	}

	for _, tt := range testData {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.start, tt.end))
		})
	}
}
