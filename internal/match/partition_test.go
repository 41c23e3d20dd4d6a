package match

import (
	"testing"
	"time"

	"edtsync/internal/schedule"

	"github.com/stretchr/testify/assert"
)

func TestPartitionByDay(t *testing.T) {
	// Arrange
	day1 := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC)
	courses := []schedule.CourseEntry{
		{Title: "Anatomie", Start: day2},
		{Title: "Physiologie", Start: day1},
		{Title: "Droit", Start: day1},
	}
	rooms := []schedule.RoomEntry{
		{Summary: "Anatomie", Start: day2.Add(time.Hour)},
		{Summary: "Physiologie", Start: day1},
	}

	// Act
	partitions, droppedCourses, droppedRooms := partitionByDay(courses, rooms, time.UTC)

	// Assert: sorted by date, original positions preserved
	assert.Empty(t, droppedCourses)
	assert.Empty(t, droppedRooms)
	assert.Len(t, partitions, 2)
	assert.Equal(t, "2026-09-01", partitions[0].date)
	assert.Equal(t, []int{1, 2}, partitions[0].courses)
	assert.Equal(t, []int{1}, partitions[0].rooms)
	assert.Equal(t, "2026-09-02", partitions[1].date)
	assert.Equal(t, []int{0}, partitions[1].courses)
	assert.Equal(t, []int{0}, partitions[1].rooms)
}

func TestPartitionByDayDropsMissingTimestamps(t *testing.T) {
	// A malformed entry is rejected alone, its day survives
	day := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	courses := []schedule.CourseEntry{
		{Title: "Anatomie", Start: day},
		{Title: "Sans horaire"},
	}
	rooms := []schedule.RoomEntry{
		{Summary: "Anatomie", Start: day},
		{Summary: "Sans horaire"},
	}

	partitions, droppedCourses, droppedRooms := partitionByDay(courses, rooms, time.UTC)

	assert.Equal(t, []int{1}, droppedCourses)
	assert.Equal(t, []int{1}, droppedRooms)
	assert.Len(t, partitions, 1)
	assert.Equal(t, []int{0}, partitions[0].courses)
	assert.Equal(t, []int{0}, partitions[0].rooms)
}
