package match

import (
	"sort"
	"time"

	"edtsync/internal/schedule"
)

const dayFormat = "2006-01-02"

// dayPartition is the unit of independent matching work: the subsets of both
// feeds sharing one calendar date. Cross-day matching is never valid, so
// partitions never read each other's data.
type dayPartition struct {
	date    string
	courses []int // positions within the run's course sequence
	rooms   []int // positions within the run's room sequence
}

// partitionByDay groups both feeds by calendar date in the given location.
// Entries without a usable start timestamp are excluded from the candidate
// pool and reported back to the caller; a single bad entry never discards its
// whole day.
func partitionByDay(
	courses []schedule.CourseEntry,
	rooms []schedule.RoomEntry,
	location *time.Location,
) (partitions []dayPartition, droppedCourses []int, droppedRooms []int) {

	byDate := make(map[string]*dayPartition)
	partitionFor := func(date string) *dayPartition {
		if _, ok := byDate[date]; !ok {
			byDate[date] = &dayPartition{date: date}
		}
		return byDate[date]
	}

	for i, course := range courses {
		if course.Start.IsZero() {
			droppedCourses = append(droppedCourses, i)
			continue
		}
		partition := partitionFor(course.Start.In(location).Format(dayFormat))
		partition.courses = append(partition.courses, i)
	}

	for i, room := range rooms {
		if room.Start.IsZero() {
			droppedRooms = append(droppedRooms, i)
			continue
		}
		partition := partitionFor(room.Start.In(location).Format(dayFormat))
		partition.rooms = append(partition.rooms, i)
	}

	partitions = make([]dayPartition, 0, len(byDate))
	for _, partition := range byDate {
		partitions = append(partitions, *partition)
	}
	sort.Slice(partitions, func(i, j int) bool {
		return partitions[i].date < partitions[j].date
	})

	return partitions, droppedCourses, droppedRooms
}
