package schedule

import "time"

// UnknownLocation is the sentinel room value used whenever no room candidate
// could be resolved with enough confidence.
const UnknownLocation = "Non précisée"

// CourseEntry is one session from the course-roster feed (portal agenda).
// All text fields are already decoded strings; Title may still contain inline
// HTML fragments coming from the portal.
type CourseEntry struct {
	Title       string
	TypeLabel   string // raw course-type label, e.g. "CM", "TD"
	UECode      string // raw teaching-unit code field, e.g. "UE : 04.01"
	UELabel     string
	Group       string
	Trainers    string
	Instructors string
	Obligatory  bool
	Start       time.Time
	End         time.Time
}

// RoomEntry is one session from the room-allocation feed (ICS). Summary is
// free text that may embed UE-code and course-type hints; Location may be
// empty, meaning the room was not specified upstream.
type RoomEntry struct {
	Summary  string
	Location string
	Start    time.Time
	End      time.Time
}
