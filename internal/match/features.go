package match

import (
	"regexp"
	"strings"
	"time"

	"edtsync/internal/schedule"
)

// features holds the comparable attributes derived from one entry of either
// feed, computed once per day before scoring.
type features struct {
	raw        string // lowercased source title, kept for the UE pre-filter
	date       string
	tokens     []string
	ueCode     string
	courseType schedule.CourseType
	start      time.Time
	end        time.Time
}

// Course-type abbreviations searched in order; first match wins. TPG must be
// probed before TP since every TPG title also contains the letters "tp".
var courseTypePatterns = []struct {
	courseType schedule.CourseType
	pattern    *regexp.Regexp
}{
	{schedule.TypeLecture, regexp.MustCompile(`(?i)\bcm\b`)},
	{schedule.TypeTutorial, regexp.MustCompile(`(?i)\btd\b`)},
	{schedule.TypePracticalGroup, regexp.MustCompile(`(?i)\btpg\b`)},
	{schedule.TypePractical, regexp.MustCompile(`(?i)\btp\b`)},
}

// CourseTypeOf extracts the course-type tag embedded in a raw label or title.
func CourseTypeOf(raw string) schedule.CourseType {
	for _, candidate := range courseTypePatterns {
		if candidate.pattern.MatchString(raw) {
			return candidate.courseType
		}
	}
	return schedule.TypeUnknown
}

func courseFeatures(course schedule.CourseEntry, location *time.Location) features {
	ueCode := NormalizeUECode(course.UECode)
	if ueCode == "" {
		ueCode = NormalizeUECode(course.Title)
	}

	return features{
		raw:        strings.ToLower(course.Title),
		date:       course.Start.In(location).Format(dayFormat),
		tokens:     NormalizeTitle(course.Title),
		ueCode:     ueCode,
		courseType: CourseTypeOf(course.TypeLabel + " " + course.Title),
		start:      course.Start,
		end:        course.End,
	}
}

func roomFeatures(room schedule.RoomEntry, location *time.Location) features {
	return features{
		raw:        strings.ToLower(room.Summary),
		date:       room.Start.In(location).Format(dayFormat),
		tokens:     NormalizeTitle(room.Summary),
		ueCode:     NormalizeUECode(room.Summary),
		courseType: CourseTypeOf(room.Summary),
		start:      room.Start,
		end:        room.End,
	}
}
