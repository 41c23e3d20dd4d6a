package match

import (
	"testing"
	"time"

	"edtsync/internal/schedule"

	"github.com/stretchr/testify/assert"
)

func TestCourseTypeOf(t *testing.T) {
	cases := map[string]schedule.CourseType{
		"CM UE 3.2 Anatomie":    schedule.TypeLecture,
		"td UE4.1 Physiologie":  schedule.TypeTutorial,
		"TPG manipulation":      schedule.TypePracticalGroup,
		"TP gestes et soins":    schedule.TypePractical,
		"Anatomie":              schedule.TypeUnknown,
		"composition du tympan": schedule.TypeUnknown, // no bare substring matches
		"CM puis TD (rattrape)": schedule.TypeLecture, // first match wins
	}

	for raw, expected := range cases {
		assert.Equal(t, expected, CourseTypeOf(raw), "raw: %q", raw)
	}
}

func TestCourseFeatures(t *testing.T) {
	// Arrange
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	course := schedule.CourseEntry{
		Title:     "Anatomie générale",
		TypeLabel: "CM",
		UECode:    "UE : 04.01",
		Start:     start,
		End:       start.Add(2 * time.Hour),
	}

	// Act
	feats := courseFeatures(course, time.UTC)

	// Assert
	assert.Equal(t, "4.1", feats.ueCode)
	assert.Equal(t, schedule.TypeLecture, feats.courseType)
	assert.Equal(t, "2026-09-01", feats.date)
	assert.Equal(t, []string{"anatomie", "generale"}, feats.tokens)
}

func TestCourseFeaturesFallsBackToTitleCode(t *testing.T) {
	course := schedule.CourseEntry{Title: "TD UE 3.2 Anatomie", Start: time.Now()}
	assert.Equal(t, "3.2", courseFeatures(course, time.UTC).ueCode)
}

func TestRoomFeatures(t *testing.T) {
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	room := schedule.RoomEntry{Summary: "L1 IFMEM TD UE4.1 Physiologie", Location: "Salle 12", Start: start}

	feats := roomFeatures(room, time.UTC)

	assert.Equal(t, "4.1", feats.ueCode)
	assert.Equal(t, schedule.TypeTutorial, feats.courseType)
	assert.Equal(t, []string{"ue4", "1", "physiologie"}, feats.tokens)
}
