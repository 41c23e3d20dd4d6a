// Package report exports the engine's matching decisions as a CSV file, so a
// run can be audited when a course ends up in the wrong room.
package report

import (
	"fmt"
	"os"

	"edtsync/internal/match"

	"github.com/gocarina/gocsv"
	"github.com/samber/lo"
)

type Row struct {
	Date     string  `csv:"date"`
	Course   string  `csv:"course"`
	Room     string  `csv:"room_event"`
	Location string  `csv:"location"`
	Score    float64 `csv:"score"`
	Resolved bool    `csv:"resolved"`
}

func FromDecisions(decisions []match.Decision) []*Row {
	return lo.Map(decisions, func(decision match.Decision, _ int) *Row {
		return &Row{
			Date:     decision.Date,
			Course:   decision.CourseTitle,
			Room:     decision.RoomSummary,
			Location: decision.Location,
			Score:    decision.Score,
			Resolved: decision.Resolved,
		}
	})
}

// Write renders the decisions to a CSV file at path, replacing any previous
// report.
func Write(path string, decisions []match.Decision) error {
	rows := FromDecisions(decisions)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create report file: %w", err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("cannot write report: %w", err)
	}
	return nil
}
