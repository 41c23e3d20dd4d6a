// Package ical builds the merged calendar out of the course feed and the
// engine's room decisions, and splits it into per-group calendars.
package ical

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"edtsync/internal/match"
	"edtsync/internal/schedule"

	ics "github.com/arran4/golang-ical"
)

type Options struct {
	UnessBaseURL string
	UEToUness    map[string]string // raw UE code -> UNESS course id
	Location     *time.Location
}

var uePrefix = regexp.MustCompile(`(?i)^UE\s*:\s*`)

// BuildGlobal decorates every course entry with its resolved room and renders
// the whole horizon as one calendar. decisions must be the engine's output
// for the same course sequence.
func BuildGlobal(courses []schedule.CourseEntry, decisions []match.Decision, opts Options) *ics.Calendar {
	calendar := ics.NewCalendar()
	calendar.SetMethod(ics.MethodPublish)
	calendar.SetProductId("-//edtsync//EDT Global//FR")

	location := opts.Location
	if location == nil {
		location = time.Local
	}

	for i, course := range courses {
		event := calendar.AddEvent(fmt.Sprintf("%v-%v@edtsync", course.Start.Format("20060102T150405"), i))
		event.SetSummary(eventName(course))
		event.SetStartAt(course.Start.In(location))
		event.SetEndAt(course.End.In(location))
		event.SetDescription(description(course, opts))
		event.SetLocation(decisions[i].Location)
	}

	return calendar
}

func eventName(course schedule.CourseEntry) string {
	name := course.Title
	if course.TypeLabel != "" {
		name = fmt.Sprintf("%v - %v", course.TypeLabel, course.Title)
	}
	if course.Obligatory {
		name = "★ " + name
	}
	return name
}

func description(course schedule.CourseEntry, opts Options) string {
	obligatory := "Non"
	if course.Obligatory {
		obligatory = "Oui"
	}

	parts := []string{
		fmt.Sprintf("Le %v de %v à %v",
			course.Start.Format("02/01/2006"),
			course.Start.Format("15:04"),
			course.End.Format("15:04")),
		fmt.Sprintf("Cours obligatoire : <b>%v</b>", obligatory),
	}
	if course.TypeLabel != "" {
		parts = append(parts, fmt.Sprintf("Type cours : <b>%v</b>", course.TypeLabel))
	}
	if course.Title != "" {
		parts = append(parts, fmt.Sprintf("Intitulé : <b>%v</b>", course.Title))
	}
	if course.Group != "" {
		parts = append(parts, fmt.Sprintf("Groupe : <b>%v</b>", course.Group))
	}
	if course.Trainers != "" {
		parts = append(parts, fmt.Sprintf("Formateur(s) : <b>%v</b>", course.Trainers))
	}
	if course.Instructors != "" {
		parts = append(parts, fmt.Sprintf("Intervenant(s) : <b>%v</b>", course.Instructors))
	}

	parts = append(parts, "")

	if course.UECode != "" {
		code := uePrefix.ReplaceAllString(course.UECode, "")
		parts = append(parts, fmt.Sprintf("UE code : %v", code))
		if course.UELabel != "" {
			parts = append(parts, fmt.Sprintf("UE libellé : %v", course.UELabel))
		}
		if id, ok := opts.UEToUness[code]; ok && opts.UnessBaseURL != "" {
			parts = append(parts, fmt.Sprintf("Lien UNESS : <b>%v?id=%v</b>", opts.UnessBaseURL, id))
		}
	} else if course.UELabel != "" {
		parts = append(parts, fmt.Sprintf("UE libellé : %v", course.UELabel))
	}

	return strings.Join(parts, "\n")
}
