package ical

import (
	"regexp"
	"strings"

	"edtsync/internal/schedule"

	ics "github.com/arran4/golang-ical"
)

var (
	groupLine = regexp.MustCompile(`(?i)Groupe\s*:\s*(.*)`)
	htmlTags  = regexp.MustCompile(`<[^>]*>`)
)

// SplitByGroup routes every event of the global calendar into the twelve
// audience calendars (quarter group × third group), keyed "A_alpha" and so
// on. An event belongs to a combination when its "Groupe" field names the
// quarter, the quarter's promotion half, the third group, or the whole
// promotion. Events without a group field address everyone.
func SplitByGroup(global *ics.Calendar) map[string]*ics.Calendar {
	calendars := make(map[string]*ics.Calendar)
	for _, quarter := range schedule.QuarterGroups {
		for _, third := range schedule.ThirdGroups {
			calendar := ics.NewCalendar()
			calendar.SetMethod(ics.MethodPublish)
			calendar.SetProductId("-//edtsync//EDT " + quarter + " " + third + "//FR")
			calendars[quarter+"_"+third] = calendar
		}
	}

	for _, event := range global.Events() {
		group := eventGroup(event)

		for _, quarter := range schedule.QuarterGroups {
			half := schedule.HalfOfQuarter[quarter]
			for _, third := range schedule.ThirdGroups {
				if group == strings.ToLower(quarter) ||
					group == strings.ToLower(half) ||
					group == strings.ToLower(third) ||
					group == strings.ToLower(schedule.WholePromotion) {
					calendars[quarter+"_"+third].AddVEvent(event)
				}
			}
		}
	}

	return calendars
}

// eventGroup extracts the normalized "Groupe" value from an event
// description, defaulting to the whole promotion.
func eventGroup(event *ics.VEvent) string {
	property := event.GetProperty(ics.ComponentPropertyDescription)
	if property == nil {
		return strings.ToLower(schedule.WholePromotion)
	}

	description := strings.ReplaceAll(property.Value, "\\n", "\n")
	groups := groupLine.FindStringSubmatch(description)
	if groups == nil {
		return strings.ToLower(schedule.WholePromotion)
	}

	value := htmlTags.ReplaceAllString(groups[1], "")
	value = strings.TrimSpace(value)
	if value == "" {
		return strings.ToLower(schedule.WholePromotion)
	}
	return strings.ToLower(value)
}
