package mykomunote

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"edtsync/internal/schedule"

	"github.com/mitchellh/mapstructure"
)

// agendaRow mirrors one dictionary of the portal's agenda JSON payload.
type agendaRow struct {
	Intitule    string `mapstructure:"INTITULE"`
	TypeCours   string `mapstructure:"TYPE_COURS"`
	UECode      string `mapstructure:"UE_CODE"`
	UELibe      string `mapstructure:"UE_LIBE"`
	Groupe      string `mapstructure:"GROUPE"`
	MembrePerso string `mapstructure:"MEMBRE_PERSO"`
	Intervenant string `mapstructure:"INTERVENANT"`
	TitleHTML   string `mapstructure:"title"`
	Start       string `mapstructure:"start"`
	End         string `mapstructure:"end"`
}

// Timestamp layouts observed in agenda payloads, probed in order.
var timeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// FetchAgenda retrieves the class schedule between start and end and converts
// it into course entries. Rows that are not dictionaries or whose timestamps
// cannot be parsed are skipped and counted, never fatal: a single bad row must
// not lose the whole horizon.
func (c *Client) FetchAgenda(start, end time.Time, location *time.Location) ([]schedule.CourseEntry, error) {
	form := url.Values{
		"sCheminVersFichier": {c.cfg.ModuleAgenda},
		"bEstUneClasse":      {"true"},
		"sAction":            {c.cfg.ActionAgenda},
		"sA2NINF":            {""},
		"startDate":          {start.Format(time.RFC3339)},
		"endDate":            {end.Format(time.RFC3339)},
	}

	response, err := c.http.PostForm(c.cfg.BaseURL+"/"+c.cfg.APIEndpoint, form)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch agenda: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agenda request failed with status %v", response.StatusCode)
	}

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot read agenda response: %w", err)
	}

	var raw []any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("agenda response is not a JSON array: %w", err)
	}

	return c.entriesFromRows(raw, location), nil
}

func (c *Client) entriesFromRows(raw []any, location *time.Location) []schedule.CourseEntry {
	entries := make([]schedule.CourseEntry, 0, len(raw))
	skipped := 0

	for _, item := range raw {
		dict, ok := item.(map[string]any)
		if !ok {
			skipped++
			continue
		}

		var row agendaRow
		if err := mapstructure.Decode(dict, &row); err != nil {
			skipped++
			continue
		}

		startAt, err := parseTime(row.Start, location)
		if err != nil {
			log.Printf("skipping agenda row with bad start %q: %v", row.Start, err)
			skipped++
			continue
		}
		endAt, err := parseTime(row.End, location)
		if err != nil {
			log.Printf("skipping agenda row with bad end %q: %v", row.End, err)
			skipped++
			continue
		}

		entries = append(entries, schedule.CourseEntry{
			Title:       cleanText(row.Intitule),
			TypeLabel:   cleanTypeLabel(row.TypeCours),
			UECode:      stripHTML(row.UECode),
			UELabel:     stripHTML(row.UELibe),
			Group:       cleanGroup(row.Groupe),
			Trainers:    cleanTrainers(row.MembrePerso),
			Instructors: cleanInstructors(row.Intervenant),
			Obligatory:  c.isObligatory(row.TitleHTML),
			Start:       startAt,
			End:         endAt,
		})
	}

	if skipped > 0 {
		log.Printf("skipped %v malformed agenda rows", skipped)
	}
	return entries
}

func parseTime(raw string, location *time.Location) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, location); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}
