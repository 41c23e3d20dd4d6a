// Package ade fetches the room-allocation ICS feed published by the ADE
// planning service and extracts its events as schedule.RoomEntry values.
package ade

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"edtsync/internal/schedule"

	ics "github.com/arran4/golang-ical"
)

const dayFormat = "2006-01-02"

type Config struct {
	BaseURL   string
	Resources string
	ProjectID string
}

type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchRooms downloads the ICS feed covering [first, last] and converts its
// VEVENTs into room entries. Events whose timestamps cannot be parsed are
// dropped and counted rather than failing the fetch.
func (c *Client) FetchRooms(first, last time.Time) ([]schedule.RoomEntry, error) {
	query := url.Values{
		"resources": {c.cfg.Resources},
		"projectId": {c.cfg.ProjectID},
		"calType":   {"ical"},
		"firstDate": {first.Format(dayFormat)},
		"lastDate":  {last.Format(dayFormat)},
	}

	response, err := c.http.Get(c.cfg.BaseURL + "?" + query.Encode())
	if err != nil {
		return nil, fmt.Errorf("cannot fetch room feed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("room feed request failed with status %v", response.StatusCode)
	}

	calendar, err := ics.ParseCalendar(response.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot parse room feed: %w", err)
	}

	return roomsFromCalendar(calendar), nil
}

func roomsFromCalendar(calendar *ics.Calendar) []schedule.RoomEntry {
	events := calendar.Events()
	rooms := make([]schedule.RoomEntry, 0, len(events))
	skipped := 0

	for _, event := range events {
		start, err := event.GetStartAt()
		if err != nil {
			skipped++
			continue
		}
		end, err := event.GetEndAt()
		if err != nil {
			skipped++
			continue
		}

		rooms = append(rooms, schedule.RoomEntry{
			Summary:  propertyValue(event, ics.ComponentPropertySummary),
			Location: propertyValue(event, ics.ComponentPropertyLocation),
			Start:    start,
			End:      end,
		})
	}

	if skipped > 0 {
		log.Printf("skipped %v room events without usable timestamps", skipped)
	}
	return rooms
}

func propertyValue(event *ics.VEvent, name ics.ComponentProperty) string {
	property := event.GetProperty(name)
	if property == nil {
		return ""
	}
	return property.Value
}
