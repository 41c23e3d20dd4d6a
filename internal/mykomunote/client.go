// Package mykomunote talks to the MyKomunoté portal: it authenticates a
// session and pulls the class-schedule agenda as JSON, turning each row into
// a schedule.CourseEntry.
package mykomunote

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"
)

type Config struct {
	BaseURL         string
	Username        string
	Password        string
	APIEndpoint     string
	ModuleAgenda    string
	ActionAgenda    string
	ObligatoryClass string // CSS class of the icon flagging mandatory sessions
}

type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Jar:     jar,
			Timeout: 20 * time.Second,
		},
	}
}

// Login posts the portal credential form and keeps the session cookies on the
// client's jar for subsequent agenda calls.
func (c *Client) Login() error {
	form := url.Values{
		"CODE":         {c.cfg.Username},
		"MOT_DE_PASSE": {c.cfg.Password},
	}

	response, err := c.http.PostForm(c.cfg.BaseURL, form)
	if err != nil {
		return fmt.Errorf("cannot reach portal: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("portal login failed with status %v", response.StatusCode)
	}
	return nil
}
