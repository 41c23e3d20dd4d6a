package mykomunote

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	groupPrefix       = regexp.MustCompile(`(?i)^Gpe\s*:\s*(?:Gr\s*)?(.+)$`)
	trainersPrefix    = regexp.MustCompile(`^Formateur\(s\)\s*:\s*`)
	instructorsPrefix = regexp.MustCompile(`^Intervenant\(s\)\s*:\s*`)
)

// stripHTML extracts the text content of an HTML fragment, decoding entities
// along the way. Invalid fragments degrade to the raw string.
func stripHTML(fragment string) string {
	if fragment == "" {
		return ""
	}
	document, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return strings.TrimSpace(document.Text())
}

// cleanText flattens a multi-line portal field into a single line.
func cleanText(raw string) string {
	text := stripHTML(raw)
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "\n", " - ")
	return strings.TrimSpace(text)
}

func cleanTypeLabel(raw string) string {
	return strings.Trim(cleanText(raw), "- ")
}

// cleanGroup reduces "Gpe : Gr B" (and variants) to the bare group name.
func cleanGroup(raw string) string {
	text := strings.TrimSpace(stripHTML(raw))
	if groups := groupPrefix.FindStringSubmatch(text); groups != nil {
		return strings.TrimSpace(groups[1])
	}
	return text
}

func cleanTrainers(raw string) string {
	return trainersPrefix.ReplaceAllString(stripHTML(raw), "")
}

func cleanInstructors(raw string) string {
	return instructorsPrefix.ReplaceAllString(stripHTML(raw), "")
}

// isObligatory reports whether the agenda row's title fragment carries the
// portal's mandatory-session icon.
func (c *Client) isObligatory(titleHTML string) bool {
	if titleHTML == "" || c.cfg.ObligatoryClass == "" {
		return false
	}
	document, err := goquery.NewDocumentFromReader(strings.NewReader(titleHTML))
	if err != nil {
		return false
	}
	return document.Find("i."+c.cfg.ObligatoryClass).Length() > 0
}
