package match

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	htmlTags   = regexp.MustCompile(`<[^>]*>`)
	nonWord    = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	multiSpace = regexp.MustCompile(`\s+`)
	ueMarker   = regexp.MustCompile(`(?i)\bue\s*(?::\s*([0-9]+(?:\.[0-9]+)*)|([0-9]+(?:\.[0-9]+)+))`)
)

// accentStripper decomposes runes and drops combining marks, so "é" -> "e".
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// stopwords are tokens that carry no discriminative power when comparing
// course titles against room-feed summaries: French articles, prepositions
// and conjunctions, plus domain noise (course-type abbreviations, teaching-unit
// and group markers, level and program names).
var stopwords = map[string]bool{
	// Articles, prepositions, conjunctions
	"le": true, "la": true, "les": true, "l": true, "un": true, "une": true,
	"des": true, "du": true, "de": true, "d": true, "et": true, "ou": true,
	"a": true, "au": true, "aux": true, "en": true, "sur": true, "sous": true,
	"pour": true, "par": true, "avec": true, "sans": true, "dans": true,
	"ce": true, "cette": true, "ces": true, "se": true, "sa": true, "son": true,
	"ses": true, "leur": true, "leurs": true, "ne": true, "pas": true,
	// Domain noise
	"cm": true, "td": true, "tp": true, "tpg": true, "ue": true,
	"gr": true, "gpe": true, "grp": true, "groupe": true,
	"obligatoire": true, "oblig": true,
	"promo": true, "promotion": true, "semestre": true,
	"l1": true, "l2": true, "l3": true, "m1": true, "m2": true,
	"ifmem": true, "ifsi": true,
}

// NormalizeTitle reduces a free-text title to its set of comparable tokens:
// HTML tags become spaces, accents are stripped, everything is lowercased,
// non-word runes become spaces and stop-words are removed. Total and
// deterministic; an empty input yields an empty set.
func NormalizeTitle(raw string) []string {
	cleaned := NormalizeText(raw)
	if cleaned == "" {
		return nil
	}

	tokens := make([]string, 0, 8)
	seen := make(map[string]bool)
	for _, token := range strings.Split(cleaned, " ") {
		if stopwords[token] || seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}
	return tokens
}

// NormalizeText applies every normalization step of NormalizeTitle except
// stop-word removal and tokenization, returning a single cleaned string.
func NormalizeText(raw string) string {
	if raw == "" {
		return ""
	}

	cleaned := htmlTags.ReplaceAllString(raw, " ")
	if stripped, _, err := transform.String(accentStripper, cleaned); err == nil {
		cleaned = stripped
	}
	cleaned = strings.ToLower(cleaned)
	cleaned = nonWord.ReplaceAllString(cleaned, " ")
	cleaned = multiSpace.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// NormalizeUECode extracts the dotted numeric teaching-unit code following a
// "UE" marker and canonicalizes it: "UE : 04.01" -> "4.1". The marker must be
// a standalone word, and without a colon only dotted numbers qualify, so
// French words ending in "ue" followed by a bare number ("Pratique 3") never
// yield a code. It returns an empty string when no recognizable code is
// present. An empty code signals absence of evidence and must never be
// treated as equal to another empty code.
func NormalizeUECode(raw string) string {
	groups := ueMarker.FindStringSubmatch(raw)
	if groups == nil {
		return ""
	}
	code := groups[1]
	if code == "" {
		code = groups[2]
	}

	parts := make([]string, 0, 2)
	for _, part := range strings.Split(code, ".") {
		number, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		parts = append(parts, strconv.Itoa(number))
	}
	return strings.Join(parts, ".")
}
