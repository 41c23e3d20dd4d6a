package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	t.Run("strips accents, markup and stop-words", func(t *testing.T) {
		// Arrange
		raw := "<b>CM UE 3.2</b> Anatomie générale de l'épaule"

		// Act
		tokens := NormalizeTitle(raw)

		// Assert
		assert.Equal(t, []string{"3", "2", "anatomie", "generale", "epaule"}, tokens)
	})

	t.Run("tags are replaced by spaces, never fused", func(t *testing.T) {
		tokens := NormalizeTitle("Physiologie<br>rénale")
		assert.Equal(t, []string{"physiologie", "renale"}, tokens)
	})

	t.Run("total on empty input", func(t *testing.T) {
		assert.Empty(t, NormalizeTitle(""))
		assert.Empty(t, NormalizeTitle("   "))
		assert.Empty(t, NormalizeTitle("de la les")) // stop-words only
	})

	t.Run("idempotent", func(t *testing.T) {
		titles := []string{
			"<b>CM UE 3.2</b> Anatomie générale de l'épaule",
			"TD UE4.1 Physiologie rénale — Gr B",
			"★ TP - Gestes d'urgence (obligatoire)",
		}
		for _, title := range titles {
			once := NormalizeTitle(title)
			twice := NormalizeTitle(strings.Join(once, " "))
			assert.Equal(t, once, twice)
		}
	})
}

func TestNormalizeUECode(t *testing.T) {
	cases := map[string]string{
		"UE: 04.01":                "4.1",
		"UE:3.02":                  "3.2",
		"UE : 2.10":                "2.10",
		"UE : 5":                   "5",
		"ue 5.3":                   "5.3",
		"CM UE3.2 Anatomie":        "3.2",
		"L1 IFMEM CM UE4.1 Physio": "4.1",
		"":                         "",
		"no code here":             "",
		"Salle 12 de 9h a 12h":     "",
		"TD Pratique clinique 3":   "", // "-ue" word ending, not a marker
		"Statistique 2":            "",
		"ue 5":                     "", // undotted needs an explicit colon
	}

	for raw, expected := range cases {
		assert.Equal(t, expected, NormalizeUECode(raw), "raw: %q", raw)
	}
}

func TestEmptyUECodesNeverMatch(t *testing.T) {
	// Two entries both lacking a code must not score the UE bonus
	cfg := DefaultConfig()
	course := features{date: "2026-09-01", tokens: []string{"anatomie"}}
	room := features{date: "2026-09-01", tokens: []string{"droit"}}

	withoutCodes := cfg.pairScore(course, room, nil)

	course.ueCode, room.ueCode = "3.2", "4.1"
	withDifferentCodes := cfg.pairScore(course, room, nil)

	assert.Equal(t, withDifferentCodes, withoutCodes)
}
