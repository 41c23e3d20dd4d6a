package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreMatrixUEPrefilter(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("a course code restricts candidates to rooms citing it", func(t *testing.T) {
		// Arrange
		course := features{date: "2026-09-01", ueCode: "3.2", tokens: []string{"anatomie"}}
		citing := features{date: "2026-09-01", raw: "cm ue3.2 anatomie", tokens: []string{"anatomie"}}
		other := features{date: "2026-09-01", raw: "td physiologie", tokens: []string{"physiologie"}}

		// Act
		scores := cfg.scoreMatrix([]features{course}, []features{citing, other}, nil)

		// Assert: the non-citing room is never scored
		assert.Greater(t, scores[0][0], 0.0)
		assert.Zero(t, scores[0][1])
	})

	t.Run("a code cited by no room falls back to the full pool", func(t *testing.T) {
		course := features{date: "2026-09-01", ueCode: "9.9", tokens: []string{"anatomie"}}
		rooms := []features{
			{date: "2026-09-01", raw: "cm anatomie", tokens: []string{"anatomie"}},
			{date: "2026-09-01", raw: "td physiologie", tokens: []string{"physiologie"}},
		}

		scores := cfg.scoreMatrix([]features{course}, rooms, nil)

		for j := range rooms {
			assert.Greater(t, scores[0][j], 0.0, "room %v", j)
		}
	})

	t.Run("courses without a code are never filtered", func(t *testing.T) {
		course := features{date: "2026-09-01", tokens: []string{"anatomie"}}
		rooms := []features{
			{date: "2026-09-01", raw: "cm ue3.2 anatomie", tokens: []string{"anatomie"}},
			{date: "2026-09-01", raw: "td physiologie", tokens: []string{"physiologie"}},
		}

		scores := cfg.scoreMatrix([]features{course}, rooms, nil)

		for j := range rooms {
			assert.Greater(t, scores[0][j], 0.0, "room %v", j)
		}
	})
}
