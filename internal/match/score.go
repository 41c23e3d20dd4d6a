package match

import (
	"strings"

	"edtsync/internal/schedule"
)

// pairScore combines every evidence channel for one same-day candidate pair
// into a single non-negative score, as a sum of independent bonus terms. The
// timing policy is the near-start variant: a start-time difference under
// NearTimeWindow earns NearTimeBonus, there is no separate exact-time bonus.
func (cfg Config) pairScore(course, room features, weights map[string]float64) float64 {
	score := cfg.TitleWeight * TokenSimilarity(course.tokens, room.tokens, weights)

	// Missing-vs-missing is absence of evidence on both sides, never a match.
	if course.ueCode != "" && course.ueCode == room.ueCode {
		score += cfg.UEBonus
	}
	if course.date == room.date {
		score += cfg.DayBonus
	}
	if course.courseType != schedule.TypeUnknown && course.courseType == room.courseType {
		score += cfg.TypeBonus
	}

	delta := course.start.Sub(room.start)
	if delta < 0 {
		delta = -delta
	}
	if delta < cfg.NearTimeWindow {
		score += cfg.NearTimeBonus
	}

	return score
}

// scoreMatrix fills the dense per-day (course, room) score matrix. When the
// UE pre-filter is active, a course carrying a UE code is only scored against
// rooms whose free text contains that code; if that would leave the course
// with zero candidates, the full room pool is used instead, so a filter can
// never erase all evidence while alternatives exist.
func (cfg Config) scoreMatrix(courses, rooms []features, weights map[string]float64) [][]float64 {
	scores := make([][]float64, len(courses))
	for i, course := range courses {
		scores[i] = make([]float64, len(rooms))

		eligible := make([]bool, len(rooms))
		anyEligible := false
		for j, room := range rooms {
			eligible[j] = !cfg.UEPrefilter || course.ueCode == "" ||
				strings.Contains(room.raw, course.ueCode)
			anyEligible = anyEligible || eligible[j]
		}

		for j, room := range rooms {
			if anyEligible && !eligible[j] {
				continue
			}
			scores[i][j] = cfg.pairScore(course, room, weights)
		}
	}
	return scores
}
