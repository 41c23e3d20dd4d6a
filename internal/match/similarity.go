package match

// charSimilarityThreshold is the minimum character-level ratio for two tokens
// to be considered the same word despite spelling or abbreviation drift
// ("physio" vs "physiologie").
const charSimilarityThreshold = 0.7

// TokenSimilarity measures how much of token set a is covered by token set b,
// weighting each token of a by weights (1 when absent). A token of a counts as
// covered when some token of b reaches charSimilarityThreshold of LCS-based
// character similarity. The result lies in [0,1] and is 0 for an empty a.
//
// The measure is intentionally asymmetric: a is the side whose coverage is
// being scored, so callers must keep the same orientation across a whole day.
func TokenSimilarity(a, b []string, weights map[string]float64) float64 {
	if len(a) == 0 {
		return 0
	}

	var covered, total float64
	for _, token := range a {
		weight, ok := weights[token]
		if !ok {
			weight = 1
		}
		total += weight

		for _, other := range b {
			if lcsRatio(token, other) >= charSimilarityThreshold {
				covered += weight
				break
			}
		}
	}
	if total == 0 {
		return 0
	}
	return covered / total
}

// ComputeWeights builds the per-day token weight table: every token occurring
// across the day's course and room titles is weighted inversely to its
// frequency, so a word recurring through the whole day (a level name, a
// program name) carries little evidence while a rare shared word carries a
// lot. Weights are local to one day on purpose; the noise floor of one day
// says nothing about another.
func ComputeWeights(tokenSets [][]string) map[string]float64 {
	frequencies := make(map[string]int)
	for _, tokens := range tokenSets {
		for _, token := range tokens {
			frequencies[token]++
		}
	}

	weights := make(map[string]float64, len(frequencies))
	for token, frequency := range frequencies {
		weights[token] = 1 / float64(frequency)
	}
	return weights
}

// lcsRatio is a difflib-style similarity ratio between two tokens: twice the
// length of their longest common subsequence over their combined length.
func lcsRatio(a, b string) float64 {
	if a == b {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	previous := make([]int, len(rb)+1)
	current := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				current[j] = previous[j-1] + 1
			} else {
				current[j] = max(previous[j], current[j-1])
			}
		}
		previous, current = current, previous
	}

	lcs := previous[len(rb)]
	return 2 * float64(lcs) / float64(len(ra)+len(rb))
}
