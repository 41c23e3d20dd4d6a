package match

// greedyResolver takes, for each course independently, the single
// highest-scoring room of the day, with no injectivity constraint. Acceptable
// when room counts never force courses to compete; the whole-promotion feeds
// this tool was written for rarely do.
type greedyResolver struct{}

func (greedyResolver) resolve(scores [][]float64, minScore float64) []int {
	assignment := make([]int, len(scores))
	for course, row := range scores {
		bestRoom, bestScore := Unresolved, 0.0
		for room, score := range row {
			if score > bestScore {
				bestRoom, bestScore = room, score
			}
		}
		assignment[course] = bestRoom
	}
	return applyThreshold(assignment, scores, minScore)
}
