package match

import "math"

// exhaustiveResolver enumerates every injective mapping from course indices
// to room indices and keeps the one maximizing the total summed score. When
// there are fewer rooms than courses the shortfall maps to Unresolved. Ties
// are broken by first-found in index order, which keeps the result stable and
// deterministic. Daily pools are small, so full enumeration stays cheap.
type exhaustiveResolver struct{}

func (exhaustiveResolver) resolve(scores [][]float64, minScore float64) []int {
	totalCourses := len(scores)
	if totalCourses == 0 {
		return nil
	}
	totalRooms := len(scores[0])

	assignment := make([]int, totalCourses)
	best := make([]int, totalCourses)
	for i := range best {
		best[i] = Unresolved
	}
	bestTotal := math.Inf(-1)
	used := make([]bool, totalRooms)

	var enumerate func(course int, total float64)
	enumerate = func(course int, total float64) {
		if course == totalCourses {
			if total > bestTotal {
				bestTotal = total
				copy(best, assignment)
			}
			return
		}

		for room := 0; room < totalRooms; room++ {
			if used[room] {
				continue
			}
			used[room] = true
			assignment[course] = room
			enumerate(course+1, total+scores[course][room])
			used[room] = false
		}

		// Shortfall branch: only reachable when rooms cannot cover every course
		if totalRooms < totalCourses {
			assignment[course] = Unresolved
			enumerate(course+1, total)
		}
	}
	enumerate(0, 0)

	return applyThreshold(best, scores, minScore)
}
