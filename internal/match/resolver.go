package match

import "fmt"

// Unresolved marks a course index that could not be paired with any room.
const Unresolved = -1

// Resolver strategies. One strategy is picked per run; mixing strategies
// within a single run is not supported.
const (
	StrategyExhaustive = "exhaustive"
	StrategyGreedy     = "greedy"
	StrategyMatching   = "matching"
)

// resolver selects, for one day's score matrix, the room index assigned to
// each course index (or Unresolved). Implementations must never assign the
// same room to two distinct courses, with the documented exception of the
// greedy strategy, and must honor minScore: a pair scoring below it is
// reported as Unresolved even when it was the best available option.
type resolver interface {
	resolve(scores [][]float64, minScore float64) []int
}

func newResolver(strategy string) (resolver, error) {
	switch strategy {
	case StrategyExhaustive:
		return exhaustiveResolver{}, nil
	case StrategyGreedy:
		return greedyResolver{}, nil
	case StrategyMatching:
		return matchingResolver{}, nil
	default:
		return nil, fmt.Errorf("%v is not a valid strategy", strategy)
	}
}

// applyThreshold replaces below-threshold pairs with Unresolved. A weak best
// match is still reported as unknown, never surfaced as a false positive.
func applyThreshold(assignment []int, scores [][]float64, minScore float64) []int {
	for course, room := range assignment {
		if room != Unresolved && scores[course][room] < minScore {
			assignment[course] = Unresolved
		}
	}
	return assignment
}
