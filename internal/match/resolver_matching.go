package match

import (
	"log"

	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// matchingResolver models the day as a bipartite graph whose edges are the
// candidate pairs scoring at least minScore and takes a largest matching over
// it. This maximizes the number of confidently resolved courses rather than
// the summed score; courses left out of the matching resolve to Unresolved.
type matchingResolver struct{}

func (matchingResolver) resolve(scores [][]float64, minScore float64) []int {
	totalCourses := len(scores)
	if totalCourses == 0 {
		return nil
	}
	totalRooms := len(scores[0])

	assignment := make([]int, totalCourses)
	for i := range assignment {
		assignment[i] = Unresolved
	}
	if totalRooms == 0 {
		return assignment
	}

	// Edge predicate: the pair carries enough evidence to be considered
	neighbors := func(courseAny any, roomAny any) (bool, error) {
		course, room := courseAny.(int), roomAny.(int)
		return scores[course][room] >= minScore, nil
	}

	coursesAny := lo.Map(lo.Range(totalCourses), func(course int, _ int) any { return course })
	roomsAny := lo.Map(lo.Range(totalRooms), func(room int, _ int) any { return room })

	graph, err := bipartitegraph.NewBipartiteGraph(coursesAny, roomsAny, neighbors)
	if err != nil {
		// The predicate never fails, but degrade to all-unresolved regardless
		log.Printf("cannot build bipartite graph: %v", err)
		return assignment
	}

	for _, edge := range graph.LargestMatching() {
		course, room := edge.Node1, edge.Node2-totalCourses
		assignment[course] = room
	}

	return assignment
}
