package solver

import (
	"fmt"

	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"

	"timetable/internal/catalog"
)

// ExplainInfeasible diagnoses why a course could not be scheduled. It is
// advisory only: the greedy driver never consults it and its answer never
// changes solver behavior.
//
// It distinguishes three situations:
//   - the catalog holds no (slot, room) pair that could ever host the
//     course, even on an empty schedule;
//   - a maximum bipartite matching of all courses onto all suitable
//     (slot, room) pairs leaves some course unmatched, so the catalog is
//     oversubscribed regardless of assignment order;
//   - a complete matching exists, meaning the failure stems from the
//     greedy commit order or from teacher conflicts, which a matching over
//     pairs cannot express.
func ExplainInfeasible(cat *catalog.Catalog, schedule *Schedule, courseId string) (string, error) {
	if _, ok := cat.CourseById(courseId); !ok {
		return "", UnknownReferenceError{Kind: "course", Id: courseId}
	}

	// Check the course against an empty schedule first: a course nothing
	// can ever host is a catalog problem, not a scheduling one.
	staticChecker := NewConstraintChecker(cat, NewSchedule())
	staticPairs, err := ValidPairs(staticChecker, cat, courseId)
	if err != nil {
		return "", err
	}
	if len(staticPairs) == 0 {
		return fmt.Sprintf("course %q cannot be hosted by any (slot, room) pair in the catalog: no room of the required type offers a slot of sufficient duration", courseId), nil
	}

	// Match every course onto the pairs that could host it on an empty
	// schedule. The matching ignores teacher conflicts, so it bounds what
	// any assignment order could achieve, not what one will.
	pairs := make([]SlotRoom, 0, len(cat.Slots)*len(cat.Rooms))
	for _, slot := range cat.Slots {
		for _, room := range cat.Rooms {
			pairs = append(pairs, SlotRoom{SlotId: slot.Id, RoomId: room.Id})
		}
	}

	neighbors := func(courseAny any, pairAny any) (bool, error) {
		course := courseAny.(catalog.Course)
		pair := pairAny.(SlotRoom)
		return staticChecker.ValidAssignment(course.Id, pair.SlotId, pair.RoomId)
	}

	coursesAny := lo.Map(cat.Courses, func(course catalog.Course, _ int) any { return course })
	pairsAny := lo.Map(pairs, func(pair SlotRoom, _ int) any { return pair })

	graph, err := bipartitegraph.NewBipartiteGraph(coursesAny, pairsAny, neighbors)
	if err != nil {
		return "", err
	}

	matching := graph.LargestMatching()
	if len(matching) < len(cat.Courses) {
		return fmt.Sprintf("the catalog is oversubscribed: at most %d of its %d courses can hold a (slot, room) pair simultaneously", len(matching), len(cat.Courses)), nil
	}

	return fmt.Sprintf("course %q failed under the current commit order, but the catalog's rooms and slots could host every course; the conflict comes from teacher availability or the greedy assignment order", courseId), nil
}
