package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"timetable/internal/catalog"
)

func mustCatalog(t *testing.T, courses []catalog.Course, teachers []catalog.Teacher, rooms []catalog.Room, slots []catalog.TimeSlot) *catalog.Catalog {
	t.Helper()
	built, err := catalog.New(courses, teachers, rooms, slots)
	require.NoError(t, err)
	return built
}

// labCatalog: one course requiring a computer lab for 2 hours, one lab and
// one classroom, a single 2-hour slot.
func labCatalog(t *testing.T) *catalog.Catalog {
	return mustCatalog(t,
		[]catalog.Course{
			{Id: "cs101", Name: "CS 101", Teacher: "t001", Duration: 2, RequiredRoom: "computer_lab"},
		},
		[]catalog.Teacher{
			{Id: "t001", Name: "Dr. Smith", Department: "cs"},
		},
		[]catalog.Room{
			{Id: "r001", Type: "computer_lab", Capacity: 30},
			{Id: "r003", Type: "classroom", Capacity: 40},
		},
		[]catalog.TimeSlot{
			{Id: "slot1", Day: catalog.Monday, Start: 1000, End: 1200, Duration: 2},
		},
	)
}

// sharedTeacherCatalog: two courses taught by the same teacher, each
// fitting only the single 1-hour slot.
func sharedTeacherCatalog(t *testing.T) *catalog.Catalog {
	return mustCatalog(t,
		[]catalog.Course{
			{Id: "math101", Name: "Calculus I", Teacher: "t003", Duration: 1, RequiredRoom: "classroom"},
			{Id: "math103", Name: "Calculus II", Teacher: "t003", Duration: 1, RequiredRoom: "classroom"},
		},
		[]catalog.Teacher{
			{Id: "t003", Name: "Dr. Brown", Department: "mathematics"},
		},
		[]catalog.Room{
			{Id: "r002", Type: "classroom", Capacity: 40},
			{Id: "r004", Type: "classroom", Capacity: 40},
		},
		[]catalog.TimeSlot{
			{Id: "slot1", Day: catalog.Monday, Start: 800, End: 900, Duration: 1},
		},
	)
}
