package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable/internal/catalog"
)

func TestFirstFit(t *testing.T) {
	t.Run("never picks an unsuitable room", func(t *testing.T) {
		cat := labCatalog(t)
		checker := NewConstraintChecker(cat, NewSchedule())

		pair, err := FirstFit(checker, cat, "cs101")

		require.NoError(t, err)
		assert.Equal(t, SlotRoom{SlotId: "slot1", RoomId: "r001"}, pair)
	})

	t.Run("fails when every pair is invalid", func(t *testing.T) {
		cat := sharedTeacherCatalog(t)
		schedule := NewSchedule()
		checker := NewConstraintChecker(cat, schedule)
		require.NoError(t, schedule.Commit(Assignment{CourseId: "math101", SlotId: "slot1", RoomId: "r002"}, "t003"))

		_, err := FirstFit(checker, cat, "math103")

		var noAssignment NoValidAssignmentError
		require.ErrorAs(t, err, &noAssignment)
		assert.Equal(t, "math103", noAssignment.CourseId)
	})

	t.Run("enumerates slots chronologically, not by id string", func(t *testing.T) {
		// slot10 is chronologically first but sorts after slot9 as a string
		cat := mustCatalog(t,
			[]catalog.Course{{Id: "math101", Name: "Calculus I", Teacher: "t003", Duration: 1, RequiredRoom: "classroom"}},
			[]catalog.Teacher{{Id: "t003", Name: "Dr. Brown", Department: "mathematics"}},
			[]catalog.Room{{Id: "r002", Type: "classroom", Capacity: 40}},
			[]catalog.TimeSlot{
				{Id: "slot9", Day: catalog.Friday, Start: 800, End: 900, Duration: 1},
				{Id: "slot10", Day: catalog.Monday, Start: 800, End: 900, Duration: 1},
			},
		)
		checker := NewConstraintChecker(cat, NewSchedule())

		pair, err := FirstFit(checker, cat, "math101")

		require.NoError(t, err)
		assert.Equal(t, "slot10", pair.SlotId)
	})
}

func TestBestFit(t *testing.T) {
	t.Run("picks the chronologically earliest open pair", func(t *testing.T) {
		cat := mustCatalog(t,
			[]catalog.Course{{Id: "math101", Name: "Calculus I", Teacher: "t003", Duration: 1, RequiredRoom: "classroom"}},
			[]catalog.Teacher{{Id: "t003", Name: "Dr. Brown", Department: "mathematics"}},
			[]catalog.Room{
				{Id: "r002", Type: "classroom", Capacity: 40},
				{Id: "r004", Type: "classroom", Capacity: 40},
			},
			[]catalog.TimeSlot{
				{Id: "slot4", Day: catalog.Tuesday, Start: 800, End: 900, Duration: 1},
				{Id: "slot1", Day: catalog.Monday, Start: 900, End: 1000, Duration: 1},
				{Id: "slot2", Day: catalog.Monday, Start: 800, End: 900, Duration: 1},
			},
		)
		schedule := NewSchedule()
		checker := NewConstraintChecker(cat, schedule)

		pair, err := BestFit(checker, cat, "math101")

		require.NoError(t, err)
		assert.Equal(t, SlotRoom{SlotId: "slot2", RoomId: "r002"}, pair, "monday 08:00 precedes monday 09:00 and tuesday 08:00")
	})

	t.Run("breaks slot ties by room catalog order", func(t *testing.T) {
		cat := sharedTeacherCatalog(t)
		checker := NewConstraintChecker(cat, NewSchedule())

		pair, err := BestFit(checker, cat, "math101")

		require.NoError(t, err)
		assert.Equal(t, "r002", pair.RoomId)
	})

	t.Run("fails with NoValidAssignment when nothing fits", func(t *testing.T) {
		cat := labCatalog(t)
		schedule := NewSchedule()
		checker := NewConstraintChecker(cat, schedule)
		require.NoError(t, schedule.Commit(Assignment{CourseId: "cs101", SlotId: "slot1", RoomId: "r001"}, "t001"))

		_, err := BestFit(checker, cat, "cs101")

		var noAssignment NoValidAssignmentError
		assert.ErrorAs(t, err, &noAssignment)
	})
}

func TestValidPairs(t *testing.T) {
	cat := sharedTeacherCatalog(t)
	checker := NewConstraintChecker(cat, NewSchedule())

	pairs, err := ValidPairs(checker, cat, "math101")

	require.NoError(t, err)
	assert.Equal(t, []SlotRoom{
		{SlotId: "slot1", RoomId: "r002"},
		{SlotId: "slot1", RoomId: "r004"},
	}, pairs)
}
