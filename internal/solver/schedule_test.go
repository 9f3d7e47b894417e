package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleCommit(t *testing.T) {
	t.Run("keeps entries in insertion order", func(t *testing.T) {
		schedule := NewSchedule()

		require.NoError(t, schedule.Commit(Assignment{CourseId: "cs101", SlotId: "slot3", RoomId: "r001"}, "t001"))
		require.NoError(t, schedule.Commit(Assignment{CourseId: "math101", SlotId: "slot1", RoomId: "r002"}, "t003"))

		entries := schedule.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, "cs101", entries[0].CourseId)
		assert.Equal(t, "math101", entries[1].CourseId)
	})

	t.Run("rejects a second entry for the same course", func(t *testing.T) {
		schedule := NewSchedule()
		require.NoError(t, schedule.Commit(Assignment{CourseId: "cs101", SlotId: "slot1", RoomId: "r001"}, "t001"))

		err := schedule.Commit(Assignment{CourseId: "cs101", SlotId: "slot2", RoomId: "r002"}, "t001")

		assert.ErrorContains(t, err, "already scheduled")
	})

	t.Run("rejects a shared (slot, room) pair", func(t *testing.T) {
		schedule := NewSchedule()
		require.NoError(t, schedule.Commit(Assignment{CourseId: "cs101", SlotId: "slot1", RoomId: "r001"}, "t001"))

		err := schedule.Commit(Assignment{CourseId: "math101", SlotId: "slot1", RoomId: "r001"}, "t003")

		assert.ErrorContains(t, err, "already occupied")
	})

	t.Run("rejects a double-booked teacher", func(t *testing.T) {
		schedule := NewSchedule()
		require.NoError(t, schedule.Commit(Assignment{CourseId: "math101", SlotId: "slot1", RoomId: "r002"}, "t003"))

		err := schedule.Commit(Assignment{CourseId: "math103", SlotId: "slot1", RoomId: "r004"}, "t003")

		assert.ErrorContains(t, err, "already teaching")
	})
}

func TestScheduleClear(t *testing.T) {
	schedule := NewSchedule()
	require.NoError(t, schedule.Commit(Assignment{CourseId: "cs101", SlotId: "slot1", RoomId: "r001"}, "t001"))

	schedule.Clear()

	assert.Empty(t, schedule.Entries())
	assert.Zero(t, schedule.Len())
	assert.False(t, schedule.Scheduled("cs101"))

	// Cleared occupancy must be reusable
	assert.NoError(t, schedule.Commit(Assignment{CourseId: "cs101", SlotId: "slot1", RoomId: "r001"}, "t001"))
}

func TestScheduleEntriesReturnsCopy(t *testing.T) {
	schedule := NewSchedule()
	require.NoError(t, schedule.Commit(Assignment{CourseId: "cs101", SlotId: "slot1", RoomId: "r001"}, "t001"))

	entries := schedule.Entries()
	entries[0].CourseId = "tampered"

	assert.Equal(t, "cs101", schedule.Entries()[0].CourseId)
}
