package solver

import "fmt"

// Assignment binds one course to one time slot and one room.
type Assignment struct {
	CourseId string
	SlotId   string
	RoomId   string
}

// Schedule is the only mutable state of a solver run: the committed
// assignments in insertion order, plus occupancy indexes so availability
// checks do not scan the whole entry list.
type Schedule struct {
	entries []Assignment

	scheduledCourses map[string]bool
	occupiedRooms    map[string]map[string]bool // slot id -> occupied room ids
	busyTeachers     map[string]map[string]bool // slot id -> busy teacher ids
}

func NewSchedule() *Schedule {
	schedule := &Schedule{}
	schedule.Clear()
	return schedule
}

// Commit appends an assignment and updates the occupancy indexes. The
// search strategies only propose validated assignments; the uniqueness
// re-checks here keep the store's invariants independent of the caller.
func (schedule *Schedule) Commit(assignment Assignment, teacherId string) error {
	if schedule.scheduledCourses[assignment.CourseId] {
		return fmt.Errorf("course %q is already scheduled", assignment.CourseId)
	}
	if schedule.occupiedRooms[assignment.SlotId][assignment.RoomId] {
		return fmt.Errorf("room %q is already occupied during slot %q", assignment.RoomId, assignment.SlotId)
	}
	if schedule.busyTeachers[assignment.SlotId][teacherId] {
		return fmt.Errorf("teacher %q is already teaching during slot %q", teacherId, assignment.SlotId)
	}

	schedule.entries = append(schedule.entries, assignment)
	schedule.scheduledCourses[assignment.CourseId] = true

	if _, ok := schedule.occupiedRooms[assignment.SlotId]; !ok {
		schedule.occupiedRooms[assignment.SlotId] = make(map[string]bool)
	}
	schedule.occupiedRooms[assignment.SlotId][assignment.RoomId] = true

	if _, ok := schedule.busyTeachers[assignment.SlotId]; !ok {
		schedule.busyTeachers[assignment.SlotId] = make(map[string]bool)
	}
	schedule.busyTeachers[assignment.SlotId][teacherId] = true

	return nil
}

// Clear resets the schedule to empty.
func (schedule *Schedule) Clear() {
	schedule.entries = nil
	schedule.scheduledCourses = make(map[string]bool)
	schedule.occupiedRooms = make(map[string]map[string]bool)
	schedule.busyTeachers = make(map[string]map[string]bool)
}

// Entries returns a copy of the committed assignments in insertion order.
func (schedule *Schedule) Entries() []Assignment {
	entries := make([]Assignment, len(schedule.entries))
	copy(entries, schedule.entries)
	return entries
}

func (schedule *Schedule) Len() int {
	return len(schedule.entries)
}

// Scheduled reports whether the course already has a committed entry.
func (schedule *Schedule) Scheduled(courseId string) bool {
	return schedule.scheduledCourses[courseId]
}

func (schedule *Schedule) roomOccupied(slotId, roomId string) bool {
	return schedule.occupiedRooms[slotId][roomId]
}

func (schedule *Schedule) teacherBusy(slotId, teacherId string) bool {
	return schedule.busyTeachers[slotId][teacherId]
}
