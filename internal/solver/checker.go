package solver

import "timetable/internal/catalog"

// ConstraintChecker holds the pure predicates deciding whether a
// (course, slot, room) triple is legal. Every predicate re-reads the live
// schedule on each call: the store mutates between calls during a run, so
// nothing here may be memoized.
type ConstraintChecker interface {
	// Checks whether the room's type satisfies the course's requirement
	RoomSuitable(courseId, roomId string) (bool, error)

	// Checks whether the course's duration fits in the slot (sufficiency, not equality)
	TimeSuitable(courseId, slotId string) (bool, error)

	// Checks whether the teacher has no committed assignment in the slot
	TeacherAvailable(teacherId, slotId string) (bool, error)

	// Checks whether the room has no committed assignment in the slot
	RoomAvailable(roomId, slotId string) (bool, error)

	// Checks the conjunction of the four predicates above, with teacher
	// availability keyed off the course's own teacher
	ValidAssignment(courseId, slotId, roomId string) (bool, error)
}

func NewConstraintChecker(catalog *catalog.Catalog, schedule *Schedule) ConstraintChecker {
	return &scheduleConstraintChecker{
		catalog:  catalog,
		schedule: schedule,
	}
}

type scheduleConstraintChecker struct {
	catalog  *catalog.Catalog
	schedule *Schedule
}

func (checker *scheduleConstraintChecker) RoomSuitable(courseId, roomId string) (bool, error) {
	course, ok := checker.catalog.CourseById(courseId)
	if !ok {
		return false, UnknownReferenceError{Kind: "course", Id: courseId}
	}
	room, ok := checker.catalog.RoomById(roomId)
	if !ok {
		return false, UnknownReferenceError{Kind: "room", Id: roomId}
	}
	return course.RequiredRoom == catalog.AnyRoom || course.RequiredRoom == room.Type, nil
}

func (checker *scheduleConstraintChecker) TimeSuitable(courseId, slotId string) (bool, error) {
	course, ok := checker.catalog.CourseById(courseId)
	if !ok {
		return false, UnknownReferenceError{Kind: "course", Id: courseId}
	}
	slot, ok := checker.catalog.SlotById(slotId)
	if !ok {
		return false, UnknownReferenceError{Kind: "slot", Id: slotId}
	}
	return course.Duration <= slot.Duration, nil
}

func (checker *scheduleConstraintChecker) TeacherAvailable(teacherId, slotId string) (bool, error) {
	if _, ok := checker.catalog.TeacherById(teacherId); !ok {
		return false, UnknownReferenceError{Kind: "teacher", Id: teacherId}
	}
	if _, ok := checker.catalog.SlotById(slotId); !ok {
		return false, UnknownReferenceError{Kind: "slot", Id: slotId}
	}
	return !checker.schedule.teacherBusy(slotId, teacherId), nil
}

func (checker *scheduleConstraintChecker) RoomAvailable(roomId, slotId string) (bool, error) {
	if _, ok := checker.catalog.RoomById(roomId); !ok {
		return false, UnknownReferenceError{Kind: "room", Id: roomId}
	}
	if _, ok := checker.catalog.SlotById(slotId); !ok {
		return false, UnknownReferenceError{Kind: "slot", Id: slotId}
	}
	return !checker.schedule.roomOccupied(slotId, roomId), nil
}

func (checker *scheduleConstraintChecker) ValidAssignment(courseId, slotId, roomId string) (bool, error) {
	course, ok := checker.catalog.CourseById(courseId)
	if !ok {
		return false, UnknownReferenceError{Kind: "course", Id: courseId}
	}

	predicates := []func() (bool, error){
		func() (bool, error) { return checker.RoomSuitable(courseId, roomId) },
		func() (bool, error) { return checker.TimeSuitable(courseId, slotId) },
		func() (bool, error) { return checker.TeacherAvailable(course.Teacher, slotId) },
		func() (bool, error) { return checker.RoomAvailable(roomId, slotId) },
	}
	for _, predicate := range predicates {
		holds, err := predicate()
		if err != nil {
			return false, err
		}
		if !holds {
			return false, nil
		}
	}
	return true, nil
}
