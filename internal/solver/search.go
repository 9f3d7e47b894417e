package solver

import (
	"slices"

	"timetable/internal/catalog"
)

// SlotRoom is a candidate (slot, room) pair for a course.
type SlotRoom struct {
	SlotId string
	RoomId string
}

// Strategy picks a (slot, room) pair for a course against the current
// schedule state, or fails with NoValidAssignmentError. Strategies are
// stateless: all state lives in the catalog and the schedule behind the
// checker.
type Strategy func(checker ConstraintChecker, cat *catalog.Catalog, courseId string) (SlotRoom, error)

// sortedSlots returns the catalog's slots in chronological order. The
// enumeration never relies on slot-id string ordering: ids may be
// renumbered without changing which pair a strategy picks.
func sortedSlots(cat *catalog.Catalog) []catalog.TimeSlot {
	slots := make([]catalog.TimeSlot, len(cat.Slots))
	copy(slots, cat.Slots)
	slices.SortFunc(slots, catalog.CompareSlots)
	return slots
}

// ValidPairs enumerates every (slot, room) pair currently valid for the
// course: slots chronologically, rooms in catalog order within each slot.
func ValidPairs(checker ConstraintChecker, cat *catalog.Catalog, courseId string) ([]SlotRoom, error) {
	pairs := make([]SlotRoom, 0)
	for _, slot := range sortedSlots(cat) {
		for _, room := range cat.Rooms {
			valid, err := checker.ValidAssignment(courseId, slot.Id, room.Id)
			if err != nil {
				return nil, err
			}
			if valid {
				pairs = append(pairs, SlotRoom{SlotId: slot.Id, RoomId: room.Id})
			}
		}
	}
	return pairs, nil
}

// FirstFit commits to the first valid pair found in enumeration order.
func FirstFit(checker ConstraintChecker, cat *catalog.Catalog, courseId string) (SlotRoom, error) {
	for _, slot := range sortedSlots(cat) {
		for _, room := range cat.Rooms {
			valid, err := checker.ValidAssignment(courseId, slot.Id, room.Id)
			if err != nil {
				return SlotRoom{}, err
			}
			if valid {
				return SlotRoom{SlotId: slot.Id, RoomId: room.Id}, nil
			}
		}
	}
	return SlotRoom{}, NoValidAssignmentError{CourseId: courseId}
}

// BestFit enumerates all valid pairs and picks the chronologically
// earliest slot, breaking ties by room catalog order. Since ValidPairs
// already enumerates in exactly that order, the best pair is the first.
func BestFit(checker ConstraintChecker, cat *catalog.Catalog, courseId string) (SlotRoom, error) {
	pairs, err := ValidPairs(checker, cat, courseId)
	if err != nil {
		return SlotRoom{}, err
	}
	if len(pairs) == 0 {
		return SlotRoom{}, NoValidAssignmentError{CourseId: courseId}
	}
	return pairs[0], nil
}
