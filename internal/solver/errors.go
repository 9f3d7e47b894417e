package solver

import "fmt"

// NoValidAssignmentError reports that no (slot, room) pair satisfies every
// constraint for a course. The driver propagates it without retrying.
type NoValidAssignmentError struct {
	CourseId string
}

func (err NoValidAssignmentError) Error() string {
	return fmt.Sprintf("no valid assignment exists for course %q", err.CourseId)
}

// UnknownReferenceError reports an id that does not resolve in the catalog.
type UnknownReferenceError struct {
	Kind string // "course", "teacher", "room" or "slot"
	Id   string
}

func (err UnknownReferenceError) Error() string {
	return fmt.Sprintf("unknown %v id %q", err.Kind, err.Id)
}
