package catalog

import (
	"fmt"

	"github.com/samber/lo"
)

// Day is a school day. Its numeric value is the chronological rank within
// the week, so days compare correctly without looking at their names.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

var dayNames = map[Day]string{
	Monday:    "monday",
	Tuesday:   "tuesday",
	Wednesday: "wednesday",
	Thursday:  "thursday",
	Friday:    "friday",
}

func (day Day) String() string {
	name, ok := dayNames[day]
	if !ok {
		return fmt.Sprintf("day(%d)", int(day))
	}
	return name
}

// ParseDay resolves a lowercase day name ("monday" .. "friday").
func ParseDay(name string) (Day, error) {
	for day, dayName := range dayNames {
		if dayName == name {
			return day, nil
		}
	}
	return 0, fmt.Errorf("unknown day name: %q", name)
}

// RoomType classifies rooms. AnyRoom is the wildcard used by courses
// without a room-type requirement.
type RoomType string

const AnyRoom RoomType = "any"

type Course struct {
	Id           string
	Name         string
	Teacher      string
	Duration     uint64 // Duration in hours
	RequiredRoom RoomType
}

type Teacher struct {
	Id         string
	Name       string
	Department string
}

type Room struct {
	Id       string
	Type     RoomType
	Capacity uint64
}

// TimeSlot start and end times are integers in HHMM form (800 is 08:00),
// matching the input format. Duration is derived in whole hours.
type TimeSlot struct {
	Id       string
	Day      Day
	Start    uint64
	End      uint64
	Duration uint64
}

// Catalog is the immutable reference dataset a solver run operates on.
// Slices preserve load order (the solver's canonical iteration order);
// maps give O(1) lookup by id.
type Catalog struct {
	Courses  []Course
	Teachers []Teacher
	Rooms    []Room
	Slots    []TimeSlot

	coursesById  map[string]Course
	teachersById map[string]Teacher
	roomsById    map[string]Room
	slotsById    map[string]TimeSlot
}

// New validates the records and builds the lookup indexes. The catalog is
// the only place referential integrity is checked; the solver assumes a
// catalog that passed here.
func New(courses []Course, teachers []Teacher, rooms []Room, slots []TimeSlot) (*Catalog, error) {
	catalog := &Catalog{
		Courses:      courses,
		Teachers:     teachers,
		Rooms:        rooms,
		Slots:        slots,
		coursesById:  make(map[string]Course, len(courses)),
		teachersById: make(map[string]Teacher, len(teachers)),
		roomsById:    make(map[string]Room, len(rooms)),
		slotsById:    make(map[string]TimeSlot, len(slots)),
	}

	for _, teacher := range teachers {
		if _, ok := catalog.teachersById[teacher.Id]; ok {
			return nil, fmt.Errorf("duplicate teacher id %q", teacher.Id)
		}
		catalog.teachersById[teacher.Id] = teacher
	}

	for _, course := range courses {
		if _, ok := catalog.coursesById[course.Id]; ok {
			return nil, fmt.Errorf("duplicate course id %q", course.Id)
		}
		if course.Duration == 0 {
			return nil, fmt.Errorf("course %q must have a positive duration", course.Id)
		}
		if _, ok := catalog.teachersById[course.Teacher]; !ok {
			return nil, fmt.Errorf("course %q references unknown teacher %q", course.Id, course.Teacher)
		}
		catalog.coursesById[course.Id] = course
	}

	for _, room := range rooms {
		if _, ok := catalog.roomsById[room.Id]; ok {
			return nil, fmt.Errorf("duplicate room id %q", room.Id)
		}
		if room.Capacity == 0 {
			return nil, fmt.Errorf("room %q must have a positive capacity", room.Id)
		}
		catalog.roomsById[room.Id] = room
	}

	for _, slot := range slots {
		if _, ok := catalog.slotsById[slot.Id]; ok {
			return nil, fmt.Errorf("duplicate time-slot id %q", slot.Id)
		}
		if slot.End <= slot.Start {
			return nil, fmt.Errorf("time slot %q must end after it starts", slot.Id)
		}
		if slot.Duration == 0 || slot.Duration != (slot.End-slot.Start)/100 {
			return nil, fmt.Errorf("time slot %q duration %v does not match its %v-%v range", slot.Id, slot.Duration, slot.Start, slot.End)
		}
		catalog.slotsById[slot.Id] = slot
	}

	return catalog, nil
}

func (catalog *Catalog) CourseById(id string) (Course, bool) {
	course, ok := catalog.coursesById[id]
	return course, ok
}

func (catalog *Catalog) TeacherById(id string) (Teacher, bool) {
	teacher, ok := catalog.teachersById[id]
	return teacher, ok
}

func (catalog *Catalog) RoomById(id string) (Room, bool) {
	room, ok := catalog.roomsById[id]
	return room, ok
}

func (catalog *Catalog) SlotById(id string) (TimeSlot, bool) {
	slot, ok := catalog.slotsById[id]
	return slot, ok
}

// CoursesByTeacher returns the courses taught by the given teacher, in
// catalog order.
func (catalog *Catalog) CoursesByTeacher(teacherId string) []Course {
	return lo.Filter(catalog.Courses, func(course Course, _ int) bool {
		return course.Teacher == teacherId
	})
}

// CompareSlots orders slots chronologically: day first, then start time,
// with the id as a final tiebreak to keep the order total. Slot ids are
// never compared as a proxy for time.
func CompareSlots(a, b TimeSlot) int {
	if a.Day != b.Day {
		return int(a.Day) - int(b.Day)
	}
	if a.Start != b.Start {
		return int(a.Start) - int(b.Start)
	}
	switch {
	case a.Id < b.Id:
		return -1
	case a.Id > b.Id:
		return 1
	default:
		return 0
	}
}
