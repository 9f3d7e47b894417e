// Package report renders committed schedules for humans: flat and by-day
// table views, a conflict audit and summary statistics. It only reads the
// entries handed to it and never touches the schedule store.
package report

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"

	"timetable/internal/catalog"
	"timetable/internal/solver"
)

// entry is a schedule row resolved against the catalog.
type entry struct {
	course catalog.Course
	slot   catalog.TimeSlot
	room   catalog.Room
}

func resolve(cat *catalog.Catalog, assignments []solver.Assignment) ([]entry, error) {
	entries := make([]entry, 0, len(assignments))
	for _, assignment := range assignments {
		course, ok := cat.CourseById(assignment.CourseId)
		if !ok {
			return nil, solver.UnknownReferenceError{Kind: "course", Id: assignment.CourseId}
		}
		slot, ok := cat.SlotById(assignment.SlotId)
		if !ok {
			return nil, solver.UnknownReferenceError{Kind: "slot", Id: assignment.SlotId}
		}
		room, ok := cat.RoomById(assignment.RoomId)
		if !ok {
			return nil, solver.UnknownReferenceError{Kind: "room", Id: assignment.RoomId}
		}
		entries = append(entries, entry{course: course, slot: slot, room: room})
	}
	return entries, nil
}

// FormatTime renders an HHMM integer as "HH:MM" (800 becomes "08:00").
func FormatTime(time uint64) string {
	return fmt.Sprintf("%02d:%02d", time/100, time%100)
}

func teacherName(cat *catalog.Catalog, course catalog.Course) string {
	teacher, ok := cat.TeacherById(course.Teacher)
	if !ok {
		return course.Teacher
	}
	return teacher.Name
}

// Render writes the full schedule as a table, in insertion order.
func Render(w io.Writer, cat *catalog.Catalog, assignments []solver.Assignment) error {
	entries, err := resolve(cat, assignments)
	if err != nil {
		return err
	}

	table := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(table, "COURSE\tTEACHER\tDAY\tSTART\tEND\tROOM\tROOM TYPE")
	for _, entry := range entries {
		fmt.Fprintf(table, "%v\t%v\t%v\t%v\t%v\t%v\t%v\n",
			entry.course.Name,
			teacherName(cat, entry.course),
			entry.slot.Day,
			FormatTime(entry.slot.Start),
			FormatTime(entry.slot.End),
			entry.room.Id,
			entry.room.Type,
		)
	}
	return table.Flush()
}

// RenderByDay writes the schedule grouped by day, days chronologically and
// entries within a day sorted by start time.
func RenderByDay(w io.Writer, cat *catalog.Catalog, assignments []solver.Assignment) error {
	entries, err := resolve(cat, assignments)
	if err != nil {
		return err
	}

	perDay := lo.GroupBy(entries, func(entry entry) catalog.Day { return entry.slot.Day })
	days := lo.Keys(perDay)
	slices.Sort(days)

	for _, day := range days {
		dayEntries := perDay[day]
		slices.SortFunc(dayEntries, func(a, b entry) int {
			return catalog.CompareSlots(a.slot, b.slot)
		})

		fmt.Fprintf(w, "%v:\n", strings.ToUpper(day.String()))
		table := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, entry := range dayEntries {
			fmt.Fprintf(table, "  %v-%v\t%v\t%v\t%v\n",
				FormatTime(entry.slot.Start),
				FormatTime(entry.slot.End),
				entry.course.Name,
				teacherName(cat, entry.course),
				entry.room.Id,
			)
		}
		if err := table.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// Conflicts re-detects teacher and room collisions in a committed
// schedule. A schedule produced by the solver must always audit clean;
// the pass exists so externally supplied entries can be checked too.
func Conflicts(cat *catalog.Catalog, assignments []solver.Assignment) ([]string, error) {
	entries, err := resolve(cat, assignments)
	if err != nil {
		return nil, err
	}

	conflicts := make([]string, 0)
	teacherSlots := make(map[string]map[string]bool)
	roomSlots := make(map[string]map[string]bool)

	for _, entry := range entries {
		if _, ok := teacherSlots[entry.course.Teacher]; !ok {
			teacherSlots[entry.course.Teacher] = make(map[string]bool)
		}
		if teacherSlots[entry.course.Teacher][entry.slot.Id] {
			conflicts = append(conflicts, fmt.Sprintf("teacher %v has overlapping classes in slot %v", teacherName(cat, entry.course), entry.slot.Id))
		}
		teacherSlots[entry.course.Teacher][entry.slot.Id] = true

		if _, ok := roomSlots[entry.room.Id]; !ok {
			roomSlots[entry.room.Id] = make(map[string]bool)
		}
		if roomSlots[entry.room.Id][entry.slot.Id] {
			conflicts = append(conflicts, fmt.Sprintf("room %v has overlapping bookings in slot %v", entry.room.Id, entry.slot.Id))
		}
		roomSlots[entry.room.Id][entry.slot.Id] = true
	}

	return conflicts, nil
}

// Statistics summarizes catalog coverage of a committed schedule.
type Statistics struct {
	TotalCourses     int
	ScheduledCourses int
	TotalRooms       int
	UsedRooms        int
	TotalSlots       int
	UsedSlots        int
	Conflicts        int
}

func Summarize(cat *catalog.Catalog, assignments []solver.Assignment) (Statistics, error) {
	conflicts, err := Conflicts(cat, assignments)
	if err != nil {
		return Statistics{}, err
	}

	usedRooms := lo.Uniq(lo.Map(assignments, func(assignment solver.Assignment, _ int) string { return assignment.RoomId }))
	usedSlots := lo.Uniq(lo.Map(assignments, func(assignment solver.Assignment, _ int) string { return assignment.SlotId }))

	return Statistics{
		TotalCourses:     len(cat.Courses),
		ScheduledCourses: len(assignments),
		TotalRooms:       len(cat.Rooms),
		UsedRooms:        len(usedRooms),
		TotalSlots:       len(cat.Slots),
		UsedSlots:        len(usedSlots),
		Conflicts:        len(conflicts),
	}, nil
}
