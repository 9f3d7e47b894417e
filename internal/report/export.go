package report

import (
	"encoding/json"
	"io"

	"timetable/internal/catalog"
	"timetable/internal/solver"
)

// ExportRecord is one flat schedule row, ready for external consumers.
type ExportRecord struct {
	CourseId   string `json:"course_id"`
	CourseName string `json:"course_name"`
	Teacher    string `json:"teacher"`
	Day        string `json:"day"`
	StartTime  uint64 `json:"start_time"`
	EndTime    uint64 `json:"end_time"`
	RoomId     string `json:"room_id"`
	RoomType   string `json:"room_type"`
}

// ExportJSON writes the schedule as an indented JSON array, in insertion
// order.
func ExportJSON(w io.Writer, cat *catalog.Catalog, assignments []solver.Assignment) error {
	entries, err := resolve(cat, assignments)
	if err != nil {
		return err
	}

	records := make([]ExportRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, ExportRecord{
			CourseId:   entry.course.Id,
			CourseName: entry.course.Name,
			Teacher:    teacherName(cat, entry.course),
			Day:        entry.slot.Day.String(),
			StartTime:  entry.slot.Start,
			EndTime:    entry.slot.End,
			RoomId:     entry.room.Id,
			RoomType:   string(entry.room.Type),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}
