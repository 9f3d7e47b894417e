package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type RawCourse struct {
	Id           string
	Name         string
	Teacher      string
	Duration     uint64
	RequiredRoom string
}

type RawTeacher struct {
	Id         string
	Name       string
	Department string
}

type RawRoom struct {
	Id       string
	Type     string
	Capacity uint64
}

type RawTimeSlot struct {
	Id    string
	Day   string
	Start uint64
	End   uint64
}

type RawInput struct {
	Courses  []RawCourse
	Teachers []RawTeacher
	Rooms    []RawRoom
	Slots    []RawTimeSlot
}

// FromJSON reads a catalog from a JSON file.
func FromJSON(file string) (*Catalog, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return nil, err
	}

	var rawInput RawInput
	if err := mapstructure.Decode(inputJson, &rawInput); err != nil {
		return nil, err
	}
	return ProcessRawInput(rawInput)
}

// ProcessRawInput turns raw records into a validated catalog. Courses with
// no room requirement get the wildcard; slot durations are derived from
// the start-end range rather than trusted from the input.
func ProcessRawInput(rawInput RawInput) (*Catalog, error) {
	courses := lo.Map(rawInput.Courses, func(raw RawCourse, _ int) Course {
		requiredRoom := RoomType(raw.RequiredRoom)
		if requiredRoom == "" {
			requiredRoom = AnyRoom
		}
		return Course{
			Id:           raw.Id,
			Name:         raw.Name,
			Teacher:      raw.Teacher,
			Duration:     raw.Duration,
			RequiredRoom: requiredRoom,
		}
	})

	teachers := lo.Map(rawInput.Teachers, func(raw RawTeacher, _ int) Teacher {
		return Teacher(raw)
	})

	rooms := lo.Map(rawInput.Rooms, func(raw RawRoom, _ int) Room {
		return Room{Id: raw.Id, Type: RoomType(raw.Type), Capacity: raw.Capacity}
	})

	slots := make([]TimeSlot, 0, len(rawInput.Slots))
	for _, raw := range rawInput.Slots {
		day, err := ParseDay(raw.Day)
		if err != nil {
			return nil, fmt.Errorf("time slot %q: %w", raw.Id, err)
		}
		if raw.End <= raw.Start {
			return nil, fmt.Errorf("time slot %q must end after it starts", raw.Id)
		}
		slots = append(slots, TimeSlot{
			Id:       raw.Id,
			Day:      day,
			Start:    raw.Start,
			End:      raw.End,
			Duration: (raw.End - raw.Start) / 100,
		})
	}

	return New(courses, teachers, rooms, slots)
}

// Mock builds the built-in demo catalog. It is used by the CLI when no
// input file is given and by tests as a known-schedulable dataset.
func Mock() *Catalog {
	catalog, err := New(
		[]Course{
			{Id: "cs101", Name: "Computer Science 101", Teacher: "t001", Duration: 2, RequiredRoom: "computer_lab"},
			{Id: "cs102", Name: "Data Structures", Teacher: "t002", Duration: 2, RequiredRoom: "computer_lab"},
			{Id: "math101", Name: "Calculus I", Teacher: "t003", Duration: 1, RequiredRoom: "classroom"},
			{Id: "math102", Name: "Linear Algebra", Teacher: "t004", Duration: 2, RequiredRoom: "classroom"},
			{Id: "phy101", Name: "Physics I", Teacher: "t005", Duration: 2, RequiredRoom: "physics_lab"},
		},
		[]Teacher{
			{Id: "t001", Name: "Dr. Smith", Department: "computer_science"},
			{Id: "t002", Name: "Prof. Johnson", Department: "computer_science"},
			{Id: "t003", Name: "Dr. Brown", Department: "mathematics"},
			{Id: "t004", Name: "Prof. Davis", Department: "mathematics"},
			{Id: "t005", Name: "Dr. Wilson", Department: "physics"},
		},
		[]Room{
			{Id: "r001", Type: "computer_lab", Capacity: 30},
			{Id: "r002", Type: "classroom", Capacity: 40},
			{Id: "r003", Type: "physics_lab", Capacity: 20},
		},
		[]TimeSlot{
			{Id: "slot1", Day: Monday, Start: 800, End: 900, Duration: 1},
			{Id: "slot2", Day: Monday, Start: 900, End: 1000, Duration: 1},
			{Id: "slot3", Day: Monday, Start: 1000, End: 1200, Duration: 2},
			{Id: "slot4", Day: Tuesday, Start: 800, End: 900, Duration: 1},
			{Id: "slot5", Day: Tuesday, Start: 1000, End: 1200, Duration: 2},
		},
	)
	if err != nil {
		panic(err) // The mock catalog is hardcoded and must always validate
	}
	return catalog
}
