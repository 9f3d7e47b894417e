package solver

import (
	"go.uber.org/zap"

	"timetable/internal/catalog"
)

// Scheduler drives a solver run: it owns one Schedule, iterates the course
// catalog once in order and commits each assignment before moving to the
// next course. There is no backtracking: once a course fails, the run
// fails and the partial schedule stays committed and queryable.
type Scheduler struct {
	catalog  *catalog.Catalog
	schedule *Schedule
	checker  ConstraintChecker
	logger   *zap.Logger
}

type Option func(*Scheduler)

func WithLogger(logger *zap.Logger) Option {
	return func(scheduler *Scheduler) {
		scheduler.logger = logger
	}
}

func New(cat *catalog.Catalog, options ...Option) *Scheduler {
	schedule := NewSchedule()
	scheduler := &Scheduler{
		catalog:  cat,
		schedule: schedule,
		checker:  NewConstraintChecker(cat, schedule),
		logger:   zap.NewNop(),
	}
	for _, option := range options {
		option(scheduler)
	}
	return scheduler
}

// GenerateTimetable clears the schedule and assigns every course with the
// first-fit strategy.
func (scheduler *Scheduler) GenerateTimetable() error {
	return scheduler.generate(FirstFit, "first-fit")
}

// GenerateOptimalTimetable clears the schedule and assigns every course
// with the best-fit (earliest-slot) strategy. "Optimal" is local to each
// course at its turn in catalog order, not global.
func (scheduler *Scheduler) GenerateOptimalTimetable() error {
	return scheduler.generate(BestFit, "best-fit")
}

func (scheduler *Scheduler) generate(strategy Strategy, strategyName string) error {
	scheduler.schedule.Clear()

	for _, course := range scheduler.catalog.Courses {
		pair, err := strategy(scheduler.checker, scheduler.catalog, course.Id)
		if err != nil {
			scheduler.logger.Warn("course could not be scheduled",
				zap.String("strategy", strategyName),
				zap.String("course", course.Id),
				zap.Int("committed", scheduler.schedule.Len()),
			)
			return err
		}

		assignment := Assignment{CourseId: course.Id, SlotId: pair.SlotId, RoomId: pair.RoomId}
		if err := scheduler.schedule.Commit(assignment, course.Teacher); err != nil {
			return err
		}
		scheduler.logger.Debug("assignment committed",
			zap.String("strategy", strategyName),
			zap.String("course", course.Id),
			zap.String("slot", pair.SlotId),
			zap.String("room", pair.RoomId),
		)
	}

	return nil
}

// ScheduleComplete reports whether every catalog course has a committed
// entry. Set equality, independent of insertion order.
func (scheduler *Scheduler) ScheduleComplete() bool {
	for _, course := range scheduler.catalog.Courses {
		if !scheduler.schedule.Scheduled(course.Id) {
			return false
		}
	}
	return true
}

// GetSchedule returns the committed assignments in insertion order.
func (scheduler *Scheduler) GetSchedule() []Assignment {
	return scheduler.schedule.Entries()
}

// AllAssignments lists every (slot, room) pair currently valid for the
// course given the committed schedule, in search enumeration order.
func (scheduler *Scheduler) AllAssignments(courseId string) ([]SlotRoom, error) {
	return ValidPairs(scheduler.checker, scheduler.catalog, courseId)
}

// TimetableByDay filters the schedule to entries whose slot falls on the
// given day, preserving insertion order.
func (scheduler *Scheduler) TimetableByDay(day catalog.Day) []Assignment {
	filtered := make([]Assignment, 0)
	for _, entry := range scheduler.schedule.Entries() {
		slot, ok := scheduler.catalog.SlotById(entry.SlotId)
		if ok && slot.Day == day {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// TeacherSchedule filters the schedule to courses taught by the given
// teacher, preserving insertion order.
func (scheduler *Scheduler) TeacherSchedule(teacherId string) ([]Assignment, error) {
	if _, ok := scheduler.catalog.TeacherById(teacherId); !ok {
		return nil, UnknownReferenceError{Kind: "teacher", Id: teacherId}
	}

	filtered := make([]Assignment, 0)
	for _, entry := range scheduler.schedule.Entries() {
		course, ok := scheduler.catalog.CourseById(entry.CourseId)
		if ok && course.Teacher == teacherId {
			filtered = append(filtered, entry)
		}
	}
	return filtered, nil
}

// ClearSchedule resets the schedule between runs.
func (scheduler *Scheduler) ClearSchedule() {
	scheduler.schedule.Clear()
}

// ExplainFailure diagnoses why the given course could not be scheduled
// against the current partial schedule. Advisory only.
func (scheduler *Scheduler) ExplainFailure(courseId string) (string, error) {
	return ExplainInfeasible(scheduler.catalog, scheduler.schedule, courseId)
}
