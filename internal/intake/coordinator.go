// Package intake orchestrates one scheduling request end to end: building
// the domain objects, constructing the CP-SAT model, registering hard
// constraints in a fixed order followed by per-request unavailability,
// course locks and soft terms, driving the solver, and returning the
// accumulated serialised result. It mirrors the call order of the
// original's CourseSched.main().
package intake

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mmxmb/course-sched/internal/apierr"
	"github.com/mmxmb/course-sched/internal/domain"
	"github.com/mmxmb/course-sched/internal/schedmodel"
	"github.com/mmxmb/course-sched/internal/schedresult"
	"github.com/mmxmb/course-sched/internal/solve"
)

// CourseInput is one course declared within a curriculum.
type CourseInput struct {
	CourseID string
	NPeriods int
}

// CurriculumInput is one curriculum as declared in a request.
type CurriculumInput struct {
	CurriculumID string
	Courses      []CourseInput
}

// UnavailabilityInput forbids a course from overlapping listed intervals on
// a day.
type UnavailabilityInput struct {
	CourseID  string
	Day       int
	Intervals []schedmodel.UnavailabilityInterval
}

// CourseLockInput pins a course to fixed slots across the week.
type CourseLockInput struct {
	CourseID string
	Locks    []schedmodel.CourseLockEntry
}

// SoftStartEnd is the optional soft-start/end objective term.
type SoftStartEnd struct {
	SoftMin, SoftMax     int64
	UnderCost, OverCost  int64
}

// Request is one complete scheduling request, already structurally
// validated by the API layer.
type Request struct {
	NSolutions    int
	Curricula     []CurriculumInput
	Constraints   []UnavailabilityInput
	CourseLocks   []CourseLockInput
	SoftStartEnd  *SoftStartEnd
}

// Coordinator wires domain construction, model building and solving for
// one request.
type Coordinator struct {
	calendar domain.Calendar
	driver   *solve.Driver
	logger   *zap.Logger
}

// NewCoordinator builds a Coordinator for a fixed calendar shape, shared
// across every request the process handles.
func NewCoordinator(calendar domain.Calendar, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		calendar: calendar,
		driver:   solve.NewDriver(logger),
		logger:   logger,
	}
}

// Run builds the model for req and drives the solver, returning the
// accumulated result. maxTime, if nonzero, bounds the solver's wall-clock
// budget.
func (c *Coordinator) Run(ctx context.Context, req Request, maxTime time.Duration) (schedresult.Result, error) {
	curricula, err := buildCurricula(req.Curricula)
	if err != nil {
		return schedresult.Result{}, err
	}

	model, err := schedmodel.NewModel(c.calendar, curricula)
	if err != nil {
		return schedresult.Result{}, err
	}

	model.AddNoOverlap()
	model.AddWeeklyLength()
	model.AddLectureGranularity()
	model.AddSyncAcrossCurricula()
	if err := model.AddWeekdaySymmetry(); err != nil {
		return schedresult.Result{}, err
	}

	for _, u := range req.Constraints {
		if err := model.AddUnavailability(u.CourseID, u.Day, u.Intervals); err != nil {
			return schedresult.Result{}, err
		}
	}
	for _, l := range req.CourseLocks {
		if err := model.AddCourseLock(l.CourseID, l.Locks); err != nil {
			return schedresult.Result{}, err
		}
	}
	if se := req.SoftStartEnd; se != nil {
		if err := model.AddSoftStartEnd(se.SoftMin, se.SoftMax, se.UnderCost, se.OverCost); err != nil {
			return schedresult.Result{}, err
		}
	}
	model.SetObjective()

	serializer := schedresult.NewSerializer(model, c.calendar, curricula, req.NSolutions)

	status, timedOut, err := c.driver.Run(ctx, model, serializer, req.NSolutions, maxTime)
	if err != nil {
		return schedresult.Result{}, err
	}

	c.logger.Info("request solved",
		zap.String("status", status.String()),
		zap.Bool("timed_out", timedOut),
		zap.Int("n_solutions", serializer.Result.NSolutions))

	return serializer.Result, nil
}

func buildCurricula(inputs []CurriculumInput) ([]domain.Curriculum, error) {
	seen := make(map[string]bool, len(inputs))
	curricula := make([]domain.Curriculum, 0, len(inputs))
	for _, ci := range inputs {
		if seen[ci.CurriculumID] {
			return nil, apierr.Wrap(apierr.ErrDuplicateCurriculum, "curriculum_id %q appears more than once", ci.CurriculumID)
		}
		seen[ci.CurriculumID] = true

		courses := make([]domain.Course, 0, len(ci.Courses))
		for _, co := range ci.Courses {
			c, err := domain.NewCourse(co.CourseID, co.NPeriods)
			if err != nil {
				return nil, err
			}
			courses = append(courses, c)
		}

		cur, err := domain.NewCurriculum(ci.CurriculumID, courses)
		if err != nil {
			return nil, err
		}
		curricula = append(curricula, cur)
	}
	return curricula, nil
}
