// Package schedmodel translates curricular data into a CP-SAT model: the
// variable factory (C2), the hard constraint builder (C3), and the soft
// objective builder (C4) of the scheduling core.
package schedmodel

import (
	"fmt"

	cpmodel "github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"

	"github.com/mmxmb/course-sched/internal/apierr"
	"github.com/mmxmb/course-sched/internal/domain"
)

// ModelVar is the (start, end, duration, interval) tuple of decision
// variables for one (curriculum, day, course) triple.
type ModelVar struct {
	Start    cpmodel.IntVar
	End      cpmodel.IntVar
	Duration cpmodel.IntVar
	Interval cpmodel.IntervalVar
}

type varKey struct {
	curriculumID string
	day          int
	courseID     string
}

type curDayKey struct {
	curriculumID string
	day          int
}

// Model owns the CP-SAT builder, the decision variables indexed per
// (curriculum, day, course), and the accumulated soft-objective terms for
// one scheduling request. A Model is built once per request and discarded
// after the solver returns.
type Model struct {
	Calendar domain.Calendar
	Curricula []domain.Curriculum

	builder *cpmodel.Builder

	vars               map[varKey]ModelVar
	courseToCurricula  map[string][]string // course_id -> curriculum_ids, in curriculum declaration order
	curDayIntervals    map[curDayKey][]cpmodel.IntervalVar
	curriculaByID      map[string]domain.Curriculum

	objVars    []cpmodel.IntVar
	objCoeffs  []int64
	isOptimize bool
}

// NewModel constructs the CP-SAT builder and creates every ModelVar, per
// spec.md §4.1: it iterates (day × curriculum × course), in curriculum and
// course declaration order, and appends every interval variable to its
// (curriculum, day) bag.
func NewModel(cal domain.Calendar, curricula []domain.Curriculum) (*Model, error) {
	m := &Model{
		Calendar:          cal,
		Curricula:         curricula,
		builder:           cpmodel.NewCpModelBuilder(),
		vars:              make(map[varKey]ModelVar),
		courseToCurricula: make(map[string][]string),
		curDayIntervals:   make(map[curDayKey][]cpmodel.IntervalVar),
		curriculaByID:     make(map[string]domain.Curriculum, len(curricula)),
	}

	for _, cur := range curricula {
		m.curriculaByID[cur.ID] = cur
		for _, c := range cur.Courses {
			m.courseToCurricula[c.ID] = append(m.courseToCurricula[c.ID], cur.ID)
		}
	}

	for d := 0; d < cal.NDays; d++ {
		for _, cur := range curricula {
			for _, c := range cur.Courses {
				suffix := fmt.Sprintf("_cur%sd%dc%s", cur.ID, d, c.ID)

				start := m.builder.NewIntVar(0, int64(cal.NPeriods-domain.MinCourseLen)).WithName("start" + suffix)
				end := m.builder.NewIntVar(0, int64(cal.NPeriods)).WithName("end" + suffix)
				duration := m.builder.NewIntVar(0, int64(c.MaxLectureLen)).WithName("duration" + suffix)
				interval := m.builder.NewIntervalVar(start, duration, end).WithName("interval" + suffix)

				key := varKey{curriculumID: cur.ID, day: d, courseID: c.ID}
				m.vars[key] = ModelVar{Start: start, End: end, Duration: duration, Interval: interval}
				dayKey := curDayKey{curriculumID: cur.ID, day: d}
				m.curDayIntervals[dayKey] = append(m.curDayIntervals[dayKey], interval)
			}
		}
	}

	return m, nil
}

// Var returns the ModelVar for (curriculumID, day, courseID). The second
// return value is false if no such triple was created.
func (m *Model) Var(curriculumID string, day int, courseID string) (ModelVar, bool) {
	v, ok := m.vars[varKey{curriculumID: curriculumID, day: day, courseID: courseID}]
	return v, ok
}

// CurriculaSharing returns the ordered list of curriculum ids containing
// courseID, in curriculum declaration order.
func (m *Model) CurriculaSharing(courseID string) ([]string, bool) {
	ids, ok := m.courseToCurricula[courseID]
	return ids, ok
}

// Builder returns the underlying CP-SAT model builder. internal/solve uses
// it to add the phase-2 objective bound of an optimisation run.
func (m *Model) Builder() *cpmodel.Builder {
	return m.builder
}

func (m *Model) unknownCourse(courseID string) error {
	return apierr.Wrap(apierr.ErrUnknownCourse, "course_id %q is not present in any curriculum", courseID)
}

// Proto returns the built CP model proto, ready to hand to the solver
// driver. It must be called after every hard and soft constraint has been
// added.
func (m *Model) Proto() (*cmpb.CpModelProto, error) {
	return m.builder.Model()
}

// IsOptimize reports whether any soft term was registered, i.e. whether
// the driver must run the optimise-then-enumerate procedure of spec.md
// §4.4 instead of plain enumerate-all.
func (m *Model) IsOptimize() bool {
	return m.isOptimize
}

// Objective returns the accumulated (var, coeff) pairs of the minimisation
// objective. Callers must not mutate the returned slices.
func (m *Model) Objective() ([]cpmodel.IntVar, []int64) {
	return m.objVars, m.objCoeffs
}
