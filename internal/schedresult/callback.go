// Package schedresult implements the solution callbacks of spec.md §4.5: a
// shared base that caps the number of solutions read back from the solver,
// and two variants — a human-readable formatter and a structured
// serialiser — built on top of it.
package schedresult

import (
	cpmodel "github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/mmxmb/course-sched/internal/domain"
	"github.com/mmxmb/course-sched/internal/schedmodel"
)

// Values gives a callback read-only access to one solver-found assignment.
// Implementations wrap whatever solver-provided accessor produced the
// concrete integer values (spec.md §4.5: "read back concrete values ...
// using solver-provided accessors").
type Values interface {
	Int(v cpmodel.IntVar) int64
}

// Callback is invoked once per solution in the solver's discovery order.
// It returns false once it has recorded its target count, signalling the
// driver to stop replaying further solutions.
type Callback interface {
	OnSolution(v Values) (keepGoing bool)
	// Count returns how many solutions have been recorded so far.
	Count() int
}

// Base holds the state spec.md §4.5 says every callback variant shares: the
// variable index, curricula, calendar, target count N, and running count.
type Base struct {
	Model     *schedmodel.Model
	Calendar  domain.Calendar
	Curricula []domain.Curriculum
	N         int

	count int
}

// Count returns the number of solutions recorded so far.
func (b *Base) Count() int {
	return b.count
}

// shouldRecord reports whether another solution may still be recorded, and
// if so increments the running count. It centralises the "cap-and-stop"
// contract so Formatter and Serializer cannot diverge on it.
func (b *Base) shouldRecord() bool {
	if b.count >= b.N {
		return false
	}
	b.count++
	return true
}

// daySchedules collects every day on which courseID is scheduled in
// curriculumID, across the calendar, omitting days with duration 0 — as
// spec.md §4.5 requires of the serialised schedule.
func daySchedules(m *schedmodel.Model, v Values, cal domain.Calendar, curriculumID, courseID string) []DaySchedule {
	var out []DaySchedule
	for d := 0; d < cal.NDays; d++ {
		mv, ok := m.Var(curriculumID, d, courseID)
		if !ok {
			continue
		}
		duration := v.Int(mv.Duration)
		if duration == 0 {
			continue
		}
		out = append(out, DaySchedule{
			Day:      d,
			Start:    int(v.Int(mv.Start)),
			Duration: int(duration),
		})
	}
	return out
}
