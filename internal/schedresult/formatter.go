package schedresult

import (
	"fmt"
	"strings"

	"github.com/mmxmb/course-sched/internal/domain"
	"github.com/mmxmb/course-sched/internal/schedmodel"
)

// Formatter is a Callback that renders every solution as a human-readable,
// day-by-day timetable, mirroring the source's solution printer. The HTTP
// API does not use it; it uses Serializer.
type Formatter struct {
	Base
	Lines []string
}

// NewFormatter builds a Formatter capped at n solutions.
func NewFormatter(m *schedmodel.Model, cal domain.Calendar, curricula []domain.Curriculum, n int) *Formatter {
	return &Formatter{
		Base: Base{Model: m, Calendar: cal, Curricula: curricula, N: n},
	}
}

// OnSolution renders one solution's timetable as text and appends it to
// Lines.
func (f *Formatter) OnSolution(v Values) bool {
	if !f.shouldRecord() {
		return false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "solution %d:\n", f.Count())

	if f.Model.IsOptimize() {
		objVars, objCoeffs := f.Model.Objective()
		var total int64
		for i, ov := range objVars {
			total += v.Int(ov) * objCoeffs[i]
		}
		fmt.Fprintf(&b, "  objective: %d\n", total)
	}

	for _, cur := range f.Curricula {
		fmt.Fprintf(&b, "  curriculum %s:\n", cur.ID)
		for d := 0; d < f.Calendar.NDays; d++ {
			var blocks []string
			for _, c := range cur.Courses {
				mv, ok := f.Model.Var(cur.ID, d, c.ID)
				if !ok {
					continue
				}
				duration := v.Int(mv.Duration)
				if duration == 0 {
					continue
				}
				start := v.Int(mv.Start)
				blocks = append(blocks, fmt.Sprintf("%s[%d-%d)", c.ID, start, start+duration))
			}
			if len(blocks) == 0 {
				continue
			}
			fmt.Fprintf(&b, "    day %d: %s\n", d, strings.Join(blocks, ", "))
		}
	}

	f.Lines = append(f.Lines, b.String())
	return f.Count() < f.N
}
