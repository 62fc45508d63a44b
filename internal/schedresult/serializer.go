package schedresult

import (
	"github.com/google/uuid"

	"github.com/mmxmb/course-sched/internal/domain"
	"github.com/mmxmb/course-sched/internal/schedmodel"
)

// Serializer is a Callback that accumulates every solution into a Result,
// ready for JSON encoding as the API response body.
type Serializer struct {
	Base
	Result Result
}

// NewSerializer builds a Serializer capped at n solutions.
func NewSerializer(m *schedmodel.Model, cal domain.Calendar, curricula []domain.Curriculum, n int) *Serializer {
	return &Serializer{
		Base: Base{Model: m, Calendar: cal, Curricula: curricula, N: n},
	}
}

// OnSolution appends one concrete assignment to the accumulated Result.
func (s *Serializer) OnSolution(v Values) bool {
	if !s.shouldRecord() {
		return false
	}

	sol := Solution{SolutionID: uuid.NewString()}
	if s.Model.IsOptimize() {
		objVars, objCoeffs := s.Model.Objective()
		var total int64
		for i, ov := range objVars {
			total += v.Int(ov) * objCoeffs[i]
		}
		sol.Objective = &total
	}

	for _, cur := range s.Curricula {
		cr := CurriculumResult{CurriculumID: cur.ID}
		for _, c := range cur.Courses {
			days := daySchedules(s.Model, v, s.Calendar, cur.ID, c.ID)
			if len(days) == 0 {
				continue
			}
			cr.Courses = append(cr.Courses, CourseResult{CourseID: c.ID, Schedule: days})
		}
		sol.Curricula = append(sol.Curricula, cr)
	}

	s.Result.Solutions = append(s.Result.Solutions, sol)
	s.Result.NSolutions = len(s.Result.Solutions)
	return s.Count() < s.N
}
