package schedresult

// DaySchedule is one scheduled block of a course, on one day. Only
// included when duration > 0.
type DaySchedule struct {
	Day      int `json:"day"`
	Start    int `json:"start"`
	Duration int `json:"duration"`
}

// CourseResult is one course's weekly schedule within a curriculum, for one
// solution. Days with no scheduled block are omitted from Schedule.
type CourseResult struct {
	CourseID string        `json:"course_id"`
	Schedule []DaySchedule `json:"schedule"`
}

// CurriculumResult is one curriculum's full weekly schedule, for one
// solution.
type CurriculumResult struct {
	CurriculumID string         `json:"curriculum_id"`
	Courses      []CourseResult `json:"courses"`
}

// Solution is one complete, concrete assignment: a curriculum-by-curriculum
// timetable. Objective carries the minimised weighted penalty when the
// model was built with soft terms; it is not part of the response
// envelope but is useful to callers inspecting a Result directly.
type Solution struct {
	SolutionID string             `json:"solution_id"`
	Curricula  []CurriculumResult `json:"curricula"`
	Objective  *int64             `json:"-"`
}

// Result is the top-level response envelope of spec.md §6: the count of
// solutions found and the solutions themselves, in discovery order.
// SolverTimeout and Infeasible both surface here as a Result with fewer
// (possibly zero) solutions rather than as an error.
type Result struct {
	NSolutions int        `json:"n_solutions"`
	Solutions  []Solution `json:"solutions"`
}
