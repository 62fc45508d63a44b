// Package domain holds the immutable description of courses, curricula and
// the calendar size a scheduling request is built against. Domain objects
// are constructed once from the request, consumed by the model builder, and
// discarded after the solver returns.
package domain

import (
	"github.com/mmxmb/course-sched/internal/apierr"
)

// MinCourseLen is the shortest lecture, in periods, that can ever be
// scheduled.
const MinCourseLen = 2

// Course describes the weekly period requirement of one course.
type Course struct {
	ID            string
	NPeriods      int
	MaxLectureLen int
}

// NewCourse validates and constructs a Course. NPeriods must be 4 or 6.
func NewCourse(id string, nPeriods int) (Course, error) {
	var maxLectureLen int
	switch nPeriods {
	case 6:
		maxLectureLen = 6
	case 4:
		maxLectureLen = 2
	default:
		return Course{}, apierr.Wrap(apierr.ErrInvalidPeriods, "course %q has n_periods=%d, want 4 or 6", id, nPeriods)
	}
	return Course{ID: id, NPeriods: nPeriods, MaxLectureLen: maxLectureLen}, nil
}

// Curriculum is a named bag of courses, unique by CourseID within the
// curriculum. The same CourseID may appear in multiple curricula: that
// course is then a "shared course" and must be synchronised across them by
// the constraint builder, never modelled as a single shared variable.
type Curriculum struct {
	ID string
	// Courses preserves declaration order; it fixes the order decision
	// variables are created in and the order solutions are serialised in.
	Courses []Course
}

// NewCurriculum validates course id uniqueness within the curriculum and
// constructs it. This is the single place duplicate course ids are
// detected; callers must not re-implement the check.
func NewCurriculum(id string, courses []Course) (Curriculum, error) {
	if len(courses) == 0 {
		return Curriculum{}, apierr.Wrap(apierr.ErrSchemaViolation, "curriculum %q has no courses", id)
	}
	seen := make(map[string]struct{}, len(courses))
	for _, c := range courses {
		if _, ok := seen[c.ID]; ok {
			return Curriculum{}, apierr.Wrap(apierr.ErrDuplicateCourseID, "curriculum %q has duplicate course_id %q", id, c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return Curriculum{ID: id, Courses: courses}, nil
}

// Course returns the course with the given id and whether it was found.
func (c Curriculum) Course(id string) (Course, bool) {
	for _, course := range c.Courses {
		if course.ID == id {
			return course, true
		}
	}
	return Course{}, false
}

// Calendar describes the weekly grid courses are scheduled into. One period
// is 30 minutes.
type Calendar struct {
	NDays    int
	NPeriods int
}
