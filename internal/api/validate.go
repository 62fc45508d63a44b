package api

import (
	"github.com/mmxmb/course-sched/internal/apierr"
	"github.com/mmxmb/course-sched/internal/domain"
)

// validateRequest runs the second-pass checks that cannot be expressed as
// struct tags: the n_solutions ceiling, the day/period range checks of the
// original's DAYS_RANGE/PERIODS_RANGE (bounded by the configured calendar,
// not a static value, so they cannot live in a binding tag), and the
// course_locks/constraints identity rules of spec.md §6 (course_locks
// course_ids unique, and disjoint from constraints' course_ids — mirroring
// the original's course_locks_contains_duplicates and
// course_locks_and_constraints_overlap).
func validateRequest(req *RequestDTO, calendar domain.Calendar, maxNSolutions int) error {
	if req.NSolutions > maxNSolutions {
		return apierr.Wrap(apierr.ErrSchemaViolation, "n_solutions %d exceeds API_MAX_N_SOLUTIONS %d", req.NSolutions, maxNSolutions)
	}

	lockIDs := make(map[string]bool, len(req.CourseLocks))
	for _, l := range req.CourseLocks {
		if lockIDs[l.CourseID] {
			return apierr.Wrap(apierr.ErrSchemaViolation, "course_locks contains duplicate course_id %q", l.CourseID)
		}
		lockIDs[l.CourseID] = true

		for _, e := range l.Locks {
			if !inRange(e.Day, calendar.NDays) {
				return apierr.Wrap(apierr.ErrSchemaViolation, "course_locks course_id %q: day %d outside [0, %d)", l.CourseID, e.Day, calendar.NDays)
			}
			if !inRange(e.Start, calendar.NPeriods) {
				return apierr.Wrap(apierr.ErrSchemaViolation, "course_locks course_id %q: start %d outside [0, %d)", l.CourseID, e.Start, calendar.NPeriods)
			}
		}
	}

	for _, c := range req.Constraints {
		if lockIDs[c.CourseID] {
			return apierr.Wrap(apierr.ErrLockConstraintConflict, "course_id %q appears in both course_locks and constraints", c.CourseID)
		}
		if !inRange(c.Day, calendar.NDays) {
			return apierr.Wrap(apierr.ErrSchemaViolation, "constraints course_id %q: day %d outside [0, %d)", c.CourseID, c.Day, calendar.NDays)
		}
		for _, iv := range c.Intervals {
			if !inRange(iv.Start, calendar.NPeriods) {
				return apierr.Wrap(apierr.ErrSchemaViolation, "constraints course_id %q: start %d outside [0, %d)", c.CourseID, iv.Start, calendar.NPeriods)
			}
			if !inRange(iv.End, calendar.NPeriods) {
				return apierr.Wrap(apierr.ErrSchemaViolation, "constraints course_id %q: end %d outside [0, %d)", c.CourseID, iv.End, calendar.NPeriods)
			}
		}
	}

	return nil
}

// inRange reports whether v lies in [0, n), matching the original's
// DAYS_RANGE/PERIODS_RANGE membership checks.
func inRange(v, n int) bool {
	return v >= 0 && v < n
}
