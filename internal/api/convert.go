package api

import (
	"github.com/mmxmb/course-sched/internal/intake"
	"github.com/mmxmb/course-sched/internal/schedmodel"
)

func toIntakeRequest(req RequestDTO) intake.Request {
	curricula := make([]intake.CurriculumInput, len(req.Curricula))
	for i, c := range req.Curricula {
		courses := make([]intake.CourseInput, len(c.Courses))
		for j, co := range c.Courses {
			courses[j] = intake.CourseInput{CourseID: co.CourseID, NPeriods: co.NPeriods}
		}
		curricula[i] = intake.CurriculumInput{CurriculumID: c.CurriculumID, Courses: courses}
	}

	constraints := make([]intake.UnavailabilityInput, len(req.Constraints))
	for i, u := range req.Constraints {
		intervals := make([]schedmodel.UnavailabilityInterval, len(u.Intervals))
		for j, iv := range u.Intervals {
			intervals[j] = schedmodel.UnavailabilityInterval{Start: iv.Start, End: iv.End}
		}
		constraints[i] = intake.UnavailabilityInput{CourseID: u.CourseID, Day: u.Day, Intervals: intervals}
	}

	locks := make([]intake.CourseLockInput, len(req.CourseLocks))
	for i, l := range req.CourseLocks {
		entries := make([]schedmodel.CourseLockEntry, len(l.Locks))
		for j, e := range l.Locks {
			entries[j] = schedmodel.CourseLockEntry{Day: e.Day, Start: e.Start, Duration: e.Duration}
		}
		locks[i] = intake.CourseLockInput{CourseID: l.CourseID, Locks: entries}
	}

	var soft *intake.SoftStartEnd
	if req.SoftStartEnd != nil {
		soft = &intake.SoftStartEnd{
			SoftMin:   req.SoftStartEnd.SoftMin,
			SoftMax:   req.SoftStartEnd.SoftMax,
			UnderCost: req.SoftStartEnd.UnderCost,
			OverCost:  req.SoftStartEnd.OverCost,
		}
	}

	return intake.Request{
		NSolutions:   req.NSolutions,
		Curricula:    curricula,
		Constraints:  constraints,
		CourseLocks:  locks,
		SoftStartEnd: soft,
	}
}
