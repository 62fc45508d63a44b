// Package api exposes the HTTP surface of spec.md §6: request/response
// DTOs validated with go-playground/validator, gin handlers translating
// them to and from internal/intake, and the ambient endpoints
// (/version, /metrics, /docs) the rest of the pack's services carry.
package api

// CourseDTO is one course declared within a curriculum.
type CourseDTO struct {
	CourseID string `json:"course_id" binding:"required"`
	NPeriods int    `json:"n_periods" binding:"required,oneof=4 6"`
}

// CurriculumDTO is one curriculum as declared in a request.
type CurriculumDTO struct {
	CurriculumID string      `json:"curriculum_id" binding:"required"`
	Courses      []CourseDTO `json:"courses" binding:"required,min=1,dive"`
}

// IntervalDTO is one [start, end) unavailable window.
type IntervalDTO struct {
	Start int `json:"start" binding:"gte=0"`
	End   int `json:"end" binding:"gtfield=Start"`
}

// UnavailabilityDTO forbids a course from overlapping listed intervals on
// a day.
type UnavailabilityDTO struct {
	CourseID  string        `json:"course_id" binding:"required"`
	Day       int           `json:"day" binding:"gte=0"`
	Intervals []IntervalDTO `json:"intervals" binding:"required,min=1,dive"`
}

// CourseLockEntryDTO pins a course to one fixed weekly slot.
type CourseLockEntryDTO struct {
	Day      int `json:"day" binding:"gte=0"`
	Start    int `json:"start" binding:"gte=0"`
	Duration int `json:"duration" binding:"oneof=2 3 4 6"`
}

// CourseLockDTO pins a course to fixed slots across the week.
type CourseLockDTO struct {
	CourseID string               `json:"course_id" binding:"required"`
	Locks    []CourseLockEntryDTO `json:"locks" binding:"required,min=1,dive"`
}

// SoftStartEndDTO is the optional soft-start/end objective term.
type SoftStartEndDTO struct {
	SoftMin   int64 `json:"soft_min"`
	SoftMax   int64 `json:"soft_max" binding:"gtfield=SoftMin"`
	UnderCost int64 `json:"under_cost" binding:"gte=0"`
	OverCost  int64 `json:"over_cost" binding:"gte=0"`
}

// RequestDTO is the request envelope of spec.md §6.
type RequestDTO struct {
	NSolutions   int                 `json:"n_solutions" binding:"required,min=1"`
	Curricula    []CurriculumDTO     `json:"curricula" binding:"required,min=1,dive"`
	Constraints  []UnavailabilityDTO `json:"constraints" binding:"omitempty,dive"`
	CourseLocks  []CourseLockDTO     `json:"course_locks" binding:"omitempty,dive"`
	SoftStartEnd *SoftStartEndDTO    `json:"soft_start_end" binding:"omitempty"`
}

// VersionResponse answers GET /version.
type VersionResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
