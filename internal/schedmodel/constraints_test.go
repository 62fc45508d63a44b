package schedmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmxmb/course-sched/internal/domain"
)

func TestAddUnavailabilityUnknownCourse(t *testing.T) {
	cal := domain.Calendar{NDays: 3, NPeriods: 10}
	cur := twoCourseCurriculum(t, "C")
	m, err := NewModel(cal, []domain.Curriculum{cur})
	require.NoError(t, err)

	err = m.AddUnavailability("nonexistent", 0, []UnavailabilityInterval{{Start: 0, End: 2}})
	assert.Error(t, err)
}

func TestAddCourseLockUnknownCourse(t *testing.T) {
	cal := domain.Calendar{NDays: 3, NPeriods: 10}
	cur := twoCourseCurriculum(t, "C")
	m, err := NewModel(cal, []domain.Curriculum{cur})
	require.NoError(t, err)

	err = m.AddCourseLock("nonexistent", []CourseLockEntry{{Day: 0, Start: 0, Duration: 2}})
	assert.Error(t, err)
}

func TestAddWeekdaySymmetryRequiresFiveDays(t *testing.T) {
	cal := domain.Calendar{NDays: 3, NPeriods: 10}
	cur := twoCourseCurriculum(t, "C")
	m, err := NewModel(cal, []domain.Curriculum{cur})
	require.NoError(t, err)

	err = m.AddWeekdaySymmetry()
	assert.Error(t, err)
}

func TestAddCourseLockAndUnavailabilitySucceed(t *testing.T) {
	cal := domain.Calendar{NDays: 5, NPeriods: 20}
	cur := twoCourseCurriculum(t, "C")
	m, err := NewModel(cal, []domain.Curriculum{cur})
	require.NoError(t, err)

	require.NoError(t, m.AddCourseLock("a", []CourseLockEntry{
		{Day: 0, Start: 10, Duration: 3},
		{Day: 2, Start: 10, Duration: 3},
	}))
	require.NoError(t, m.AddUnavailability("b", 1, []UnavailabilityInterval{{Start: 0, End: 5}}))
}
