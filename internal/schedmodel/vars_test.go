package schedmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmxmb/course-sched/internal/domain"
)

func twoCourseCurriculum(t *testing.T, id string) domain.Curriculum {
	t.Helper()
	a, err := domain.NewCourse("a", 6)
	require.NoError(t, err)
	b, err := domain.NewCourse("b", 4)
	require.NoError(t, err)
	cur, err := domain.NewCurriculum(id, []domain.Course{a, b})
	require.NoError(t, err)
	return cur
}

func TestNewModelCreatesOneVarPerTuple(t *testing.T) {
	cal := domain.Calendar{NDays: 3, NPeriods: 10}
	cur := twoCourseCurriculum(t, "C")

	m, err := NewModel(cal, []domain.Curriculum{cur})
	require.NoError(t, err)

	for d := 0; d < cal.NDays; d++ {
		for _, courseID := range []string{"a", "b"} {
			_, ok := m.Var("C", d, courseID)
			assert.True(t, ok, "day %d course %s should have a var", d, courseID)
		}
	}
	_, ok := m.Var("C", 0, "missing")
	assert.False(t, ok)
}

func TestCurriculaSharing(t *testing.T) {
	cal := domain.Calendar{NDays: 2, NPeriods: 8}
	c1 := twoCourseCurriculum(t, "C1")
	c2 := twoCourseCurriculum(t, "C2")

	m, err := NewModel(cal, []domain.Curriculum{c1, c2})
	require.NoError(t, err)

	ids, ok := m.CurriculaSharing("a")
	require.True(t, ok)
	assert.Equal(t, []string{"C1", "C2"}, ids)

	_, ok = m.CurriculaSharing("nonexistent")
	assert.False(t, ok)
}

func TestProtoBuildsAfterHardConstraints(t *testing.T) {
	cal := domain.Calendar{NDays: 5, NPeriods: 8}
	cur := twoCourseCurriculum(t, "C")

	m, err := NewModel(cal, []domain.Curriculum{cur})
	require.NoError(t, err)

	m.AddNoOverlap()
	m.AddWeeklyLength()
	m.AddLectureGranularity()
	m.AddSyncAcrossCurricula()
	require.NoError(t, m.AddWeekdaySymmetry())

	proto, err := m.Proto()
	require.NoError(t, err)
	assert.NotEmpty(t, proto.GetConstraints())
	assert.False(t, m.IsOptimize())
}

func TestIsOptimizeAfterSoftTerm(t *testing.T) {
	cal := domain.Calendar{NDays: 5, NPeriods: 20}
	cur := twoCourseCurriculum(t, "C")

	m, err := NewModel(cal, []domain.Curriculum{cur})
	require.NoError(t, err)

	require.NoError(t, m.AddSoftStartEnd(2, 15, 1, 1))
	assert.True(t, m.IsOptimize())

	objVars, objCoeffs := m.Objective()
	assert.NotEmpty(t, objVars)
	assert.Len(t, objVars, len(objCoeffs))
}
