package solve

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"

	"github.com/mmxmb/course-sched/internal/domain"
	"github.com/mmxmb/course-sched/internal/schedmodel"
	"github.com/mmxmb/course-sched/internal/schedresult"
)

func smallModel(t *testing.T) (*schedmodel.Model, domain.Calendar, []domain.Curriculum) {
	t.Helper()
	cal := domain.Calendar{NDays: 5, NPeriods: 10}
	a, err := domain.NewCourse("a", 4)
	require.NoError(t, err)
	cur, err := domain.NewCurriculum("C", []domain.Course{a})
	require.NoError(t, err)

	m, err := schedmodel.NewModel(cal, []domain.Curriculum{cur})
	require.NoError(t, err)

	m.AddNoOverlap()
	m.AddWeeklyLength()
	m.AddLectureGranularity()
	m.AddSyncAcrossCurricula()
	require.NoError(t, m.AddWeekdaySymmetry())

	return m, cal, []domain.Curriculum{cur}
}

func TestRunEnumeratesFeasibleSolutions(t *testing.T) {
	m, cal, curricula := smallModel(t)

	driver := NewDriver(zap.NewNop())
	serializer := schedresult.NewSerializer(m, cal, curricula, 3)

	status, timedOut, err := driver.Run(context.Background(), m, serializer, 3, 10*time.Second)
	require.NoError(t, err)
	assert.False(t, timedOut)
	assert.Contains(t, []cmpb.CpSolverStatus{cmpb.CpSolverStatus_OPTIMAL, cmpb.CpSolverStatus_FEASIBLE}, status)
	assert.LessOrEqual(t, serializer.Count(), 3)
	assert.Greater(t, serializer.Count(), 0)
}

func TestRunOptimizeThenEnumerate(t *testing.T) {
	m, cal, curricula := smallModel(t)
	require.NoError(t, m.AddSoftStartEnd(2, 8, 1, 1))
	require.True(t, m.IsOptimize())

	driver := NewDriver(zap.NewNop())
	serializer := schedresult.NewSerializer(m, cal, curricula, 2)

	status, timedOut, err := driver.Run(context.Background(), m, serializer, 2, 10*time.Second)
	require.NoError(t, err)
	assert.False(t, timedOut)
	assert.Contains(t, []cmpb.CpSolverStatus{cmpb.CpSolverStatus_OPTIMAL, cmpb.CpSolverStatus_FEASIBLE}, status)
	assert.LessOrEqual(t, serializer.Count(), 2)
	assert.Greater(t, serializer.Count(), 0)
}

func TestRunInfeasibleModelReturnsNoError(t *testing.T) {
	cal := domain.Calendar{NDays: 5, NPeriods: 10}
	a, err := domain.NewCourse("a", 4)
	require.NoError(t, err)
	cur, err := domain.NewCurriculum("C", []domain.Course{a})
	require.NoError(t, err)

	m, err := schedmodel.NewModel(cal, []domain.Curriculum{cur})
	require.NoError(t, err)
	m.AddNoOverlap()
	m.AddWeeklyLength()
	m.AddLectureGranularity()
	m.AddSyncAcrossCurricula()
	require.NoError(t, m.AddWeekdaySymmetry())

	// Lock the course's only non-zero day to a duration shorter than its
	// required weekly length, which AddWeeklyLength can never satisfy.
	require.NoError(t, m.AddCourseLock("a", []schedmodel.CourseLockEntry{
		{Day: 0, Start: 0, Duration: 2},
	}))

	driver := NewDriver(zap.NewNop())
	serializer := schedresult.NewSerializer(m, cal, []domain.Curriculum{cur}, 1)

	status, timedOut, err := driver.Run(context.Background(), m, serializer, 1, 5*time.Second)
	require.NoError(t, err)
	assert.False(t, timedOut)
	assert.Equal(t, cmpb.CpSolverStatus_INFEASIBLE, status)
	assert.Equal(t, 0, serializer.Count())
}
