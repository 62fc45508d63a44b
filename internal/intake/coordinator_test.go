package intake

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mmxmb/course-sched/internal/domain"
)

func TestCoordinatorRunMinimalFeasible(t *testing.T) {
	cal := domain.Calendar{NDays: 5, NPeriods: 8}
	coord := NewCoordinator(cal, zap.NewNop())

	req := Request{
		NSolutions: 1,
		Curricula: []CurriculumInput{
			{
				CurriculumID: "C",
				Courses:      []CourseInput{{CourseID: "x", NPeriods: 6}},
			},
		},
	}

	result, err := coord.Run(context.Background(), req, 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, result.NSolutions)
	require.Len(t, result.Solutions, 1)

	sol := result.Solutions[0]
	require.Len(t, sol.Curricula, 1)
	assert.Equal(t, "C", sol.Curricula[0].CurriculumID)
	require.Len(t, sol.Curricula[0].Courses, 1)
	assert.Equal(t, "x", sol.Curricula[0].Courses[0].CourseID)

	var total int
	for _, d := range sol.Curricula[0].Courses[0].Schedule {
		total += d.Duration
	}
	assert.Equal(t, 6, total)
}

func TestCoordinatorRunDuplicateCurriculumID(t *testing.T) {
	cal := domain.Calendar{NDays: 5, NPeriods: 8}
	coord := NewCoordinator(cal, zap.NewNop())

	req := Request{
		NSolutions: 1,
		Curricula: []CurriculumInput{
			{CurriculumID: "C", Courses: []CourseInput{{CourseID: "x", NPeriods: 4}}},
			{CurriculumID: "C", Courses: []CourseInput{{CourseID: "y", NPeriods: 4}}},
		},
	}

	_, err := coord.Run(context.Background(), req, 10*time.Second)
	assert.Error(t, err)
}

func TestCoordinatorRunUnknownCourseLock(t *testing.T) {
	cal := domain.Calendar{NDays: 5, NPeriods: 8}
	coord := NewCoordinator(cal, zap.NewNop())

	req := Request{
		NSolutions: 1,
		Curricula: []CurriculumInput{
			{CurriculumID: "C", Courses: []CourseInput{{CourseID: "x", NPeriods: 4}}},
		},
		CourseLocks: []CourseLockInput{
			{CourseID: "missing"},
		},
	}

	_, err := coord.Run(context.Background(), req, 10*time.Second)
	assert.Error(t, err)
}
