package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourse(t *testing.T) {
	c, err := NewCourse("x", 6)
	require.NoError(t, err)
	assert.Equal(t, 6, c.MaxLectureLen)

	c, err = NewCourse("y", 4)
	require.NoError(t, err)
	assert.Equal(t, 2, c.MaxLectureLen)

	_, err = NewCourse("z", 5)
	assert.Error(t, err)
}

func TestNewCurriculumDuplicateCourseID(t *testing.T) {
	a, _ := NewCourse("a", 6)
	b, _ := NewCourse("a", 4)

	_, err := NewCurriculum("C", []Course{a, b})
	assert.Error(t, err)
}

func TestNewCurriculumEmpty(t *testing.T) {
	_, err := NewCurriculum("C", nil)
	assert.Error(t, err)
}

func TestCurriculumCourseLookup(t *testing.T) {
	a, _ := NewCourse("a", 6)
	cur, err := NewCurriculum("C", []Course{a})
	require.NoError(t, err)

	got, ok := cur.Course("a")
	assert.True(t, ok)
	assert.Equal(t, a, got)

	_, ok = cur.Course("missing")
	assert.False(t, ok)
}
