package schedresult

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatterRendersScheduledCourses(t *testing.T) {
	m, cal, curricula := buildTestModel(t)

	v0, _ := m.Var("C", 0, "a")
	raw := make([]int64, 64)
	raw[v0.Start.Index()] = 4
	raw[v0.Duration.Index()] = 2
	raw[v0.End.Index()] = 6

	f := NewFormatter(m, cal, curricula, 3)
	keepGoing := f.OnSolution(fakeValues{raw: raw})
	assert.True(t, keepGoing)

	require.Len(t, f.Lines, 1)
	assert.True(t, strings.Contains(f.Lines[0], "a[4-6)"))
	assert.True(t, strings.Contains(f.Lines[0], "curriculum C"))
}
