package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mmxmb/course-sched/internal/domain"
	"github.com/mmxmb/course-sched/internal/intake"
	"github.com/mmxmb/course-sched/internal/schedresult"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestHandler() *Handler {
	cal := domain.Calendar{NDays: 5, NPeriods: 8}
	coord := intake.NewCoordinator(cal, zap.NewNop())
	return NewHandler(coord, cal, 999, "test", zap.NewNop())
}

func doRequest(h *Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	r := gin.New()
	r.POST("/sched", h.Sched)
	r.GET("/version", h.Version)

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSchedMalformedJSON(t *testing.T) {
	h := newTestHandler()
	w := doRequest(h, http.MethodPost, "/sched", []byte(`{"n_solutions":`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSchedSchemaViolation(t *testing.T) {
	h := newTestHandler()
	// n_periods=5 is neither 4 nor 6.
	body := []byte(`{
		"n_solutions": 1,
		"curricula": [{"curriculum_id": "C", "courses": [{"course_id": "x", "n_periods": 5}]}]
	}`)
	w := doRequest(h, http.MethodPost, "/sched", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSchedLockConstraintConflict(t *testing.T) {
	h := newTestHandler()
	body := []byte(`{
		"n_solutions": 1,
		"curricula": [{"curriculum_id": "C", "courses": [{"course_id": "x", "n_periods": 4}]}],
		"constraints": [{"course_id": "x", "day": 0, "intervals": [{"start": 0, "end": 2}]}],
		"course_locks": [{"course_id": "x", "locks": [{"day": 1, "start": 0, "duration": 2}]}]
	}`)
	w := doRequest(h, http.MethodPost, "/sched", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSchedConstraintDayOutOfRange(t *testing.T) {
	h := newTestHandler() // calendar is 5 days, so day 5 is out of range
	body := []byte(`{
		"n_solutions": 1,
		"curricula": [{"curriculum_id": "C", "courses": [{"course_id": "x", "n_periods": 4}]}],
		"constraints": [{"course_id": "x", "day": 5, "intervals": [{"start": 0, "end": 2}]}]
	}`)
	w := doRequest(h, http.MethodPost, "/sched", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSchedCourseLockStartOutOfRange(t *testing.T) {
	h := newTestHandler() // calendar has 8 periods per day, so start 8 is out of range
	body := []byte(`{
		"n_solutions": 1,
		"curricula": [{"curriculum_id": "C", "courses": [{"course_id": "x", "n_periods": 4}]}],
		"course_locks": [{"course_id": "x", "locks": [{"day": 0, "start": 8, "duration": 2}]}]
	}`)
	w := doRequest(h, http.MethodPost, "/sched", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSchedSuccessfulRoundTrip(t *testing.T) {
	h := newTestHandler()
	body := []byte(`{
		"n_solutions": 1,
		"curricula": [{"curriculum_id": "C", "courses": [{"course_id": "x", "n_periods": 6}]}]
	}`)
	w := doRequest(h, http.MethodPost, "/sched", body)
	require.Equal(t, http.StatusOK, w.Code)

	var result schedresult.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1, result.NSolutions)
	require.Len(t, result.Solutions, 1)
}

func TestVersion(t *testing.T) {
	h := newTestHandler()
	w := doRequest(h, http.MethodGet, "/version", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var v VersionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	assert.Equal(t, "test", v.Version)
	assert.Equal(t, "course-sched", v.Name)
}
