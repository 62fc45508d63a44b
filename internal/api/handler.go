package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/mmxmb/course-sched/internal/apierr"
	"github.com/mmxmb/course-sched/internal/domain"
	"github.com/mmxmb/course-sched/internal/intake"
)

// maxSolveTime bounds a single request's solver budget; spec.md's
// SolverTimeout error kind surfaces once this elapses.
const maxSolveTime = 25 * time.Second

// Handler wires the HTTP surface to a Coordinator.
type Handler struct {
	coordinator  *intake.Coordinator
	validate     *validator.Validate
	calendar     domain.Calendar
	maxSolutions int
	version      string
	logger       *zap.Logger
}

// NewHandler builds a Handler. calendar bounds the day/period range checks
// validateRequest runs, since those ranges depend on runtime configuration
// and cannot be expressed as static binding tags.
func NewHandler(coordinator *intake.Coordinator, calendar domain.Calendar, maxSolutions int, version string, logger *zap.Logger) *Handler {
	// The DTOs carry "binding" struct tags (gin's own tag name), so the
	// validator used for the explicit second pass below must read that same
	// tag name; otherwise it finds no rules and every call is a no-op.
	v := validator.New()
	v.SetTagName("binding")

	return &Handler{
		coordinator:  coordinator,
		validate:     v,
		calendar:     calendar,
		maxSolutions: maxSolutions,
		version:      version,
		logger:       logger,
	}
}

// Sched godoc
// @Summary      Compute weekly course schedules
// @Description  Enumerates or optimises feasible weekly timetables for the given curricula and constraints.
// @Tags         scheduling
// @Accept       json
// @Produce      json
// @Param        request body RequestDTO true "scheduling request"
// @Success      200 {object} schedresult.Result
// @Failure      400 {object} apierr.Error
// @Router       /sched [post]
func (h *Handler) Sched(c *gin.Context) {
	// Decoding and struct validation are kept as two separate steps (rather
	// than gin's combined ShouldBindJSON, which runs both under one error)
	// so malformed JSON and a schema/range violation on well-formed JSON
	// surface as the distinct MalformedRequest/SchemaViolation kinds of
	// spec.md §7 instead of collapsing to one.
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		writeError(c, apierr.Wrap(apierr.ErrMalformedRequest, "%v", err))
		return
	}

	var req RequestDTO
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(c, apierr.Wrap(apierr.ErrMalformedRequest, "%v", err))
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		writeError(c, apierr.Wrap(apierr.ErrSchemaViolation, "%v", err))
		return
	}

	if err := validateRequest(&req, h.calendar, h.maxSolutions); err != nil {
		writeError(c, err)
		return
	}

	// Coordinator.Run reports SolverTimeout and Infeasible as an empty or
	// partial Result with a nil error: per spec.md §7 both surface as 200,
	// not an error response. A non-nil error here is always a
	// model-building or internal failure.
	result, err := h.coordinator.Run(c.Request.Context(), toIntakeRequest(req), maxSolveTime)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Version godoc
// @Summary      Service version
// @Tags         meta
// @Produce      json
// @Success      200 {object} VersionResponse
// @Router       /version [get]
func (h *Handler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{Name: "course-sched", Version: h.version})
}

func writeError(c *gin.Context, err error) {
	appErr := apierr.FromError(err)
	c.JSON(appErr.Status, appErr)
}
