package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/mmxmb/course-sched/api/swagger"
	"github.com/mmxmb/course-sched/internal/domain"
	"github.com/mmxmb/course-sched/internal/intake"
	"github.com/mmxmb/course-sched/internal/logging"
)

// NewRouter builds the gin engine exposing POST /sched, GET /version,
// GET /metrics and GET /docs/*any.
func NewRouter(coordinator *intake.Coordinator, calendar domain.Calendar, maxSolutions int, version string, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.GinMiddleware(logger))

	metrics := NewMetrics()
	r.Use(metrics.GinMiddleware())

	h := NewHandler(coordinator, calendar, maxSolutions, version, logger)

	r.POST("/sched", h.Sched)
	r.GET("/version", h.Version)
	r.GET("/metrics", metrics.Handler())
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
