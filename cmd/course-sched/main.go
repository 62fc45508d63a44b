// Command course-sched serves the weekly course-timetabling API: it reads
// environment configuration, builds the request coordinator, and serves
// the HTTP surface of spec.md §6.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/golang/glog"

	"github.com/mmxmb/course-sched/internal/api"
	"github.com/mmxmb/course-sched/internal/config"
	"github.com/mmxmb/course-sched/internal/domain"
	"github.com/mmxmb/course-sched/internal/intake"
	"github.com/mmxmb/course-sched/internal/logging"
)

// version is set at release time via -ldflags; it defaults to "dev" for
// local builds.
var version = "dev"

func main() {
	// cpmodel logs internal-consistency fatals through glog; parsing flags
	// here lets glog's own flags (such as -logtostderr) decide where that
	// output goes, and the deferred Flush writes out anything buffered.
	flag.Parse()
	defer glog.Flush()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	calendar := domain.Calendar{NDays: cfg.DaysPerWeek, NPeriods: cfg.PeriodsPerDay}
	coordinator := intake.NewCoordinator(calendar, logr)

	router := api.NewRouter(coordinator, calendar, cfg.APIMaxNSolutions, version, logr)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("starting server", "addr", addr)

	if err := router.Run(addr); err != nil {
		logr.Sugar().Fatalw("server exited with error", "error", err)
	}
}
