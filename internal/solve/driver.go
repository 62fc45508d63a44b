// Package solve drives the CP-SAT solver over a built schedmodel.Model and
// replays every solution found through a schedresult.Callback.
//
// The vendored Go wrapper around CP-SAT has no per-solution callback like
// the original's cp_model.CpSolverSolutionCallback: SolveCpModelWithParameters
// returns once, after the search finishes, with every enumerated solution
// attached to the response (see schedmodel.Model.Proto and
// CpSolverResponse.GetAdditionalSolutions). Driver.Run bridges that gap by
// replaying the attached solutions, in the solver's own discovery order,
// through the Callback one at a time — so from the callback's point of view
// nothing has changed.
package solve

import (
	"context"
	"time"

	cpmodel "github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"

	"github.com/mmxmb/course-sched/internal/apierr"
	"github.com/mmxmb/course-sched/internal/schedmodel"
	"github.com/mmxmb/course-sched/internal/schedresult"
)

// boundDiscoveryWorkers is the worker count used for phase 1 of an
// optimise-then-enumerate run. Phase 2 (enumeration) must stay
// single-threaded: CP-SAT only guarantees all-solution enumeration with
// num_search_workers==1.
const boundDiscoveryWorkers = 8

// objectiveSlack is added to the objective value found in phase 1 before
// phase 2 enumerates every solution within it. At 0, phase 2 enumerates
// only solutions whose objective is no worse than the phase-1 value.
const objectiveSlack = 0

// Driver runs one CP-SAT solve (or, for optimisation models, the two-phase
// optimise-then-enumerate procedure) and streams results to a callback.
type Driver struct {
	logger *zap.Logger
}

// NewDriver builds a Driver logging through logger.
func NewDriver(logger *zap.Logger) *Driver {
	return &Driver{logger: logger}
}

// solutionValues adapts a raw CpSolverSolutionProto's value vector to
// schedresult.Values, indexing it by a cpmodel.IntVar's own Index().
type solutionValues struct {
	raw []int64
}

func (s solutionValues) Int(v cpmodel.IntVar) int64 {
	return s.raw[v.Index()]
}

// Run solves model and replays every solution found to cb, stopping as soon
// as cb reports it has recorded enough (or the solver's pool is exhausted).
// maxTime, if non-zero, bounds the total wall-clock budget across every
// phase. It reports whether the overall search timed out before exhausting
// the solution space.
func (d *Driver) Run(ctx context.Context, model *schedmodel.Model, cb schedresult.Callback, nSolutions int, maxTime time.Duration) (status cmpb.CpSolverStatus, timedOut bool, err error) {
	protoModel, err := model.Proto()
	if err != nil {
		return cmpb.CpSolverStatus_MODEL_INVALID, false, apierr.Wrap(apierr.ErrInternal, "building CP model: %v", err)
	}

	deadline := deadlineChannel(ctx, maxTime)

	if !model.IsOptimize() {
		return d.enumerate(protoModel, cb, nSolutions, maxTime, deadline)
	}
	return d.optimizeThenEnumerate(protoModel, model, cb, nSolutions, maxTime, deadline)
}

func deadlineChannel(ctx context.Context, maxTime time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if maxTime > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(maxTime):
			}
			return
		}
		<-ctx.Done()
	}()
	return done
}

func (d *Driver) enumerate(model *cmpb.CpModelProto, cb schedresult.Callback, nSolutions int, maxTime time.Duration, interrupt <-chan struct{}) (cmpb.CpSolverStatus, bool, error) {
	params := &sppb.SatParameters{
		EnumerateAllSolutions:             proto.Bool(true),
		FillAdditionalSolutionsInResponse: proto.Bool(true),
		SolutionPoolSize:                  proto.Int32(int32(nSolutions)),
		NumSearchWorkers:                  proto.Int32(1),
	}
	if maxTime > 0 {
		params.MaxTimeInSeconds = proto.Float64(maxTime.Seconds())
	}

	response, err := cpmodel.SolveCpModelInterruptibleWithParameters(model, params, interrupt)
	if err != nil {
		return cmpb.CpSolverStatus_UNKNOWN, false, apierr.Wrap(apierr.ErrInternal, "solving: %v", err)
	}

	d.logger.Info("enumerate solve finished",
		zap.String("status", response.GetStatus().String()),
		zap.Int("solutions", len(response.GetAdditionalSolutions())))

	d.replay(response, cb)
	timedOut := response.GetStatus() == cmpb.CpSolverStatus_UNKNOWN || response.GetStatus() == cmpb.CpSolverStatus_FEASIBLE
	return response.GetStatus(), timedOut, nil
}

func (d *Driver) optimizeThenEnumerate(model *cmpb.CpModelProto, m *schedmodel.Model, cb schedresult.Callback, nSolutions int, maxTime time.Duration, interrupt <-chan struct{}) (cmpb.CpSolverStatus, bool, error) {
	boundParams := &sppb.SatParameters{
		NumSearchWorkers: proto.Int32(boundDiscoveryWorkers),
	}
	if maxTime > 0 {
		boundParams.MaxTimeInSeconds = proto.Float64(maxTime.Seconds())
	}

	boundResponse, err := cpmodel.SolveCpModelInterruptibleWithParameters(model, boundParams, interrupt)
	if err != nil {
		return cmpb.CpSolverStatus_UNKNOWN, false, apierr.Wrap(apierr.ErrInternal, "solving (bound discovery): %v", err)
	}

	d.logger.Info("bound-discovery solve finished",
		zap.String("status", boundResponse.GetStatus().String()),
		zap.Float64("objective", boundResponse.GetObjectiveValue()))

	switch boundResponse.GetStatus() {
	case cmpb.CpSolverStatus_INFEASIBLE, cmpb.CpSolverStatus_MODEL_INVALID:
		return boundResponse.GetStatus(), false, nil
	case cmpb.CpSolverStatus_UNKNOWN:
		return boundResponse.GetStatus(), true, nil
	}

	bound := int64(boundResponse.GetObjectiveValue())

	objVars, objCoeffs := m.Objective()
	objExpr := cpmodel.NewLinearExpr().AddWeightedSum(toLinearArguments(objVars), objCoeffs)
	m.Builder().AddLessOrEqual(objExpr, m.Builder().NewConstant(bound+objectiveSlack))

	protoModel, err := m.Proto()
	if err != nil {
		return cmpb.CpSolverStatus_MODEL_INVALID, false, apierr.Wrap(apierr.ErrInternal, "rebuilding CP model for enumeration: %v", err)
	}
	protoModel.Objective = nil

	return d.enumerate(protoModel, cb, nSolutions, maxTime, interrupt)
}

func (d *Driver) replay(response *cmpb.CpSolverResponse, cb schedresult.Callback) {
	for _, sol := range response.GetAdditionalSolutions() {
		if !cb.OnSolution(solutionValues{raw: sol.GetValues()}) {
			return
		}
	}
}

func toLinearArguments(vars []cpmodel.IntVar) []cpmodel.LinearArgument {
	out := make([]cpmodel.LinearArgument, len(vars))
	for i, v := range vars {
		out[i] = v
	}
	return out
}
