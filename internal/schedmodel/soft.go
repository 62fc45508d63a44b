package schedmodel

import (
	"fmt"

	cpmodel "github.com/google/or-tools/ortools/sat/go/cpmodel"
)

func (m *Model) addObjectiveTerm(v cpmodel.IntVar, coeff int64) {
	m.objVars = append(m.objVars, v)
	m.objCoeffs = append(m.objCoeffs, coeff)
	m.isOptimize = true
}

// AddSoftStartEnd adds, for every (curriculum, day, course), a penalty for
// starting earlier than softMin (weighted underCost) and a penalty for
// starting later than softMax (weighted overCost), per spec.md §4.3.
// Registering this marks the build as an optimisation build.
func (m *Model) AddSoftStartEnd(softMin, softMax, underCost, overCost int64) error {
	if err := m.checkSoftBound(softMin); err != nil {
		return err
	}
	if err := m.checkSoftBound(softMax); err != nil {
		return err
	}
	if err := m.checkSoftBound(underCost); err != nil {
		return err
	}
	if err := m.checkSoftBound(overCost); err != nil {
		return err
	}

	prefix := "soft_start_end"
	for _, cur := range m.Curricula {
		for d := 0; d < m.Calendar.NDays; d++ {
			for _, c := range cur.Courses {
				v, _ := m.Var(cur.ID, d, c.ID)

				earlyDelta := m.builder.NewIntVar(int64(-m.Calendar.NPeriods), int64(m.Calendar.NPeriods))
				m.builder.AddEquality(earlyDelta, cpmodel.NewLinearExpr().AddConstant(softMin).AddTerm(v.Start, -1))
				excessEarly := m.builder.NewIntVar(0, int64(m.Calendar.NPeriods)).WithName(prefix + "_under")
				m.builder.AddMaxEquality(excessEarly, earlyDelta, m.builder.NewConstant(0))
				m.addObjectiveTerm(excessEarly, underCost)

				lateDelta := m.builder.NewIntVar(int64(-m.Calendar.NPeriods), int64(m.Calendar.NPeriods))
				m.builder.AddEquality(lateDelta, cpmodel.NewLinearExpr().Add(v.Start).AddConstant(-softMax))
				excessLate := m.builder.NewIntVar(0, int64(m.Calendar.NPeriods)).WithName(prefix + "_over")
				m.builder.AddMaxEquality(excessLate, lateDelta, m.builder.NewConstant(0))
				m.addObjectiveTerm(excessLate, overCost)
			}
		}
	}
	return nil
}

// AddSoftTotalTime penalises, per (curriculum, day), the total scheduled
// duration falling below softMin (weighted wLow) or above softMax
// (weighted wHigh). The source left this hook referenced by tests but
// unimplemented (spec.md §4.3, §9); this mirrors the soft-start/end shape
// with the per-day duration sum as the aggregate.
func (m *Model) AddSoftTotalTime(softMin, softMax, wLow, wHigh int64) error {
	if err := m.checkSoftBound(softMin); err != nil {
		return err
	}
	if err := m.checkSoftBound(softMax); err != nil {
		return err
	}

	prefix := "soft_total_time"
	maxTotal := int64(m.Calendar.NPeriods) * int64(MaxCoursesPerCurriculumDay)
	for _, cur := range m.Curricula {
		for d := 0; d < m.Calendar.NDays; d++ {
			total := cpmodel.NewLinearExpr()
			for _, c := range cur.Courses {
				v, _ := m.Var(cur.ID, d, c.ID)
				total.Add(v.Duration)
			}

			lowDelta := m.builder.NewIntVar(-maxTotal, maxTotal)
			m.builder.AddEquality(lowDelta, cpmodel.NewLinearExpr().AddConstant(softMin).AddTerm(total, -1))
			excessLow := m.builder.NewIntVar(0, maxTotal).WithName(prefix + "_under")
			m.builder.AddMaxEquality(excessLow, lowDelta, m.builder.NewConstant(0))
			m.addObjectiveTerm(excessLow, wLow)

			highDelta := m.builder.NewIntVar(-maxTotal, maxTotal)
			m.builder.AddEquality(highDelta, cpmodel.NewLinearExpr().Add(total).AddConstant(-softMax))
			excessHigh := m.builder.NewIntVar(0, maxTotal).WithName(prefix + "_over")
			m.builder.AddMaxEquality(excessHigh, highDelta, m.builder.NewConstant(0))
			m.addObjectiveTerm(excessHigh, wHigh)
		}
	}
	return nil
}

// MaxCoursesPerCurriculumDay bounds the domains of the per-day aggregates:
// the duration sum of AddSoftTotalTime (as a multiple of NPeriods) and the
// scheduled-course count of AddSoftThreeRow.
const MaxCoursesPerCurriculumDay = 64

// AddSoftThreeRow penalises, per (curriculum, day), the number of courses
// scheduled that day exceeding softMax, weighted by weight. The aggregate
// is that course count only: lectures are not checked for being
// consecutive, so runs of back-to-back lectures are not counted.
func (m *Model) AddSoftThreeRow(softMax, weight int64) error {
	if err := m.checkSoftBound(softMax); err != nil {
		return err
	}

	prefix := "soft_three_row"
	for _, cur := range m.Curricula {
		for d := 0; d < m.Calendar.NDays; d++ {
			var scheduledCount []cpmodel.BoolVar
			for _, c := range cur.Courses {
				v, _ := m.Var(cur.ID, d, c.ID)
				scheduled := m.builder.NewBoolVar().WithName(fmt.Sprintf("%s_scheduled_cur%sd%dc%s", prefix, cur.ID, d, c.ID))
				m.builder.AddNotEqual(v.Duration, m.builder.NewConstant(0)).OnlyEnforceIf(scheduled)
				m.builder.AddEquality(v.Duration, m.builder.NewConstant(0)).OnlyEnforceIf(scheduled.Not())
				scheduledCount = append(scheduledCount, scheduled)
			}
			count := cpmodel.NewLinearExpr()
			for _, b := range scheduledCount {
				count.Add(b)
			}

			delta := m.builder.NewIntVar(-MaxCoursesPerCurriculumDay, MaxCoursesPerCurriculumDay)
			m.builder.AddEquality(delta, cpmodel.NewLinearExpr().Add(count).AddConstant(-softMax))
			excess := m.builder.NewIntVar(0, MaxCoursesPerCurriculumDay).WithName(prefix + "_excess")
			m.builder.AddMaxEquality(excess, delta, m.builder.NewConstant(0))
			m.addObjectiveTerm(excess, weight)
		}
	}
	return nil
}

func (m *Model) checkSoftBound(v int64) error {
	if v < 0 || v >= int64(m.Calendar.NPeriods) {
		return fmt.Errorf("soft bound %d out of range [0, %d)", v, m.Calendar.NPeriods)
	}
	return nil
}

// SetObjective declares the scalar-product minimisation objective over
// every accumulated soft term. It must be called exactly once, after every
// AddSoftXxx call; it does nothing when IsOptimize is false.
func (m *Model) SetObjective() {
	if !m.isOptimize {
		return
	}
	obj := cpmodel.NewLinearExpr()
	obj.AddWeightedSum(toLinearArguments(m.objVars), m.objCoeffs)
	m.builder.Minimize(obj)
}

func toLinearArguments(vars []cpmodel.IntVar) []cpmodel.LinearArgument {
	out := make([]cpmodel.LinearArgument, len(vars))
	for i, v := range vars {
		out[i] = v
	}
	return out
}
