package schedmodel

import (
	"fmt"

	cpmodel "github.com/google/or-tools/ortools/sat/go/cpmodel"
)

// AddNoOverlap adds, for every (curriculum, day), a constraint that the
// intervals scheduled that day do not overlap. Intervals with duration 0
// are optional-in-practice: the underlying interval constraint still holds
// start+duration==end, but a zero-length interval never conflicts with
// anything, so no further handling is needed here.
func (m *Model) AddNoOverlap() {
	for d := 0; d < m.Calendar.NDays; d++ {
		for _, cur := range m.Curricula {
			bag := m.curDayIntervals[curDayKey{curriculumID: cur.ID, day: d}]
			if len(bag) == 0 {
				continue
			}
			m.builder.AddNoOverlap(bag...)
		}
	}
}

// AddWeeklyLength adds, for every (curriculum, course), the constraint that
// the week's total scheduled duration equals the course's n_periods.
func (m *Model) AddWeeklyLength() {
	for _, cur := range m.Curricula {
		for _, c := range cur.Courses {
			sum := cpmodel.NewLinearExpr()
			for d := 0; d < m.Calendar.NDays; d++ {
				v, _ := m.Var(cur.ID, d, c.ID)
				sum.Add(v.Duration)
			}
			m.builder.AddEquality(sum, m.builder.NewConstant(int64(c.NPeriods)))
		}
	}
}

// AddLectureGranularity adds, for every (curriculum, day, course), the
// disjunction duration ∈ {0,2} ∨ (duration ∈ {3,6} when the course allows a
// 6-period lecture). Each admissible value gets a half-reified Boolean
// indicator; the indicators are combined with a single BoolOr.
func (m *Model) AddLectureGranularity() {
	for _, cur := range m.Curricula {
		for d := 0; d < m.Calendar.NDays; d++ {
			for _, c := range cur.Courses {
				v, _ := m.Var(cur.ID, d, c.ID)
				prefix := fmt.Sprintf("lec_gran_cur%sd%dc%s", cur.ID, d, c.ID)

				var disjunction []cpmodel.BoolVar
				for _, admissible := range []int64{0, 2} {
					b := m.builder.NewBoolVar().WithName(fmt.Sprintf("%s_%d", prefix, admissible))
					m.builder.AddEquality(v.Duration, m.builder.NewConstant(admissible)).OnlyEnforceIf(b)
					disjunction = append(disjunction, b)
				}
				if c.MaxLectureLen == 6 {
					for _, admissible := range []int64{3, 6} {
						b := m.builder.NewBoolVar().WithName(fmt.Sprintf("%s_%d", prefix, admissible))
						m.builder.AddEquality(v.Duration, m.builder.NewConstant(admissible)).OnlyEnforceIf(b)
						disjunction = append(disjunction, b)
					}
				}
				m.builder.AddBoolOr(disjunction...)
			}
		}
	}
}

// AddSyncAcrossCurricula adds, for every course shared by two or more
// curricula and every day, the disjunction:
//
//	(duration==0 in every sharing curriculum)
//	OR
//	(start and end identical across every consecutive pair of sharing curricula)
//
// matching the original source's add_sync_across_curricula_constraints.
func (m *Model) AddSyncAcrossCurricula() {
	for courseID, curIDs := range m.courseToCurricula {
		if len(curIDs) < 2 {
			continue
		}
		for d := 0; d < m.Calendar.NDays; d++ {
			prefix := fmt.Sprintf("sync_d%dc%s", d, courseID)

			var absentAtoms []cpmodel.BoolVar
			for _, curID := range curIDs {
				v, _ := m.Var(curID, d, courseID)
				b := m.builder.NewBoolVar().WithName(prefix + "_absent_" + curID)
				m.builder.AddEquality(v.Duration, m.builder.NewConstant(0)).OnlyEnforceIf(b)
				absentAtoms = append(absentAtoms, b)
			}
			absentAll := m.builder.NewBoolVar().WithName(prefix + "_absent_all")
			m.builder.AddBoolAnd(absentAtoms...).OnlyEnforceIf(absentAll)

			var identicalAtoms []cpmodel.BoolVar
			for i := 0; i < len(curIDs)-1; i++ {
				prev, _ := m.Var(curIDs[i], d, courseID)
				next, _ := m.Var(curIDs[i+1], d, courseID)

				startEq := m.builder.NewBoolVar().WithName(fmt.Sprintf("%s_start_%d", prefix, i))
				m.builder.AddEquality(prev.Start, next.Start).OnlyEnforceIf(startEq)
				identicalAtoms = append(identicalAtoms, startEq)

				endEq := m.builder.NewBoolVar().WithName(fmt.Sprintf("%s_end_%d", prefix, i))
				m.builder.AddEquality(prev.End, next.End).OnlyEnforceIf(endEq)
				identicalAtoms = append(identicalAtoms, endEq)
			}
			identicalAll := m.builder.NewBoolVar().WithName(prefix + "_identical_all")
			m.builder.AddBoolAnd(identicalAtoms...).OnlyEnforceIf(identicalAll)

			m.builder.AddBoolOr(absentAll, identicalAll)
		}
	}
}

// AddWeekdaySymmetry adds, for every (curriculum, course), an exclusive-or
// over the five weekday-symmetry patterns of spec.md §4.2. It requires
// n_days==5 (Mon..Fri at indices 0..4), matching the source's assertion.
func (m *Model) AddWeekdaySymmetry() error {
	if m.Calendar.NDays != 5 {
		return fmt.Errorf("weekday symmetry requires n_days=5, got %d", m.Calendar.NDays)
	}

	const mon, tue, wed, thu, fri = 0, 1, 2, 3, 4

	for _, cur := range m.Curricula {
		for _, c := range cur.Courses {
			prefix := fmt.Sprintf("wd_symm_cur%sc%s", cur.ID, c.ID)
			vs := make([]ModelVar, 5)
			for d := 0; d < 5; d++ {
				vs[d], _ = m.Var(cur.ID, d, c.ID)
			}

			var literals []cpmodel.BoolVar

			// Single 3-hour (6-period) lecture on exactly one weekday.
			dayNames := []string{"mon", "tue", "wed", "thu", "fri"}
			for d := 0; d < 5; d++ {
				b := m.builder.NewBoolVar().WithName(fmt.Sprintf("%s_%s_lec", prefix, dayNames[d]))
				m.builder.AddEquality(vs[d].Duration, m.builder.NewConstant(6)).OnlyEnforceIf(b)
				literals = append(literals, b)
			}

			// Conj A: Tue/Thu symmetric pair.
			tueThuStart := m.builder.NewBoolVar().WithName(prefix + "_tuethu_start")
			m.builder.AddEquality(vs[tue].Start, vs[thu].Start).OnlyEnforceIf(tueThuStart)
			tueThuDur := m.builder.NewBoolVar().WithName(prefix + "_tuethu_dur")
			m.builder.AddEquality(vs[tue].Duration, vs[thu].Duration).OnlyEnforceIf(tueThuDur)
			tueNonzero := m.builder.NewBoolVar().WithName(prefix + "_tue_nonzero")
			m.builder.AddNotEqual(vs[tue].Duration, m.builder.NewConstant(0)).OnlyEnforceIf(tueNonzero)
			conjA := m.builder.NewBoolVar().WithName(prefix + "_conjA")
			m.builder.AddBoolAnd(tueThuStart, tueThuDur, tueNonzero).OnlyEnforceIf(conjA)
			literals = append(literals, conjA)

			// Conj B: Mon/Wed/Fri triplet.
			monWedStart := m.builder.NewBoolVar().WithName(prefix + "_monwed_start")
			m.builder.AddEquality(vs[mon].Start, vs[wed].Start).OnlyEnforceIf(monWedStart)
			monWedDur := m.builder.NewBoolVar().WithName(prefix + "_monwed_dur")
			m.builder.AddEquality(vs[mon].Duration, vs[wed].Duration).OnlyEnforceIf(monWedDur)
			wedFriStart := m.builder.NewBoolVar().WithName(prefix + "_wedfri_start")
			m.builder.AddEquality(vs[wed].Start, vs[fri].Start).OnlyEnforceIf(wedFriStart)
			wedFriDur := m.builder.NewBoolVar().WithName(prefix + "_wedfri_dur")
			m.builder.AddEquality(vs[wed].Duration, vs[fri].Duration).OnlyEnforceIf(wedFriDur)
			monNonzero := m.builder.NewBoolVar().WithName(prefix + "_mon_nonzero")
			m.builder.AddNotEqual(vs[mon].Duration, m.builder.NewConstant(0)).OnlyEnforceIf(monNonzero)
			conjB := m.builder.NewBoolVar().WithName(prefix + "_conjB")
			m.builder.AddBoolAnd(monWedStart, monWedDur, wedFriStart, wedFriDur, monNonzero).OnlyEnforceIf(conjB)
			literals = append(literals, conjB)

			// Conj C: Mon/Wed only, Fri empty.
			friZero := m.builder.NewBoolVar().WithName(prefix + "_fri_zero")
			m.builder.AddEquality(vs[fri].Duration, m.builder.NewConstant(0)).OnlyEnforceIf(friZero)
			conjC := m.builder.NewBoolVar().WithName(prefix + "_conjC")
			m.builder.AddBoolAnd(monWedStart, monWedDur, friZero, monNonzero).OnlyEnforceIf(conjC)
			literals = append(literals, conjC)

			m.builder.AddBoolXor(literals...)
		}
	}
	return nil
}

// UnavailabilityInterval is one [start,end) closed-open window of a day on
// which a course may not be scheduled.
type UnavailabilityInterval struct {
	Start int
	End   int
}

// AddUnavailability forbids courseID from overlapping any of intervals on
// day, across every curriculum that contains the course. A courseID that no
// curriculum declares is a programming error surfaced as UnknownCourse.
func (m *Model) AddUnavailability(courseID string, day int, intervals []UnavailabilityInterval) error {
	curIDs, ok := m.CurriculaSharing(courseID)
	if !ok {
		return m.unknownCourse(courseID)
	}

	var bag []cpmodel.IntervalVar
	for i, iv := range intervals {
		suffix := fmt.Sprintf("_d%dc%s_unavail%d_%d_%d", day, courseID, i, iv.Start, iv.End)
		fixed := m.builder.NewFixedSizeIntervalVar(m.builder.NewConstant(int64(iv.Start)), int64(iv.End-iv.Start)).WithName("unavail" + suffix)
		bag = append(bag, fixed)
	}
	for _, curID := range curIDs {
		v, _ := m.Var(curID, day, courseID)
		bag = append(bag, v.Interval)
	}
	m.builder.AddNoOverlap(bag...)
	return nil
}

// CourseLockEntry pins one course to a fixed (start, duration) on a day.
type CourseLockEntry struct {
	Day      int
	Start    int
	Duration int
}

// AddCourseLock pins courseID's schedule in every curriculum that contains
// it to exactly the listed (day, start, duration) triples; days not listed
// are forced to duration 0.
func (m *Model) AddCourseLock(courseID string, locks []CourseLockEntry) error {
	curIDs, ok := m.CurriculaSharing(courseID)
	if !ok {
		return m.unknownCourse(courseID)
	}

	locked := make(map[int]CourseLockEntry, len(locks))
	for _, l := range locks {
		locked[l.Day] = l
	}

	for _, curID := range curIDs {
		for d := 0; d < m.Calendar.NDays; d++ {
			v, _ := m.Var(curID, d, courseID)
			if l, ok := locked[d]; ok {
				m.builder.AddEquality(v.Start, m.builder.NewConstant(int64(l.Start)))
				m.builder.AddEquality(v.Duration, m.builder.NewConstant(int64(l.Duration)))
			} else {
				m.builder.AddEquality(v.Duration, m.builder.NewConstant(0))
			}
		}
	}
	return nil
}
