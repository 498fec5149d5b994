package engine

import (
	"fmt"

	"github.com/tatianab/baoyan-sim/internal/models"
)

// allowanceWeeks are the "start of month" weeks that pay the allowance.
var allowanceWeeks = map[int]bool{1: true, 5: true, 9: true, 13: true, 17: true}

// advanceWeek settles the selected actions and ticks the scheduler:
// action resolution, living expenses, resume drops, exams, semester
// rollover, terminal checks, and the random event roll, in that order.
func (e *Engine) advanceWeek(s models.GameState) (models.GameState, []string) {
	if !weeklyPhase(s.Phase) {
		return s.Clone(), []string{"现在不能推进周数。"}
	}
	if s.CurrentEvent != nil {
		return s.Clone(), []string{"先处理完眼前的突发事件吧。"}
	}

	actions := make([]models.Action, 0, len(s.SelectedActions))
	for _, name := range s.SelectedActions {
		if a, ok := e.lib.ActionByName(s.MajorType, name); ok {
			actions = append(actions, a)
		}
	}

	// All-or-nothing batch check: nothing changes if any resource falls
	// short, and the selection stays for resubmission.
	staminaCost, mentalCost, moneyCost := batchCost(actions)
	if s.Stats.Stamina < staminaCost {
		return s.Clone(), []string{"总体力不足以支持本周的所有计划，请重新安排。"}
	}
	if s.Stats.Mental < mentalCost {
		return s.Clone(), []string{"心态过差，无法支撑本周的所有计划，请重新安排。"}
	}
	if s.Money < moneyCost {
		return s.Clone(), []string{"金钱不足以支持本周的所有计划，请重新安排。"}
	}

	next := s.Clone()
	gains := map[string]float64{}
	var logs []string

	for _, action := range actions {
		logs = append(logs, e.resolveAction(&next, action, gains)...)
	}

	next.Money -= weeklyExpense
	logs = append(logs, fmt.Sprintf("本周生活费支出：%d元。", weeklyExpense))
	if allowanceWeeks[s.Week] {
		next.Money += monthlyAllowance
		logs = append(logs, fmt.Sprintf("月初了，家里寄来的生活费 %d 元已到账。", monthlyAllowance))
	}

	logs = append(logs, e.rollResumeDrops(&next)...)

	next.Week++
	examinedThisWeek := next.Week == 9 || next.Week == weeksPerSemester
	if examinedThisWeek {
		logs = append(logs, e.runExams(&next, next.Week == 9)...)
	}

	if next.Week > weeksPerSemester {
		logs = append(logs, e.rollSemester(&next)...)
	}

	next.GameOver = next.Semester > finalSemester
	switch {
	case next.Stats.Stamina <= 0:
		next.GameOver = true
		next.GameMessage = "你因为体力过度透支，生了一场大病，遗憾错过了保研季。"
	case next.Stats.Mental <= 0:
		next.GameOver = true
		next.GameMessage = "你因为压力过大导致心态崩溃，决定放弃保研，回家修养。"
	}
	if next.GameOver {
		outcome := e.classifyOutcome(&next)
		next.Ending = &outcome
		if next.GameMessage == "" {
			next.GameMessage = outcome.Title + "\n" + outcome.Detail
		}
	}

	// Only an exam produced this tick suppresses the event roll; a report
	// lingering unread from an earlier week does not.
	next.CurrentEvent = nil
	if !next.GameOver && !examinedThisWeek && e.rng.Float64() < eventChance {
		deck := e.lib.EventsFor(next.MajorType)
		if len(deck) > 0 {
			ev := deck[e.rng.Intn(len(deck))]
			next.CurrentEvent = &ev
		}
	}

	next.MasteryEfficiency = next.BaseMasteryEfficiency
	next.ResearchEfficiency = 1.0
	next.CompetitionEfficiency = 1.0
	next.SelectedActions = nil
	next.PurchaseCounts = map[string]int{}
	next.WeekSummary = models.WeekSummary{Gains: gains, Logs: logs}

	return next, append([]string{fmt.Sprintf("第 %d 周结算完成。", s.Week)}, logs...)
}

// resolveAction applies one action's gains, costs, social gains, and
// bonus payout to the state under construction.
func (e *Engine) resolveAction(next *models.GameState, action models.Action, gains map[string]float64) []string {
	var logs []string

	if action.Gain.Mastery != 0 {
		pool := action.Gain.Mastery * next.MasteryEfficiency * 1.5
		pool *= 0.6 + 0.8*(next.Stats.Mental/100)
		e.distributeMastery(next.Courses, pool)
		gains["mastery"] += pool
	}
	if action.Gain.Money != 0 {
		next.Money += action.Gain.Money
		gains["money"] += float64(action.Gain.Money)
	}

	recordGain(gains, "research", action.Gain.Research*next.ResearchEfficiency)
	recordGain(gains, "competition", action.Gain.Competition*next.CompetitionEfficiency)
	recordGain(gains, "english", action.Gain.English)
	recordGain(gains, "mental", action.Gain.Mental)
	recordGain(gains, "stamina", action.Gain.Stamina)
	applyStatDelta(&next.Stats, action.Gain, next.ResearchEfficiency, next.CompetitionEfficiency)

	applyCost(&next.Stats, action.Cost)
	next.Money -= action.Cost.Money

	if action.SocialGain != nil {
		recordGain(gains, "classmates", action.SocialGain.Classmates)
		recordGain(gains, "seniors", action.SocialGain.Seniors)
		next.Social.Classmates = clamp(next.Social.Classmates+action.SocialGain.Classmates, 0, 100)
		next.Social.Seniors = clamp(next.Social.Seniors+action.SocialGain.Seniors, 0, 100)
	}

	if action.Bonus != nil {
		extra := rollRange(e.rng, action.Bonus.Min, action.Bonus.Max)
		next.Money += extra
		gains["money"] += float64(extra)
		logs = append(logs, fmt.Sprintf("%s表现出色，额外赚到了 %d 元。", action.Name, extra))
	}

	logs = append(logs, fmt.Sprintf("%s: %s", action.Name, action.Description))
	return logs
}

func recordGain(gains map[string]float64, key string, v float64) {
	if v > 0 {
		gains[key] += v
	}
}

// distributeMastery spreads a mastery pool across courses below 100,
// weighted by difficulty, with independent jitter in [0.8, 1.2] per
// course. Courses at 100 take nothing and do not count toward the
// difficulty sum.
func (e *Engine) distributeMastery(courses []models.Course, pool float64) {
	totalDifficulty := 0
	for _, c := range courses {
		if c.Mastery < 100 {
			totalDifficulty += difficultyOf(c)
		}
	}
	if totalDifficulty == 0 {
		return
	}
	for i := range courses {
		if courses[i].Mastery >= 100 {
			continue
		}
		weight := float64(difficultyOf(courses[i])) / float64(totalDifficulty)
		jitter := 0.8 + e.rng.Float64()*0.4
		courses[i].Mastery = clamp(courses[i].Mastery+pool*weight*jitter, 0, 100)
	}
}

func difficultyOf(c models.Course) int {
	if c.Difficulty <= 0 {
		return 3
	}
	return c.Difficulty
}

// rollSemester handles the week-18 boundary: new compulsory schedule,
// verbal-offer decay, and the phase for the new semester.
func (e *Engine) rollSemester(next *models.GameState) []string {
	var logs []string

	ended := next.Semester
	next.Week = 1
	next.Semester++
	next.Courses = e.lib.CoursesFor(next.MajorType, next.Semester)

	// Verbal offers are not binding: each decays to the fish pond with
	// independent 20% probability at the boundary.
	for i := range next.Mentors {
		if next.Mentors[i].Status == models.MentorVerbalOffer && e.rng.Float64() < 0.2 {
			next.Mentors[i].Status = models.MentorFishPond
			logs = append(logs, fmt.Sprintf("糟糕！%s的%s似乎反悔了之前的口头承诺，把你放入了候补名单（养鱼）。",
				next.Mentors[i].University, next.Mentors[i].Name))
		}
	}

	switch next.Semester {
	case 6:
		next.Phase = models.PhaseSummerCamp
		logs = append(logs, "--- 进入大三下学期，保研夏令营申请开启！ ---")
	case 7:
		next.Phase = models.PhasePreRecommendation
		logs = append(logs, "--- 预推免阶段开启，最后的冲刺！ ---")
	default:
		next.Phase = models.PhaseCourseSelection
		logs = append(logs, fmt.Sprintf("--- %s 结束，进入新学期 ---", e.lib.SemesterName(ended)))
	}
	return logs
}
