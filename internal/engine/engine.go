// Package engine is the simulation core: a pure reducer over the game
// state. Apply never mutates its input; it clones the state, applies one
// intent, and returns the successor plus the log lines describing what
// happened. Invalid intents degrade to a no-op with an explanatory line.
package engine

import (
	"fmt"

	"github.com/tatianab/baoyan-sim/internal/content"
	"github.com/tatianab/baoyan-sim/internal/models"
)

const (
	maxWeeklyActions = 3
	weeklyExpense    = 300
	monthlyAllowance = 1500

	refreshMentorsCost = 5
	contactMentorCost  = 20
	courtshipCost      = 15
	deepenCost         = 10

	eventChance = 0.15

	weeksPerSemester = 18
	finalSemester    = 7
)

type Engine struct {
	lib *content.Library
	rng Rand
}

func New(lib *content.Library, rng Rand) *Engine {
	return &Engine{lib: lib, rng: rng}
}

// Library exposes the content tables the engine was built with, for
// front ends that render catalogs.
func (e *Engine) Library() *content.Library {
	return e.lib
}

// Apply runs one state transition. The returned state is a fresh copy;
// the input is never touched.
func (e *Engine) Apply(s models.GameState, intent Intent) (models.GameState, []string) {
	if s.GameOver {
		if _, ok := intent.(DismissReport); !ok {
			return s.Clone(), []string{"游戏已经结束了。"}
		}
	}

	switch in := intent.(type) {
	case StartGame:
		return e.startGame(s, in)
	case SelectUniversity:
		return e.selectUniversity(s, in)
	case SelectMajor:
		return e.selectMajor(s, in)
	case ConfirmCourses:
		return e.confirmCourses(s, in)
	case ToggleAction:
		return e.toggleAction(s, in)
	case AdvanceWeek:
		return e.advanceWeek(s)
	case BuyItem:
		return e.buyItem(s, in)
	case RefreshMentors:
		return e.refreshMentors(s)
	case ContactMentor:
		return e.contactMentor(s, in)
	case CourtMentor:
		return e.courtMentor(s, in)
	case DeepenMentor:
		return e.deepenMentor(s, in)
	case SubmitApplication:
		return e.submitApplication(s, in)
	case AnswerInterview:
		return e.answerInterview(s, in)
	case ChooseEventOption:
		return e.chooseEventOption(s, in)
	case DismissReport:
		next := s.Clone()
		next.ExamReport = nil
		return next, nil
	case SkipToSummerCamp:
		return e.skipToSummerCamp(s)
	case SkipToPreRecommendation:
		return e.skipToPreRecommendation(s)
	case SkipToGameOver:
		return e.skipToGameOver(s)
	default:
		return s.Clone(), []string{"未知操作。"}
	}
}

func (e *Engine) startGame(s models.GameState, in StartGame) (models.GameState, []string) {
	if s.Phase != models.PhaseStart {
		return s.Clone(), []string{"游戏已经开始了。"}
	}
	bg, ok := e.lib.BackgroundByName(in.Background)
	if !ok {
		return s.Clone(), []string{fmt.Sprintf("没有 [%s] 这个出身。", in.Background)}
	}

	next := s.Clone()
	next.Background = bg.Name
	next.Stats = bg.Stats
	if bg.Money != 0 {
		next.Money = bg.Money
	}
	eff := bg.MasteryEfficiency
	if eff == 0 {
		eff = 1.0
	}
	next.MasteryEfficiency = eff
	next.BaseMasteryEfficiency = eff

	score := rollRange(e.rng, 500, 730)
	next.GaokaoScore = score
	next.Phase = models.PhaseGaokao
	return next, []string{
		fmt.Sprintf("你选择了[%s]出身。", bg.Name),
		fmt.Sprintf("高考成绩公布：%d分！", score),
	}
}

func (e *Engine) selectUniversity(s models.GameState, in SelectUniversity) (models.GameState, []string) {
	switch s.Phase {
	case models.PhaseGaokao, models.PhaseUniversityFailed, models.PhaseUniversitySelection:
	default:
		return s.Clone(), []string{"现在不是选择学校的时候。"}
	}
	if s.University != "" {
		return s.Clone(), []string{"你已经确定了本科院校。"}
	}
	uni, ok := e.lib.UniversityByName(in.University)
	if !ok {
		return s.Clone(), []string{fmt.Sprintf("没有找到 [%s]。", in.University)}
	}

	next := s.Clone()
	if s.GaokaoScore < uni.MinScore {
		gap := uni.MinScore - s.GaokaoScore
		chance := 1.0 - float64(gap)*0.1
		if chance < 0.1 {
			chance = 0.1
		}
		if e.rng.Float64() > chance {
			next.Phase = models.PhaseUniversityFailed
			next.GaokaoScore = rollRange(e.rng, 500, 730)
			next.FailedUniversity = uni.Name
			next.Stats.Mental = clamp(next.Stats.Mental-20, 0, 100)
			next.RejectionCount++
			return next, []string{fmt.Sprintf("由于高考分数不足，你尝试冲刺[%s]失败了。这对你的心态造成了打击。", uni.Name)}
		}
	}

	next.Phase = models.PhaseUniversitySelection
	next.University = uni.Name
	next.FailedUniversity = ""
	return next, []string{fmt.Sprintf("你选择了[%s]，即将选择专业。", uni.Name)}
}

func (e *Engine) selectMajor(s models.GameState, in SelectMajor) (models.GameState, []string) {
	if s.Phase != models.PhaseUniversitySelection || s.University == "" {
		return s.Clone(), []string{"现在不是选择专业的时候。"}
	}
	major, ok := e.lib.MajorByName(in.Major)
	if !ok {
		return s.Clone(), []string{fmt.Sprintf("没有 [%s] 这个专业。", in.Major)}
	}

	next := s.Clone()
	next.Phase = models.PhaseCourseSelection
	next.Semester = 1
	next.Major = major.Name
	next.MajorType = major.Type
	next.Courses = e.lib.CoursesFor(major.Type, 1)
	next.PotentialMentors = e.newMentorBatch(3, major.Type)
	return next, []string{fmt.Sprintf("你选择了[%s]专业。接下来请选择本学期的选修课与通识课。", major.Name)}
}

func (e *Engine) confirmCourses(s models.GameState, in ConfirmCourses) (models.GameState, []string) {
	if s.Phase != models.PhaseCourseSelection {
		return s.Clone(), []string{"现在不是选课的时候。"}
	}

	next := s.Clone()
	for _, id := range in.CourseIDs {
		c, ok := e.lib.CourseByID(id)
		if !ok || c.Semester != s.Semester || !c.OpenTo(s.MajorType) || c.Type == models.CourseCompulsory {
			continue
		}
		dup := false
		for _, have := range next.Courses {
			if have.ID == c.ID {
				dup = true
				break
			}
		}
		if !dup {
			next.Courses = append(next.Courses, c)
		}
	}
	next.Phase = models.PhaseMainGame
	return next, []string{fmt.Sprintf("选课完成，%s开始了！", e.lib.SemesterName(next.Semester))}
}

func (e *Engine) toggleAction(s models.GameState, in ToggleAction) (models.GameState, []string) {
	if !weeklyPhase(s.Phase) {
		return s.Clone(), []string{"现在不能安排每周计划。"}
	}
	if _, ok := e.lib.ActionByName(s.MajorType, in.Action); !ok {
		return s.Clone(), []string{fmt.Sprintf("没有 [%s] 这个行动。", in.Action)}
	}

	next := s.Clone()
	for i, name := range next.SelectedActions {
		if name == in.Action {
			next.SelectedActions = append(next.SelectedActions[:i], next.SelectedActions[i+1:]...)
			return next, nil
		}
	}
	if len(next.SelectedActions) >= maxWeeklyActions {
		return s.Clone(), []string{"每周最多只能安排 3 项重点计划。"}
	}
	next.SelectedActions = append(next.SelectedActions, in.Action)
	return next, nil
}

// weeklyPhase reports whether the weekly loop runs in this phase. The two
// admissions windows keep the normal week rhythm alongside applications.
func weeklyPhase(p models.GamePhase) bool {
	switch p {
	case models.PhaseMainGame, models.PhaseSummerCamp, models.PhasePreRecommendation:
		return true
	}
	return false
}
