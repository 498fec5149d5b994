// Headless auto-player: drives a full run through the engine with a simple
// scripted policy and structured logging. Useful for eyeballing balance
// across many seeds without sitting through the TUI.
package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/tatianab/baoyan-sim/internal/config"
	"github.com/tatianab/baoyan-sim/internal/content"
	"github.com/tatianab/baoyan-sim/internal/engine"
	"github.com/tatianab/baoyan-sim/internal/models"
)

// maxSteps bounds the whole run so a policy bug can never spin forever.
const maxSteps = 5000

type player struct {
	eng   *engine.Engine
	lib   *content.Library
	state models.GameState
	sugar *zap.SugaredLogger
	steps int
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	lib, err := content.Load()
	if err != nil {
		sugar.Fatalw("Failed to load content", "error", err)
	}

	p := &player{
		eng:   engine.New(lib, engine.NewRand(cfg.Seed)),
		lib:   lib,
		state: models.NewGameState(),
		sugar: sugar,
	}

	p.apply(engine.StartGame{Background: lib.Backgrounds[0].Name})
	p.pickUniversity()
	p.apply(engine.SelectMajor{Major: lib.Majors[0].Name})
	p.confirmAllElectives()

	for p.steps < maxSteps && !p.state.GameOver {
		switch {
		case p.state.ExamReport != nil:
			p.logReport()
			p.apply(engine.DismissReport{})
		case p.state.CurrentEvent != nil:
			p.apply(engine.ChooseEventOption{Option: 0})
		case p.state.Interview != nil:
			p.apply(engine.AnswerInterview{Option: p.bestOption()})
		case p.state.Phase == models.PhaseCourseSelection:
			p.confirmAllElectives()
		default:
			p.playWeek()
		}
	}

	p.logEnding()
}

func (p *player) apply(intent engine.Intent) {
	next, logs := p.eng.Apply(p.state, intent)
	p.state = next
	p.steps++
	for _, line := range logs {
		p.sugar.Debugw("Transition", "log", line)
	}
}

// pickUniversity takes the highest-threshold school the score clears
// outright. A low roll can leave no safe school, forcing a reach gamble;
// a failed attempt re-rolls the score, so retry until enrolled.
func (p *player) pickUniversity() {
	for attempt := 0; attempt < 20 && p.state.University == ""; attempt++ {
		var best *content.University
		for i, u := range p.lib.Universities {
			if p.state.GaokaoScore >= u.MinScore && (best == nil || u.MinScore > best.MinScore) {
				best = &p.lib.Universities[i]
			}
		}
		if best == nil {
			best = &p.lib.Universities[len(p.lib.Universities)-1]
		}
		p.apply(engine.SelectUniversity{University: best.Name})
	}
	if p.state.University == "" {
		p.sugar.Fatalw("Could not enroll anywhere", "gaokao", p.state.GaokaoScore)
	}
	p.sugar.Infow("Enrolled", "university", p.state.University, "gaokao", p.state.GaokaoScore)
}

func (p *player) confirmAllElectives() {
	var ids []string
	for _, c := range p.lib.ElectivesFor(p.state.MajorType, p.state.Semester) {
		ids = append(ids, c.ID)
	}
	p.apply(engine.ConfirmCourses{CourseIDs: ids})
}

// bestOption answers the current interview question with its top-scoring
// choice.
func (p *player) bestOption() int {
	q := p.state.Interview.Questions[p.state.Interview.QuestionIndex]
	best := 0
	for i, opt := range q.Options {
		if opt.Score > q.Options[best].Score {
			best = i
		}
	}
	return best
}

// playWeek runs one weekly cycle: restock, mentor work, applications in
// the admissions windows, then an affordable action plan and the advance.
func (p *player) playWeek() {
	s := &p.state

	if s.Stats.Stamina < 30 && s.Money > 500 {
		p.apply(engine.BuyItem{Item: "红牛"})
	}
	if s.Stats.Mental < 40 && s.Money > 500 {
		p.apply(engine.BuyItem{Item: "心理咨询"})
	}

	p.tendMentors()

	if s.Phase == models.PhaseSummerCamp || s.Phase == models.PhasePreRecommendation {
		p.submitApplications()
	}

	for _, name := range p.weeklyPlan() {
		p.apply(engine.ToggleAction{Action: name})
	}

	week, semester := p.state.Week, p.state.Semester
	p.apply(engine.AdvanceWeek{})
	p.sugar.Infow("Week settled",
		"semester", semester,
		"week", week,
		"gpa", p.state.Stats.GPA,
		"research", p.state.Stats.Research,
		"competition", p.state.Stats.Competition,
		"stamina", p.state.Stats.Stamina,
		"mental", p.state.Stats.Mental,
		"money", p.state.Money,
		"resume", p.state.ResumeScore(),
	)
}

// weeklyPlan picks up to three actions the batch settlement can afford.
// The recovery branch is always payable, so the week never stalls.
func (p *player) weeklyPlan() []string {
	s := &p.state
	if s.Stats.Stamina < 60 || s.Stats.Mental < 40 {
		plan := []string{"休息"}
		if s.Stats.Stamina >= 15 {
			plan = append(plan, "健身锻炼")
		}
		return plan
	}
	plan := []string{"上课", "图书馆自习"}
	if s.Money < 600 {
		plan = append(plan, "做兼职")
	} else {
		plan = append(plan, "慕课学习")
	}
	return plan
}

func (p *player) tendMentors() {
	s := &p.state
	if len(s.Mentors) == 0 && len(s.PotentialMentors) > 0 && s.Stats.Stamina > 40 {
		p.apply(engine.ContactMentor{MentorID: s.PotentialMentors[0].ID})
		return
	}
	for _, m := range s.Mentors {
		if s.Stats.Stamina < 40 {
			return
		}
		switch m.Status {
		case models.MentorContacting, models.MentorFishPond:
			if s.Semester >= 4 {
				p.apply(engine.CourtMentor{MentorID: m.ID})
			} else {
				p.apply(engine.DeepenMentor{MentorID: m.ID})
			}
		}
		return
	}
}

// submitApplications walks the catalog top-down during an admissions
// window, answering any interview a screening pass opens.
func (p *player) submitApplications() {
	window := models.WindowSummerCamp
	if p.state.Phase == models.PhasePreRecommendation {
		window = models.WindowPreRecommendation
	}
	for _, u := range p.lib.Universities {
		if p.state.GameOver {
			return
		}
		if p.state.HasApplied(u.Name, window) {
			continue
		}
		p.apply(engine.SubmitApplication{University: u.Name})
		for p.state.Interview != nil {
			p.apply(engine.AnswerInterview{Option: p.bestOption()})
		}
	}
}

func (p *player) logReport() {
	rep := p.state.ExamReport
	for _, r := range rep.Results {
		p.sugar.Infow("Exam result",
			"semester", rep.SemesterName,
			"midterm", rep.Midterm,
			"course", r.CourseName,
			"score", r.Score,
			"grade", r.Grade,
		)
	}
	if !rep.Midterm {
		p.sugar.Infow("GPA updated", "prev", rep.PrevGPA, "new", rep.NewGPA)
	}
}

func (p *player) logEnding() {
	if p.state.Ending == nil {
		p.sugar.Warnw("Run stopped without an ending", "steps", p.steps, "message", p.state.GameMessage)
		return
	}
	end := p.state.Ending
	p.sugar.Infow("Run finished",
		"steps", p.steps,
		"title", end.Title,
		"gpa", end.Career.FinalGPA,
		"resume", end.Career.TotalResumeScore,
		"money", end.Career.FinalMoney,
		"campApplied", end.SummerCamp.Applied,
		"campOffers", end.SummerCamp.Offers,
		"preRecApplied", end.PreRec.Applied,
		"preRecOffers", end.PreRec.Offers,
	)
	p.sugar.Info(end.Detail)
}
