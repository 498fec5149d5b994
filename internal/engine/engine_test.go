package engine

import (
	"testing"

	"github.com/tatianab/baoyan-sim/internal/content"
	"github.com/tatianab/baoyan-sim/internal/models"
)

func newTestEngine(t *testing.T, seed int64) *Engine {
	t.Helper()
	lib, err := content.Load()
	if err != nil {
		t.Fatalf("loading content: %v", err)
	}
	return New(lib, NewRand(seed))
}

// mainGameState builds a mid-run state in the weekly loop.
func mainGameState() models.GameState {
	s := models.NewGameState()
	s.Phase = models.PhaseMainGame
	s.Semester = 2
	s.Week = 2
	s.University = "深圳大学"
	s.Major = "计算机科学与技术"
	s.MajorType = models.MajorCS
	return s
}

func TestNoActionWeekWithSaturatedResearch(t *testing.T) {
	e := newTestEngine(t, 7)
	s := mainGameState()
	s.Stats = models.PlayerStats{Research: 100, English: 40, Mental: 80, Stamina: 100}
	s.Money = 2000

	next, _ := e.Apply(s, AdvanceWeek{})

	if next.Stats.Research != 0 {
		t.Errorf("research = %v, want 0 after drop", next.Stats.Research)
	}
	if len(next.Resume) != 1 {
		t.Fatalf("resume length = %d, want 1", len(next.Resume))
	}
	if next.Resume[0].Type != "research" {
		t.Errorf("resume item type = %s, want research", next.Resume[0].Type)
	}
	switch next.Resume[0].Quality {
	case models.QualityCommon, models.QualityRare, models.QualityEpic, models.QualityLegendary:
	default:
		t.Errorf("unexpected quality %s", next.Resume[0].Quality)
	}
	if next.Money != 2000-300 {
		t.Errorf("money = %d, want %d", next.Money, 2000-300)
	}
	// Input state must be untouched.
	if s.Stats.Research != 100 || len(s.Resume) != 0 {
		t.Error("Apply mutated its input state")
	}
}

func TestAllowanceOnMonthStart(t *testing.T) {
	e := newTestEngine(t, 1)
	s := mainGameState()
	s.Week = 5
	s.Money = 1000

	next, _ := e.Apply(s, AdvanceWeek{})
	if next.Money != 1000-300+1500 {
		t.Errorf("money = %d, want %d", next.Money, 1000-300+1500)
	}
}

func TestBatchAtomicity(t *testing.T) {
	e := newTestEngine(t, 1)
	s := mainGameState()
	s.Stats.Stamina = 25
	s.Courses = []models.Course{{ID: "x", Name: "x", Difficulty: 3, Credit: 3, Mastery: 10}}
	// 图书馆自习 15 + 刷绩点神器 40 > 25 stamina.
	s.SelectedActions = []string{"图书馆自习", "刷绩点神器"}

	next, logs := e.Apply(s, AdvanceWeek{})

	if next.Week != s.Week {
		t.Error("week advanced despite unaffordable batch")
	}
	if next.Stats != s.Stats || next.Money != s.Money {
		t.Error("state changed despite unaffordable batch")
	}
	if next.Courses[0].Mastery != 10 {
		t.Error("course mastery changed despite unaffordable batch")
	}
	if len(next.SelectedActions) != 2 {
		t.Error("selection should survive for resubmission")
	}
	if len(logs) == 0 {
		t.Error("rejection should be logged")
	}
}

func TestActionSelectionCap(t *testing.T) {
	e := newTestEngine(t, 1)
	s := mainGameState()
	for _, name := range []string{"上课", "英语学习", "休息"} {
		s, _ = e.Apply(s, ToggleAction{Action: name})
	}
	if len(s.SelectedActions) != 3 {
		t.Fatalf("selected = %d, want 3", len(s.SelectedActions))
	}

	next, logs := e.Apply(s, ToggleAction{Action: "社交"})
	if len(next.SelectedActions) != 3 {
		t.Error("fourth selection should be rejected")
	}
	if len(logs) == 0 {
		t.Error("cap rejection should be logged")
	}

	// Toggling an already-selected action deselects it.
	next, _ = e.Apply(next, ToggleAction{Action: "休息"})
	if len(next.SelectedActions) != 2 {
		t.Error("toggle should deselect")
	}
}

func TestMasteryDistribution(t *testing.T) {
	e := newTestEngine(t, 42)
	courses := []models.Course{
		{ID: "a", Difficulty: 5, Mastery: 0},
		{ID: "b", Difficulty: 2, Mastery: 0},
		{ID: "c", Difficulty: 4, Mastery: 100},
	}
	const pool = 30.0
	e.distributeMastery(courses, pool)

	if courses[2].Mastery != 100 {
		t.Error("full course should not change")
	}
	total := courses[0].Mastery + courses[1].Mastery
	if total < pool*0.8 || total > pool*1.2 {
		t.Errorf("distributed total %v outside jitter envelope [%v, %v]", total, pool*0.8, pool*1.2)
	}
	// Weight 5/7 at worst jitter still beats weight 2/7 at best jitter.
	if courses[0].Mastery <= courses[1].Mastery {
		t.Errorf("harder course should receive more: %v vs %v", courses[0].Mastery, courses[1].Mastery)
	}
	for _, c := range courses {
		if c.Mastery > 100 {
			t.Errorf("course %s exceeded 100: %v", c.ID, c.Mastery)
		}
	}
}

func TestFirstSemesterGPAEqualsSemesterGPA(t *testing.T) {
	e := newTestEngine(t, 3)
	s := mainGameState()
	s.Semester = 1
	s.Week = 17
	s.Stats.GPA = 0
	s.Courses = []models.Course{
		{ID: "a", Name: "课程甲", Difficulty: 3, Credit: 4, Mastery: 90},
		{ID: "b", Name: "课程乙", Difficulty: 4, Credit: 2, Mastery: 70},
	}

	next, _ := e.Apply(s, AdvanceWeek{})
	if next.ExamReport == nil {
		t.Fatal("final exam should produce a report")
	}
	rep := next.ExamReport
	totalCredits := 0
	weighted := 0.0
	for _, r := range rep.Results {
		totalCredits += r.Credit
		weighted += r.GradePoint * float64(r.Credit)
	}
	want := weighted / float64(totalCredits)
	if rep.NewGPA != want {
		t.Errorf("cumulative GPA %v != semester GPA %v on first semester", rep.NewGPA, want)
	}
	if rep.PrevGPA != 0 {
		t.Errorf("prev GPA = %v, want 0", rep.PrevGPA)
	}
}

func TestMidtermDoesNotMoveGPA(t *testing.T) {
	e := newTestEngine(t, 3)
	s := mainGameState()
	s.Week = 8
	s.Stats.GPA = 3.5
	s.Courses = []models.Course{{ID: "a", Name: "课程甲", Difficulty: 3, Credit: 4, Mastery: 50}}

	next, _ := e.Apply(s, AdvanceWeek{})
	if next.ExamReport == nil || !next.ExamReport.Midterm {
		t.Fatal("week 9 should produce a midterm report")
	}
	if next.Stats.GPA != 3.5 {
		t.Errorf("midterm moved GPA: %v", next.Stats.GPA)
	}
	if next.ExamReport.PrevGPA != next.ExamReport.NewGPA {
		t.Error("midterm report should carry equal prev/new GPA")
	}
}

func TestExamScoreEnvelope(t *testing.T) {
	e := newTestEngine(t, 11)

	// Full mastery at full mental overshoots the cap on every jitter draw.
	for i := 0; i < 100; i++ {
		s := mainGameState()
		s.Week = 17
		s.Stats.Mental = 100
		s.Courses = []models.Course{{ID: "a", Name: "课程甲", Difficulty: 3, Credit: 3, Mastery: 100}}

		next, _ := e.Apply(s, AdvanceWeek{})
		r := next.ExamReport.Results[0]
		if r.Score != 100 || r.Grade != "A+" {
			t.Fatalf("score/grade = %d/%s, want 100/A+", r.Score, r.Grade)
		}
	}

	// Partial mastery lands inside the jitter envelope:
	// 40 + 60×0.6×1.2×[0.9,1.1] = [78.88, 87.52].
	for i := 0; i < 200; i++ {
		s := mainGameState()
		s.Week = 17
		s.Stats.Mental = 100
		s.Courses = []models.Course{{ID: "a", Name: "课程甲", Difficulty: 3, Credit: 3, Mastery: 60}}

		next, _ := e.Apply(s, AdvanceWeek{})
		r := next.ExamReport.Results[0]
		if r.Score < 78 || r.Score > 88 {
			t.Fatalf("score %d outside expected envelope", r.Score)
		}
		switch r.Grade {
		case "B", "B+", "A-":
		default:
			t.Fatalf("grade %s outside expected set", r.Grade)
		}
	}
}

func TestCourtshipDistribution(t *testing.T) {
	e := newTestEngine(t, 99)
	base := mainGameState()
	base.Stats.GPA = 4.0
	base.Resume = []models.ResumeItem{{ID: "r", Type: "research", Name: "x", Score: 100, Quality: models.QualityEpic}}
	base.Mentors = []models.Mentor{{ID: "m1", Name: "王伟", Reputation: 50, Status: models.MentorContacting}}
	base.Stats.Stamina = 100

	counts := map[models.MentorStatus]int{}
	const trials = 10000
	for i := 0; i < trials; i++ {
		next, _ := e.Apply(base, CourtMentor{MentorID: "m1"})
		counts[next.Mentors[0].Status]++
	}

	// successChance = 95: hard 14.25%, verbal 80.75%, fish 5%, rejected 0%.
	hard := float64(counts[models.MentorHardOffer]) / trials
	verbal := float64(counts[models.MentorVerbalOffer]) / trials
	fish := float64(counts[models.MentorFishPond]) / trials
	if hard < 0.11 || hard > 0.18 {
		t.Errorf("hard_offer rate %v, want ≈0.1425", hard)
	}
	if verbal < 0.77 || verbal > 0.84 {
		t.Errorf("verbal_offer rate %v, want ≈0.8075", verbal)
	}
	if fish < 0.03 || fish > 0.08 {
		t.Errorf("fish_pond rate %v, want ≈0.05", fish)
	}
	if counts[models.MentorRejected] != 0 {
		t.Errorf("rejected occurred %d times, want 0", counts[models.MentorRejected])
	}
}

func TestAbsorbingMentorStates(t *testing.T) {
	e := newTestEngine(t, 1)
	s := mainGameState()
	s.Mentors = []models.Mentor{
		{ID: "m1", Name: "李娜", Reputation: 60, Status: models.MentorRejected},
		{ID: "m2", Name: "张磊", Reputation: 60, Status: models.MentorHardOffer},
	}

	for _, id := range []string{"m1", "m2"} {
		next, logs := e.Apply(s, CourtMentor{MentorID: id})
		if next.MentorByID(id).Status != s.MentorByID(id).Status {
			t.Errorf("mentor %s status changed from absorbing state", id)
		}
		if next.Stats.Stamina != s.Stats.Stamina {
			t.Errorf("courtship on absorbing mentor %s should cost nothing", id)
		}
		if len(logs) == 0 {
			t.Error("refusal should be logged")
		}
	}

	// hard_offer still permits the deepen interaction.
	next, _ := e.Apply(s, DeepenMentor{MentorID: "m2"})
	if next.MentorByID("m2").Friendship <= 0 {
		t.Error("deepen should raise friendship on a hard_offer mentor")
	}
	if next.Stats.Research <= s.Stats.Research {
		t.Error("deepen should grant a research bump")
	}
}

func TestVerbalOfferDecayAtRollover(t *testing.T) {
	e := newTestEngine(t, 21)
	base := mainGameState()
	base.Week = 18
	base.Courses = nil
	base.Mentors = []models.Mentor{
		{ID: "m1", Name: "王伟", Reputation: 60, Status: models.MentorVerbalOffer},
		{ID: "m2", Name: "李娜", Reputation: 60, Status: models.MentorHardOffer},
		{ID: "m3", Name: "张磊", Reputation: 60, Status: models.MentorFishPond},
		{ID: "m4", Name: "刘洋", Reputation: 60, Status: models.MentorContacting},
	}

	decays := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		next, _ := e.Apply(base, AdvanceWeek{})
		if next.Semester != base.Semester+1 || next.Week != 1 {
			t.Fatalf("semester/week = %d/%d, want rollover", next.Semester, next.Week)
		}
		switch next.Mentors[0].Status {
		case models.MentorFishPond:
			decays++
		case models.MentorVerbalOffer:
		default:
			t.Fatalf("verbal offer decayed to %s", next.Mentors[0].Status)
		}
		if next.Mentors[1].Status != models.MentorHardOffer ||
			next.Mentors[2].Status != models.MentorFishPond ||
			next.Mentors[3].Status != models.MentorContacting {
			t.Fatal("non-verbal statuses must not change at rollover")
		}
	}

	rate := float64(decays) / trials
	if rate < 0.17 || rate > 0.23 {
		t.Errorf("verbal-offer decay rate %v, want ≈0.2", rate)
	}
}

func TestEstimatedSuccessChance(t *testing.T) {
	e := newTestEngine(t, 20)
	s := mainGameState()
	s.Stats.GPA = 3.6
	s.Stats.English = 70
	s.Social.Seniors = 50
	s.Resume = []models.ResumeItem{{ID: "r", Type: "research", Name: "x", Score: 80, Quality: models.QualityRare}}

	// 深圳大学 is T4 (rank 2), two below the reference tier 4, so school
	// background reads 70. Base 24+12+14+7+5 = 62, plus 保研率8/4 = 64.
	if got := e.EstimatedSuccessChance(&s); got != 64 {
		t.Errorf("estimate = %d, want 64", got)
	}

	s.Mentors = []models.Mentor{{ID: "m", Name: "王伟", Status: models.MentorVerbalOffer}}
	if got := e.EstimatedSuccessChance(&s); got != 76 {
		t.Errorf("estimate with verbal offer = %d, want 76", got)
	}
}

func TestScreeningCompositeChance(t *testing.T) {
	e := newTestEngine(t, 22)
	base := mainGameState()
	base.Phase = models.PhaseSummerCamp
	base.Stats.GPA = 3.6
	base.Stats.English = 70
	base.Social.Seniors = 50
	base.Resume = []models.ResumeItem{{ID: "r", Type: "research", Name: "x", Score: 80, Quality: models.QualityRare}}

	const trials = 10000
	passRate := func(s models.GameState, university string) float64 {
		passes := 0
		for i := 0; i < trials; i++ {
			next, _ := e.Apply(s, SubmitApplication{University: university})
			if next.Interview != nil {
				passes++
			}
		}
		return float64(passes) / trials
	}

	// 浙江大学 (T1, 保研率30): weights give 0.2+0.1+0.11+0.07+0.05 plus the
	// 0.064 estimate term, and the rate factor is exactly 1.0 — 0.594.
	if rate := passRate(base, "浙江大学"); rate < 0.56 || rate > 0.63 {
		t.Errorf("screening pass rate %v, want ≈0.594", rate)
	}

	// A hard offer at the target adds 0.4, pushing the chance past 1.
	boosted := base.Clone()
	boosted.Mentors = []models.Mentor{{ID: "m", Name: "王伟", University: "浙江大学", Reputation: 80, Status: models.MentorHardOffer}}
	if rate := passRate(boosted, "浙江大学"); rate < 0.999 {
		t.Errorf("hard offer at the target should guarantee screening, got %v", rate)
	}

	// A rejection at the target subtracts 0.15 on top of the estimate dip:
	// ≈0.436.
	burned := base.Clone()
	burned.Mentors = []models.Mentor{{ID: "m", Name: "王伟", University: "浙江大学", Reputation: 80, Status: models.MentorRejected}}
	if rate := passRate(burned, "浙江大学"); rate < 0.40 || rate > 0.47 {
		t.Errorf("rejected-mentor pass rate %v, want ≈0.436", rate)
	}

	// A low recommendation rate shrinks the whole composite: 深圳大学
	// (T4, 保研率8) scales this profile's 0.684 by 0.78 to ≈0.534.
	if rate := passRate(base, "深圳大学"); rate < 0.50 || rate > 0.57 {
		t.Errorf("low-rate school pass rate %v, want ≈0.534", rate)
	}
}

func TestSafeSchoolNeverFails(t *testing.T) {
	e := newTestEngine(t, 5)
	for i := 0; i < 200; i++ {
		s := models.NewGameState()
		s.Phase = models.PhaseGaokao
		s.GaokaoScore = 750
		next, _ := e.Apply(s, SelectUniversity{University: "深圳大学"})
		if next.Phase != models.PhaseUniversitySelection || next.University == "" {
			t.Fatal("selecting a safe school should always succeed")
		}
	}
}

func TestReachSchoolFailureRate(t *testing.T) {
	e := newTestEngine(t, 12345)
	lib := e.Library()

	// Find a concrete gap-5 pairing from the table.
	var target string
	var minScore int
	for _, u := range lib.Universities {
		if u.MinScore > 505 {
			target = u.Name
			minScore = u.MinScore
			break
		}
	}
	if target == "" {
		t.Fatal("no university above 505 in the table")
	}

	failures := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		s := models.NewGameState()
		s.Phase = models.PhaseGaokao
		s.GaokaoScore = minScore - 5
		next, _ := e.Apply(s, SelectUniversity{University: target})
		if next.Phase == models.PhaseUniversityFailed {
			failures++
		}
	}
	rate := float64(failures) / trials
	if rate < 0.47 || rate > 0.53 {
		t.Errorf("failure rate %v, want ≈0.5 for a gap of 5", rate)
	}
}

func TestReachFailurePenalty(t *testing.T) {
	e := newTestEngine(t, 2)
	s := models.NewGameState()
	s.Phase = models.PhaseGaokao
	s.GaokaoScore = 500

	// Keep trying a top school until a failure lands.
	for i := 0; i < 100; i++ {
		next, _ := e.Apply(s, SelectUniversity{University: "清华大学"})
		if next.Phase == models.PhaseUniversityFailed {
			if next.Stats.Mental != s.Stats.Mental-20 {
				t.Errorf("mental = %v, want %v", next.Stats.Mental, s.Stats.Mental-20)
			}
			if next.RejectionCount != 1 {
				t.Errorf("rejection count = %d, want 1", next.RejectionCount)
			}
			if next.GaokaoScore < 500 || next.GaokaoScore > 730 {
				t.Errorf("re-rolled score %d outside 500-730", next.GaokaoScore)
			}
			return
		}
	}
	t.Fatal("no reach failure in 100 attempts at a 180+ point gap")
}

func TestDuplicateApplicationIsNoOp(t *testing.T) {
	e := newTestEngine(t, 4)
	s := mainGameState()
	s.Phase = models.PhaseSummerCamp
	s.Stats.GPA = 3.9
	s.Applications = []models.Application{{
		University: "清华大学", Major: s.Major,
		Status: models.ApplicationRejected, Phase: models.WindowSummerCamp,
	}}

	next, logs := e.Apply(s, SubmitApplication{University: "清华大学"})
	if len(next.Applications) != 1 {
		t.Errorf("applications = %d, want 1 (duplicate must not append)", len(next.Applications))
	}
	if next.Interview != nil {
		t.Error("duplicate application must not start an interview")
	}
	if len(logs) == 0 {
		t.Error("duplicate should be logged")
	}
}

func TestInterviewAcceptance(t *testing.T) {
	e := newTestEngine(t, 6)
	lib := e.Library()
	s := mainGameState()
	s.Phase = models.PhaseSummerCamp
	s.Interview = &models.Interview{
		University:      "清华大学",
		Major:           s.Major,
		Phase:           models.WindowSummerCamp,
		Questions:       lib.Questions[:3],
		BackgroundScore: 55,
	}
	s.Applications = []models.Application{{
		University: "清华大学", Major: s.Major,
		Status: models.ApplicationInterviewing, Phase: models.WindowSummerCamp,
	}}

	// Always pick the best option: interview total 65 capped by content,
	// final = (total/60)*40 + 55 ≥ 84 (T0 threshold) for any total ≥ 43.5.
	for i := 0; i < 3; i++ {
		if s.Interview == nil {
			break
		}
		s, _ = e.Apply(s, AnswerInterview{Option: 0})
	}

	if s.Interview != nil {
		t.Fatal("interview should be resolved after three answers")
	}
	if s.Applications[0].Status != models.ApplicationAccepted {
		t.Errorf("application status = %s, want accepted", s.Applications[0].Status)
	}
	if s.GameOver {
		t.Error("summer camp acceptance must not end the game")
	}
}

func TestPreRecommendationAcceptanceEndsGame(t *testing.T) {
	e := newTestEngine(t, 6)
	lib := e.Library()
	s := mainGameState()
	s.Phase = models.PhasePreRecommendation
	s.Interview = &models.Interview{
		University:      "深圳大学",
		Major:           s.Major,
		// Best answer scores 20: final = (20/60)×40 + 58 = 71.3, above
		// the tier-T4 threshold of 68.
		Phase:           models.WindowPreRecommendation,
		Questions:       lib.Questions[:1],
		BackgroundScore: 58,
	}
	s.Applications = []models.Application{{
		University: "深圳大学", Major: s.Major,
		Status: models.ApplicationInterviewing, Phase: models.WindowPreRecommendation,
	}}

	next, _ := e.Apply(s, AnswerInterview{Option: 0})
	if !next.GameOver {
		t.Fatal("pre-recommendation acceptance should end the game")
	}
	if next.Ending == nil {
		t.Fatal("ending report missing")
	}
	if next.Ending.Title != "【最终结局：保研成功】" {
		t.Errorf("ending title = %s", next.Ending.Title)
	}
	if next.Ending.PreRec.Offers != 1 {
		t.Errorf("pre-rec offers = %d, want 1", next.Ending.PreRec.Offers)
	}
}

func TestOutcomeFallbackPriority(t *testing.T) {
	e := newTestEngine(t, 8)

	cases := []struct {
		name  string
		setup func(*models.GameState)
		title string
	}{
		{"study abroad", func(s *models.GameState) {
			s.Stats.English = 90
			s.Money = 20000
		}, "【最终结局：出国深造】"},
		{"teach for baoyan", func(s *models.GameState) {
			s.Social.Seniors = 90
			s.Stats.GPA = 3.5
		}, "【最终结局：支教保研】"},
		{"grad exam retry", func(s *models.GameState) {
			s.Stats.GPA = 4.2
			s.Stats.Mental = 80
		}, "【最终结局：考研战神】"},
		{"corporate", func(s *models.GameState) {
			s.Stats.Competition = 90
			s.Social.Classmates = 80
		}, "【最终结局：职场精英】"},
		{"burnout", func(s *models.GameState) {
			s.Stats.Mental = 30
		}, "【最终结局：遗憾二战】"},
		{"default", func(s *models.GameState) {}, "【最终结局：职场新人】"},
	}

	for _, tc := range cases {
		s := mainGameState()
		s.Stats.Mental = 50
		tc.setup(&s)
		outcome := e.classifyOutcome(&s)
		if outcome.Title != tc.title {
			t.Errorf("%s: title = %s, want %s", tc.name, outcome.Title, tc.title)
		}
	}
}

func TestShopWeeklyLimit(t *testing.T) {
	e := newTestEngine(t, 9)
	s := mainGameState()
	s.Money = 10000
	s.Stats.Mental = 10

	var logs []string
	s, _ = e.Apply(s, BuyItem{Item: "心理咨询"})
	s, _ = e.Apply(s, BuyItem{Item: "心理咨询"})
	s, logs = e.Apply(s, BuyItem{Item: "心理咨询"})

	if s.PurchaseCounts["心理咨询"] != 2 {
		t.Errorf("purchase count = %d, want 2", s.PurchaseCounts["心理咨询"])
	}
	if s.Money != 10000-400 {
		t.Errorf("money = %d, want %d", s.Money, 10000-400)
	}
	if len(logs) == 0 {
		t.Error("limit rejection should be logged")
	}
	if s.Stats.Mental != 90 {
		t.Errorf("mental = %v, want 90 after two sessions", s.Stats.Mental)
	}
}

func TestEfficiencyBoostLastsOneWeek(t *testing.T) {
	e := newTestEngine(t, 10)
	s := mainGameState()
	s.Money = 10000
	s.BaseMasteryEfficiency = 1.4
	s.MasteryEfficiency = 1.4

	s, _ = e.Apply(s, BuyItem{Item: "AI助手会员"})
	if s.MasteryEfficiency != 1.9 || s.ResearchEfficiency != 1.5 {
		t.Fatalf("boost not applied: mastery %v research %v", s.MasteryEfficiency, s.ResearchEfficiency)
	}

	s, _ = e.Apply(s, AdvanceWeek{})
	if s.MasteryEfficiency != 1.4 {
		t.Errorf("mastery efficiency = %v, want background base 1.4 after reset", s.MasteryEfficiency)
	}
	if s.ResearchEfficiency != 1.0 || s.CompetitionEfficiency != 1.0 {
		t.Error("research/competition efficiencies should reset to 1.0")
	}
}

func TestEventOptionApplied(t *testing.T) {
	e := newTestEngine(t, 13)
	s := mainGameState()
	s.Money = 1000
	s.CurrentEvent = &models.GameEvent{
		Title: "测试事件",
		Options: []models.EventOption{{
			Text:   "选它",
			Effect: models.EventEffect{Mental: -5, Money: -500, Log: "测试结果。"},
		}},
	}

	next, logs := e.Apply(s, ChooseEventOption{Option: 0})
	if next.CurrentEvent != nil {
		t.Error("event should be cleared")
	}
	if next.Stats.Mental != s.Stats.Mental-5 {
		t.Errorf("mental = %v", next.Stats.Mental)
	}
	if next.Money != 500 {
		t.Errorf("money = %d, want 500", next.Money)
	}
	if len(logs) != 1 || logs[0] != "事件结果: 测试结果。" {
		t.Errorf("logs = %v", logs)
	}
}

func TestStaleReportDoesNotBlockEvents(t *testing.T) {
	e := newTestEngine(t, 23)

	// An unread report from an earlier week must not suppress the roll.
	fired := false
	for i := 0; i < 200 && !fired; i++ {
		s := mainGameState()
		s.ExamReport = &models.ExamReport{SemesterName: "大一上", Midterm: true}
		next, _ := e.Apply(s, AdvanceWeek{})
		if next.CurrentEvent != nil {
			fired = true
		}
	}
	if !fired {
		t.Error("no event fired in 200 weeks with a lingering report")
	}

	// An exam week still never rolls an event.
	for i := 0; i < 200; i++ {
		s := mainGameState()
		s.Week = 8
		s.Courses = []models.Course{{ID: "a", Name: "课程甲", Difficulty: 3, Credit: 3, Mastery: 50}}
		next, _ := e.Apply(s, AdvanceWeek{})
		if next.CurrentEvent != nil {
			t.Fatal("event fired on an exam week")
		}
	}
}

func TestSemesterRolloverIntoSummerCamp(t *testing.T) {
	e := newTestEngine(t, 14)
	s := mainGameState()
	s.Semester = 5
	s.Week = 18
	s.Courses = nil

	next, _ := e.Apply(s, AdvanceWeek{})
	if next.Semester != 6 || next.Week != 1 {
		t.Fatalf("semester/week = %d/%d, want 6/1", next.Semester, next.Week)
	}
	if next.Phase != models.PhaseSummerCamp {
		t.Errorf("phase = %s, want summer_camp", next.Phase)
	}
	if len(next.Courses) == 0 {
		t.Error("new semester should load compulsory courses")
	}
	for _, c := range next.Courses {
		if c.Mastery != 0 {
			t.Errorf("course %s carries mastery %v into the new semester", c.ID, c.Mastery)
		}
	}
}

func TestTerminalDepletion(t *testing.T) {
	e := newTestEngine(t, 15)
	s := mainGameState()
	s.Stats.Stamina = 10
	s.SelectedActions = []string{"上课"} // costs exactly 10 stamina

	next, _ := e.Apply(s, AdvanceWeek{})
	if !next.GameOver {
		t.Fatal("stamina 0 should end the run")
	}
	if next.Ending == nil {
		t.Error("depletion ending should still be classified")
	}
	if next.GameMessage == "" {
		t.Error("depletion should explain itself")
	}
}

func TestResumeScoreMonotonic(t *testing.T) {
	e := newTestEngine(t, 16)
	s := mainGameState()
	s.Money = 50000
	prevScore := 0
	for i := 0; i < 30; i++ {
		s.Stats.Research = 100
		var intent Intent = AdvanceWeek{}
		if i%7 == 0 {
			intent = BuyItem{Item: "闲鱼神秘卖家"}
		}
		s, _ = e.Apply(s, intent)
		if s.CurrentEvent != nil {
			s, _ = e.Apply(s, ChooseEventOption{Option: 0})
		}
		if score := s.ResumeScore(); score < prevScore {
			t.Fatalf("resume score decreased: %d -> %d", prevScore, score)
		} else {
			prevScore = score
		}
		if s.GameOver {
			break
		}
	}
}
