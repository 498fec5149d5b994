package engine

import (
	"fmt"

	"github.com/tatianab/baoyan-sim/internal/content"
	"github.com/tatianab/baoyan-sim/internal/models"
)

// phaseWindow maps the two admissions phases to their application window.
func phaseWindow(p models.GamePhase) (models.ApplicationPhase, bool) {
	switch p {
	case models.PhaseSummerCamp:
		return models.WindowSummerCamp, true
	case models.PhasePreRecommendation:
		return models.WindowPreRecommendation, true
	}
	return "", false
}

func windowLabel(w models.ApplicationPhase) string {
	if w == models.WindowSummerCamp {
		return "夏令营"
	}
	return "预推免"
}

func (e *Engine) playerTier(s *models.GameState) int {
	if uni, ok := e.lib.UniversityByName(s.University); ok {
		return content.TierValue(uni.Tier)
	}
	return content.TierValue("T4")
}

// backgroundBase is the 0-100 school-background score: full marks when
// the player's tier meets the target, minus 15 per tier of gap.
func backgroundBase(playerTier, targetTier int) float64 {
	gap := targetTier - playerTier
	if gap < 0 {
		gap = 0
	}
	score := 100 - float64(gap)*15
	if score < 0 {
		score = 0
	}
	return score
}

// estimateReferenceTier is the fixed benchmark tier the status-panel
// estimate measures school background against; screening uses the real
// target's tier instead.
const estimateReferenceTier = 4

// EstimatedSuccessChance is the 0-100 read model shown on the status
// panel: GPA 30 / resume 30 / background 20 / English 10 / seniors 10,
// plus a baoyan-rate term and the summed mentor effect. It is advisory
// and never feeds back into gameplay except as one screening input.
func (e *Engine) EstimatedSuccessChance(s *models.GameState) int {
	resumeScore := float64(s.ResumeScore())
	background := backgroundBase(e.playerTier(s), estimateReferenceTier)

	base := (s.Stats.GPA/4.5)*30 +
		(resumeScore/200)*30 +
		(background/100)*20 +
		(s.Stats.English/100)*10 +
		(s.Social.Seniors/100)*10

	mentorEffect := 0.0
	for _, m := range s.Mentors {
		switch m.Status {
		case models.MentorHardOffer:
			mentorEffect += 25
		case models.MentorVerbalOffer:
			mentorEffect += 12
		case models.MentorFishPond:
			mentorEffect += 3
		case models.MentorRejected:
			mentorEffect -= 8
		}
	}

	baoyanRate := 5.0
	if uni, ok := e.lib.UniversityByName(s.University); ok {
		baoyanRate = uni.BaoyanRate
	}

	return int(clamp(base+baoyanRate/4+mentorEffect, 0, 100))
}

// submitApplication runs initial screening for one university in the
// current window. One application per (university, window); duplicates
// are an idempotent no-op. Screening resolves straight to interviewing
// or rejected.
func (e *Engine) submitApplication(s models.GameState, in SubmitApplication) (models.GameState, []string) {
	window, ok := phaseWindow(s.Phase)
	if !ok {
		return s.Clone(), []string{"现在不在申请窗口期。"}
	}
	if s.Interview != nil {
		return s.Clone(), []string{"先完成手头的面试吧。"}
	}
	uni, found := e.lib.UniversityByName(in.University)
	if !found {
		return s.Clone(), []string{fmt.Sprintf("没有找到 [%s]。", in.University)}
	}
	if s.HasApplied(uni.Name, window) {
		return s.Clone(), []string{fmt.Sprintf("你已经投递过 %s 的%s申请了。", uni.Name, windowLabel(window))}
	}

	resumeScore := float64(s.ResumeScore())
	targetTier := content.TierValue(uni.Tier)
	background := backgroundBase(e.playerTier(&s), targetTier)
	estimated := float64(e.EstimatedSuccessChance(&s))

	chance := (s.Stats.GPA/4.5)*0.25 +
		(resumeScore/200)*0.25 +
		(background/100)*0.20 +
		(s.Stats.English/100)*0.10 +
		(s.Social.Seniors/100)*0.10 +
		(estimated/100)*0.10

	for _, m := range s.Mentors {
		if m.University != uni.Name {
			continue
		}
		switch m.Status {
		case models.MentorHardOffer:
			chance += 0.4
		case models.MentorVerbalOffer:
			chance += 0.2
		case models.MentorFishPond:
			chance += 0.05
		case models.MentorRejected:
			chance -= 0.15
		}
	}

	chance *= 0.7 + (uni.BaoyanRate/30)*0.3

	next := s.Clone()
	if e.rng.Float64() < chance {
		backgroundScore := (s.Stats.GPA/4.5)*25 +
			(resumeScore/200)*20 +
			(background/100)*10 +
			(s.Stats.English/100)*5

		next.Interview = &models.Interview{
			University:      uni.Name,
			Major:           s.Major,
			Phase:           window,
			Questions:       e.sampleQuestions(3),
			BackgroundScore: backgroundScore,
		}
		next.Applications = append(next.Applications, models.Application{
			University: uni.Name,
			Major:      s.Major,
			Status:     models.ApplicationInterviewing,
			Phase:      window,
		})
		return next, []string{fmt.Sprintf("%s: 你通过了 %s 的初筛，进入面试环节！", windowLabel(window), uni.Name)}
	}

	next.Applications = append(next.Applications, models.Application{
		University: uni.Name,
		Major:      s.Major,
		Status:     models.ApplicationRejected,
		Phase:      window,
	})
	return next, []string{fmt.Sprintf("%s: 很遗憾，你被 %s 拒绝了。", windowLabel(window), uni.Name)}
}

// sampleQuestions draws without replacement from the shared pool.
func (e *Engine) sampleQuestions(n int) []models.InterviewQuestion {
	pool := append([]models.InterviewQuestion(nil), e.lib.Questions...)
	for i := len(pool) - 1; i > 0; i-- {
		j := e.rng.Intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}

// answerInterview scores one answer. The last answer triggers the final
// evaluation: interview total rescaled to 40 points plus the precomputed
// 60-point background score, against a tier-scaled threshold. Acceptance
// in the pre-recommendation window ends the game.
func (e *Engine) answerInterview(s models.GameState, in AnswerInterview) (models.GameState, []string) {
	if s.Interview == nil {
		return s.Clone(), []string{"当前没有进行中的面试。"}
	}
	iv := s.Interview
	if iv.QuestionIndex >= len(iv.Questions) {
		return s.Clone(), []string{"面试已经结束了。"}
	}
	question := iv.Questions[iv.QuestionIndex]
	if in.Option < 0 || in.Option >= len(question.Options) {
		return s.Clone(), []string{"请选择一个有效的回答。"}
	}
	option := question.Options[in.Option]

	next := s.Clone()
	total := iv.TotalScore + option.Score

	if iv.QuestionIndex < len(iv.Questions)-1 {
		next.Interview.QuestionIndex++
		next.Interview.TotalScore = total
		return next, []string{"面试中: " + option.Feedback}
	}

	finalScore := (float64(total)/60)*40 + iv.BackgroundScore
	targetTier := content.TierValue("T4")
	if uni, ok := e.lib.UniversityByName(iv.University); ok {
		targetTier = content.TierValue(uni.Tier)
	}
	threshold := float64(60 + targetTier*4)
	accepted := finalScore >= threshold

	status := models.ApplicationRejected
	if accepted {
		status = models.ApplicationAccepted
	}
	for i := range next.Applications {
		if next.Applications[i].University == iv.University && next.Applications[i].Phase == iv.Phase {
			next.Applications[i].Status = status
		}
	}
	next.Interview = nil

	verdict := "很遗憾，未通过最终考核。"
	if accepted {
		verdict = "恭喜你被拟录取！"
	}
	logs := []string{fmt.Sprintf("面试反馈 (%s): %s 最终综合评分: %.1f。%s", iv.University, option.Feedback, finalScore, verdict)}

	if accepted && iv.Phase == models.WindowPreRecommendation {
		next.GameOver = true
		outcome := e.classifyOutcome(&next)
		next.Ending = &outcome
		next.GameMessage = outcome.Title + "\n" + outcome.Detail
	}
	return next, logs
}

// classifyOutcome builds the ending report: a success tier when any
// accepted application exists, otherwise the first match in the fixed
// fallback chain.
func (e *Engine) classifyOutcome(s *models.GameState) models.Ending {
	quote := ""
	if len(e.lib.Quotes) > 0 {
		quote = e.lib.Quotes[e.rng.Intn(len(e.lib.Quotes))]
	}

	var accepted *models.Application
	for i := range s.Applications {
		if s.Applications[i].Status == models.ApplicationAccepted {
			accepted = &s.Applications[i]
			break
		}
	}

	var title, detail string
	switch {
	case accepted != nil:
		title = "【最终结局：保研成功】"
		tier := ""
		if uni, ok := e.lib.UniversityByName(accepted.University); ok {
			tier = uni.Tier
		}
		switch {
		case tier == "T0":
			detail = fmt.Sprintf("你在 %s 的四年努力终于迎来了最高光的时刻。作为 %s 专业的佼佼者，你成功保研至 %s %s 专业。这是国内最顶尖的学术殿堂，未来不可限量。",
				s.University, s.Major, accepted.University, accepted.Major)
			quote = "这世上只有一种真正的英雄主义，那就是在看清学术的真相后，依然热爱它。"
		case tier == "T1":
			detail = fmt.Sprintf("你凭借出色的综合素质，成功保研至 %s %s 专业。华五名校的科研氛围将助你在学术道路上更进一步。",
				accepted.University, accepted.Major)
		case accepted.University == s.University:
			detail = fmt.Sprintf("你选择留在本校 %s 继续攻读 %s 专业。在熟悉的实验室和敬爱的导师指导下，你将开启稳健的研究生涯。",
				accepted.University, accepted.Major)
		default:
			detail = fmt.Sprintf("你成功通过夏令营和预推免的层层选拔，保研至 %s %s 专业。新的环境意味着新的开始，祝你在学术之路上越走越远。",
				accepted.University, accepted.Major)
		}
	case s.Stats.English > 85 && s.Money > 15000:
		title = "【最终结局：出国深造】"
		detail = "虽然国内保研之路未能如愿，但你凭借优异的英语成绩和充足的资金储备，成功申请到了海外名校的 Master 项目。换个赛道，你依然是赢家。"
		quote = "世界的边界，就是你认知的边界。星辰大海，才是你的归宿。"
	case s.Social.Seniors > 85 && s.Stats.GPA > 3.2:
		title = "【最终结局：支教保研】"
		detail = "你虽然没有在学术赛道上拿到满意的 Offer，但凭借极高的人脉评分和丰富的学生工作经验，成功申请到了“支教保研”名额。在西部的三尺讲台上，你将书写另一种青春。"
		quote = "用一年不长的时间，做一件终生难忘的事。"
	case s.Stats.GPA > 4.0 && s.Stats.Mental > 60:
		title = "【最终结局：考研战神】"
		detail = "保研名额的遗憾错失并没有击垮你。你迅速调整心态投入考研，凭借四年积累的深厚功底，在随后的全国研究生统一考试中发挥神勇，最终以初试第一的成绩考入了最初的目标院校。"
		quote = "杀不死我的，终将使我更强大。"
	case s.Stats.Competition > 80 && s.Social.Classmates > 70:
		title = "【最终结局：职场精英】"
		detail = "保研失败后，你凭借手里沉甸甸的竞赛奖牌和优秀的社交能力，成功拿到了某大厂的校招高薪 Offer。你发现，比起科研，你似乎更适合在快节奏的职场中发光发热。"
		quote = "在象牙塔外，你依然可以定义自己的规则。"
	case s.Stats.Mental < 40:
		title = "【最终结局：遗憾二战】"
		detail = "保研过程中的巨大压力和最终的落榜让你感到精疲力竭。你决定给自己放一个长假，回家在父母的陪伴下修整一段时间，准备来年再战。这一次，你会更加从容。"
		quote = "暂时的退后，是为了下一次更有力的跳跃。"
	default:
		title = "【最终结局：职场新人】"
		detail = "保研未能如愿，你略显仓促地进入了就业市场。虽然起步阶段略有坎坷，但凭借大学四年打下的专业基础，你相信只要脚踏实地，未来依然可期。"
	}

	return models.Ending{
		Title:  title,
		Detail: detail,
		Quote:  quote,
		Career: models.CareerStats{
			FinalGPA:         s.Stats.GPA,
			TotalResumeScore: s.ResumeScore(),
			FinalEnglish:     s.Stats.English,
			FinalSocial:      (s.Social.Classmates + s.Social.Seniors) / 2,
			FinalMoney:       s.Money,
		},
		SummerCamp: funnel(s.Applications, models.WindowSummerCamp),
		PreRec:     funnel(s.Applications, models.WindowPreRecommendation),
	}
}

func funnel(apps []models.Application, window models.ApplicationPhase) models.FunnelStats {
	var f models.FunnelStats
	for _, a := range apps {
		if a.Phase != window {
			continue
		}
		f.Applied++
		if a.Status != models.ApplicationRejected && a.Status != models.ApplicationPending {
			f.Interviews++
		}
		if a.Status == models.ApplicationAccepted {
			f.Offers++
		}
	}
	return f
}
