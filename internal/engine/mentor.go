package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tatianab/baoyan-sim/internal/models"
)

// newMentorBatch generates fresh potential mentors for the major,
// sampling names, titles, schools, and fields from the content pools.
// Reputation lands in [40, 99] and is immutable afterwards.
func (e *Engine) newMentorBatch(count int, major models.MajorType) []models.Mentor {
	pool, ok := e.lib.MentorPools[major]
	if !ok {
		pool = e.lib.MentorPools[models.MajorGeneral]
	}
	names := e.lib.Names

	out := make([]models.Mentor, 0, count)
	for i := 0; i < count; i++ {
		m := models.Mentor{
			ID:         uuid.NewString(),
			Name:       pick(e.rng, names.LastNames) + pick(e.rng, names.FirstNames),
			Title:      pick(e.rng, names.Titles),
			Reputation: rollRange(e.rng, 40, 99),
			Status:     models.MentorNone,
		}
		if len(e.lib.Universities) > 0 {
			m.University = e.lib.Universities[e.rng.Intn(len(e.lib.Universities))].Name
		}
		m.School = pick(e.rng, pool.Schools)
		m.ResearchField = pick(e.rng, pool.Fields)
		out = append(out, m)
	}
	return out
}

func pick(rng Rand, list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rng.Intn(len(list))]
}

func (e *Engine) refreshMentors(s models.GameState) (models.GameState, []string) {
	if s.Stats.Stamina < refreshMentorsCost {
		return s.Clone(), []string{fmt.Sprintf("体力不足，无法刷新导师名单（需要 %d 点体力）。", refreshMentorsCost)}
	}
	next := s.Clone()
	next.Stats.Stamina -= refreshMentorsCost
	next.PotentialMentors = e.newMentorBatch(3, s.MajorType)
	return next, []string{fmt.Sprintf("你花费了 %d 点体力，四处打听，联系了一些新的导师。", refreshMentorsCost)}
}

func (e *Engine) contactMentor(s models.GameState, in ContactMentor) (models.GameState, []string) {
	if s.Stats.Stamina < contactMentorCost {
		return s.Clone(), []string{fmt.Sprintf("体力不足，无法开始套磁（需要 %d 体力）。", contactMentorCost)}
	}
	idx := -1
	for i, m := range s.PotentialMentors {
		if m.ID == in.MentorID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s.Clone(), []string{"这位导师已经不在名单上了。"}
	}

	next := s.Clone()
	mentor := next.PotentialMentors[idx]
	mentor.Status = models.MentorContacting
	next.PotentialMentors = append(next.PotentialMentors[:idx], next.PotentialMentors[idx+1:]...)
	next.Mentors = append(next.Mentors, mentor)
	next.Stats.Stamina -= contactMentorCost
	return next, []string{fmt.Sprintf("你开始尝试联系 %s %s 的 %s 教授（研究方向：%s）。",
		mentor.University, mentor.School, mentor.Name, mentor.ResearchField)}
}

// courtMentor is the taoci roll. Only contacting and fish_pond mentors
// may be courted; rejected and hard_offer are absorbing.
func (e *Engine) courtMentor(s models.GameState, in CourtMentor) (models.GameState, []string) {
	mentor := s.MentorByID(in.MentorID)
	if mentor == nil {
		return s.Clone(), []string{"你还没有联系过这位导师。"}
	}
	if mentor.Status != models.MentorContacting && mentor.Status != models.MentorFishPond {
		return s.Clone(), []string{"这位导师已经给过明确答复，不必再套磁了。"}
	}
	if s.Stats.Stamina < courtshipCost {
		return s.Clone(), []string{fmt.Sprintf("体力不足，无法进行套磁（需要 %d 体力）。", courtshipCost)}
	}

	basePower := s.Stats.GPA*20 + float64(s.ResumeScore())*0.2
	difficultyFactor := 1.5 - float64(mentor.Reputation)/100
	if difficultyFactor < 0.5 {
		difficultyFactor = 0.5
	}
	chance := clamp(basePower*difficultyFactor, 5, 95)
	roll := e.rng.Float64() * 100

	var status models.MentorStatus
	var message string
	switch {
	case roll < chance*0.15:
		status = models.MentorHardOffer
		message = fmt.Sprintf("%s教授对你的表现非常满意，明确表示：“只要你拿到推免资格，我这边的名额一定给你。”这就是传说中的铁Offer！", mentor.Name)
	case roll < chance:
		status = models.MentorVerbalOffer
		message = fmt.Sprintf("%s教授给了你口头承诺，但提醒你：“今年优秀的学生很多，你还需要在夏令营/预推免中证明自己。”（拿到口头Offer，但有被放鸽子的风险）", mentor.Name)
	case roll < chance+25:
		status = models.MentorFishPond
		message = fmt.Sprintf("%s教授回复了你的邮件，表示：“欢迎报考我的研究生，请关注后续的夏令营通知。”（典型的客套话，你被放入了“鱼塘”）", mentor.Name)
	default:
		status = models.MentorRejected
		message = fmt.Sprintf("%s教授婉拒了你，理由是：“今年课题组名额已满，建议你联系其他优秀的老师。”", mentor.Name)
	}

	next := s.Clone()
	next.Stats.Stamina -= courtshipCost
	if m := next.MentorByID(in.MentorID); m != nil {
		m.Status = status
	}
	return next, []string{"套磁结果: " + message}
}

// deepenMentor has no failure mode: friendship rises by 5..9 and research
// gets a reputation-scaled bump for a flat stamina cost.
func (e *Engine) deepenMentor(s models.GameState, in DeepenMentor) (models.GameState, []string) {
	mentor := s.MentorByID(in.MentorID)
	if mentor == nil {
		return s.Clone(), []string{"你还没有联系过这位导师。"}
	}

	friendshipGain := rollRange(e.rng, 5, 9)
	researchGain := mentor.Reputation / 20

	next := s.Clone()
	if m := next.MentorByID(in.MentorID); m != nil {
		m.Friendship += friendshipGain
		if m.Friendship > 100 {
			m.Friendship = 100
		}
	}
	next.Stats.Research = clamp(next.Stats.Research+float64(researchGain), 0, 100)
	next.Stats.Stamina = clamp(next.Stats.Stamina-deepenCost, 0, 100)
	return next, []string{fmt.Sprintf("你与%s进行了深度交流。亲密度+%d，科研能力+%d。", mentor.Name, friendshipGain, researchGain)}
}
