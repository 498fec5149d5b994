package engine

import (
	"github.com/tatianab/baoyan-sim/internal/models"
)

// chooseEventOption resolves the pending random event by interpreting the
// chosen option's effect descriptor.
func (e *Engine) chooseEventOption(s models.GameState, in ChooseEventOption) (models.GameState, []string) {
	if s.CurrentEvent == nil {
		return s.Clone(), []string{"当前没有待处理的事件。"}
	}
	if in.Option < 0 || in.Option >= len(s.CurrentEvent.Options) {
		return s.Clone(), []string{"请选择一个有效的选项。"}
	}
	effect := s.CurrentEvent.Options[in.Option].Effect

	next := s.Clone()
	next.Stats.GPA = clamp(next.Stats.GPA+effect.GPA, 0, 4.5)
	next.Stats.Research = clamp(next.Stats.Research+effect.Research, 0, 100)
	next.Stats.Competition = clamp(next.Stats.Competition+effect.Competition, 0, 100)
	next.Stats.English = clamp(next.Stats.English+effect.English, 0, 100)
	next.Stats.Mental = clamp(next.Stats.Mental+effect.Mental, 0, 100)
	next.Stats.Stamina = clamp(next.Stats.Stamina+effect.Stamina, 0, 100)
	next.Money += effect.Money
	next.CurrentEvent = nil

	return next, []string{"事件结果: " + effect.Log}
}
