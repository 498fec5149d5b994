package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tatianab/baoyan-sim/internal/content"
	"github.com/tatianab/baoyan-sim/internal/models"
)

// buyItem purchases one shop item, honoring the per-week limit and the
// money check, then interprets the item's tagged effect descriptor.
func (e *Engine) buyItem(s models.GameState, in BuyItem) (models.GameState, []string) {
	item, ok := e.lib.ShopItemByName(in.Item)
	if !ok {
		return s.Clone(), []string{fmt.Sprintf("小卖部没有 [%s] 这种东西。", in.Item)}
	}
	if item.Limit > 0 && s.PurchaseCounts[item.Name] >= item.Limit {
		return s.Clone(), []string{fmt.Sprintf("%s本周限购%d次，下周再来吧。", item.Name, item.Limit)}
	}
	if s.Money < item.Cost {
		return s.Clone(), []string{fmt.Sprintf("钱不够了，买不起%s。", item.Name)}
	}

	next := s.Clone()
	next.Money -= item.Cost
	next.PurchaseCounts[item.Name]++

	switch item.Effect.Kind {
	case content.ShopEffectStats:
		next.Stats.Stamina = clamp(next.Stats.Stamina+item.Effect.Stamina, 0, 100)
		next.Stats.Mental = clamp(next.Stats.Mental+item.Effect.Mental, 0, 100)
	case content.ShopEffectEfficiency:
		next.MasteryEfficiency += item.Effect.Boost
		next.ResearchEfficiency += item.Effect.Boost
		next.CompetitionEfficiency += item.Effect.Boost
	case content.ShopEffectResume:
		itemType := "research"
		if e.rng.Float64() < 0.5 {
			itemType = "competition"
		}
		next.Resume = append(next.Resume, models.ResumeItem{
			ID:      uuid.NewString(),
			Type:    itemType,
			Name:    pick(e.rng, item.Effect.Names),
			Score:   rollRange(e.rng, item.Effect.Score.Min, item.Effect.Score.Max),
			Quality: models.QualityCommon,
		})
	}

	return next, []string{fmt.Sprintf("购买了[%s]。%s", item.Name, item.Description)}
}
