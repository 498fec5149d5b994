package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tatianab/baoyan-sim/internal/models"
)

// rollQuality draws a rarity tier from the fixed cumulative distribution:
// legendary 3%, epic 12%, rare 35%, common 50%.
func (e *Engine) rollQuality() models.ResumeQuality {
	roll := e.rng.Float64() * 100
	switch {
	case roll < 3:
		return models.QualityLegendary
	case roll < 15:
		return models.QualityEpic
	case roll < 50:
		return models.QualityRare
	default:
		return models.QualityCommon
	}
}

// rollResumeDrops converts saturated research/competition accumulators
// into resume items. Both may fire in the same week, independently.
func (e *Engine) rollResumeDrops(next *models.GameState) []string {
	var logs []string
	if next.Stats.Research >= 100 {
		next.Stats.Research = 0
		item, ok := e.mintResumeItem("research")
		if ok {
			next.Resume = append(next.Resume, item)
			logs = append(logs, fmt.Sprintf("🎉 你的科研积累达到了顶峰，完成了一项【%s】品质的科研成果：%s！", item.Quality, item.Name))
		}
	}
	if next.Stats.Competition >= 100 {
		next.Stats.Competition = 0
		item, ok := e.mintResumeItem("competition")
		if ok {
			next.Resume = append(next.Resume, item)
			logs = append(logs, fmt.Sprintf("🎉 你的竞赛积累达到了顶峰，获得了一项【%s】品质的竞赛荣誉：%s！", item.Quality, item.Name))
		}
	}
	return logs
}

func (e *Engine) mintResumeItem(itemType string) (models.ResumeItem, bool) {
	quality := e.rollQuality()
	pool := e.lib.ResumePoolFor(itemType, quality)
	if len(pool) == 0 {
		return models.ResumeItem{}, false
	}
	entry := pool[e.rng.Intn(len(pool))]
	return models.ResumeItem{
		ID:      uuid.NewString(),
		Type:    itemType,
		Name:    entry.Name,
		Score:   rollRange(e.rng, entry.ScoreRange.Min, entry.ScoreRange.Max),
		Quality: entry.Quality,
	}, true
}
