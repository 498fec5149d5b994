package engine

import "github.com/tatianab/baoyan-sim/internal/models"

// The ledger: bounds enforcement and the all-or-nothing batch cost check.
// Stats clamp to [0, 100] (GPA to [0, 4.5]); money has no upper bound and
// the affordability check keeps it from going negative.

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// applyStatDelta adds the non-mastery, non-money fields of a delta to the
// stats, clamping each independently. Research and competition are scaled
// by their weekly efficiency multipliers first.
func applyStatDelta(st *models.PlayerStats, d models.StatDelta, researchEff, competitionEff float64) {
	st.GPA = clamp(st.GPA+d.GPA, 0, 4.5)
	st.Research = clamp(st.Research+d.Research*researchEff, 0, 100)
	st.Competition = clamp(st.Competition+d.Competition*competitionEff, 0, 100)
	st.English = clamp(st.English+d.English, 0, 100)
	st.Mental = clamp(st.Mental+d.Mental, 0, 100)
	st.Stamina = clamp(st.Stamina+d.Stamina, 0, 100)
}

// applyCost subtracts the magnitude of each cost field, flooring at the
// lower bound. Money is handled by the caller.
func applyCost(st *models.PlayerStats, d models.StatDelta) {
	st.GPA = clamp(st.GPA-abs(d.GPA), 0, 4.5)
	st.Research = clamp(st.Research-abs(d.Research), 0, 100)
	st.Competition = clamp(st.Competition-abs(d.Competition), 0, 100)
	st.English = clamp(st.English-abs(d.English), 0, 100)
	st.Mental = clamp(st.Mental-abs(d.Mental), 0, 100)
	st.Stamina = clamp(st.Stamina-abs(d.Stamina), 0, 100)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// batchCost sums the declared stamina, mental, and money costs of a set
// of actions. The whole batch is checked before anything is committed.
func batchCost(actions []models.Action) (stamina, mental float64, money int) {
	for _, a := range actions {
		stamina += abs(a.Cost.Stamina)
		mental += abs(a.Cost.Mental)
		money += a.Cost.Money
	}
	return stamina, mental, money
}
