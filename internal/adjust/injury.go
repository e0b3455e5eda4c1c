package adjust

import "github.com/XavierBriggs/fortuna/services/line-model/pkg/models"

// Injury sums per-player impact scores into a point penalty for each side.
//
// impact = positionTierWeight * statusMultiplier
//
// A report with an unrecognized status string scores zero rather than
// failing: injury-report text varies by source, and a clean miss is safer
// than blocking the whole evaluation. Reports for teams outside the matchup
// are ignored.
func (c *Calculator) Injury(game models.Game, reports []models.InjuryReport) (home, away float64) {
	for _, report := range reports {
		status := models.ParseInjuryStatus(report.Status)
		impact := c.config.GetPositionTierWeight(report.Position) * c.config.GetStatusMultiplier(status)
		if impact == 0 {
			continue
		}

		switch report.TeamID {
		case game.HomeTeamID:
			home -= impact
		case game.AwayTeamID:
			away -= impact
		}
	}

	return home, away
}
