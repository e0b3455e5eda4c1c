package adjust

import "github.com/XavierBriggs/fortuna/services/line-model/pkg/models"

// Situational flag keys, matching the sport config's situational table.
const (
	FlagDivisionGame  = "division_game"
	FlagShortWeek     = "short_week"
	FlagOffBye        = "off_bye"
	FlagLookaheadSpot = "lookahead_spot"
	FlagSandwichSpot  = "sandwich_spot"
	FlagRevengeGame   = "revenge_game"
)

// Situational returns home/away point deltas from the schedule-spot flags.
// Each active flag contributes its configured point value; multiple flags
// stack additively with no cap.
func (c *Calculator) Situational(game models.Game, homeCtx, awayCtx models.SituationalContext) (home, away float64) {
	return c.situationalSide(homeCtx), c.situationalSide(awayCtx)
}

func (c *Calculator) situationalSide(ctx models.SituationalContext) float64 {
	table := c.config.GetSituationalPoints()

	total := 0.0
	for _, flag := range activeFlags(ctx) {
		total += table[flag]
	}
	return total
}

// activeFlags lists the set flags in table-key form.
func activeFlags(ctx models.SituationalContext) []string {
	var flags []string
	if ctx.DivisionGame {
		flags = append(flags, FlagDivisionGame)
	}
	if ctx.ShortWeek {
		flags = append(flags, FlagShortWeek)
	}
	if ctx.OffBye {
		flags = append(flags, FlagOffBye)
	}
	if ctx.LookaheadSpot {
		flags = append(flags, FlagLookaheadSpot)
	}
	if ctx.SandwichSpot {
		flags = append(flags, FlagSandwichSpot)
	}
	if ctx.RevengeGame {
		flags = append(flags, FlagRevengeGame)
	}
	return flags
}
