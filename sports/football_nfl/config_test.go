package football_nfl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XavierBriggs/fortuna/services/line-model/pkg/models"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "football_nfl", cfg.GetSportKey())
	assert.Equal(t, 0.9, cfg.GetBlendWeight())
	assert.Equal(t, 2.5, cfg.GetHomeFieldValue())
	assert.Equal(t, 0.9, cfg.GetEdgePctPerPoint())
	assert.Equal(t, 5.5, cfg.GetPlayThresholdPct())
	assert.Equal(t, 0.25, cfg.GetVigShiftPerPct())
	assert.Equal(t, 0.25, cfg.GetKellyFraction())
	assert.Equal(t, 0.005, cfg.GetMinStakeFraction())
	assert.Equal(t, 0.03, cfg.GetMaxStakeFraction())

	bands := cfg.GetStarBands()
	require.Len(t, bands, 5)
	assert.Equal(t, 5.5, bands[0].MinEdgePct)
	assert.Equal(t, 1, bands[0].Stars)
	assert.Equal(t, 15.0, bands[4].MinEdgePct)
	assert.Equal(t, 5, bands[4].Stars)
}

func TestConfigEnvOverrides(t *testing.T) {
	t.Setenv("PLAY_THRESHOLD_PCT", "6.5")
	t.Setenv("KELLY_FRACTION", "0.5")
	t.Setenv("MAX_STAKE_FRACTION", "not-a-number")

	cfg := NewConfig()

	assert.Equal(t, 6.5, cfg.GetPlayThresholdPct())
	assert.Equal(t, 0.5, cfg.GetKellyFraction())
	assert.Equal(t, 0.03, cfg.GetMaxStakeFraction(), "unparseable value keeps the default")
}

func TestGetPositionTierWeight(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, 5.0, cfg.GetPositionTierWeight("QB"))
	assert.Equal(t, 5.0, cfg.GetPositionTierWeight("qb"))
	assert.Equal(t, 5.0, cfg.GetPositionTierWeight("  QB "))
	assert.Equal(t, 0.5, cfg.GetPositionTierWeight("K"))
	assert.Equal(t, 0.75, cfg.GetPositionTierWeight("FB"), "unlisted position falls back to default tier")
	assert.Equal(t, 0.75, cfg.GetPositionTierWeight(""))
}

func TestGetStatusMultiplier(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, 1.0, cfg.GetStatusMultiplier(models.StatusOut))
	assert.Equal(t, 0.75, cfg.GetStatusMultiplier(models.StatusDoubtful))
	assert.Equal(t, 0.5, cfg.GetStatusMultiplier(models.StatusQuestionable))
	assert.Equal(t, 0.25, cfg.GetStatusMultiplier(models.StatusProbable))
	assert.Equal(t, 0.4, cfg.GetStatusMultiplier(models.StatusDayToDay))
	assert.Zero(t, cfg.GetStatusMultiplier(models.StatusUnknown))
}

func TestLoadFileOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.yaml")

	content := []byte(`
play_threshold_pct: 6.0
situational_points:
  division_game: 0.75
  short_week: -1.25
star_bands:
  - min_edge_pct: 6.0
    stars: 1
  - min_edge_pct: 10.0
    stars: 2
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFile(path))

	assert.Equal(t, 6.0, cfg.GetPlayThresholdPct())
	assert.Equal(t, 0.75, cfg.GetSituationalPoints()["division_game"])
	assert.Len(t, cfg.GetStarBands(), 2)

	// Fields absent from the file keep their defaults
	assert.Equal(t, 2.5, cfg.GetHomeFieldValue())
	assert.Equal(t, 0.25, cfg.GetKellyFraction())
}

func TestLoadFileMissing(t *testing.T) {
	cfg := NewConfig()
	assert.Error(t, cfg.LoadFile("/nonexistent/model.yaml"))
}
