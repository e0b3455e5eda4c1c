package ratings

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XavierBriggs/fortuna/services/line-model/pkg/models"
)

func TestRecordWeeklyUpdateBlendsFromBaseline(t *testing.T) {
	store := NewStore(0.0, 0.9)

	snap, err := store.RecordWeeklyUpdate("BUF", 2025, 1, 10.0, models.RatingInputs{})
	require.NoError(t, err)

	// First update blends the preseason baseline: 0.9*0 + 0.1*10 = 1.0
	assert.InDelta(t, 0.0, snap.OldRating, 1e-9)
	assert.InDelta(t, 1.0, snap.NewRating, 1e-9)
	assert.Equal(t, 0.9, snap.BlendWeight)

	rating, err := store.CurrentRating("BUF")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rating, 1e-9)
}

func TestRecordWeeklyUpdateChainsPriorRating(t *testing.T) {
	store := NewStore(0.0, 0.9)

	_, err := store.RecordWeeklyUpdate("BUF", 2025, 1, 10.0, models.RatingInputs{})
	require.NoError(t, err)

	snap, err := store.RecordWeeklyUpdate("BUF", 2025, 2, 5.0, models.RatingInputs{})
	require.NoError(t, err)

	// 0.9*1.0 + 0.1*5.0 = 1.4
	assert.InDelta(t, 1.0, snap.OldRating, 1e-9)
	assert.InDelta(t, 1.4, snap.NewRating, 1e-9)
}

func TestRecordWeeklyUpdateRejectsDuplicateWeek(t *testing.T) {
	store := NewStore(0.0, 0.9)

	_, err := store.RecordWeeklyUpdate("BUF", 2025, 3, 4.0, models.RatingInputs{})
	require.NoError(t, err)

	_, err = store.RecordWeeklyUpdate("BUF", 2025, 3, 7.0, models.RatingInputs{})
	assert.ErrorIs(t, err, models.ErrDuplicateUpdate)

	// Same week number in a different season is a different key
	_, err = store.RecordWeeklyUpdate("BUF", 2026, 3, 7.0, models.RatingInputs{})
	assert.NoError(t, err)

	// The failed update must not have touched history
	assert.Len(t, store.History("BUF"), 2)
}

func TestRecordWeeklyUpdateValidatesArguments(t *testing.T) {
	store := NewStore(0.0, 0.9)

	_, err := store.RecordWeeklyUpdate("", 2025, 1, 4.0, models.RatingInputs{})
	assert.Error(t, err)

	_, err = store.RecordWeeklyUpdate("BUF", 0, 1, 4.0, models.RatingInputs{})
	assert.Error(t, err)

	_, err = store.RecordWeeklyUpdate("BUF", 2025, 0, 4.0, models.RatingInputs{})
	assert.Error(t, err)
}

func TestCurrentRatingUnknownTeam(t *testing.T) {
	store := NewStore(0.0, 0.9)

	_, err := store.CurrentRating("NOPE")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestHistoryReturnsCopy(t *testing.T) {
	store := NewStore(0.0, 0.9)

	_, err := store.RecordWeeklyUpdate("BUF", 2025, 1, 10.0, models.RatingInputs{})
	require.NoError(t, err)

	history := store.History("BUF")
	require.Len(t, history, 1)

	history[0].NewRating = 999.0

	rating, err := store.CurrentRating("BUF")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rating, 1e-9)
}

func TestConcurrentDuplicateUpdates(t *testing.T) {
	store := NewStore(0.0, 0.9)

	const writers = 16

	var wg sync.WaitGroup
	errs := make([]error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.RecordWeeklyUpdate("BUF", 2025, 5, 6.0, models.RatingInputs{})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, models.ErrDuplicateUpdate), "unexpected error: %v", err)
	}

	assert.Equal(t, 1, succeeded, "exactly one concurrent update should win")
	assert.Len(t, store.History("BUF"), 1)
}
