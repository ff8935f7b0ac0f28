package coindata

import (
	"testing"

	"moonradar/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider_GetBySymbol(t *testing.T) {
	p, err := NewStaticProvider()
	require.NoError(t, err)

	coin, err := p.GetBySymbol("WAGMI")
	require.NoError(t, err)
	assert.Equal(t, "wagmi", coin.ID)
	assert.Equal(t, model.MoonPhaseHalf, coin.MoonPhase)

	// Lookup is case-insensitive.
	lower, err := p.GetBySymbol("wagmi")
	require.NoError(t, err)
	assert.Equal(t, coin.ID, lower.ID)

	_, err = p.GetBySymbol("NOPE")
	assert.ErrorIs(t, err, ErrCoinNotFound)
}

func TestStaticProvider_MoonshotOfMonth(t *testing.T) {
	p, err := NewStaticProvider()
	require.NoError(t, err)

	coin := p.MoonshotOfMonth()
	assert.Equal(t, "MOON", coin.Symbol)
	assert.Equal(t, model.MoonPhaseFull, coin.MoonPhase)
	assert.Equal(t, model.WhaleIndicatorRocket, coin.WhaleIndicator)
}

func TestStaticProvider_GroupedByPhase(t *testing.T) {
	p, err := NewStaticProvider()
	require.NoError(t, err)

	grouped := p.GroupedByPhase()
	require.Len(t, grouped, 3)

	for _, phase := range []model.MoonPhase{model.MoonPhaseNew, model.MoonPhaseHalf, model.MoonPhaseFull} {
		coins, ok := grouped[phase]
		require.True(t, ok, "missing phase %s", phase)
		assert.NotEmpty(t, coins)
		for _, coin := range coins {
			assert.Equal(t, phase, coin.MoonPhase)
		}
	}
}
