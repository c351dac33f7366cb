package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayRolloverJob(t *testing.T) {
	seeds := &fakeSeedSource{}
	shops := &fakeShopProvider{shops: twoShopsSelling("(O)X", 50, 80)}
	a := newTestAccessor(t, seeds, shops)
	require.Equal(t, uint64(1), a.Clock().DaysPlayed())

	job := NewDayRolloverJob(a)
	require.NoError(t, job.Process(context.Background()))

	assert.Equal(t, uint64(2), a.Clock().DaysPlayed())
	assert.Equal(t, 2, seeds.calls)
	assert.Equal(t, 2, shops.callCount())
}

func TestDayClock(t *testing.T) {
	c := NewDayClock(3, 5)
	assert.Equal(t, uint64(5), c.DaysPlayed())
	assert.Equal(t, uint64(6), c.Advance())

	a := NewDayClock(3, 6).Rand().Uint64()
	b := c.Rand().Uint64()
	assert.Equal(t, a, b)
}
