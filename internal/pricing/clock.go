package pricing

import (
	"math/rand/v2"
	"sync/atomic"
)

// DayClock tracks the in-game day that seeds shop randomness.
type DayClock struct {
	gameID     uint64
	daysPlayed atomic.Uint64
}

// NewDayClock starts the clock at daysPlayed for the given save.
func NewDayClock(gameID, daysPlayed uint64) *DayClock {
	c := &DayClock{gameID: gameID}
	c.daysPlayed.Store(daysPlayed)
	return c
}

// DaysPlayed returns the current day number.
func (c *DayClock) DaysPlayed() uint64 {
	return c.daysPlayed.Load()
}

// Advance moves to the next day and returns it.
func (c *DayClock) Advance() uint64 {
	return c.daysPlayed.Add(1)
}

// Rand returns the random source for the current day. Two calls on the
// same day produce identical sequences.
func (c *DayClock) Rand() *rand.Rand {
	return rand.New(rand.NewPCG(c.gameID, c.DaysPlayed()))
}
