package plant

// Error message constants
const (
	ErrMsgNegativeChance   = "drop chance must not be negative"
	ErrMsgNegativeQuantity = "drop quantity must not be negative"
	ErrMsgInvalidPlant     = "invalid plant definition"
)

// Log message constants
const (
	LogMsgSeedPriceMissing = "Seed price unavailable, treating as free"
)
