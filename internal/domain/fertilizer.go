package domain

import (
	"fmt"
	"strings"
)

// FertilizerQuality is the fertilizer tier applied to the soil.
// Positive tiers raise produce quality, negative tiers only speed up growth.
type FertilizerQuality int

const (
	FertilizerHyperSpeedGro  FertilizerQuality = -3
	FertilizerDeluxeSpeedGro FertilizerQuality = -2
	FertilizerSpeedGro       FertilizerQuality = -1
	FertilizerNone           FertilizerQuality = 0
	FertilizerBasic          FertilizerQuality = 1
	FertilizerQualityTier    FertilizerQuality = 2
	FertilizerDeluxe         FertilizerQuality = 3
)

var fertilizerNames = map[FertilizerQuality]string{
	FertilizerHyperSpeedGro:  FertilizerNameHyperSpeedGro,
	FertilizerDeluxeSpeedGro: FertilizerNameDeluxeSpeedGro,
	FertilizerSpeedGro:       FertilizerNameSpeedGro,
	FertilizerNone:           FertilizerNameNone,
	FertilizerBasic:          FertilizerNameBasic,
	FertilizerQualityTier:    FertilizerNameQuality,
	FertilizerDeluxe:         FertilizerNameDeluxe,
}

var fertilizerPrices = map[FertilizerQuality]int{
	FertilizerNone:           0,
	FertilizerBasic:          100,
	FertilizerQualityTier:    150,
	FertilizerDeluxe:         200,
	FertilizerSpeedGro:       100,
	FertilizerDeluxeSpeedGro: 150,
	FertilizerHyperSpeedGro:  200,
}

var fertilizerSpeedBonus = map[FertilizerQuality]float64{
	FertilizerSpeedGro:       0.10,
	FertilizerDeluxeSpeedGro: 0.25,
	FertilizerHyperSpeedGro:  0.33,
}

// AllFertilizers lists every tier from fastest speed-only to best quality.
var AllFertilizers = []FertilizerQuality{
	FertilizerHyperSpeedGro,
	FertilizerDeluxeSpeedGro,
	FertilizerSpeedGro,
	FertilizerNone,
	FertilizerBasic,
	FertilizerQualityTier,
	FertilizerDeluxe,
}

func (f FertilizerQuality) String() string {
	if name, ok := fertilizerNames[f]; ok {
		return name
	}
	return fmt.Sprintf("fertilizer(%d)", int(f))
}

// IsValid reports whether f is a known tier.
func (f FertilizerQuality) IsValid() bool {
	_, ok := fertilizerNames[f]
	return ok
}

// Price is the shop price of one unit of this fertilizer.
func (f FertilizerQuality) Price() int {
	return fertilizerPrices[f]
}

// QualityLevel is the positive ordinal used by the quality formula.
// Speed-only tiers and no fertilizer contribute nothing.
func (f FertilizerQuality) QualityLevel() int {
	if f < FertilizerNone {
		return 0
	}
	return int(f)
}

// SpeedBonus is the growth-speed contribution of speed-only tiers.
func (f FertilizerQuality) SpeedBonus() float64 {
	return fertilizerSpeedBonus[f]
}

// AtLeastDeluxe reports whether the tier unlocks iridium quality.
func (f FertilizerQuality) AtLeastDeluxe() bool {
	return f >= FertilizerDeluxe
}

func (f FertilizerQuality) MarshalText() ([]byte, error) {
	name, ok := fertilizerNames[f]
	if !ok {
		return nil, fmt.Errorf("%w: fertilizer %d", ErrInvalidInput, int(f))
	}
	return []byte(name), nil
}

func (f *FertilizerQuality) UnmarshalText(text []byte) error {
	parsed, err := ParseFertilizer(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFertilizer parses a tier name such as "deluxe" or "speed_gro".
// Hyphens and spaces are treated as underscores.
func ParseFertilizer(name string) (FertilizerQuality, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	for tier, n := range fertilizerNames {
		if n == normalized {
			return tier, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown fertilizer %q", ErrInvalidInput, name)
}
