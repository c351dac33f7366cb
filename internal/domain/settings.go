package domain

import "fmt"

// ProduceType selects which product of a harvest is priced.
type ProduceType string

// Profession identifies a farming perk of the simulated player.
type Profession string

const (
	ProfessionTiller        Profession = "tiller"
	ProfessionAgriculturist Profession = "agriculturist"
)

// DefaultPriceMultipliers are the sale multipliers for base, silver, gold
// and iridium produce.
var DefaultPriceMultipliers = [QualityTierCount]float64{1.0, 1.25, 1.5, 2.0}

// Settings is the scenario a profitability pass is computed for.
type Settings struct {
	Day              int                       `json:"day" validate:"min=0,max=27"`
	Season           Season                    `json:"season"`
	Fertilizer       FertilizerQuality         `json:"fertilizer"`
	ProduceType      ProduceType               `json:"produce_type" validate:"omitempty,oneof=raw"`
	PayForSeeds      bool                      `json:"pay_for_seeds"`
	PayForFertilizer bool                      `json:"pay_for_fertilizer"`
	MaxMoney         int                       `json:"max_money" validate:"min=0"`
	UseBaseStats     bool                      `json:"use_base_stats"`
	FarmingLevel     int                       `json:"farming_level" validate:"min=0"`
	Professions      []Profession              `json:"professions,omitempty" validate:"dive,oneof=tiller agriculturist"`
	PriceMultipliers [QualityTierCount]float64 `json:"price_multipliers"`
}

// DefaultSettings is the scenario used before any caller supplies one.
func DefaultSettings() Settings {
	return Settings{
		Day:              0,
		Season:           SeasonSpring,
		Fertilizer:       FertilizerNone,
		ProduceType:      ProduceRaw,
		PriceMultipliers: DefaultPriceMultipliers,
	}
}

// Validate checks the invariants every computation relies on.
func (s Settings) Validate() error {
	if s.Day < 0 || s.Day >= DaysPerSeason {
		return fmt.Errorf("%w: day %d outside [0,%d)", ErrInvalidSettings, s.Day, DaysPerSeason)
	}
	if _, ok := seasonNames[s.Season]; !ok {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, ErrUnmappedSeason)
	}
	if !s.Fertilizer.IsValid() {
		return fmt.Errorf("%w: fertilizer %d", ErrInvalidSettings, int(s.Fertilizer))
	}
	if s.ProduceType != "" && s.ProduceType != ProduceRaw {
		return fmt.Errorf("%w: produce type %q is not computed", ErrInvalidSettings, s.ProduceType)
	}
	if s.FarmingLevel < 0 {
		return fmt.Errorf("%w: farming level %d", ErrInvalidSettings, s.FarmingLevel)
	}
	if s.MaxMoney < 0 {
		return fmt.Errorf("%w: max money %d", ErrInvalidSettings, s.MaxMoney)
	}
	for i, m := range s.PriceMultipliers {
		if m < 0 {
			return fmt.Errorf("%w: price multiplier %d is negative", ErrInvalidSettings, i)
		}
	}
	return nil
}

// Normalize fills zero-valued optional fields with their defaults.
func (s Settings) Normalize() Settings {
	if s.ProduceType == "" {
		s.ProduceType = ProduceRaw
	}
	if s.PriceMultipliers == ([QualityTierCount]float64{}) {
		s.PriceMultipliers = DefaultPriceMultipliers
	}
	return s
}

// EffectiveFarmingLevel is the level used by formulas; base stats mean level 0.
func (s Settings) EffectiveFarmingLevel() int {
	if s.UseBaseStats {
		return 0
	}
	return s.FarmingLevel
}

// HasProfession reports whether p applies; base stats ignore every profession.
func (s Settings) HasProfession(p Profession) bool {
	if s.UseBaseStats {
		return false
	}
	for _, have := range s.Professions {
		if have == p {
			return true
		}
	}
	return false
}
