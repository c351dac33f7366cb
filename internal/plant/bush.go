package plant

import (
	"fmt"

	"github.com/osse101/CropProfit_Go/internal/domain"
)

// SeasonYield is what a custom bush produces in one season of its window.
type SeasonYield struct {
	Season        domain.Season `json:"season"`
	ProducingDays int           `json:"producing_days"`
	Harvests      int           `json:"harvests"`
	Price         int           `json:"price"`
}

// CustomBush matures after Days and from then on produces every RegrowDays,
// but only from DaysToBeginProducing onward within each season. Its drops
// are priced per season.
type CustomBush struct {
	Plant
	DaysToBeginProducing int
}

// NewCustomBush validates p and the production offset.
func NewCustomBush(p Plant, daysToBeginProducing int) (*CustomBush, error) {
	if p.RegrowDays <= 0 {
		p.RegrowDays = 1
	}
	p.MinHarvests = 1
	p.MaxHarvests = 1
	p.AffectByQuality = false
	p.AffectByFertilizer = false
	if daysToBeginProducing < 0 || daysToBeginProducing >= domain.DaysPerSeason {
		return nil, fmt.Errorf("%w: %s %s: production offset %d", domain.ErrInvalidInput, ErrMsgInvalidPlant, p.ID, daysToBeginProducing)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &CustomBush{Plant: p, DaysToBeginProducing: daysToBeginProducing}, nil
}

func (b *CustomBush) Kind() string {
	return domain.KindCustomBush
}

func (b *CustomBush) GrowthSpeed(domain.Settings) float64 {
	return 1.0
}

func (b *CustomBush) GrowthTime(domain.Settings) int {
	return b.Days
}

func (b *CustomBush) Quality(domain.Settings) domain.QualityChances {
	return domain.BaseQualityOnly
}

// Yields breaks the growing window down by season. In each season the bush
// produces from the later of its maturity day and the production offset
// until the season ends.
func (b *CustomBush) Yields(s domain.Settings) []SeasonYield {
	window := WindowSeasons(b.Seasons, s.Season)
	maturity := s.Day + b.Days
	yields := make([]SeasonYield, 0, len(window))
	for i, season := range window {
		start := i * domain.DaysPerSeason
		end := start + domain.DaysPerSeason
		from := max(start+b.DaysToBeginProducing, maturity)
		producing := max(end-from, 0)
		yields = append(yields, SeasonYield{
			Season:        season,
			ProducingDays: producing,
			Harvests:      producing / b.RegrowDays,
			Price:         b.Price(season),
		})
	}
	return yields
}

func (b *CustomBush) Harvests(s domain.Settings) int {
	total := 0
	for _, y := range b.Yields(s) {
		total += y.Harvests
	}
	return total
}

// Profit sums each season's harvests at that season's price.
func (b *CustomBush) Profit(s domain.Settings) float64 {
	q := b.Quality(s)
	total := 0.0
	for _, y := range b.Yields(s) {
		first, remaining := b.firstAndRemaining(float64(y.Price), q, s)
		total += (first + remaining) * float64(y.Harvests)
	}
	return total
}
