package plant

import (
	"fmt"
	"math"

	"github.com/osse101/CropProfit_Go/internal/domain"
)

// Drop is one possible product of a harvest.
type Drop struct {
	Item     domain.Item
	Quantity int
	Chance   float64
	// Season restricts the drop to one calendar season; nil means every season.
	Season *domain.Season
}

// ValueIn is the sale value of the drop's item when harvested in season,
// ignoring chance and quantity.
func (d Drop) ValueIn(season domain.Season) int {
	if d.Season == nil || season == domain.SeasonGreenhouse {
		return d.Item.SellPrice
	}
	if *d.Season != season {
		return 0
	}
	return d.Item.SellPrice
}

// DropTable is the weighted set of products a plant yields per harvest.
type DropTable struct {
	drops []Drop
}

// NewDropTable validates and collects drops.
func NewDropTable(drops ...Drop) (DropTable, error) {
	var t DropTable
	for _, d := range drops {
		if err := t.Add(d); err != nil {
			return DropTable{}, err
		}
	}
	return t, nil
}

// Add appends a drop after checking its invariants.
func (t *DropTable) Add(d Drop) error {
	if d.Chance < 0 || math.IsNaN(d.Chance) {
		return fmt.Errorf("%w: %s (%s)", domain.ErrInvalidInput, ErrMsgNegativeChance, d.Item.ID)
	}
	if d.Quantity < 0 {
		return fmt.Errorf("%w: %s (%s)", domain.ErrInvalidInput, ErrMsgNegativeQuantity, d.Item.ID)
	}
	t.drops = append(t.drops, d)
	return nil
}

// Drops returns a copy of the table's entries.
func (t DropTable) Drops() []Drop {
	out := make([]Drop, len(t.drops))
	copy(out, t.drops)
	return out
}

// Len returns the number of drops.
func (t DropTable) Len() int {
	return len(t.drops)
}

// ExpectedValue is the average sale value of one harvest in season.
func (t DropTable) ExpectedValue(season domain.Season) float64 {
	total := 0.0
	for _, d := range t.drops {
		total += float64(d.ValueIn(season)) * d.Chance * float64(d.Quantity)
	}
	return total
}

// Price is ExpectedValue rounded to a whole amount.
func (t DropTable) Price(season domain.Season) int {
	return int(math.Round(t.ExpectedValue(season)))
}
