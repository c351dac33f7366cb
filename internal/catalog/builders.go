package catalog

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/CropProfit_Go/internal/domain"
	"github.com/osse101/CropProfit_Go/internal/logger"
	"github.com/osse101/CropProfit_Go/internal/plant"
)

// Registrar accepts plant models keyed by id. The calculator implements it.
type Registrar interface {
	AddCrop(ctx context.Context, id string, m plant.Model) bool
}

var titleCaser = cases.Title(language.English)

// DisplayName picks the explicit name, then the item's name, then a
// title-cased form of the id.
func DisplayName(explicit string, item domain.Item, ok bool, id string) string {
	if explicit != "" {
		return explicit
	}
	if ok && item.Name != "" {
		return item.Name
	}
	raw := strings.NewReplacer("_", " ", "-", " ").Replace(domain.UnqualifiedID(id))
	return titleCaser.String(raw)
}

func parseSeasons(names []string) (domain.SeasonSet, error) {
	seasons := make([]domain.Season, 0, len(names))
	for _, name := range names {
		s, err := domain.ParseCalendarSeason(name)
		if err != nil {
			return 0, err
		}
		seasons = append(seasons, s)
	}
	return domain.NewSeasonSet(seasons...)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// BuildCrop turns a crop definition into a plant model. Harvest stacks of 0
// are read as 1 and a negative regrow means no regrowth.
func BuildCrop(def CropDef, items *ItemRegistry) (*plant.Crop, error) {
	harvest, err := items.Lookup(def.HarvestItem)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", domain.KindCrop, def.ID, err)
	}
	// crops are named after their produce, not the seed packet
	return buildCrop(def, harvest, DisplayName(def.Name, harvest, true, def.HarvestItem),
		boolOr(def.AffectByQuality, true), boolOr(def.AffectByFertilizer, true))
}

func buildCrop(def CropDef, harvest domain.Item, name string, affectByQuality, affectByFertilizer bool) (*plant.Crop, error) {
	seasons, err := parseSeasons(def.Seasons)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", domain.KindCrop, def.ID, err)
	}
	drops, err := plant.NewDropTable(plant.Drop{Item: harvest, Quantity: 1, Chance: 1})
	if err != nil {
		return nil, err
	}

	minStack := max(def.HarvestMinStack, 1)
	maxStack := max(def.HarvestMaxStack, minStack)
	p := plant.Plant{
		ID:                      def.ID,
		Name:                    name,
		Days:                    def.GrowthDays(),
		RegrowDays:              max(def.RegrowDays, 0),
		MinHarvests:             minStack,
		MaxHarvests:             maxStack,
		HarvestIncreasePerLevel: def.HarvestMaxIncreasePerLevel,
		ExtraHarvestChance:      def.ExtraHarvestChance,
		Seasons:                 seasons,
		SeedID:                  def.ID,
		AffectByQuality:         affectByQuality,
		AffectByFertilizer:      affectByFertilizer,
	}
	p.SetDrops(drops)
	return plant.NewCrop(p, def.Paddy)
}

func buildDrops(defs []DropDef, items *ItemRegistry) (plant.DropTable, error) {
	var table plant.DropTable
	for _, d := range defs {
		item, err := items.Lookup(d.ItemID)
		if err != nil {
			return plant.DropTable{}, err
		}
		drop := plant.Drop{Item: item, Quantity: max(d.Quantity, 1), Chance: d.Chance}
		if d.Season != "" {
			season, err := domain.ParseCalendarSeason(d.Season)
			if err != nil {
				return plant.DropTable{}, err
			}
			drop.Season = &season
		}
		if err := table.Add(drop); err != nil {
			return plant.DropTable{}, err
		}
	}
	return table, nil
}

// BuildFruitTree turns a fruit tree definition into a plant model.
func BuildFruitTree(def FruitTreeDef, items *ItemRegistry) (*plant.FruitTree, error) {
	seasons, err := parseSeasons(def.Seasons)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", domain.KindFruitTree, def.ID, err)
	}
	drops, err := buildDrops(def.Fruit, items)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", domain.KindFruitTree, def.ID, err)
	}
	sapling, ok := items.Item(def.ID)
	p := plant.Plant{
		ID:      def.ID,
		Name:    DisplayName(def.Name, sapling, ok, def.ID),
		Seasons: seasons,
		SeedID:  def.ID,
	}
	p.SetDrops(drops)
	return plant.NewFruitTree(p)
}

// BuildBush turns a custom bush definition into a plant model.
func BuildBush(def BushDef, items *ItemRegistry) (*plant.CustomBush, error) {
	seasons, err := parseSeasons(def.Seasons)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", domain.KindCustomBush, def.ID, err)
	}
	drops, err := buildDrops(def.Drops, items)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", domain.KindCustomBush, def.ID, err)
	}
	seed, ok := items.Item(def.SeedID)
	p := plant.Plant{
		ID:         def.ID,
		Name:       DisplayName(def.Name, seed, ok && def.SeedID != "", def.ID),
		Days:       def.AgeToProduce,
		RegrowDays: 1,
		Seasons:    seasons,
		SeedID:     def.SeedID,
	}
	p.SetDrops(drops)
	return plant.NewCustomBush(p, def.DayToBeginProducing)
}

// Models builds every plant in the catalog.
func (c *Catalog) Models() ([]plant.Model, error) {
	models := make([]plant.Model, 0, len(c.Crops)+len(c.FruitTrees)+len(c.Bushes))
	for _, def := range c.Crops {
		m, err := BuildCrop(def, c.Items)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	for _, def := range c.FruitTrees {
		m, err := BuildFruitTree(def, c.Items)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	for _, def := range c.Bushes {
		m, err := BuildBush(def, c.Items)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, nil
}

// Populate registers every catalog plant with reg and returns how many were
// accepted. Duplicates are rejected by the registrar, not here.
func (c *Catalog) Populate(ctx context.Context, reg Registrar) (int, error) {
	models, err := c.Models()
	if err != nil {
		return 0, err
	}
	added := 0
	for _, m := range models {
		if reg.AddCrop(ctx, m.Base().ID, m) {
			added++
			continue
		}
		logger.FromContext(ctx).Warn(LogMsgPlantRejected, "id", m.Base().ID, "kind", m.Kind())
	}
	return added, nil
}
