package catalog

import "github.com/osse101/CropProfit_Go/internal/domain"

// ItemsFile is the layout of items.yaml.
type ItemsFile struct {
	Items []domain.Item `yaml:"items" validate:"dive"`
}

// CropDef describes a field crop. ID is the seed item planted to grow it.
type CropDef struct {
	ID                         string   `yaml:"id" json:"id" validate:"required"`
	Name                       string   `yaml:"name" json:"name"`
	HarvestItem                string   `yaml:"harvest_item" json:"harvest_item" validate:"required"`
	PhaseDays                  []int    `yaml:"phase_days" json:"phase_days" validate:"required,min=1,dive,min=0"`
	RegrowDays                 int      `yaml:"regrow_days" json:"regrow_days" validate:"min=-1"`
	Seasons                    []string `yaml:"seasons" json:"seasons" validate:"required,min=1,dive,season"`
	HarvestMinStack            int      `yaml:"harvest_min_stack" json:"harvest_min_stack" validate:"min=0"`
	HarvestMaxStack            int      `yaml:"harvest_max_stack" json:"harvest_max_stack" validate:"min=0"`
	HarvestMaxIncreasePerLevel float64  `yaml:"harvest_max_increase_per_farming_level" json:"harvest_max_increase_per_farming_level" validate:"min=0"`
	ExtraHarvestChance         float64  `yaml:"extra_harvest_chance" json:"extra_harvest_chance" validate:"min=0,max=1"`
	Paddy                      bool     `yaml:"paddy" json:"paddy"`
	AffectByQuality            *bool    `yaml:"affect_by_quality" json:"affect_by_quality,omitempty"`
	AffectByFertilizer         *bool    `yaml:"affect_by_fertilizer" json:"affect_by_fertilizer,omitempty"`
}

// GrowthDays is the sum of all growth phases.
func (d CropDef) GrowthDays() int {
	total := 0
	for _, days := range d.PhaseDays {
		total += days
	}
	return total
}

// CropsFile is the layout of crops.yaml.
type CropsFile struct {
	Crops []CropDef `yaml:"crops" validate:"dive"`
}

// DropDef is one weighted product of a tree or bush.
type DropDef struct {
	ItemID   string  `yaml:"item_id" validate:"required"`
	Chance   float64 `yaml:"chance" validate:"min=0,max=1"`
	Quantity int     `yaml:"quantity" validate:"min=0"`
	Season   string  `yaml:"season" validate:"omitempty,season"`
}

// FruitTreeDef describes a fruit tree. ID is the sapling item.
type FruitTreeDef struct {
	ID      string    `yaml:"id" validate:"required"`
	Name    string    `yaml:"name"`
	Seasons []string  `yaml:"seasons" validate:"required,min=1,dive,season"`
	Fruit   []DropDef `yaml:"fruit" validate:"required,min=1,dive"`
}

// FruitTreesFile is the layout of fruit_trees.yaml.
type FruitTreesFile struct {
	FruitTrees []FruitTreeDef `yaml:"fruit_trees" validate:"dive"`
}

// BushDef describes a custom bush.
type BushDef struct {
	ID                  string    `yaml:"id" validate:"required"`
	Name                string    `yaml:"name"`
	SeedID              string    `yaml:"seed_id"`
	AgeToProduce        int       `yaml:"age_to_produce" validate:"min=0"`
	DayToBeginProducing int       `yaml:"day_to_begin_producing" validate:"min=0,max=27"`
	Seasons             []string  `yaml:"seasons" validate:"required,min=1,dive,season"`
	Drops               []DropDef `yaml:"drops" validate:"required,min=1,dive"`
}

// BushesFile is the layout of bushes.yaml.
type BushesFile struct {
	Bushes []BushDef `yaml:"bushes" validate:"dive"`
}

// ShopsFile is the layout of shops.yaml.
type ShopsFile struct {
	Shops []domain.Shop `yaml:"shops" validate:"dive"`
}
