package domain

import (
	"encoding/json"
	"math"
)

// QualityChances are the probabilities of each produce quality tier.
type QualityChances struct {
	Base    float64 `json:"base"`
	Silver  float64 `json:"silver"`
	Gold    float64 `json:"gold"`
	Iridium float64 `json:"iridium"`
}

// BaseQualityOnly is the distribution of plants that never roll quality.
var BaseQualityOnly = QualityChances{Base: 1}

// Slice returns the chances indexed like Settings.PriceMultipliers.
func (q QualityChances) Slice() [QualityTierCount]float64 {
	return [QualityTierCount]float64{q.Base, q.Silver, q.Gold, q.Iridium}
}

// Sum is the total probability mass.
func (q QualityChances) Sum() float64 {
	return q.Base + q.Silver + q.Gold + q.Iridium
}

// CropInfo is the computed economics of one plant for one Settings snapshot.
// Profit fields are net of seed and fertilizer cost.
type CropInfo struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	Kind                 string         `json:"kind"`
	TotalProfit          float64        `json:"total_profit"`
	ProfitPerDay         float64        `json:"profit_per_day"`
	TotalSeedLoss        float64        `json:"total_seed_loss"`
	SeedLossPerDay       float64        `json:"seed_loss_per_day"`
	TotalFertilizerLoss  float64        `json:"total_fertilizer_loss"`
	FertilizerLossPerDay float64        `json:"fertilizer_loss_per_day"`
	ProduceType          ProduceType    `json:"produce_type"`
	Duration             int            `json:"duration"`
	TotalHarvests        int            `json:"total_harvests"`
	GrowthTime           int            `json:"growth_time"`
	RegrowthTime         int            `json:"regrowth_time"`
	ProductCount         int            `json:"product_count"`
	ChanceOfExtraProduct float64        `json:"chance_of_extra_product"`
	ExtraFromLevel       int            `json:"extra_from_level"`
	Quality              QualityChances `json:"quality"`
}

// Equal compares field-wise with a 1e-4 tolerance on floating fields.
func (c CropInfo) Equal(other CropInfo) bool {
	return c.ID == other.ID &&
		c.Name == other.Name &&
		c.Kind == other.Kind &&
		c.ProduceType == other.ProduceType &&
		c.Duration == other.Duration &&
		c.TotalHarvests == other.TotalHarvests &&
		c.GrowthTime == other.GrowthTime &&
		c.RegrowthTime == other.RegrowthTime &&
		c.ProductCount == other.ProductCount &&
		c.ExtraFromLevel == other.ExtraFromLevel &&
		nearlyEqual(c.TotalProfit, other.TotalProfit) &&
		nearlyEqual(c.ProfitPerDay, other.ProfitPerDay) &&
		nearlyEqual(c.TotalSeedLoss, other.TotalSeedLoss) &&
		nearlyEqual(c.SeedLossPerDay, other.SeedLossPerDay) &&
		nearlyEqual(c.TotalFertilizerLoss, other.TotalFertilizerLoss) &&
		nearlyEqual(c.FertilizerLossPerDay, other.FertilizerLossPerDay) &&
		nearlyEqual(c.ChanceOfExtraProduct, other.ChanceOfExtraProduct) &&
		nearlyEqual(c.Quality.Base, other.Quality.Base) &&
		nearlyEqual(c.Quality.Silver, other.Quality.Silver) &&
		nearlyEqual(c.Quality.Gold, other.Quality.Gold) &&
		nearlyEqual(c.Quality.Iridium, other.Quality.Iridium)
}

// String renders the record as JSON.
func (c CropInfo) String() string {
	data, err := json.Marshal(c)
	if err != nil {
		return "{}"
	}
	return string(data)
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < DefaultEpsilon
}
