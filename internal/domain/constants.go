package domain

// Calendar constants
const (
	DaysPerSeason      = 28
	SeasonsPerYear     = 4
	GreenhouseWindow   = DaysPerSeason * SeasonsPerYear
	MaxFarmingLevel    = 14
	DefaultEpsilon     = 1e-4
	QualityTierCount   = 4
	TillerBonus        = 1.1
	AgriculturistBonus = 0.1
	PaddyBonus         = 0.25
)

// Season names as they appear in data files and the API
const (
	SeasonNameSpring     = "spring"
	SeasonNameSummer     = "summer"
	SeasonNameFall       = "fall"
	SeasonNameWinter     = "winter"
	SeasonNameGreenhouse = "greenhouse"
)

// Fertilizer names
const (
	FertilizerNameNone           = "none"
	FertilizerNameBasic          = "basic"
	FertilizerNameQuality        = "quality"
	FertilizerNameDeluxe         = "deluxe"
	FertilizerNameSpeedGro       = "speed_gro"
	FertilizerNameDeluxeSpeedGro = "deluxe_speed_gro"
	FertilizerNameHyperSpeedGro  = "hyper_speed_gro"
)

// Produce types
const (
	ProduceRaw ProduceType = "raw"
)

// Plant kinds
const (
	KindCrop       = "crop"
	KindFruitTree  = "fruit_tree"
	KindCustomBush = "custom_bush"
)

// Shop currencies
const (
	CurrencyMoney = 0
)
