package domain

// Modification is how a price modifier combines with the running price.
type Modification string

const (
	ModificationAdd      Modification = "add"
	ModificationSubtract Modification = "subtract"
	ModificationMultiply Modification = "multiply"
	ModificationDivide   Modification = "divide"
	ModificationSet      Modification = "set"
)

// ModifierMode decides how several modifiers in one list are combined.
type ModifierMode string

const (
	ModifierModeStack   ModifierMode = "stack"
	ModifierModeMinimum ModifierMode = "minimum"
	ModifierModeMaximum ModifierMode = "maximum"
)

// PriceModifier adjusts a shop price. When RandomAmount is non-empty one of
// its values replaces Amount, chosen with the day's random source.
type PriceModifier struct {
	ID           string       `json:"id" yaml:"id"`
	Modification Modification `json:"modification" yaml:"modification" validate:"oneof=add subtract multiply divide set"`
	Amount       float64      `json:"amount" yaml:"amount"`
	RandomAmount []float64    `json:"random_amount,omitempty" yaml:"random_amount"`
}

// ShopItem is one entry of a shop's catalog.
type ShopItem struct {
	ID                       string          `json:"id" yaml:"id" validate:"required"`
	ItemID                   string          `json:"item_id" yaml:"item_id" validate:"required"`
	Price                    int             `json:"price" yaml:"price"`
	AvailableStock           int             `json:"available_stock" yaml:"available_stock"`
	IgnoreShopPriceModifiers bool            `json:"ignore_shop_price_modifiers" yaml:"ignore_shop_price_modifiers"`
	AvoidRepeat              bool            `json:"avoid_repeat" yaml:"avoid_repeat"`
	PriceModifiers           []PriceModifier `json:"price_modifiers,omitempty" yaml:"price_modifiers" validate:"dive"`
	PriceModifierMode        ModifierMode    `json:"price_modifier_mode,omitempty" yaml:"price_modifier_mode" validate:"omitempty,oneof=stack minimum maximum"`
}

// Shop is a vendor definition as supplied by the shop data provider.
type Shop struct {
	ID                string          `json:"id" yaml:"id" validate:"required"`
	Currency          int             `json:"currency" yaml:"currency" validate:"min=0"`
	PriceModifiers    []PriceModifier `json:"price_modifiers,omitempty" yaml:"price_modifiers" validate:"dive"`
	PriceModifierMode ModifierMode    `json:"price_modifier_mode,omitempty" yaml:"price_modifier_mode" validate:"omitempty,oneof=stack minimum maximum"`
	Items             []ShopItem      `json:"items" yaml:"items" validate:"dive"`
}

// StockEntry is a resolved, purchasable line of a shop for the current day.
type StockEntry struct {
	ShopID string `json:"shop_id"`
	ItemID string `json:"item_id"`
	Price  int    `json:"price"`
	Stock  int    `json:"stock"`
}
