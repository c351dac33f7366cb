package pricing

import (
	"context"
	"math"
	"math/rand/v2"

	"github.com/osse101/CropProfit_Go/internal/domain"
	"github.com/osse101/CropProfit_Go/internal/logger"
)

// ItemLookup resolves item definitions by qualified id.
type ItemLookup interface {
	Item(id string) (domain.Item, bool)
}

// StockTable is the resolved stock of every money shop for one day.
type StockTable struct {
	byShop map[string][]domain.StockEntry
	order  []string
}

// Shop returns the stock of one shop in catalog order.
func (t StockTable) Shop(shopID string) ([]domain.StockEntry, bool) {
	entries, ok := t.byShop[shopID]
	return entries, ok
}

// ShopIDs returns the resolved shops in provider order.
func (t StockTable) ShopIDs() []string {
	return append([]string(nil), t.order...)
}

// Len is the total number of stock entries.
func (t StockTable) Len() int {
	n := 0
	for _, entries := range t.byShop {
		n += len(entries)
	}
	return n
}

// Prices returns every positive price offered for itemID across shops.
func (t StockTable) Prices(itemID string) []int {
	var prices []int
	for _, shopID := range t.order {
		for _, e := range t.byShop[shopID] {
			if e.ItemID == itemID && e.Price > 0 {
				prices = append(prices, e.Price)
			}
		}
	}
	return prices
}

// ResolveStock turns shop definitions into purchasable entries for the day
// described by rng. Only shops that trade in money are resolved.
func ResolveStock(ctx context.Context, shops []domain.Shop, items ItemLookup, rng *rand.Rand) StockTable {
	log := logger.FromContext(ctx)
	table := StockTable{byShop: make(map[string][]domain.StockEntry, len(shops))}

	for _, shop := range shops {
		if shop.Currency != domain.CurrencyMoney {
			log.Debug(LogMsgSkippingShop, "shop", shop.ID, "currency", shop.Currency)
			continue
		}

		seenEntries := make(map[string]bool, len(shop.Items))
		seenItems := make(map[string]bool, len(shop.Items))
		entries := make([]domain.StockEntry, 0, len(shop.Items))

		for _, entry := range shop.Items {
			if seenEntries[entry.ID] {
				log.Warn(LogMsgDuplicateShopEntry, "shop", shop.ID, "entry", entry.ID)
				continue
			}
			seenEntries[entry.ID] = true

			if entry.AvoidRepeat && seenItems[entry.ItemID] {
				continue
			}

			item, ok := items.Item(entry.ItemID)
			if !ok {
				log.Warn(LogMsgShopItemUnknown, "shop", shop.ID, "item", entry.ItemID)
				continue
			}

			stock := entry.AvailableStock
			if stock < 0 {
				stock = math.MaxInt
			}
			if stock == 0 {
				continue
			}

			seenItems[entry.ItemID] = true
			entries = append(entries, domain.StockEntry{
				ShopID: shop.ID,
				ItemID: entry.ItemID,
				Price:  entryPrice(shop, entry, item, rng),
				Stock:  stock,
			})
		}

		if _, exists := table.byShop[shop.ID]; !exists {
			table.order = append(table.order, shop.ID)
		}
		table.byShop[shop.ID] = append(table.byShop[shop.ID], entries...)
	}
	return table
}

// entryPrice is the explicit entry price, or twice the item's sell price
// when none is set, adjusted by shop then entry modifiers.
func entryPrice(shop domain.Shop, entry domain.ShopItem, item domain.Item, rng *rand.Rand) int {
	price := float64(entry.Price)
	if entry.Price <= 0 {
		price = float64(item.SellPrice * 2)
	}
	if !entry.IgnoreShopPriceModifiers {
		price = ApplyModifiers(price, shop.PriceModifiers, shop.PriceModifierMode, rng)
	}
	price = ApplyModifiers(price, entry.PriceModifiers, entry.PriceModifierMode, rng)
	return max(int(price), 0)
}

// ApplyModifiers combines mods with value according to mode. Stack applies
// them in order; minimum and maximum apply each to the original value and
// keep the extreme result.
func ApplyModifiers(value float64, mods []domain.PriceModifier, mode domain.ModifierMode, rng *rand.Rand) float64 {
	if len(mods) == 0 {
		return value
	}
	switch mode {
	case domain.ModifierModeMinimum, domain.ModifierModeMaximum:
		result := applyModifier(value, mods[0], rng)
		for _, m := range mods[1:] {
			v := applyModifier(value, m, rng)
			if mode == domain.ModifierModeMinimum {
				result = math.Min(result, v)
			} else {
				result = math.Max(result, v)
			}
		}
		return result
	default:
		for _, m := range mods {
			value = applyModifier(value, m, rng)
		}
		return value
	}
}

func applyModifier(value float64, m domain.PriceModifier, rng *rand.Rand) float64 {
	amount := m.Amount
	if len(m.RandomAmount) > 0 && rng != nil {
		amount = m.RandomAmount[rng.IntN(len(m.RandomAmount))]
	}
	switch m.Modification {
	case domain.ModificationAdd:
		return value + amount
	case domain.ModificationSubtract:
		return value - amount
	case domain.ModificationMultiply:
		return value * amount
	case domain.ModificationDivide:
		if amount == 0 {
			return value
		}
		return value / amount
	case domain.ModificationSet:
		return amount
	default:
		return value
	}
}
