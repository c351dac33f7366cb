package pricing

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CropProfit_Go/internal/domain"
)

func TestResolveStock(t *testing.T) {
	shops := []domain.Shop{
		{
			ID:       "SeedShop",
			Currency: domain.CurrencyMoney,
			Items: []domain.ShopItem{
				{ID: "parsnip", ItemID: "(O)472", Price: 20, AvailableStock: -1},
				{ID: "bean", ItemID: "(O)473", AvailableStock: 5},
				{ID: "parsnip", ItemID: "(O)472", Price: 1, AvailableStock: -1},
				{ID: "ghost", ItemID: "(O)999", Price: 1, AvailableStock: -1},
				{ID: "sold-out", ItemID: "(O)X", Price: 3, AvailableStock: 0},
			},
		},
		{
			ID:       "Casino",
			Currency: 1,
			Items:    []domain.ShopItem{{ID: "parsnip", ItemID: "(O)472", Price: 1, AvailableStock: -1}},
		},
	}

	table := ResolveStock(context.Background(), shops, testItems, rand.New(rand.NewPCG(1, 1)))

	assert.Equal(t, []string{"SeedShop"}, table.ShopIDs())
	_, ok := table.Shop("Casino")
	assert.False(t, ok, "non-money shops are skipped")

	entries, ok := table.Shop("SeedShop")
	require.True(t, ok)
	require.Len(t, entries, 2)

	assert.Equal(t, domain.StockEntry{ShopID: "SeedShop", ItemID: "(O)472", Price: 20, Stock: math.MaxInt}, entries[0])
	assert.Equal(t, domain.StockEntry{ShopID: "SeedShop", ItemID: "(O)473", Price: 60, Stock: 5}, entries[1],
		"missing price defaults to twice the sell price")
	assert.Equal(t, 2, table.Len())
}

func TestResolveStock_AvoidRepeat(t *testing.T) {
	shops := []domain.Shop{{
		ID: "Traveler",
		Items: []domain.ShopItem{
			{ID: "a", ItemID: "(O)472", Price: 20, AvailableStock: 1},
			{ID: "b", ItemID: "(O)472", Price: 40, AvailableStock: 1, AvoidRepeat: true},
			{ID: "c", ItemID: "(O)472", Price: 60, AvailableStock: 1},
		},
	}}

	table := ResolveStock(context.Background(), shops, testItems, nil)
	entries, _ := table.Shop("Traveler")
	require.Len(t, entries, 2)
	assert.Equal(t, 20, entries[0].Price)
	assert.Equal(t, 60, entries[1].Price)
}

func TestResolveStock_PriceModifiers(t *testing.T) {
	shops := []domain.Shop{{
		ID: "Pierre",
		PriceModifiers: []domain.PriceModifier{
			{Modification: domain.ModificationMultiply, Amount: 2},
		},
		Items: []domain.ShopItem{
			{ID: "a", ItemID: "(O)472", Price: 20, AvailableStock: -1},
			{ID: "b", ItemID: "(O)473", Price: 20, AvailableStock: -1, IgnoreShopPriceModifiers: true},
			{
				ID: "c", ItemID: "(O)X", Price: 20, AvailableStock: -1,
				PriceModifiers: []domain.PriceModifier{{Modification: domain.ModificationSubtract, Amount: 5}},
			},
		},
	}}

	table := ResolveStock(context.Background(), shops, testItems, nil)
	entries, _ := table.Shop("Pierre")
	require.Len(t, entries, 3)
	assert.Equal(t, 40, entries[0].Price)
	assert.Equal(t, 20, entries[1].Price)
	assert.Equal(t, 35, entries[2].Price, "shop modifiers apply before entry modifiers")
}

func TestApplyModifiers(t *testing.T) {
	mods := []domain.PriceModifier{
		{Modification: domain.ModificationAdd, Amount: 10},
		{Modification: domain.ModificationMultiply, Amount: 3},
		{Modification: domain.ModificationDivide, Amount: 2},
	}

	assert.InDelta(t, 165, ApplyModifiers(100, mods, domain.ModifierModeStack, nil), 1e-9)
	assert.InDelta(t, 165, ApplyModifiers(100, mods, "", nil), 1e-9, "stack is the default")
	assert.InDelta(t, 50, ApplyModifiers(100, mods, domain.ModifierModeMinimum, nil), 1e-9)
	assert.InDelta(t, 300, ApplyModifiers(100, mods, domain.ModifierModeMaximum, nil), 1e-9)

	assert.InDelta(t, 7, ApplyModifiers(100, []domain.PriceModifier{{Modification: domain.ModificationSet, Amount: 7}}, "", nil), 1e-9)
	assert.InDelta(t, 100, ApplyModifiers(100, []domain.PriceModifier{{Modification: domain.ModificationDivide}}, "", nil), 1e-9)
	assert.InDelta(t, 100, ApplyModifiers(100, nil, "", nil), 1e-9)
}

func TestApplyModifiers_RandomAmountIsDeterministicPerDay(t *testing.T) {
	mods := []domain.PriceModifier{{
		Modification: domain.ModificationAdd,
		RandomAmount: []float64{1, 2, 3, 4, 5, 6, 7, 8},
	}}

	clock := NewDayClock(42, 10)
	first := ApplyModifiers(0, mods, "", clock.Rand())
	second := ApplyModifiers(0, mods, "", clock.Rand())
	assert.Equal(t, first, second)
	assert.Contains(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, first)
}
