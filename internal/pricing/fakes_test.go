package pricing

import (
	"context"
	"sync"

	"github.com/osse101/CropProfit_Go/internal/domain"
)

type fakeSeedSource struct {
	mu     sync.Mutex
	prices map[string]int
	err    error
	calls  int
}

func (f *fakeSeedSource) LoadSeedPrices(context.Context) (map[string]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string]int, len(f.prices))
	for k, v := range f.prices {
		out[k] = v
	}
	return out, nil
}

func (f *fakeSeedSource) set(prices map[string]int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prices = prices
	f.err = err
}

type fakeShopProvider struct {
	mu    sync.Mutex
	shops []domain.Shop
	err   error
	calls int
}

func (f *fakeShopProvider) Shops(context.Context) ([]domain.Shop, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.shops, f.err
}

func (f *fakeShopProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type itemMap map[string]domain.Item

func (m itemMap) Item(id string) (domain.Item, bool) {
	item, ok := m[id]
	return item, ok
}

var testItems = itemMap{
	"(O)472": {ID: "(O)472", Name: "Parsnip Seeds", SellPrice: 10},
	"(O)473": {ID: "(O)473", Name: "Bean Starter", SellPrice: 30},
	"(O)X":   {ID: "(O)X", Name: "Mystery Seeds", SellPrice: 5},
}
