// Package handler holds the HTTP handlers of the crop profit API.
package handler

import (
	"context"

	"github.com/osse101/CropProfit_Go/internal/calculator"
	"github.com/osse101/CropProfit_Go/internal/catalog"
	"github.com/osse101/CropProfit_Go/internal/domain"
)

// CropService is the part of the calculator the API drives.
type CropService interface {
	Settings() domain.Settings
	SetSettings(ctx context.Context, s domain.Settings) error
	RetrieveCropInfosFor(ctx context.Context, s domain.Settings) ([]domain.CropInfo, error)
	SearchCrops(query string) []calculator.Match
}

// CropRegistrar registers crops that are not part of the loaded catalog.
type CropRegistrar interface {
	AddCrop(ctx context.Context, def catalog.CropDef, harvest, seed domain.Item, affectByQuality, affectByFertilizer bool) (bool, error)
}

// PriceService answers seed price queries and controls the price caches.
type PriceService interface {
	CheapestSeedPrice(ctx context.Context, itemID string) (int, error)
	ExpensiveSeedPrice(ctx context.Context, itemID string) (int, error)
	SpecificShopPrice(ctx context.Context, itemID, shopID string) (int, error)
	InvalidateCaches(ctx context.Context)
	ForceRebuildCache(ctx context.Context) error
}
