package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CropProfit_Go/internal/calculator"
	"github.com/osse101/CropProfit_Go/internal/catalog"
	"github.com/osse101/CropProfit_Go/internal/domain"
)

type MockCropService struct {
	mock.Mock
}

func (m *MockCropService) Settings() domain.Settings {
	return m.Called().Get(0).(domain.Settings)
}

func (m *MockCropService) SetSettings(ctx context.Context, s domain.Settings) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockCropService) RetrieveCropInfosFor(ctx context.Context, s domain.Settings) ([]domain.CropInfo, error) {
	args := m.Called(ctx, s)
	infos, _ := args.Get(0).([]domain.CropInfo)
	return infos, args.Error(1)
}

func (m *MockCropService) SearchCrops(query string) []calculator.Match {
	matches, _ := m.Called(query).Get(0).([]calculator.Match)
	return matches
}

type MockCropRegistrar struct {
	mock.Mock
}

func (m *MockCropRegistrar) AddCrop(ctx context.Context, def catalog.CropDef, harvest, seed domain.Item, affectByQuality, affectByFertilizer bool) (bool, error) {
	args := m.Called(ctx, def, harvest, seed, affectByQuality, affectByFertilizer)
	return args.Bool(0), args.Error(1)
}

type MockPriceService struct {
	mock.Mock
}

func (m *MockPriceService) CheapestSeedPrice(ctx context.Context, itemID string) (int, error) {
	args := m.Called(ctx, itemID)
	return args.Int(0), args.Error(1)
}

func (m *MockPriceService) ExpensiveSeedPrice(ctx context.Context, itemID string) (int, error) {
	args := m.Called(ctx, itemID)
	return args.Int(0), args.Error(1)
}

func (m *MockPriceService) SpecificShopPrice(ctx context.Context, itemID, shopID string) (int, error) {
	args := m.Called(ctx, itemID, shopID)
	return args.Int(0), args.Error(1)
}

func (m *MockPriceService) InvalidateCaches(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockPriceService) ForceRebuildCache(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
