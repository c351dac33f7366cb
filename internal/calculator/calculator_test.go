package calculator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CropProfit_Go/internal/domain"
	"github.com/osse101/CropProfit_Go/internal/plant"
)

type mockSeedPricer struct {
	mock.Mock
}

func (m *mockSeedPricer) CheapestSeedPrice(ctx context.Context, itemID string) (int, error) {
	args := m.Called(ctx, itemID)
	return args.Int(0), args.Error(1)
}

func newCrop(t *testing.T, id, name string, days, regrow, price int, seasons ...domain.Season) *plant.Crop {
	t.Helper()
	drops, err := plant.NewDropTable(plant.Drop{Item: domain.Item{ID: "(O)" + id, SellPrice: price}, Quantity: 1, Chance: 1})
	require.NoError(t, err)
	c, err := plant.NewCrop(plant.Plant{
		ID:                 id,
		Name:               name,
		Days:               days,
		RegrowDays:         regrow,
		MinHarvests:        1,
		MaxHarvests:        1,
		Seasons:            domain.MustSeasonSet(seasons...),
		SeedID:             id,
		AffectByFertilizer: true,
	}, false)
	require.NoError(t, err)
	c.SetDrops(drops)
	return c
}

func ids(infos []domain.CropInfo) []string {
	out := make([]string, len(infos))
	for i, info := range infos {
		out[i] = info.ID
	}
	return out
}

func TestCalculator_AddCrop(t *testing.T) {
	ctx := context.Background()
	calc := New(nil)

	assert.True(t, calc.AddCrop(ctx, "parsnip", newCrop(t, "parsnip", "Parsnip", 4, 0, 35, domain.SeasonSpring)))
	assert.False(t, calc.AddCrop(ctx, "parsnip", newCrop(t, "parsnip", "Other", 1, 0, 1, domain.SeasonSpring)))
	assert.Equal(t, 1, calc.Len())

	m, err := calc.Crop("parsnip")
	require.NoError(t, err)
	assert.Equal(t, "Parsnip", m.Base().Name)

	_, err = calc.Crop("missing")
	assert.ErrorIs(t, err, domain.ErrCropNotFound)
}

func TestCalculator_RetrieveCropInfos_Ranking(t *testing.T) {
	ctx := context.Background()
	calc := New(nil)
	calc.AddCrop(ctx, "cheap", newCrop(t, "cheap", "Cheap", 4, 0, 10, domain.SeasonSpring))
	calc.AddCrop(ctx, "rich", newCrop(t, "rich", "Rich", 4, 0, 100, domain.SeasonSpring))
	calc.AddCrop(ctx, "twin_a", newCrop(t, "twin_a", "Twin A", 4, 0, 50, domain.SeasonSpring))
	calc.AddCrop(ctx, "twin_b", newCrop(t, "twin_b", "Twin B", 4, 0, 50, domain.SeasonSpring))
	calc.AddCrop(ctx, "slow", newCrop(t, "slow", "Slow", 30, 0, 1000, domain.SeasonSpring))
	calc.AddCrop(ctx, "summer", newCrop(t, "summer", "Summer", 4, 0, 1000, domain.SeasonSummer))

	infos, err := calc.RetrieveCropInfos(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"rich", "twin_a", "twin_b", "cheap"}, ids(infos))
	for i := 1; i < len(infos); i++ {
		assert.GreaterOrEqual(t, infos[i-1].ProfitPerDay, infos[i].ProfitPerDay)
	}
	for _, info := range infos {
		assert.GreaterOrEqual(t, info.TotalHarvests, 1)
	}
	assert.InDelta(t, 700.0, infos[0].TotalProfit, 1e-4)
	assert.InDelta(t, 25.0, infos[0].ProfitPerDay, 1e-4)
}

func TestCalculator_RetrieveCropInfos_Budget(t *testing.T) {
	ctx := context.Background()
	pricer := new(mockSeedPricer)
	pricer.On("CheapestSeedPrice", mock.Anything, "paid").Return(20, nil)
	pricer.On("CheapestSeedPrice", mock.Anything, "free").Return(0, nil)

	calc := New(pricer)
	calc.AddCrop(ctx, "paid", newCrop(t, "paid", "Paid", 4, 0, 100, domain.SeasonSpring))
	calc.AddCrop(ctx, "free", newCrop(t, "free", "Free", 4, 0, 10, domain.SeasonSpring))

	s := domain.DefaultSettings()
	s.PayForSeeds = true
	s.MaxMoney = 0
	require.NoError(t, calc.SetSettings(ctx, s))

	infos, err := calc.RetrieveCropInfos(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"free"}, ids(infos))
	for _, info := range infos {
		assert.LessOrEqual(t, info.TotalSeedLoss, 0.0)
	}

	s.MaxMoney = 140
	infos, err = calc.RetrieveCropInfosFor(ctx, s)
	require.NoError(t, err)
	require.Equal(t, []string{"paid", "free"}, ids(infos))
	assert.InDelta(t, 140.0, infos[0].TotalSeedLoss, 1e-4)
	assert.InDelta(t, 560.0, infos[0].TotalProfit, 1e-4)

	// the active settings are untouched by the one-off query
	assert.Equal(t, 0, calc.Settings().MaxMoney)
	pricer.AssertExpectations(t)
}

func TestCalculator_RetrieveCropInfos_PropagatesPriceErrors(t *testing.T) {
	ctx := context.Background()
	pricer := new(mockSeedPricer)
	pricer.On("CheapestSeedPrice", mock.Anything, "broken").Return(0, domain.ErrCacheRebuild)

	calc := New(pricer)
	calc.AddCrop(ctx, "broken", newCrop(t, "broken", "Broken", 4, 0, 100, domain.SeasonSpring))

	s := domain.DefaultSettings()
	s.PayForSeeds = true
	require.NoError(t, calc.SetSettings(ctx, s))

	_, err := calc.RetrieveCropInfos(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCacheRebuild))
	assert.Contains(t, err.Error(), ErrMsgEvaluateFailed)
}

func TestCalculator_SetSettings(t *testing.T) {
	ctx := context.Background()
	calc := New(nil)

	bad := domain.DefaultSettings()
	bad.Day = 28
	assert.ErrorIs(t, calc.SetSettings(ctx, bad), domain.ErrInvalidSettings)
	assert.Equal(t, 0, calc.Settings().Day)

	good := domain.DefaultSettings()
	good.Season = domain.SeasonFall
	good.Day = 12
	good.ProduceType = ""
	require.NoError(t, calc.SetSettings(ctx, good))
	assert.Equal(t, domain.SeasonFall, calc.Settings().Season)
	assert.Equal(t, domain.ProduceRaw, calc.Settings().ProduceType)

	_, err := calc.RetrieveCropInfosFor(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidSettings)
}

func TestCalculator_Greenhouse(t *testing.T) {
	ctx := context.Background()
	calc := New(nil)
	calc.AddCrop(ctx, "winterless", newCrop(t, "winterless", "Winterless", 30, 0, 100, domain.SeasonSpring))

	s := domain.DefaultSettings()
	s.Season = domain.SeasonGreenhouse
	s.Day = 20
	require.NoError(t, calc.SetSettings(ctx, s))

	infos, err := calc.RetrieveCropInfos(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, domain.GreenhouseWindow, infos[0].Duration)
	assert.Equal(t, 3, infos[0].TotalHarvests)
}

func TestCalculator_RetrieveCropsAsOrderedList(t *testing.T) {
	ctx := context.Background()
	calc := New(nil)
	calc.AddCrop(ctx, "low", newCrop(t, "low", "Low", 4, 0, 10, domain.SeasonSpring))
	calc.AddCrop(ctx, "fall", newCrop(t, "fall", "Fall", 4, 0, 500, domain.SeasonFall))
	calc.AddCrop(ctx, "high", newCrop(t, "high", "High", 4, 0, 90, domain.SeasonSpring, domain.SeasonSummer))

	list := calc.RetrieveCropsAsOrderedList()
	require.Len(t, list, 2)
	assert.Equal(t, "high", list[0].Base().ID)
	assert.Equal(t, "low", list[1].Base().ID)

	// registration order is not disturbed
	infos, err := calc.RetrieveCropInfos(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"high", "low"}, ids(infos))
	m, err := calc.Crop("fall")
	require.NoError(t, err)
	assert.Equal(t, "Fall", m.Base().Name)
}

func TestCalculator_ClearCrops(t *testing.T) {
	ctx := context.Background()
	calc := New(nil)
	calc.AddCrop(ctx, "a", newCrop(t, "a", "A", 4, 0, 10, domain.SeasonSpring))
	calc.ClearCrops(ctx)

	assert.Zero(t, calc.Len())
	infos, err := calc.RetrieveCropInfos(ctx)
	require.NoError(t, err)
	assert.Empty(t, infos)
	assert.True(t, calc.AddCrop(ctx, "a", newCrop(t, "a", "A", 4, 0, 10, domain.SeasonSpring)))
}

func TestCalculator_FindCrop(t *testing.T) {
	ctx := context.Background()
	calc := New(nil)
	calc.AddCrop(ctx, "24", newCrop(t, "24", "Parsnip", 4, 0, 35, domain.SeasonSpring))
	calc.AddCrop(ctx, "190", newCrop(t, "190", "Cauliflower", 12, 0, 175, domain.SeasonSpring))
	calc.AddCrop(ctx, "400", newCrop(t, "400", "Strawberry", 8, 4, 120, domain.SeasonSpring))

	tests := []struct {
		name   string
		query  string
		wantID string
	}{
		{name: "exact", query: "Parsnip", wantID: "24"},
		{name: "case and spacing", query: "  cauliFLOWER ", wantID: "190"},
		{name: "prefix", query: "straw", wantID: "400"},
		{name: "typo", query: "parsnp", wantID: "24"},
		{name: "missing letter", query: "Cauliflowr", wantID: "190"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := calc.FindCrop(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, m.Base().ID)
		})
	}

	_, err := calc.FindCrop("melon")
	assert.ErrorIs(t, err, domain.ErrCropNotFound)
	_, err = calc.FindCrop("")
	assert.ErrorIs(t, err, domain.ErrCropNotFound)
}
