package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettings_Validate(t *testing.T) {
	valid := DefaultSettings()

	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"defaults", func(*Settings) {}, false},
		{"last day", func(s *Settings) { s.Day = 27 }, false},
		{"day past season", func(s *Settings) { s.Day = 28 }, true},
		{"negative day", func(s *Settings) { s.Day = -1 }, true},
		{"unknown season", func(s *Settings) { s.Season = Season(9) }, true},
		{"unknown fertilizer", func(s *Settings) { s.Fertilizer = FertilizerQuality(7) }, true},
		{"keg produce", func(s *Settings) { s.ProduceType = "keg" }, true},
		{"negative level", func(s *Settings) { s.FarmingLevel = -2 }, true},
		{"negative budget", func(s *Settings) { s.MaxMoney = -1 }, true},
		{"negative multiplier", func(s *Settings) { s.PriceMultipliers[2] = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSettings)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSettings_BaseStatsIgnorePerks(t *testing.T) {
	s := DefaultSettings()
	s.FarmingLevel = 10
	s.Professions = []Profession{ProfessionTiller, ProfessionAgriculturist}

	assert.Equal(t, 10, s.EffectiveFarmingLevel())
	assert.True(t, s.HasProfession(ProfessionTiller))

	s.UseBaseStats = true
	assert.Equal(t, 0, s.EffectiveFarmingLevel())
	assert.False(t, s.HasProfession(ProfessionTiller))
	assert.False(t, s.HasProfession(ProfessionAgriculturist))
}

func TestSettings_Normalize(t *testing.T) {
	s := Settings{}.Normalize()
	assert.Equal(t, ProduceRaw, s.ProduceType)
	assert.Equal(t, DefaultPriceMultipliers, s.PriceMultipliers)
}

func TestFertilizer(t *testing.T) {
	assert.Equal(t, 200, FertilizerDeluxe.Price())
	assert.Equal(t, 150, FertilizerDeluxeSpeedGro.Price())
	assert.Equal(t, 0, FertilizerNone.Price())

	assert.Equal(t, 0, FertilizerHyperSpeedGro.QualityLevel())
	assert.Equal(t, 2, FertilizerQualityTier.QualityLevel())

	assert.InDelta(t, 0.33, FertilizerHyperSpeedGro.SpeedBonus(), 1e-9)
	assert.Zero(t, FertilizerDeluxe.SpeedBonus())

	assert.True(t, FertilizerDeluxe.AtLeastDeluxe())
	assert.False(t, FertilizerHyperSpeedGro.AtLeastDeluxe())

	got, err := ParseFertilizer("Deluxe-Speed-Gro")
	assert.NoError(t, err)
	assert.Equal(t, FertilizerDeluxeSpeedGro, got)

	_, err = ParseFertilizer("manure")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
