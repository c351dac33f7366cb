package plant

import (
	"math"

	"github.com/osse101/CropProfit_Go/internal/domain"
)

// WindowSeasons returns the seasons a plant planted now keeps growing
// through: the current one followed by every directly following calendar
// season it supports. The run stops at the first unsupported season and
// never wraps past winter. Greenhouse yields four greenhouse entries.
func WindowSeasons(seasons domain.SeasonSet, current domain.Season) []domain.Season {
	if current == domain.SeasonGreenhouse {
		return []domain.Season{
			domain.SeasonGreenhouse, domain.SeasonGreenhouse,
			domain.SeasonGreenhouse, domain.SeasonGreenhouse,
		}
	}
	if !seasons.Contains(current) {
		return nil
	}
	window := []domain.Season{current}
	for next := current + 1; next <= domain.SeasonWinter && seasons.Contains(next); next++ {
		window = append(window, next)
	}
	return window
}

// AvailableDays is the number of days left to grow a plant with the given
// season set, starting on day of season.
func AvailableDays(seasons domain.SeasonSet, season domain.Season, day int) int {
	if season == domain.SeasonGreenhouse {
		return domain.GreenhouseWindow
	}
	window := WindowSeasons(seasons, season)
	if len(window) == 0 {
		return 0
	}
	return (len(window)-1)*domain.DaysPerSeason + (domain.DaysPerSeason - day)
}

// EffectiveGrowthDays shortens growthDays by the speed modifier.
// The result is never below one day.
func EffectiveGrowthDays(growthDays int, speed float64) int {
	removed := int(math.Ceil(float64(growthDays) * speed))
	return max(growthDays-removed, 1)
}

// HarvestCount is the number of harvests that fit in available days.
func HarvestCount(available, growing, regrow int) int {
	if available <= 0 || available < growing {
		return 0
	}
	if regrow > 0 {
		return 1 + (available-growing)/regrow
	}
	if growing <= 0 {
		return 0
	}
	return available / growing
}
