// Package calculator holds the registered plants and ranks them by profit
// for the active simulation settings.
package calculator

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/CropProfit_Go/internal/domain"
	"github.com/osse101/CropProfit_Go/internal/logger"
	"github.com/osse101/CropProfit_Go/internal/metrics"
	"github.com/osse101/CropProfit_Go/internal/plant"
)

// Calculator is the profit aggregator. Plants are kept in registration
// order, which is also the tie-break order of the ranking.
type Calculator struct {
	mu       sync.RWMutex
	crops    map[string]plant.Model
	order    []string
	settings domain.Settings
	prices   plant.SeedPricer
}

// New creates a calculator with default settings. prices may be nil, in
// which case seeds are treated as free.
func New(prices plant.SeedPricer) *Calculator {
	return &Calculator{
		crops:    make(map[string]plant.Model),
		settings: domain.DefaultSettings(),
		prices:   prices,
	}
}

// AddCrop registers m under id. A duplicate id is logged and ignored.
func (c *Calculator) AddCrop(ctx context.Context, id string, m plant.Model) bool {
	log := logger.FromContext(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.crops[id]; exists {
		log.Warn(LogMsgDuplicateCrop, "id", id, "error", domain.ErrDuplicateCrop)
		return false
	}
	c.crops[id] = m
	c.order = append(c.order, id)
	metrics.CropsRegistered.Set(float64(len(c.order)))
	log.Debug(LogMsgCropRegistered, "id", id, "kind", m.Kind())
	return true
}

// ClearCrops removes every registered plant.
func (c *Calculator) ClearCrops(ctx context.Context) {
	c.mu.Lock()
	c.crops = make(map[string]plant.Model)
	c.order = nil
	c.mu.Unlock()
	metrics.CropsRegistered.Set(0)
	logger.FromContext(ctx).Info(LogMsgCropsCleared)
}

// Len returns the number of registered plants.
func (c *Calculator) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// SetSettings validates and replaces the active scenario.
func (c *Calculator) SetSettings(ctx context.Context, s domain.Settings) error {
	s = s.Normalize()
	if err := s.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	c.settings = s
	c.mu.Unlock()
	logger.FromContext(ctx).Info(LogMsgSettingsChanged,
		"season", s.Season,
		"day", s.Day,
		"fertilizer", s.Fertilizer)
	return nil
}

// Settings returns a copy of the active scenario.
func (c *Calculator) Settings() domain.Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

func (c *Calculator) snapshot() ([]plant.Model, domain.Settings) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	models := make([]plant.Model, 0, len(c.order))
	for _, id := range c.order {
		models = append(models, c.crops[id])
	}
	return models, c.settings
}

// RetrieveCropInfos evaluates every plant under the active settings and
// returns them ranked by profit per day, best first.
func (c *Calculator) RetrieveCropInfos(ctx context.Context) ([]domain.CropInfo, error) {
	models, s := c.snapshot()
	return c.rank(ctx, models, s)
}

// RetrieveCropInfosFor ranks the plants under s without touching the active
// settings.
func (c *Calculator) RetrieveCropInfosFor(ctx context.Context, s domain.Settings) ([]domain.CropInfo, error) {
	s = s.Normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	models, _ := c.snapshot()
	return c.rank(ctx, models, s)
}

// rank drops plants that cannot be harvested in the window and, when seeds
// are paid for, those whose seeds exceed the budget. Ties keep registration
// order.
func (c *Calculator) rank(ctx context.Context, models []plant.Model, s domain.Settings) ([]domain.CropInfo, error) {
	start := time.Now()
	infos := make([]domain.CropInfo, 0, len(models))
	for _, m := range models {
		info, err := plant.Evaluate(ctx, m, s, c.prices)
		if err != nil {
			metrics.RankingsTotal.WithLabelValues(metrics.ResultError).Inc()
			return nil, fmt.Errorf("%s %s: %w", ErrMsgEvaluateFailed, m.Base().ID, err)
		}
		if info.TotalHarvests < 1 {
			continue
		}
		if s.PayForSeeds && info.TotalSeedLoss > float64(s.MaxMoney) {
			continue
		}
		infos = append(infos, info)
	}
	slices.SortStableFunc(infos, func(a, b domain.CropInfo) int {
		switch {
		case a.ProfitPerDay > b.ProfitPerDay:
			return -1
		case a.ProfitPerDay < b.ProfitPerDay:
			return 1
		}
		return 0
	})

	elapsed := time.Since(start)
	metrics.RankingsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	metrics.RankingDuration.Observe(elapsed.Seconds())
	logger.FromContext(ctx).Debug(LogMsgRankingComputed,
		"evaluated", len(models),
		"ranked", len(infos),
		"duration", elapsed)
	return infos, nil
}

// RetrieveCropsAsOrderedList returns the plants growable in the active
// season, ordered by harvest price, highest first.
func (c *Calculator) RetrieveCropsAsOrderedList() []plant.Model {
	models, s := c.snapshot()
	out := models[:0]
	for _, m := range models {
		if s.Season == domain.SeasonGreenhouse || m.Base().Seasons.Contains(s.Season) {
			out = append(out, m)
		}
	}
	slices.SortStableFunc(out, func(a, b plant.Model) int {
		return b.Price(s.Season) - a.Price(s.Season)
	})
	return out
}

// Crop returns the plant registered under id.
func (c *Calculator) Crop(id string) (plant.Model, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.crops[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCropNotFound, id)
	}
	return m, nil
}

// Match is a plant found by name together with how close the name was.
type Match struct {
	Model plant.Model
	Score float64
}

// FindCrop looks a plant up by display name. Exact matches win, then
// prefixes, then names within a small edit distance.
func (c *Calculator) FindCrop(name string) (plant.Model, error) {
	matches := c.SearchCrops(name)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrCropNotFound, name)
	}
	return matches[0].Model, nil
}

// SearchCrops returns every plant whose name resembles query, best first.
func (c *Calculator) SearchCrops(query string) []Match {
	query = normalizeName(query)
	if query == "" {
		return nil
	}
	models, _ := c.snapshot()

	var matches []Match
	for _, m := range models {
		name := normalizeName(m.Base().Name)
		var score float64
		switch {
		case name == query:
			score = scoreExact
		case strings.HasPrefix(name, query) && len(query) >= 2:
			score = scorePrefix
		case len(query) >= minFuzzyLen:
			dist := levenshtein.ComputeDistance(query, name)
			if dist > editLimit(len(name)) {
				continue
			}
			score = scoreFuzzy - scorePerEdit*float64(dist)
		default:
			continue
		}
		matches = append(matches, Match{Model: m, Score: score})
	}
	slices.SortStableFunc(matches, func(a, b Match) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	return matches
}

func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func editLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}
