// Command rank prints the crop profitability ranking for one scenario.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/CropProfit_Go/internal/calculator"
	"github.com/osse101/CropProfit_Go/internal/catalog"
	"github.com/osse101/CropProfit_Go/internal/domain"
	"github.com/osse101/CropProfit_Go/internal/logger"
	"github.com/osse101/CropProfit_Go/internal/pricing"
)

type options struct {
	dataDir    string
	seedsPath  string
	gameID     uint64
	daysPlayed uint64
	limit      int
	search     string

	season        string
	day           int
	fertilizer    string
	paySeeds      bool
	payFertilizer bool
	maxMoney      int
	baseStats     bool
	level         int
	tiller        bool
	agriculturist bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("rank", flag.ContinueOnError)
	fs.StringVar(&o.dataDir, "data", "configs/data", "catalog data directory")
	fs.StringVar(&o.seedsPath, "seeds", "configs/data/seed_prices.json", "static seed price table")
	fs.Uint64Var(&o.gameID, "game-id", 0, "save identifier seeding shop randomness")
	fs.Uint64Var(&o.daysPlayed, "days-played", 0, "in-game day seeding shop randomness")
	fs.IntVar(&o.limit, "limit", 0, "print at most this many crops (0 for all)")
	fs.StringVar(&o.search, "search", "", "look up crops by name instead of ranking")

	fs.StringVar(&o.season, "season", "spring", "spring, summer, fall, winter or greenhouse")
	fs.IntVar(&o.day, "day", 0, "day of the season, 0 to 27")
	fs.StringVar(&o.fertilizer, "fertilizer", "none", "fertilizer tier")
	fs.BoolVar(&o.paySeeds, "pay-seeds", false, "subtract seed cost")
	fs.BoolVar(&o.payFertilizer, "pay-fertilizer", false, "subtract fertilizer cost")
	fs.IntVar(&o.maxMoney, "max-money", 0, "budget for seeds when paying for them")
	fs.BoolVar(&o.baseStats, "base-stats", false, "ignore farming level and professions")
	fs.IntVar(&o.level, "level", 0, "farming level")
	fs.BoolVar(&o.tiller, "tiller", false, "tiller profession")
	fs.BoolVar(&o.agriculturist, "agriculturist", false, "agriculturist profession")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	return o, nil
}

func (o options) settings() (domain.Settings, error) {
	season, err := domain.ParseSeason(o.season)
	if err != nil {
		return domain.Settings{}, err
	}
	fertilizer, err := domain.ParseFertilizer(o.fertilizer)
	if err != nil {
		return domain.Settings{}, err
	}

	s := domain.DefaultSettings()
	s.Season = season
	s.Day = o.day
	s.Fertilizer = fertilizer
	s.PayForSeeds = o.paySeeds
	s.PayForFertilizer = o.payFertilizer
	s.MaxMoney = o.maxMoney
	s.UseBaseStats = o.baseStats
	s.FarmingLevel = o.level
	if o.tiller {
		s.Professions = append(s.Professions, domain.ProfessionTiller)
	}
	if o.agriculturist {
		s.Professions = append(s.Professions, domain.ProfessionAgriculturist)
	}
	return s, s.Validate()
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	logger.InitLoggerWithWriter(logger.CLIConfig(), os.Stderr)

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "rank: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	settings, err := opts.settings()
	if err != nil {
		return err
	}

	cat, err := catalog.NewLoader(opts.dataDir, nil).Load(ctx)
	if err != nil {
		return err
	}
	accessor, err := pricing.NewAccessor(ctx, catalog.NewFileSeedPriceSource(opts.seedsPath, nil),
		cat, cat.Items, pricing.NewDayClock(opts.gameID, opts.daysPlayed), pricing.Options{})
	if err != nil {
		return err
	}

	calc := calculator.New(accessor)
	if _, err := cat.Populate(ctx, calc); err != nil {
		return err
	}

	if opts.search != "" {
		return printMatches(out, calc.SearchCrops(opts.search))
	}

	infos, err := calc.RetrieveCropInfosFor(ctx, settings)
	if err != nil {
		return err
	}
	if opts.limit > 0 && len(infos) > opts.limit {
		infos = infos[:opts.limit]
	}
	return printRanking(out, infos)
}

func printRanking(out io.Writer, infos []domain.CropInfo) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(tw, "#\tCrop\tKind\tHarvests\tProfit\tProfit/day\tSeeds\t")
	for i, info := range infos {
		p.Fprintf(tw, "%d\t%s\t%s\t%d\t%.0f\t%.2f\t%.0f\t\n",
			i+1, info.Name, info.Kind, info.TotalHarvests,
			info.TotalProfit, info.ProfitPerDay, info.TotalSeedLoss)
	}
	return tw.Flush()
}

func printMatches(out io.Writer, matches []calculator.Match) error {
	if len(matches) == 0 {
		_, err := fmt.Fprintln(out, "no matching crops")
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Crop\tID\tScore")
	for _, m := range matches {
		base := m.Model.Base()
		fmt.Fprintf(tw, "%s\t%s\t%.2f\n", base.Name, base.ID, m.Score)
	}
	return tw.Flush()
}
