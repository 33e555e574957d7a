package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"BookingAdvisor/internal/analyzer"
	"BookingAdvisor/internal/config"
	"BookingAdvisor/internal/logger"
	"BookingAdvisor/internal/model"
	"BookingAdvisor/internal/report"
	"BookingAdvisor/internal/strategy"
)

type options struct {
	cfgFile       string
	format        string
	strict        bool
	verbose       bool
	maxRows       int
	priceWeight   float64
	thresholdMult float64
	earlyDays     int
}

func main() {
	err := execute(newRootCmd(), os.Args[1:])
	_ = logger.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execute runs cmd with args, keeping negative prices out of flag parsing.
func execute(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(shieldNegativePrices(cmd, args))
	return cmd.Execute()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "advisor [prices...]",
		Short: "Recommend the best day to book from a series of daily prices",
		Long: `Advisor scores each day of a daily price series and recommends when to book.

Prices are given in day order, either as separate arguments or comma-separated.

Examples:
  advisor 320 310 295 330 345 360
  advisor 320,310,295,330,345,360 --format json
  advisor best 5,100,100,100,100`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args, true, true)
		},
	}

	bestCmd := &cobra.Command{
		Use:   "best [prices...]",
		Short: "Print only the recommended day index",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBest(cmd, opts, args)
		},
	}
	analyzeCmd := &cobra.Command{
		Use:   "analyze [prices...]",
		Short: "Print descriptive statistics of the series",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args, false, true)
		},
	}
	rootCmd.AddCommand(bestCmd, analyzeCmd)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file path (default $CONFIG_PATH or configs/config.yaml)")
	flags.StringVar(&opts.format, "format", "", "output format: table, json")
	flags.BoolVar(&opts.strict, "strict", false, "reject negative or non-finite prices")
	flags.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	flags.IntVar(&opts.maxRows, "max-rows", 0, "limit the per-day table to this many rows")
	flags.Float64Var(&opts.priceWeight, "price-weight", 0.5, "weight of the price deviation factor")
	flags.Float64Var(&opts.thresholdMult, "threshold-mult", 1.5, "std multiplier for the early-deal threshold")
	flags.IntVar(&opts.earlyDays, "early-days", 10, "number of leading days checked against the early-deal threshold")

	return rootCmd
}

func run(cmd *cobra.Command, opts *options, args []string, withRecommendation, withSummary bool) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	prices, err := preparePrices(opts, args)
	if err != nil {
		return err
	}

	var rec *model.Recommendation
	if withRecommendation {
		rec = strategy.Evaluate(prices, cfg.Scoring.Params())
		logger.Log.WithFields(logrus.Fields{
			"days":     len(prices),
			"best_day": rec.BestDay,
			"reason":   rec.Reason,
		}).Debug("recommendation computed")
	}
	var summary *model.AnalysisSummary
	if withSummary {
		summary = analyzer.AnalyzePricePatterns(prices)
	}

	out := cmd.OutOrStdout()
	if cfg.Output.Format == "json" {
		return report.WriteJSON(out, report.Result{Recommendation: rec, Summary: summary.AsMap()})
	}

	if rec != nil {
		if err := report.WriteRecommendation(out, rec, cfg.Output.MaxRows); err != nil {
			return fmt.Errorf("write recommendation: %w", err)
		}
		fmt.Fprintln(out)
	}
	if withSummary {
		if err := report.WriteSummary(out, summary); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	return nil
}

func runBest(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	prices, err := preparePrices(opts, args)
	if err != nil {
		return err
	}
	if len(prices) == 0 {
		logger.Log.Warn("empty price series, day 0 is not a real recommendation")
	}
	rec := strategy.Evaluate(prices, cfg.Scoring.Params())
	_, err = fmt.Fprintln(cmd.OutOrStdout(), rec.BestDay)
	return err
}

// loadConfig resolves the config path, applies flag overrides and sets up logging.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	path := opts.cfgFile
	if path == "" {
		path = "configs/config.yaml"
		if v := os.Getenv("CONFIG_PATH"); v != "" {
			path = v
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if flags.Changed("max-rows") {
		cfg.Output.MaxRows = opts.maxRows
	}
	if flags.Changed("price-weight") {
		cfg.Scoring.PriceWeight = opts.priceWeight
	}
	if flags.Changed("threshold-mult") {
		cfg.Scoring.ThresholdStdMultiplier = opts.thresholdMult
	}
	if flags.Changed("early-days") {
		cfg.Scoring.EarlyDays = opts.earlyDays
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	logger.Log.Debugf("config loaded from %s", path)
	return cfg, nil
}

func preparePrices(opts *options, args []string) (model.PriceSeries, error) {
	prices, err := parsePrices(args)
	if err != nil {
		return nil, err
	}
	if opts.strict {
		if err := prices.Validate(); err != nil {
			return nil, fmt.Errorf("invalid prices: %w", err)
		}
	}
	return prices, nil
}

// shieldNegativePrices prefixes standalone negative numbers with a space so
// pflag reads them as positional prices instead of shorthand flags.
// parsePrices trims the space again. Values of flags that take an argument
// and everything after "--" are left alone.
func shieldNegativePrices(cmd *cobra.Command, args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if !isNegativeNumber(arg) {
			continue
		}
		if i > 0 && takesValue(cmd, args[i-1]) {
			continue
		}
		out[i] = " " + arg
	}
	return out
}

// isNegativeNumber reports whether arg is a price list starting with a minus sign.
func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
		return false
	}
	for _, field := range strings.Split(arg, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if _, err := strconv.ParseFloat(field, 64); err != nil {
			return false
		}
	}
	return true
}

// takesValue reports whether arg is a long flag without an inline value
// whose flag expects one, so the next argument belongs to it.
func takesValue(cmd *cobra.Command, arg string) bool {
	name, ok := strings.CutPrefix(arg, "--")
	if !ok || name == "" || strings.Contains(name, "=") {
		return false
	}
	f := cmd.PersistentFlags().Lookup(name)
	return f != nil && f.NoOptDefVal == ""
}

// parsePrices accepts prices as separate arguments, comma-separated lists, or both.
func parsePrices(args []string) (model.PriceSeries, error) {
	prices := model.PriceSeries{}
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			p, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("day %d: parse price %q: %w", len(prices), field, err)
			}
			prices = append(prices, p)
		}
	}
	return prices, nil
}
