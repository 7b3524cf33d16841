// Package optimize holds the entry points the CLI dispatches to. The
// engines behind them (backtest simulation, edge positioning,
// hyperparameter search) live outside this layer; each entry point
// normalizes its inputs, resolving the timerange on demand, and
// reports the effective run configuration.
package optimize

import (
	"io"
	"strings"

	"github.com/ownermz/freqtrade/internal/args"
	"github.com/ownermz/freqtrade/internal/timerange"
)

// Backtesting is the handler bound to the backtesting command.
func Backtesting(w io.Writer, opts *args.Options) error {
	rng, err := timerange.Parse(opts.String("timerange"))
	if err != nil {
		return err
	}

	strategies := opts.Strings("strategy_list")
	if len(strategies) == 0 {
		strategies = []string{opts.String("strategy")}
	}

	fprintln(w, "Using config:", strings.Join(opts.Strings("config"), ", "))
	fprintln(w, "Backtesting strategies:", strings.Join(strategies, ", "))
	fprintln(w, "Using timerange:", rng)

	if opts.Bool("live") {
		fprintln(w, "Using live data.")
	}

	if opts.Bool("position_stacking") {
		fprintln(w, "Position stacking enabled.")
	}

	if !opts.Bool("use_max_market_positions") {
		fprintln(w, "Max market positions disabled.")
	}

	if export := opts.String("export"); export != "" {
		fprintln(w, "Exporting", export, "to", opts.String("exportfilename"))
	}

	return nil
}
