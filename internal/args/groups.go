package args

// Option groups are reusable bundles of option definitions. Every
// builder returns a fresh slice, so commands composed from the same
// group never share backing storage and composing one command cannot
// contaminate another.

// GlobalOptions apply to every command and to the bare program.
func GlobalOptions() []Option {
	return []Option{
		{
			Name: "verbose", Short: "v", Dest: "loglevel", Kind: KindCount,
			Help: "Verbose mode (-vv for more, -vvv to get all messages).",
		},
		{
			Name: "logfile", Dest: "logfile", Kind: KindString,
			Help: "Log to the file specified.",
		},
		{
			Name: "version", Dest: "version", Kind: KindFlag,
			Help: "Print version and exit.",
		},
		{
			Name: "config", Short: "c", Dest: "config", Kind: KindStringArray,
			Help: "Specify configuration file (default: config.json). May be used multiple times.",
		},
		{
			Name: "datadir", Short: "d", Dest: "datadir", Kind: KindString,
			Help: "Path to backtest data.",
		},
		{
			Name: "strategy", Short: "s", Dest: "strategy", Kind: KindString,
			Default: DefaultStrategy,
			Help:    "Specify strategy class name (default: DefaultStrategy).",
		},
		{
			Name: "strategy-path", Dest: "strategy_path", Kind: KindString,
			Help: "Specify additional strategy lookup path.",
		},
		{
			Name: "dynamic-whitelist", Dest: "dynamic_whitelist", Kind: KindOptionalInt,
			NoOptValue: DynamicWhitelist,
			Help:       "Dynamically generate and update whitelist based on 24h BaseVolume (default: 20). DEPRECATED.",
		},
		{
			Name: "db-url", Dest: "db_url", Kind: KindString,
			Help: "Override trades database URL, this is useful if dry_run is enabled or in custom deployments.",
		},
		{
			Name: "sd-notify", Dest: "sd_notify", Kind: KindFlag,
			Help: "Notify systemd service manager.",
		},
	}
}

// OptimizerSharedOptions are common to backtesting, edge and hyperopt.
func OptimizerSharedOptions() []Option {
	return []Option{
		{
			Name: "ticker-interval", Short: "i", Dest: "ticker_interval", Kind: KindString,
			Help: "Specify ticker interval (1m, 5m, 30m, 1h, 1d).",
		},
		{
			Name: "timerange", Dest: "timerange", Kind: KindString,
			Help: "Specify what timerange of data to use.",
		},
		{
			Name: "max_open_trades", Dest: "max_open_trades", Kind: KindInt,
			Help: "Specify max_open_trades to use.",
		},
		{
			Name: "stake_amount", Dest: "stake_amount", Kind: KindFloat,
			Help: "Specify stake_amount.",
		},
		{
			Name: "refresh-pairs-cached", Short: "r", Dest: "refresh_pairs", Kind: KindFlag,
			Help: "Refresh the pairs files with the latest data from the exchange before running.",
		},
	}
}

// BacktestingOptions are specific to the backtesting command.
func BacktestingOptions() []Option {
	return []Option{
		{
			Name: "enable-position-stacking", Aliases: []string{"eps"},
			Dest: "position_stacking", Kind: KindFlag,
			Help: "Allow buying the same pair multiple times (position stacking).",
		},
		{
			Name: "disable-max-market-positions", Aliases: []string{"dmmp"},
			Dest: "use_max_market_positions", Kind: KindFlag, Default: true, Invert: true,
			Help: "Disable applying max_open_trades during backtest (same as setting max_open_trades to a very high number).",
		},
		{
			Name: "live", Short: "l", Dest: "live", Kind: KindFlag,
			Help: "Use live data.",
		},
		{
			Name: "strategy-list", Dest: "strategy_list", Kind: KindStringArray,
			Help: "Provide a strategy to backtest, may be used multiple times. The strategy name is injected into the export filename.",
		},
		{
			Name: "export", Dest: "export", Kind: KindString,
			Help: "Export backtest results, argument are: trades. Example --export=trades.",
		},
		{
			Name: "export-filename", Dest: "exportfilename", Kind: KindString,
			Default: DefaultExportFilename,
			Help:    "Save backtest results to this filename, requires --export to be set as well.",
		},
	}
}

// EdgeOptions are specific to the edge command.
func EdgeOptions() []Option {
	return []Option{
		{
			Name: "stoplosses", Dest: "stoploss_range", Kind: KindString,
			Help: `Defines a range of stoploss against which edge will assess the strategy, the format is "min,max,step" (without any space). Example: --stoplosses=-0.01,-0.1,-0.001.`,
		},
	}
}

// HyperoptOptions are specific to the hyperopt command. The spaces
// option keeps only its long spelling: the merged option set already
// uses -s for the global strategy option.
func HyperoptOptions() []Option {
	return []Option{
		{
			Name: "customhyperopt", Dest: "hyperopt", Kind: KindString,
			Default: DefaultHyperopt,
			Help:    "Specify hyperopt class name (default: DefaultHyperOpts).",
		},
		{
			Name: "enable-position-stacking", Aliases: []string{"eps"},
			Dest: "position_stacking", Kind: KindFlag,
			Help: "Allow buying the same pair multiple times (position stacking).",
		},
		{
			Name: "disable-max-market-positions", Aliases: []string{"dmmp"},
			Dest: "use_max_market_positions", Kind: KindFlag, Default: true, Invert: true,
			Help: "Disable applying max_open_trades during backtest (same as setting max_open_trades to a very high number).",
		},
		{
			Name: "epochs", Short: "e", Dest: "epochs", Kind: KindInt,
			Default: HyperoptEpochs,
			Help:    "Specify number of epochs (default: 100).",
		},
		{
			Name: "spaces", Dest: "spaces", Kind: KindMultiChoice,
			Choices: []string{"all", "buy", "sell", "roi", "stoploss"},
			Default: []string{"all"},
			Help:    "Specify which parameters to hyperopt: all, buy, sell, roi, stoploss. May be used multiple times (default: all).",
		},
		{
			Name: "print-all", Dest: "print_all", Kind: KindFlag,
			Help: "Print all results, not only the best ones.",
		},
		{
			Name: "job-workers", Short: "j", Dest: "hyperopt_jobs", Kind: KindInt,
			Default: -1,
			Help:    "The number of concurrently running jobs for hyperoptimization. If -1 (default), all CPUs are used, for -2, all CPUs but one are used, etc. If 1 is given, no parallel computing code is used at all.",
		},
		{
			Name: "random-state", Dest: "hyperopt_random_state", Kind: KindPositiveInt,
			Help: "Set random state to some positive integer for reproducible hyperopt results.",
		},
	}
}

// ScriptOptions serve the standalone analysis scripts, which build
// their own parser from groups instead of using the command registry.
func ScriptOptions() []Option {
	return []Option{
		{
			Name: "pairs", Short: "p", Dest: "pairs", Kind: KindString,
			Help: "Show profits for only this pairs. Pairs are comma-separated.",
		},
	}
}

// DownloadDataOptions serve the historical data download script. The
// group carries its own config option, so it must not be combined with
// GlobalOptions.
func DownloadDataOptions() []Option {
	return []Option{
		{
			Name: "pairs-file", Dest: "pairs_file", Kind: KindString,
			Help: "File containing a list of pairs to download.",
		},
		{
			Name: "export", Dest: "export", Kind: KindString,
			Help: "Export files to given dir.",
		},
		{
			Name: "config", Short: "c", Dest: "config", Kind: KindStringArray,
			Help: "Specify configuration file (default: config.json). May be used multiple times.",
		},
		{
			Name: "days", Dest: "days", Kind: KindInt,
			Help: "Download data for given number of days.",
		},
		{
			Name: "exchange", Dest: "exchange", Kind: KindString,
			Default: "bittrex",
			Help:    "Exchange name (default: bittrex). Only valid if no config is provided.",
		},
		{
			Name: "timeframes", Short: "t", Dest: "timeframes", Kind: KindMultiChoice,
			Choices: Timeframes,
			Default: []string{"1m", "5m"},
			Help:    "Specify which tickers to download. May be used multiple times (default: 1m 5m).",
		},
		{
			Name: "erase", Dest: "erase", Kind: KindFlag,
			Help: "Clean all existing data for the selected exchange/pairs/timeframes.",
		},
	}
}
