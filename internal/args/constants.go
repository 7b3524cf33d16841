package args

import "path/filepath"

// Version is printed by --version.
const Version = "0.17.0"

const (
	// DefaultConfig is substituted when no --config path is given.
	DefaultConfig = "config.json"

	// DynamicWhitelist is the whitelist size assumed when
	// --dynamic-whitelist is given without a value.
	DynamicWhitelist = 20

	// DefaultStrategy is the strategy class used when none is named.
	DefaultStrategy = "DefaultStrategy"

	// DefaultHyperopt is the hyperopt class used when none is named.
	DefaultHyperopt = "DefaultHyperOpts"

	// HyperoptEpochs is the default epoch count for hyperopt runs.
	HyperoptEpochs = 100
)

// DefaultExportFilename is where backtest results land unless
// --export-filename says otherwise.
var DefaultExportFilename = filepath.Join("user_data", "backtest_data", "backtest-result.json")

// Timeframes are the candle intervals accepted by --timeframes.
var Timeframes = []string{
	"1m", "3m", "5m", "15m", "30m",
	"1h", "2h", "4h", "6h", "8h", "12h",
	"1d", "3d", "1w",
}
