package args_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ownermz/freqtrade/internal/args"
)

func TestNewRegistryCommands(t *testing.T) {
	t.Parallel()

	registry, err := args.NewRegistry(args.Handlers{})
	require.NoError(t, err)

	assert.Equal(t, []string{"backtesting", "edge", "hyperopt"}, registry.Names())

	// Every command carries the global and shared optimizer groups.
	for _, name := range registry.Names() {
		opts, ok := registry.CommandOptions(name)
		require.True(t, ok)

		dests := destKeys(opts)
		for _, dest := range []string{"loglevel", "config", "strategy", "timerange", "max_open_trades"} {
			assert.Contains(t, dests, dest, "command %s", name)
		}
	}

	backtesting, _ := registry.CommandOptions("backtesting")
	hyperopt, _ := registry.CommandOptions("hyperopt")
	edge, _ := registry.CommandOptions("edge")

	assert.Contains(t, destKeys(backtesting), "exportfilename")
	assert.NotContains(t, destKeys(backtesting), "epochs")
	assert.Contains(t, destKeys(hyperopt), "epochs")
	assert.Contains(t, destKeys(edge), "stoploss_range")
	assert.NotContains(t, destKeys(edge), "position_stacking")
}

func TestCommandCompositionIsIndependent(t *testing.T) {
	t.Parallel()

	registry, err := args.NewRegistry(args.Handlers{})
	require.NoError(t, err)

	// The shared optimizer group appears in both backtesting and
	// hyperopt; mutating one merged list must not leak into the other.
	backtesting, _ := registry.CommandOptions("backtesting")
	pristine, _ := registry.CommandOptions("hyperopt")

	for i := range backtesting {
		backtesting[i].Dest = "clobbered"
		backtesting[i].Help = "clobbered"
	}

	hyperopt, _ := registry.CommandOptions("hyperopt")
	if diff := cmp.Diff(pristine, hyperopt); diff != "" {
		t.Errorf("hyperopt options changed after mutating backtesting's (-want +got):\n%s", diff)
	}
}

func TestGroupBuildersReturnFreshCopies(t *testing.T) {
	t.Parallel()

	first := args.OptimizerSharedOptions()
	first[0].Name = "mutated"
	first[0].Dest = "mutated"

	second := args.OptimizerSharedOptions()
	assert.Equal(t, "ticker-interval", second[0].Name)
	assert.Equal(t, "ticker_interval", second[0].Dest)
}

func TestDuplicateDestinationIsSchemaError(t *testing.T) {
	t.Parallel()

	// The download-data group declares its own config option, so
	// combining it with the global group collides.
	_, err := args.ParseGroups("download-data", nil, args.GlobalOptions(), args.DownloadDataOptions())
	require.Error(t, err)

	var schemaErr *args.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, err.Error(), "duplicate destination key")
}

func TestDuplicateSpellingIsSchemaError(t *testing.T) {
	t.Parallel()

	group := []args.Option{
		{Name: "alpha", Short: "a", Dest: "alpha", Kind: args.KindString},
		{Name: "apex", Short: "a", Dest: "apex", Kind: args.KindString},
	}

	_, err := args.ParseGroups("clash", nil, group)

	var schemaErr *args.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, err.Error(), "duplicate shorthand -a")
}

func destKeys(opts []args.Option) []string {
	keys := make([]string, len(opts))
	for i, o := range opts {
		keys[i] = o.Dest
	}

	return keys
}
