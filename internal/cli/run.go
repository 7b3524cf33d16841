// Package cli wires the argument facade to the subcommand handlers
// and owns the process exit contract.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/ownermz/freqtrade/internal/args"
	"github.com/ownermz/freqtrade/internal/optimize"
)

const versionFlag = "--version"

// Run is the main entry point. argv is the argument vector without
// the program name. Returns the process exit code.
func Run(out, errOut io.Writer, argv []string) int {
	// Version short-circuits everything, including parse errors
	// elsewhere in the vector.
	if hasVersionFlag(argv) {
		fprintln(out, "freqtrade", args.Version)

		return 0
	}

	facade, err := args.NewArguments(argv, args.Handlers{
		Backtesting: optimize.Backtesting,
		Edge:        optimize.Edge,
		Hyperopt:    optimize.Hyperopt,
	})
	if err != nil {
		// Schema defect, not user input.
		fprintln(errOut, "error:", err)

		return 1
	}

	registry := facade.Registry()

	if len(argv) > 0 && !strings.HasPrefix(argv[0], "-") {
		if _, ok := registry.Lookup(argv[0]); !ok {
			fprintln(errOut, "error: unknown command:", argv[0])
			fprintln(errOut)
			printUsage(errOut, registry)

			return 1
		}
	}

	parsed, err := facade.Parse()
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printHelp(out, registry, argv)

			return 0
		}

		fprintln(errOut, "error:", err)
		fprintln(errOut)
		printUsage(errOut, registry)

		return 1
	}

	if parsed.Command == "" {
		printUsage(out, registry)

		return 0
	}

	if err := parsed.Handler(out, parsed.Options); err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	return 0
}

// printHelp prints command help when a subcommand was named, global
// help otherwise.
func printHelp(out io.Writer, registry *args.Registry, argv []string) {
	if len(argv) > 0 {
		if opts, ok := registry.CommandOptions(argv[0]); ok {
			cmd, _ := registry.Lookup(argv[0])
			fprintf(out, "Usage: freqtrade %s [options]\n\n", cmd.Name)
			fprintln(out, cmd.Short)
			fprintln(out)
			fprintln(out, "Options:")
			fprintf(out, "%s", args.FlagUsages(opts))

			return
		}
	}

	printUsage(out, registry)
}

func printUsage(w io.Writer, registry *args.Registry) {
	fprintln(w, "Usage: freqtrade [options] <command> [command options]")
	fprintln(w)
	fprintln(w, "Crypto trading analysis: backtesting, edge and hyperopt.")
	fprintln(w)
	fprintln(w, "Commands:")

	for _, name := range registry.Names() {
		cmd, _ := registry.Lookup(name)
		fprintf(w, "  %-14s %s\n", name, cmd.Short)
	}

	fprintln(w)
	fprintln(w, "Global options:")
	fprintf(w, "%s", args.FlagUsages(registry.Global()))
}

func hasVersionFlag(argv []string) bool {
	for _, arg := range argv {
		if arg == "--" {
			return false
		}

		if arg == versionFlag {
			return true
		}
	}

	return false
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func fprintf(w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(w, format, a...)
}
