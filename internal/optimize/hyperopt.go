package optimize

import (
	"io"
	"strings"

	"github.com/ownermz/freqtrade/internal/args"
	"github.com/ownermz/freqtrade/internal/timerange"
)

// Hyperopt is the handler bound to the hyperopt command.
func Hyperopt(w io.Writer, opts *args.Options) error {
	rng, err := timerange.Parse(opts.String("timerange"))
	if err != nil {
		return err
	}

	fprintln(w, "Using config:", strings.Join(opts.Strings("config"), ", "))
	fprintln(w, "Hyperopt class:", opts.String("hyperopt"))
	fprintln(w, "Using timerange:", rng)
	fprintln(w, "Epochs:", opts.Int("epochs"))
	fprintln(w, "Spaces:", strings.Join(opts.Strings("spaces"), ", "))
	fprintln(w, "Job workers:", opts.Int("hyperopt_jobs"))

	if opts.Changed("hyperopt_random_state") {
		fprintln(w, "Random state:", opts.Int("hyperopt_random_state"))
	}

	if opts.Bool("print_all") {
		fprintln(w, "Printing all results.")
	}

	return nil
}
