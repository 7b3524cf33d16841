package optimize

import (
	"fmt"
	"io"
	"strings"

	"github.com/ownermz/freqtrade/internal/args"
	"github.com/ownermz/freqtrade/internal/timerange"
)

// Edge is the handler bound to the edge command.
func Edge(w io.Writer, opts *args.Options) error {
	rng, err := timerange.Parse(opts.String("timerange"))
	if err != nil {
		return err
	}

	fprintln(w, "Using config:", strings.Join(opts.Strings("config"), ", "))
	fprintln(w, "Edge strategy:", opts.String("strategy"))
	fprintln(w, "Using timerange:", rng)

	if sweep := opts.String("stoploss_range"); sweep != "" {
		fprintln(w, "Stoploss range:", sweep)
	}

	return nil
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}
