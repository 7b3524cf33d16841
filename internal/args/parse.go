package args

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// Options is the normalized result of one parse, keyed by destination.
// Accessors return the zero value for unknown keys or mismatched
// types.
type Options struct {
	values  map[string]any
	changed map[string]bool
}

// Changed reports whether the option was explicitly supplied.
func (o *Options) Changed(dest string) bool { return o.changed[dest] }

// String returns the string stored under dest.
func (o *Options) String(dest string) string {
	v, _ := o.values[dest].(string)

	return v
}

// Int returns the integer stored under dest.
func (o *Options) Int(dest string) int {
	v, _ := o.values[dest].(int)

	return v
}

// Float returns the float stored under dest.
func (o *Options) Float(dest string) float64 {
	v, _ := o.values[dest].(float64)

	return v
}

// Bool returns the boolean stored under dest.
func (o *Options) Bool(dest string) bool {
	v, _ := o.values[dest].(bool)

	return v
}

// Strings returns the string list stored under dest.
func (o *Options) Strings(dest string) []string {
	v, _ := o.values[dest].([]string)

	return v
}

// Parsed is the normalized outcome of one argument vector.
type Parsed struct {
	Command string // empty when no subcommand was given
	Handler Handler
	Options *Options
}

// Arguments is the argument facade: it builds the command schema once,
// runs the underlying parse and applies post-parse normalization.
type Arguments struct {
	args     []string
	registry *Registry
	parsed   *Parsed
}

// NewArguments builds the facade for one argument vector (without the
// program name). The handler references are bound into the schema and
// handed back untouched on the parse result.
func NewArguments(args []string, h Handlers) (*Arguments, error) {
	registry, err := NewRegistry(h)
	if err != nil {
		return nil, err
	}

	return &Arguments{args: args, registry: registry}, nil
}

// Registry exposes the built schema for usage output.
func (a *Arguments) Registry() *Registry { return a.registry }

// Parse resolves the argument vector once; repeated calls return the
// first result. The subcommand, when present, must be the first
// argument; global options may appear before or after any command
// option since every command parses against its merged option set.
func (a *Arguments) Parse() (*Parsed, error) {
	if a.parsed != nil {
		return a.parsed, nil
	}

	opts := a.registry.Global()
	parsed := &Parsed{}
	rest := a.args

	if len(rest) > 0 {
		if cmd, ok := a.registry.Lookup(rest[0]); ok {
			opts, _ = a.registry.CommandOptions(cmd.Name)
			parsed.Command = cmd.Name
			parsed.Handler = cmd.Handler
			rest = rest[1:]
		}
	}

	result, err := parseOptions(parsed.Command, opts, rest)
	if err != nil {
		return nil, err
	}

	parsed.Options = result
	a.parsed = parsed

	return parsed, nil
}

// ParseGroups parses argv against an ad-hoc composition of option
// groups. The standalone scripts use this instead of the subcommand
// registry; it shares the registration, parse and normalization path.
func ParseGroups(name string, argv []string, groups ...[]Option) (*Options, error) {
	opts := merge(groups...)
	if err := validateOptions(name, opts); err != nil {
		return nil, err
	}

	return parseOptions(name, opts, argv)
}

// parseOptions registers opts on a fresh flag set, parses argv and
// extracts every destination. The config default lives here, not in
// the schema: an append option cannot distinguish "never supplied"
// from "supplied with nothing" through a schema default, so the
// substitution happens exactly once on the parsed result.
func parseOptions(name string, opts []Option, argv []string) (*Options, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	getters := make([]func() any, len(opts))
	for i, o := range opts {
		getters[i] = o.register(fs)
	}

	if err := fs.Parse(argv); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	result := &Options{
		values:  make(map[string]any, len(opts)),
		changed: make(map[string]bool, len(opts)),
	}

	for i, o := range opts {
		result.values[o.Dest] = getters[i]()
		result.changed[o.Dest] = o.changed(fs)
	}

	if raw, ok := result.values["config"]; ok {
		if paths, _ := raw.([]string); len(paths) == 0 {
			result.values["config"] = []string{DefaultConfig}
		}
	}

	return result, nil
}
