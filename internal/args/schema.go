package args

import (
	"fmt"
	"io"
	"slices"
)

// Handler is the external entry point a command dispatches to. The
// schema stores it opaquely; invoking it belongs to the dispatcher,
// not to this package.
type Handler func(w io.Writer, opts *Options) error

// Command is one registered subcommand with its merged option list.
// The global group is implicitly prepended at parse time.
type Command struct {
	Name    string
	Short   string
	Options []Option
	Handler Handler
}

// Handlers carries the external entry points bound while the registry
// is built.
type Handlers struct {
	Backtesting Handler
	Edge        Handler
	Hyperopt    Handler
}

// Registry is the full command schema: every subcommand plus the
// global option list used when no subcommand is given. It is built
// once per invocation and read-only afterwards.
type Registry struct {
	global   []Option
	commands map[string]*Command
	order    []string
}

// NewRegistry composes the command set. Each command merges the global
// group, the shared optimizer group and its own group; any destination
// key or flag spelling claimed twice within one command fails with a
// *SchemaError.
func NewRegistry(h Handlers) (*Registry, error) {
	reg := &Registry{
		global:   GlobalOptions(),
		commands: make(map[string]*Command),
	}

	commands := []*Command{
		{
			Name:    "backtesting",
			Short:   "Backtesting module.",
			Options: merge(OptimizerSharedOptions(), BacktestingOptions()),
			Handler: h.Backtesting,
		},
		{
			Name:    "edge",
			Short:   "Edge module.",
			Options: merge(OptimizerSharedOptions(), EdgeOptions()),
			Handler: h.Edge,
		},
		{
			Name:    "hyperopt",
			Short:   "Hyperopt module.",
			Options: merge(OptimizerSharedOptions(), HyperoptOptions()),
			Handler: h.Hyperopt,
		},
	}

	for _, cmd := range commands {
		if err := validateOptions(cmd.Name, merge(reg.global, cmd.Options)); err != nil {
			return nil, err
		}

		reg.commands[cmd.Name] = cmd
		reg.order = append(reg.order, cmd.Name)
	}

	return reg, nil
}

// Global returns a copy of the global option list.
func (r *Registry) Global() []Option {
	return slices.Clone(r.global)
}

// Names returns command names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Lookup returns the command spec for name.
func (r *Registry) Lookup(name string) (*Command, bool) {
	cmd, ok := r.commands[name]

	return cmd, ok
}

// CommandOptions returns the fully merged option list for name: the
// global group first, then the command's own options. The result is a
// fresh copy on every call.
func (r *Registry) CommandOptions(name string) ([]Option, bool) {
	cmd, ok := r.commands[name]
	if !ok {
		return nil, false
	}

	return merge(r.global, cmd.Options), true
}

// merge copies groups into one fresh option list; callers never share
// backing arrays with the group builders or with each other.
func merge(groups ...[]Option) []Option {
	var out []Option
	for _, g := range groups {
		out = append(out, g...)
	}

	return out
}

// validateOptions rejects duplicate destination keys and duplicate
// flag spellings within one merged option set.
func validateOptions(command string, opts []Option) error {
	dests := make(map[string]bool, len(opts))
	spellings := make(map[string]bool, len(opts))

	for _, o := range opts {
		if dests[o.Dest] {
			return &SchemaError{Command: command, Detail: fmt.Sprintf("duplicate destination key %q", o.Dest)}
		}

		dests[o.Dest] = true

		for _, name := range o.spellings() {
			if spellings[name] {
				return &SchemaError{Command: command, Detail: fmt.Sprintf("duplicate flag --%s", name)}
			}

			spellings[name] = true
		}

		if o.Short != "" {
			if spellings[o.Short] {
				return &SchemaError{Command: command, Detail: fmt.Sprintf("duplicate shorthand -%s", o.Short)}
			}

			spellings[o.Short] = true
		}
	}

	return nil
}
