// Package args defines the command and option schema of the CLI and
// turns a raw argument vector into a normalized options object.
//
// Options are described declaratively as Option values, grouped into
// reusable bundles (see groups.go), merged into commands by the
// registry (schema.go) and registered onto a pflag.FlagSet for the
// actual parse (parse.go).
package args

import (
	"slices"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"
)

// Kind selects an option's value type and cardinality.
type Kind int

const (
	// KindString is a scalar string value.
	KindString Kind = iota
	// KindInt is a scalar integer value.
	KindInt
	// KindFloat is a scalar float value.
	KindFloat
	// KindFlag is a boolean toggled by the flag's presence.
	KindFlag
	// KindCount counts flag repetitions (-v, -vv, ...).
	KindCount
	// KindStringArray appends one string per occurrence.
	KindStringArray
	// KindMultiChoice appends strings restricted to Choices.
	KindMultiChoice
	// KindPositiveInt is an integer run through PositiveInt.
	KindPositiveInt
	// KindOptionalInt is an integer whose value may be omitted, in
	// which case NoOptValue is stored.
	KindOptionalInt
)

// Option describes one command-line option: the flag spellings it
// answers to, the destination key its value is stored under, and how
// the raw text is converted.
type Option struct {
	Name    string   // primary long spelling, without dashes
	Short   string   // one-letter shorthand, optional
	Aliases []string // extra long spellings, hidden from help
	Dest    string   // destination key, unique within a command
	Kind    Kind
	Help    string

	Default    any      // destination default; zero value of the kind when nil
	Invert     bool     // KindFlag: presence of the flag clears the destination
	Choices    []string // KindMultiChoice: accepted values
	NoOptValue int      // KindOptionalInt: value stored when given bare
}

// spellings returns every flag spelling the option answers to.
func (o Option) spellings() []string {
	return append([]string{o.Name}, o.Aliases...)
}

// register adds the option to fs and returns a getter producing the
// destination value after the parse.
func (o Option) register(fs *flag.FlagSet) func() any {
	var get func() any

	switch o.Kind {
	case KindInt:
		p := fs.IntP(o.Name, o.Short, intDefault(o.Default), o.Help)
		get = func() any { return *p }

	case KindFloat:
		p := fs.Float64P(o.Name, o.Short, floatDefault(o.Default), o.Help)
		get = func() any { return *p }

	case KindFlag:
		def := boolDefault(o.Default)
		if o.Invert {
			def = !def
		}

		p := fs.BoolP(o.Name, o.Short, def, o.Help)

		inverted := o.Invert
		get = func() any { return *p != inverted }

	case KindCount:
		p := fs.CountP(o.Name, o.Short, o.Help)
		get = func() any { return *p }

	case KindStringArray:
		p := fs.StringArrayP(o.Name, o.Short, stringsDefault(o.Default), o.Help)
		get = func() any { return *p }

	case KindMultiChoice:
		v := &multiChoiceValue{choices: o.Choices, values: stringsDefault(o.Default)}
		fs.VarP(v, o.Name, o.Short, o.Help)
		get = func() any { return v.values }

	case KindPositiveInt:
		v := &positiveIntValue{}
		fs.VarP(v, o.Name, o.Short, o.Help)
		get = func() any { return v.n }

	case KindOptionalInt:
		p := fs.IntP(o.Name, o.Short, intDefault(o.Default), o.Help)
		fs.Lookup(o.Name).NoOptDefVal = strconv.Itoa(o.NoOptValue)
		get = func() any { return *p }

	default:
		p := fs.StringP(o.Name, o.Short, stringDefault(o.Default), o.Help)
		get = func() any { return *p }
	}

	o.registerAliases(fs)

	return get
}

// registerAliases binds every extra spelling to the primary flag's
// backing value, so --eps and --enable-position-stacking stay in sync.
// Aliases are hidden from the help listing.
func (o Option) registerAliases(fs *flag.FlagSet) {
	primary := fs.Lookup(o.Name)

	for _, alias := range o.Aliases {
		fs.Var(primary.Value, alias, o.Help)

		f := fs.Lookup(alias)
		f.Hidden = true
		f.NoOptDefVal = primary.NoOptDefVal // keeps bare boolean aliases bare
	}
}

// changed reports whether any spelling of the option was supplied.
func (o Option) changed(fs *flag.FlagSet) bool {
	for _, name := range o.spellings() {
		if fs.Changed(name) {
			return true
		}
	}

	return false
}

// Default coercion helpers. A mis-typed default is a schema defect on
// the same level as a duplicate destination key, so these panic.

func stringDefault(d any) string {
	if d == nil {
		return ""
	}

	return d.(string)
}

func intDefault(d any) int {
	if d == nil {
		return 0
	}

	return d.(int)
}

func floatDefault(d any) float64 {
	if d == nil {
		return 0
	}

	return d.(float64)
}

func boolDefault(d any) bool {
	if d == nil {
		return false
	}

	return d.(bool)
}

func stringsDefault(d any) []string {
	if d == nil {
		return nil
	}

	return slices.Clone(d.([]string))
}

// multiChoiceValue is a repeatable, comma-splittable value restricted
// to a fixed choice set. The first explicit occurrence replaces the
// default instead of appending to it.
type multiChoiceValue struct {
	choices []string
	values  []string
	changed bool
}

func (v *multiChoiceValue) String() string { return strings.Join(v.values, ",") }

func (v *multiChoiceValue) Type() string { return "strings" }

func (v *multiChoiceValue) Set(raw string) error {
	if !v.changed {
		v.values = nil
		v.changed = true
	}

	for _, s := range strings.Split(raw, ",") {
		if !slices.Contains(v.choices, s) {
			return &ValidationError{
				Value:  s,
				Reason: "should be one of " + strings.Join(v.choices, ", "),
			}
		}

		v.values = append(v.values, s)
	}

	return nil
}

// positiveIntValue runs PositiveInt as the conversion step.
type positiveIntValue struct {
	n int
}

func (v *positiveIntValue) String() string {
	if v.n == 0 {
		return ""
	}

	return strconv.Itoa(v.n)
}

func (v *positiveIntValue) Type() string { return "int" }

func (v *positiveIntValue) Set(raw string) error {
	n, err := PositiveInt(raw)
	if err != nil {
		return err
	}

	v.n = n

	return nil
}

// FlagUsages renders the default help block for an option list.
func FlagUsages(opts []Option) string {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.SortFlags = false

	for _, o := range opts {
		o.register(fs)
	}

	return fs.FlagUsages()
}
