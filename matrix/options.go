// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for text rendering.
//
//   - FormatOption / formatOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherFormatOptions helper that applies them over the defaults.
//
// The defaults reproduce the Dense dump format: "[1, 2]\n[3, 4]\n".
package matrix

import (
	"strconv"
	"strings"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeparator separates elements within a row.
	DefaultSeparator = ", "

	// DefaultRowOpen and DefaultRowClose enclose each row.
	DefaultRowOpen  = "["
	DefaultRowClose = "]"

	// DefaultVerb is the fmt verb applied to every element.
	DefaultVerb = 'v'

	// DefaultPrecision disables explicit precision (-1 = fmt default).
	DefaultPrecision = -1
)

// validVerbs lists the fmt verbs accepted by WithVerb.
const validVerbs = "vdgGeEfFxXob"

// floatVerbs are the verbs that honor WithPrecision.
const floatVerbs = "gGeEfF"

// ---------- panic messages ----------

const (
	panicVerbInvalid      = "matrix: WithVerb: unsupported verb"
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= 0"
)

// FormatOption configures Format.
type FormatOption func(*formatOptions)

type formatOptions struct {
	sep       string
	rowOpen   string
	rowClose  string
	verb      rune
	precision int
}

// defaultFormatOptions returns the documented defaults.
func defaultFormatOptions() formatOptions {
	return formatOptions{
		sep:       DefaultSeparator,
		rowOpen:   DefaultRowOpen,
		rowClose:  DefaultRowClose,
		verb:      DefaultVerb,
		precision: DefaultPrecision,
	}
}

// gatherFormatOptions applies opts over the defaults, skipping nil entries.
func gatherFormatOptions(opts ...FormatOption) formatOptions {
	o := defaultFormatOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// elemFormat builds the fmt directive for one element, e.g. "%.3f".
func (o formatOptions) elemFormat() string {
	var b strings.Builder
	b.WriteByte('%')
	if o.precision >= 0 && strings.ContainsRune(floatVerbs, o.verb) {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(o.precision))
	}
	b.WriteRune(o.verb)

	return b.String()
}

// WithSeparator sets the in-row element separator.
func WithSeparator(sep string) FormatOption {
	return func(o *formatOptions) { o.sep = sep }
}

// WithRowBrackets sets the strings written before and after each row.
func WithRowBrackets(open, close string) FormatOption {
	return func(o *formatOptions) {
		o.rowOpen = open
		o.rowClose = close
	}
}

// WithVerb selects the fmt verb for elements (one of v d g G e E f F x X o b).
// Panics on any other verb.
func WithVerb(verb rune) FormatOption {
	if !strings.ContainsRune(validVerbs, verb) {
		panic(panicVerbInvalid)
	}

	return func(o *formatOptions) { o.verb = verb }
}

// WithPrecision sets the precision used by float verbs (g G e E f F).
// Panics if p < 0.
func WithPrecision(p int) FormatOption {
	if p < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *formatOptions) { o.precision = p }
}
