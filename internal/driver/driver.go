// Package driver wires the pipeline stages (tokenize, parse, rewrite)
// together for the CLI: single files, whole directories, and the disk
// cache used by repeated check runs.
package driver

import (
	"fortio.org/safecast"

	"callop/internal/diag"
	"callop/internal/parser"
	"callop/internal/project"
)

// Options carries per-run settings shared by all driver entry points.
type Options struct {
	// MaxDiagnostics caps the bag per file. Zero picks DefaultMaxDiagnostics.
	MaxDiagnostics int
	// BindThis enables the receiver::name grammar.
	BindThis bool
	// Jobs bounds directory-level parallelism. Zero means GOMAXPROCS.
	Jobs int
}

const DefaultMaxDiagnostics = 20

// FromManifest derives driver options from a loaded manifest. A nil
// manifest yields defaults.
func FromManifest(m *project.Manifest) Options {
	opts := Options{MaxDiagnostics: DefaultMaxDiagnostics}
	if m == nil {
		return opts
	}
	if m.Config.Diagnostics.Max > 0 {
		opts.MaxDiagnostics = m.Config.Diagnostics.Max
	}
	opts.BindThis = m.Config.Syntax.BindThis
	return opts
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

func (o Options) parserOptions(bag *diag.Bag) parser.Options {
	maxErrors, err := safecast.Conv[uint](o.maxDiagnostics())
	if err != nil {
		maxErrors = DefaultMaxDiagnostics
	}
	return parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
		BindThis:  o.BindThis,
	}
}
