// Package cli assembles the hue command tree.
//
// Commands parse flags and arguments, build service options and delegate to
// the packages under internal/service. Results go to stdout, prompts and
// diagnostics to stderr, failures surface as one-line errors with a non-zero
// exit code.
package cli
