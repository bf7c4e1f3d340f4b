package checkignore

import "errors"

// RunConfig holds the option flags of one invocation. It is built once,
// validated before any path is touched and never modified afterwards.
type RunConfig struct {
	// Quiet suppresses all output. Only valid with a single path argument.
	Quiet bool

	// Verbose switches to the record layout that includes the decisive
	// rule and its source location.
	Verbose bool

	// Stdin reads paths from standard input instead of the arguments.
	Stdin bool

	// NullTerm frames stdin records and output records with NUL bytes
	// instead of newlines. Only valid together with Stdin.
	NullTerm bool

	// ShowNonMatching also emits a record for paths no rule matched.
	// Only valid together with Verbose.
	ShowNonMatching bool
}

// Validate rejects option combinations that make no sense together.
// numPaths is the number of path arguments given on the command line.
func (c RunConfig) Validate(numPaths int) error {
	if c.Stdin {
		if numPaths > 0 {
			return errors.New("cannot specify pathnames with --stdin")
		}
	} else {
		if c.NullTerm {
			return errors.New("-z only makes sense with --stdin")
		}
		if numPaths == 0 {
			return errors.New("no path specified")
		}
	}
	if c.Quiet {
		if numPaths > 1 {
			return errors.New("--quiet is only valid with a single pathname")
		}
		if c.Verbose {
			return errors.New("cannot have both --quiet and --verbose")
		}
	}
	if c.ShowNonMatching && !c.Verbose {
		return errors.New("--non-matching is only valid with --verbose")
	}
	return nil
}
