// Package checkignore answers, for a batch of paths, whether each one
// would be excluded by the layered ignore rules of a work tree.
//
// Paths that already match an entry of the tracked-file index are never
// reported as ignored, so the answers stay consistent with tools that
// list or modify the same index. The remaining paths are decided by an
// ignore-rule oracle which names the single decisive rule, its source
// file and its line number.
//
// The three collaborators (rule oracle, index, boundary validator) are
// narrow interfaces. Production implementations backed by the real work
// tree live in this package too; tests inject canned ones.
package checkignore

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path"
)

// Matcher is the ignore-rule oracle. Match returns the last rule
// deciding the given work-tree-relative path, or nil if none matches.
type Matcher interface {
	Match(path string) *Rule
}

// Index answers whether path arguments match tracked index entries.
// The result slice parallels the input: true means the argument names a
// tracked file, or a directory holding one, and must never be reported
// as ignored.
type Index interface {
	TrackedMatches(pathspecs []string) ([]bool, error)
}

// Boundary rejects canonical paths that leave the work tree through a
// symbolic link or cross into a nested repository. A non-nil error is
// fatal for the whole run.
type Boundary interface {
	Validate(path string) error
}

// Checker drives ignore decisions for batches of paths and renders one
// output record per decision.
type Checker struct {
	cfg   RunConfig
	rules Matcher
	index Index
	guard Boundary
	out   *bufio.Writer

	// Diag receives non-fatal diagnostics. Defaults to os.Stderr.
	Diag io.Writer
}

// NewChecker wires a Checker. Output records are buffered; direct mode
// callers flush once via Flush, streaming mode flushes per record.
func NewChecker(cfg RunConfig, rules Matcher, index Index, guard Boundary, out io.Writer) *Checker {
	return &Checker{
		cfg:   cfg,
		rules: rules,
		index: index,
		guard: guard,
		out:   bufio.NewWriter(out),
		Diag:  os.Stderr,
	}
}

// CheckBatch decides every path argument in order and returns how many
// were ignored. The arguments are joined with prefix before querying
// the oracles, but records always render the original spelling.
//
// An empty batch is not an error: it prints a diagnostic (unless quiet)
// and counts as zero matches.
func (c *Checker) CheckBatch(prefix string, pathspecs []string) (int, error) {
	if len(pathspecs) == 0 {
		if !c.cfg.Quiet {
			fmt.Fprintln(c.Diag, "no pathspec given.")
		}
		return 0, nil
	}

	seen, err := c.index.TrackedMatches(pathspecs)
	if err != nil {
		return 0, err
	}

	ignored := 0
	for i, p := range pathspecs {
		full := prefixPath(prefix, p)
		if err := c.guard.Validate(full); err != nil {
			return ignored, err
		}

		var rule *Rule
		if !seen[i] {
			rule = c.rules.Match(full)
		}
		if !c.cfg.Quiet && (rule != nil || c.cfg.ShowNonMatching) {
			if err := c.writeRecord(p, rule); err != nil {
				return ignored, err
			}
		}
		if rule != nil {
			ignored++
		}
	}
	return ignored, nil
}

// Flush writes out any buffered records.
func (c *Checker) Flush() error {
	return c.out.Flush()
}

// prefixPath joins the invocation prefix with a raw path argument.
// An empty prefix leaves the argument untouched.
func prefixPath(prefix, p string) string {
	if prefix == "" {
		return p
	}
	return path.Join(prefix, p)
}
