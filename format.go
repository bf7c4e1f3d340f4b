package checkignore

import "fmt"

// writeRecord renders one decision in the layout selected by the
// verbose and null-termination flags. path is the caller's original
// spelling; rule is nil for paths no rule matched.
//
// The textual layouts pass the source file and the path through Quote,
// the NUL-framed layouts write raw bytes so consumers can split on NUL
// without dequoting.
func (c *Checker) writeRecord(path string, rule *Rule) error {
	if c.cfg.NullTerm {
		if !c.cfg.Verbose {
			_, err := fmt.Fprintf(c.out, "%s%c", path, 0)
			return err
		}
		if rule != nil {
			_, err := fmt.Fprintf(c.out, "%s%c%d%c%s%s%s%c%s%c",
				rule.Source, 0,
				rule.Line, 0,
				rule.bang(), rule.Pattern, rule.slash(), 0,
				path, 0)
			return err
		}
		_, err := fmt.Fprintf(c.out, "%c%c%c%s%c", 0, 0, 0, path, 0)
		return err
	}

	if !c.cfg.Verbose {
		_, err := fmt.Fprintf(c.out, "%s\n", Quote(path))
		return err
	}
	if rule != nil {
		_, err := fmt.Fprintf(c.out, "%s:%d:%s%s%s\t%s\n",
			Quote(rule.Source), rule.Line,
			rule.bang(), rule.Pattern, rule.slash(),
			Quote(path))
		return err
	}
	_, err := fmt.Fprintf(c.out, "::\t%s\n", Quote(path))
	return err
}
