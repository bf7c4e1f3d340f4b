package checkignore

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// CheckStream reads path records from r until EOF and decides each one
// as a single-element batch, flushing output after every record so a
// downstream pipe sees results as they are produced.
//
// Records are terminated by NUL when the NullTerm flag is set, by
// newline otherwise. In newline mode a record starting with a double
// quote is C-unquoted first; a badly quoted record aborts the run.
func (c *Checker) CheckStream(prefix string, r io.Reader) (int, error) {
	delim := byte('\n')
	if c.cfg.NullTerm {
		delim = 0
	}

	br := bufio.NewReader(r)
	ignored := 0
	for {
		line, err := br.ReadString(delim)
		if err != nil && err != io.EOF {
			return ignored, err
		}
		if err == io.EOF && line == "" {
			break
		}
		line = strings.TrimSuffix(line, string(delim))

		if !c.cfg.NullTerm && strings.HasPrefix(line, `"`) {
			unquoted, uerr := Unquote(line)
			if uerr != nil {
				return ignored, fmt.Errorf("line is badly quoted: %w", uerr)
			}
			line = unquoted
		}

		n, cerr := c.CheckBatch(prefix, []string{line})
		ignored += n
		if cerr != nil {
			return ignored, cerr
		}
		if ferr := c.Flush(); ferr != nil {
			return ignored, ferr
		}

		if err == io.EOF {
			break
		}
	}
	return ignored, nil
}
