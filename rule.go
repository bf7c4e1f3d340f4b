package checkignore

// Rule describes the single decisive ignore rule for a path.
// A nil *Rule means no rule matched.
type Rule struct {
	// Source is the file the rule was read from, relative to the
	// work tree root.
	Source string

	// Line is the 1-based line number of the rule inside Source.
	Line int

	// Pattern is the pattern text, without the leading "!" of a
	// negation and without the trailing "/" of a directory-only rule.
	Pattern string

	// Negated marks a "!" rule which re-includes the path.
	Negated bool

	// OnlyDir marks a rule that matches directories only.
	OnlyDir bool
}

func (r *Rule) bang() string {
	if r != nil && r.Negated {
		return "!"
	}
	return ""
}

func (r *Rule) slash() string {
	if r != nil && r.OnlyDir {
		return "/"
	}
	return ""
}
