package checkignore

import (
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// GitIndex is the tracked-file membership filter, backed by the entry
// names of a repository index. Arguments that match a tracked entry are
// never reported as ignored, keeping the answers consistent with tools
// that list or modify the same index.
type GitIndex struct {
	prefix  string
	entries []string
}

// NewGitIndex builds an index filter from entry names already in hand.
// prefix is joined with every pathspec before matching, mirroring how
// arguments given in a subdirectory name entries of the whole tree.
func NewGitIndex(entries []string, prefix string) *GitIndex {
	return &GitIndex{prefix: prefix, entries: entries}
}

// LoadGitIndex reads the index of repo. An unreadable index is fatal
// for the caller before any path is decided.
func LoadGitIndex(repo *git.Repository, prefix string) (*GitIndex, error) {
	idx, err := repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("index file corrupt: %w", err)
	}
	entries := make([]string, 0, len(idx.Entries))
	for _, e := range idx.Entries {
		entries = append(entries, e.Name)
	}
	return NewGitIndex(entries, prefix), nil
}

// TrackedMatches implements Index.
func (g *GitIndex) TrackedMatches(pathspecs []string) ([]bool, error) {
	seen := make([]bool, len(pathspecs))
	for i, spec := range pathspecs {
		full := prefixPath(g.prefix, spec)
		for _, name := range g.entries {
			if matchPathspec(full, name) {
				seen[i] = true
				break
			}
		}
	}
	return seen, nil
}

// matchPathspec reports whether the index entry name matches spec:
// either exactly, or spec names a directory the entry lives under.
// "." and the empty spec cover the whole tree.
func matchPathspec(spec, name string) bool {
	spec = strings.TrimSuffix(spec, "/")
	if spec == "" || spec == "." {
		return true
	}
	return name == spec || strings.HasPrefix(name, spec+"/")
}
