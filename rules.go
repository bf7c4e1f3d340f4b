package checkignore

import (
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/spf13/afero"
)

// RepoRules answers ignore queries from the .gitignore files of a work
// tree. It wraps a repository-level gitignore matcher and converts its
// matches into Rules with the source location the formatter prints.
type RepoRules struct {
	repo gitignore.GitIgnore
	fs   afero.Fs
	root string
}

// LoadRepoRules reads every .gitignore reachable from the work tree
// rooted at root.
func LoadRepoRules(root string) (*RepoRules, error) {
	repo, err := gitignore.NewRepository(root)
	if err != nil {
		return nil, err
	}
	return &RepoRules{repo: repo, fs: afero.NewOsFs(), root: root}, nil
}

// Match implements Matcher for a work-tree-relative path. The file type
// is unknown to the caller, so Match stats the path itself; a path that
// does not exist is treated as a regular file.
func (r *RepoRules) Match(rel string) *Rule {
	abs := filepath.Join(r.root, filepath.FromSlash(rel))

	isDir := false
	if fi, err := r.fs.Stat(abs); err == nil {
		isDir = fi.IsDir()
	}

	m := r.repo.Absolute(abs, isDir)
	if m == nil {
		return nil
	}

	pos := m.Position()
	pattern := strings.TrimPrefix(m.String(), "!")
	onlyDir := strings.HasSuffix(pattern, "/")

	source := pos.File
	if inTree, err := filepath.Rel(r.root, source); err == nil && !strings.HasPrefix(inTree, "..") {
		source = filepath.ToSlash(inTree)
	}

	return &Rule{
		Source:  source,
		Line:    pos.Line,
		Pattern: strings.TrimSuffix(pattern, "/"),
		Negated: m.Include(),
		OnlyDir: onlyDir,
	}
}
