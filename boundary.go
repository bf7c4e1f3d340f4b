package checkignore

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// WorktreeBoundary validates that a canonical path stays inside one
// work tree: no leading component may be a symbolic link and none may
// be the root of a nested repository.
type WorktreeBoundary struct {
	fs   afero.Fs
	root string
}

// NewWorktreeBoundary validates paths relative to the work tree rooted
// at root on the given filesystem.
func NewWorktreeBoundary(fsys afero.Fs, root string) *WorktreeBoundary {
	return &WorktreeBoundary{fs: fsys, root: root}
}

// Validate implements Boundary for a work-tree-relative path.
func (b *WorktreeBoundary) Validate(rel string) error {
	clean := path.Clean(filepath.ToSlash(rel))
	if clean == "." || clean == "/" {
		return nil
	}

	segments := strings.Split(clean, "/")
	cur := b.root
	for _, seg := range segments[:len(segments)-1] {
		cur = filepath.Join(cur, seg)

		if lstater, ok := b.fs.(afero.Lstater); ok {
			fi, usedLstat, err := lstater.LstatIfPossible(cur)
			if err == nil && usedLstat && fi.Mode()&os.ModeSymlink != 0 {
				return fmt.Errorf("pathspec %q is beyond a symbolic link", rel)
			}
		}
		if ok, _ := afero.Exists(b.fs, filepath.Join(cur, ".git")); ok {
			return fmt.Errorf("pathspec %q is in a nested repository", rel)
		}
	}
	return nil
}
