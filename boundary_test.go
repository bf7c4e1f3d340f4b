package checkignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorktreeBoundary_NestedRepository(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/repo/vendor/mod/.git", 0o755))
	require.NoError(t, fsys.MkdirAll("/repo/src", 0o755))

	b := NewWorktreeBoundary(fsys, "/repo")

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{
			name: "plain file",
			path: "src/main.go",
		},
		{
			name: "file at the root",
			path: "README.md",
		},
		{
			name:    "file inside a nested repository",
			path:    "vendor/mod/file.go",
			wantErr: true,
		},
		{
			name:    "deeper inside a nested repository",
			path:    "vendor/mod/pkg/file.go",
			wantErr: true,
		},
		{
			name: "the nested repository directory itself",
			// Only leading components are checked, naming the
			// directory itself is fine.
			path: "vendor/mod",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := b.Validate(tt.path)
			if tt.wantErr {
				assert.ErrorContains(t, err, "nested repository")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWorktreeBoundary_Symlink(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "real"), 0o755))
	if err := os.Symlink("real", filepath.Join(root, "link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	b := NewWorktreeBoundary(afero.NewOsFs(), root)

	assert.NoError(t, b.Validate("real/file.txt"))
	assert.ErrorContains(t, b.Validate("link/file.txt"), "beyond a symbolic link")
}
