// Command checkignore reports which of the given paths the ignore
// rules of the surrounding work tree would exclude. Like a search tool
// it exits 0 when at least one path matched and 1 when none did.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/spf13/afero"

	"checkignore"
)

func main() {
	var cfg checkignore.RunConfig
	flag.BoolVar(&cfg.Quiet, "quiet", false, "suppress progress reporting")
	flag.BoolVar(&cfg.Quiet, "q", false, "suppress progress reporting (shorthand)")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "be verbose")
	flag.BoolVar(&cfg.Verbose, "v", false, "be verbose (shorthand)")
	flag.BoolVar(&cfg.Stdin, "stdin", false, "read file names from stdin")
	flag.BoolVar(&cfg.NullTerm, "z", false, "input paths are terminated by a null character")
	flag.BoolVar(&cfg.ShowNonMatching, "non-matching", false, "show non-matching input paths")
	flag.BoolVar(&cfg.ShowNonMatching, "n", false, "show non-matching input paths (shorthand)")
	flag.Usage = usage
	flag.Parse()
	paths := flag.Args()

	if err := cfg.Validate(len(paths)); err != nil {
		die(err)
	}

	repo, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		die(fmt.Errorf("not in a git work tree: %w", err))
	}
	wt, err := repo.Worktree()
	if err != nil {
		die(err)
	}
	root := wt.Filesystem.Root()

	prefix, err := worktreePrefix(root)
	if err != nil {
		die(err)
	}

	index, err := checkignore.LoadGitIndex(repo, prefix)
	if err != nil {
		die(err)
	}
	rules, err := checkignore.LoadRepoRules(root)
	if err != nil {
		die(err)
	}
	guard := checkignore.NewWorktreeBoundary(afero.NewOsFs(), root)

	checker := checkignore.NewChecker(cfg, rules, index, guard, os.Stdout)

	var ignored int
	if cfg.Stdin {
		ignored, err = checker.CheckStream(prefix, os.Stdin)
	} else {
		ignored, err = checker.CheckBatch(prefix, paths)
	}
	if ferr := checker.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		die(err)
	}

	if ignored > 0 {
		os.Exit(0)
	}
	os.Exit(1)
}

// worktreePrefix is the working directory relative to the work tree
// root, empty when invoked from the root itself.
func worktreePrefix(root string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(root, cwd)
	if err != nil {
		return "", err
	}
	if rel == "." {
		return "", nil
	}
	return filepath.ToSlash(rel), nil
}

func die(err error) {
	fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
	os.Exit(128)
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  checkignore [options] pathname...")
	fmt.Fprintln(w, "  checkignore [options] --stdin < <list-of-paths>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	flag.PrintDefaults()
}
