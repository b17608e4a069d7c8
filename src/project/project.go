// Package project resolves git context for the project under verification.
package project

import (
	"github.com/go-git/go-git/v5"
)

// Info holds git metadata shown in the report header.
type Info struct {
	SHA    string // short HEAD hash
	Branch string
	Dirty  bool // uncommitted changes in the worktree
}

// Detect reads HEAD from the repository at rootDir.
// Returns nil if rootDir is not a git repository or has no commits yet;
// the report simply omits the context block in that case.
func Detect(rootDir string) *Info {
	repo, err := git.PlainOpen(rootDir)
	if err != nil {
		return nil
	}

	head, err := repo.Head()
	if err != nil {
		return nil
	}

	info := &Info{SHA: head.Hash().String()[:7]}
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}

	if wt, err := repo.Worktree(); err == nil {
		if status, err := wt.Status(); err == nil {
			info.Dirty = !status.IsClean()
		}
	}
	return info
}
