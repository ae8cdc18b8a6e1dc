// Package gittest creates throwaway repositories for tests without needing a git binary.
package gittest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/require"
)

// InitRepo creates a repository in a fresh temp dir with HEAD pointing at branch.
// The branch is unborn: no commits are created.
func InitRepo(t *testing.T, branch string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	SetHead(t, repo, branch)
	return dir
}

// SetHead points HEAD at refs/heads/<branch>
func SetHead(t *testing.T, repo *git.Repository, branch string) {
	t.Helper()

	ref := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(branch))
	require.NoError(t, repo.Storer.SetReference(ref))
}

// DetachHead points HEAD directly at a hash
func DetachHead(t *testing.T, dir string) {
	t.Helper()

	repo, err := git.PlainOpen(dir)
	require.NoError(t, err)

	ref := plumbing.NewHashReference(plumbing.HEAD, plumbing.NewHash("4b825dc642cb6eb9a060e54bf8d69288fbee4904"))
	require.NoError(t, repo.Storer.SetReference(ref))
}

// WriteMessage writes a commit message file into dir and returns its path
func WriteMessage(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "COMMIT_EDITMSG")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
