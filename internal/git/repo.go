package git

import (
	"errors"
	"io"

	"github.com/wahlandcase/giti/internal/models"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrNotRepository is returned by Open when no usable repository contains the path
var ErrNotRepository = errors.New("not a valid git repo")

// Repository is an open repository handle. Close it when done.
type Repository struct {
	repo *git.Repository
	path string
}

// Open opens the repository containing path, walking up to find the .git
// directory the same way git does. Linked worktrees are supported.
//
// Every failure (missing, corrupt or unreadable repository) is reported as
// ErrNotRepository; the cause stays reachable through errors.Unwrap.
func Open(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	return &Repository{repo: repo, path: path}, nil
}

// Root returns the worktree root, or the path Open was called with for bare repositories
func (r *Repository) Root() string {
	wt, err := r.repo.Worktree()
	if err != nil {
		return r.path
	}
	return wt.Filesystem.Root()
}

// Head reads the current HEAD reference without resolving it, so an unborn
// branch (a repository with no commits yet) still reports its name.
func (r *Repository) Head() (models.HeadRef, error) {
	ref, err := r.repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return models.HeadRef{}, &GitError{Command: "read HEAD", Output: err.Error(), Err: err}
	}

	if ref.Type() != plumbing.SymbolicReference {
		return models.DetachedHeadRef(), nil
	}

	target := ref.Target()
	return models.NewHeadRef(target.Short(), target.String()), nil
}

// Close releases the object storage (pack file handles) held by the repository
func (r *Repository) Close() error {
	if c, ok := r.repo.Storer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// OpenError reports why a path could not be opened as a repository. It always
// matches ErrNotRepository.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return ErrNotRepository.Error() + ": " + e.Path + ": " + e.Err.Error()
}

func (e *OpenError) Is(target error) bool {
	return target == ErrNotRepository
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// GitError provides context for repository reads that failed after a successful open
type GitError struct {
	Command string
	Output  string
	Err     error
}

func (e *GitError) Error() string {
	return "git " + e.Command + ": " + e.Output
}

func (e *GitError) Unwrap() error {
	return e.Err
}
