package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/wahlandcase/giti/internal/config"
	"github.com/wahlandcase/giti/internal/git"
	"github.com/wahlandcase/giti/internal/logger"
	"github.com/wahlandcase/giti/internal/message"
)

// Outcome is how a run ended when it did not fail
type Outcome int

const (
	// Rewritten means the message file now holds the rendered template
	Rewritten Outcome = iota
	// DryRun means the message was rendered but not written
	DryRun
	// NotRepository means the working directory is not inside a repository
	NotRepository
	// NoMatch means the extraction pattern found nothing in the HEAD value
	NoMatch
	// Skipped means the skip pattern matched the original message
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case Rewritten:
		return "rewritten"
	case DryRun:
		return "dry-run"
	case NotRepository:
		return "not-repository"
	case NoMatch:
		return "no-match"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result carries what a run saw, for reporting
type Result struct {
	Outcome     Outcome
	Source      string
	Match       string
	SkipPattern string
	Original    string
	Final       string
}

// compiled holds everything that can be rejected before touching the message file
type compiled struct {
	pattern *message.Pattern
	skip    *message.Pattern
	tmpl    *message.Template
}

func compile(opts config.Options) (*compiled, error) {
	pattern, err := message.CompilePattern(config.FlagPattern, opts.Pattern)
	if err != nil {
		return nil, err
	}

	skip := pattern
	if opts.SkipPattern != "" {
		skip, err = message.CompilePattern(config.FlagSkipPattern, opts.SkipPattern)
		if err != nil {
			return nil, err
		}
	}

	tmpl, err := message.CompileTemplate(opts.Template)
	if err != nil {
		return nil, err
	}

	return &compiled{pattern: pattern, skip: skip, tmpl: tmpl}, nil
}

// Run rewrites opts.CommitMessageFile using the repository that contains dir.
//
// The recoverable outcomes (no repository, no match, skip) come back with a
// nil error. Malformed patterns or templates and message file I/O failures
// are returned as errors; patterns and template are checked before the
// message file is opened.
func Run(ctx context.Context, opts config.Options, dir string) (Result, error) {
	res := Result{SkipPattern: opts.EffectiveSkipPattern()}

	repo, err := git.Open(dir)
	if err != nil {
		if errors.Is(err, git.ErrNotRepository) {
			logger.Debug(ctx, "repository lookup failed", slog.String("dir", dir), slog.Any("err", errors.Unwrap(err)))
			res.Outcome = NotRepository
			return res, nil
		}
		return res, err
	}
	defer repo.Close()

	logger.Debug(ctx, "opened repository", slog.String("root", repo.Root()))

	c, err := compile(opts)
	if err != nil {
		return res, err
	}
	logger.Debug(ctx, "compiled patterns", slog.String("pattern", c.pattern.String()), slog.String("skip", c.skip.String()))

	head, err := repo.Head()
	if err != nil {
		return res, err
	}
	res.Source, err = head.Source(opts.SourceType)
	if err != nil {
		return res, err
	}
	logger.Debug(ctx, "read HEAD",
		slog.String("source_type", opts.SourceType.String()),
		slog.String("value", res.Source),
		slog.Bool("detached", head.Detached()))

	res.Match = c.pattern.FirstMatch(res.Source)
	if res.Match == "" {
		res.Outcome = NoMatch
		return res, nil
	}
	logger.Debug(ctx, "extracted match", slog.String("match", res.Match))

	res.Original, err = message.ReadFile(opts.CommitMessageFile)
	if err != nil {
		return res, err
	}

	if c.skip.Matches(res.Original) {
		res.Outcome = Skipped
		return res, nil
	}

	res.Final, err = c.tmpl.Render(res.Match, res.Original)
	if err != nil {
		return res, err
	}

	if opts.DryRun {
		res.Outcome = DryRun
		return res, nil
	}

	if err := message.WriteFile(opts.CommitMessageFile, res.Final); err != nil {
		return res, err
	}

	res.Outcome = Rewritten
	return res, nil
}
