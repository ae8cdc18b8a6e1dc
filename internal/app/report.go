package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/wahlandcase/giti/internal/config"
	"github.com/wahlandcase/giti/internal/i18n"
	"github.com/wahlandcase/giti/internal/logger"
	"github.com/wahlandcase/giti/internal/ui"
)

// Reporter prints run outcomes: warnings through the logger, the dry-run
// preview to out
type Reporter struct {
	out    io.Writer
	styles *ui.Styles
	trans  *i18n.Translations
}

func NewReporter(out io.Writer, styles *ui.Styles, trans *i18n.Translations) *Reporter {
	return &Reporter{out: out, styles: styles, trans: trans}
}

// Report describes res to the user
func (r *Reporter) Report(ctx context.Context, opts config.Options, res Result) error {
	switch res.Outcome {
	case NotRepository:
		logger.Warn(ctx, r.trans.GetMessage(i18n.NotARepo, nil))
	case NoMatch:
		logger.Warn(ctx, r.trans.GetMessage(i18n.NoMatch, map[string]interface{}{"Pattern": opts.Pattern}),
			slog.String("source", res.Source))
	case Skipped:
		logger.Warn(ctx, r.trans.GetMessage(i18n.SkipMatched, map[string]interface{}{"Pattern": res.SkipPattern}))
	case DryRun:
		_, err := fmt.Fprint(r.out, r.styles.Preview(r.trans.GetMessage(i18n.DryRunTitle, nil), res.Final))
		return err
	case Rewritten:
		logger.Info(ctx, r.trans.GetMessage(i18n.Rewritten, nil),
			slog.String("match", res.Match), slog.String("file", opts.CommitMessageFile))
	}
	return nil
}
