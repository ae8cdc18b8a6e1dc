package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/wahlandcase/giti/internal/app"
	"github.com/wahlandcase/giti/internal/config"
	"github.com/wahlandcase/giti/internal/i18n"
	"github.com/wahlandcase/giti/internal/logger"
	"github.com/wahlandcase/giti/internal/models"
	"github.com/wahlandcase/giti/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var _ pflag.Value = (*models.SourceType)(nil)

func newRootCmd() *cobra.Command {
	var (
		opts       config.Options
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:   "giti <commitMessageFile>",
		Short: "Rewrite a commit message using a value extracted from HEAD",
		Long: `giti is meant to run as a commit-msg hook. It reads the current HEAD name,
extracts the first match of --pattern and rewrites the commit message file with
--template, where {{ match }} is the extracted text and {{ message }} is the
original message. The message is left alone when --skipPattern (default:
--pattern) already matches it.`,
		Example: `  giti .git/COMMIT_EDITMSG -p '[A-Z]+-\d+' -t '{{ match }}: {{ message }}'
  giti "$1" -s GitHeadCanonicalName -p '^refs/heads/\w+' -t '[{{ match }}] {{ message }}'`,
		Version:           version,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: cobra.FixedCompletions(nil, cobra.ShellCompDirectiveDefault),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &opts, configPath)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.Pattern, config.FlagPattern, "p", "", "regex applied to the HEAD value; the first match becomes {{ match }}")
	flags.StringVarP(&opts.Template, config.FlagTemplate, "t", "", "template for the new message, e.g. '{{ match }}: {{ message }}'")
	flags.VarP(&opts.SourceType, config.FlagSourceType, "s", "HEAD value to match: "+strings.Join(models.SourceTypeNames, "|"))
	flags.StringVarP(&opts.SkipPattern, config.FlagSkipPattern, "k", "", "leave the message alone when this regex matches it (default: --pattern)")
	flags.BoolVar(&opts.DryRun, "dry-run", false, "print the rewritten message instead of writing it")
	flags.StringVar(&configPath, "config", "", "config file (default: $"+config.EnvConfigPath+" or <user config dir>/giti.toml)")
	flags.BoolVar(&opts.NoColor, "no-color", false, "disable coloured output")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "report successful rewrites")
	flags.BoolVar(&opts.Debug, "debug", false, "log every pipeline step")
	flags.StringVar(&opts.Language, "lang", "", "message language, e.g. en or es (default: en)")

	_ = rootCmd.RegisterFlagCompletionFunc(config.FlagSourceType, cobra.FixedCompletions(models.SourceTypeNames, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("lang", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		trans, err := i18n.NewTranslations("")
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return trans.Languages(), cobra.ShellCompDirectiveNoFileComp
	})

	return rootCmd
}

func run(cmd *cobra.Command, args []string, opts *config.Options, configPath string) error {
	opts.CommitMessageFile = args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		cmd.SilenceUsage = true
		return err
	}
	cfg.Apply(opts, cmd.Flags().Changed)

	// Usage is still printed for missing options; past this point it is not
	if err := opts.Validate(); err != nil {
		return err
	}
	cmd.SilenceUsage = true

	errOut := cmd.ErrOrStderr()
	ctx := logger.WithLogger(cmd.Context(), logger.New(errOut, ui.NewStyles(errOut, opts.NoColor), opts.Debug, opts.Verbose))

	trans, err := i18n.NewTranslations(opts.Language)
	if err != nil {
		return err
	}

	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	res, err := app.Run(ctx, *opts, dir)
	if err != nil {
		cmd.SilenceErrors = true
		logger.Error(ctx, err.Error(), nil)
		return err
	}
	logger.Debug(ctx, "run finished", "outcome", res.Outcome.String())

	out := cmd.OutOrStdout()
	return app.NewReporter(out, ui.NewStyles(out, opts.NoColor), trans).Report(ctx, *opts, res)
}
