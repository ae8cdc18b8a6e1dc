package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/wahlandcase/giti/internal/config"
	"github.com/wahlandcase/giti/internal/git/gittest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	err    error
	stdout string
	stderr string
}

func execute(t *testing.T, dir string, args ...string) result {
	t.Helper()
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "absent.toml"))
	t.Setenv("LANG", "es_ES.UTF-8")
	t.Chdir(dir)

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return result{err: err, stdout: stdout.String(), stderr: stderr.String()}
}

func content(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRootCommand(t *testing.T) {
	t.Run("rewrites the message", func(t *testing.T) {
		dir := gittest.InitRepo(t, "feature/JIRA-123-fix")
		file := gittest.WriteMessage(t, dir, "Fix the bug")

		r := execute(t, dir, file, "-p", `[a-zA-Z]+-\d+`, "-t", "{{ match }}: {{ message }}")
		require.NoError(t, r.err)
		assert.Equal(t, "JIRA-123: Fix the bug", content(t, file))
		assert.Empty(t, r.stderr)
	})

	t.Run("long flags and canonical source", func(t *testing.T) {
		dir := gittest.InitRepo(t, "feature/JIRA-123-fix")
		file := gittest.WriteMessage(t, dir, "Fix the bug")

		r := execute(t, dir, file,
			"--sourceType", "GitHeadCanonicalName",
			"--pattern", `^refs/heads/[a-z]+`,
			"--template", "{{ match }} {{ message }}",
			"--verbose")
		require.NoError(t, r.err)
		assert.Equal(t, "refs/heads/feature Fix the bug", content(t, file))
		assert.Contains(t, r.stderr, "[INFO]  Commit message rewritten")
	})

	t.Run("no match is reported and not fatal", func(t *testing.T) {
		dir := gittest.InitRepo(t, "feature/JIRA-123-fix")
		file := gittest.WriteMessage(t, dir, "Fix the bug")

		r := execute(t, dir, file, "-p", `NOPE-\d+`, "-t", "{{ match }}: {{ message }}")
		require.NoError(t, r.err)
		assert.Contains(t, r.stderr, `Pattern 'NOPE-\d+' matched nothing`)
		assert.Equal(t, "Fix the bug", content(t, file))
	})

	t.Run("skip is reported and not fatal", func(t *testing.T) {
		dir := gittest.InitRepo(t, "feature/JIRA-123-fix")
		file := gittest.WriteMessage(t, dir, "JIRA-123: Fix the bug")

		r := execute(t, dir, file, "-p", `[a-zA-Z]+-\d+`, "-t", "{{ match }}: {{ message }}")
		require.NoError(t, r.err)
		assert.Contains(t, r.stderr, `Pattern '[a-zA-Z]+-\d+' matches the original message. Skipping.`)
		assert.Equal(t, "JIRA-123: Fix the bug", content(t, file))
	})

	t.Run("outside a repository", func(t *testing.T) {
		dir := t.TempDir()
		file := gittest.WriteMessage(t, dir, "Fix the bug")

		r := execute(t, dir, file, "-p", `[a-zA-Z]+-\d+`, "-t", "{{ match }}")
		require.NoError(t, r.err)
		assert.Contains(t, r.stderr, "Not a valid git repo")
		assert.Equal(t, "Fix the bug", content(t, file))
	})

	t.Run("dry run prints instead of writing", func(t *testing.T) {
		dir := gittest.InitRepo(t, "feature/JIRA-123-fix")
		file := gittest.WriteMessage(t, dir, "Fix the bug")

		r := execute(t, dir, file, "-p", `[a-zA-Z]+-\d+`, "-t", "{{ match }}: {{ message }}", "--dry-run")
		require.NoError(t, r.err)
		assert.Contains(t, r.stdout, "JIRA-123: Fix the bug")
		assert.Equal(t, "Fix the bug", content(t, file))
	})
}

func TestRootCommandFailures(t *testing.T) {
	t.Run("malformed pattern fails without touching the file", func(t *testing.T) {
		dir := gittest.InitRepo(t, "feature/JIRA-123-fix")
		file := gittest.WriteMessage(t, dir, "Fix the bug")

		r := execute(t, dir, file, "-p", `([a-z`, "-t", "{{ match }}")
		require.Error(t, r.err)
		assert.Contains(t, r.stderr, "[ERROR] invalid pattern")
		assert.NotContains(t, r.stdout, "Usage:")
		assert.Equal(t, "Fix the bug", content(t, file))
	})

	t.Run("missing required options print usage to stdout", func(t *testing.T) {
		dir := gittest.InitRepo(t, "main")
		file := gittest.WriteMessage(t, dir, "Fix the bug")

		r := execute(t, dir, file, "-p", `[a-z]+`)
		require.Error(t, r.err)
		assert.Contains(t, r.err.Error(), "template")
		assert.Contains(t, r.stdout, "Usage:")
		assert.Equal(t, "Fix the bug", content(t, file))
	})

	t.Run("missing positional argument", func(t *testing.T) {
		r := execute(t, t.TempDir(), "-p", `[a-z]+`, "-t", "x")
		require.Error(t, r.err)
		assert.Contains(t, r.stdout, "Usage:")
	})

	t.Run("invalid source type is a parse error", func(t *testing.T) {
		dir := gittest.InitRepo(t, "main")
		file := gittest.WriteMessage(t, dir, "Fix the bug")

		r := execute(t, dir, file, "-p", `[a-z]+`, "-t", "x", "-s", "CurrentBranch")
		require.Error(t, r.err)
		assert.Contains(t, r.err.Error(), "unknown source type")
		assert.Contains(t, r.stdout, "Usage:")
		assert.Equal(t, "Fix the bug", content(t, file))
	})
}

func TestRootCommandConfigFile(t *testing.T) {
	dir := gittest.InitRepo(t, "feature/JIRA-123-fix")
	file := gittest.WriteMessage(t, dir, "Fix the bug")

	cfgPath := filepath.Join(t.TempDir(), "giti.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[defaults]
pattern = '[A-Z]+-\d+'
template = "[{{ match }}] {{ message }}"
`), 0644))

	t.Run("supplies defaults", func(t *testing.T) {
		r := execute(t, dir, file, "--config", cfgPath)
		require.NoError(t, r.err)
		assert.Equal(t, "[JIRA-123] Fix the bug", content(t, file))
	})

	t.Run("flags override the file", func(t *testing.T) {
		other := gittest.WriteMessage(t, t.TempDir(), "Second")
		r := execute(t, dir, other, "--config", cfgPath, "-t", "{{ match }} - {{ message }}")
		require.NoError(t, r.err)
		assert.Equal(t, "JIRA-123 - Second", content(t, other))
	})

	t.Run("unreadable explicit config", func(t *testing.T) {
		r := execute(t, dir, file, "--config", filepath.Join(t.TempDir(), "nope.toml"), "-p", "x", "-t", "y")
		require.Error(t, r.err)
		assert.NotContains(t, r.stdout, "Usage:")
	})
}

func TestRootCommandConfigSkipPattern(t *testing.T) {
	dir := gittest.InitRepo(t, "feature/JIRA-123-fix")

	cfgPath := filepath.Join(t.TempDir(), "giti.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[defaults]
skip_pattern = '^Merge '
`), 0644))

	pattern := `[a-zA-Z]+-\d+`
	tmpl := "{{ match }}: {{ message }}"

	omitted := gittest.WriteMessage(t, t.TempDir(), "JIRA-123: Fix")
	r := execute(t, dir, omitted, "--config", cfgPath, "-p", pattern, "-t", tmpl)
	require.NoError(t, r.err)

	explicit := gittest.WriteMessage(t, t.TempDir(), "JIRA-123: Fix")
	r = execute(t, dir, explicit, "--config", cfgPath, "-p", pattern, "-t", tmpl, "-k", pattern)
	require.NoError(t, r.err)

	assert.Equal(t, "JIRA-123: Fix", content(t, omitted))
	assert.Equal(t, content(t, explicit), content(t, omitted))
}
