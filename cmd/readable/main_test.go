package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/erayd/readable"
	main "github.com/erayd/readable/cmd/readable"
	"github.com/erayd/readable/xxhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioHTML = `<p>Hello <b>world</b>.</p>`

func newTestMain(t *testing.T, env map[string]string) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.Getenv = func(key string) string { return env[key] }
	m.Stdin = &bytes.Buffer{}
	return m
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	parser, err := kong.New(cli,
		kong.Writers(stdout, &bytes.Buffer{}),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	for _, cmd := range []string{"extract", "render", "convert", "show", "serve"} {
		assert.Contains(t, stdout.String(), cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns error without command", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := newTestMain(t, nil).Run(context.Background(), nil, stdout, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, stdout.String(), "extract")
	})

	t.Run("shows help", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := newTestMain(t, nil).Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "convert")
	})

	t.Run("extracts file to content json", func(t *testing.T) {
		t.Parallel()

		file := writeFile(t, "page.html", scenarioHTML)
		stdout := &bytes.Buffer{}

		err := newTestMain(t, nil).Run(context.Background(), []string{"extract", file}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, `[[0,"Hello "],[4,"world"],[0,"."]]`+"\n", stdout.String())
	})

	t.Run("extracts files in argument order", func(t *testing.T) {
		t.Parallel()

		first := writeFile(t, "first.html", `<p>First</p>`)
		second := writeFile(t, "second.html", `<p>Second</p>`)
		stdout := &bytes.Buffer{}

		err := newTestMain(t, nil).Run(context.Background(), []string{"extract", "-c", "2", first, second}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, "[[0,\"First\"]]\n[[0,\"Second\"]]\n", stdout.String())
	})

	t.Run("converts file to markdown", func(t *testing.T) {
		t.Parallel()

		file := writeFile(t, "page.html", scenarioHTML)
		stdout := &bytes.Buffer{}

		err := newTestMain(t, nil).Run(context.Background(), []string{"convert", file}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, "Hello **world**.\n", stdout.String())
	})

	t.Run("converts file to complete html", func(t *testing.T) {
		t.Parallel()

		file := writeFile(t, "page.html", scenarioHTML)
		stdout := &bytes.Buffer{}

		err := newTestMain(t, nil).Run(context.Background(),
			[]string{"convert", "--format", "html", "--flag", "complete", file}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "<!DOCTYPE html>")
		assert.Contains(t, stdout.String(), "<p>Hello <strong>world</strong>.</p>")
	})

	t.Run("reports missing container", func(t *testing.T) {
		t.Parallel()

		file := writeFile(t, "page.html", scenarioHTML)
		stderr := &bytes.Buffer{}

		err := newTestMain(t, nil).Run(context.Background(),
			[]string{"convert", "--container", "/html/body/article", file}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Equal(t, readable.ENOCONTAINER, readable.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("uses container from config file", func(t *testing.T) {
		t.Parallel()

		file := writeFile(t, "page.html", `<div><p>Skip this</p></div><article><p>Keep this</p></article>`)
		config := writeFile(t, "readable.yaml", "extract:\n  container: /html/body/article\n")
		stdout := &bytes.Buffer{}

		err := newTestMain(t, nil).Run(context.Background(),
			[]string{"--config", config, "extract", file}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, `[[0,"Keep this"]]`+"\n", stdout.String())
	})

	t.Run("stores extraction and shows it", func(t *testing.T) {
		t.Parallel()

		env := map[string]string{"READABLE_DB": filepath.Join(t.TempDir(), "store", "readable.db")}
		file := writeFile(t, "page.html", scenarioHTML)
		address := xxhash.Address(readable.ExtractorHTML, "", []byte(scenarioHTML))

		stdout := &bytes.Buffer{}
		err := newTestMain(t, env).Run(context.Background(), []string{"extract", "--store", file}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, address+"\t"+file+"\n", stdout.String())

		stdout.Reset()
		err = newTestMain(t, env).Run(context.Background(), []string{"show", address + ".md"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "Hello **world**.\n", stdout.String())
	})

	t.Run("stores in cache directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		env := map[string]string{"READABLE_CACHE_DIR": dir}
		file := writeFile(t, "page.html", scenarioHTML)
		address := xxhash.Address(readable.ExtractorHTML, "", []byte(scenarioHTML))

		err := newTestMain(t, env).Run(context.Background(), []string{"extract", "-s", file}, &bytes.Buffer{}, &bytes.Buffer{})
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, address+".json"))
		assert.NoError(t, err)
	})

	t.Run("reports unknown stored address", func(t *testing.T) {
		t.Parallel()

		env := map[string]string{"READABLE_CACHE_DIR": t.TempDir()}

		err := newTestMain(t, env).Run(context.Background(), []string{"show", "ffffffffffffffff.json"}, &bytes.Buffer{}, &bytes.Buffer{})

		assert.Equal(t, readable.ENOTFOUND, readable.ErrorCode(err))
	})
}
