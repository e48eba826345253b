// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dialog = `
name = "dialog"
width = 300
height = 100

[root]
layout = "form"
spacing = 6

[[root.children]]
name = "title"
text = "hello world"
form = { left = "8", top = "8" }

[[root.children]]
name = "ok"
width = 80
height = 24
form = { right = "100%-8", bottom = "100%-8" }

[[root.children]]
name = "cancel"
width = 80
height = 24
form = { right = "ok", bottom = "ok.bottom" }
`

func writeScene(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestLayoutCommand(t *testing.T) {
	path := writeScene(t, "dialog.toml", dialog)
	out, _, err := run(t, "layout", path)
	require.NoError(t, err)
	assert.Contains(t, out, "dialog")
	assert.Contains(t, out, "300×100")
	for _, row := range []string{"title", "ok", "cancel", "label", "box", "212", "126"} {
		assert.Contains(t, out, row)
	}
}

func TestLayoutWidthOverride(t *testing.T) {
	path := writeScene(t, "dialog.toml", dialog)
	out, _, err := run(t, "layout", "--width", "400", path)
	require.NoError(t, err)
	assert.Contains(t, out, "400×100")
	// ok moves with the right edge.
	assert.Contains(t, out, "312")
}

func TestVerboseLogging(t *testing.T) {
	path := writeScene(t, "dialog.toml", dialog)
	_, stderr, err := run(t, "-v", "layout", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "laid out")
	assert.Contains(t, stderr, "scene built")

	_, stderr, err = run(t, "layout", path)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "laid out")
}

func TestRenderCommand(t *testing.T) {
	path := writeScene(t, "dialog.toml", dialog)
	out := filepath.Join(t.TempDir(), "preview.png")
	stdout, _, err := run(t, "render", "-o", out, "--scale", "2", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+out)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 100, cfg.Height)
}

func TestRenderDefaultOutput(t *testing.T) {
	path := writeScene(t, "grid.yaml", "root:\n  columns: 2\n  children:\n    - {width: 10, height: 10}\n    - {text: hi}\n")
	_, _, err := run(t, "render", path)
	require.NoError(t, err)
	_, err = os.Stat(strings.TrimSuffix(path, ".yaml") + ".png")
	assert.NoError(t, err)
}

func TestCommandErrors(t *testing.T) {
	_, _, err := run(t, "layout", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := writeScene(t, "bad.yaml", "root:\n  layout: form\n  children:\n    - {form: {left: \"1/0\"}}\n")
	_, _, err = run(t, "layout", path)
	assert.ErrorContains(t, err, "divides by zero")

	path = writeScene(t, "dialog.toml", dialog)
	_, _, err = run(t, "layout", "--scale", "-1", path)
	assert.ErrorContains(t, err, "invalid scale")

	_, _, err = run(t, "layout")
	assert.Error(t, err)
}

func TestLoggerFromContext(t *testing.T) {
	assert.Equal(t, log.Default(), loggerFromContext(context.Background()))
	l := newLogger(&bytes.Buffer{}, log.DebugLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}
