package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/bumpslider/engine/assets"
	"github.com/hubastard/bumpslider/engine/colors"
	"github.com/hubastard/bumpslider/engine/config"
	"github.com/hubastard/bumpslider/engine/serialize"
	"github.com/hubastard/bumpslider/internal/demo"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvConfig, filepath.Join(t.TempDir(), "none.toml"))
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeDocument(t *testing.T, volume int) string {
	t.Helper()
	d := demo.New(false)
	d.Volume.SetValue(volume)
	data, err := serialize.Marshal(d.Document())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRenderWritesScaledPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "shot.png")
	msg, err := run(t, "render", out, "--scale", "0.5", "--theme", "midnight")
	require.NoError(t, err)
	assert.Contains(t, msg, "wrote "+out)

	img, err := assets.LoadPNG(out)
	require.NoError(t, err)
	assert.Equal(t, int(demo.Size.W)/2, img.Bounds().Dx())
	assert.Equal(t, int(demo.Size.H)/2, img.Bounds().Dy())
}

func TestRenderRejectsBadScale(t *testing.T) {
	_, err := run(t, "render", filepath.Join(t.TempDir(), "x.png"), "--scale", "0")
	assert.Error(t, err)
}

func TestRenderUnknownTheme(t *testing.T) {
	_, err := run(t, "render", filepath.Join(t.TempDir(), "x.png"), "--theme", "no-such-theme.toml")
	assert.Error(t, err)
}

func TestDumpPrintsDocument(t *testing.T) {
	out, err := run(t, "dump", "--state", writeDocument(t, 64))
	require.NoError(t, err)

	nodes, err := serialize.Unmarshal([]byte(out))
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	n, ok := serialize.Find(nodes, demo.NameVolume)
	require.True(t, ok)
	v, _ := n.Properties.Get("value")
	assert.Equal(t, "64", v)
}

func TestLoadReportsValues(t *testing.T) {
	out, err := run(t, "load", writeDocument(t, 12))
	require.NoError(t, err)
	assert.Contains(t, out, "volume 12")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := run(t, "load", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestThemeCommand(t *testing.T) {
	out, err := run(t, "theme")
	require.NoError(t, err)
	assert.Equal(t, "clay\ndefault\nmidnight\nteal\n", out)

	out, err = run(t, "theme", "teal")
	require.NoError(t, err)
	th, err := colors.ParseTheme([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "teal", th.Name)

	_, err = run(t, "theme", "plaid")
	assert.Error(t, err)
}
