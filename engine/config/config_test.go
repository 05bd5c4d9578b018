package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/bumpslider/engine/colors"
	"github.com/hubastard/bumpslider/engine/serialize"
)

func TestParseOverDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
title = "demo"
width = 640
live_update = true
theme = "teal"
`))
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, Default().Height, cfg.Height)
	assert.True(t, cfg.LiveUpdate)
	assert.False(t, cfg.IsThemeFile())

	cc := cfg.CoreConfig()
	assert.Equal(t, 640, cc.Width)
	assert.Equal(t, float32(3), cc.DragThreshold)
}

func TestParseRejects(t *testing.T) {
	_, err := Parse([]byte(`widht = 10`))
	assert.Error(t, err)
	_, err = Parse([]byte(`width = -1`))
	assert.Error(t, err)
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestEncodeRoundTrip(t *testing.T) {
	src := Default()
	src.Theme = "themes/mine.toml"
	src.LogJSON = true
	data, err := src.Encode()
	require.NoError(t, err)
	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, src, back)
}

func TestResolveWithEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sandbox.toml")
	require.NoError(t, os.WriteFile(path, []byte("title = \"from file\"\ntheme = \"clay\"\n"), 0o644))

	env := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(env, []byte(EnvConfig+"="+path+"\n"+EnvLogLevel+"=debug\n"), 0o644))

	t.Setenv(EnvConfig, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvTheme, "midnight")
	os.Unsetenv(EnvConfig)
	os.Unsetenv(EnvLogLevel)
	require.NoError(t, LoadEnv(env, filepath.Join(dir, "missing.env")))

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "from file", cfg.Title)
	assert.Equal(t, "midnight", cfg.Theme, "environment wins over the file")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestConfigureLogging(t *testing.T) {
	defer logrus.SetLevel(logrus.GetLevel())
	defer logrus.SetFormatter(logrus.StandardLogger().Formatter)

	cfg := Default()
	cfg.LogLevel = "warn"
	cfg.LogJSON = true
	require.NoError(t, cfg.ConfigureLogging())
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	cfg.LogLevel = "loud"
	assert.Error(t, cfg.ConfigureLogging())
}

func TestLoadTheme(t *testing.T) {
	cfg := Default()
	th, err := cfg.LoadTheme("")
	require.NoError(t, err)
	assert.Equal(t, "default", th.Name)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mine.toml"), []byte("name = \"mine\"\nbase = \"teal\"\n"), 0o644))
	cfg.Theme = "mine.toml"
	assert.True(t, cfg.IsThemeFile())
	th, err = cfg.LoadTheme(dir)
	require.NoError(t, err)
	assert.Equal(t, "mine", th.Name)
	assert.Equal(t, colors.Black, th.Color(colors.ColorButtonBg))

	cfg.Theme = "absent.toml"
	_, err = cfg.LoadTheme(dir)
	assert.Error(t, err)
}

func TestThemeWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \"one\"\n"), 0o644))

	w, err := WatchTheme(path)
	require.NoError(t, err)
	defer w.Close()

	_, ok := w.Poll()
	assert.False(t, ok)

	// unrelated files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("name = \"two\"\n[palette]\nbg = \"#000\"\n"), 0o644))

	select {
	case th := <-w.Updates():
		assert.Equal(t, "two", th.Name)
		assert.Equal(t, colors.Black, th.Color(colors.ColorBg))
	case <-time.After(5 * time.Second):
		t.Fatal("no theme update")
	}
}

func TestStateStore(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)

	st, err := OpenState("bumpslider_test")
	require.NoError(t, err)

	nodes, err := st.Load()
	require.NoError(t, err)
	assert.Nil(t, nodes)

	doc := []serialize.Node{{
		Type: "SliderB",
		Name: "volume",
		Properties: serialize.Properties{
			{Key: "value", Value: "30"},
			{Key: "orient", Value: "vertical"},
		},
	}}
	require.NoError(t, st.Save(doc))

	again, err := OpenState("bumpslider_test")
	require.NoError(t, err)
	nodes, err = again.Load()
	require.NoError(t, err)
	assert.Equal(t, doc, nodes)

	require.NoError(t, again.Clear())
	nodes, err = again.Load()
	require.NoError(t, err)
	assert.Empty(t, nodes)
}
