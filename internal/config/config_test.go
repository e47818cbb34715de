package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Nil(t, cfg.Color)
	assert.False(t, cfg.Trace)
	assert.False(t, cfg.ShowParse)
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("prompt: \"nlisp> \"\ncolor: false\ntrace: true\nshow_parse: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "nlisp> ", cfg.Prompt)
	require.NotNil(t, cfg.Color)
	assert.False(t, *cfg.Color)
	assert.True(t, cfg.Trace)
	assert.True(t, cfg.ShowParse)
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("trace: true\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPrompt, cfg.Prompt)
	assert.Nil(t, cfg.Color)
	assert.True(t, cfg.Trace)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("colour: true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode config")

	_, err = Parse([]byte("trace: [1, 2\n"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "nlisp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"$ \"\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "$ ", cfg.Prompt)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestUseColor(t *testing.T) {
	on, off := true, false
	assert.True(t, (&Config{}).UseColor(true))
	assert.False(t, (&Config{}).UseColor(false))
	assert.True(t, (&Config{Color: &on}).UseColor(false))
	assert.False(t, (&Config{Color: &off}).UseColor(true))
}
