package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, 1_000_000, cfg.Editor.MaxFileSize)
	assert.Equal(t, 500, cfg.Editor.DebounceMS)
	assert.Equal(t, "tokyo-night", cfg.TUI.Theme)
}

func TestLoad_PartialFileMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("editor:\n  debounce_ms: 250\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.Editor.DebounceMS)
	assert.Equal(t, 1_000_000, cfg.Editor.MaxFileSize, "unset fields keep defaults")
	assert.NotEmpty(t, cfg.Editor.Extensions)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("editor: [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults valid", mutate: func(*Config) {}},
		{name: "negative size", mutate: func(c *Config) { c.Editor.MaxFileSize = -1 }, wantErr: true},
		{name: "negative debounce", mutate: func(c *Config) { c.Editor.DebounceMS = -1 }, wantErr: true},
		{name: "bad glob", mutate: func(c *Config) { c.Editor.Extensions = []string{"*.{tex"} }, wantErr: true},
		{name: "unknown theme", mutate: func(c *Config) { c.TUI.Theme = "no-such-theme" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_ReportsFieldNames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Editor.MaxFileSize = -1
	cfg.Editor.Extensions = []string{"*.{tex"}

	err := cfg.Validate()
	require.Error(t, err)

	var fieldErrs criterio.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Contains(t, err.Error(), "editor.max_file_size")
	assert.Contains(t, err.Error(), "editor.extensions[0]")
}

func TestRecognizedFile(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.RecognizedFile("paper.tex"))
	assert.True(t, cfg.RecognizedFile("notes.txt"))
	assert.False(t, cfg.RecognizedFile("image.png"))
	assert.False(t, cfg.RecognizedFile("archive.tar.gz"))
}
