package config

import (
	"os"
	"path/filepath"
	"testing"

	"glyph_editor/editor/bitmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glyph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// clearEnv: 테스트 중에는 GLYPH_* 값이 비어 있도록
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GLYPH_FRONTEND", "GLYPH_BIT_MODE", "GLYPH_INITIAL", "GLYPH_CELL_SIZE", "GLYPH_FPS"} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
frontend: x11
bit_mode: flip
initial: "0x1c, 0x22, 0x41, 0x41, 0x41, 0x22, 0x1c, 0x00"
x11:
  cell_size: 24
  fps: 60
  fg: 0xFF112233
term:
  on: "@"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, FrontendX11, cfg.Frontend)
	assert.Equal(t, bitmap.ModeFlip, cfg.Mode())
	assert.Equal(t, bitmap.Bytes{0x1c, 0x22, 0x41, 0x41, 0x41, 0x22, 0x1c, 0x00}, cfg.InitialBytes())
	assert.Equal(t, 24, cfg.X11.CellSize)
	assert.Equal(t, 60, cfg.X11.FPS)
	assert.Equal(t, uint32(0xFF112233), cfg.X11.Fg)

	on, off := cfg.PreviewRunes()
	assert.Equal(t, '@', on)
	assert.Equal(t, '.', off)
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, FrontendTerm, cfg.Frontend)
	assert.Equal(t, bitmap.ModeSet, cfg.Mode())
	assert.Equal(t, bitmap.Bytes{}, cfg.InitialBytes())
	assert.Equal(t, 32, cfg.X11.CellSize)
	assert.Equal(t, 16, cfg.X11.Padding)
	assert.Equal(t, 30, cfg.X11.FPS)
	assert.Equal(t, uint32(0xFFFFFFFF), cfg.X11.Bg)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GLYPH_FRONTEND", "X11")
	t.Setenv("GLYPH_BIT_MODE", "flip")
	t.Setenv("GLYPH_CELL_SIZE", "40")
	t.Setenv("GLYPH_FPS", "10")
	t.Setenv("GLYPH_INITIAL", "0x01, 0, 0, 0, 0, 0, 0, 0")

	path := writeConfig(t, "frontend: term\nbit_mode: set\n")
	cfg, err := Load(path)
	require.Error(t, err) // "0"에는 0x 접두사가 없다

	t.Setenv("GLYPH_INITIAL", "0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, FrontendX11, cfg.Frontend)
	assert.Equal(t, bitmap.ModeFlip, cfg.Mode())
	assert.Equal(t, 40, cfg.X11.CellSize)
	assert.Equal(t, 10, cfg.X11.FPS)
	assert.Equal(t, byte(0x01), cfg.InitialBytes()[0])
}

func TestLoad_BadEnvNumber(t *testing.T) {
	clearEnv(t)
	t.Setenv("GLYPH_CELL_SIZE", "big")

	_, err := Load("")
	assert.ErrorContains(t, err, "GLYPH_CELL_SIZE")
}

func TestLoad_FileNotFound(t *testing.T) {
	clearEnv(t)
	_, err := Load("/nonexistent/path/glyph.yaml")
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "frontend: [invalid yaml\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"unknown frontend", func(c *Config) { c.Frontend = "web" }, "frontend"},
		{"unknown bit mode", func(c *Config) { c.BitMode = "toggle" }, "bit_mode"},
		{"bad initial", func(c *Config) { c.Initial = "0x01" }, "initial"},
		{"tiny cell", func(c *Config) { c.X11.CellSize = 4 }, "cell_size"},
		{"huge cell", func(c *Config) { c.X11.CellSize = 128 }, "cell_size"},
		{"huge padding", func(c *Config) { c.X11.Padding = 500 }, "padding"},
		{"fps too high", func(c *Config) { c.X11.FPS = 1000 }, "fps"},
		{"negative padding", func(c *Config) { c.X11.Padding = -1 }, "padding"},
		{"long preview rune", func(c *Config) { c.Term.On = "##" }, "term.on"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}

	assert.NoError(t, Default().Validate())

	edge := Default()
	edge.X11.CellSize = MaxCellSize
	edge.X11.Padding = MaxPadding
	assert.NoError(t, edge.Validate())
}
