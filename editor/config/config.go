// Package config: 에디터 설정 로드 및 검증
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"glyph_editor/editor/bitmap"

	"gopkg.in/yaml.v3"
)

// 프론트엔드 이름
const (
	FrontendTerm = "term"
	FrontendX11  = "x11"
)

// X11 윈도우 크기 제한. 윈도우 폭/높이는 uint16이고, 한 줄의 PutImage가 요청 크기 안에 들어와야 한다.
const (
	MinCellSize = 8
	MaxCellSize = 64
	MaxPadding  = 128
)

// X11Config: X11 윈도우 설정
type X11Config struct {
	CellSize int    `yaml:"cell_size"` // 컨트롤 하나의 바깥 폭 (px)
	Padding  int    `yaml:"padding"`
	FPS      int    `yaml:"fps"`
	Fg       uint32 `yaml:"fg"` // ARGB
	Bg       uint32 `yaml:"bg"`
	Selected uint32 `yaml:"selected"`
	Border   uint32 `yaml:"border"`
	Cursor   uint32 `yaml:"cursor"`
}

// TermConfig: 터미널 프론트엔드 설정
type TermConfig struct {
	On  string `yaml:"on"`  // 미리보기에서 켜진 픽셀
	Off string `yaml:"off"` // 미리보기에서 꺼진 픽셀
}

// Config: 전체 설정
type Config struct {
	Frontend string     `yaml:"frontend"`
	BitMode  string     `yaml:"bit_mode"` // "set" or "flip"
	Initial  string     `yaml:"initial"`  // 시작 글리프 (헥사 리터럴 목록, 선택)
	X11      X11Config  `yaml:"x11"`
	Term     TermConfig `yaml:"term"`
}

// Default: 기본값만 적용된 설정
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load: YAML 설정 파일 로드. path가 비어 있으면 기본값 사용
// 파일 다음에 환경변수(GLYPH_*)를 덮어쓰고, 마지막에 기본값과 검증
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.Frontend = strings.ToLower(strings.TrimSpace(c.Frontend))
	if c.Frontend == "" {
		c.Frontend = FrontendTerm
	}
	if c.BitMode == "" {
		c.BitMode = bitmap.ModeSet.String()
	}
	if c.X11.CellSize == 0 {
		c.X11.CellSize = 32
	}
	if c.X11.Padding == 0 {
		c.X11.Padding = 16
	}
	if c.X11.FPS == 0 {
		c.X11.FPS = 30
	}
	if c.X11.Fg == 0 {
		c.X11.Fg = 0xFF000000
	}
	if c.X11.Bg == 0 {
		c.X11.Bg = 0xFFFFFFFF
	}
	if c.X11.Selected == 0 {
		c.X11.Selected = 0xFFFFD54F
	}
	if c.X11.Border == 0 {
		c.X11.Border = 0xFF808080
	}
	if c.X11.Cursor == 0 {
		c.X11.Cursor = 0xFF1E88E5
	}
	if c.Term.On == "" {
		c.Term.On = "#"
	}
	if c.Term.Off == "" {
		c.Term.Off = "."
	}
}

// applyEnv: GLYPH_* 환경변수 반영 (.env 파일에서 로드된 값 포함)
func (c *Config) applyEnv() error {
	if v := os.Getenv("GLYPH_FRONTEND"); v != "" {
		c.Frontend = v
	}
	if v := os.Getenv("GLYPH_BIT_MODE"); v != "" {
		c.BitMode = v
	}
	if v := os.Getenv("GLYPH_INITIAL"); v != "" {
		c.Initial = v
	}
	if v := os.Getenv("GLYPH_CELL_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GLYPH_CELL_SIZE: %w", err)
		}
		c.X11.CellSize = n
	}
	if v := os.Getenv("GLYPH_FPS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GLYPH_FPS: %w", err)
		}
		c.X11.FPS = n
	}
	return nil
}

// Validate: 잘못된 값을 모두 모아서 반환
func (c *Config) Validate() error {
	var errs []error

	switch c.Frontend {
	case FrontendTerm, FrontendX11:
	default:
		errs = append(errs, fmt.Errorf("frontend: unknown value %q (want %s or %s)", c.Frontend, FrontendTerm, FrontendX11))
	}
	if _, err := bitmap.ParseMode(c.BitMode); err != nil {
		errs = append(errs, fmt.Errorf("bit_mode: %w", err))
	}
	if c.Initial != "" {
		if _, err := bitmap.ParseHex(c.Initial); err != nil {
			errs = append(errs, fmt.Errorf("initial: %w", err))
		}
	}
	if c.X11.CellSize < MinCellSize || c.X11.CellSize > MaxCellSize {
		errs = append(errs, fmt.Errorf("x11.cell_size: must be between %d and %d, got %d", MinCellSize, MaxCellSize, c.X11.CellSize))
	}
	if c.X11.FPS < 1 || c.X11.FPS > 240 {
		errs = append(errs, fmt.Errorf("x11.fps: must be between 1 and 240, got %d", c.X11.FPS))
	}
	if c.X11.Padding < 0 || c.X11.Padding > MaxPadding {
		errs = append(errs, fmt.Errorf("x11.padding: must be between 0 and %d, got %d", MaxPadding, c.X11.Padding))
	}
	if len([]rune(c.Term.On)) != 1 || len([]rune(c.Term.Off)) != 1 {
		errs = append(errs, fmt.Errorf("term.on/term.off: must be a single character"))
	}

	return errors.Join(errs...)
}

// Mode: 검증을 통과한 bit_mode를 Mode로
func (c *Config) Mode() bitmap.Mode {
	m, _ := bitmap.ParseMode(c.BitMode)
	return m
}

// InitialBytes: 시작 글리프. 없으면 0
func (c *Config) InitialBytes() bitmap.Bytes {
	if c.Initial == "" {
		return bitmap.Bytes{}
	}
	b, _ := bitmap.ParseHex(c.Initial)
	return b
}

// PreviewRunes: 미리보기용 켜짐/꺼짐 문자
func (c *Config) PreviewRunes() (on, off rune) {
	return []rune(c.Term.On)[0], []rune(c.Term.Off)[0]
}
