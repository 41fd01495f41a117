// glyph-editor: 8x8 비트맵 글리프 에디터
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"glyph_editor/editor"
	"glyph_editor/editor/bitmap"
	"glyph_editor/editor/config"
	"glyph_editor/editor/grid"
	"glyph_editor/editor/handlefile"
	"glyph_editor/editor/terminal"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var (
	cfgFile  string
	logLevel string
	bitMode  string
	envDir   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "glyph-editor",
		Short: "8x8 bitmap glyph editor",
		Long: `Toggle pixels on an 8x8 grid and copy the result as a hex literal list
for firmware source code, e.g.

  static const unsigned char icons[] PROGMEM = {
    0x1c, 0x22, 0x41, 0x41, 0x41, 0x22, 0x1c, 0x00
  };

Byte i is display column i, bit j is display row j (draw_bitmap_8 layout).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr())
			dir := envDir
			if dir == "" {
				dir = handlefile.GetProjectRoot()
			}
			_, err := handlefile.LoadEnv(dir)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runFrontend(cmd.OutOrStdout(), cfg)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (YAML)")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "log level")
	rootCmd.PersistentFlags().StringVar(&bitMode, "bit-mode", "", "bit update mode: set or flip")
	rootCmd.PersistentFlags().StringVar(&envDir, "env-dir", "", "directory holding .env files (default: project root)")

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "Edit a glyph in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cfg.Frontend = config.FrontendTerm
			return runFrontend(cmd.OutOrStdout(), cfg)
		},
	}
	rootCmd.AddCommand(termCmd)

	x11Cmd := &cobra.Command{
		Use:   "x11",
		Short: "Edit a glyph in an X11 window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cfg.Frontend = config.FrontendX11
			return runFrontend(cmd.OutOrStdout(), cfg)
		},
	}
	rootCmd.AddCommand(x11Cmd)

	decodeCmd := &cobra.Command{
		Use:   "decode <hex list>",
		Short: "Preview a pasted hex literal list as the display would draw it",
		Long: `Preview a pasted hex literal list.

Examples:
  glyph-editor decode "0x1c, 0x22, 0x41, 0x41, 0x41, 0x22, 0x1c, 0x00"
  glyph-editor decode 0x1c 0x22 0x41 0x41 0x41 0x22 0x1c 0x00`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			on, off := cfg.PreviewRunes()
			return runDecode(cmd.OutOrStdout(), strings.Join(args, ","), on, off)
		},
	}
	rootCmd.AddCommand(decodeCmd)

	encodeCmd := &cobra.Command{
		Use:   "encode <x,y>...",
		Short: "Toggle the given pixels on an empty grid and print the hex literal list",
		Long: `Toggle pixels without opening an editor.

Examples:
  glyph-editor encode 0,0          # 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00
  glyph-editor encode 3,2 7,7`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runEncode(cmd.OutOrStdout(), cfg, args)
		},
	}
	rootCmd.AddCommand(encodeCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "glyph-editor %s\n", Version)
			fmt.Fprintf(out, "  Commit:     %s\n", Commit)
			fmt.Fprintf(out, "  Build Time: %s\n", BuildTime)
		},
	}
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

func setupLogging(out io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out})
}

// loadConfig: 설정 파일 + 환경변수 + 플래그 순서로 덮어쓴다
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if bitMode != "" {
		cfg.BitMode = bitMode
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newScreen: 터미널 화면 생성 (테스트에서 시뮬레이션 화면으로 교체)
var newScreen = tcell.NewScreen

// runFrontend: 설정된 프론트엔드로 에디터 실행. 종료 시 마지막 출력 필드 값을 out에 찍는다
func runFrontend(out io.Writer, cfg *config.Config) error {
	enc := bitmap.NewEncoder(cfg.Mode(), cfg.InitialBytes())
	log.Info().
		Str("frontend", cfg.Frontend).
		Str("bit_mode", cfg.Mode().String()).
		Msg("에디터 시작")

	var g *grid.Grid
	switch cfg.Frontend {
	case config.FrontendX11:
		g = grid.New(enc, cfg.X11.CellSize)
		edt, err := editor.NewEditor(cfg, g)
		if err != nil {
			return err
		}
		if err := edt.Run(); err != nil {
			return err
		}

	default:
		g = grid.New(enc, terminal.CellWidth)
		screen, err := newScreen()
		if err != nil {
			return err
		}
		// tcell이 터미널을 점유하는 동안 콘솔 로그는 화면을 깨뜨린다
		if zerolog.GlobalLevel() > zerolog.DebugLevel {
			log.Logger = zerolog.Nop()
		}
		on, off := cfg.PreviewRunes()
		display := terminal.New(screen, g, on, off)
		if err := display.Init(); err != nil {
			return err
		}
		if err := display.Run(); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, enc.Hex())
	return nil
}

func runDecode(out io.Writer, input string, on, off rune) error {
	b, err := bitmap.ParseHex(input)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, b.Hex())
	for _, line := range b.Preview(on, off) {
		fmt.Fprintln(out, line)
	}
	return nil
}

// runEncode: 인자로 받은 (x, y)마다 그리드를 한 번씩 클릭한 것처럼 처리
func runEncode(out io.Writer, cfg *config.Config, args []string) error {
	enc := bitmap.NewEncoder(cfg.Mode(), cfg.InitialBytes())
	g := grid.New(enc, terminal.CellWidth)

	for _, arg := range args {
		p, err := parsePixel(arg)
		if err != nil {
			return err
		}
		i, ok := g.ControlAt(p.Y, p.X)
		if !ok {
			return bitmap.ErrPixelOutOfRange{Pixel: p}
		}
		if err := g.Press(i); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, enc.Hex())
	return nil
}

func parsePixel(s string) (bitmap.Pixel, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return bitmap.Pixel{}, fmt.Errorf("invalid pixel %q, want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return bitmap.Pixel{}, fmt.Errorf("invalid pixel %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return bitmap.Pixel{}, fmt.Errorf("invalid pixel %q: %w", s, err)
	}
	return bitmap.Pixel{X: x, Y: y}, nil
}
