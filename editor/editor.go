package editor

import (
	"fmt"
	"time"

	"glyph_editor/editor/commander"
	"glyph_editor/editor/config"
	"glyph_editor/editor/grid"
	"glyph_editor/editor/screener"

	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/rs/zerolog/log"
)

// screen: Editor가 사용하는 렌더러 기능 (X 없이 테스트할 수 있도록 분리)
type screen interface {
	HitTest(px, py int) (int, bool)
	Redraw(g *grid.Grid)
	ReflectCursorAt(i int)
	FlushBuffer()
}

// Editor: 그리드와 screener를 가지고,
//
//	FPS 기반 화면 업데이트 & 이벤트 루프를 관리
type Editor struct {
	grid      *grid.Grid
	screen    screen
	commands  chan commander.Command
	fpsTicker *time.Ticker
	running   bool
	dirty     bool
	close     func()
}

// NewEditor: X 연결, 윈도우, 커맨더를 만들고 Editor 인스턴스 생성
func NewEditor(cfg *config.Config, g *grid.Grid) (*Editor, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("XGB 연결 실패: %w", err)
	}
	keybind.Initialize(xu)

	palette := screener.Palette{
		Fg:       cfg.X11.Fg,
		Bg:       cfg.X11.Bg,
		Selected: cfg.X11.Selected,
		Border:   cfg.X11.Border,
		Cursor:   cfg.X11.Cursor,
	}
	scr, err := screener.NewScreener(xu, g, cfg.X11.Padding, palette)
	if err != nil {
		xu.Conn().Close()
		return nil, err
	}

	cmdr := commander.NewCommander(xu)
	cmdr.StartListening()

	e := newEditor(g, scr, cmdr.GetCommandChan(), cfg.X11.FPS)
	e.close = scr.Close
	return e, nil
}

func newEditor(g *grid.Grid, scr screen, commands chan commander.Command, fps int) *Editor {
	return &Editor{
		grid:      g,
		screen:    scr,
		commands:  commands,
		fpsTicker: time.NewTicker(time.Second / time.Duration(fps)),
		running:   true,
		dirty:     true,
	}
}

// Run: 메인 이벤트 루프
// 커맨드는 바로 그리드에 반영하고, 화면 전송은 FPS 틱마다 변경이 있을 때만 한다.
func (e *Editor) Run() error {
	defer e.Stop()

	e.screen.Redraw(e.grid)
	for e.running {
		select {
		case <-e.fpsTicker.C:
			if e.dirty {
				e.screen.FlushBuffer()
				e.dirty = false
			}
		case cmd, ok := <-e.commands:
			if !ok {
				log.Info().Msg("X 연결이 종료되었습니다")
				return nil
			}
			if err := e.apply(cmd); err != nil {
				return err
			}
		}
	}
	return nil
}

// apply: 커맨드 하나 처리
func (e *Editor) apply(cmd commander.Command) error {
	switch cmd.Code {
	case commander.CmdExit:
		e.running = false
		return nil

	case commander.CmdPress:
		click, ok := cmd.Input.(commander.ClickInput)
		if !ok {
			return nil
		}
		i, hit := e.screen.HitTest(click.X, click.Y)
		if !hit {
			return nil
		}
		col, line := grid.Position(i)
		if err := e.grid.PressAt(col, line); err != nil {
			return err
		}
		e.screen.Redraw(e.grid)

	case commander.CmdMove:
		move, ok := cmd.Input.(commander.MoveInput)
		if !ok {
			return nil
		}
		// 포커스만 바뀌므로 커서만 다시 그린다
		e.screen.ReflectCursorAt(e.grid.MoveFocus(move.DX, move.DY))

	case commander.CmdPressFocused:
		if err := e.grid.PressFocused(); err != nil {
			return err
		}
		e.screen.Redraw(e.grid)

	case commander.CmdClear:
		if err := e.grid.Clear(); err != nil {
			return err
		}
		e.screen.Redraw(e.grid)

	case commander.CmdRedraw:
		e.screen.Redraw(e.grid)
	}

	e.dirty = true
	return nil
}

// Output: 현재 출력 필드 값
func (e *Editor) Output() string {
	return e.grid.Output()
}

// Stop: Editor 종료
func (e *Editor) Stop() {
	e.running = false
	e.fpsTicker.Stop()
	if e.close != nil {
		e.close()
		e.close = nil
	}
}
