package terminal

import (
	"strings"

	"glyph_editor/editor/bitmap"
	"glyph_editor/editor/grid"

	"github.com/gdamore/tcell/v2"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/rs/zerolog/log"
)

// CellWidth: 컨트롤 하나의 바깥 폭 "[#]"
const CellWidth = 3

const (
	originX = 1
	originY = 1

	outputLabel = "data: "
	helpText    = "click/space: toggle  arrows: move  c: clear  paste: load hex  esc: quit"
)

// 컨테이너 아래 출력 필드, 도움말 위치 (origin 기준 줄 수)
const (
	outputLine = bitmap.Size + 3
	helpLine   = outputLine + 2
	statusLine = helpLine + 1
)

var (
	minDisplayWidth  = originX + len(helpText) + 1
	minDisplayHeight = originY + statusLine + 1
)

// Display: tcell 화면 위에 그리드를 그리고, 마우스/키 이벤트를 그리드로 넘긴다
type Display struct {
	grid   *grid.Grid
	screen tcell.Screen
	on     rune
	off    rune

	lastButtons tcell.ButtonMask

	// 붙여넣기(bracketed paste) 중에 들어온 문자
	pasting bool
	pasted  strings.Builder
	status  string

	events chan tcell.Event
	quit   chan struct{}
}

// New: 이미 만들어진 screen을 받는다 (테스트에서는 SimulationScreen)
func New(screen tcell.Screen, g *grid.Grid, on, off rune) *Display {
	return &Display{
		grid:   g,
		screen: screen,
		on:     on,
		off:    off,
		events: make(chan tcell.Event, 16),
		quit:   make(chan struct{}),
	}
}

// Init: 화면 초기화, 마우스 켜기, 크기 확인 후 첫 화면 그리기
func (d *Display) Init() error {
	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

	if err := d.screen.Init(); err != nil {
		return err
	}
	d.screen.EnableMouse(tcell.MouseButtonEvents)
	d.screen.EnablePaste()

	if err := d.checkScreenSize(); err != nil {
		d.screen.Fini()
		return err
	}

	d.Draw()
	return nil
}

// Run: 이벤트 루프. ESC 등으로 종료될 때까지 블록된다
func (d *Display) Run() error {
	defer d.screen.Fini()
	defer close(d.quit)

	go d.pollLoop()

	for ev := range d.events {
		quit, err := d.HandleEvent(ev)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return nil
}

// NOTE: tcell이 터미널을 점유하고 키 입력/시그널을 가로챈다.
// 이 poller는 이벤트를 받아서 Run 루프로 넘기기만 한다.
func (d *Display) pollLoop() {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			close(d.events)
			return
		}
		select {
		case d.events <- ev:
		case <-d.quit:
			return
		}
	}
}

// HandleEvent: 이벤트 하나 처리. 종료해야 하면 true
func (d *Display) HandleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventPaste:
		return false, d.handlePaste(ev)

	case *tcell.EventKey:
		if d.pasting {
			d.collectPasted(ev)
			return false, nil
		}
		return d.handleKey(ev)

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && d.lastButtons&tcell.Button1 == 0
		d.lastButtons = buttons
		if !pressed {
			return false, nil
		}
		col, line, ok := HitTest(ev.Position())
		if !ok {
			return false, nil
		}
		if err := d.grid.PressAt(col, line); err != nil {
			return false, err
		}
		d.Draw()

	case *tcell.EventResize:
		d.screen.Sync()
		d.Draw()
	}
	return false, nil
}

// handlePaste: 붙여넣기가 끝나면 모은 문자열을 헥사 리터럴 목록으로 읽어 그리드에 반영
func (d *Display) handlePaste(ev *tcell.EventPaste) error {
	if ev.Start() {
		d.pasting = true
		d.pasted.Reset()
		return nil
	}
	if !d.pasting {
		return nil
	}
	d.pasting = false

	b, err := bitmap.ParseHex(d.pasted.String())
	if err != nil {
		d.status = err.Error()
		log.Debug().Err(err).Msg("붙여넣기 무시")
	} else {
		d.grid.Load(b)
		d.status = ""
	}
	d.Draw()
	return nil
}

func (d *Display) collectPasted(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyRune:
		d.pasted.WriteRune(ev.Rune())
	case tcell.KeyEnter, tcell.KeyTab:
		d.pasted.WriteRune(' ')
	}
}

func (d *Display) handleKey(ev *tcell.EventKey) (bool, error) {
	var err error

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyLeft:
		d.grid.MoveFocus(-1, 0)
	case tcell.KeyRight:
		d.grid.MoveFocus(1, 0)
	case tcell.KeyUp:
		d.grid.MoveFocus(0, -1)
	case tcell.KeyDown:
		d.grid.MoveFocus(0, 1)
	case tcell.KeyEnter:
		err = d.grid.PressFocused()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		err = d.grid.Clear()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true, nil
		case ' ':
			err = d.grid.PressFocused()
		case 'c':
			err = d.grid.Clear()
		default:
			return false, nil
		}
	default:
		return false, nil
	}

	if err != nil {
		return false, err
	}
	d.Draw()
	return false, nil
}

// HitTest: 터미널 (x, y) -> 화면 (열, 줄)
func HitTest(x, y int) (col, line int, ok bool) {
	left := originX + grid.ContainerMargin/2
	top := originY + 1
	if x < left || y < top {
		return 0, 0, false
	}
	col = (x - left) / CellWidth
	line = y - top
	if col >= bitmap.Size || line >= bitmap.Size {
		return 0, 0, false
	}
	return col, line, true
}

// ControlOrigin: i번째 컨트롤 "[" 문자의 위치
func ControlOrigin(i int) (x, y int) {
	col, line := grid.Position(i)
	return originX + grid.ContainerMargin/2 + col*CellWidth, originY + 1 + line
}

func (d *Display) checkScreenSize() error {
	width, height := d.screen.Size()
	if width < minDisplayWidth || height < minDisplayHeight {
		return ErrDisplayTooSmall{width: width, height: height}
	}
	return nil
}

// Draw: 컨테이너, 컨트롤, 미리보기, 출력 필드, 도움말
func (d *Display) Draw() {
	d.screen.Clear()
	base := tcell.StyleDefault

	d.drawFrame(base)
	for i, c := range d.grid.Controls() {
		d.drawControl(i, c, base)
	}
	d.drawPreview(base)

	d.drawText(originX, originY+outputLine, outputLabel+d.grid.Output(), base.Bold(true))
	d.drawText(originX, originY+helpLine, helpText, base.Foreground(tcell.ColorGray))
	if d.status != "" {
		d.drawText(originX, originY+statusLine, d.status, base.Foreground(tcell.ColorRed))
	}

	d.screen.Show()
	log.Trace().Str("data", d.grid.Output()).Msg("터미널 다시 그리기")
}

// drawFrame: 폭 = grid.ContainerWidth(), 높이 = 8줄 + 테두리
func (d *Display) drawFrame(style tcell.Style) {
	w := d.grid.ContainerWidth()
	h := bitmap.Size + 2
	right := originX + w - 1
	bottom := originY + h - 1

	for x := originX + 1; x < right; x++ {
		d.screen.SetContent(x, originY, tcell.RuneHLine, nil, style)
		d.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := originY + 1; y < bottom; y++ {
		d.screen.SetContent(originX, y, tcell.RuneVLine, nil, style)
		d.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	d.screen.SetContent(originX, originY, tcell.RuneULCorner, nil, style)
	d.screen.SetContent(right, originY, tcell.RuneURCorner, nil, style)
	d.screen.SetContent(originX, bottom, tcell.RuneLLCorner, nil, style)
	d.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// drawControl: "[#]" / "[ ]". selected 래퍼는 배경색, 포커스는 밑줄
func (d *Display) drawControl(i int, c grid.Control, base tcell.Style) {
	style := base
	if c.Selected {
		style = style.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	}
	if i == d.grid.Focus() {
		style = style.Underline(true)
	}

	mark := ' '
	if c.Checked {
		mark = '#'
	}
	x, y := ControlOrigin(i)
	d.screen.SetContent(x, y, '[', nil, style)
	d.screen.SetContent(x+1, y, mark, nil, style)
	d.screen.SetContent(x+2, y, ']', nil, style)
}

// drawPreview: 펌웨어가 그릴 모양을 컨테이너 오른쪽에
func (d *Display) drawPreview(style tcell.Style) {
	x := originX + d.grid.ContainerWidth() + 2
	for row, line := range d.grid.Encoder().Bytes().Preview(d.on, d.off) {
		d.drawText(x, originY+1+row, line, style)
	}
}

func (d *Display) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		d.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
