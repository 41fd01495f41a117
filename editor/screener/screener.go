package screener

import (
	"fmt"

	"glyph_editor/editor/grid"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/rs/zerolog/log"
)

// Screener 구조체: 캔버스(화면 버퍼)와 X 연결 상태를 가지고
//
//	그리드를 렌더링하는 역할 수행
type Screener struct {
	canvas  *Canvas
	layout  Layout
	palette Palette
	cursor  *Cursor

	xu     *xgbutil.XUtil // XGBUtil 연결 객체
	window xproto.Window
	gc     xproto.Gcontext
	depth  byte
}

// NewScreener: XGBUtil을 기반으로 윈도우/GC 생성 후 Screener 초기화
// 윈도우 크기는 그리드 레이아웃에서 계산된다.
func NewScreener(xu *xgbutil.XUtil, g *grid.Grid, padding int, palette Palette) (*Screener, error) {
	layout := NewLayout(g, padding)

	setup := xproto.Setup(xu.Conn())
	defaultScreen := setup.DefaultScreen(xu.Conn())

	windowId, err := xproto.NewWindowId(xu.Conn())
	if err != nil {
		return nil, fmt.Errorf("윈도우 ID 생성 실패: %w", err)
	}

	xproto.CreateWindow(
		xu.Conn(),
		xproto.WindowClassCopyFromParent,
		windowId,
		defaultScreen.Root,
		0, 0,
		uint16(layout.Width),
		uint16(layout.Height),
		0,
		xproto.WindowClassInputOutput,
		defaultScreen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{
			defaultScreen.WhitePixel,
			xproto.EventMaskExposure | xproto.EventMaskKeyPress | xproto.EventMaskButtonPress,
		},
	)

	gcId, err := xproto.NewGcontextId(xu.Conn())
	if err != nil {
		return nil, fmt.Errorf("GC ID 생성 실패: %w", err)
	}

	xproto.CreateGC(
		xu.Conn(),
		gcId,
		xproto.Drawable(windowId),
		xproto.GcForeground|xproto.GcBackground,
		[]uint32{
			defaultScreen.BlackPixel,
			defaultScreen.WhitePixel,
		},
	)

	xproto.MapWindow(xu.Conn(), windowId)

	s := &Screener{
		canvas:  NewCanvas(layout.Width, layout.Height),
		layout:  layout,
		palette: palette,
		cursor:  NewCursor(layout.Cell, layout.Cell, 2, palette.Cursor),
		xu:      xu,
		window:  windowId,
		gc:      gcId,
		depth:   defaultScreen.RootDepth,
	}

	log.Debug().
		Int("width", layout.Width).
		Int("height", layout.Height).
		Int("cell", layout.Cell).
		Msg("X 윈도우 생성")
	return s, nil
}

func (s *Screener) Layout() Layout {
	return s.layout
}

// HitTest: 클릭 좌표 -> 컨트롤 인덱스
func (s *Screener) HitTest(px, py int) (int, bool) {
	return s.layout.HitTest(px, py)
}

// Redraw: 그리드 전체를 캔버스에 다시 그리고 포커스 커서를 얹는다
func (s *Screener) Redraw(g *grid.Grid) {
	s.cursor.Forget()
	s.canvas.Paint(s.layout, s.palette, g)
	s.ReflectCursorAt(g.Focus())
}

// ReflectCursorAt: i번째 컨트롤 위에 커서 그리기 (이전 위치는 복원)
func (s *Screener) ReflectCursorAt(i int) {
	x, y := s.layout.CellOrigin(i)
	s.cursor.ReflectCursor(s.canvas, x, y)
}

// BIG-REQUESTS 없이 보낼 수 있는 요청 최대 크기 (4 * 65535) 에서 PutImage 헤더를 뺀 값
const maxPutImageBytes = 4*65535 - 24

// chunkRows: 한 번의 PutImage로 보낼 줄 수. 최대 64줄, 요청 크기 제한 안쪽
func chunkRows(width int) int {
	rows := 64
	if width > 0 && rows*width*4 > maxPutImageBytes {
		rows = maxPutImageBytes / (width * 4)
	}
	return max(rows, 1)
}

// FlushBuffer: 캔버스 -> X 서버
func (s *Screener) FlushBuffer() {
	width, height := s.canvas.Width(), s.canvas.Height()
	chunkHeight := chunkRows(width)

	for yStart := 0; yStart < height; yStart += chunkHeight {
		h := chunkHeight
		if yStart+h > height {
			h = height - yStart
		}
		xproto.PutImage(
			s.xu.Conn(),
			xproto.ImageFormatZPixmap,
			xproto.Drawable(s.window),
			s.gc,
			uint16(width),
			uint16(h),
			0, int16(yStart),
			0,
			s.depth,
			packBGRX(s.canvas.Pixels(), width, yStart, h),
		)
	}
}

// packBGRX: ARGB 버퍼의 [yStart, yStart+h) 줄을 ZPixmap 바이트(B, G, R, X)로
func packBGRX(pixels []uint32, width, yStart, h int) []byte {
	data := make([]byte, width*h*4)
	idx := 0
	for row := yStart; row < yStart+h; row++ {
		for col := 0; col < width; col++ {
			c := pixels[row*width+col]
			data[idx+0] = byte(c & 0xFF)
			data[idx+1] = byte((c >> 8) & 0xFF)
			data[idx+2] = byte((c >> 16) & 0xFF)
			data[idx+3] = 0
			idx += 4
		}
	}
	return data
}

// Close: 윈도우 정리
func (s *Screener) Close() {
	xproto.DestroyWindow(s.xu.Conn(), s.window)
	s.xu.Conn().Close()
}
