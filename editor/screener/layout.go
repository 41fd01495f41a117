package screener

import (
	"glyph_editor/editor/bitmap"
	"glyph_editor/editor/grid"
	glp "glyph_editor/editor/screener/glyph"
)

const LineHeight = 16 // 한 줄 높이 16픽셀

// 출력 문자열 최대 길이: "0x00" 8개 + ", " 7개
const outputChars = bitmap.Size*4 + (bitmap.Size-1)*2

// Palette: ARGB 색상 모음
type Palette struct {
	Fg       uint32 // 체크된 칸, 글자
	Bg       uint32 // 배경
	Selected uint32 // selected 래퍼
	Border   uint32 // 컨트롤 테두리, 컨테이너
	Cursor   uint32 // 키보드 포커스
}

// Layout: 윈도우 안에서 컨테이너, 컨트롤, 출력 필드가 놓이는 위치
//
//	+---------------------------+
//	| pad                       |
//	|  [container 8*cell+8]     |
//	| pad                       |
//	|  0x00, 0x00, ...          |
//	+---------------------------+
type Layout struct {
	Padding    int
	Cell       int // 컨트롤 하나의 바깥 폭 (래퍼 포함)
	ContainerX int
	ContainerY int
	ContainerW int
	ContainerH int
	TextY      int
	Width      int
	Height     int
}

// NewLayout: 그리드가 계산한 컨테이너 폭을 기준으로 윈도우 크기를 정한다
func NewLayout(g *grid.Grid, padding int) Layout {
	l := Layout{
		Padding:    padding,
		Cell:       g.OuterWidth(),
		ContainerX: padding,
		ContainerY: padding,
		ContainerW: g.ContainerWidth(),
		ContainerH: g.OuterWidth()*bitmap.Size + grid.ContainerMargin,
	}
	l.TextY = l.ContainerY + l.ContainerH + padding

	textW := outputChars * glp.GlyphWidth
	l.Width = padding*2 + max(l.ContainerW, textW)
	l.Height = l.TextY + LineHeight + padding
	return l
}

// CellOrigin: i번째 컨트롤 래퍼의 좌상단 픽셀
func (l Layout) CellOrigin(i int) (x, y int) {
	col, line := grid.Position(i)
	inset := grid.ContainerMargin / 2
	return l.ContainerX + inset + col*l.Cell, l.ContainerY + inset + line*l.Cell
}

// HitTest: 윈도우 픽셀 좌표 -> 컨트롤 인덱스
func (l Layout) HitTest(px, py int) (int, bool) {
	inset := grid.ContainerMargin / 2
	rx := px - l.ContainerX - inset
	ry := py - l.ContainerY - inset
	if rx < 0 || ry < 0 || l.Cell <= 0 {
		return 0, false
	}
	col, line := rx/l.Cell, ry/l.Cell
	if col >= bitmap.Size || line >= bitmap.Size {
		return 0, false
	}
	return line*bitmap.Size + col, true
}

// Paint: 그리드 전체를 캔버스에 그린다 (커서 제외)
// 1) 배경 2) 컨테이너 테두리 3) 컨트롤 64개 4) 출력 필드
func (c *Canvas) Paint(l Layout, p Palette, g *grid.Grid) {
	c.Clear(p.Bg)
	c.strokeRect(l.ContainerX, l.ContainerY, l.ContainerW, l.ContainerH, 1, p.Border)

	for i, ctl := range g.Controls() {
		x, y := l.CellOrigin(i)
		c.paintControl(x, y, l.Cell, ctl, p)
	}

	c.fillRect(l.ContainerX, l.TextY, l.Width-2*l.Padding, LineHeight, p.Bg)
	yOffset := (LineHeight - glp.GlyphHeight) / 2 // 수직 중앙
	c.drawText(l.ContainerX, l.TextY+yOffset, g.Output(), p.Fg, p.Bg)
}

// paintControl: 래퍼(selected면 강조색) + 체크박스 테두리 + 체크 표시
func (c *Canvas) paintControl(x, y, cell int, ctl grid.Control, p Palette) {
	wrapper := p.Bg
	if ctl.Selected {
		wrapper = p.Selected
	}
	c.fillRect(x, y, cell, cell, wrapper)

	box := cell / 4
	c.strokeRect(x+box/2, y+box/2, cell-box, cell-box, 1, p.Border)
	if ctl.Checked {
		c.fillRect(x+box, y+box, cell-2*box, cell-2*box, p.Fg)
	}
}
