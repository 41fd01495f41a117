package screener

import (
	"testing"

	"glyph_editor/editor/bitmap"
	"glyph_editor/editor/config"
	"glyph_editor/editor/grid"
	glp "glyph_editor/editor/screener/glyph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPalette = Palette{
	Fg:       0xFF000000,
	Bg:       0xFFFFFFFF,
	Selected: 0xFFFFD54F,
	Border:   0xFF808080,
	Cursor:   0xFF1E88E5,
}

func newTestGrid(cell int) *grid.Grid {
	return grid.New(bitmap.NewEncoder(bitmap.ModeSet, bitmap.Bytes{}), cell)
}

func TestNewLayout(t *testing.T) {
	g := newTestGrid(32)
	l := NewLayout(g, 16)

	assert.Equal(t, 32*8+8, l.ContainerW)
	assert.Equal(t, 32*8+8, l.ContainerH)
	assert.Equal(t, 16+l.ContainerH+16, l.TextY)
	// 출력 문자열(46글자 * 8px)이 컨테이너보다 넓다
	assert.Equal(t, 16*2+46*8, l.Width)
	assert.Equal(t, l.TextY+LineHeight+16, l.Height)

	wide := NewLayout(newTestGrid(64), 10)
	assert.Equal(t, 10*2+64*8+8, wide.Width)
}

func TestLayout_HitTest(t *testing.T) {
	l := NewLayout(newTestGrid(32), 16)

	for i := 0; i < grid.Count; i++ {
		x, y := l.CellOrigin(i)
		got, ok := l.HitTest(x+16, y+16)
		require.True(t, ok)
		assert.Equal(t, i, got)
	}

	_, ok := l.HitTest(0, 0)
	assert.False(t, ok)
	_, ok = l.HitTest(l.ContainerX+4+8*32, l.ContainerY+10)
	assert.False(t, ok)
	_, ok = l.HitTest(l.ContainerX+10, l.TextY)
	assert.False(t, ok)
}

func TestCanvas_Paint(t *testing.T) {
	g := newTestGrid(32)
	l := NewLayout(g, 16)
	c := NewCanvas(l.Width, l.Height)

	require.NoError(t, g.Press(9))
	c.Paint(l, testPalette, g)

	// 체크된 컨트롤: 래퍼는 selected 색, 가운데는 fg
	x, y := l.CellOrigin(9)
	assert.Equal(t, testPalette.Selected, c.At(x, y))
	assert.Equal(t, testPalette.Fg, c.At(x+16, y+16))

	// 체크 안 된 컨트롤: 래퍼/가운데 모두 배경
	x, y = l.CellOrigin(10)
	assert.Equal(t, testPalette.Bg, c.At(x, y))
	assert.Equal(t, testPalette.Bg, c.At(x+16, y+16))

	// 컨테이너 테두리
	assert.Equal(t, testPalette.Border, c.At(l.ContainerX, l.ContainerY))
	assert.Equal(t, testPalette.Border, c.At(l.ContainerX+l.ContainerW-1, l.ContainerY+l.ContainerH-1))
}

func TestCanvas_PaintOutput(t *testing.T) {
	g := newTestGrid(32)
	l := NewLayout(g, 16)
	c := NewCanvas(l.Width, l.Height)

	require.NoError(t, g.Press(0))
	c.Paint(l, testPalette, g)

	// 출력 필드 첫 글자 '0'의 첫 줄(0x3C): 가운데 4픽셀이 fg
	yOffset := (LineHeight - glp.GlyphHeight) / 2
	top := l.TextY + yOffset
	assert.Equal(t, testPalette.Bg, c.At(l.ContainerX+1, top))
	assert.Equal(t, testPalette.Fg, c.At(l.ContainerX+2, top))
	assert.Equal(t, testPalette.Fg, c.At(l.ContainerX+5, top))
	assert.Equal(t, testPalette.Bg, c.At(l.ContainerX+6, top))
}

func TestCursor_CaptureAndRestore(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(0xFFFFFFFF)
	c.fillRect(5, 5, 4, 4, 0xFF000000)
	before := append([]uint32(nil), c.Pixels()...)

	cur := NewCursor(10, 10, 2, 0xFFFF0000)
	cur.ReflectCursor(c, 2, 2)
	require.True(t, cur.Visible())
	assert.Equal(t, uint32(0xFFFF0000), c.At(2, 2))
	assert.Equal(t, uint32(0xFFFF0000), c.At(11, 11))
	assert.Equal(t, uint32(0xFF000000), c.At(6, 6))

	// 다른 위치로 옮기면 이전 자리는 원래대로
	cur.ReflectCursor(c, 15, 15)
	assert.Equal(t, uint32(0xFFFFFFFF), c.At(2, 2))

	cur.ClearCursor(c)
	assert.False(t, cur.Visible())
	assert.Equal(t, before, c.Pixels())
}

func TestPackBGRX(t *testing.T) {
	pixels := []uint32{0xFF112233, 0xFF445566, 0xFFAABBCC, 0xFF000000}
	data := packBGRX(pixels, 2, 1, 1)

	assert.Equal(t, []byte{0xCC, 0xBB, 0xAA, 0, 0x00, 0x00, 0x00, 0}, data)
}

func TestChunkRows(t *testing.T) {
	assert.Equal(t, 64, chunkRows(400))
	assert.Equal(t, 1, chunkRows(0))

	// 넓은 윈도우는 줄 수를 줄여서 요청 크기 제한을 지킨다
	rows := chunkRows(1064)
	assert.Less(t, rows, 64)
	assert.LessOrEqual(t, rows*1064*4, maxPutImageBytes)
}

func TestLayout_LargestConfigFitsX(t *testing.T) {
	l := NewLayout(newTestGrid(config.MaxCellSize), config.MaxPadding)

	assert.LessOrEqual(t, l.Width, 0xFFFF)
	assert.LessOrEqual(t, l.Height, 0xFFFF)
	assert.LessOrEqual(t, chunkRows(l.Width)*l.Width*4, maxPutImageBytes)
}

func TestGlyphLookup(t *testing.T) {
	for _, ch := range "0123456789abcdefx, " {
		_, ok := glp.GlyphMap[ch]
		assert.True(t, ok, "missing glyph %q", ch)
	}
	assert.Equal(t, glp.Glyph{}, glp.Lookup('Z'))
}
