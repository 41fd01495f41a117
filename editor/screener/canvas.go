package screener

import (
	glp "glyph_editor/editor/screener/glyph"
)

// Canvas: X 서버로 보내기 전의 ARGB 픽셀 버퍼
// X 연결 없이도 그리기 결과를 확인할 수 있도록 Screener와 분리해 둔다.
type Canvas struct {
	width  int
	height int
	pixels []uint32
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]uint32, width*height),
	}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Pixels: 버퍼 getter (행 우선)
func (c *Canvas) Pixels() []uint32 {
	return c.pixels
}

// At: (x, y) 색상. 범위 밖이면 0
func (c *Canvas) At(x, y int) uint32 {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0
	}
	return c.pixels[y*c.width+x]
}

// Clear: 전체 화면을 특정 색으로 채우기
func (c *Canvas) Clear(color uint32) {
	for i := range c.pixels {
		c.pixels[i] = color
	}
}

// setPixel: 범위 밖 좌표는 무시
func (c *Canvas) setPixel(x, y int, color uint32) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = color
}

func (c *Canvas) fillRect(x, y, w, h int, color uint32) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.setPixel(col, row, color)
		}
	}
}

// strokeRect: 두께 t의 테두리만 그린다
func (c *Canvas) strokeRect(x, y, w, h, t int, color uint32) {
	c.fillRect(x, y, w, t, color)
	c.fillRect(x, y+h-t, w, t, color)
	c.fillRect(x, y, t, h, color)
	c.fillRect(x+w-t, y, t, h, color)
}

// drawGlyph: 8x8 글리프 그리기 (배경까지 채움)
func (c *Canvas) drawGlyph(x, y int, glyph glp.Glyph, fgColor, bgColor uint32) {
	for row := 0; row < glp.GlyphHeight; row++ {
		lineBits := byte(glyph[row])
		for col := 0; col < glp.GlyphWidth; col++ {
			mask := byte(1 << (7 - col))
			if (lineBits & mask) != 0 {
				c.setPixel(x+col, y+row, fgColor)
			} else {
				c.setPixel(x+col, y+row, bgColor)
			}
		}
	}
}

// drawText: 문자열을 8픽셀씩 나열하여 그리기
func (c *Canvas) drawText(x, y int, text string, fgColor, bgColor uint32) {
	for _, ch := range text {
		c.drawGlyph(x, y, glp.Lookup(ch), fgColor, bgColor)
		x += glp.GlyphWidth
		if x >= c.width {
			break
		}
	}
}
