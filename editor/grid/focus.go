package grid

import "glyph_editor/editor/bitmap"

// Focus: 키보드 포커스가 있는 컨트롤 인덱스
func (g *Grid) Focus() int {
	return g.focus
}

// MoveFocus: 화면 기준 (dx, dy)만큼 포커스 이동. 그리드 밖으로는 나가지 않는다.
func (g *Grid) MoveFocus(dx, dy int) int {
	col, line := Position(g.focus)
	col = clamp(col+dx, 0, bitmap.Size-1)
	line = clamp(line+dy, 0, bitmap.Size-1)
	g.focus, _ = g.ControlAt(col, line)
	return g.focus
}

// PressFocused: 포커스된 컨트롤 Press
func (g *Grid) PressFocused() error {
	return g.Press(g.focus)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
