package screener

// Cursor: 키보드 포커스를 표시하는 테두리. 캔버스 위에 덧그리는 독립 객체
type Cursor struct {
	width, height  int      // 커서 크기 (폭, 높이)
	thickness      int      // 테두리 두께
	color          uint32   // 커서 색상 (ARGB)
	capturedBuffer []uint32 // 오버라이팅 전, 화면 버퍼 백업용

	currentX, currentY int  // 커서가 마지막으로 그려진 위치
	visible            bool // 현재 커서가 그려져 있는지 여부
}

// NewCursor: 커서 생성자
func NewCursor(width, height, thickness int, color uint32) *Cursor {
	return &Cursor{
		width:     width,
		height:    height,
		thickness: thickness,
		color:     color,
	}
}

func (c *Cursor) Visible() bool {
	return c.visible
}

// ReflectCursor: 커서를 캔버스에 그린다.
//   - 그리기 전, 덮어쓸 영역을 capturedBuffer에 백업해 둔다.
func (c *Cursor) ReflectCursor(canvas *Canvas, x, y int) {
	// 1) 이미 커서가 있다면 ClearCursor()로 복원
	if c.visible {
		c.ClearCursor(canvas)
	}

	c.currentX = x
	c.currentY = y

	// 2) 오버라이팅할 픽셀 영역(커서 폭*높이)을 백업
	c.captureBuffer(canvas)

	// 3) 테두리 픽셀로 덮어쓰기
	canvas.strokeRect(x, y, c.width, c.height, c.thickness, c.color)
	c.visible = true
}

// ClearCursor: 캡쳐해 둔 버퍼로 복원
func (c *Cursor) ClearCursor(canvas *Canvas) {
	if !c.visible {
		return
	}
	c.restoreBuffer(canvas)
	c.visible = false
}

// Forget: 캔버스를 통째로 다시 그린 뒤에는 백업이 의미 없으므로 버린다
func (c *Cursor) Forget() {
	c.capturedBuffer = nil
	c.visible = false
}

// captureBuffer: 커서를 그리기 전, 오버라이팅될 영역을 백업
func (c *Cursor) captureBuffer(canvas *Canvas) {
	c.capturedBuffer = make([]uint32, c.width*c.height)

	idx := 0
	for row := 0; row < c.height; row++ {
		for col := 0; col < c.width; col++ {
			c.capturedBuffer[idx] = canvas.At(c.currentX+col, c.currentY+row) // 화면 밖은 0
			idx++
		}
	}
}

// restoreBuffer: 캡처해둔 버퍼를 원위치에 복원
func (c *Cursor) restoreBuffer(canvas *Canvas) {
	if c.capturedBuffer == nil {
		return
	}

	idx := 0
	for row := 0; row < c.height; row++ {
		for col := 0; col < c.width; col++ {
			canvas.setPixel(c.currentX+col, c.currentY+row, c.capturedBuffer[idx])
			idx++
		}
	}
}
