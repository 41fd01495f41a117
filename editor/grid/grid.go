package grid

import (
	"glyph_editor/editor/bitmap"

	"github.com/rs/zerolog/log"
)

// Count: 그리드의 토글 컨트롤 개수 (8x8)
const Count = bitmap.Size * bitmap.Size

// ContainerMargin: 컨테이너 폭 계산 시 더해지는 고정 여백
const ContainerMargin = 8

// Control: 토글 컨트롤 하나
//   - Pixel: 생성 시점에 고정되는 (x, y) 좌표
//   - Checked: 현재 체크 상태
//   - Selected: 래퍼에 붙는 "selected" 표시 (화면용, 로직과 무관)
type Control struct {
	Pixel    bitmap.Pixel
	Checked  bool
	Selected bool
}

// Grid: 64개의 컨트롤과 출력 필드를 가진 위젯 모델
// 렌더러(X11, 터미널)는 Grid를 참조만 하고, 이벤트는 Press/Click/Change로 넘긴다.
type Grid struct {
	encoder  *bitmap.Encoder
	controls [Count]Control
	output   string
	focus    int

	outerWidth     int
	containerWidth int
}

// New: 컨트롤 생성 (바깥 루프 x, 안쪽 루프 y 순서)
// 인코더의 초기 바이트가 켜진 컨트롤은 체크된 채로 시작하고 selected 표시를 받는다.
func New(enc *bitmap.Encoder, outerWidth int) *Grid {
	g := &Grid{
		encoder:    enc,
		outerWidth: outerWidth,
	}

	initial := enc.Bytes()
	i := 0
	for x := 0; x < bitmap.Size; x++ {
		for y := 0; y < bitmap.Size; y++ {
			p := bitmap.Pixel{X: x, Y: y}
			checked := initial.At(p)
			g.controls[i] = Control{
				Pixel:    p,
				Checked:  checked,
				Selected: checked,
			}
			i++
		}
	}

	// 생성이 끝난 뒤 한 번만 계산
	g.containerWidth = ContainerWidth(outerWidth)

	enc.Subscribe(g.sync)
	return g
}

// sync: 인코더 구독 콜백. Load/Reset처럼 바이트 전체가 바뀐 경우
// (Pixel이 그리드 밖) 모든 컨트롤의 체크/selected 상태를 바이트에 맞춘다.
func (g *Grid) sync(u bitmap.Update) {
	if u.Pixel.Valid() {
		return
	}
	for i := range g.controls {
		checked := u.Bytes.At(g.controls[i].Pixel)
		g.controls[i].Checked = checked
		g.controls[i].Selected = checked
	}
	g.output = u.Hex
}

// Load: 붙여넣은 글리프로 전체 교체
func (g *Grid) Load(b bitmap.Bytes) string {
	return g.encoder.Load(b)
}

// ContainerWidth: 한 줄에 컨트롤 8개가 들어가도록 하는 컨테이너 폭
func ContainerWidth(outerWidth int) int {
	return outerWidth*bitmap.Size + ContainerMargin
}

func (g *Grid) ContainerWidth() int {
	return g.containerWidth
}

func (g *Grid) OuterWidth() int {
	return g.outerWidth
}

// Output: 출력 필드 값. 첫 변경 전까지는 빈 문자열
func (g *Grid) Output() string {
	return g.output
}

func (g *Grid) Encoder() *bitmap.Encoder {
	return g.encoder
}

// Control: i번째 컨트롤 복사본
func (g *Grid) Control(i int) (Control, bool) {
	if i < 0 || i >= Count {
		return Control{}, false
	}
	return g.controls[i], true
}

// Controls: 생성 순서대로 모든 컨트롤
func (g *Grid) Controls() []Control {
	out := make([]Control, Count)
	copy(out, g.controls[:])
	return out
}

// Position: i번째 컨트롤이 화면에 놓이는 (열, 줄)
// 마크업에 추가된 순서대로 한 줄에 8개씩 배치된다.
func Position(i int) (col, line int) {
	return i % bitmap.Size, i / bitmap.Size
}

// ControlAt: 화면의 (열, 줄)에 있는 컨트롤 인덱스
func (g *Grid) ControlAt(col, line int) (int, bool) {
	if col < 0 || col >= bitmap.Size || line < 0 || line >= bitmap.Size {
		return 0, false
	}
	return line*bitmap.Size + col, true
}

// Click: 클릭 핸들러. 래퍼의 selected 표시만 토글
func (g *Grid) Click(i int) bool {
	if i < 0 || i >= Count {
		return false
	}
	g.controls[i].Selected = !g.controls[i].Selected
	return true
}

// Change: 체인지 핸들러. 컨트롤의 (x, y)와 체크 상태를 인코더로 넘기고
// 새 헥사 문자열을 출력 필드에 쓴다.
func (g *Grid) Change(i int) error {
	if i < 0 || i >= Count {
		return nil
	}
	c := g.controls[i]
	hex, err := g.encoder.Change(c.Pixel, c.Checked)
	if err != nil {
		return err
	}
	g.output = hex
	log.Debug().
		Int("x", c.Pixel.X).
		Int("y", c.Pixel.Y).
		Bool("checked", c.Checked).
		Str("data", hex).
		Msg("토글 변경 반영")
	return nil
}

// Press: 사용자가 컨트롤을 한 번 클릭했을 때의 전체 순서
// 1) 체크 상태 반전 2) 클릭 핸들러 3) 체인지 핸들러
func (g *Grid) Press(i int) error {
	if i < 0 || i >= Count {
		return nil
	}
	g.controls[i].Checked = !g.controls[i].Checked
	g.Click(i)
	return g.Change(i)
}

// PressAt: 화면 (열, 줄) 기준 Press
func (g *Grid) PressAt(col, line int) error {
	i, ok := g.ControlAt(col, line)
	if !ok {
		return nil
	}
	g.focus = i
	return g.Press(i)
}

// Clear: 모든 비트 해제. 컨트롤은 sync 콜백이 맞춘다
func (g *Grid) Clear() error {
	g.encoder.Reset()
	return nil
}
