package bitmap

import (
	"fmt"
	"strings"
)

// Size: 글리프 한 변의 픽셀 수 (8x8)
const Size = 8

// Pixel: 그리드 위 한 칸의 좌표. X, Y 모두 [0, Size)
type Pixel struct {
	X, Y int
}

// Valid: 좌표가 그리드 안에 있는지 확인
func (p Pixel) Valid() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// Bytes: Row Byte 8개. bytes[y]의 x번째 비트(LSB=0)가 (x, y) 픽셀
type Bytes [Size]byte

// At: (x, y) 픽셀이 켜져 있는지
func (b Bytes) At(p Pixel) bool {
	if !p.Valid() {
		return false
	}
	return b[p.Y]&(1<<uint(p.X)) != 0
}

// Hex: "0x00, 0x18, ..." 형태의 헥사 리터럴 문자열
// 마지막 바이트 뒤에는 구분자를 붙이지 않는다.
func (b Bytes) Hex() string {
	var sb strings.Builder
	for i, v := range b {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "0x%02x", v)
	}
	return sb.String()
}

func (b Bytes) String() string {
	return b.Hex()
}

// Preview: 펌웨어의 draw_bitmap_8과 같은 방향으로 그린 결과
// i번째 바이트가 i번째 열, j번째 비트가 위에서부터 j번째 행이 된다.
func (b Bytes) Preview(on, off rune) []string {
	lines := make([]string, Size)
	for row := 0; row < Size; row++ {
		line := make([]rune, Size)
		for col := 0; col < Size; col++ {
			if b[col]&(1<<uint(row)) != 0 {
				line[col] = on
			} else {
				line[col] = off
			}
		}
		lines[row] = string(line)
	}
	return lines
}
