package glyph

// Width: 한 줄 8픽셀, MSB가 가장 왼쪽
type Width byte

const (
	GlyphHeight = 8
	GlyphWidth  = 8
)

// Glyph: 8줄, 각 줄의 MSB가 가장 왼쪽 픽셀
type Glyph [GlyphHeight]Width

// 출력 필드("0x1c, 0x22, ...")를 그리는 데 필요한 글자만 가진다.
var NumberGlyphMap = map[rune]Glyph{
	'0': {0x3C, 0x66, 0x6E, 0x76, 0x66, 0x66, 0x3C, 0x00},
	'1': {0x18, 0x38, 0x18, 0x18, 0x18, 0x18, 0x7E, 0x00},
	'2': {0x3C, 0x66, 0x06, 0x0C, 0x30, 0x60, 0x7E, 0x00},
	'3': {0x3C, 0x66, 0x06, 0x1C, 0x06, 0x66, 0x3C, 0x00},
	'4': {0x0C, 0x1C, 0x3C, 0x6C, 0x7E, 0x0C, 0x0C, 0x00},
	'5': {0x7E, 0x60, 0x7C, 0x06, 0x06, 0x66, 0x3C, 0x00},
	'6': {0x3C, 0x66, 0x60, 0x7C, 0x66, 0x66, 0x3C, 0x00},
	'7': {0x7E, 0x66, 0x0C, 0x18, 0x18, 0x18, 0x18, 0x00},
	'8': {0x3C, 0x66, 0x66, 0x3C, 0x66, 0x66, 0x3C, 0x00},
	'9': {0x3C, 0x66, 0x66, 0x3E, 0x06, 0x66, 0x3C, 0x00},
}

var LowercaseGlyphMap = map[rune]Glyph{
	'a': {0x00, 0x00, 0x3C, 0x06, 0x3E, 0x66, 0x3E, 0x00},
	'b': {0x00, 0x60, 0x60, 0x7C, 0x66, 0x66, 0x7C, 0x00},
	'c': {0x00, 0x00, 0x3C, 0x60, 0x60, 0x60, 0x3C, 0x00},
	'd': {0x00, 0x06, 0x06, 0x3E, 0x66, 0x66, 0x3E, 0x00},
	'e': {0x00, 0x00, 0x3C, 0x66, 0x7E, 0x60, 0x3C, 0x00},
	'f': {0x00, 0x0E, 0x18, 0x3E, 0x18, 0x18, 0x18, 0x00},
	'x': {0x00, 0x00, 0x66, 0x3C, 0x18, 0x3C, 0x66, 0x00},
}

var SpecialGlyphMap = map[rune]Glyph{
	' ': {},
	',': {0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x30},
}

// 최종 글리프 맵
var GlyphMap = map[rune]Glyph{}

func init() {
	for char, glyph := range NumberGlyphMap {
		GlyphMap[char] = glyph
	}
	for char, glyph := range LowercaseGlyphMap {
		GlyphMap[char] = glyph
	}
	for char, glyph := range SpecialGlyphMap {
		GlyphMap[char] = glyph
	}
}

// Lookup: 없는 문자는 빈칸
func Lookup(ch rune) Glyph {
	g, ok := GlyphMap[ch]
	if !ok {
		return Glyph{}
	}
	return g
}
