package bitmap

import (
	"fmt"
	"strings"
)

// Mode: 체크 변경이 들어왔을 때 비트를 어떻게 반영할지
type Mode uint8

const (
	// ModeSet: checked면 비트 세팅, 아니면 클리어 (체크 상태와 항상 일치)
	ModeSet Mode = iota
	// ModeFlip: checked 값과 무관하게 1<<x 로 XOR
	ModeFlip
)

func (m Mode) String() string {
	switch m {
	case ModeSet:
		return "set"
	case ModeFlip:
		return "flip"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode: "set" / "flip" 문자열을 Mode로
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "set":
		return ModeSet, nil
	case "flip", "xor":
		return ModeFlip, nil
	}
	return ModeSet, fmt.Errorf("unknown bit mode %q (want set or flip)", s)
}

// Update: 구독자에게 전달되는 변경 내용
type Update struct {
	Pixel   Pixel
	Checked bool
	Bytes   Bytes
	Hex     string
}

// Encoder: Byte Vector를 소유하고, 토글 변경을 바이트에 반영하는 컴포넌트
// 한 번에 하나의 이벤트 핸들러에서만 호출된다고 가정한다. (락 없음)
type Encoder struct {
	mode      Mode
	bytes     Bytes
	listeners []func(Update)
}

// NewEncoder: 초기 바이트와 모드로 Encoder 생성
func NewEncoder(mode Mode, initial Bytes) *Encoder {
	return &Encoder{
		mode:  mode,
		bytes: initial,
	}
}

func (e *Encoder) Mode() Mode {
	return e.mode
}

// Bytes: 현재 Byte Vector 복사본
func (e *Encoder) Bytes() Bytes {
	return e.bytes
}

// Hex: 현재 Byte Vector로부터 매번 새로 계산
func (e *Encoder) Hex() string {
	return e.bytes.Hex()
}

// Subscribe: 변경(toggle-changed) 콜백 등록
func (e *Encoder) Subscribe(fn func(Update)) {
	if fn == nil {
		return
	}
	e.listeners = append(e.listeners, fn)
}

// Change: (x, y) 컨트롤의 체크 상태 변경을 반영하고, 새 헥사 문자열을 반환
func (e *Encoder) Change(p Pixel, checked bool) (string, error) {
	if !p.Valid() {
		return "", ErrPixelOutOfRange{Pixel: p}
	}

	mask := byte(1 << uint(p.X))
	switch e.mode {
	case ModeFlip:
		e.bytes[p.Y] ^= mask
	default:
		if checked {
			e.bytes[p.Y] |= mask
		} else {
			e.bytes[p.Y] &^= mask
		}
	}

	hex := e.bytes.Hex()
	e.notify(Update{Pixel: p, Checked: checked, Bytes: e.bytes, Hex: hex})
	return hex, nil
}

// Load: Byte Vector 전체 교체 (붙여넣은 글리프 불러오기 등)
func (e *Encoder) Load(b Bytes) string {
	e.bytes = b
	hex := e.bytes.Hex()
	e.notify(Update{Pixel: Pixel{-1, -1}, Bytes: e.bytes, Hex: hex})
	return hex
}

// Reset: 모든 비트 클리어
func (e *Encoder) Reset() string {
	return e.Load(Bytes{})
}

func (e *Encoder) notify(u Update) {
	for _, fn := range e.listeners {
		fn(u)
	}
}
