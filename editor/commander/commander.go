package commander

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
)

// CommandCode: 명령 코드
type CommandCode uint8

const (
	CmdPress        CommandCode = iota // 클릭 위치의 컨트롤 토글
	CmdMove                            // 포커스 이동
	CmdPressFocused                    // 포커스된 컨트롤 토글
	CmdClear                           // 전체 해제
	CmdRedraw                          // Expose 등으로 다시 그리기
	CmdExit
)

// 에디터가 쓰는 특수키. 값은 X11 keysym 그대로 (X11/keysymdef.h)
const (
	KeyESC       rune = 0xFF1B
	KeyBackSpace rune = 0xFF08
	KeyLeft      rune = 0xFF51
	KeyUp        rune = 0xFF52
	KeyRight     rune = 0xFF53
	KeyDown      rune = 0xFF54
	KeyEnter1    rune = '\n'
	KeyEnter2    rune = 0xFF0D
)

// specialKeys: keysym -> 에디터 키. 엔터 계열은 모두 KeyEnter1로 모은다
var specialKeys = map[xproto.Keysym]rune{
	0xFF1B: KeyESC,
	0xFF08: KeyBackSpace,
	0xFF51: KeyLeft,
	0xFF52: KeyUp,
	0xFF53: KeyRight,
	0xFF54: KeyDown,
	0xFF0D: KeyEnter1, // Return
	0xFF8D: KeyEnter1, // KP_Enter
}

// 왼쪽 마우스 버튼
const leftButton xproto.Button = 1

// CommandInput 인터페이스
type CommandInput interface {
	IsCommandInput()
}

// CharInput: `rune`을 감싸는 구조체
type CharInput struct {
	Char rune
}

func (c CharInput) IsCommandInput() {}

// ClickInput: 마우스 클릭 입력 (윈도우 픽셀 좌표)
type ClickInput struct {
	X, Y int
}

func (c ClickInput) IsCommandInput() {}

// MoveInput: 포커스 이동량 (화면 열/줄 기준)
type MoveInput struct {
	DX, DY int
}

func (m MoveInput) IsCommandInput() {}

// Command: 실행할 명령
type Command struct {
	Code  CommandCode
	Input CommandInput
}

// Commander: 이벤트 수집 및 처리 담당
type Commander struct {
	xu        *xgbutil.XUtil
	eventChan chan Command
}

func NewCommander(xu *xgbutil.XUtil) *Commander {
	return &Commander{
		xu:        xu,
		eventChan: make(chan Command, 20),
	}
}

// TranslateXEventToCommand: X 이벤트 -> Command 변환
func (c *Commander) TranslateXEventToCommand(ev xgb.Event) (Command, bool) {
	switch e := ev.(type) {
	case xproto.KeyPressEvent:
		keyRune, err := TranslateKeyCode(c.xu, e.Detail, e.State)
		if err != nil {
			return Command{}, false
		}
		return CommandForKey(keyRune)
	case xproto.ButtonPressEvent:
		if e.Detail != leftButton {
			return Command{}, false
		}
		return Command{
			Code:  CmdPress,
			Input: ClickInput{X: int(e.EventX), Y: int(e.EventY)},
		}, true
	case xproto.ExposeEvent:
		// 마지막 Expose만 처리
		if e.Count != 0 {
			return Command{}, false
		}
		return Command{Code: CmdRedraw}, true
	default:
		return Command{}, false
	}
}

// CommandForKey: 키 입력 -> Command
//   - 방향키: 포커스 이동
//   - 스페이스/엔터: 포커스된 컨트롤 토글
//   - c / 백스페이스: 전체 해제
//   - ESC / q: 종료
func CommandForKey(keyRune rune) (Command, bool) {
	switch keyRune {
	case KeyESC, 'q':
		return Command{Code: CmdExit, Input: CharInput{keyRune}}, true
	case KeyLeft:
		return Command{Code: CmdMove, Input: MoveInput{DX: -1}}, true
	case KeyRight:
		return Command{Code: CmdMove, Input: MoveInput{DX: 1}}, true
	case KeyUp:
		return Command{Code: CmdMove, Input: MoveInput{DY: -1}}, true
	case KeyDown:
		return Command{Code: CmdMove, Input: MoveInput{DY: 1}}, true
	case ' ', KeyEnter1, KeyEnter2:
		return Command{Code: CmdPressFocused, Input: CharInput{keyRune}}, true
	case 'c', 'C', KeyBackSpace:
		return Command{Code: CmdClear, Input: CharInput{keyRune}}, true
	}
	return Command{}, false
}

// collectCommands: X 이벤트를 수신하고 Command로 변환
func (c *Commander) collectCommands() {
	for {
		ev, err := c.xu.Conn().WaitForEvent()
		if ev == nil && err == nil {
			// 연결 종료
			close(c.eventChan)
			return
		}
		if ev != nil {
			cmd, ok := c.TranslateXEventToCommand(ev)
			if ok {
				c.eventChan <- cmd
			}
		}
	}
}

// StartListening: 이벤트 루프 실행 (별도 고루틴)
func (c *Commander) StartListening() {
	go c.collectCommands()
}

// GetCommandChan: Command 채널 반환
func (c *Commander) GetCommandChan() chan Command {
	return c.eventChan
}

// TranslateKeyCode: keycode -> keysym -> rune
// 특수키는 specialKeys로 먼저 처리하고, 나머지는 문자열 룩업 결과의 첫 글자
func TranslateKeyCode(xu *xgbutil.XUtil, keycode xproto.Keycode, state uint16) (rune, error) {
	keysym := keybind.KeysymGet(xu, keycode, 0)
	if keysym == 0 {
		return 0, fmt.Errorf("no keysym for keycode %d", keycode)
	}
	if r, ok := KeyForKeysym(keysym); ok {
		return r, nil
	}
	return runeForString(keybind.LookupString(xu, state, keycode), state)
}

// KeyForKeysym: 특수키 keysym이면 에디터 키로
func KeyForKeysym(keysym xproto.Keysym) (rune, bool) {
	r, ok := specialKeys[keysym]
	return r, ok
}

// runeForString: keybind 문자열 -> rune. xgbutil은 스페이스를 "space"로 돌려준다
func runeForString(str string, state uint16) (rune, error) {
	if str == "space" {
		return ' ', nil
	}
	r, size := utf8.DecodeRuneInString(str)
	if size == 0 || r == utf8.RuneError {
		return 0, fmt.Errorf("no rune for key string %q", str)
	}
	if state&xproto.ModMaskShift != 0 {
		r = unicode.ToUpper(r)
	}
	return r, nil
}
