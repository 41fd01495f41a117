package terminal

import "fmt"

type ErrDisplayTooSmall struct {
	height, width int
}

func (e ErrDisplayTooSmall) Error() string {
	return fmt.Sprintf("%vx%v display too small must be %vx%v", e.width, e.height, minDisplayWidth, minDisplayHeight)
}
