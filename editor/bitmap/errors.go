package bitmap

import "fmt"

type ErrPixelOutOfRange struct {
	Pixel Pixel
}

func (e ErrPixelOutOfRange) Error() string {
	return fmt.Sprintf("pixel (%d, %d) out of range, must be within 0..%d", e.Pixel.X, e.Pixel.Y, Size-1)
}

type ErrHexFormat struct {
	Input string
	Desc  string
}

func (e ErrHexFormat) Error() string {
	return fmt.Sprintf("invalid hex literal list %q: %s", e.Input, e.Desc)
}
