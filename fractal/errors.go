package fractal

import "errors"

var (
	ErrDegenerateViewport = errors.New("viewport span must be finite and greater than zero")
	ErrInvalidDimensions  = errors.New("image dimensions must be between 1 and 65535")
	ErrIterationLimit     = errors.New("max iterations cannot be raised any further")
	ErrOutOfBounds        = errors.New("pixel out of bounds")
)
