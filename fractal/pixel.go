package fractal

import "fmt"

// Pixel is a single computation result handed from a worker to the image writer.
type Pixel struct {
	X          uint16
	Y          uint16
	Iterations uint16
}

func (p *Pixel) String() string {
	output := "{Pixel "
	output += fmt.Sprintf("X: %d ", p.X)
	output += fmt.Sprintf("Y: %d ", p.Y)
	output += fmt.Sprintf("Iterations: %d}", p.Iterations)
	return output
}
