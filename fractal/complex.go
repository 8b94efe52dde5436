package fractal

import "fmt"

// Complex is a double precision complex number passed around by value.
type Complex struct {
	Re float64
	Im float64
}

func (c Complex) Add(other Complex) Complex {
	return Complex{Re: c.Re + other.Re, Im: c.Im + other.Im}
}

func (c Complex) Multiply(other Complex) Complex {
	return Complex{
		Re: c.Re*other.Re - c.Im*other.Im,
		Im: c.Re*other.Im + c.Im*other.Re,
	}
}

// NormSquared avoids the square root needed for the modulus
func (c Complex) NormSquared() float64 {
	return c.Re*c.Re + c.Im*c.Im
}

func (c Complex) String() string {
	return fmt.Sprintf("(%g%+gi)", c.Re, c.Im)
}
