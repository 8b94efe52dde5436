package fractal

import "testing"

func TestComplexArithmetic(t *testing.T) {
	a := Complex{Re: 1, Im: 2}
	b := Complex{Re: 3, Im: -1}

	if got := a.Add(b); got != (Complex{Re: 4, Im: 1}) {
		t.Fatalf("Add: got %v", got)
	}
	// (1+2i)(3-i) = 3 - i + 6i - 2i² = 5 + 5i
	if got := a.Multiply(b); got != (Complex{Re: 5, Im: 5}) {
		t.Fatalf("Multiply: got %v", got)
	}
	if got := a.NormSquared(); got != 5 {
		t.Fatalf("NormSquared: got %v", got)
	}

	i := Complex{Im: 1}
	if got := i.Multiply(i); got != (Complex{Re: -1}) {
		t.Fatalf("i*i: got %v", got)
	}
}
