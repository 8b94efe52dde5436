package controls

import (
	"FractalExplorer/session"
	"errors"
	"testing"
)

func newExplorer(t *testing.T, mode session.Fractal) *session.Session {
	t.Helper()
	settings := session.DefaultSettings()
	settings.Fractal = mode
	settings.Width = 30
	settings.Height = 20
	s, err := session.NewSession(settings)
	if err != nil {
		t.Fatalf("NewSession: %s", err)
	}
	return s
}

func TestAvailableWithZoom(t *testing.T) {
	got := Available(newExplorer(t, session.Mandelbrot))
	want := []Action{DecreaseIterations, IncreaseIterations, ZoomIn, ZoomOut}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestAvailableWithoutZoom(t *testing.T) {
	for _, a := range Available(newExplorer(t, session.Buddhabrot)) {
		if a == ZoomIn || a == ZoomOut {
			t.Fatalf("%s offered for a fractal that cannot zoom", a)
		}
	}
}

func TestApply(t *testing.T) {
	s := newExplorer(t, session.Mandelbrot)
	if err := Apply(s, ZoomIn); err != nil {
		t.Fatalf("ZoomIn: %s", err)
	}
	if s.Viewport().Width != 1.5 {
		t.Fatalf("got %s", s.Viewport().String())
	}
	if err := Apply(s, IncreaseIterations); err != nil {
		t.Fatalf("IncreaseIterations: %s", err)
	}
	if s.Viewport().MaxIterations != 2*session.DefaultMaxIterations {
		t.Fatalf("got %d", s.Viewport().MaxIterations)
	}
	if err := Apply(s, Action(42)); err == nil {
		t.Fatal("expected an error for an unknown action")
	}
}

func TestApplyZoomUnsupported(t *testing.T) {
	s := newExplorer(t, session.Buddhabrot)
	before := s.Generation()
	if err := Apply(s, ZoomOut); !errors.Is(err, session.ErrZoomUnsupported) {
		t.Fatalf("got %v", err)
	}
	if s.Generation() != before {
		t.Fatal("refused zoom advanced the generation")
	}
}
