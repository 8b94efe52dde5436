package misc

import (
	"image/color"
	"net"
	"path/filepath"
	"strconv"
	"testing"
)

func TestWriteThenReadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "settings.json")
	written, err := WriteFile(name, []byte(`{"Width": 10}`))
	if err != nil || written != 13 {
		t.Fatalf("WriteFile: %d, %v", written, err)
	}
	contents, err := ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(contents) != `{"Width": 10}` {
		t.Fatalf("got %q", contents)
	}
}

func TestReadFileErrors(t *testing.T) {
	if _, err := ReadFile(""); err == nil {
		t.Fatal("expected an error for an empty file name")
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if _, err := WriteFile("", nil); err == nil {
		t.Fatal("expected an error for an empty file name")
	}
}

func TestLinearInterpolationRGB(t *testing.T) {
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if got := LinearInterpolationRGB(black, white, 0); got != black {
		t.Fatalf("got %v", got)
	}
	if got := LinearInterpolationRGB(black, white, 0.5); got != (color.RGBA{R: 127, G: 127, B: 127, A: 255}) {
		t.Fatalf("got %v", got)
	}
	if got := LerpFloat64(2, 4, 0.25); got != 2.5 {
		t.Fatalf("got %v", got)
	}
}

func TestGetFreePort(t *testing.T) {
	port, err := GetFreePort()
	if err != nil {
		t.Fatalf("GetFreePort: %v", err)
	}
	l, err := net.Listen("tcp", net.JoinHostPort("localhost", strconv.Itoa(port)))
	if err != nil {
		t.Fatalf("port %d is not usable: %v", port, err)
	}
	l.Close()
}
