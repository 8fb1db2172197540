package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/richinsley/gltemplate/shader"
)

func TestVFlip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 3))
	for y := 0; y < 3; y++ {
		src.SetRGBA(0, y, color.RGBA{R: uint8(y), A: 255})
	}
	got := VFlip(src)
	for y := 0; y < 3; y++ {
		if r := got.RGBAAt(0, y).R; r != uint8(2-y) {
			t.Errorf("row %d has R=%d, want %d", y, r, 2-y)
		}
	}
	// flipping twice restores the original
	if back := VFlip(got); string(back.Pix) != string(src.Pix) {
		t.Error("double flip is not the identity")
	}
}

func TestToRGBARebasesBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 9, 7))
	src.Set(5, 5, color.NRGBA{G: 200, A: 255})
	got := ToRGBA(src)
	if got.Rect != image.Rect(0, 0, 4, 2) {
		t.Fatalf("bounds = %v", got.Rect)
	}
	if g := got.RGBAAt(0, 0).G; g != 200 {
		t.Fatalf("G = %d, want 200", g)
	}
}

func TestCheckerboard(t *testing.T) {
	img := Checkerboard(16, 4)
	if img.Rect.Dx() != 16 || img.Rect.Dy() != 16 {
		t.Fatalf("size = %v", img.Rect)
	}
	if img.RGBAAt(0, 0) == img.RGBAAt(4, 0) {
		t.Error("adjacent cells have the same color")
	}
	if img.RGBAAt(0, 0) != img.RGBAAt(4, 4) {
		t.Error("diagonal cells differ")
	}
}

func TestLoadImageFallback(t *testing.T) {
	img := LoadImage(filepath.Join(t.TempDir(), "missing.png"))
	if img.Rect.Dx() != 64 {
		t.Fatalf("fallback size = %v", img.Rect)
	}
}

func TestDecodeImageFlips(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255}) // top
	src.SetRGBA(0, 1, color.RGBA{B: 255, A: 255}) // bottom

	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := DecodeImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if img.RGBAAt(0, 0).B != 255 {
		t.Fatal("first row should be the bottom of the source image")
	}
}

func TestReadShaderFallback(t *testing.T) {
	dir := t.TempDir()
	if src := ReadShader(filepath.Join(dir, "missing.shader")); src != shader.Default {
		t.Fatal("missing file did not fall back")
	}

	bad := filepath.Join(dir, "bad.shader")
	if err := os.WriteFile(bad, []byte("#shader vertex\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if src := ReadShader(bad); src != shader.Default {
		t.Fatal("unparsable file did not fall back")
	}
}

func TestReadShaderBundledAsset(t *testing.T) {
	src := ReadShader(filepath.Join("..", "source.shader"))
	if !shader.IsES(src.Vertex) || !shader.IsES(src.Fragment) {
		t.Fatal("bundled shader should be GLSL ES")
	}
}
