// Package assets loads the texture and shader files the program starts with.
// Missing or broken assets are logged and replaced with built-in fallbacks.
package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/richinsley/gltemplate/shader"
)

// ToRGBA converts any image to a tightly packed RGBA image.
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// VFlip vertically flips src. GL expects the first row of texel data to be the
// bottom of the image.
func VFlip(src *image.RGBA) *image.RGBA {
	bounds := src.Bounds()
	flipped := image.NewRGBA(bounds)
	height := bounds.Dy()

	rowSize := bounds.Dx() * 4
	for y := 0; y < height; y++ {
		srcRow := src.Pix[((height-1)-y)*src.Stride:]
		dstRow := flipped.Pix[y*flipped.Stride:]
		copy(dstRow, srcRow[:rowSize])
	}
	return flipped
}

// Checkerboard returns a size x size magenta/black checker with cells of cell pixels.
func Checkerboard(size, cell int) *image.RGBA {
	if cell <= 0 {
		cell = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	on := color.RGBA{R: 255, B: 255, A: 255}
	off := color.RGBA{A: 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, on)
			} else {
				img.SetRGBA(x, y, off)
			}
		}
	}
	return img
}

// DecodeImage reads an image file into flipped RGBA texel data.
func DecodeImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return VFlip(ToRGBA(img)), nil
}

// LoadImage is DecodeImage with the checkerboard fallback.
func LoadImage(path string) *image.RGBA {
	img, err := DecodeImage(path)
	if err != nil {
		log.Printf("Warning: failed to load texture %s, using checkerboard: %v", path, err)
		return Checkerboard(64, 8)
	}
	log.Printf("Loaded texture %s (%dx%d)", path, img.Rect.Dx(), img.Rect.Dy())
	return img
}

// ReadShader parses a combined shader file, falling back to the built-in program.
func ReadShader(path string) shader.Source {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("Warning: failed to open shader %s, using built-in program: %v", path, err)
		return shader.Default
	}
	defer f.Close()

	src, err := shader.Parse(f)
	if err != nil {
		log.Printf("Warning: failed to parse shader %s, using built-in program: %v", path, err)
		return shader.Default
	}
	return src
}
