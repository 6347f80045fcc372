package assets

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/hubastard/canopy/engine/core"
)

// Root is the directory relative asset paths are resolved against.
var Root = "assets"

// LoadPNG loads assets/textures/relPath. See LoadPNGFile.
func LoadPNG(relPath string) (w, h int, rgba []byte, err error) {
	return LoadPNGFile(filepath.Join(Root, "textures", relPath))
}

// LoadPNGFile returns width, height, and tightly packed RGBA8 pixels
// (row-major, top-left origin).
func LoadPNGFile(path string) (w, h int, rgba []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("decode png %q: %w", path, err)
	}

	rgbaImg := imageToRGBA(img)
	w, h = rgbaImg.Bounds().Dx(), rgbaImg.Bounds().Dy()

	// Repack in tight rows (stride == 4*w)
	out := make([]byte, w*h*4)
	src := rgbaImg.Pix
	srcStride := rgbaImg.Stride
	for y := 0; y < h; y++ {
		copy(out[y*w*4:(y+1)*w*4], src[y*srcStride:y*srcStride+w*4])
	}
	return w, h, out, nil
}

// LoadTexture loads a PNG from assets/textures and uploads it.
func LoadTexture(factory core.TextureFactory, relPath string) (core.Texture, error) {
	w, h, pix, err := LoadPNG(relPath)
	if err != nil {
		return nil, err
	}
	tex, err := factory.CreateTexture(core.TextureDesc{
		Width: w, Height: h,
		Format:    core.TextureRGBA8,
		Pixels:    pix,
		MinFilter: "linear", MagFilter: "linear",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		return nil, fmt.Errorf("upload %q: %w", relPath, err)
	}
	return tex, nil
}

func imageToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Stride == m.Rect.Dx()*4 && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
