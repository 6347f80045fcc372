package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hubastard/canopy/engine/core"
)

// Texture wraps an ebiten image as a core.Texture.
type Texture struct {
	img *ebiten.Image
}

func NewTexture(img *ebiten.Image) *Texture { return &Texture{img: img} }

func (t *Texture) Image() *ebiten.Image { return t.img }

func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *Texture) Release() { t.img.Deallocate() }

// TextureFactory uploads pixels into ebiten images.
type TextureFactory struct{}

func (TextureFactory) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Format != core.TextureRGBA8 {
		return nil, fmt.Errorf("unsupported texture format %d", desc.Format)
	}
	if want := desc.Width * desc.Height * 4; len(desc.Pixels) != want {
		return nil, fmt.Errorf("texture %dx%d needs %d bytes, got %d", desc.Width, desc.Height, want, len(desc.Pixels))
	}
	img := ebiten.NewImage(desc.Width, desc.Height)
	img.WritePixels(desc.Pixels)
	return &Texture{img: img}, nil
}
