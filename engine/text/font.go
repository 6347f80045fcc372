package text

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/hubastard/canopy/engine/core"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // distance from baseline to glyph top
	W, H     int     // glyph bitmap size
	U0, V0   float32 // UVs in atlas
	U1, V1   float32
}

// Font is a rasterized glyph atlas at one pixel size. Text drawn at other
// sizes is scaled from it.
type Font struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Glyphs                   map[rune]Glyph
	Kerning                  map[rune]map[rune]float32
	Atlas                    *image.RGBA
	Texture                  core.Texture // nil until uploaded
	Face                     font.Face
	closeFace                func()
}

func (f *Font) Close() {
	if f == nil {
		return
	}
	if f.closeFace != nil {
		f.closeFace()
		f.closeFace = nil
	}
	if f.Texture != nil {
		f.Texture.Release()
		f.Texture = nil
	}
}

// LoadTTF reads a TrueType/OpenType file and builds a font from it.
func LoadTTF(factory core.TextureFactory, path string, sizePx float32) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := NewFont(data, sizePx, factory)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return f, nil
}

// Default builds the Go Regular font that ships with x/image.
func Default(factory core.TextureFactory, sizePx float32) (*Font, error) {
	return NewFont(goregular.TTF, sizePx, factory)
}

const (
	atlasPadding = 2
	atlasStart   = 256
	atlasMax     = 4096
)

// NewFont rasterizes Latin-1 into a white-on-transparent atlas. The atlas is
// uploaded through factory when it is non-nil; otherwise call Upload later.
func NewFont(ttf []byte, sizePx float32, factory core.TextureFactory) (*Font, error) {
	if sizePx <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %v", sizePx)
	}
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent

	var runes []rune
	for r := rune(32); r <= 255; r++ {
		if r >= 127 && r < 160 {
			continue
		}
		runes = append(runes, r)
	}

	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	measure := make([]meas, 0, len(runes))
	for _, rr := range runes {
		br, adv, ok := face.GlyphBounds(rr)
		if !ok {
			continue
		}
		measure = append(measure, meas{
			r: rr,
			w: (br.Max.X - br.Min.X).Ceil(), h: (br.Max.Y - br.Min.Y).Ceil(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Floor()),
			by:  float32(-br.Min.Y.Floor()),
		})
	}

	// Shelf packer: rows left to right, growing the square atlas until
	// every glyph fits.
	atlasSize := atlasStart
	var pos map[rune]image.Point
	for {
		x, y, rowH := atlasPadding, atlasPadding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measure))
		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if x+g.w+atlasPadding > atlasSize {
				x = atlasPadding
				y += rowH + atlasPadding
				rowH = 0
			}
			if g.w+2*atlasPadding > atlasSize || y+g.h+atlasPadding > atlasSize {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + atlasPadding
			rowH = max(rowH, g.h)
		}
		if fits {
			break
		}
		atlasSize *= 2
		if atlasSize > atlasMax {
			_ = face.Close()
			return nil, fmt.Errorf("font atlas too large (>%d)", atlasMax)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	glyphs := make(map[rune]Glyph, len(measure))
	for _, g := range measure {
		glyph := Glyph{
			Rune: g.r, Advance: g.adv,
			BearingX: g.bx, BearingY: g.by,
			W: g.w, H: g.h,
		}
		if p, ok := pos[g.r]; ok {
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))
			size := float32(atlasSize)
			glyph.U0, glyph.V0 = float32(p.X)/size, float32(p.Y)/size
			glyph.U1, glyph.V1 = float32(p.X+g.w)/size, float32(p.Y+g.h)/size
		}
		glyphs[g.r] = glyph
	}

	kerning := make(map[rune]map[rune]float32)
	for _, a := range measure {
		for _, b := range measure {
			if dx := face.Kern(a.r, b.r); dx != 0 {
				if kerning[a.r] == nil {
					kerning[a.r] = make(map[rune]float32)
				}
				kerning[a.r][b.r] = float32(dx) / 64
			}
		}
	}

	f := &Font{
		SizePx: sizePx,
		Ascent: ascent, Descent: descent, LineGap: lineGap,
		Glyphs:    glyphs,
		Kerning:   kerning,
		Atlas:     dst,
		Face:      face,
		closeFace: func() { _ = face.Close() },
	}
	if factory != nil {
		if err := f.Upload(factory); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// Upload creates the atlas texture. It is a no-op once a texture exists.
func (f *Font) Upload(factory core.TextureFactory) error {
	if f.Texture != nil {
		return nil
	}
	b := f.Atlas.Bounds()
	tex, err := factory.CreateTexture(core.TextureDesc{
		Width: b.Dx(), Height: b.Dy(),
		Format:    core.TextureRGBA8,
		Pixels:    f.Atlas.Pix,
		MinFilter: "linear",
		MagFilter: "linear",
		WrapU:     "clamp",
		WrapV:     "clamp",
	})
	if err != nil {
		return fmt.Errorf("upload font atlas: %w", err)
	}
	f.Texture = tex
	return nil
}

func (f *Font) kern(prev, r rune) float32 {
	if prev < 0 {
		return 0
	}
	return f.Kerning[prev][r]
}
