package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/canopy/engine/core"
)

type fakeTexture struct{ w, h int }

func (t fakeTexture) Size() (int, int) { return t.w, t.h }
func (fakeTexture) Release()           {}

type fakeFactory struct{ got core.TextureDesc }

func (f *fakeFactory) CreateTexture(d core.TextureDesc) (core.Texture, error) {
	f.got = d
	return fakeTexture{d.Width, d.Height}, nil
}

func useRoot(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := Root
	Root = dir
	t.Cleanup(func() { Root = old })
	return dir
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoadTexture(t *testing.T) {
	dir := useRoot(t)
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(2, 1, color.NRGBA{R: 255, A: 255})
	writePNG(t, filepath.Join(dir, "textures", "dot.png"), img)

	factory := &fakeFactory{}
	tex, err := LoadTexture(factory, "dot.png")
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	if w, h := tex.Size(); w != 3 || h != 2 {
		t.Fatalf("size %dx%d", w, h)
	}
	pix := factory.got.Pixels
	if len(pix) != 3*2*4 {
		t.Fatalf("pixels = %d bytes", len(pix))
	}
	last := pix[len(pix)-4:]
	if last[0] != 255 || last[3] != 255 {
		t.Fatalf("bottom-right pixel = %v", last)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := useRoot(t)
	if err := os.MkdirAll(filepath.Join(dir, "textures"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "textures", "bad.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		run  func() error
	}{
		{"missing png", func() error { _, _, _, err := LoadPNG("missing.png"); return err }},
		{"corrupt png", func() error { _, _, _, err := LoadPNG("bad.png"); return err }},
		{"missing shader", func() error { _, err := LoadShader("nope.vert"); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.run() == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNullTerminated(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", "\x00"},
		{"void main(){}", "void main(){}\x00"},
		{"x\x00", "x\x00"},
	}
	for _, tt := range tests {
		if got := NullTerminated(tt.in); got != tt.want {
			t.Errorf("NullTerminated(%q) = %q", tt.in, got)
		}
	}
}
