package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadShader reads assets/shaders/name into a null-terminated string for OpenGL.
func LoadShader(name string) (string, error) {
	path := filepath.Join(Root, "shaders", name)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	return NullTerminated(string(b)), nil
}

// NullTerminated appends the trailing NUL gl.Strs expects, once.
func NullTerminated(src string) string {
	if len(src) == 0 || src[len(src)-1] != 0 {
		return src + "\x00"
	}
	return src
}
