package assets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed shaders
var shaderFS embed.FS

// LoadShader returns a GLSL source as a null-terminated string for OpenGL.
// A file under dir overrides the embedded copy, which keeps shaders editable
// during development; pass "" to use the embedded set only.
func LoadShader(dir, name string) (string, error) {
	var (
		b   []byte
		err error
	)
	if dir != "" {
		b, err = os.ReadFile(filepath.Join(dir, name))
	}
	if dir == "" || os.IsNotExist(err) {
		b, err = shaderFS.ReadFile("shaders/" + name)
	}
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	// Ensure null termination for gl.Str
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}
