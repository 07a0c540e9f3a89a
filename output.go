package imghist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputSuffix is appended to the base name of the input.
const OutputSuffix = "_histogram.png"

// BaseName strips the directory and the last extension from path.
// Leading dots belong to the name, so ".hidden" keeps its name.
func BaseName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if strings.Trim(stem, ".") == "" {
		return base
	}
	return stem
}

func OutputPath(dir, inputPath string) string {
	return filepath.Join(dir, BaseName(inputPath)+OutputSuffix)
}

// EnsureOutputDir creates dir and any missing parents.
func EnsureOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}
