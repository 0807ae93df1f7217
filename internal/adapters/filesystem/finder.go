package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"openraw/internal/domain"
)

// Finder implements ports.VariantFinder using the filesystem
type Finder struct {
	// Fold case when matching names, as the host filesystem does
	foldCase bool
}

// NewFinder creates a finder matching names the way the host does
func NewFinder() *Finder {
	return &Finder{foldCase: runtime.GOOS == "windows" || runtime.GOOS == "darwin"}
}

// Exists reports whether path can be stat'ed and is not a directory
func (f *Finder) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// FindVariants lists files next to targetPath named "<basename>.*"
func (f *Finder) FindVariants(targetPath string) ([]domain.FileVariant, error) {
	dir := filepath.Dir(targetPath)
	prefix := strings.TrimSuffix(domain.VariantPattern(targetPath), "*")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var variants []domain.FileVariant
	for _, entry := range entries {
		if entry.IsDir() || !f.matches(entry.Name(), prefix) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if entry.Type()&fs.ModeSymlink != 0 && !f.Exists(path) {
			continue
		}

		variants = append(variants, domain.NewFileVariant(path))
	}

	return variants, nil
}

// matches implements the "<basename>.*" wildcard without glob syntax, so
// brackets or asterisks in the base name match literally. A trailing ".*"
// also matches the bare base name, so "README" is a variant of itself.
func (f *Finder) matches(name, prefix string) bool {
	base := strings.TrimSuffix(prefix, ".")
	if f.foldCase {
		return strings.EqualFold(name, base) ||
			(len(name) >= len(prefix) && strings.EqualFold(name[:len(prefix)], prefix))
	}
	return name == base || strings.HasPrefix(name, prefix)
}
