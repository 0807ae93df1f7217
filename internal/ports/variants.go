package ports

import "openraw/internal/domain"

// VariantFinder gives read-only access to the files around a target
type VariantFinder interface {
	// Exists reports whether path names an existing file (not a directory)
	Exists(path string) bool

	// FindVariants lists the files in the target's directory matching
	// "<basename>.*", in directory listing order
	FindVariants(targetPath string) ([]domain.FileVariant, error)
}
