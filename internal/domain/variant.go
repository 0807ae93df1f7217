package domain

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"
)

// ErrEmptyVariantSet is returned when a variant set would hold no files
var ErrEmptyVariantSet = errors.New("variant set is empty")

// FileVariant is one file sharing the target's base name
type FileVariant struct {
	Path      string // Path as found in the directory listing
	Name      string // e.g., "DSC0042.ARW"
	Extension string // Lowercased, e.g., ".arw"
	IsRaw     bool
}

// NewFileVariant classifies the file at path
func NewFileVariant(path string) FileVariant {
	ext := strings.ToLower(filepath.Ext(path))
	return FileVariant{
		Path:      path,
		Name:      filepath.Base(path),
		Extension: ext,
		IsRaw:     IsRawExtension(ext),
	}
}

// PartitionRawFirst returns the variants with every raw file ahead of every
// other file. Relative order inside both groups is kept.
func PartitionRawFirst(variants []FileVariant) []FileVariant {
	out := slices.Clone(variants)
	slices.SortStableFunc(out, func(a, b FileVariant) int {
		switch {
		case a.IsRaw == b.IsRaw:
			return 0
		case a.IsRaw:
			return -1
		default:
			return 1
		}
	})
	return out
}

// VariantSet is the ordered, non-empty list of candidates for one target
type VariantSet struct {
	variants []FileVariant
}

// NewVariantSet orders variants raw-first. It fails on an empty input.
func NewVariantSet(variants []FileVariant) (VariantSet, error) {
	if len(variants) == 0 {
		return VariantSet{}, ErrEmptyVariantSet
	}
	return VariantSet{variants: PartitionRawFirst(variants)}, nil
}

// Len returns the number of variants
func (s VariantSet) Len() int {
	return len(s.variants)
}

// At returns the variant at zero-based index i
func (s VariantSet) At(i int) FileVariant {
	return s.variants[i]
}

// Variants returns a copy of the ordered variants
func (s VariantSet) Variants() []FileVariant {
	return slices.Clone(s.variants)
}

// Names returns the file names in set order
func (s VariantSet) Names() []string {
	names := make([]string, len(s.variants))
	for i, v := range s.variants {
		names[i] = v.Name
	}
	return names
}

// VariantPattern returns the "<basename>.*" wildcard for a target path,
// where basename is the file name without its last extension
func VariantPattern(targetPath string) string {
	name := filepath.Base(targetPath)
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".*"
}

// EditorArguments joins the file path and the caller's extra arguments.
// extraArgs is used verbatim; quoting is the caller's job.
func EditorArguments(filePath, extraArgs string) string {
	if extraArgs == "" {
		return filePath
	}
	return filePath + " " + extraArgs
}
