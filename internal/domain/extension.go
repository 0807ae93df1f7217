package domain

import (
	"slices"
	"strings"
)

// RawExtensions lists the camera sensor formats that are offered first
var RawExtensions = []string{".arw", ".dng"}

// IsRawExtension reports whether ext (leading dot included) is a raw format.
// Matching is case-insensitive; anything unrecognized is not raw.
func IsRawExtension(ext string) bool {
	return slices.Contains(RawExtensions, strings.ToLower(ext))
}
