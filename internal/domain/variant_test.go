package domain

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

func TestNewFileVariant(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantExt string
		wantRaw bool
		wantNam string
	}{
		{
			name:    "raw with uppercase extension",
			path:    "/photos/DSC0042.ARW",
			wantExt: ".arw",
			wantRaw: true,
			wantNam: "DSC0042.ARW",
		},
		{
			name:    "processed jpeg",
			path:    "/photos/DSC0042.jpg",
			wantExt: ".jpg",
			wantRaw: false,
			wantNam: "DSC0042.jpg",
		},
		{
			name:    "relative path",
			path:    "shot.dng",
			wantExt: ".dng",
			wantRaw: true,
			wantNam: "shot.dng",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewFileVariant(tt.path)
			if v.Path != tt.path {
				t.Errorf("Path = %q, want %q", v.Path, tt.path)
			}
			if v.Name != tt.wantNam {
				t.Errorf("Name = %q, want %q", v.Name, tt.wantNam)
			}
			if v.Extension != tt.wantExt {
				t.Errorf("Extension = %q, want %q", v.Extension, tt.wantExt)
			}
			if v.IsRaw != tt.wantRaw {
				t.Errorf("IsRaw = %v, want %v", v.IsRaw, tt.wantRaw)
			}
		})
	}
}

func variants(names ...string) []FileVariant {
	out := make([]FileVariant, len(names))
	for i, n := range names {
		out[i] = NewFileVariant(n)
	}
	return out
}

func names(vs []FileVariant) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Name
	}
	return out
}

func TestPartitionRawFirst(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "empty",
			in:   nil,
			want: []string{},
		},
		{
			name: "raw already first",
			in:   []string{"a.dng", "a.jpg"},
			want: []string{"a.dng", "a.jpg"},
		},
		{
			name: "raw moved ahead",
			in:   []string{"a.jpg", "a.tif", "a.arw"},
			want: []string{"a.arw", "a.jpg", "a.tif"},
		},
		{
			name: "interleaved keeps both orders",
			in:   []string{"a.jpg", "a.dng", "a.png", "a.ARW", "a.tif"},
			want: []string{"a.dng", "a.ARW", "a.jpg", "a.png", "a.tif"},
		},
		{
			name: "no raw",
			in:   []string{"a.png", "a.jpg"},
			want: []string{"a.png", "a.jpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(PartitionRawFirst(variants(tt.in...)))
			if !slices.Equal(got, tt.want) {
				t.Errorf("PartitionRawFirst() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Every raw/non-raw pattern up to length 8 must come back as a stable
// partition of the same elements.
func TestPartitionRawFirst_AllPatterns(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for mask := 0; mask < 1<<n; mask++ {
			in := make([]FileVariant, n)
			for i := range in {
				ext := ".jpg"
				if mask&(1<<i) != 0 {
					ext = ".dng"
				}
				in[i] = NewFileVariant(fmt.Sprintf("f%d%s", i, ext))
			}

			got := PartitionRawFirst(in)

			if len(got) != len(in) {
				t.Fatalf("n=%d mask=%b: len = %d, want %d", n, mask, len(got), len(in))
			}

			var wantRaw, wantOther []FileVariant
			for _, v := range in {
				if v.IsRaw {
					wantRaw = append(wantRaw, v)
				} else {
					wantOther = append(wantOther, v)
				}
			}
			want := append(wantRaw, wantOther...)
			if !slices.Equal(got, want) {
				t.Fatalf("n=%d mask=%b: got %v, want %v", n, mask, names(got), names(want))
			}
		}
	}
}

func TestPartitionRawFirst_DoesNotMutateInput(t *testing.T) {
	in := variants("a.jpg", "a.dng")
	_ = PartitionRawFirst(in)
	if in[0].Name != "a.jpg" {
		t.Errorf("input was reordered: %v", names(in))
	}
}

func TestNewVariantSet(t *testing.T) {
	t.Run("empty fails", func(t *testing.T) {
		_, err := NewVariantSet(nil)
		if !errors.Is(err, ErrEmptyVariantSet) {
			t.Errorf("expected ErrEmptyVariantSet, got %v", err)
		}
	})

	t.Run("orders raw first", func(t *testing.T) {
		set, err := NewVariantSet(variants("photo.jpg", "photo.dng"))
		if err != nil {
			t.Fatalf("NewVariantSet failed: %v", err)
		}
		if set.Len() != 2 {
			t.Fatalf("Len() = %d, want 2", set.Len())
		}
		if got := set.At(0).Name; got != "photo.dng" {
			t.Errorf("At(0) = %q, want photo.dng", got)
		}
		if got := set.Names(); !slices.Equal(got, []string{"photo.dng", "photo.jpg"}) {
			t.Errorf("Names() = %v", got)
		}
	})

	t.Run("variants returns a copy", func(t *testing.T) {
		set, err := NewVariantSet(variants("photo.jpg"))
		if err != nil {
			t.Fatalf("NewVariantSet failed: %v", err)
		}
		vs := set.Variants()
		vs[0].Name = "changed"
		if set.At(0).Name != "photo.jpg" {
			t.Error("VariantSet was mutated through Variants()")
		}
	})
}

func TestVariantPattern(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/photos/DSC0042.jpg", want: "DSC0042.*"},
		{path: "photo.ARW", want: "photo.*"},
		{path: "archive.tar.gz", want: "archive.tar.*"},
		{path: "noext", want: "noext.*"},
		{path: "/photos/.hidden", want: ".*"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := VariantPattern(tt.path); got != tt.want {
				t.Errorf("VariantPattern(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestEditorArguments(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		extra string
		want  string
	}{
		{name: "file only", file: "/p/a.dng", want: "/p/a.dng"},
		{name: "with extra", file: "/p/a.dng", extra: "--new", want: "/p/a.dng --new"},
		{name: "extra kept verbatim", file: "a b.jpg", extra: `"x y"  -z`, want: `a b.jpg "x y"  -z`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EditorArguments(tt.file, tt.extra); got != tt.want {
				t.Errorf("EditorArguments() = %q, want %q", got, tt.want)
			}
		})
	}
}
