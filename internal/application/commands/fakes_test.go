package commands

import (
	"errors"
	"io"

	"openraw/internal/domain"
)

type fakeFinder struct {
	existing map[string]bool
	variants []domain.FileVariant
	err      error

	existsCalls int
	findCalls   int
}

func (f *fakeFinder) Exists(path string) bool {
	f.existsCalls++
	return f.existing[path]
}

func (f *fakeFinder) FindVariants(targetPath string) ([]domain.FileVariant, error) {
	f.findCalls++
	return f.variants, f.err
}

type launchCall struct {
	editor string
	file   string
	extra  string
}

type fakeLauncher struct {
	calls []launchCall
	err   error
}

func (l *fakeLauncher) Launch(editorPath, filePath, extraArgs string) error {
	l.calls = append(l.calls, launchCall{editor: editorPath, file: filePath, extra: extraArgs})
	return l.err
}

// fakeKeys returns the queued keys in order, then io.EOF
type fakeKeys struct {
	keys  []string
	reads int
}

func (k *fakeKeys) ReadKey() (string, error) {
	k.reads++
	if len(k.keys) == 0 {
		return "", io.EOF
	}
	key := k.keys[0]
	k.keys = k.keys[1:]
	return key, nil
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

var errBoom = errors.New("boom")

func variantsOf(paths ...string) []domain.FileVariant {
	out := make([]domain.FileVariant, len(paths))
	for i, p := range paths {
		out[i] = domain.NewFileVariant(p)
	}
	return out
}
