package commands

import (
	"fmt"
	"io"

	"openraw/internal/application"
	"openraw/internal/domain"
	"openraw/internal/ports"
)

// MaxSelectable is the largest menu position reachable with one keystroke
const MaxSelectable = 9

// SelectVariant returns the zero-based index of the variant to open.
// A single variant is chosen without output or input. Otherwise a numbered
// menu is written to out and one keystroke is read from keys.
func SelectVariant(out io.Writer, keys ports.KeyReader, set domain.VariantSet) (int, error) {
	if set.Len() == 1 {
		return 0, nil
	}

	if err := RenderMenu(out, set); err != nil {
		return 0, err
	}

	key, err := keys.ReadKey()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", &application.SelectionError{Key: key, Count: set.Len()}, err)
	}

	return ParseSelection(key, set.Len())
}

// RenderMenu writes one "<n>. [raw]\t<filename>" line per variant
func RenderMenu(out io.Writer, set domain.VariantSet) error {
	for i, v := range set.Variants() {
		marker := "\t"
		if v.IsRaw {
			marker = "raw\t"
		}
		if _, err := fmt.Fprintf(out, "%d. %s%s\n", i+1, marker, v.Name); err != nil {
			return fmt.Errorf("failed to write menu: %w", err)
		}
	}
	return nil
}

// ParseSelection converts a single digit key to a zero-based index in [0, count)
func ParseSelection(key string, count int) (int, error) {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return 0, &application.SelectionError{Key: key, Count: count}
	}

	n := int(key[0]-'0') - 1
	if n < 0 || n > count-1 {
		return 0, &application.SelectionError{Key: key, Count: count}
	}
	return n, nil
}
