//go:build !windows

package editor

import (
	"fmt"
	"os/exec"

	"github.com/anmitsu/go-shlex"
)

// platformCommand keeps the file path as one argument and splits extraArgs
// on whitespace. Quotes and backslashes the caller wrote group words and are
// removed; nothing is expanded.
func platformCommand(editorPath, filePath, extraArgs string) (*exec.Cmd, error) {
	args := []string{filePath}
	if extraArgs != "" {
		fields, err := shlex.Split(extraArgs, true)
		if err != nil {
			return nil, fmt.Errorf("invalid extra arguments %q: %w", extraArgs, err)
		}
		args = append(args, fields...)
	}
	return exec.Command(editorPath, args...), nil
}
