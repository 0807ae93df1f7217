//go:build windows

package editor

import (
	"os/exec"
	"syscall"

	"openraw/internal/domain"
)

// platformCommand hands the argument string to the editor untouched
func platformCommand(editorPath, filePath, extraArgs string) (*exec.Cmd, error) {
	cmd := exec.Command(editorPath)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: syscall.EscapeArg(editorPath) + " " + domain.EditorArguments(filePath, extraArgs),
	}
	return cmd, nil
}
