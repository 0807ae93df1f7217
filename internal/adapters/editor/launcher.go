package editor

import (
	"fmt"
	"os/exec"
)

// Launcher implements ports.EditorLauncher
type Launcher struct{}

// NewLauncher creates a new editor launcher
func NewLauncher() *Launcher {
	return &Launcher{}
}

// Launch starts the editor and returns without waiting for it to exit
func (l *Launcher) Launch(editorPath, filePath, extraArgs string) error {
	cmd, err := l.Command(editorPath, filePath, extraArgs)
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start editor %s: %w", editorPath, err)
	}

	// Detach: the editor outlives us and nobody waits on it
	return cmd.Process.Release()
}

// Command returns the exec.Cmd that Launch would start
func (l *Launcher) Command(editorPath, filePath, extraArgs string) (*exec.Cmd, error) {
	return platformCommand(editorPath, filePath, extraArgs)
}
