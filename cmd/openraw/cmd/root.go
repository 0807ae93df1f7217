package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"openraw/internal/adapters/clipboard"
	"openraw/internal/adapters/console"
	"openraw/internal/adapters/editor"
	"openraw/internal/adapters/filesystem"
	"openraw/internal/application"
	"openraw/internal/application/commands"
	"openraw/internal/config"
	"openraw/internal/ports"
)

// Dependencies are the adapters and streams the command runs against
type Dependencies struct {
	Finder    ports.VariantFinder
	Launcher  ports.EditorLauncher
	Keys      ports.KeyReader
	Clipboard ports.Clipboard
	Stdout    io.Writer
	Stderr    io.Writer
}

// DefaultDependencies wires the real filesystem, process and console adapters
func DefaultDependencies() Dependencies {
	return Dependencies{
		Finder:    filesystem.NewFinder(),
		Launcher:  editor.NewLauncher(),
		Keys:      console.NewKeyReader(),
		Clipboard: clipboard.New(),
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
}

// NewRootCmd builds the openraw command
func NewRootCmd(deps Dependencies) *cobra.Command {
	var (
		alwaysPassArgs bool
		copyPath       bool
		verbose        bool
	)

	rootCmd := &cobra.Command{
		Use:   "openraw [flags] <editor-path> <file-path> [extra-args]",
		Short: "Open a photo's raw or processed sibling in an editor",
		Long: `openraw looks for files next to <file-path> that share its base name
(DSC0042.ARW, DSC0042.jpg, DSC0042.tif, ...) and opens one of them with
<editor-path>.

When more than one file matches, a numbered list is shown with raw formats
(.arw, .dng) first; press the number of the file to open. [extra-args] is
appended to the editor's arguments verbatim.

Flags must come before <editor-path>.

Examples:
  openraw /usr/bin/darktable ~/Pictures/DSC0042.jpg
  openraw /usr/bin/gimp ~/Pictures/DSC0042.jpg "--new-instance"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 && len(args) != 3 {
				return &application.UsageError{Got: len(args)}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			extraArgs := ""
			if len(args) == 3 {
				extraArgs = args[2]
			}

			opts := []commands.Option{
				commands.WithLogger(newLogger(deps.Stderr, verbose)),
				commands.WithAlwaysPassArgs(alwaysPassArgs),
			}
			if copyPath {
				opts = append(opts, commands.WithClipboard(deps.Clipboard))
			}

			openCmd := commands.NewOpenVariantCommand(
				deps.Finder,
				deps.Launcher,
				commands.Prompt{Out: deps.Stdout, Keys: deps.Keys},
				args[0], args[1], extraArgs,
				opts...,
			)
			if _, err := openCmd.Execute(cmd.Context()); err != nil {
				return err
			}

			console.PrintStatus(deps.Stdout, application.Message(nil), false)
			return nil
		},
	}

	// Everything after <editor-path> is positional, so extra-args like
	// "--new-window" reach the editor instead of the flag parser
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.Flags().BoolVar(&alwaysPassArgs, "always-pass-args", config.AlwaysPassArgs(), "append extra-args even when only one file matches")
	rootCmd.Flags().BoolVarP(&copyPath, "copy", "c", config.CopyPath(), "copy the chosen file path to the clipboard")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", config.Verbose(), "log discovery and launch details to stderr")

	rootCmd.SetOut(deps.Stdout)
	rootCmd.SetErr(deps.Stderr)

	return rootCmd
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "openraw",
		Level:  log.WarnLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Run executes the command with args and returns the process exit code.
// Errors are printed here and nowhere else.
func Run(ctx context.Context, args []string, deps Dependencies) int {
	rootCmd := NewRootCmd(deps)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return application.ExitSuccess
	}

	console.PrintStatus(deps.Stderr, application.Message(err), true)
	if errors.Is(err, application.ErrUsage) {
		fmt.Fprintln(deps.Stderr, "Usage: "+rootCmd.UseLine())
	}
	return application.ExitCode(err)
}

// Execute runs the root command and exits the process
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], DefaultDependencies()))
}
