package commands

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"

	"openraw/internal/application"
	"openraw/internal/domain"
	"openraw/internal/ports"
)

// Prompt is the console pair used when the user has to choose
type Prompt struct {
	Out  io.Writer
	Keys ports.KeyReader
}

// OpenVariantCommand finds the variants of a file, lets the user pick one
// and hands it to an external editor
type OpenVariantCommand struct {
	finder    ports.VariantFinder
	launcher  ports.EditorLauncher
	prompt    Prompt
	clipboard ports.Clipboard
	logger    *log.Logger

	// Apply ExtraArgs even when no choice was needed
	alwaysPassArgs bool

	EditorPath string
	FilePath   string
	ExtraArgs  string
}

// OpenResult describes what was launched
type OpenResult struct {
	Variant   domain.FileVariant
	Arguments string
	Prompted  bool
}

// Option configures an OpenVariantCommand
type Option func(*OpenVariantCommand)

// WithLogger sets the logger for debug output
func WithLogger(logger *log.Logger) Option {
	return func(c *OpenVariantCommand) {
		c.logger = logger
	}
}

// WithClipboard copies the chosen path to cb before launching
func WithClipboard(cb ports.Clipboard) Option {
	return func(c *OpenVariantCommand) {
		c.clipboard = cb
	}
}

// WithAlwaysPassArgs appends the extra arguments on the single-variant path too
func WithAlwaysPassArgs(enabled bool) Option {
	return func(c *OpenVariantCommand) {
		c.alwaysPassArgs = enabled
	}
}

// NewOpenVariantCommand creates a new OpenVariantCommand
func NewOpenVariantCommand(
	finder ports.VariantFinder,
	launcher ports.EditorLauncher,
	prompt Prompt,
	editorPath, filePath, extraArgs string,
	opts ...Option,
) *OpenVariantCommand {
	c := &OpenVariantCommand{
		finder:     finder,
		launcher:   launcher,
		prompt:     prompt,
		logger:     log.New(io.Discard),
		EditorPath: editorPath,
		FilePath:   filePath,
		ExtraArgs:  extraArgs,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Validate checks that both paths exist. The editor is checked first.
func (c *OpenVariantCommand) Validate() error {
	if !c.finder.Exists(c.EditorPath) {
		return &application.PathError{Role: "editor", Path: c.EditorPath}
	}
	if !c.finder.Exists(c.FilePath) {
		return &application.PathError{Role: "file", Path: c.FilePath}
	}
	return nil
}

// Discover lists the variants of FilePath in directory order
func (c *OpenVariantCommand) Discover() ([]domain.FileVariant, error) {
	found, err := c.finder.FindVariants(c.FilePath)
	if err != nil {
		return nil, &application.PathError{Role: "directory", Path: filepath.Dir(c.FilePath), Err: err}
	}
	if len(found) == 0 {
		return nil, &application.NoVariantsError{Pattern: domain.VariantPattern(c.FilePath)}
	}
	return found, nil
}

// Execute runs the open variant command
func (c *OpenVariantCommand) Execute(ctx context.Context) (*OpenResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	found, err := c.Discover()
	if err != nil {
		return nil, err
	}

	set, err := domain.NewVariantSet(found)
	if err != nil {
		return nil, &application.NoVariantsError{Pattern: domain.VariantPattern(c.FilePath)}
	}
	c.logger.Debug("found variants", "target", c.FilePath, "variants", set.Names())

	if set.Len() > MaxSelectable {
		c.logger.Warn("only the first variants can be selected", "count", set.Len(), "selectable", MaxSelectable)
	}

	idx, err := SelectVariant(c.prompt.Out, c.prompt.Keys, set)
	if err != nil {
		return nil, err
	}

	chosen := set.At(idx)
	prompted := set.Len() > 1

	// Extra arguments only follow a menu choice unless alwaysPassArgs is set
	extra := ""
	if prompted || c.alwaysPassArgs {
		extra = c.ExtraArgs
	}

	result := &OpenResult{
		Variant:   chosen,
		Arguments: domain.EditorArguments(chosen.Path, extra),
		Prompted:  prompted,
	}
	c.logger.Debug("selected variant", "path", chosen.Path, "raw", chosen.IsRaw, "prompted", prompted)

	if c.clipboard != nil {
		if err := c.clipboard.WriteAll(chosen.Path); err != nil {
			c.logger.Warn("could not copy path to clipboard", "error", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.logger.Debug("launching editor", "editor", c.EditorPath, "args", result.Arguments)
	if err := c.launcher.Launch(c.EditorPath, chosen.Path, extra); err != nil {
		if errors.Is(err, application.ErrLaunchFailed) {
			return nil, err
		}
		return nil, &application.LaunchError{Editor: c.EditorPath, Err: err}
	}

	return result, nil
}
