// Package cli provides the command line interface.
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/richtree/internal/commands"
	"github.com/temirov/richtree/internal/config"
	"github.com/temirov/richtree/internal/icons"
	"github.com/temirov/richtree/internal/output"
	"github.com/temirov/richtree/internal/services/clipboard"
	"github.com/temirov/richtree/internal/types"
	"github.com/temirov/richtree/internal/utils"
)

const (
	depthFlagName        = "depth"
	depthFlagShorthand   = "d"
	noSizeFlagName       = "no-size"
	hiddenFlagName       = "hidden"
	copyFlagName         = "copy"
	configFlagName       = "config"
	debugFlagName        = "debug"
	defaultPath          = "."
	defaultMaxDepth      = 5
	versionTemplate      = utils.ApplicationName + " version: {{.Version}}\n"
	rootUse              = utils.ApplicationName + " [path]"
	rootShortDescription = "print a pretty tree view of a directory"
	rootLongDescription  = `rich-tree prints a styled tree of a directory with icons and sizes.
Directories are listed before files and both are sorted case-insensitively.
Use --depth to bound the traversal, --no-size to skip size computation, and --hidden to include dot entries.`
	rootUsageExample = `  # Show the current directory three levels deep
  rich-tree -d 3

  # Include hidden entries without sizes
  rich-tree --hidden --no-size ~/project`

	depthFlagDescription  = "max depth to traverse"
	noSizeFlagDescription = "do not show file/dir sizes"
	hiddenFlagDescription = "include hidden files and directories"
	copyFlagDescription   = "copy the uncoloured output to the clipboard"
	configFlagDescription = "configuration file to load instead of ./" + utils.ConfigFileName
	debugFlagDescription  = "enable debug logging"

	// errorNegativeDepthFormat rejects negative depth limits.
	errorNegativeDepthFormat = "depth must be non-negative, got %d"
	// errorAbsolutePathFormat reports failure to resolve an absolute path.
	errorAbsolutePathFormat = "abs failed for '%s': %w"
	// errorStatFormat reports failure to retrieve file statistics.
	errorStatFormat = "inspecting '%s': %w"
	// errorLoadConfigurationFormat reports an unreadable configuration.
	errorLoadConfigurationFormat = "load configuration: %w"
	// errorRenderFormat reports a failure writing output.
	errorRenderFormat = "render output: %w"
	// errorTargetFormat decorates target validation sentinels with the user input.
	errorTargetFormat = "%w: %s"

	copySucceededMessage = "copied tree to clipboard"
	copyFailedMessage    = "unable to copy tree to clipboard"
)

var (
	// ErrPathNotFound is returned when the target path does not exist.
	ErrPathNotFound = errors.New("path does not exist")
	// ErrNotADirectory is returned when the target path exists but is not a directory.
	ErrNotADirectory = errors.New("not a directory")
)

// reportedError marks an error whose message was already shown to the user.
type reportedError struct {
	err error
}

func (reported reportedError) Error() string { return reported.err.Error() }

func (reported reportedError) Unwrap() error { return reported.err }

// IsReported reports whether err was already printed to the user and only needs an exit status.
func IsReported(err error) bool {
	var reported reportedError
	return errors.As(err, &reported)
}

// Dependencies are the collaborators of the root command. Zero values are replaced with
// process defaults by NewRootCommand.
type Dependencies struct {
	Stdout           io.Writer
	Logger           *zap.Logger
	LogLevel         *zap.AtomicLevel
	Copier           clipboard.Copier
	LookupEnv        func(string) (string, bool)
	WorkingDirectory string
}

func (dependencies Dependencies) withDefaults() Dependencies {
	if dependencies.Stdout == nil {
		dependencies.Stdout = os.Stdout
	}
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	if dependencies.Copier == nil {
		dependencies.Copier = clipboard.NewService()
	}
	if dependencies.LookupEnv == nil {
		dependencies.LookupEnv = os.LookupEnv
	}
	return dependencies
}

// Execute runs the rich-tree application with the process arguments.
func Execute(logger *zap.Logger, level zap.AtomicLevel) error {
	rootCommand := NewRootCommand(Dependencies{Logger: logger, LogLevel: &level})
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// treeOptions stores the values bound to command-line flags.
type treeOptions struct {
	maxDepth   int
	showSize   bool
	showHidden bool
	copy       bool
	configPath string
	debug      bool
}

// NewRootCommand builds the root Cobra command.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	dependencies = dependencies.withDefaults()
	var options treeOptions

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Version:       utils.GetApplicationVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			targetPath := defaultPath
			if len(arguments) == 1 {
				targetPath = arguments[0]
			}
			if options.debug && dependencies.LogLevel != nil {
				dependencies.LogLevel.SetLevel(zapcore.DebugLevel)
			}
			return runTree(command, dependencies, options, targetPath)
		},
	}
	rootCommand.SetVersionTemplate(versionTemplate)
	rootCommand.SetOut(dependencies.Stdout)

	flags := rootCommand.Flags()
	flags.IntVarP(&options.maxDepth, depthFlagName, depthFlagShorthand, defaultMaxDepth, depthFlagDescription)
	registerNegatedBooleanFlag(flags, &options.showSize, noSizeFlagName, true, noSizeFlagDescription)
	registerBooleanFlag(flags, &options.showHidden, hiddenFlagName, false, hiddenFlagDescription)
	registerBooleanFlag(flags, &options.copy, copyFlagName, false, copyFlagDescription)
	registerBooleanFlag(flags, &options.debug, debugFlagName, false, debugFlagDescription)
	flags.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	return rootCommand
}

// runTree resolves configuration, validates the target, and renders the report.
func runTree(command *cobra.Command, dependencies Dependencies, options treeOptions, targetPath string) error {
	logger := dependencies.Logger

	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: dependencies.WorkingDirectory,
		ExplicitFilePath: options.configPath,
	})
	if configurationError != nil {
		return fmt.Errorf(errorLoadConfigurationFormat, configurationError)
	}
	options = applyConfiguration(command, options, applicationConfiguration)
	if options.maxDepth < 0 {
		return fmt.Errorf(errorNegativeDepthFormat, options.maxDepth)
	}

	glyphMode, glyphModeError := icons.ParseGlyphMode(applicationConfiguration.Glyphs)
	if glyphModeError != nil {
		return fmt.Errorf(errorLoadConfigurationFormat, glyphModeError)
	}
	glyphs := icons.ResolveGlyphSet(glyphMode, dependencies.LookupEnv)
	presenter := output.NewPresenter(dependencies.Stdout, glyphs)

	validatedPath, validationError := resolveAndValidatePath(dependencies.WorkingDirectory, targetPath)
	if validationError != nil {
		if errors.Is(validationError, ErrPathNotFound) || errors.Is(validationError, ErrNotADirectory) {
			if renderError := presenter.RenderError(validationError.Error()); renderError != nil {
				return fmt.Errorf(errorRenderFormat, renderError)
			}
			return reportedError{err: validationError}
		}
		return validationError
	}

	scanConfig := types.ScanConfig{
		Root:       validatedPath.AbsolutePath,
		MaxDepth:   options.maxDepth,
		ShowSize:   options.showSize,
		ShowHidden: options.showHidden,
	}
	logger.Debug("scanning",
		zap.String("root", scanConfig.Root),
		zap.Int("depth", scanConfig.MaxDepth),
		zap.Bool("size", scanConfig.ShowSize),
		zap.Bool("hidden", scanConfig.ShowHidden),
		zap.Bool("unicode", glyphs.Unicode),
	)

	rootNode, buildError := commands.NewTreeBuilder(scanConfig, logger).BuildTree()
	if buildError != nil {
		return buildError
	}
	summary := commands.Summarize(rootNode)

	if renderError := presenter.Render(scanConfig, rootNode, summary); renderError != nil {
		return fmt.Errorf(errorRenderFormat, renderError)
	}

	if options.copy {
		copyPlainOutput(dependencies, glyphs, scanConfig, rootNode, summary)
	}
	return nil
}

// applyConfiguration fills options that were not set on the command line from configuration.
func applyConfiguration(command *cobra.Command, options treeOptions, applicationConfiguration config.ApplicationConfiguration) treeOptions {
	flags := command.Flags()
	if applicationConfiguration.Depth != nil && !flags.Changed(depthFlagName) {
		options.maxDepth = *applicationConfiguration.Depth
	}
	if applicationConfiguration.Size != nil && !flags.Changed(noSizeFlagName) {
		options.showSize = *applicationConfiguration.Size
	}
	if applicationConfiguration.Hidden != nil && !flags.Changed(hiddenFlagName) {
		options.showHidden = *applicationConfiguration.Hidden
	}
	if applicationConfiguration.Copy != nil && !flags.Changed(copyFlagName) {
		options.copy = *applicationConfiguration.Copy
	}
	return options
}

// copyPlainOutput renders the report without colour and places it on the clipboard.
// Clipboard failures are logged and do not fail the run.
func copyPlainOutput(dependencies Dependencies, glyphs icons.GlyphSet, scanConfig types.ScanConfig, rootNode *types.TreeNode, summary types.Summary) {
	var buffer bytes.Buffer
	plainPresenter := output.NewPresenter(&buffer, glyphs, output.WithColorProfile(termenv.Ascii))
	if renderError := plainPresenter.Render(scanConfig, rootNode, summary); renderError != nil {
		dependencies.Logger.Warn(copyFailedMessage, zap.Error(renderError))
		return
	}
	if copyError := dependencies.Copier.Copy(buffer.String()); copyError != nil {
		dependencies.Logger.Warn(copyFailedMessage, zap.Error(copyError))
		return
	}
	dependencies.Logger.Debug(copySucceededMessage, zap.Int("bytes", buffer.Len()))
}

// resolveAndValidatePath converts the input path to absolute form relative to workingDirectory
// (or the process working directory) and checks that it is an existing directory.
func resolveAndValidatePath(workingDirectory string, inputPath string) (types.ValidatedPath, error) {
	candidatePath := inputPath
	if !filepath.IsAbs(candidatePath) && workingDirectory != "" {
		candidatePath = filepath.Join(workingDirectory, candidatePath)
	}
	absolutePath, absolutePathError := filepath.Abs(candidatePath)
	if absolutePathError != nil {
		return types.ValidatedPath{}, fmt.Errorf(errorAbsolutePathFormat, inputPath, absolutePathError)
	}
	cleanPath := filepath.Clean(absolutePath)
	info, fileStatusError := os.Stat(cleanPath)
	if fileStatusError != nil {
		if os.IsNotExist(fileStatusError) {
			return types.ValidatedPath{}, fmt.Errorf(errorTargetFormat, ErrPathNotFound, inputPath)
		}
		return types.ValidatedPath{}, fmt.Errorf(errorStatFormat, inputPath, fileStatusError)
	}
	if !info.IsDir() {
		return types.ValidatedPath{}, fmt.Errorf(errorTargetFormat, ErrNotADirectory, inputPath)
	}
	return types.ValidatedPath{AbsolutePath: cleanPath}, nil
}
