package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/diagrams/pkg/errors"
	"github.com/matzehuels/diagrams/pkg/gallery"
	"github.com/matzehuels/diagrams/pkg/pipeline"
)

// renderFlags holds the command-line flags for the render command.
type renderFlags struct {
	output     string  // output base path or directory
	formats    string  // comma-separated output formats
	width      float64 // frame width
	height     float64 // frame height
	background string  // CSS background color; empty = transparent
	scale      float64 // PNG pixel density
	config     string  // config file path
	pick       bool    // choose the sample interactively
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [sample]",
		Short: "Render a sample diagram to SVG, PNG or JSON",
		Long: `Render a sample diagram into a frame and write one file per format.

Files are named <output>.<format>. Without --output the sample name is used;
if --output is a directory the files are written into it.`,
		Example: `  diagrams render snowman
  diagrams render tower -f svg,png --width 400 --height 300 -o out/
  diagrams render --pick`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeSamples,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := sampleArg(args, flags.pick)
			if err != nil {
				return err
			}
			if name == "" {
				printDetail("No selection made")
				return nil
			}
			opts, output, err := resolveRenderOptions(cmd.Flags(), flags)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), name, output, opts)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output base path or directory (default: sample name)")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().Float64Var(&flags.width, "width", pipeline.DefaultWidth, "frame width")
	cmd.Flags().Float64Var(&flags.height, "height", pipeline.DefaultHeight, "frame height")
	cmd.Flags().StringVar(&flags.background, "background", "", "background color, e.g. white or #fafafa (default: transparent)")
	cmd.Flags().Float64Var(&flags.scale, "scale", pipeline.DefaultScale, "PNG pixel density")
	cmd.Flags().StringVar(&flags.config, "config", "", "config file (default: $XDG_CONFIG_HOME/diagrams/config.toml)")
	cmd.Flags().BoolVar(&flags.pick, "pick", false, "choose the sample interactively")

	return cmd
}

// sampleArg returns the sample named on the command line, or runs the
// picker. An empty name with a nil error means the picker was dismissed.
func sampleArg(args []string, pick bool) (string, error) {
	switch {
	case len(args) == 1 && pick:
		return "", errors.New(errors.ErrCodeInvalidInput, "give either a sample name or --pick, not both")
	case len(args) == 1:
		return args[0], nil
	case pick:
		return pickSample()
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "sample name required (see 'diagrams samples' or use --pick)")
	}
}

// resolveRenderOptions layers explicitly set flags over the config file.
func resolveRenderOptions(fs *pflag.FlagSet, flags renderFlags) (pipeline.Options, string, error) {
	cfg, path, err := loadConfig(flags.config)
	if err != nil {
		return pipeline.Options{}, "", err
	}
	if path != "" {
		printInfo("Using config %s", path)
	}
	opts := cfg.options()
	output := cfg.Output

	if fs.Changed("width") {
		opts.Width = flags.width
	}
	if fs.Changed("height") {
		opts.Height = flags.height
	}
	if fs.Changed("scale") {
		opts.Scale = flags.scale
	}
	if fs.Changed("background") {
		opts.Background = flags.background
	}
	if fs.Changed("format") {
		opts.Formats = pipeline.ParseFormats(flags.formats)
	} else if len(opts.Formats) > 0 {
		opts.Formats = pipeline.ParseFormats(strings.Join(opts.Formats, ","))
	}
	if fs.Changed("output") {
		output = flags.output
	}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, "", err
	}
	return opts, output, nil
}

// runRender renders the named sample and writes one file per format.
func (c *CLI) runRender(ctx context.Context, name, output string, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)

	sample, err := gallery.Lookup(name)
	if err != nil {
		return err
	}
	base := basePath(output, name)
	if output != "" {
		if err := errors.ValidateOutputPath(output); err != nil {
			return err
		}
	}

	opts.Logger = logger
	logger.Debug("render options",
		"sample", name,
		"frame", fmt.Sprintf("%gx%g", opts.Width, opts.Height),
		"formats", opts.Formats,
		"background", opts.Background)

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", name))
	spinner.Start()
	artifacts, err := pipeline.Render(ctx, sample.Diagram, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}

	var paths []string
	for _, format := range opts.Formats {
		path := base + "." + format
		if err := writeOutput(path, artifacts[format]); err != nil {
			spinner.StopWithError("Write failed")
			return err
		}
		logger.Debug("wrote file", "path", path, "bytes", len(artifacts[format]))
		paths = append(paths, path)
	}
	spinner.StopWithSuccess("Rendered " + name)
	prog.done(fmt.Sprintf("Wrote %d file(s)", len(paths)))

	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// basePath derives the output path without extension.
// An empty output uses the sample name; a directory (existing, or given
// with a trailing separator) receives <dir>/<sample>; a known format
// extension on output is stripped.
func basePath(output, sample string) string {
	if output == "" {
		return sample
	}
	if strings.HasSuffix(output, "/") || strings.HasSuffix(output, string(filepath.Separator)) {
		return filepath.Join(output, sample)
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, sample)
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeOutput writes data to path, creating parent directories.
func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
