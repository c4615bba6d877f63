// Package pipeline renders one diagram into one or more output formats.
//
// It is the layer between the pure core (geom, diagram, render) and the
// command line: it owns output options, their defaults and validation, and
// the choice of canvas for each format. By centralizing this logic the CLI
// and any other entry point render identically.
//
// # Formats
//
//   - svg: an SVG document drawn by [sink.SVGCanvas]
//   - png: a raster image drawn by [sink.PNGCanvas]
//   - json: the canvas command trace recorded by [sink.Recorder]
//
// # Usage
//
//	opts := pipeline.Options{
//	    Width:   400,
//	    Height:  300,
//	    Formats: []string{"svg", "png"},
//	}
//	artifacts, err := pipeline.Render(ctx, d, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := artifacts["svg"]
//
// Formats are rendered concurrently, each into its own canvas; the diagram
// itself is shared since it is immutable.
package pipeline

import (
	"io"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/diagrams/pkg/diagram"
	"github.com/matzehuels/diagrams/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and library use
// =============================================================================

const (
	// DefaultWidth is the default frame width.
	DefaultWidth = 800.0

	// DefaultHeight is the default frame height.
	DefaultHeight = 600.0

	// DefaultScale is the default PNG pixel density.
	DefaultScale = 1.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a render. The zero value is usable after SetDefaults.
type Options struct {
	Width      float64  `json:"width,omitempty"`
	Height     float64  `json:"height,omitempty"`
	Background string   `json:"background,omitempty"` // CSS color; empty means transparent
	Scale      float64  `json:"scale,omitempty"`      // PNG only
	Formats    []string `json:"formats,omitempty"`

	Logger *log.Logger `json:"-"`
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming blanks and
// dropping duplicates. An empty string yields the default format.
func ParseFormats(s string) []string {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(formats, f) {
			formats = append(formats, f)
		}
	}
	if len(formats) == 0 {
		return []string{FormatSVG}
	}
	return formats
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the frame size, scale, formats and background color.
func (o *Options) Validate() error {
	if !positive(o.Width) || !positive(o.Height) {
		return errors.New(errors.ErrCodeInvalidSize, "frame size must be positive, got %gx%g", o.Width, o.Height)
	}
	if !positive(o.Scale) {
		return errors.New(errors.ErrCodeInvalidSize, "scale must be positive, got %g", o.Scale)
	}
	if len(o.Formats) == 0 {
		return errors.New(errors.ErrCodeInvalidFormat, "at least one format is required")
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Background != "" {
		if _, err := diagram.ParseColor(o.Background); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults applies defaults and then validates.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
