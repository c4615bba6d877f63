package pipeline

import (
	"bytes"
	"context"
	"image/color"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/diagrams/pkg/diagram"
	"github.com/matzehuels/diagrams/pkg/errors"
	"github.com/matzehuels/diagrams/pkg/geom"
	"github.com/matzehuels/diagrams/pkg/observability"
	"github.com/matzehuels/diagrams/pkg/render"
	"github.com/matzehuels/diagrams/pkg/render/sink"
)

// Render draws d into a Width×Height frame once per requested format and
// returns the encoded outputs keyed by format. Formats render concurrently;
// the first failure cancels the rest.
func Render(ctx context.Context, d diagram.Diagram, opts Options) (map[string][]byte, error) {
	if d == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "diagram is nil")
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	var bg color.Color
	if opts.Background != "" {
		bg, _ = diagram.ParseColor(opts.Background) // checked by Validate
	}

	hooks := observability.Pipeline()
	logger := opts.Logger
	start := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	logger.Debug("rendering diagram",
		"size", diagram.SizeOf(d),
		"frame", geom.Sz(opts.Width, opts.Height),
		"formats", opts.Formats)

	var (
		mu        sync.Mutex
		artifacts = make(map[string][]byte, len(opts.Formats))
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		format := format
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			formatStart := time.Now()
			data, err := renderFormat(d, format, opts, bg)
			hooks.OnFormatComplete(gctx, format, len(data), time.Since(formatStart), err)
			if err != nil {
				return err
			}
			logger.Debug("rendered format", "format", format, "bytes", len(data), "duration", time.Since(formatStart))

			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	logger.Info("rendered outputs", "formats", opts.Formats, "duration", time.Since(start))
	return artifacts, nil
}

// renderFormat draws d into a fresh canvas for format and encodes it.
func renderFormat(d diagram.Diagram, format string, opts Options, bg color.Color) ([]byte, error) {
	frame := geom.R(0, 0, opts.Width, opts.Height)

	switch format {
	case FormatSVG:
		var svgOpts []sink.SVGOption
		if bg != nil {
			svgOpts = append(svgOpts, sink.WithSVGBackground(bg))
		}
		c := sink.NewSVGCanvas(opts.Width, opts.Height, svgOpts...)
		render.Draw(c, d, frame)
		return c.Bytes(), nil

	case FormatPNG:
		pngOpts := []sink.PNGOption{sink.WithScale(opts.Scale)}
		if bg != nil {
			pngOpts = append(pngOpts, sink.WithPNGBackground(bg))
		}
		c := sink.NewPNGCanvas(opts.Width, opts.Height, pngOpts...)
		render.Draw(c, d, frame)
		var buf bytes.Buffer
		if err := c.EncodePNG(&buf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
		}
		return buf.Bytes(), nil

	case FormatJSON:
		rec := sink.NewRecorder()
		render.Draw(rec, d, frame)
		data, err := sink.RenderJSON(rec, opts.Width, opts.Height)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json trace")
		}
		return data, nil

	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
	}
}
