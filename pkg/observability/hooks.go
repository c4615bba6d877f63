// Package observability provides hooks for metrics, tracing, and logging.
//
// The render pipeline reports what it does through a small hook interface
// instead of depending on a specific metrics backend. A no-op implementation
// is registered by default; binaries that want instrumentation register
// their own at startup.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnRenderStart(ctx, formats)
//	// ... render ...
//	observability.Pipeline().OnRenderComplete(ctx, formats, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the render pipeline.
//
// Implementations must be safe for concurrent use: OnFormatComplete is called
// from the goroutine that rendered the format.
type PipelineHooks interface {
	// OnRenderStart is called once before any format is rendered.
	OnRenderStart(ctx context.Context, formats []string)

	// OnFormatComplete is called after each format, with the encoded size in
	// bytes (zero on error).
	OnFormatComplete(ctx context.Context, format string, size int, duration time.Duration, err error)

	// OnRenderComplete is called once after all formats are done.
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                             {}
func (NoopPipelineHooks) OnFormatComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)    {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. A nil h is ignored.
// This should be called once at application startup before any rendering.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op default.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
