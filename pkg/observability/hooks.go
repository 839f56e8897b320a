// Package observability provides hooks for instrumenting search runs.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive an event at each pipeline stage.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for pipeline events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
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
//	observability.Pipeline().OnSearchStart(ctx, nodeCount, edgeCount)
//	// ... enumerate paths ...
//	observability.Pipeline().OnSearchComplete(ctx, pathCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the search pipeline.
type PipelineHooks interface {
	// Generation events
	OnGenerateComplete(ctx context.Context, nodeCount int, seed uint64, duration time.Duration, err error)
	OnSampleComplete(ctx context.Context, edgeCount int, duration time.Duration)

	// Search events
	OnSearchStart(ctx context.Context, nodeCount, edgeCount int)
	OnSearchComplete(ctx context.Context, pathCount int, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnGenerateComplete(context.Context, int, uint64, time.Duration, error) {}
func (NoopPipelineHooks) OnSampleComplete(context.Context, int, time.Duration)                  {}
func (NoopPipelineHooks) OnSearchStart(context.Context, int, int)                               {}
func (NoopPipelineHooks) OnSearchComplete(context.Context, int, time.Duration, error)           {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
// A nil h is ignored.
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

// Reset restores the hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
