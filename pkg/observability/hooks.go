// Package observability provides hooks for metrics, tracing, and logging.
//
// The pipeline and the HTTP server report what they do through two small
// interfaces. Nothing is reported by default; main registers an
// implementation at startup, so the core packages never import a metrics
// backend.
//
// # Usage
//
//	observability.SetPipelineHooks(observability.NewLogHooks(logger))
//
// Libraries emit events through the registry:
//
//	hooks := observability.Pipeline()
//	hooks.OnRender(ctx, observability.RenderEvent{Stage: observability.StageModel, ...})
//
// Implementations that only care about some events embed
// [NoopPipelineHooks] or [NoopHTTPHooks].
package observability

import (
	"context"
	"sync"
	"time"
)

// Stage names the pipeline step that produced an event.
type Stage string

const (
	StageModel Stage = "model"
	StageQuote Stage = "quote"
)

// BuildEvent reports a finished derive (model) or layout (quote) step.
type BuildEvent struct {
	Stage Stage
	// Subject is the window type for models and the template for quotes.
	Subject  string
	Items    int
	Duration time.Duration
}

// RenderEvent reports a finished render step.
type RenderEvent struct {
	Stage    Stage
	Formats  []string
	Cached   bool
	Duration time.Duration
	Err      error
}

// RequestEvent reports a served HTTP request.
type RequestEvent struct {
	Method   string
	Path     string
	Status   int
	Bytes    int
	Duration time.Duration
}

// =============================================================================
// Hook Interfaces
// =============================================================================

// PipelineHooks receives events from [pipeline.Runner].
//
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/casement/pkg/pipeline#Runner
type PipelineHooks interface {
	OnBuild(ctx context.Context, e BuildEvent)
	OnRender(ctx context.Context, e RenderEvent)
	OnCacheLookup(ctx context.Context, stage Stage, hit bool)
}

// HTTPHooks receives events from the HTTP server.
type HTTPHooks interface {
	OnResponse(ctx context.Context, e RequestEvent)
}

// NoopPipelineHooks ignores every event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnBuild(context.Context, BuildEvent)        {}
func (NoopPipelineHooks) OnRender(context.Context, RenderEvent)      {}
func (NoopPipelineHooks) OnCacheLookup(context.Context, Stage, bool) {}

// NoopHTTPHooks ignores every event.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnResponse(context.Context, RequestEvent) {}

// =============================================================================
// Registry
// =============================================================================

var (
	hooksMu       sync.RWMutex
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	httpHooks     HTTPHooks     = NoopHTTPHooks{}
)

// SetPipelineHooks registers h. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h == nil {
		return
	}
	hooksMu.Lock()
	pipelineHooks = h
	hooksMu.Unlock()
}

// SetHTTPHooks registers h. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h == nil {
		return
	}
	hooksMu.Lock()
	httpHooks = h
	hooksMu.Unlock()
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores the no-op hooks. Tests call it from t.Cleanup.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	httpHooks = NoopHTTPHooks{}
}
