package observability

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every pipeline event to a logger at debug level and
// counts cache lookups.
type LogHooks struct {
	logger *log.Logger

	mu     sync.Mutex
	hits   int
	misses int
}

// NewLogHooks returns hooks that log through logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger.WithPrefix("hooks")}
}

func (h *LogHooks) OnBuild(_ context.Context, e BuildEvent) {
	h.logger.Debug("built", "stage", e.Stage, "subject", e.Subject, "items", e.Items,
		"duration", e.Duration.Round(time.Microsecond))
}

func (h *LogHooks) OnRender(_ context.Context, e RenderEvent) {
	if e.Err != nil {
		h.logger.Debug("render failed", "stage", e.Stage, "formats", e.Formats, "error", e.Err)
		return
	}
	h.logger.Debug("rendered", "stage", e.Stage, "formats", e.Formats, "cached", e.Cached,
		"duration", e.Duration.Round(time.Microsecond))
}

func (h *LogHooks) OnCacheLookup(_ context.Context, stage Stage, hit bool) {
	h.mu.Lock()
	if hit {
		h.hits++
	} else {
		h.misses++
	}
	hits, misses := h.hits, h.misses
	h.mu.Unlock()
	h.logger.Debug("cache lookup", "stage", stage, "hit", hit, "hits", hits, "misses", misses)
}

// CacheStats returns the cache hits and misses seen so far.
func (h *LogHooks) CacheStats() (hits, misses int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hits, h.misses
}

// OnResponse makes LogHooks usable as [HTTPHooks] too.
func (h *LogHooks) OnResponse(_ context.Context, e RequestEvent) {
	h.logger.Debug("response", "method", e.Method, "path", e.Path, "status", e.Status)
}
