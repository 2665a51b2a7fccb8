package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/casement/pkg/cache"
	"github.com/matzehuels/casement/pkg/errors"
	"github.com/matzehuels/casement/pkg/geometry"
	"github.com/matzehuels/casement/pkg/observability"
	"github.com/matzehuels/casement/pkg/pricing"
	"github.com/matzehuels/casement/pkg/quotation"
	"github.com/matzehuels/casement/pkg/window"
)

// Runner executes pipeline runs.
//
// The Runner holds no per-run state. Model artifacts go through Cache;
// quotations are always rendered fresh. Multiple goroutines can safely use
// the same Runner with different specs and options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger

	// Templates holds configured templates by lower-case name. They
	// shadow built-ins of the same name.
	Templates map[string]quotation.Template

	// DefaultTemplate is used when Options.Template is empty.
	DefaultTemplate string
}

// NewRunner creates a runner that logs to logger.
// If c is nil, a NullCache is used (caching disabled). If logger is nil,
// the default logger is used.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:           c,
		Logger:          logger,
		Templates:       map[string]quotation.Template{},
		DefaultTemplate: quotation.DefaultTemplate,
	}
}

// logger returns the run's logger, falling back to the runner's.
func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

// Validate rejects specs that cannot be priced unless opts.SkipValidation
// is set. A disagreement between the slider signals is only logged.
func (r *Runner) Validate(s window.WindowSpecs, opts Options) error {
	if res := window.ResolveTopology(s); res.Conflicting() {
		r.logger(opts).Warn("slider signals disagree",
			"signals", res.Signals,
			"model", res.Model,
			"schematic", res.Schematic)
	}
	if opts.SkipValidation {
		return nil
	}
	return s.Validate()
}

// Price validates s and returns its pricing breakdown.
func (r *Runner) Price(s window.WindowSpecs, opts Options) (pricing.Breakdown, error) {
	if err := r.Validate(s, opts); err != nil {
		return pricing.Breakdown{}, err
	}
	return pricing.Price(s), nil
}

// Model runs the derive → render pipeline.
func (r *Runner) Model(ctx context.Context, s window.WindowSpecs, opts Options) (*ModelResult, error) {
	if err := opts.ValidateForModel(); err != nil {
		return nil, err
	}
	if err := r.Validate(s, opts); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()

	start := time.Now()
	m := geometry.Derive(s)
	result := &ModelResult{
		Model:    m,
		Topology: window.ResolveTopology(s),
	}
	result.Stats.Solids = len(m.Solids)
	result.Stats.BuildTime = time.Since(start)
	hooks.OnBuild(ctx, observability.BuildEvent{
		Stage:    observability.StageModel,
		Subject:  string(s.WindowType),
		Items:    len(m.Solids),
		Duration: result.Stats.BuildTime,
	})

	r.logger(opts).Info("derived model",
		"topology", result.Topology.Model,
		"solids", len(m.Solids),
		"duration", result.Stats.BuildTime)

	start = time.Now()
	artifacts, hit, err := r.renderModel(ctx, m, opts)
	result.Stats.RenderTime = time.Since(start)
	hooks.OnRender(ctx, observability.RenderEvent{
		Stage:    observability.StageModel,
		Formats:  opts.Formats,
		Cached:   hit,
		Duration: result.Stats.RenderTime,
		Err:      err,
	})
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheHit = hit

	r.logger(opts).Info("rendered model",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)
	return result, nil
}

// renderModel returns the model artifacts from the cache when every
// requested one is present, and renders and stores them otherwise.
func (r *Runner) renderModel(ctx context.Context, m geometry.Model, opts Options) (map[string][]byte, bool, error) {
	data, err := json.Marshal(m)
	if err != nil {
		// Non-finite dimensions have no JSON form and so no key.
		rendered, err := RenderModel(ctx, m, opts)
		return rendered, false, err
	}
	modelHash := cache.Hash(data)

	names := slices.Clone(opts.Formats)
	if slices.Contains(names, FormatOBJ) {
		names = append(names, FormatMTL)
	}
	key := func(format string) string {
		keyOpts := cache.ArtifactKeyOpts{Format: format}
		if format == FormatPNG {
			keyOpts.ImageSize = opts.ImageSize
		}
		return cache.ArtifactKey(modelHash, keyOpts)
	}

	artifacts := make(map[string][]byte, len(names))
	for _, name := range names {
		data, hit, err := r.Cache.Get(ctx, key(name))
		if err != nil || !hit {
			break
		}
		artifacts[name] = data
	}
	hit := len(artifacts) == len(names)
	observability.Pipeline().OnCacheLookup(ctx, observability.StageModel, hit)
	if hit {
		return artifacts, true, nil
	}

	rendered, err := RenderModel(ctx, m, opts)
	if err != nil {
		return nil, false, err
	}
	for name, data := range rendered {
		if err := r.Cache.Set(ctx, key(name), data, cache.TTLArtifact); err != nil {
			r.logger(opts).Debug("cache write failed", "format", name, "error", err)
		}
	}
	return rendered, false, nil
}

// Quote runs the layout → render pipeline.
func (r *Runner) Quote(ctx context.Context, s window.WindowSpecs, opts Options) (*QuoteResult, error) {
	if err := opts.ValidateForQuote(); err != nil {
		return nil, err
	}
	if err := r.Validate(s, opts); err != nil {
		return nil, err
	}
	tmpl, err := r.Template(opts.Template)
	if err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	start := time.Now()
	doc := quotation.Build(s,
		quotation.WithClient(opts.Client),
		quotation.WithTemplate(tmpl),
		quotation.WithClock(opts.Clock),
	)
	result := &QuoteResult{Document: doc}
	result.Stats.Items = len(doc.Page.Items)
	result.Stats.BuildTime = time.Since(start)
	hooks.OnBuild(ctx, observability.BuildEvent{
		Stage:    observability.StageQuote,
		Subject:  tmpl.Name,
		Items:    result.Stats.Items,
		Duration: result.Stats.BuildTime,
	})

	r.logger(opts).Info("laid out quotation",
		"number", doc.Number,
		"template", tmpl.Name,
		"schematic", doc.Topology.Schematic,
		"total", pricing.FormatAmount(doc.Pricing.Total),
		"duration", result.Stats.BuildTime)

	start = time.Now()
	artifacts, err := RenderQuote(ctx, doc, opts)
	result.Stats.RenderTime = time.Since(start)
	hooks.OnRender(ctx, observability.RenderEvent{
		Stage:    observability.StageQuote,
		Formats:  opts.Formats,
		Duration: result.Stats.RenderTime,
		Err:      err,
	})
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts

	r.logger(opts).Info("rendered quotation",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)
	return result, nil
}

// Template resolves a template name against the configured templates and
// then the built-ins. The empty name selects the runner's default.
func (r *Runner) Template(name string) (quotation.Template, error) {
	if name == "" {
		name = r.DefaultTemplate
	}
	if name == "" {
		name = quotation.DefaultTemplate
	}
	if t, ok := r.Templates[strings.ToLower(name)]; ok {
		return t, nil
	}
	t, err := quotation.Lookup(name)
	if err != nil {
		return quotation.Template{}, err
	}
	return t, nil
}

// TemplateNames lists every template the runner can resolve.
func (r *Runner) TemplateNames() []string {
	seen := map[string]bool{}
	var names []string
	for _, n := range quotation.Names() {
		seen[n] = true
		names = append(names, n)
	}
	for n := range r.Templates {
		if !seen[n] {
			names = append(names, n)
		}
	}
	return names
}

// IsUserError reports whether err should be shown to the user verbatim.
func IsUserError(err error) bool {
	return errors.IsValidation(err) || errors.Is(err, errors.ErrCodeUnsupported)
}
