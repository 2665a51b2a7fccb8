package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/casement/pkg/cache"
	"github.com/matzehuels/casement/pkg/errors"
	"github.com/matzehuels/casement/pkg/observability"
	"github.com/matzehuels/casement/pkg/quotation"
	"github.com/matzehuels/casement/pkg/window"
)

var fixedClock = func() time.Time { return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC) }

func TestValidateQuoteFormats(t *testing.T) {
	tests := []struct {
		formats []string
		wantErr bool
	}{
		{[]string{"svg"}, false},
		{[]string{"png", "pdf", "json"}, false},
		{nil, false},
		{[]string{"obj"}, true},
		{[]string{"SVG"}, true}, // case-sensitive
		{[]string{""}, true},
	}

	for _, tt := range tests {
		err := ValidateQuoteFormats(tt.formats)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateQuoteFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateQuoteFormats(%v) code = %s", tt.formats, errors.GetCode(err))
		}
	}
}

func TestValidateModelFormats(t *testing.T) {
	if err := ValidateModelFormats([]string{"json", "obj", "png", "html"}); err != nil {
		t.Errorf("valid formats should pass: %v", err)
	}
	err := ValidateModelFormats([]string{"pdf"})
	if err == nil {
		t.Fatal("pdf is not a model format")
	}
	if !strings.Contains(err.Error(), "json, obj, png, html") {
		t.Errorf("error should list allowed formats: %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	got := ParseFormats(" svg, pdf,,json ")
	want := []string{"svg", "pdf", "json"}
	if !slices.Equal(got, want) {
		t.Errorf("ParseFormats() = %v, want %v", got, want)
	}
	if ParseFormats("") != nil {
		t.Error("empty input should give nil")
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateForQuote(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(opts.Formats, DefaultQuoteFormats) {
		t.Errorf("Formats = %v, want %v", opts.Formats, DefaultQuoteFormats)
	}
	if opts.DPI != DefaultDPI || opts.ImageSize != DefaultImageSize {
		t.Errorf("DPI/ImageSize = %v/%v", opts.DPI, opts.ImageSize)
	}
	if opts.Logger == nil || opts.Clock == nil {
		t.Error("Logger and Clock should be set")
	}

	opts = Options{}
	if err := opts.ValidateForModel(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(opts.Formats, DefaultModelFormats) {
		t.Errorf("Formats = %v, want %v", opts.Formats, DefaultModelFormats)
	}
}

func TestRunnerPrice(t *testing.T) {
	r := NewRunner(nil, nil)
	s := window.Default()
	s.Height, s.Width, s.Rate, s.Quantity = 48, 36, 150, 1

	b, err := r.Price(s, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if b.AreaSqFt != 12 || b.Total != 1800 {
		t.Errorf("Price() = %+v", b)
	}

	s.Quantity = 0
	if _, err := r.Price(s, Options{}); !errors.Is(err, errors.ErrCodeInvalidQuantity) {
		t.Errorf("Price() error = %v, want INVALID_QUANTITY", err)
	}
	if _, err := r.Price(s, Options{SkipValidation: true}); err != nil {
		t.Errorf("SkipValidation should let the window through: %v", err)
	}
}

func TestRunnerModel(t *testing.T) {
	r := NewRunner(nil, nil)
	s := window.Default()
	s.WindowType = window.Slider
	s.Grill = true
	s.Mesh = true

	result, err := r.Model(context.Background(), s, Options{Formats: []string{"json", "obj"}})
	if err != nil {
		t.Fatal(err)
	}
	if result.Stats.Solids != 14 {
		t.Errorf("Solids = %d, want 14", result.Stats.Solids)
	}
	if result.Topology.Model != window.Sliding {
		t.Errorf("Topology.Model = %v", result.Topology.Model)
	}
	for _, f := range []string{FormatJSON, FormatOBJ, FormatMTL} {
		if len(result.Artifacts[f]) == 0 {
			t.Errorf("missing %s artifact", f)
		}
	}
	if !bytes.Contains(result.Artifacts[FormatOBJ], []byte("mtllib "+MTLName)) {
		t.Error("obj should reference the material library")
	}
	if !json.Valid(result.Artifacts[FormatJSON]) {
		t.Error("json artifact is not valid JSON")
	}
}

func TestRunnerModelCache(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil)
	ctx := context.Background()
	s := window.Default()

	first, err := r.Model(ctx, s, Options{Formats: []string{"json", "obj"}})
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheHit {
		t.Error("first run should miss")
	}

	second, err := r.Model(ctx, s, Options{Formats: []string{"obj", "json"}})
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheHit {
		t.Error("second run should hit")
	}
	for _, f := range []string{FormatJSON, FormatOBJ, FormatMTL} {
		if !bytes.Equal(first.Artifacts[f], second.Artifacts[f]) {
			t.Errorf("cached %s differs from rendered", f)
		}
	}

	s.Width = 40
	third, err := r.Model(ctx, s, Options{Formats: []string{"json"}})
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheHit {
		t.Error("a different spec should miss")
	}
}

func TestRunnerModelRejects(t *testing.T) {
	r := NewRunner(nil, nil)

	if _, err := r.Model(context.Background(), window.Default(), Options{Formats: []string{"pdf"}}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}

	s := window.Default()
	s.Width = -1
	if _, err := r.Model(context.Background(), s, Options{}); !errors.Is(err, errors.ErrCodeInvalidDimension) {
		t.Errorf("error = %v, want INVALID_DIMENSION", err)
	}
}

func TestRunnerQuote(t *testing.T) {
	r := NewRunner(nil, nil)
	s := window.Default()
	s.Design = "SLIDING 3 SHUTTER"

	result, err := r.Quote(context.Background(), s, Options{
		Formats: []string{"svg", "json"},
		Client:  "Asha Patel",
		Clock:   fixedClock,
	})
	if err != nil {
		t.Fatal(err)
	}

	doc := result.Document
	if doc.Client != "Asha Patel" {
		t.Errorf("Client = %q", doc.Client)
	}
	if doc.Template != quotation.TemplateClassic {
		t.Errorf("Template = %q, want %q", doc.Template, quotation.TemplateClassic)
	}
	if doc.Topology.Schematic != window.Sliding {
		t.Errorf("Schematic = %v, want slider", doc.Topology.Schematic)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(result.Artifacts[FormatSVG]), []byte("<")) {
		t.Error("svg artifact should be markup")
	}
	if !bytes.Contains(result.Artifacts[FormatSVG], []byte("ASHA PATEL")) {
		t.Error("svg should carry the upper-cased client name")
	}

	var decoded struct {
		Number string `json:"number"`
	}
	if err := json.Unmarshal(result.Artifacts[FormatJSON], &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Number != doc.Number {
		t.Errorf("json number = %q, want %q", decoded.Number, doc.Number)
	}

	name := result.FileName("pdf")
	if !strings.HasPrefix(name, "Quotation_Asha_Patel_") || !strings.HasSuffix(name, ".pdf") {
		t.Errorf("FileName() = %q", name)
	}
}

func TestRunnerQuoteDegenerate(t *testing.T) {
	r := NewRunner(nil, nil)
	s := window.Default()
	s.Height = 0

	if _, err := r.Quote(context.Background(), s, Options{Formats: []string{"svg"}}); !errors.Is(err, errors.ErrCodeInvalidDimension) {
		t.Fatalf("error = %v, want INVALID_DIMENSION", err)
	}

	result, err := r.Quote(context.Background(), s, Options{Formats: []string{"svg"}, SkipValidation: true})
	if err != nil {
		t.Fatalf("degenerate specs should still render: %v", err)
	}
	if len(result.Artifacts[FormatSVG]) == 0 {
		t.Error("missing svg artifact")
	}
}

func TestRunnerTemplate(t *testing.T) {
	r := NewRunner(nil, nil)
	custom := quotation.Compact()
	custom.Name = "branch"
	custom.Company.Name = "TEKNA BRANCH OFFICE"
	r.Templates["branch"] = custom

	tests := []struct {
		name     string
		want     string
		wantCode errors.Code
	}{
		{"", quotation.TemplateClassic, ""},
		{"mono", quotation.TemplateMono, ""},
		{"Branch", "branch", ""},
		{"glossy", "", errors.ErrCodeInvalidTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Template(tt.name)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Errorf("Template(%q) error = %v, want %s", tt.name, err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got.Name != tt.want {
				t.Errorf("Template(%q).Name = %q, want %q", tt.name, got.Name, tt.want)
			}
		})
	}

	names := r.TemplateNames()
	if !slices.Contains(names, "branch") || !slices.Contains(names, quotation.TemplateClassic) {
		t.Errorf("TemplateNames() = %v", names)
	}

	r.DefaultTemplate = "branch"
	result, err := r.Quote(context.Background(), window.Default(), Options{Formats: []string{"svg"}})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(result.Artifacts[FormatSVG], []byte("TEKNA BRANCH OFFICE")) {
		t.Error("default template should come from the runner")
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) record(e string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHooks) OnBuild(_ context.Context, e observability.BuildEvent) {
	h.record("build " + string(e.Stage) + " " + e.Subject)
}

func (h *recordingHooks) OnRender(_ context.Context, e observability.RenderEvent) {
	if e.Err == nil {
		h.record(fmt.Sprintf("render %s cached=%t", e.Stage, e.Cached))
	}
}

func (h *recordingHooks) OnCacheLookup(_ context.Context, stage observability.Stage, hit bool) {
	h.record(fmt.Sprintf("lookup %s hit=%t", stage, hit))
}

func TestRunnerHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	t.Cleanup(observability.Reset)

	r := NewRunner(nil, nil)
	if _, err := r.Model(context.Background(), window.Default(), Options{}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Quote(context.Background(), window.Default(), Options{Formats: []string{"json"}}); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"build model Normal",
		"lookup model hit=false",
		"render model cached=false",
		"build quote classic",
		"render quote cached=false",
	}
	if !slices.Equal(hooks.events, want) {
		t.Errorf("events = %v, want %v", hooks.events, want)
	}
}

func TestIsUserError(t *testing.T) {
	if !IsUserError(errors.New(errors.ErrCodeInvalidRate, "rate")) {
		t.Error("validation errors are user errors")
	}
	if IsUserError(errors.New(errors.ErrCodeInternal, "boom")) {
		t.Error("internal errors are not user errors")
	}
}

func TestRunLoggerOverridesRunner(t *testing.T) {
	var runnerOut, runOut bytes.Buffer
	r := NewRunner(nil, log.NewWithOptions(&runnerOut, log.Options{}))

	opts := Options{Formats: []string{"json"}, Logger: log.NewWithOptions(&runOut, log.Options{})}
	if _, err := r.Model(context.Background(), window.Default(), opts); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(runOut.String(), "derived model") {
		t.Errorf("run logger missed the model lines:\n%s", runOut.String())
	}
	if runnerOut.Len() != 0 {
		t.Errorf("runner logger should stay quiet, got:\n%s", runnerOut.String())
	}

	if _, err := r.Model(context.Background(), window.Default(), Options{Formats: []string{"json"}}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(runnerOut.String(), "derived model") {
		t.Error("without a run logger the runner logger should be used")
	}
}
