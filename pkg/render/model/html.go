package model

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/matzehuels/casement/pkg/errors"
	"github.com/matzehuels/casement/pkg/geometry"
	"github.com/matzehuels/casement/pkg/window"
)

//go:embed viewer.html
var viewerHTML string

var viewer = template.Must(template.New("viewer").Parse(viewerHTML))

// HTMLOption configures [RenderHTML].
type HTMLOption func(*viewerData)

type viewerData struct {
	Title        string
	Model        *geometry.Model
	Live         bool
	Specs        window.WindowSpecs
	Profiles     []string
	Designs      []string
	LockingTypes []string
	WindowTypes  []window.WindowType
	ModelPath    string
	PricePath    string
	QuotePath    string
}

// WithPageTitle sets the document title.
func WithPageTitle(title string) HTMLOption {
	return func(d *viewerData) { d.Title = title }
}

// WithLiveForm adds an input form that posts specs to the given API paths
// and redraws the scene from the response. seed fills the form.
func WithLiveForm(seed window.WindowSpecs, modelPath, pricePath, quotePath string) HTMLOption {
	return func(d *viewerData) {
		d.Live = true
		d.Specs = seed
		d.ModelPath, d.PricePath, d.QuotePath = modelPath, pricePath, quotePath
	}
}

// RenderHTML returns a standalone viewer page. A nil model renders an
// empty scene, which is useful together with [WithLiveForm].
func RenderHTML(m *geometry.Model, opts ...HTMLOption) ([]byte, error) {
	d := viewerData{
		Title:        "casement window",
		Model:        m,
		Profiles:     window.Profiles,
		Designs:      window.Designs,
		LockingTypes: window.LockingTypes,
		WindowTypes:  window.WindowTypes,
	}
	for _, opt := range opts {
		opt(&d)
	}
	var buf bytes.Buffer
	if err := viewer.Execute(&buf, d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "viewer template")
	}
	return buf.Bytes(), nil
}
