// Package pkg provides the core libraries of the casement window generator.
//
// # Overview
//
// Casement turns one window spec (size, profile, design, glass, grill, mesh,
// rate) into four outputs: a 3D model made of axis-aligned boxes, a 2D
// schematic, a pricing breakdown and a printable A4 quotation. The pkg
// directory is organized into four areas:
//
//  1. Domain: [window], [geometry], [pricing], [diagram], [quotation]
//  2. Drawing and output: [draw], [render], [render/model], [render/page], [fonts]
//  3. Orchestration: [pipeline]
//  4. Support: [io], [config], [cache], [errors], [observability], [buildinfo]
//
// # Architecture
//
// The data flow for both outputs:
//
//	WindowSpecs (form, CLI flags, JSON/TOML file, HTTP body)
//	         ↓
//	    [window] package (validate, resolve slider topology)
//	         ↓
//	    ├─ [geometry] → [render/model]     JSON, OBJ+MTL, PNG, HTML viewer
//	    └─ [quotation] → [render/page]     SVG, PDF, PNG, JSON
//	         ↑
//	    [pricing] (the only place area and total are computed)
//
// The 3D model picks its topology from the window type alone; the schematic
// treats the window as a slider when any of window type, design label or
// profile says so. [window.ResolveTopology] reports both decisions and
// whether they disagree.
//
// # Quick Start
//
//	s := window.Default()
//	s.WindowType = window.Slider
//	s.Grill = true
//
//	runner := pipeline.NewRunner(nil, logger)
//	model, _ := runner.Model(ctx, s, pipeline.Options{Formats: []string{"obj"}})
//	quote, _ := runner.Quote(ctx, s, pipeline.Options{Formats: []string{"pdf"}, Client: "Asha Patel"})
//
// The core packages ([geometry], [pricing], [diagram], [quotation]) never
// validate and never fail: degenerate input yields degenerate but
// well-formed output. Validation happens at the boundary in
// [pipeline.Runner], the CLI and the HTTP server.
//
// [window]: https://pkg.go.dev/github.com/matzehuels/casement/pkg/window
// [geometry]: https://pkg.go.dev/github.com/matzehuels/casement/pkg/geometry
// [pricing]: https://pkg.go.dev/github.com/matzehuels/casement/pkg/pricing
// [diagram]: https://pkg.go.dev/github.com/matzehuels/casement/pkg/diagram
// [quotation]: https://pkg.go.dev/github.com/matzehuels/casement/pkg/quotation
// [draw]: https://pkg.go.dev/github.com/matzehuels/casement/pkg/draw
// [render]: https://pkg.go.dev/github.com/matzehuels/casement/pkg/render
// [render/model]: https://pkg.go.dev/github.com/matzehuels/casement/pkg/render/model
// [render/page]: https://pkg.go.dev/github.com/matzehuels/casement/pkg/render/page
// [fonts]: https://pkg.go.dev/github.com/matzehuels/casement/pkg/fonts
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/casement/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/matzehuels/casement/pkg/io
// [config]: https://pkg.go.dev/github.com/matzehuels/casement/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/casement/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/casement/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/casement/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/casement/pkg/buildinfo
// [window.ResolveTopology]: https://pkg.go.dev/github.com/matzehuels/casement/pkg/window#ResolveTopology
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/casement/pkg/pipeline#Runner
package pkg
