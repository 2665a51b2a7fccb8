// Package window defines the window description that every other casement
// package consumes.
//
// # Overview
//
// A [WindowSpecs] value is the single input record: dimensions in inches,
// frame profile, opening style, glass, accessories and pricing inputs. It is
// a plain value type. Producers (the CLI, the terminal form, the HTTP
// surface) build a fresh value per edit and hand copies to the core; no
// package mutates a WindowSpecs it receives.
//
// # Topology
//
// [ResolveTopology] is the only place that inspects the raw WindowType,
// Design and ProfileSystem strings to decide whether a window is fixed or
// sliding. It returns a [Resolution] carrying one [Topology] for the 3D
// model (driven by WindowType alone) and one for the printed schematic
// (any of the three signals). Both geometry and diagram code consume the
// resolution instead of re-deriving it.
//
//	res := window.ResolveTopology(specs)
//	if res.Schematic == window.Sliding { ... }
//	if res.Conflicting() { log.Warn("topology signals disagree") }
//
// # Validation
//
// The core packages never validate. Surfaces call [WindowSpecs.Validate]
// at the boundary; it returns coded errors from
// [github.com/matzehuels/casement/pkg/errors].
//
// # Catalogues
//
// [Profiles], [Designs], [LockingTypes] and [WindowTypes] list the values
// the form pickers offer. They constrain input surfaces, not the core.
package window
