// Package geometry derives the 3D model of a window from its specs.
//
// # Overview
//
// [Derive] maps a [window.WindowSpecs] to a [Model]: a flat list of
// axis-aligned boxes in a unit-less coordinate system. The window's outer
// rectangle is W = Width/12 wide and H = Height/12 tall, centered on the
// origin, with the viewer looking down the negative Z axis. Frame members
// are [FrameThickness] thick regardless of profile system.
//
// # Solids
//
// Every model has four frame members. The glazing depends on the 3D
// topology from [window.ResolveTopology]:
//
//   - Fixed: one pane filling the inner rectangle (W-T by H-T).
//   - Sliding: two half-width leaves offset in depth, plus a central
//     divider spanning the full height.
//
// Optional overlays sit in front of the glass at distinct depths so they
// never z-fight: the grill (three horizontal and three vertical bars at
// z = 0.1) and the insect mesh (one inset panel at z = 0.15).
//
// # Materials
//
// Each solid names one of three material classes. [Materials] maps each
// class to the hints a renderer needs (color, opacity, metalness,
// roughness, transmission). The core does not prescribe a shading model.
//
// # Purity
//
// Derive never validates and never panics. Two calls with equal specs
// return equal models; non-positive or non-finite dimensions simply
// produce degenerate boxes.
package geometry
