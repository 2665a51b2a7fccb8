// Package model writes a [geometry.Model] for 3D consumers.
//
// Four outputs are provided:
//
//   - [RenderJSON]: the model with material hints, the format the bundled
//     viewer and the HTTP surface use
//   - [RenderOBJ]: Wavefront OBJ geometry plus a companion MTL library
//   - [RenderPNG]: a shaded isometric snapshot, rasterized in-process
//   - [RenderHTML]: a self-contained three.js viewer page
//
// [geometry.Model]: github.com/matzehuels/casement/pkg/geometry.Model
package model
