package model

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"

	"github.com/matzehuels/casement/pkg/geometry"
)

// boxFaces lists the corners of each box face, counter-clockwise seen from
// outside, indexing the corners produced by [corners].
var boxFaces = [6][4]int{
	{0, 3, 2, 1}, // back   (-z)
	{4, 5, 6, 7}, // front  (+z)
	{0, 1, 5, 4}, // bottom (-y)
	{3, 7, 6, 2}, // top    (+y)
	{0, 4, 7, 3}, // left   (-x)
	{1, 2, 6, 5}, // right  (+x)
}

// corners returns the eight corners of s: the back face (-z) first, then
// the front face, each starting at its minimum corner and running
// counter-clockwise when seen from +z.
func corners(s geometry.Solid) [8]geometry.Vec3 {
	lo, hi := s.Min(), s.Max()
	return [8]geometry.Vec3{
		{lo[0], lo[1], lo[2]},
		{hi[0], lo[1], lo[2]},
		{hi[0], hi[1], lo[2]},
		{lo[0], hi[1], lo[2]},
		{lo[0], lo[1], hi[2]},
		{hi[0], lo[1], hi[2]},
		{hi[0], hi[1], hi[2]},
		{lo[0], hi[1], hi[2]},
	}
}

// RenderOBJ writes m as Wavefront OBJ. mtlName is referenced with mtllib
// and should be the file name the MTL library is saved under.
func RenderOBJ(m geometry.Model, mtlName string) []byte {
	var buf bytes.Buffer
	buf.WriteString("# casement window model\n")
	if mtlName != "" {
		fmt.Fprintf(&buf, "mtllib %s\n", mtlName)
	}
	base := 1
	for _, s := range m.Solids {
		fmt.Fprintf(&buf, "o %s\n", s.Name)
		for _, c := range corners(s) {
			fmt.Fprintf(&buf, "v %s %s %s\n", f(c[0]), f(c[1]), f(c[2]))
		}
		fmt.Fprintf(&buf, "usemtl %s\n", s.Material)
		for _, face := range boxFaces {
			fmt.Fprintf(&buf, "f %d %d %d %d\n", base+face[0], base+face[1], base+face[2], base+face[3])
		}
		base += 8
	}
	return buf.Bytes()
}

// RenderMTL writes the material library for [RenderOBJ].
func RenderMTL() []byte {
	var buf bytes.Buffer
	buf.WriteString("# casement materials\n")
	names := make([]geometry.Material, 0, len(geometry.Materials))
	for name := range geometry.Materials {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		h := geometry.Materials[name]
		r, g, b := hexRGB(h.Color)
		fmt.Fprintf(&buf, "\nnewmtl %s\n", name)
		fmt.Fprintf(&buf, "Kd %s %s %s\n", f(r), f(g), f(b))
		fmt.Fprintf(&buf, "Ks %s %s %s\n", f(h.Metalness), f(h.Metalness), f(h.Metalness))
		fmt.Fprintf(&buf, "Ns %s\n", f((1-h.Roughness)*1000))
		fmt.Fprintf(&buf, "d %s\n", f(h.Opacity))
		buf.WriteString("illum 2\n")
	}
	return buf.Bytes()
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// hexRGB parses "#rrggbb" into components in [0, 1]. Malformed input
// yields mid grey.
func hexRGB(hex string) (r, g, b float64) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0.5, 0.5, 0.5
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0.5, 0.5, 0.5
	}
	return float64(v>>16&0xff) / 255, float64(v>>8&0xff) / 255, float64(v&0xff) / 255
}
