package draw

import (
	"math"
	"testing"
)

func TestColorHex(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Black, "#000000"},
		{White, "#ffffff"},
		{Color{220, 120, 0}, "#dc7800"},
		{Color{230, 240, 230}, "#e6f0e6"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("%v.Hex() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestFit(t *testing.T) {
	region := Rect{X: 10, Y: 20, W: 100, H: 50}

	tests := []struct {
		name string
		w, h float64
		want Rect
		ok   bool
	}{
		{"wide", 4, 1, Rect{10, 32.5, 100, 25}, true},
		{"tall", 1, 1, Rect{35, 20, 50, 50}, true},
		{"exact", 2, 1, Rect{10, 20, 100, 50}, true},
		{"zero", 0, 1, Rect{}, false},
		{"negative", 3, -1, Rect{}, false},
		{"NaN", math.NaN(), 1, Rect{}, false},
		{"inf", math.Inf(1), 1, Rect{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := region.Fit(tt.w, tt.h)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Fit(%v, %v) = %+v, %v; want %+v, %v", tt.w, tt.h, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 40, H: 20}
	if got := r.Inset(2); got != (Rect{12, 12, 36, 16}) {
		t.Errorf("Inset(2) = %+v", got)
	}
	if x, y := r.Center(); x != 30 || y != 20 {
		t.Errorf("Center() = %v, %v", x, y)
	}
	if r.Right() != 50 || r.Bottom() != 30 {
		t.Errorf("Right/Bottom = %v/%v", r.Right(), r.Bottom())
	}
}

func TestPage(t *testing.T) {
	var p Page
	st := Style{Stroke: Black}
	p.Add(Line(0, 0, 1, 1, st), RectItem(Rect{0, 0, 1, 1}, st.Filled(White)), Text(0, 0, "hi", st))

	if Count(p.Items, KindLine) != 1 || Count(p.Items, KindRect) != 1 || Count(p.Items, KindText) != 1 {
		t.Errorf("unexpected items: %+v", p.Items)
	}
	if got := Texts(p.Items); len(got) != 1 || got[0] != "hi" {
		t.Errorf("Texts() = %v", got)
	}
	if p.Items[1].Style.Fill == nil || *p.Items[1].Style.Fill != White {
		t.Error("Filled did not set the fill color")
	}
	if st.Fill != nil {
		t.Error("Filled mutated the receiver")
	}
}
