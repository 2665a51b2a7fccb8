package fonts

import "testing"

func TestSources(t *testing.T) {
	r, err := Regular()
	if err != nil || r == nil {
		t.Fatalf("Regular() = %v, %v", r, err)
	}
	b, err := Bold()
	if err != nil || b == nil {
		t.Fatalf("Bold() = %v, %v", b, err)
	}
	if r == b {
		t.Error("regular and bold should be distinct sources")
	}

	again, _ := Regular()
	if again != r {
		t.Error("Regular() should be parsed once")
	}
}

func TestFace(t *testing.T) {
	for _, isBold := range []bool{false, true} {
		face, err := Face(12, isBold)
		if err != nil {
			t.Fatalf("Face(12, %v) error = %v", isBold, err)
		}
		if face == nil {
			t.Fatalf("Face(12, %v) returned nil", isBold)
		}
	}
}
