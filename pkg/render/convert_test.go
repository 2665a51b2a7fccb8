package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/matzehuels/casement/pkg/errors"
)

const tinySVG = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10"/></svg>`

func TestToPDF(t *testing.T) {
	if !Available() {
		_, err := ToPDF(context.Background(), []byte(tinySVG))
		if !errors.Is(err, errors.ErrCodeUnsupported) {
			t.Fatalf("ToPDF without %s: error = %v, want UNSUPPORTED", Converter, err)
		}
		t.Skipf("%s not installed", Converter)
	}

	pdf, err := ToPDF(context.Background(), []byte(tinySVG))
	if err != nil {
		t.Fatalf("ToPDF() error = %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF: %q", pdf[:min(len(pdf), 8)])
	}
}

func TestToPDFCancelled(t *testing.T) {
	if !Available() {
		t.Skipf("%s not installed", Converter)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ToPDF(ctx, []byte(tinySVG)); err == nil {
		t.Error("ToPDF with a cancelled context should fail")
	}
}
