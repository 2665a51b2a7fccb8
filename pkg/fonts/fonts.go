// Package fonts provides the typefaces used by the raster sinks and the
// font-family names written into SVG output.
//
// The Go fonts from golang.org/x/image are compiled into the binary, so PNG
// output needs no system fonts. Font sources are parsed once on first use.
package fonts

import (
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily is the CSS font-family written into SVG documents.
const FontFamily = `Helvetica, Arial, 'Go', sans-serif`

var (
	regular, bold       *text.FontSource
	regularErr, boldErr error
	loadOnce            sync.Once
)

func load() {
	regular, regularErr = text.NewFontSource(goregular.TTF)
	bold, boldErr = text.NewFontSource(gobold.TTF)
}

// Regular returns the parsed Go Regular font source.
func Regular() (*text.FontSource, error) {
	loadOnce.Do(load)
	return regular, regularErr
}

// Bold returns the parsed Go Bold font source.
func Bold() (*text.FontSource, error) {
	loadOnce.Do(load)
	return bold, boldErr
}

// Face returns a face of the given size in pixels, bold or regular.
func Face(size float64, isBold bool) (text.Face, error) {
	src, err := Regular()
	if isBold {
		src, err = Bold()
	}
	if err != nil {
		return nil, err
	}
	return src.Face(size), nil
}
