package model

import (
	"encoding/json"

	"github.com/matzehuels/casement/pkg/geometry"
)

// RenderJSON returns the indented JSON encoding of m.
func RenderJSON(m geometry.Model) ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
