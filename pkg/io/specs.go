package io

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/casement/pkg/errors"
	"github.com/matzehuels/casement/pkg/window"
)

// Spec file formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

// FormatFor returns the spec format implied by path's extension, or "" if
// the extension is not recognized.
func FormatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	}
	return ""
}

// ReadSpecs decodes a spec from r. An empty format sniffs the content.
// ReadSpecs does not close r.
func ReadSpecs(r io.Reader, format string) (window.WindowSpecs, error) {
	return ReadSpecsOver(r, format, window.WindowSpecs{})
}

// ReadSpecsOver decodes a spec from r on top of base. Keys present in the
// input replace base values, including explicit zeros; absent keys keep
// them.
func ReadSpecsOver(r io.Reader, format string, base window.WindowSpecs) (window.WindowSpecs, error) {
	s := base

	br := bufio.NewReader(r)
	if format == "" {
		format = sniff(br)
	}

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(br).Decode(&s); err != nil {
			return s, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json spec")
		}
	case FormatTOML:
		md, err := toml.NewDecoder(br).Decode(&s)
		if err != nil {
			return s, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode toml spec")
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return s, errors.New(errors.ErrCodeInvalidInput, "unknown spec key: %s", keys[0])
		}
	default:
		return s, errors.New(errors.ErrCodeInvalidFormat, "invalid spec format: %q (must be json or toml)", format)
	}
	return s, nil
}

// sniff peeks at the first non-blank byte.
func sniff(br *bufio.Reader) string {
	for n := 1; ; n++ {
		buf, err := br.Peek(n)
		if len(buf) < n || err != nil {
			return FormatTOML
		}
		switch c := buf[n-1]; c {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return FormatJSON
		default:
			return FormatTOML
		}
	}
}

// ImportSpecs reads the spec file at path.
func ImportSpecs(path string) (window.WindowSpecs, error) {
	return ImportSpecsOver(path, window.WindowSpecs{})
}

// ImportSpecsOver reads the spec file at path on top of base, as
// [ReadSpecsOver] does.
func ImportSpecsOver(path string, base window.WindowSpecs) (window.WindowSpecs, error) {
	if err := errors.ValidatePath(path); err != nil {
		return window.WindowSpecs{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return window.WindowSpecs{}, errors.New(errors.ErrCodeFileNotFound, "spec file not found: %s", path)
		}
		return window.WindowSpecs{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s, err := ReadSpecsOver(f, FormatFor(path), base)
	if err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// WriteSpecs encodes s to w in the given format.
func WriteSpecs(s window.WindowSpecs, w io.Writer, format string) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return nil
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(s); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "invalid spec format: %q (must be json or toml)", format)
}

// ExportSpecs writes s to path, choosing the format from the extension.
// Unknown extensions are written as JSON.
func ExportSpecs(s window.WindowSpecs, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := WriteSpecs(s, &buf, FormatFor(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
