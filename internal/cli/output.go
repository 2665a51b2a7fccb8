package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/casement/pkg/errors"
)

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for path, or stdout for "-".
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return os.Create(path)
}

// basePath strips a known format extension from output. An empty output
// yields fallback.
func basePath(output, fallback string, formats map[string]bool) string {
	if output == "" {
		return fallback
	}
	ext := filepath.Ext(output)
	if formats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactPaths maps each artifact to its output path. A single artifact
// written to an explicit output path keeps that path verbatim.
func artifactPaths(artifacts map[string][]byte, output, base string) map[string]string {
	paths := make(map[string]string, len(artifacts))
	if len(artifacts) == 1 && output != "" {
		for format := range artifacts {
			paths[format] = output
		}
		return paths
	}
	for format := range artifacts {
		paths[format] = base + "." + format
	}
	return paths
}

// writeArtifacts writes artifacts and returns the written paths in format
// order.
func writeArtifacts(artifacts map[string][]byte, output, base string) ([]string, error) {
	paths := artifactPaths(artifacts, output, base)
	formats := make([]string, 0, len(paths))
	for f := range paths {
		formats = append(formats, f)
	}
	slices.Sort(formats)

	written := make([]string, 0, len(formats))
	for _, format := range formats {
		path := paths[format]
		if err := writeFile(path, artifacts[format]); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writeFile(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}
