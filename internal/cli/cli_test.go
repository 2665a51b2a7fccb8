package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/casement/pkg/errors"
)

type testCLI struct {
	*CLI
	out, err, log bytes.Buffer
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("CASEMENT_ADDR", "")
	t.Setenv("CASEMENT_TEMPLATE", "")
	t.Setenv("CASEMENT_REDIS_URL", "")

	tc := &testCLI{}
	tc.CLI = New(&tc.log, LogInfo)
	tc.Out = &tc.out
	tc.Err = &tc.err
	return tc
}

func (tc *testCLI) run(args ...string) error {
	root := tc.RootCommand()
	root.SetArgs(args)
	root.SetOut(&tc.out)
	root.SetErr(&tc.err)
	return root.ExecuteContext(context.Background())
}

func TestRootCommands(t *testing.T) {
	root := newTestCLI(t).RootCommand()
	for _, name := range []string{"model", "quote", "price", "form", "serve", "templates", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("missing command %q", name)
		}
	}
}

func TestPriceJSON(t *testing.T) {
	tc := newTestCLI(t)
	if err := tc.run("price", "--json", "--height", "48", "--width", "36", "--rate", "150", "--quantity", "2"); err != nil {
		t.Fatal(err)
	}
	var b struct {
		AreaSqFt float64 `json:"areaSqFt"`
		Total    float64 `json:"total"`
	}
	if err := json.Unmarshal(tc.out.Bytes(), &b); err != nil {
		t.Fatalf("decode %q: %v", tc.out.String(), err)
	}
	if b.AreaSqFt != 12 || b.Total != 3600 {
		t.Errorf("breakdown = %+v", b)
	}
}

func TestPriceTable(t *testing.T) {
	tc := newTestCLI(t)
	if err := tc.run("price", "--template", "mono"); err != nil {
		t.Fatal(err)
	}
	out := tc.out.String()
	for _, want := range []string{"Sq.ft per Window", "12.00 Sq.ft", "Rs.1800.00", "1 pcs"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestPriceRejectsInvalid(t *testing.T) {
	tc := newTestCLI(t)
	err := tc.run("price", "--quantity", "0")
	if !errors.Is(err, errors.ErrCodeInvalidQuantity) {
		t.Errorf("error = %v, want INVALID_QUANTITY", err)
	}
}

func TestStrictCatalogue(t *testing.T) {
	tc := newTestCLI(t)
	if err := tc.run("price", "--profile", "CUSTOM 45MM"); err != nil {
		t.Errorf("free-text profile should pass without --strict: %v", err)
	}
	tc = newTestCLI(t)
	if err := tc.run("price", "--strict", "--profile", "CUSTOM 45MM"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestQuoteWritesFile(t *testing.T) {
	tc := newTestCLI(t)
	out := filepath.Join(t.TempDir(), "q.svg")
	if err := tc.run("quote", "-f", "svg", "-o", out, "--client", "Asha Patel", "--design", "SLIDING 3 SHUTTER"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("ASHA PATEL")) {
		t.Error("quotation should name the client")
	}
	if !strings.Contains(tc.out.String(), out) {
		t.Errorf("output should list %s:\n%s", out, tc.out.String())
	}
	if !strings.Contains(tc.err.String(), "slider signals disagree") {
		t.Errorf("conflicting signals should warn, stderr = %q", tc.err.String())
	}
}

func TestQuoteDefaultFileName(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	tc := newTestCLI(t)
	if err := tc.run("quote", "-f", "json,svg", "--client", "Asha Patel"); err != nil {
		t.Fatal(err)
	}
	for _, ext := range []string{"*.json", "*.svg"} {
		matches, _ := filepath.Glob(filepath.Join(dir, "Quotation_Asha_Patel_"+ext))
		if len(matches) != 1 {
			t.Errorf("expected one %s quotation, got %v", ext, matches)
		}
	}
}

func TestQuoteInvalidFormat(t *testing.T) {
	tc := newTestCLI(t)
	if err := tc.run("quote", "-f", "docx"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestModelFromSpecFile(t *testing.T) {
	dir := t.TempDir()
	spec := filepath.Join(dir, "w1.toml")
	content := "height = 60\nwidth = 48\nwindowType = \"Slider\"\ngrill = true\nquantity = 1\nrate = 150\n"
	if err := os.WriteFile(spec, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tc := newTestCLI(t)
	if err := tc.run("model", spec, "-f", "json,obj"); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"w1.json", "w1.obj", "w1.mtl"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "w1.json"))
	if err != nil {
		t.Fatal(err)
	}
	var m struct {
		Solids []json.RawMessage `json:"solids"`
	}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if len(m.Solids) != 13 {
		t.Errorf("len(solids) = %d, want 13", len(m.Solids))
	}
}

func TestModelCache(t *testing.T) {
	tc := newTestCLI(t)
	out := filepath.Join(t.TempDir(), "w.obj")
	if err := tc.run("model", "-f", "obj", "-o", out); err != nil {
		t.Fatal(err)
	}
	if err := tc.run("model", "-f", "obj", "-o", out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(tc.log.String(), "cached=true") {
		t.Errorf("second run should hit the cache, log:\n%s", tc.log.String())
	}

	tc.out.Reset()
	if err := tc.run("cache", "clear"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(tc.out.String(), "Cleared 2 cached entries") {
		t.Errorf("cache clear output = %q", tc.out.String())
	}
}

func TestConfigFile(t *testing.T) {
	tc := newTestCLI(t)
	cfg := filepath.Join(t.TempDir(), "config.toml")
	content := "[quotation]\ncurrency = \"USD \"\n[defaults]\nrate = 10\n"
	if err := os.WriteFile(cfg, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := tc.run("price", "--config", cfg); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(tc.out.String(), "USD 120.00") {
		t.Errorf("config currency and rate not applied:\n%s", tc.out.String())
	}

	tc = newTestCLI(t)
	if err := tc.run("price", "--config", filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestTemplatesCommand(t *testing.T) {
	tc := newTestCLI(t)
	if err := tc.run("templates"); err != nil {
		t.Fatal(err)
	}
	out := tc.out.String()
	for _, want := range []string{"classic", "compact", "mono", "default"} {
		if !strings.Contains(out, want) {
			t.Errorf("templates output missing %q:\n%s", want, out)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	tc := newTestCLI(t)
	if err := tc.run("completion", "bash"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(tc.out.String(), "casement") {
		t.Error("bash completion should mention the program")
	}
}
