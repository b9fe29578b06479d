package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/linguista/linguista"
	"github.com/linguista/linguista/config"
	"github.com/linguista/linguista/format"
)

// run executes the command tree with an isolated config file.
func run(t *testing.T, configTOML, stdin string, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if configTOML != "" {
		if err := os.WriteFile(cfgPath, []byte(configTOML), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestFormat_BoldFromStdin(t *testing.T) {
	out, err := run(t, "", "hello world", "format", "--rule", "bold", "--start", "0", "--end", "5")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if out != "**hello** world" {
		t.Fatalf("out=%q, want %q", out, "**hello** world")
	}
}

func TestFormat_JSON(t *testing.T) {
	out, err := run(t, "", "hello world", "format", "-r", "italic", "--start", "6", "--end", "11", "--json")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	var got formatOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	want := formatOutput{Text: "hello *world*", Start: 7, End: 12, Inserted: 2}
	if got != want {
		t.Fatalf("got=%+v, want %+v", got, want)
	}
}

func TestFormat_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poem.md")
	if err := os.WriteFile(path, []byte("uno\ndos"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := run(t, "", "", "format", "--rule", "quote", "--start", "0", "--end", "7", path)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if out != "> uno\n> dos" {
		t.Fatalf("out=%q, want %q", out, "> uno\n> dos")
	}
}

func TestFormat_UnitFlag(t *testing.T) {
	text := "e\u0301x"

	if _, err := run(t, "", text, "format", "--rule", "italic", "--start", "0", "--end", "1"); !errors.Is(err, format.ErrInvalidSelection) {
		t.Fatalf("rune offset inside cluster: err=%v, want ErrInvalidSelection", err)
	}

	out, err := run(t, "", text, "format", "--rule", "italic", "--start", "0", "--end", "1", "--unit", "grapheme")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if want := "*e\u0301*x"; out != want {
		t.Fatalf("out=%q, want %q", out, want)
	}
}

func TestFormat_Errors(t *testing.T) {
	if _, err := run(t, "", "x", "format", "--rule", "underline"); !errors.Is(err, format.ErrUnknownRule) {
		t.Fatalf("unknown rule: err=%v, want ErrUnknownRule", err)
	}
	if _, err := run(t, "", "x", "format", "--start", "0"); err == nil {
		t.Fatalf("expected error without --rule")
	}
	if _, err := run(t, "", "x", "format", "--rule", "bold", "--unit", "furlong"); !errors.Is(err, config.ErrInvalidValue) {
		t.Fatalf("bad unit: err=%v, want ErrInvalidValue", err)
	}
	if _, err := run(t, "", "x", "format", "--rule", "bold", filepath.Join(t.TempDir(), "missing.md")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: err=%v, want ErrNotExist", err)
	}
}

const highlightConfig = `
[format]
unit = "byte"

[[format.rules]]
name = "highlight"
kind = "wrap"
prefix = "=="
`

func TestFormat_CustomRuleFromConfig(t *testing.T) {
	out, err := run(t, highlightConfig, "caf\u00e9 noir", "format", "--rule", "highlight", "--start", "0", "--end", "5", "--json")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	var got formatOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if want := "==caf\u00e9== noir"; got.Text != want {
		t.Fatalf("text=%q, want %q", got.Text, want)
	}
	if got.Start != 2 || got.End != 7 || got.Inserted != 4 {
		t.Fatalf("selection=[%d,%d) inserted=%d, want [2,7) 4", got.Start, got.End, got.Inserted)
	}
}

func TestRules_ListsBuiltinsAndCustom(t *testing.T) {
	out, err := run(t, highlightConfig, "", "rules")
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	for _, want := range []string{"NAME", "bold", "**…**", "quote", "numbered", "1.", "highlight", "==…=="} {
		if !strings.Contains(out, want) {
			t.Fatalf("rules output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "bold") > strings.Index(out, "highlight") {
		t.Fatalf("custom rules should follow builtins:\n%s", out)
	}
}

func TestRules_BadConfig(t *testing.T) {
	_, err := run(t, "[format]\nfont = 1\n", "", "rules")
	var pe *config.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err=%v, want *config.ParseError", err)
	}
}

func TestPreview(t *testing.T) {
	src := "**hola** mundo\n\n> verso\n"

	out, err := run(t, "", src, "preview")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !strings.Contains(out, "<strong>hola</strong>") || !strings.Contains(out, "<blockquote>") {
		t.Fatalf("html=%q", out)
	}

	out, err = run(t, "", src, "preview", "--outline", "-")
	if err != nil {
		t.Fatalf("preview --outline: %v", err)
	}
	if !strings.Contains(out, "strong: 1\n") || !strings.Contains(out, "quotes: 1\n") {
		t.Fatalf("outline=%q", out)
	}

	if _, err := run(t, "", src, "preview", "--outline", "--text"); err == nil {
		t.Fatalf("expected error for --outline with --text")
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if want := linguista.Banner() + "\n"; out != want {
		t.Fatalf("out=%q, want %q", out, want)
	}
}

func TestLogLevelFlag(t *testing.T) {
	if _, err := run(t, "", "", "--log-level", "loud", "version"); !errors.Is(err, config.ErrInvalidValue) {
		t.Fatalf("err=%v, want ErrInvalidValue", err)
	}
	if _, err := run(t, "", "", "--log-level", "debug", "version"); err != nil {
		t.Fatalf("debug level: %v", err)
	}
}
