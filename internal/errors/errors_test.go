package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{"empty slug", "F001", "Field slug is empty", CategoryField},
		{"duplicate option", "F003", "Duplicate option slug", CategoryField},
		{"schema syntax", "F021", "Invalid definition syntax", CategorySchema},
		{"config", "F040", "Invalid configuration file", CategoryConfig},
		{"share token", "F060", "Invalid share token", CategoryPreview},
		{"unknown code", "F999", "Unknown error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "file %q not found", "form.yaml")
	if err.Message != `file "form.yaml" not found` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q, want %q", err.Category, CategoryCLI)
	}
}

func TestFormError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *FormError
		want string
	}{
		{"code only", New("F001"), "F001: Field slug is empty"},
		{"with field", New("F002").WithField("email"), `F002: Duplicate field slug (field "email")`},
		{"no code", &FormError{Message: "test error"}, "test error"},
		{"wrapped", New("F040").Wrap(fmt.Errorf("boom")), "F040: Invalid configuration file: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAndUnwrap(t *testing.T) {
	inner := fmt.Errorf("disk full")
	err := fmt.Errorf("publishing: %w", New("F070").Wrap(inner))

	if !stderrors.Is(err, New("F070")) {
		t.Error("errors.Is should match by code")
	}
	if stderrors.Is(err, New("F060")) {
		t.Error("errors.Is should not match a different code")
	}
	if !stderrors.Is(err, inner) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "F040") != nil {
		t.Error("FromError(nil) should be nil")
	}

	fe := New("F002")
	if got := FromError(fmt.Errorf("ctx: %w", fe), "F040"); got != fe {
		t.Error("FromError should return an existing FormError unchanged")
	}

	got := FromError(fmt.Errorf("plain"), "F040")
	if got.Code != "F040" || got.Wrapped == nil {
		t.Errorf("FromError = %+v", got)
	}
}

func TestAll(t *testing.T) {
	joined := stderrors.Join(New("F001"), fmt.Errorf("other"), New("F003").WithField("color"))
	all := All(joined)
	if len(all) != 2 {
		t.Fatalf("All() returned %d errors, want 2", len(all))
	}
	if all[0].Code != "F001" || all[1].Code != "F003" {
		t.Errorf("codes = %s, %s", all[0].Code, all[1].Code)
	}
	if All(nil) != nil {
		t.Error("All(nil) should be nil")
	}
}

func TestWithLocation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "signup.yaml")
	content := "fields:\n  - slug: email\n    kind: text\n  - slug: email\n    kind: text\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	err := New("F002").WithField("email").WithLocation(path, 4, 5)
	if err.Location.String() != path+":4:5" {
		t.Errorf("Location = %q", err.Location.String())
	}
	if len(err.Context) != 3 {
		t.Fatalf("Context has %d lines, want 3", len(err.Context))
	}
	if err.Context[1] != "  - slug: email" {
		t.Errorf("Context[1] = %q", err.Context[1])
	}

	missing := New("F002").WithLocation(filepath.Join(dir, "nope.yaml"), 1, 0)
	if missing.Context != nil {
		t.Error("missing files should produce no context")
	}
	if missing.Location.String() != filepath.Join(dir, "nope.yaml")+":1" {
		t.Errorf("Location without column = %q", missing.Location.String())
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("F004").WithField("color").WithSuggestion("Add at least one option")
	out := err.Format()

	for _, want := range []string{
		"ERROR F004: Field has no options",
		`field "color"`,
		"Hint: Add at least one option",
		"Radio, select",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("Format() should not contain escape codes when colors are disabled")
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("F001").WithField("")
	err.Location = &Location{File: "form.yaml", Line: 3}
	if got, want := err.FormatCompact(), "form.yaml:3: F001: Field slug is empty"; got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestFormatJSON(t *testing.T) {
	err := New("F023").WithField("zip").WithSuggestion("Fix the pattern")
	err.Location = &Location{File: "f.yaml", Line: 7, Column: 9}

	var decoded map[string]any
	if e := json.Unmarshal([]byte(err.FormatJSON()), &decoded); e != nil {
		t.Fatalf("FormatJSON produced invalid JSON: %v", e)
	}
	if decoded["code"] != "F023" || decoded["field"] != "zip" || decoded["category"] != "schema" {
		t.Errorf("decoded = %v", decoded)
	}
	loc, ok := decoded["location"].(map[string]any)
	if !ok || loc["line"] != float64(7) {
		t.Errorf("location = %v", decoded["location"])
	}
}

func TestWrapText(t *testing.T) {
	if wrapText("", 10) != nil {
		t.Error("empty text should wrap to nil")
	}
	lines := wrapText("one two three four five six", 10)
	for _, l := range lines {
		if len(l) > 10 {
			t.Errorf("line %q exceeds width", l)
		}
	}
	if strings.Join(lines, " ") != "one two three four five six" {
		t.Errorf("wrapText lost words: %v", lines)
	}
}

func TestFprint(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var b strings.Builder
	Fprint(&b, stderrors.Join(New("F001"), New("F005").WithField("name")))
	out := b.String()
	if !strings.Contains(out, "F001") || !strings.Contains(out, "F005") {
		t.Errorf("Fprint output missing codes:\n%s", out)
	}

	b.Reset()
	Fprint(&b, fmt.Errorf("plain failure"))
	if !strings.Contains(out, "ERROR") || !strings.Contains(b.String(), "plain failure") {
		t.Errorf("Fprint plain = %q", b.String())
	}
}
