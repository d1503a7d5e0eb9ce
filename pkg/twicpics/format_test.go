package twicpics

import (
	"testing"

	"github.com/matzehuels/twicurl/pkg/errors"
)

func TestFormat(t *testing.T) {
	runMethodCases(t, []methodCase{
		{"jpeg", "format", []any{"jpeg"}, "format=jpeg"},
		{"jpeg params", "format", []any{Params{"type": "jpeg"}}, "format=jpeg"},
		{"jpeg record", "format", []any{FormatSpec{Type: "jpeg"}}, "format=jpeg"},
		{"jpeg quality", "format", []any{"jpeg", 80}, "format=jpeg-80"},
		{"jpeg quality params", "format", []any{Params{"quality": 80, "type": "jpeg"}}, "format=jpeg-80"},
		{"jpeg quality record", "format", []any{FormatSpec{Type: "jpeg", Quality: 80}}, "format=jpeg-80"},
		{"png", "format", []any{"png"}, "format=png"},
		{"png params", "format", []any{Params{"type": "png"}}, "format=png"},
		{"png record", "format", []any{FormatSpec{Type: "png"}}, "format=png"},
		{"png quality", "format", []any{"png", 80}, ""},
		{"png quality params", "format", []any{Params{"quality": 80, "type": "png"}}, ""},
		{"png quality record", "format", []any{FormatSpec{Type: "png", Quality: 80}}, ""},
		{"webp", "format", []any{"webp"}, "format=webp"},
		{"webp params", "format", []any{Params{"type": "webp"}}, "format=webp"},
		{"webp record", "format", []any{FormatSpec{Type: "webp"}}, "format=webp"},
		{"webp quality", "format", []any{"webp", 80}, "format=webp-80"},
		{"webp quality params", "format", []any{Params{"quality": 80, "type": "webp"}}, "format=webp-80"},
		{"webp quality record", "format", []any{FormatSpec{Type: "webp", Quality: 80}}, "format=webp-80"},
		{"unknown", "format", []any{"unknown"}, ""},
		{"unknown params", "format", []any{Params{"type": "unknown"}}, ""},
		{"unknown record", "format", []any{FormatSpec{Type: "unknown"}}, ""},
		{"no args", "format", nil, ""},
		{"empty params", "format", []any{Params{}}, ""},
		{"empty record", "format", []any{FormatSpec{}}, ""},
		{"quality only", "format", []any{nil, 80}, ""},
		{"quality only params", "format", []any{Params{"quality": 80}}, ""},
		{"quality only record", "format", []any{FormatSpec{Quality: 80}}, ""},
		{"too many", "format", []any{"jpeg", 80, 1}, ""},
		{"case sensitive", "format", []any{"JPEG"}, ""},
	})
}

func TestFormatShortcuts(t *testing.T) {
	runMethodCases(t, []methodCase{
		{"jpeg", "jpeg", nil, "format=jpeg"},
		{"jpeg quality", "jpeg", []any{80}, "format=jpeg-80"},
		{"jpeg nil quality", "jpeg", []any{nil}, "format=jpeg"},
		{"jpeg too many", "jpeg", []any{80, 90}, ""},
		{"png", "png", nil, "format=png"},
		{"png with quality", "png", []any{80}, ""},
		{"webp", "webp", nil, "format=webp"},
		{"webp quality", "webp", []any{80}, "format=webp-80"},
	})

	u, err := New().PNG()
	if err != nil {
		t.Fatalf("PNG() error = %v", err)
	}
	if u.format != "png" {
		t.Errorf("format = %q, want png", u.format)
	}
}

func TestFormatMessages(t *testing.T) {
	tests := []struct {
		name string
		call func() error
		want string
	}{
		{"missing", func() error { _, err := New().Format(nil); return err }, "format: format expected"},
		{"unknown", func() error { _, err := New().Format("gif"); return err }, `format: unknown format "gif"`},
		{"quality", func() error { _, err := New().Format("png", 80); return err }, `format: format "png" does not support quality specifier`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.UserMessage(tt.call()); got != tt.want {
				t.Errorf("message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatReplacesPreviousFormat(t *testing.T) {
	s, err := New().Chain().JPEG(60).WebP().Src(end).URL()
	if err != nil {
		t.Fatalf("URL() error = %v", err)
	}
	if want := Origin + "format=webp/" + end; s != want {
		t.Errorf("URL() = %q, want %q", s, want)
	}
}

func TestFormats(t *testing.T) {
	for _, name := range Formats() {
		if _, known := formatCapability(name); !known {
			t.Errorf("Formats() lists unknown format %q", name)
		}
	}
	got := Formats()
	got[0] = "mutated"
	if Formats()[0] != FormatJPEG {
		t.Error("Formats() must return a fresh slice")
	}
}
