package preset

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/twicurl/pkg/errors"
	"github.com/matzehuels/twicurl/pkg/twicpics"
)

const token = "aaaaaaaa-aaaa-4aaa-aaaa-aaaaaaaaaaaa"

const presetsTOML = `
[presets.thumbnail]
format = "webp"
quality = 80
steps = [
  { op = "focus", x = "50p", y = "50p" },
  { op = "cover", args = ["1:1"] },
  { op = "resize", width = 300 },
]

[presets.banner]
format = "jpeg"
steps = [
  { op = "cover-max", width = 1200, height = 400 },
  { op = "crop", args = [1200, 400, 0, 0] },
]

[presets.lossless]
steps = [
  { op = "png" },
]
`

func mustParse(t *testing.T, data string) *Set {
	t.Helper()
	set, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return set
}

func TestParse(t *testing.T) {
	set := mustParse(t, presetsTOML)

	if set.Len() != 3 {
		t.Errorf("Len() = %d, want 3", set.Len())
	}
	if got, want := set.Names(), []string{"banner", "lossless", "thumbnail"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	tests := []struct {
		name string
		want string
	}{
		{"thumbnail", "focus=50px50p/cover=1:1/resize=300/format=webp-80/cat.jpg"},
		{"banner", "cover-max=1200x400/crop=1200x400@0x0/format=jpeg/cat.jpg"},
		{"lossless", "format=png/cat.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := set.Get(tt.name)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if u.HasSource() {
				t.Error("a preset must not carry a source")
			}
			got, err := u.Src("cat.jpg").URL()
			if err != nil {
				t.Fatalf("URL() error = %v", err)
			}
			if want := twicpics.Origin + tt.want; got != want {
				t.Errorf("URL() = %q, want %q", got, want)
			}
		})
	}
}

func TestCompose(t *testing.T) {
	set := mustParse(t, presetsTOML)

	content, err := twicpics.NewChain().Auth(token).JPEG(30).Focus("auto").Src("private/cat.jpg").Result()
	if err != nil {
		t.Fatalf("content error = %v", err)
	}

	u, err := set.Compose("thumbnail", content)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	got, err := u.URL()
	if err != nil {
		t.Fatalf("URL() error = %v", err)
	}

	// Content transformations first, preset format wins, content auth and source kept.
	want := twicpics.Origin +
		"focus=auto/focus=50px50p/cover=1:1/resize=300/format=webp-80/auth:" + token + "/private/cat.jpg"
	if got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}

	// The preset format replaces the content format entirely, quality included.
	u, _ = set.Compose("banner", content)
	if s, _ := u.URL(); s != twicpics.Origin+"focus=auto/cover-max=1200x400/crop=1200x400@0x0/format=jpeg/auth:"+token+"/private/cat.jpg" {
		t.Errorf("banner URL() = %q", s)
	}
}

func TestComposeUnknownPreset(t *testing.T) {
	set := mustParse(t, presetsTOML)
	_, err := set.Compose("missing", twicpics.New().Src("a.jpg"))
	if !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("error = %v, want %v", err, errors.ErrCodePresetNotFound)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{"bad toml", `[presets.x`, errors.ErrCodeInvalidPreset},
		{"unknown key", "[presets.x]\nformt = \"png\"\n", errors.ErrCodeInvalidPreset},
		{"bad name", "[presets.\"Hero Banner\"]\nformat = \"png\"\n", errors.ErrCodeInvalidPreset},
		{"unknown format", "[presets.x]\nformat = \"gif\"\n", errors.ErrCodeInvalidPreset},
		{"quality without format", "[presets.x]\nquality = 80\n", errors.ErrCodeInvalidPreset},
		{"png quality", "[presets.x]\nformat = \"png\"\nquality = 80\n", errors.ErrCodeInvalidPreset},
		{"bad auth", "[presets.x]\nauth = \"nope\"\n", errors.ErrCodeInvalidPreset},
		{"missing op", "[presets.x]\nsteps = [{ width = 10 }]\n", errors.ErrCodeInvalidPreset},
		{"unknown op", "[presets.x]\nsteps = [{ op = \"rotate\", args = [90] }]\n", errors.ErrCodeInvalidPreset},
		{"mixed args", "[presets.x]\nsteps = [{ op = \"resize\", args = [10], height = 5 }]\n", errors.ErrCodeInvalidPreset},
		{"args not array", "[presets.x]\nsteps = [{ op = \"resize\", args = 10 }]\n", errors.ErrCodeInvalidPreset},
		{"missing size", "[presets.x]\nsteps = [{ op = \"resize\" }]\n", errors.ErrCodeInvalidPreset},
		{"empty keyed size", "[presets.x]\nsteps = [{ op = \"cover\", x = 1 }]\n", errors.ErrCodeInvalidPreset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	set := mustParse(t, "")
	if set.Len() != 0 || len(set.Names()) != 0 {
		t.Errorf("empty file produced %d presets", set.Len())
	}
}

func TestNilSet(t *testing.T) {
	var set *Set
	if set.Len() != 0 {
		t.Error("nil set should be empty")
	}
	if set.Names() != nil {
		t.Error("nil set should have no names")
	}
	if _, err := set.Get("x"); !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("Get() error = %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.toml")
	if err := os.WriteFile(path, []byte(presetsTOML), 0644); err != nil {
		t.Fatal(err)
	}

	set, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if set.Len() != 3 {
		t.Errorf("Len() = %d, want 3", set.Len())
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}

const presetsYAML = `
presets:
  thumbnail:
    format: webp
    quality: 80
    steps:
      - {op: focus, x: 50p, y: 50p}
      - {op: cover, args: ["1:1"]}
      - {op: resize, width: 300}
  banner:
    format: jpeg
    steps:
      - {op: cover-max, width: 1200, height: 400}
      - {op: crop, args: [1200, 400, 0, 0]}
  lossless:
    steps:
      - op: png
`

func TestParseYAMLMatchesTOML(t *testing.T) {
	fromTOML := mustParse(t, presetsTOML)
	fromYAML, err := ParseYAML([]byte(presetsYAML))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}

	if got, want := fromYAML.Names(), fromTOML.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for _, name := range fromTOML.Names() {
		a, _ := fromTOML.Get(name)
		b, _ := fromYAML.Get(name)
		want, _ := a.Src("cat.jpg").URL()
		got, _ := b.Src("cat.jpg").URL()
		if got != want {
			t.Errorf("%s: YAML URL() = %q, TOML URL() = %q", name, got, want)
		}
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "presets: [x"},
		{"unknown key", "presets:\n  x:\n    formt: png\n"},
		{"bad name", "presets:\n  Hero:\n    format: png\n"},
		{"bad step", "presets:\n  x:\n    steps:\n      - {op: resize}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidPreset) {
				t.Errorf("error = %v, want code %v", err, errors.ErrCodeInvalidPreset)
			}
		})
	}

	set, err := ParseYAML(nil)
	if err != nil || set.Len() != 0 {
		t.Errorf("ParseYAML(nil) = %d presets, %v", set.Len(), err)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yml")
	if err := os.WriteFile(path, []byte(presetsYAML), 0644); err != nil {
		t.Fatal(err)
	}

	set, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if set.Len() != 3 {
		t.Errorf("Len() = %d, want 3", set.Len())
	}
}
