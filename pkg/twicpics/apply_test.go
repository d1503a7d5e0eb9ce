package twicpics

import (
	"testing"

	"github.com/matzehuels/twicurl/pkg/errors"
)

func TestLookupOperation(t *testing.T) {
	for _, name := range Operations() {
		if _, ok := LookupOperation(name); !ok {
			t.Errorf("LookupOperation(%q) not found", name)
		}
	}

	aliases := map[string]string{
		"contain-max": "contain-max=1",
		"contain-min": "contain-min=1",
		"cover-max":   "cover-max=1",
		"cover-min":   "cover-min=1",
		"resize-max":  "resize-max=1",
		"resize-min":  "resize-min=1",
	}
	for alias, want := range aliases {
		u, err := New().Apply(alias, 1)
		if err != nil {
			t.Errorf("Apply(%q) error = %v", alias, err)
			continue
		}
		if got := u.Transformations(); len(got) != 1 || got[0] != want {
			t.Errorf("Apply(%q) = %v, want [%s]", alias, got, want)
		}
	}

	for _, name := range []string{"", "Resize", "rotate", "src", "url"} {
		if _, ok := LookupOperation(name); ok {
			t.Errorf("LookupOperation(%q) found an operation", name)
		}
	}
}

func TestApplyUnknown(t *testing.T) {
	_, err := New().Apply("rotate", 90)
	if !errors.Is(err, errors.ErrCodeInvalidUsage) {
		t.Fatalf("error = %v, want invalid usage", err)
	}
	if msg := errors.UserMessage(err); msg != `apply: unknown operation "rotate"` {
		t.Errorf("message = %q", msg)
	}
}

func TestApplyAuth(t *testing.T) {
	if _, err := New().Apply("auth", tokenA); err != nil {
		t.Errorf("Apply(auth) error = %v", err)
	}
	if _, err := New().Apply("auth"); err == nil {
		t.Error("Apply(auth) without token succeeded")
	}
	if _, err := New().Apply("auth", 42); err == nil {
		t.Error("Apply(auth, 42) succeeded")
	}
}

func TestOperationsIsACopy(t *testing.T) {
	ops := Operations()
	ops[0] = "mutated"
	if Operations()[0] == "mutated" {
		t.Error("Operations() must return a fresh slice")
	}
}
