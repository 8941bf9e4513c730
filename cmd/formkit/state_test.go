package main

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/forms/pkg/form"
	"github.com/vango-dev/forms/pkg/schema"
)

const definition = `fields:
  - kind: text
    slug: email
    label: Email
  - kind: checkbox
    slug: terms
    label: Terms
  - kind: checkboxes
    slug: topics
    label: Topics
    options:
      - {label: News, slug: news}
      - {label: Offers, slug: offers}
  - kind: static
    html: <p>hi</p>
`

func TestBuildState(t *testing.T) {
	def, err := schema.Parse([]byte(definition), "test.yaml")
	if err != nil {
		t.Fatal(err)
	}
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	s, err := buildState(def, []string{"email=ada@example.com", "terms=true", "topics=offers"}, today)
	if err != nil {
		t.Fatalf("buildState() error = %v", err)
	}
	if s.Values["email"] != "ada@example.com" {
		t.Errorf("email = %q", s.Values["email"])
	}
	if !s.Flags["terms"] {
		t.Error("terms should be set")
	}
	want := []form.Check{{Slug: "news"}, {Slug: "offers", Checked: true}}
	if diff := cmp.Diff(want, s.Checks["topics"]); diff != "" {
		t.Errorf("topics mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []string{"noequals", "missing=x", "terms=maybe"} {
		if _, err := buildState(def, []string{bad}, today); err == nil {
			t.Errorf("buildState(%q) should fail", bad)
		}
	}
}
