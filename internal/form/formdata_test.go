package form

import (
	"errors"
	"testing"

	"github.com/tidwall/gjson"
)

func TestExtractFullName(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{name: "single line", text: "Name: Jane Doe", want: "Jane Doe", wantOK: true},
		{name: "stops at newline", text: "Name: Jane Doe\nEmail: jane@x.com", want: "Jane Doe", wantOK: true},
		{name: "first match wins", text: "Name: Jane\nName: John", want: "Jane", wantOK: true},
		{name: "inside a line", text: "Full Name: Ada Lovelace\n", want: "Ada Lovelace", wantOK: true},
		{name: "no match", text: "Jane Doe\nEngineer", wantOK: false},
		{name: "needs value", text: "Name: \n", wantOK: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractFullName(tt.text)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("ExtractFullName(%q) = %q, %v", tt.text, got, ok)
			}
		})
	}
}

func TestMergeSetsSummaryAndName(t *testing.T) {
	prev, err := NewFormData([]byte(`{"personalInformation":{"fullName":"","email":"a@b.c"},"summary":"old","skills":["go"]}`))
	if err != nil {
		t.Fatalf("NewFormData: %v", err)
	}
	body := "Name: Jane Doe\nEmail: jane@x.com"

	next, err := Merge(prev, body)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if next.Summary() != body {
		t.Fatalf("summary = %q", next.Summary())
	}
	if next.FullName() != "Jane Doe" {
		t.Fatalf("fullName = %q", next.FullName())
	}
	if next.Get("personalInformation.email").String() != "a@b.c" {
		t.Fatalf("opaque personal field lost: %s", next)
	}
	if next.Get("skills.0").String() != "go" {
		t.Fatalf("opaque field lost: %s", next)
	}
	if prev.Summary() != "old" || prev.FullName() != "" {
		t.Fatalf("previous value mutated: %s", prev)
	}
}

func TestMergeKeepsNameWithoutMatch(t *testing.T) {
	prev, _ := NewFormData([]byte(`{"personalInformation":{"fullName":"Existing"},"summary":""}`))

	next, err := Merge(prev, "Experienced engineer")
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if next.FullName() != "Existing" {
		t.Fatalf("fullName changed to %q", next.FullName())
	}
	if next.Summary() != "Experienced engineer" {
		t.Fatalf("summary = %q", next.Summary())
	}
}

func TestMergeCreatesPersonalInformation(t *testing.T) {
	next, err := Merge(FormData{}, "Name: Solo")
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if next.FullName() != "Solo" {
		t.Fatalf("fullName = %q", next.FullName())
	}
}

func TestMergeOnDefaultForm(t *testing.T) {
	next, err := Merge(DefaultFormData(), "Name: Jane\nSummary text")
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	for _, path := range []string{"experience", "education", "certifications", "projects", "languages", "interests"} {
		if !next.Get(path).IsArray() {
			t.Fatalf("%s should remain an array: %s", path, next)
		}
	}
	if !gjson.ValidBytes(next.Pretty()) {
		t.Fatalf("pretty output is not valid JSON")
	}
}

func TestNewFormDataRejectsNonObject(t *testing.T) {
	for _, raw := range []string{`[]`, `"x"`, `{`, ``} {
		if _, err := NewFormData([]byte(raw)); !errors.Is(err, ErrInvalidFormData) {
			t.Fatalf("NewFormData(%q) err = %v", raw, err)
		}
	}
}
