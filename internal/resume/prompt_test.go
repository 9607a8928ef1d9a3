package resume

import (
	"strings"
	"testing"
)

func TestRenderMockIncludesNameLine(t *testing.T) {
	r := Resume{
		Summary: "Backend engineer with Go experience",
		PersonalInformation: &PersonalInformation{
			Name:   "Jane Doe",
			Email:  "jane@example.org",
			GitHub: "github.com/jane",
		},
		SkillsList: []string{"Go", "Postgres"},
		Experiences: []Experience{{
			Company:          "Acme",
			Position:         "Engineer",
			Duration:         "2020-2024",
			Responsibilities: []string{"Built APIs"},
		}},
	}

	out := RenderMock(r)
	for _, want := range []string{
		"Name: Jane Doe\n",
		"Email: jane@example.org\n",
		"GitHub: github.com/jane\n",
		"SUMMARY\nBackend engineer with Go experience\n",
		"- Go\n- Postgres\n",
		"Acme - Engineer\n2020-2024\n- Built APIs\n",
		"Relevant educational background",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in mock resume:\n%s", want, out)
		}
	}
	if strings.Contains(out, "You are a professional resume writer") {
		t.Fatalf("mock resume should not contain prompt instructions")
	}
}

func TestRenderMockFlatFields(t *testing.T) {
	r := Resume{Name: "John Smith", Email: "john@example.org", Phone: "555", Skills: "Go, SQL"}
	out := RenderMock(r)
	if !strings.HasPrefix(out, "PERSONAL INFORMATION\nName: John Smith\nEmail: john@example.org\nPhone: 555\n") {
		t.Fatalf("unexpected header:\n%s", out)
	}
	if !strings.Contains(out, "SKILLS\nGo, SQL\n") {
		t.Fatalf("expected flat skills:\n%s", out)
	}
}

func TestBuildSummaryPrompt(t *testing.T) {
	r := Resume{Summary: "I am Jane Doe, SRE", PersonalInformation: &PersonalInformation{Name: "Jane Doe"}}
	out := BuildSummaryPrompt(r)
	if !strings.Contains(out, "SUMMARY:\nI am Jane Doe, SRE\n") {
		t.Fatalf("summary missing from prompt:\n%s", out)
	}
	if !strings.Contains(out, "CANDIDATE NAME: Jane Doe") {
		t.Fatalf("candidate name missing from prompt:\n%s", out)
	}
	if !strings.Contains(out, `"Name: <full name>"`) {
		t.Fatalf("expected name line instruction in prompt")
	}
}

func TestBuildPromptWrapsSections(t *testing.T) {
	out := BuildPrompt(Resume{Name: "John"})
	if !strings.HasPrefix(out, "You are a professional resume writer") {
		t.Fatalf("unexpected prompt prefix")
	}
	if !strings.Contains(out, "Name: John\n") || !strings.Contains(out, "ACHIEVEMENTS\n") {
		t.Fatalf("expected sections in prompt:\n%s", out)
	}
}
