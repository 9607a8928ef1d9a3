package resume

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"resume-builder/internal/generations"
	"resume-builder/internal/shared/telemetry"
)

type stubLLM struct {
	prompts []string
	out     string
	err     error
}

func (s *stubLLM) Complete(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.out, s.err
}

func (s *stubLLM) Provider() string { return "stub" }

func quietLogs(t *testing.T) {
	t.Helper()
	t.Cleanup(telemetry.SetOutput(io.Discard))
}

func TestGenerateFromSummaryUsesMock(t *testing.T) {
	quietLogs(t)
	history := generations.NewMemoryRepo()
	fixed := time.Date(2026, time.May, 1, 9, 0, 0, 0, time.UTC)
	svc := &Service{UseMock: true, History: history, Now: func() time.Time { return fixed }}

	res, err := svc.Generate(context.Background(), Resume{Summary: "I'm Jane Doe, reach me at jane@example.org"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Generator != GeneratorMock {
		t.Fatalf("expected mock generator, got %q", res.Generator)
	}
	if !strings.Contains(res.Content, "Name: Jane Doe\n") || !strings.Contains(res.Content, "Email: jane@example.org\n") {
		t.Fatalf("expected extracted contact info in mock resume:\n%s", res.Content)
	}

	stored, err := history.GetByID(context.Background(), res.ID)
	if err != nil {
		t.Fatalf("expected generation recorded: %v", err)
	}
	if stored.FullName != "Jane Doe" || !stored.CreatedAt.Equal(fixed) {
		t.Fatalf("unexpected stored generation: %+v", stored)
	}
}

func TestGenerateFromSummaryKeepsGivenPersonalInfo(t *testing.T) {
	quietLogs(t)
	svc := &Service{UseMock: true}

	res, err := svc.Generate(context.Background(), Resume{
		Summary:             "I am Someone Else",
		PersonalInformation: &PersonalInformation{Name: "Jane Doe"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.FullName != "Jane Doe" {
		t.Fatalf("expected provided name to win, got %q", res.FullName)
	}
}

func TestGenerateCallsLLMWithSummaryPrompt(t *testing.T) {
	quietLogs(t)
	stub := &stubLLM{out: "Name: Jane Doe\nSenior Engineer"}
	svc := &Service{LLM: stub}

	res, err := svc.Generate(context.Background(), Resume{Summary: "I am Jane Doe"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Content != stub.out || res.Generator != "stub" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(stub.prompts) != 1 || !strings.Contains(stub.prompts[0], "SUMMARY:\nI am Jane Doe") {
		t.Fatalf("expected summary prompt, got %v", stub.prompts)
	}
}

func TestGenerateCallsLLMWithDetailedPrompt(t *testing.T) {
	quietLogs(t)
	stub := &stubLLM{out: "resume"}
	svc := &Service{LLM: stub}

	_, err := svc.Generate(context.Background(), Resume{Name: "John", Email: "john@example.org"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(stub.prompts) != 1 || !strings.Contains(stub.prompts[0], "PERSONAL INFORMATION\nName: John\n") {
		t.Fatalf("expected detailed prompt, got %v", stub.prompts)
	}
}

func TestGenerateValidation(t *testing.T) {
	quietLogs(t)
	svc := &Service{UseMock: true}

	tests := []struct {
		name string
		req  Resume
		want error
	}{
		{name: "empty request", req: Resume{}, want: ErrNameRequired},
		{name: "blank name", req: Resume{Name: "  ", Email: "a@b.co"}, want: ErrNameRequired},
		{name: "missing email", req: Resume{Name: "John"}, want: ErrEmailRequired},
		{name: "nested email", req: Resume{PersonalInformation: &PersonalInformation{Name: "John", Email: "j@x.io"}}, want: nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), tt.req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestGenerateWrapsLLMError(t *testing.T) {
	quietLogs(t)
	boom := errors.New("upstream down")
	history := generations.NewMemoryRepo()
	svc := &Service{LLM: &stubLLM{err: boom}, History: history}

	_, err := svc.Generate(context.Background(), Resume{Summary: "anything"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped upstream error, got %v", err)
	}
	items, _ := history.List(context.Background(), 10, 0)
	if len(items) != 0 {
		t.Fatalf("failed generations must not be recorded")
	}
}
