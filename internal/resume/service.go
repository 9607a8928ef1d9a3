package resume

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/generations"
	"resume-builder/internal/llm"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/shared/util"
)

// GeneratorMock labels resumes produced without a model.
const GeneratorMock = "mock"

// Result is one generated resume.
type Result struct {
	ID        string
	Content   string
	Generator string
	FullName  string
}

// Service generates resume text, either through an LLM or the mock renderer.
type Service struct {
	LLM     llm.Client
	UseMock bool
	History generations.Repo
	Now     func() time.Time
}

// Generate validates the request and produces resume text. Requests with a summary skip the
// name/email checks; personal information is then derived from the summary when absent.
func (s *Service) Generate(ctx context.Context, r Resume) (Result, error) {
	if r.HasSummary() {
		if r.PersonalInformation == nil {
			info := ExtractPersonalInfo(r.Summary)
			r.PersonalInformation = &info
		}
	} else {
		if blank(r.FullName()) {
			return Result{}, ErrNameRequired
		}
		if blank(r.ContactEmail()) {
			return Result{}, ErrEmailRequired
		}
	}

	metrics.IncGenerationStarted()
	start := s.now()

	content, generator, err := s.produce(ctx, r)
	metrics.ObserveGenerationDuration(s.now().Sub(start))
	if err != nil {
		metrics.IncGenerationFailed()
		telemetry.Error("resume.generate.failed", map[string]any{
			"generator": generator,
			"error":     err.Error(),
		})
		return Result{}, fmt.Errorf("generate resume: %w", err)
	}
	metrics.IncGenerationCompleted(generator)

	res := Result{
		ID:        uuid.NewString(),
		Content:   content,
		Generator: generator,
		FullName:  r.FullName(),
	}
	s.record(ctx, r, res)

	telemetry.Info("resume.generate", map[string]any{
		"generation_id": res.ID,
		"generator":     generator,
		"from_summary":  r.HasSummary(),
		"summary_fp":    util.Fingerprint(r.Summary),
		"length":        len(content),
	})
	return res, nil
}

func (s *Service) produce(ctx context.Context, r Resume) (string, string, error) {
	if s.UseMock || s.LLM == nil {
		telemetry.Warn("resume.generate.mock", map[string]any{
			"reason": "invalid or missing LLM API key",
			"name":   r.FullName(),
		})
		return RenderMock(r), GeneratorMock, nil
	}

	prompt := BuildPrompt(r)
	if r.HasSummary() {
		prompt = BuildSummaryPrompt(r)
	}
	provider := llm.ProviderName(s.LLM)
	content, err := s.LLM.Complete(ctx, prompt)
	if err != nil {
		return "", provider, err
	}
	return content, provider, nil
}

// record stores the generation in history. Failures are logged and do not fail the request.
func (s *Service) record(ctx context.Context, r Resume, res Result) {
	if s.History == nil {
		return
	}
	err := s.History.Create(ctx, generations.Generation{
		ID:        res.ID,
		Summary:   r.Summary,
		FullName:  res.FullName,
		Generator: res.Generator,
		Content:   res.Content,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		telemetry.Warn("resume.history.record_failed", map[string]any{
			"generation_id": res.ID,
			"error":         err.Error(),
		})
	}
}

// HistoryPage lists recorded generations newest first.
func (s *Service) HistoryPage(ctx context.Context, limit, offset int) ([]generations.Generation, error) {
	if s.History == nil {
		return []generations.Generation{}, nil
	}
	return s.History.List(ctx, limit, offset)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
