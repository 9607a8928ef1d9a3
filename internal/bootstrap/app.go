package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/generations"
	"resume-builder/internal/llm"
	"resume-builder/internal/llm/anthropic"
	"resume-builder/internal/llm/gemini"
	"resume-builder/internal/llm/openai"
	"resume-builder/internal/resume"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/shared/telemetry"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	DB            *sql.DB
	LLM           llm.Client
	History       generations.Repo
	ResumeService *resume.Service
	ResumeHandler *resume.Handler

	closers []func() error
}

// Close releases the database pool and provider clients.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Build prepares dependencies and wires routes.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	app := &App{Config: cfg}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if sqlDB != nil {
		app.DB = sqlDB
		app.closers = append(app.closers, sqlDB.Close)
		app.History = &generations.PGRepo{DB: sqlDB}
	} else {
		app.History = generations.NewMemoryRepo()
	}

	if !cfg.UseMock() {
		client, closer, err := buildLLM(ctx, cfg)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.LLM = client
		if closer != nil {
			app.closers = append(app.closers, closer)
		}
	}

	app.ResumeService = &resume.Service{
		LLM:     app.LLM,
		UseMock: cfg.UseMock(),
		History: app.History,
	}
	app.ResumeHandler = resume.NewHandler(app.ResumeService)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:     cfg,
		Registrars: []server.RouteRegistrar{app.ResumeHandler},
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":       cfg.Env,
		"generator": generatorName(app),
		"history":   historyBackend(app),
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.db.memory", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
		if err != nil {
			sqlDB.Close()
			err = fmt.Errorf("run migrations: %w", err)
		}
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db.memory", map[string]any{"reason": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, func() error, error) {
	switch cfg.LLMProvider {
	case "anthropic":
		c, err := anthropic.NewClient(cfg.AnthropicAPIKey, cfg.LLMModel, "", cfg.LLMTimeout)
		return c, nil, err
	case "gemini":
		c, err := gemini.NewClient(ctx, cfg.GoogleAPIKey, cfg.LLMModel)
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil
	case "openai":
		c, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.OpenAIAPIURL, cfg.LLMTimeout)
		return c, nil, err
	default:
		return nil, nil, fmt.Errorf("%w: unknown LLM_PROVIDER %q", llm.ErrNotConfigured, cfg.LLMProvider)
	}
}

func generatorName(app *App) string {
	if app.ResumeService.UseMock || app.LLM == nil {
		return resume.GeneratorMock
	}
	return llm.ProviderName(app.LLM)
}

func historyBackend(app *App) string {
	if app.DB != nil {
		return "postgres"
	}
	return "memory"
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local", "test":
		return true
	default:
		return false
	}
}
