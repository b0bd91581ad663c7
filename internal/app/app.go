package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"AstroVision/internal/api"
	"AstroVision/internal/config"
	"AstroVision/internal/content"
	"AstroVision/internal/domain"
	"AstroVision/internal/infrastructure/formrelay"
	"AstroVision/internal/infrastructure/htmltext"
	"AstroVision/internal/infrastructure/llm"
	"AstroVision/internal/infrastructure/memory"
	"AstroVision/internal/infrastructure/scheduler"
	"AstroVision/internal/infrastructure/storage"
	"AstroVision/internal/logging"
	"AstroVision/internal/ports"
	"AstroVision/internal/tools"
	"AstroVision/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg       config.Config
	logger    *slog.Logger
	server    *api.Server
	scheduler *usecase.Scheduler
	autosave  *usecase.Autosaver
	db        *storage.DB
}

// New builds a runnable application instance.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging)
	}

	lib, err := content.Load()
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	posts, documents, db, err := openStores(ctx, cfg.Storage, lib.SeedPosts(), baseLogger.With("component", "storage"))
	if err != nil {
		return nil, err
	}

	generator, chatModel := newModels(ctx, cfg.Gemini, baseLogger.With("component", "llm"))

	reports := usecase.NewReportService(usecase.ReportDeps{
		Registry:  tools.Default(),
		Generator: generator,
		Logger:    baseLogger.With("component", "reports"),
	})
	weather := usecase.NewWeatherService(reports, weatherLanguages(cfg.Weather.Languages), baseLogger.With("component", "weather"))

	drafts := usecase.NewDraftService(documents, func(ctx context.Context, id string) (bool, error) {
		_, ok, err := posts.Get(ctx, id)
		return ok, err
	}, baseLogger.With("component", "drafts"))
	autosave := usecase.NewAutosaver(drafts, cfg.Drafts.AutosaveDelay, baseLogger.With("component", "autosave"))

	blog := usecase.NewBlogService(usecase.BlogDeps{
		Repository: posts,
		Extractor:  htmltext.NewExtractor(),
		Drafts:     drafts,
		Logger:     baseLogger.With("component", "blog"),
	})

	settings := usecase.NewSettingsService(documents, usecase.DefaultSettings(cfg.Contact.FormID))
	relay := formrelay.NewRelay(cfg.Contact, func(ctx context.Context) (string, error) {
		current, err := settings.Get(ctx)
		if err != nil {
			return "", err
		}
		return current.Contact.FormID, nil
	})

	chat := usecase.NewChatService(chatModel, baseLogger.With("component", "chat"))
	chat.SetLimits(cfg.Chat.MaxSessions, cfg.Chat.IdleTimeout)

	if cfg.Admin.Passcode == "" {
		baseLogger.Warn("admin passcode is empty; the admin panel is locked")
	}

	server := api.NewServer(api.Config{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		AllowOrigins: cfg.Server.AllowOrigins,
		AccessLog:    true,
	}, api.Deps{
		Reports:  reports,
		Weather:  weather,
		Chat:     chat,
		Blog:     blog,
		Drafts:   drafts,
		Autosave: autosave,
		Contact:  usecase.NewContactService(relay, baseLogger.With("component", "contact")),
		Settings: settings,
		Admin:    usecase.NewAdminGate(cfg.Admin.Passcode),
		Content:  lib,
		Logger:   baseLogger,
	})

	return &Application{
		cfg:       cfg,
		logger:    baseLogger,
		server:    server,
		scheduler: usecase.NewScheduler(scheduler.NewTickerScheduler(cfg.Weather.Interval), weather),
		autosave:  autosave,
		db:        db,
	}, nil
}

// Run serves HTTP and refreshes the cosmic weather until ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.server.Run(gctx)
	})

	g.Go(func() error {
		if err := a.scheduler.Start(gctx); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
		<-gctx.Done()

		stopCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout())
		defer cancel()
		return a.scheduler.Stop(stopCtx)
	})

	err := g.Wait()
	return errors.Join(err, a.close())
}

func (a *Application) close() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout())
	defer cancel()

	var errs []error
	if err := a.autosave.Close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("flush draft: %w", err))
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	a.logger.Info("application stopped")
	return errors.Join(errs...)
}

func (a *Application) shutdownTimeout() time.Duration {
	if a.cfg.Server.ShutdownTimeout > 0 {
		return a.cfg.Server.ShutdownTimeout
	}
	return 10 * time.Second
}

func openStores(ctx context.Context, cfg config.StorageConfig, seed []domain.BlogPost, log *slog.Logger) (ports.BlogRepository, ports.KeyValueStore, *storage.DB, error) {
	switch cfg.Driver {
	case "", "memory":
		log.Info("using in-memory storage")
		return memory.NewBlogStore(seed), memory.NewKVStore(), nil, nil
	case storage.DriverSQLite, storage.DriverPostgres:
		db, err := storage.Open(ctx, cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open storage: %w", err)
		}
		posts := storage.NewPostRepository(db)
		if err := posts.Seed(ctx, seed); err != nil {
			_ = db.Close()
			return nil, nil, nil, fmt.Errorf("seed posts: %w", err)
		}
		log.Info("using sql storage", "driver", cfg.Driver)
		return posts, storage.NewDocumentStore(db), db, nil
	default:
		return nil, nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

// newModels returns nil ports when no credential is configured; the use
// cases then answer with their fallback texts.
func newModels(ctx context.Context, cfg config.GeminiConfig, log *slog.Logger) (ports.TextGenerator, ports.ChatModel) {
	if cfg.APIKey == "" {
		log.Warn("gemini api key is not configured; reports will use fallback text")
		return nil, nil
	}
	client, err := llm.NewGeminiClient(ctx, cfg)
	if err != nil {
		log.Error("gemini client unavailable", "error", err)
		return nil, nil
	}
	return client, client
}

func weatherLanguages(codes []string) []domain.Language {
	out := make([]domain.Language, 0, len(codes))
	for _, code := range codes {
		lang := domain.ParseLanguage(code)
		if !slices.Contains(out, lang) {
			out = append(out, lang)
		}
	}
	return out
}
