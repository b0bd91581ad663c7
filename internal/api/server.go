// Package api exposes the use cases over HTTP with Fiber.
package api

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"AstroVision/internal/content"
	"AstroVision/internal/usecase"
)

// AdminHeader carries the admin passcode on protected routes.
const AdminHeader = "X-Admin-Passcode"

// Config wraps the knobs that impact runtime behavior.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AllowOrigins string
	AccessLog    bool
}

// Deps lists the use cases served by the API.
type Deps struct {
	Reports  *usecase.ReportService
	Weather  *usecase.WeatherService
	Chat     *usecase.ChatService
	Blog     *usecase.BlogService
	Drafts   *usecase.DraftService
	Autosave *usecase.Autosaver
	Contact  *usecase.ContactService
	Settings *usecase.SettingsService
	Admin    *usecase.AdminGate
	Content  *content.Library
	Logger   *slog.Logger
}

// Server exposes the Fiber application.
type Server struct {
	app    *fiber.App
	cfg    Config
	deps   Deps
	logger *slog.Logger
}

// NewServer wires handlers and middleware.
func NewServer(cfg Config, deps Deps) *Server {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	srv := &Server{cfg: cfg, deps: deps, logger: log.With("component", "api")}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		ErrorHandler:          srv.handleError,
	})
	app.Use(recover.New())
	if cfg.AccessLog {
		app.Use(logger.New(logger.Config{Format: "${time} | ${status} | ${latency} | ${method} ${path}\n"}))
	}
	origins := cfg.AllowOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, " + AdminHeader,
	}))

	srv.app = app
	srv.registerRoutes()
	return srv
}

// App returns the underlying Fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run starts listening for HTTP traffic until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	if ctx.Err() != nil {
		return nil
	}

	go func() {
		<-ctx.Done()
		_ = s.Shutdown(context.Background())
	}()

	s.logger.Info("http server listening", "addr", s.cfg.Addr)
	return s.app.Listen(s.cfg.Addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.app.Group("/api/v1")
	api.Get("/tools", s.handleListTools)
	api.Post("/chart", s.handleChart)
	api.Post("/tools/:id/report", s.handleReport)
	api.Get("/weather", s.handleWeather)

	api.Post("/chat/sessions", s.handleStartChat)
	api.Get("/chat/sessions/:id", s.handleTranscript)
	api.Post("/chat/sessions/:id/messages", s.handleSendChat)
	api.Delete("/chat/sessions/:id", s.handleCloseChat)

	api.Get("/blog", s.handleListBlog)
	api.Get("/blog/categories", s.handleBlogCategories)
	api.Get("/blog/:slug", s.handleBlogPost)

	api.Get("/pages", s.handleListPages)
	api.Get("/pages/:name", s.handlePage)
	api.Get("/settings", s.handleSettings)
	api.Post("/contact", s.handleContact)

	// Login is registered ahead of the guarded group so it stays public.
	api.Post("/admin/login", s.handleAdminLogin)
	admin := api.Group("/admin", s.requireAdmin)
	admin.Get("/posts", s.handleAdminPosts)
	admin.Get("/posts/new", s.handleNewPost)
	admin.Put("/posts", s.handleSavePost)
	admin.Delete("/posts/:id", s.handleDeletePost)
	admin.Post("/posts/:id/tags", s.handleAddTag)
	admin.Delete("/posts/:id/tags/:tag", s.handleRemoveTag)
	admin.Get("/draft", s.handleCheckDraft)
	admin.Put("/draft", s.handleSaveDraft)
	admin.Post("/draft/touch", s.handleTouchDraft)
	admin.Post("/draft/decline", s.handleDeclineDraft)
	admin.Delete("/draft", s.handleDiscardDraft)
	admin.Put("/settings/contact", s.handleUpdateContact)
	admin.Put("/settings/social", s.handleUpdateSocial)
}

func (s *Server) requireAdmin(c *fiber.Ctx) error {
	if s.deps.Admin == nil || !s.deps.Admin.Authorize(c.Get(AdminHeader)) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid admin passcode")
	}
	return c.Next()
}

// handleError maps use-case errors onto status codes and a JSON body.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	status, message := fiber.StatusInternalServerError, "internal error"

	var (
		fe   *fiber.Error
		verr *usecase.ValidationError
	)
	switch {
	case errors.As(err, &fe):
		status, message = fe.Code, fe.Message
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "problems": verr.Problems})
	case errors.Is(err, usecase.ErrIncompleteBirthData):
		status, message = fiber.StatusBadRequest, usecase.MsgIncompleteBirthData
	case errors.Is(err, usecase.ErrEmptyMessage), errors.Is(err, usecase.ErrTitleRequired):
		status, message = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, usecase.ErrUnknownTool),
		errors.Is(err, usecase.ErrSessionNotFound),
		errors.Is(err, usecase.ErrPostNotFound):
		status, message = fiber.StatusNotFound, err.Error()
	case errors.Is(err, usecase.ErrSessionBusy):
		status, message = fiber.StatusConflict, err.Error()
	case errors.Is(err, usecase.ErrRelayFailed):
		status, message = fiber.StatusBadGateway, usecase.ErrRelayFailed.Error()
	}

	if status >= fiber.StatusInternalServerError {
		s.logger.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func envelope(data any, meta fiber.Map) fiber.Map {
	if meta == nil {
		return fiber.Map{"data": data}
	}
	return fiber.Map{"data": data, "meta": meta}
}
