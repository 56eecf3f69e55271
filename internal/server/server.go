// Package server wires the HTTP router, middleware, and all route
// definitions. It is the composition root: main hands it a config and a
// logger, and everything else — store, repositories, services, handlers,
// auth gate — is assembled in New.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/portfolio-api/internal/auth"
	"github.com/sakif/portfolio-api/internal/config"
	"github.com/sakif/portfolio-api/internal/handler"
	"github.com/sakif/portfolio-api/internal/middleware"
	sqliteRepo "github.com/sakif/portfolio-api/internal/repository/sqlite"
	"github.com/sakif/portfolio-api/internal/service"
)

// Server owns the router and the database connection. The connection is
// closed during graceful shutdown, after in-flight requests drain.
type Server struct {
	router *chi.Mux
	cfg    *config.Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New opens the store and assembles the full dependency graph.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	if err := s.setupRoutes(); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	return s, nil
}

func (s *Server) setupRoutes() error {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(middleware.CORS(s.cfg.CORSOrigins))

	// === Repositories ===
	users := sqliteRepo.NewUserRepo(s.db)
	skills := sqliteRepo.NewSkillRepo(s.db)
	projects := sqliteRepo.NewProjectRepo(s.db)
	experience := sqliteRepo.NewExperienceRepo(s.db)
	articles := sqliteRepo.NewArticleRepo(s.db)
	socialLinks := sqliteRepo.NewSocialLinkRepo(s.db)
	contact := sqliteRepo.NewContactRepo(s.db)
	homepage := sqliteRepo.NewHomepageRepo(s.db)

	// === Auth ===
	tokens, err := auth.NewTokenService(s.cfg.JWTSecret)
	if err != nil {
		return fmt.Errorf("creating token service: %w", err)
	}
	passwords := auth.NewPasswordService()

	gate := auth.NewGate(tokens, users)
	gate.Strict = s.cfg.StrictAuth

	// === Services and handlers ===
	authHandler := handler.NewAuthHandler(
		service.NewAuthService(users, tokens, passwords, s.cfg.OpenRegistration, s.logger),
		s.logger,
	)
	skillHandler := handler.NewSkillHandler(service.NewSkillService(skills, s.logger), s.logger)
	projectHandler := handler.NewProjectHandler(service.NewProjectService(projects, s.logger), s.logger)
	experienceHandler := handler.NewExperienceHandler(service.NewExperienceService(experience, s.logger), s.logger)
	articleHandler := handler.NewArticleHandler(service.NewArticleService(articles, s.logger), s.logger)
	socialLinkHandler := handler.NewSocialLinkHandler(service.NewSocialLinkService(socialLinks, s.logger), s.logger)
	contactHandler := handler.NewContactHandler(service.NewContactService(contact, s.logger), s.logger)
	homepageHandler := handler.NewHomepageHandler(
		service.NewHomepageService(homepage, skills, projects, s.logger),
		s.logger,
	)

	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("API is running..."))
	})

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.HandleRegister)
			r.Post("/login", authHandler.HandleLogin)
			r.With(gate.Require).Get("/profile", authHandler.HandleProfile)
		})

		// Each resource mounts twice: once under /api/{resource} and
		// once under /api/admin/{resource}. Both carry the same gating —
		// public list, protected mutations — so neither mount leaks
		// admin operations.
		crud := func(h crudHandler) func(chi.Router) {
			return func(r chi.Router) {
				r.Get("/", h.HandleList)
				r.Group(func(r chi.Router) {
					r.Use(gate.Require)
					r.Post("/", h.HandleCreate)
					r.Put("/{id}", h.HandleUpdate)
					r.Delete("/{id}", h.HandleDelete)
				})
			}
		}

		for _, mount := range []string{"", "/admin"} {
			r.Route(mount+"/skills", crud(skillHandler))
			r.Route(mount+"/projects", crud(projectHandler))
			r.Route(mount+"/experience", crud(experienceHandler))
			r.Route(mount+"/articles", crud(articleHandler))
			r.Route(mount+"/social-links", crud(socialLinkHandler))
		}

		homepageRoutes := func(r chi.Router) {
			r.Get("/", homepageHandler.HandleGet)
			r.With(gate.Require).Put("/", homepageHandler.HandleUpdate)
		}
		r.Route("/homepage-content", homepageRoutes)
		r.Route("/admin/homepage-content", homepageRoutes)

		// The contact form itself is public; reading and deleting the
		// inbox requires auth on both mounts.
		contactRoutes := func(r chi.Router) {
			r.Post("/", contactHandler.HandleSubmit)
			r.Group(func(r chi.Router) {
				r.Use(gate.Require)
				r.Get("/", contactHandler.HandleList)
				r.Delete("/{id}", contactHandler.HandleDelete)
			})
		}
		r.Route("/contact", contactRoutes)
		r.Route("/admin/contact-messages", contactRoutes)
	})

	return nil
}

// crudHandler is the shape every resource handler shares; it lets the
// route table treat them uniformly.
type crudHandler interface {
	HandleList(http.ResponseWriter, *http.Request)
	HandleCreate(http.ResponseWriter, *http.Request)
	HandleUpdate(http.ResponseWriter, *http.Request)
	HandleDelete(http.ResponseWriter, *http.Request)
}

// Handler exposes the assembled router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close releases the database. Only needed when Start is never called
// (tests); Start closes it itself.
func (s *Server) Close() error {
	return s.db.Close()
}

// Start runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests for up to 30 seconds before closing the database.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         s.cfg.ListenAddr(),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.cfg.Port),
			slog.String("database", s.cfg.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
