package server

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/csrf"
	"github.com/gofiber/fiber/v3/middleware/encryptcookie"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/gofiber/fiber/v3/middleware/static"
	redisstore "github.com/gofiber/storage/redis/v3"
	"github.com/gofiber/template/html/v3"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"smartgreeting/internal/config"
	"smartgreeting/internal/handlers"
	"smartgreeting/internal/responder"
	"smartgreeting/web"
)

// Server wraps the Fiber app and configuration.
type Server struct {
	App       *fiber.App
	Cfg       *config.Config
	Responder *responder.Responder
	Registry  *prometheus.Registry

	redis *redisstore.Storage
}

// New creates a new server with middleware configured. It fails when
// REDIS_URL is set but the server cannot be reached.
func New(cfg *config.Config, r *responder.Responder) (*Server, error) {
	// Setup template engine
	engine := html.NewFileSystem(http.FS(web.Views()), ".html")
	engine.Reload(cfg.IsDev())

	// Initialize Fiber
	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: errorHandler(cfg),
	})

	s := &Server{
		App:       app,
		Cfg:       cfg,
		Responder: r,
		Registry:  prometheus.NewRegistry(),
	}

	// Global middleware
	app.Use(recoverer.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins(),
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Requested-With", "X-Csrf-Token"},
		MaxAge:       86400,
	}))

	// Cookie encryption middleware
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: deriveEncryptionKey(cfg.SecretKey),
	}))

	// CSRF protection for the page; the JSON API is exempt
	app.Use(csrf.New(csrf.Config{
		Next: func(c fiber.Ctx) bool {
			return isAPIPath(c.Path())
		},
		CookieSecure:   !cfg.IsDev(),
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	}))

	// Rate limiting middleware - per IP, shared through redis when configured
	limiterCfg := limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(responder.ChatResponse{
				Response: "Rate limit exceeded. Please try again later.",
			})
		},
	}
	if cfg.RedisURL != "" {
		store, err := newRedisStorage(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		s.redis = store
		limiterCfg.Storage = s.redis
		slog.Info("rate limiter using redis storage")
	}
	app.Use(limiter.New(limiterCfg))

	// Static files
	app.Get("/static*", static.New("", static.Config{
		FS: web.Static(),
	}))

	return s, nil
}

// newRedisStorage connects the limiter storage. The storage pings on
// construction and panics when redis is unreachable.
func newRedisStorage(url string) (store *redisstore.Storage, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("connect to redis: %v", r)
		}
	}()

	return redisstore.New(redisstore.Config{
		URL: url,
	}), nil
}

// Start starts the server on the configured address.
func (s *Server) Start() error {
	return s.App.Listen(s.Cfg.ServerAddr)
}

// Shutdown gracefully shuts down the server and releases limiter storage.
func (s *Server) Shutdown() error {
	err := s.App.Shutdown()
	if s.redis != nil {
		if cerr := s.redis.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// readinessChecks returns the dependency checks run by /readyz.
func (s *Server) readinessChecks() map[string]handlers.Check {
	checks := map[string]handlers.Check{
		"greeting table": func(context.Context) error {
			if len(s.Responder.Table().Rules()) == 0 {
				return errors.New("no greeting rules loaded")
			}
			return nil
		},
	}
	if s.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return s.redis.Conn().Ping(ctx).Err()
		}
	}
	return checks
}

// errorHandler renders JSON for API routes and the error page otherwise.
func errorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		} else {
			slog.Error("request failed", "path", c.Path(), "request_id", requestid.FromContext(c), "error", err)
		}

		if isAPIPath(c.Path()) {
			return c.Status(code).JSON(responder.ChatResponse{Response: message})
		}

		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error",
			"Message":      message,
			"InitialClass": "",
			"SiteTitle":    cfg.SiteTitle,
			"SiteTagline":  cfg.SiteTagline,
		})
	}
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

// deriveEncryptionKey derives a 32-byte encryption key from the secret key.
func deriveEncryptionKey(secret string) string {
	hash := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(hash[:])
}
