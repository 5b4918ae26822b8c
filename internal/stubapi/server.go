// Package stubapi is a fixture-backed stand-in for the department API and
// the magazine's WordPress API, for local development and tests.
package stubapi

import (
	"context"
	"net"
	"sync"

	"github.com/bilgisen/kientruc/internal/logger"
	"github.com/bilgisen/kientruc/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
)

// WPPostsPath is where the WordPress posts endpoint is mounted.
const WPPostsPath = "/wp-json/wp/v2/posts"

// Request is a request the server has answered.
type Request struct {
	Route string
	Path  string
	Query map[string]string
}

type Server struct {
	app    *fiber.App
	source Source
	log    zerolog.Logger

	mu       sync.Mutex
	requests []Request
}

func New(source Source) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
			// Recorded paths and queries outlive the request.
			Immutable:    true,
			ErrorHandler: middleware.ErrorHandler,
		}),
		source: source,
		log:    logger.With("stubapi"),
	}

	s.app.Use(recover.New())
	s.app.Use(middleware.RequestLogger(&s.log))
	s.routes()

	return s
}

func (s *Server) routes() {
	s.app.Get("/banners/active", s.serve("banners_active"))
	s.app.Get("/banners", s.serve("banners"))

	s.app.Get("/events", s.serve("events"))
	s.app.Get("/events/:id", s.serve("event", "id"))

	s.app.Get("/posts/latest", s.serve("posts_latest"))
	s.app.Get("/posts/category/:slug/latest", s.serve("posts_category", "slug"))
	s.app.Get("/posts/:id", s.serve("post", "id"))
	s.app.Get("/posts", s.serve("posts"))

	s.app.Get("/special-posts/:category/latest", s.serve("special_latest", "category"))
	s.app.Get("/special-posts/:category/random", s.serve("special_random", "category"))
	s.app.Get("/special-posts/:category/all", s.serve("special_all", "category"))

	s.app.Get("/youtube/posts", s.serve("youtube"))

	s.app.Get(WPPostsPath, s.serveSandbox)

	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

// serve answers with fixture "<route>_<param>" when present, else "<route>".
func (s *Server) serve(route string, param ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var names []string
		if len(param) > 0 {
			names = append(names, route+"_"+c.Params(param[0]))
		}
		names = append(names, route)
		return s.respond(c, route, names)
	}
}

func (s *Server) serveSandbox(c *fiber.Ctx) error {
	names := []string{"sandbox"}
	if cat := c.Query("categories"); cat != "" {
		names = append([]string{"sandbox_" + cat}, names...)
	}
	return s.respond(c, "sandbox", names)
}

func (s *Server) respond(c *fiber.Ctx, route string, names []string) error {
	s.record(c, route)

	for _, name := range names {
		f, ok, err := s.source.Fixture(name)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.Status(f.Status).SendString(f.Body)
	}
	return fiber.NewError(fiber.StatusNotFound, "no fixture for "+c.Path())
}

func (s *Server) record(c *fiber.Ctx, route string) {
	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Route: route,
		Path:  c.Path(),
		Query: c.Queries(),
	})
	s.mu.Unlock()
}

// Hits counts answered requests for a route name (e.g. "youtube").
func (s *Server) Hits(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, r := range s.requests {
		if r.Route == route {
			n++
		}
	}
	return n
}

// Requests returns a copy of every request answered so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	s.log.Info().Str("addr", addr).Msg("Stub API listening")
	return s.app.Listen(addr)
}

// Serve serves on an existing listener until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	return s.app.Listener(ln)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
