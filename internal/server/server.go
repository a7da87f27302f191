package server

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/osse101/gachabox/internal/achievement"
	"github.com/osse101/gachabox/internal/gacha"
	"github.com/osse101/gachabox/internal/handler"
	"github.com/osse101/gachabox/internal/logger"
	"github.com/osse101/gachabox/internal/metrics"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	RateLimit      int
	RateWindow     time.Duration
}

// Server wires the engine services to HTTP
type Server struct {
	httpServer *http.Server
	handler    http.Handler
}

// NewServer creates a new Server instance
func NewServer(opts Options, storage handler.Pinger, gachaService gacha.Service, achievementService achievement.Service) *Server {
	r := chi.NewRouter()

	detector := NewSuspiciousActivityDetector(opts.RateLimit, opts.RateWindow)

	// outermost first
	r.Use(middleware.RequestID)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)

	r.Get(pathHealthz, handler.HandleHealthz())
	r.Get(pathReadyz, handler.HandleReadyz(storage))
	r.Handle(pathMetrics, promhttp.Handler())

	gachaHandler := handler.NewGachaHandler(gachaService)
	achievementHandler := handler.NewAchievementHandler(achievementService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/boxes", func(r chi.Router) {
			r.Get("/", gachaHandler.HandleListBoxes)
			r.Get("/{boxID}", gachaHandler.HandleGetBox)
		})
		r.Post("/gacha/roll", gachaHandler.HandleRoll)
		r.Get("/achievements", achievementHandler.HandleListAchievements)

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/inventory", gachaHandler.HandleGetInventory)
			r.Route("/achievements", func(r chi.Router) {
				r.Get("/", achievementHandler.HandleGetProgress)
				r.Post("/check", achievementHandler.HandleCheck)
				r.Post("/{achievementID}/claim", achievementHandler.HandleClaim)
			})
		})
	})

	r.Get(pathSwagger, httpSwagger.WrapHandler)

	traced := otelhttp.NewHandler(r, TracingOperation)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           traced,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		handler: traced,
	}
}

// Handler exposes the full middleware chain, tracing included
func (s *Server) Handler() http.Handler {
	return s.handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// loggingMiddleware puts the request ID on the context logger and logs each request
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if slices.ContainsFunc(quietPaths, func(p string) bool { return strings.HasPrefix(r.URL.Path, p) }) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := middleware.GetReqID(r.Context())
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{redactedHeaderValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start serves until Stop is called. It returns http.ErrServerClosed after a clean stop.
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	logger.Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
