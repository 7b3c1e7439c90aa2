package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter настраивает маршруты и middleware.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(slog.Default().With("component", "http")))
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/categories", h.Categories)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Signup)
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)
		})

		r.Get("/me", h.Me)
		r.Get("/dashboard", h.Dashboard)
		r.Get("/history", h.History)

		r.Get("/quiz", h.QuizState)
		r.Post("/quiz/start", h.StartQuiz)
		r.Post("/quiz/answer", h.Answer)
		r.Post("/quiz/next", h.Next)
		r.Post("/quiz/back", h.Back)
		r.Post("/quiz/quit", h.Quit)

		r.Route("/results", func(r chi.Router) {
			r.Get("/current", h.CurrentResult)
			r.Post("/retry", h.Retry)
			r.Get("/share", h.Share)
		})

		r.Get("/theme", h.Theme)
		r.Post("/theme/toggle", h.ToggleTheme)
	})

	return r
}

// requestLogger пишет одну строку slog на запрос.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				log.Info("request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"duration", time.Since(start),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
