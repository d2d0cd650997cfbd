package httpapi

import (
	stdhttp "net/http"
	"time"

	"relaychat/internal/http/handlers"
	"relaychat/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *handlers.App, lookup middleware.CountryLookup) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP, chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(app.Log))
	r.Use(middleware.CORS(app.Cfg.AllowedOrigins))
	r.Use(middleware.RateLimit(app.Cfg.RateLimitPerMin, time.Minute))
	r.Use(middleware.I18N(app.Cfg.DefaultLocale, lookup))

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", app.Chat)
		r.Post("/pay-denizbank", app.PayDenizbank)
		r.Post("/create-checkout", app.CreateCheckout)
		r.Post("/webhook", app.Webhook)
	})

	r.Get("/health", app.Health)

	return r
}
