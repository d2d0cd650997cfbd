package handlers

import (
	"encoding/json"
	"net/http"

	"relaychat/internal/echo"
	"relaychat/internal/infra"

	"github.com/rs/zerolog"
)

// App is the handler container for the relay backend.
type App struct {
	Log  zerolog.Logger
	Cfg  *infra.Config
	Echo *echo.Service
}

func NewApp(cfg *infra.Config, log zerolog.Logger, svc *echo.Service) *App {
	return &App{Log: log, Cfg: cfg, Echo: svc}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// text writes a plain-text response. The chat endpoint's error contract is
// raw text, not a JSON envelope.
func (a *App) text(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}
