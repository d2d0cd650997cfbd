package handlers

import (
	"encoding/json"
	"net/http"

	"relaychat/internal/middleware"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat answers POST /api/chat?locale=&model=. Unrecognized model values fall
// back to the trial model rather than failing the request.
func (a *App) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.text(w, http.StatusBadRequest, "invalid request body")
		return
	}

	model := r.URL.Query().Get("model")
	if model != a.Cfg.PaidModel {
		model = a.Cfg.TrialModel
	}
	locale := middleware.LocaleFromContext(r.Context())

	a.json(w, http.StatusOK, chatResponse{
		Reply: a.Echo.Reply(model, locale, req.Message),
	})
}
