package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"relaychat/internal/i18n"
	"relaychat/internal/middleware"
)

type payRequest struct {
	Amount float64 `json:"amount"`
}

type payResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type checkoutResponse struct {
	RedirectURL string `json:"redirectUrl"`
}

// PayDenizbank mocks a virtual-POS charge. It succeeds unconditionally; no
// provider is contacted and no verification happens.
func (a *App) PayDenizbank(w http.ResponseWriter, r *http.Request) {
	var req payRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	locale := middleware.LocaleFromContext(r.Context())
	a.json(w, http.StatusOK, payResponse{
		Status:  "ok",
		Message: fmt.Sprintf(i18n.T(locale, i18n.KeyPaymentAccepted), req.Amount),
	})
}

// CreateCheckout returns a static mock redirect URL; no checkout session is
// created with any provider.
func (a *App) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, checkoutResponse{RedirectURL: a.Cfg.CheckoutURL})
}

// Webhook accepts any provider callback body. The payload is logged as-is;
// signature and authenticity checks do not exist on this surface.
func (a *App) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		body = nil
	}
	a.Log.Info().
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Bytes("body", body).
		Msg("webhook received")
	a.text(w, http.StatusOK, "ok")
}
