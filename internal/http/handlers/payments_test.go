package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPayDenizbank(t *testing.T) {
	tests := []struct {
		name        string
		locale      string
		body        string
		wantMessage string
	}{
		{
			name:        "russian message",
			locale:      "ru",
			body:        `{"amount":199}`,
			wantMessage: "Платёж на 199 — заглушка.",
		},
		{
			name:        "turkish message",
			locale:      "tr",
			body:        `{"amount":199}`,
			wantMessage: "199 tutarında ödeme — taslak.",
		},
		{
			name:        "default message",
			locale:      "es",
			body:        `{"amount":49.5}`,
			wantMessage: "Payment of 49.5 — mock.",
		},
		{
			name:        "unconditional success on bad payload",
			locale:      "en",
			body:        `not json`,
			wantMessage: "Payment of 0 — mock.",
		},
	}

	app := newTestApp()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/pay-denizbank", strings.NewReader(tc.body))
			req = withLocale(req, tc.locale)
			rec := httptest.NewRecorder()

			app.PayDenizbank(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			var resp payResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Status != "ok" {
				t.Fatalf("status field = %q, want ok", resp.Status)
			}
			if resp.Message != tc.wantMessage {
				t.Fatalf("message = %q, want %q", resp.Message, tc.wantMessage)
			}
		})
	}
}

func TestCreateCheckout(t *testing.T) {
	app := newTestApp()
	req := httptest.NewRequest(http.MethodPost, "/api/create-checkout", nil)
	rec := httptest.NewRecorder()

	app.CreateCheckout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp checkoutResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.RedirectURL != "https://example.com/mock-checkout" {
		t.Fatalf("redirectUrl = %q", resp.RedirectURL)
	}
}

func TestWebhook(t *testing.T) {
	app := newTestApp()
	req := httptest.NewRequest(http.MethodPost, "/api/webhook", strings.NewReader(`{"event":"anything"}`))
	rec := httptest.NewRecorder()

	app.Webhook(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); body != "ok" {
		t.Fatalf("body = %q, want ok", body)
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	app.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); body != "ok" {
		t.Fatalf("body = %q, want ok", body)
	}
}
