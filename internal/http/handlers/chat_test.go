package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"relaychat/internal/echo"
	"relaychat/internal/infra"
	"relaychat/internal/middleware"

	"github.com/rs/zerolog"
)

func newTestApp() *App {
	cfg := &infra.Config{
		DefaultLocale: "ru",
		TrialModel:    "gpt-4",
		PaidModel:     "gpt-5",
		CheckoutURL:   "https://example.com/mock-checkout",
	}
	return NewApp(cfg, zerolog.Nop(), echo.NewService())
}

func withLocale(r *http.Request, locale string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.LocaleKey, locale))
}

func TestChat(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		locale    string
		body      string
		wantReply string
	}{
		{
			name:      "trial model by default",
			target:    "/api/chat",
			locale:    "ru",
			body:      `{"message":"привет"}`,
			wantReply: "(gpt-4) Эхо: привет",
		},
		{
			name:      "paid model passes through",
			target:    "/api/chat?model=gpt-5",
			locale:    "ru",
			body:      `{"message":"hello"}`,
			wantReply: "(gpt-5) Эхо: hello",
		},
		{
			name:      "unknown model falls back to trial",
			target:    "/api/chat?model=gpt-9000",
			locale:    "en",
			body:      `{"message":"hello"}`,
			wantReply: "(gpt-4) Echo: hello",
		},
		{
			name:      "turkish locale",
			target:    "/api/chat",
			locale:    "tr",
			body:      `{"message":"merhaba"}`,
			wantReply: "(gpt-4) Yankı: merhaba",
		},
		{
			name:      "german locale renders default text",
			target:    "/api/chat",
			locale:    "de",
			body:      `{"message":"hallo"}`,
			wantReply: "(gpt-4) Echo: hallo",
		},
	}

	app := newTestApp()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tc.target, strings.NewReader(tc.body))
			req = withLocale(req, tc.locale)
			rec := httptest.NewRecorder()

			app.Chat(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			var resp chatResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Reply != tc.wantReply {
				t.Fatalf("reply = %q, want %q", resp.Reply, tc.wantReply)
			}
		})
	}
}

func TestChatInvalidBodyIsRawText(t *testing.T) {
	app := newTestApp()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("{not json"))
	req = withLocale(req, "ru")
	rec := httptest.NewRecorder()

	app.Chat(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("Content-Type = %q, want text/plain", ct)
	}
	if body := rec.Body.String(); body != "invalid request body" {
		t.Fatalf("body = %q", body)
	}
}
