package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Dispatcher turns admitted messages into backend requests. The underlying
// HTTP client carries no timeout and requests are never retried: a hung
// backend leaves the round trip pending until the transport itself fails.
type Dispatcher struct {
	baseURL string
	httpc   *http.Client
}

func NewDispatcher(baseURL string) *Dispatcher {
	return &Dispatcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

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

// Send posts one message to the relay and returns the reply text. A non-2xx
// status surfaces the raw response body as the error description.
func (d *Dispatcher) Send(ctx context.Context, locale, model, text string) (string, error) {
	q := url.Values{"locale": {locale}, "model": {model}}
	var out chatResponse
	if err := d.post(ctx, "/api/chat?"+q.Encode(), chatRequest{Message: text}, &out); err != nil {
		return "", err
	}
	return out.Reply, nil
}

// PayAmount submits the payment-amount form to the mock POS endpoint.
func (d *Dispatcher) PayAmount(ctx context.Context, locale string, amount float64) (string, error) {
	q := url.Values{"locale": {locale}}
	var out payResponse
	if err := d.post(ctx, "/api/pay-denizbank?"+q.Encode(), payRequest{Amount: amount}, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// CreateCheckout asks the backend for the instant-payment redirect URL.
func (d *Dispatcher) CreateCheckout(ctx context.Context) (string, error) {
	var out checkoutResponse
	if err := d.post(ctx, "/api/create-checkout", nil, &out); err != nil {
		return "", err
	}
	return out.RedirectURL, nil
}

func (d *Dispatcher) post(ctx context.Context, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("backend status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
