package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"relaychat/internal/i18n"
)

type localeContextKey struct{}

var LocaleKey = localeContextKey{}

// CountryLookup resolves ISO country codes for an IP address.
type CountryLookup func(ip string) (string, error)

// I18N resolves the request locale and stores it in the context. Resolution
// order: explicit ?locale= query value, X-Locale header, Accept-Language,
// the client's country (RU and TR only), then the configured default.
func I18N(defaultLocale string, lookup CountryLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := detectLocale(r, defaultLocale, lookup)
			ctx := context.WithValue(r.Context(), LocaleKey, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func detectLocale(r *http.Request, fallback string, lookup CountryLookup) string {
	if v := r.URL.Query().Get("locale"); v != "" {
		return i18n.Normalize(v)
	}
	if v := r.Header.Get("X-Locale"); v != "" {
		return i18n.Normalize(v)
	}
	if v := parseAcceptLanguage(r.Header.Get("Accept-Language")); v != "" {
		return v
	}
	switch countryCode(r, lookup) {
	case "RU":
		return i18n.LocaleRU
	case "TR":
		return i18n.LocaleTR
	}
	if fallback != "" {
		return fallback
	}
	return i18n.LocaleEN
}

func parseAcceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		locale := strings.TrimSpace(strings.Split(part, ";")[0])
		if locale == "" {
			continue
		}
		return i18n.Normalize(locale)
	}
	return ""
}

func countryCode(r *http.Request, lookup CountryLookup) string {
	for _, key := range []string{"X-Country-Code", "CF-IPCountry"} {
		if v := strings.TrimSpace(r.Header.Get(key)); v != "" {
			return strings.ToUpper(v)
		}
	}
	if lookup == nil {
		return ""
	}
	ip := ClientIP(r)
	if ip == "" {
		return ""
	}
	country, err := lookup(ip)
	if err != nil {
		return ""
	}
	return strings.ToUpper(country)
}

// ClientIP returns the best-effort client IP address for the request.
func ClientIP(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		for _, part := range strings.Split(xf, ",") {
			ip := strings.TrimSpace(part)
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// LocaleFromContext returns the locale resolved by the I18N middleware.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey).(string); ok {
		return v
	}
	return i18n.LocaleEN
}
