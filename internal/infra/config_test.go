package infra

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DEFAULT_LOCALE", "")
	t.Setenv("TRIAL_MODEL", "")
	t.Setenv("PAID_MODEL", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "3000" {
		t.Fatalf("Port = %q, want 3000", cfg.Port)
	}
	if cfg.DefaultLocale != "ru" {
		t.Fatalf("DefaultLocale = %q, want ru", cfg.DefaultLocale)
	}
	if cfg.TrialModel != "gpt-4" || cfg.PaidModel != "gpt-5" {
		t.Fatalf("models = %q/%q, want gpt-4/gpt-5", cfg.TrialModel, cfg.PaidModel)
	}
	if cfg.CheckoutURL != "https://example.com/mock-checkout" {
		t.Fatalf("CheckoutURL = %q", cfg.CheckoutURL)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:5173" {
		t.Fatalf("AllowedOrigins = %#v", cfg.AllowedOrigins)
	}
}

func TestLoadConfigHonorsEnv(t *testing.T) {
	t.Setenv("PORT", "1919")
	t.Setenv("DEFAULT_LOCALE", "tr")
	t.Setenv("TRIAL_MODEL", "gpt-4o-mini")
	t.Setenv("PAID_MODEL", "gpt-5-turbo")
	t.Setenv("ALLOWED_ORIGINS", "https://chat.example.com, https://staging.example.com ")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "7")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "1919" {
		t.Fatalf("Port = %q, want 1919", cfg.Port)
	}
	if cfg.DefaultLocale != "tr" {
		t.Fatalf("DefaultLocale = %q, want tr", cfg.DefaultLocale)
	}
	if cfg.TrialModel != "gpt-4o-mini" || cfg.PaidModel != "gpt-5-turbo" {
		t.Fatalf("models = %q/%q", cfg.TrialModel, cfg.PaidModel)
	}
	if cfg.RateLimitPerMin != 7 {
		t.Fatalf("RateLimitPerMin = %d, want 7", cfg.RateLimitPerMin)
	}
	expected := []string{"https://chat.example.com", "https://staging.example.com"}
	if len(cfg.AllowedOrigins) != len(expected) {
		t.Fatalf("AllowedOrigins = %#v, want %#v", cfg.AllowedOrigins, expected)
	}
	for i, origin := range expected {
		if cfg.AllowedOrigins[i] != origin {
			t.Fatalf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], origin)
		}
	}
}

func TestLoadConfigBadIntFallsBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.RateLimitPerMin != 60 {
		t.Fatalf("RateLimitPerMin = %d, want default 60", cfg.RateLimitPerMin)
	}
}
