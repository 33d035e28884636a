package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("PORT", "")
	t.Setenv("OPENROUTER_MODEL", "")
	t.Setenv("MAX_UPLOAD_MB", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Empty env values fall back only for ints; strings honor LookupEnv.
	if cfg.GinMode != "debug" {
		t.Errorf("GinMode = %q, want debug", cfg.GinMode)
	}
	if cfg.MaxUploadMB != 16 {
		t.Errorf("MaxUploadMB = %d, want default 16", cfg.MaxUploadMB)
	}
	if cfg.LLMTimeoutSeconds != 120 {
		t.Errorf("LLMTimeoutSeconds = %d, want default 120", cfg.LLMTimeoutSeconds)
	}
}

func TestLoad_ReleaseRequiresAPIKey(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("OPENROUTER_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error in release mode without API key, got nil")
	}
}

func TestLoad_OverridesFromEnv(t *testing.T) {
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("OPENROUTER_MODEL", "anthropic/claude-3-opus")
	t.Setenv("MAX_UPLOAD_MB", "32")
	t.Setenv("DEFAULT_RATE_LIMIT", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.OpenRouterModel != "anthropic/claude-3-opus" {
		t.Errorf("OpenRouterModel = %q, want override", cfg.OpenRouterModel)
	}
	if cfg.MaxUploadMB != 32 {
		t.Errorf("MaxUploadMB = %d, want 32", cfg.MaxUploadMB)
	}
	if cfg.DefaultRateLimit != 10 {
		t.Errorf("DefaultRateLimit = %d, want 10", cfg.DefaultRateLimit)
	}
}

func TestGetEnvInt_Invalid(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "not-a-number")

	if got := getEnvInt("MAX_UPLOAD_MB", 16); got != 16 {
		t.Errorf("getEnvInt() = %d, want fallback 16 for garbage input", got)
	}
}
