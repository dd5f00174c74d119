package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://jsonplaceholder.typicode.com/users" {
		t.Fatalf("unexpected base_url: %s", cfg.BaseURL)
	}
	if cfg.LastPostStrategy != LastPostMaxID {
		t.Fatalf("unexpected last_post_strategy: %s", cfg.LastPostStrategy)
	}
	if cfg.RequestTimeout != 0 {
		t.Fatalf("expected no request timeout by default, got %v", cfg.RequestTimeout)
	}
	if cfg.StorageCleanupInterval != 12*time.Hour {
		t.Fatalf("unexpected cleanup interval: %v", cfg.StorageCleanupInterval)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BASE_URL", "http://127.0.0.1:8080/users/")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "7")
	t.Setenv("LAST_POST_STRATEGY", "Last_Element")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "http://127.0.0.1:8080/users" {
		t.Fatalf("expected trailing slash trimmed, got %s", cfg.BaseURL)
	}
	if cfg.RequestTimeout != 7*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.RequestTimeout)
	}
	if cfg.LastPostStrategy != LastPostLastElement {
		t.Fatalf("unexpected strategy: %s", cfg.LastPostStrategy)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"relative base url": {"BASE_URL", "/users"},
		"negative timeout":  {"REQUEST_TIMEOUT_SECONDS", "-1"},
		"unknown strategy":  {"LAST_POST_STRATEGY", "first"},
		"zero ttl":          {"STORAGE_TTL_SECONDS", "0"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", kv[0], kv[1])
			}
		})
	}
}
