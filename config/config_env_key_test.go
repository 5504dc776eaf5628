package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"secretKey": map[string]any{
			"session": "",
		},
		"auth": map[string]any{
			"bcryptCost": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyAuthDefaults(t *testing.T) {
	cfg := &Config{}
	applyAuthDefaults(cfg)

	if cfg.Auth.BcryptCost != defaultBcryptCost {
		t.Fatalf("BcryptCost = %d, want %d", cfg.Auth.BcryptCost, defaultBcryptCost)
	}
	if cfg.Auth.SessionTTL != defaultSessionTTL {
		t.Fatalf("SessionTTL = %s, want %s", cfg.Auth.SessionTTL, defaultSessionTTL)
	}
	if cfg.Auth.CookieName != defaultCookieName {
		t.Fatalf("CookieName = %q, want %q", cfg.Auth.CookieName, defaultCookieName)
	}
	if cfg.Auth.MinPasswordLength != defaultMinPasswordLength {
		t.Fatalf("MinPasswordLength = %d, want %d", cfg.Auth.MinPasswordLength, defaultMinPasswordLength)
	}
}
