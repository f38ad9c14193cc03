package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"replicas": []any{
				map[string]any{"userName": "user"},
			},
		},
		"auth": map[string]any{
			"rememberSecret": "",
			"sessionTtl":     "2h",
		},
		"wechat": map[string]any{
			"appSecret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "AUTH_REMEMBERSECRET", want: "auth.rememberSecret"},
		{envKey: "AUTH_SESSIONTTL", want: "auth.sessionTtl"},
		{envKey: "WECHAT_APPSECRET", want: "wechat.appSecret"},
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

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "sslMode", want: "sslmode"},
		{in: "SSLMODE", want: "sslmode"},
		{in: "remember-secret", want: "remembersecret"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		if got := normalizeToken(tt.in); got != tt.want {
			t.Fatalf("normalizeToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
