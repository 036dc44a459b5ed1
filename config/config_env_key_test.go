package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "chaincast",
		},
		"mail": map[string]any{
			"resetBaseUrl": "",
		},
		"secretKey": map[string]any{
			"session": "",
		},
		"auth": map[string]any{
			"otpTtl": "5m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_DBNAME", want: "postgres.dbName"},
		{envKey: "MAIL_RESETBASEURL", want: "mail.resetBaseUrl"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "AUTH_OTPTTL", want: "auth.otpTtl"},
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
