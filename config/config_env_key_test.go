package config

import "testing"

// The fixture mirrors the shape of this service's config.yaml so the env
// override path is tested against the keys we actually ship.
func TestCanonicalizeEnvKey_MatchesServiceConfigKeys(t *testing.T) {
	existing := map[string]any{
		"env": map[string]any{
			"serviceName": "tiffin",
			"log": map[string]any{
				"level": "info",
			},
		},
		"http": map[string]any{
			"timeouts": map[string]any{
				"readHeaderTimeout": "5s",
			},
		},
		"postgres": map[string]any{
			"sslMode": "disable",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"pubsub": map[string]any{
			"localEndpoint": "",
			"projectId":     "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "ENV_SERVICENAME", want: "env.serviceName"},
		{envKey: "ENV_LOG_LEVEL", want: "env.log.level"},
		{envKey: "HTTP_TIMEOUTS_READHEADERTIMEOUT", want: "http.timeouts.readHeaderTimeout"},
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "PUBSUB_LOCALENDPOINT", want: "pubsub.localEndpoint"},
		{envKey: "PUBSUB_PROJECTID", want: "pubsub.projectId"},
		// Keys the YAML does not know fall back to plain lowercase paths.
		{envKey: "FEATURE_GATE_X", want: "feature.gate.x"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
