// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Deployment environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
