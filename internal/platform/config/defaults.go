package config

const (
	defaultServerPort = 8080

	defaultBcryptCost = 10

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"database.dsn": "taskhub.db",

		"auth.token_ttl":   "1h",
		"auth.bcrypt_cost": defaultBcryptCost,

		"weather.base_url":                        "https://f-api.github.io",
		"weather.timeout":                         "30s",
		"weather.retry.max_attempts":              defaultRetryMaxAttempts,
		"weather.retry.initial_interval":          "100ms",
		"weather.retry.max_interval":              "10s",
		"weather.retry.multiplier":                defaultRetryMultiplier,
		"weather.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"weather.circuit_breaker.timeout":         "30s",
		"weather.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"weather.rate_limit.requests_per_second":  0,
		"weather.rate_limit.burst_size":           0,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
